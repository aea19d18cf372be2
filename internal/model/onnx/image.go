package onnx

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brownie44l1/aidetect-api/internal/media"
	"github.com/Brownie44l1/aidetect-api/internal/model"
)

// ImageClassifier classifies a single image with an ONNX model whose input is 1×3×S×S.
type ImageClassifier struct {
	session *Session
}

func NewImageClassifier(modelPath, metadataPath string) (*ImageClassifier, error) {
	s, err := NewSession(modelPath, metadataPath)
	if err != nil {
		return nil, err
	}
	if s.Metadata.ImageSize <= 0 {
		s.Close()
		return nil, errors.New("image model metadata: image_size is required")
	}
	if want := 3 * s.Metadata.ImageSize * s.Metadata.ImageSize; s.Metadata.InputSize() != want {
		s.Close()
		return nil, fmt.Errorf("image model metadata: input_shape %v does not match image_size %d",
			s.Metadata.InputShape, s.Metadata.ImageSize)
	}
	return &ImageClassifier{session: s}, nil
}

func (c *ImageClassifier) PredictImage(ctx context.Context, data []byte) (model.Result, error) {
	img, _, err := media.DecodeImage(data)
	if err != nil {
		return model.Result{}, fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
	}
	if err := ctx.Err(); err != nil {
		return model.Result{}, err
	}
	m := c.session.Metadata
	return c.session.Predict(media.ImageTensor(img, m.ImageSize, m.Mean, m.Std))
}

func (c *ImageClassifier) Close() error {
	c.session.Close()
	return nil
}
