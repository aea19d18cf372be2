package onnx

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brownie44l1/aidetect-api/internal/media"
	"github.com/Brownie44l1/aidetect-api/internal/model"
)

// VideoClassifier samples a fixed number of frames from a clip and classifies
// them with an ONNX model whose input is 1×T×3×S×S.
type VideoClassifier struct {
	session *Session
	tools   media.Tools
	frames  int
	size    int
}

type VideoOptions struct {
	Tools media.Tools
	// Frames and Size override the metadata when positive.
	Frames int
	Size   int
}

// resolve picks the clip shape: explicit options first, then the model
// metadata, then the media defaults.
func (o VideoOptions) resolve(m Metadata) (frames, size int) {
	return firstPositive(o.Frames, m.NumFrames, media.DefaultFrameCount),
		firstPositive(o.Size, m.ImageSize, media.DefaultFrameSize)
}

func NewVideoClassifier(modelPath, metadataPath string, opts VideoOptions) (*VideoClassifier, error) {
	s, err := NewSession(modelPath, metadataPath)
	if err != nil {
		return nil, err
	}
	c := &VideoClassifier{
		session: s,
		tools:   opts.Tools,
	}
	c.frames, c.size = opts.resolve(s.Metadata)
	if want := c.frames * 3 * c.size * c.size; s.Metadata.InputSize() != want {
		s.Close()
		return nil, fmt.Errorf("video model metadata: input_shape %v does not match %d frames of %dx%d",
			s.Metadata.InputShape, c.frames, c.size, c.size)
	}
	return c, nil
}

func (c *VideoClassifier) PredictVideo(ctx context.Context, data []byte) (model.VideoResult, error) {
	if len(data) == 0 {
		return model.VideoResult{}, fmt.Errorf("%w: empty video", model.ErrInvalidInput)
	}
	video, err := c.tools.OpenVideo(data)
	if err != nil {
		return model.VideoResult{}, err
	}
	defer video.Close()

	if !video.HasFrame(ctx) {
		if err := ctx.Err(); err != nil {
			return model.VideoResult{}, err
		}
		return model.VideoResult{}, fmt.Errorf("%w: %w", model.ErrInvalidInput, media.ErrEmptyVideo)
	}

	frames, err := media.SampleFrames(ctx, video, c.frames, c.size)
	if err != nil {
		if errors.Is(err, media.ErrEmptyVideo) {
			return model.VideoResult{}, fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
		}
		return model.VideoResult{}, err
	}

	m := c.session.Metadata
	input, err := media.FramesTensor(frames, m.Mean, m.Std)
	if err != nil {
		return model.VideoResult{}, err
	}
	res, err := c.session.Predict(input)
	if err != nil {
		return model.VideoResult{}, err
	}
	return model.VideoResult{Result: res, FramesSampled: len(frames)}, nil
}

func (c *VideoClassifier) Close() error {
	c.session.Close()
	return nil
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
