// Package detect owns the classifiers for each modality. Models are loaded
// once at startup and released on shutdown.
package detect

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Brownie44l1/aidetect-api/internal/config"
	"github.com/Brownie44l1/aidetect-api/internal/media"
	"github.com/Brownie44l1/aidetect-api/internal/model"
	"github.com/Brownie44l1/aidetect-api/internal/model/gemini"
	"github.com/Brownie44l1/aidetect-api/internal/model/onnx"
	"github.com/Brownie44l1/aidetect-api/internal/model/remote"
	"go.uber.org/zap"
)

// Service holds one predictor per modality. A nil predictor means the
// modality is not configured.
type Service struct {
	Text  model.TextPredictor
	Image model.ImagePredictor
	Video model.VideoPredictor

	closers []io.Closer
	onnx    bool
}

func New(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*Service, error) {
	s := &Service{}
	if err := s.load(ctx, cfg, log); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Service) load(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	if cfg.ONNXEnabled() {
		if err := onnx.Init(cfg.ONNXRuntimeLib); err != nil {
			return err
		}
		s.onnx = true
	}

	if cfg.ImageModelPath != "" {
		log.Infow("loading image model", "model", cfg.ImageModelPath, "metadata", cfg.ImageMetadataPath)
		c, err := onnx.NewImageClassifier(cfg.ImageModelPath, cfg.ImageMetadataPath)
		if err != nil {
			return fmt.Errorf("image model: %w", err)
		}
		s.Image = c
		s.closers = append(s.closers, c)
	}

	if cfg.VideoModelPath != "" {
		log.Infow("loading video model", "model", cfg.VideoModelPath, "metadata", cfg.VideoMetadataPath,
			"frames", cfg.VideoFrames, "frame_size", cfg.VideoFrameSize)
		c, err := onnx.NewVideoClassifier(cfg.VideoModelPath, cfg.VideoMetadataPath, onnx.VideoOptions{
			Tools:  media.Tools{FFmpeg: cfg.FFmpegPath, FFprobe: cfg.FFprobePath},
			Frames: cfg.VideoFrames,
			Size:   cfg.VideoFrameSize,
		})
		if err != nil {
			return fmt.Errorf("video model: %w", err)
		}
		s.Video = c
		s.closers = append(s.closers, c)
	}

	switch cfg.TextBackend {
	case config.TextBackendGemini:
		c, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("text model: %w", err)
		}
		log.Infow("using gemini text model", "model", c.Name())
		s.Text = c
		s.closers = append(s.closers, c)
	case config.TextBackendRemote:
		log.Infow("using remote text model", "url", cfg.TextModelURL)
		s.Text = remote.New(cfg.TextModelURL, cfg.InferenceTimeout)
	}
	return nil
}

// Close releases every loaded model.
func (s *Service) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	s.closers = nil
	if s.onnx {
		errs = append(errs, onnx.Shutdown())
		s.onnx = false
	}
	return errors.Join(errs...)
}

// Status reports which modalities have a model loaded.
func (s *Service) Status() map[string]bool {
	return map[string]bool{
		"text":  s.Text != nil,
		"image": s.Image != nil,
		"video": s.Video != nil,
	}
}
