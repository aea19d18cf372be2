package model

import "context"

//go:generate mockgen -source=predictor.go -destination=mock_predictor.go -package=model

type TextPredictor interface {
	PredictText(ctx context.Context, text string) (Result, error)
}

type ImagePredictor interface {
	PredictImage(ctx context.Context, data []byte) (Result, error)
}

type VideoPredictor interface {
	PredictVideo(ctx context.Context, data []byte) (VideoResult, error)
}
