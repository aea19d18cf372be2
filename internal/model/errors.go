package model

import "errors"

var (
	// ErrInvalidInput marks input the model cannot work with. It is safe to report to clients.
	ErrInvalidInput = errors.New("invalid input")

	// ErrModelUnavailable is returned when a modality has no model loaded.
	ErrModelUnavailable = errors.New("model unavailable")
)
