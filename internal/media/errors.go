package media

import "errors"

var (
	ErrEmptyVideo   = errors.New("no frames could be read from video")
	ErrInvalidImage = errors.New("invalid image")
)
