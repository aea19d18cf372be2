package media

import (
	"context"
	"errors"
	"fmt"
	"image"
	"slices"

	"github.com/disintegration/imaging"
)

// Frame is a packed RGB image, 3 bytes per pixel, row-major.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// FrameSource gives random access to the frames of a video.
type FrameSource interface {
	FrameCount(ctx context.Context) (int, error)
	// DecodeFrames calls fn, in ascending index order, for every index it manages to decode.
	// Indices that fail to decode are skipped.
	DecodeFrames(ctx context.Context, indices []int, fn func(index int, img image.Image) error) error
}

// SampleFrames picks k evenly spaced frames from src, resized to size×size RGB.
// Missing frames are filled by repeating the last decoded one. It fails with
// ErrEmptyVideo when nothing decodes.
func SampleFrames(ctx context.Context, src FrameSource, k, size int) ([]Frame, error) {
	if k <= 0 || size <= 0 {
		return nil, fmt.Errorf("sample frames: k and size must be positive, got %d and %d", k, size)
	}

	total, err := src.FrameCount(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		total = 0
	}

	idx := FrameIndices(total, k)
	wanted := slices.Compact(slices.Clone(idx))

	decoded := make(map[int]Frame, len(wanted))
	err = src.DecodeFrames(ctx, wanted, func(index int, img image.Image) error {
		decoded[index] = toFrame(img, size)
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if len(decoded) == 0 {
			return nil, fmt.Errorf("%w: %w", ErrEmptyVideo, err)
		}
	}

	frames := make([]Frame, 0, k)
	for _, i := range idx {
		if f, ok := decoded[i]; ok {
			frames = append(frames, f)
		}
	}
	if len(frames) == 0 {
		return nil, ErrEmptyVideo
	}
	for len(frames) < k {
		frames = append(frames, frames[len(frames)-1])
	}
	return frames, nil
}

func toFrame(img image.Image, size int) Frame {
	dst := imaging.Resize(img, size, size, imaging.Linear)
	pix := make([]uint8, 0, size*size*3)
	for y := 0; y < size; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+size*4]
		for x := 0; x < size; x++ {
			pix = append(pix, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return Frame{Width: size, Height: size, Pix: pix}
}

// FramesTensor lays frames out as T×C×H×W float32 in [0,1], optionally normalized per channel.
func FramesTensor(frames []Frame, mean, std []float32) ([]float32, error) {
	if len(frames) == 0 {
		return nil, errors.New("frames tensor: no frames")
	}
	w, h := frames[0].Width, frames[0].Height
	plane := w * h
	out := make([]float32, 0, len(frames)*3*plane)
	for _, f := range frames {
		if f.Width != w || f.Height != h || len(f.Pix) != 3*plane {
			return nil, fmt.Errorf("frames tensor: frame is %dx%d, want %dx%d", f.Width, f.Height, w, h)
		}
		chw := make([]float32, 3*plane)
		for i := 0; i < plane; i++ {
			chw[i] = float32(f.Pix[3*i]) / 255.0
			chw[plane+i] = float32(f.Pix[3*i+1]) / 255.0
			chw[2*plane+i] = float32(f.Pix[3*i+2]) / 255.0
		}
		normalize(chw, plane, mean, std)
		out = append(out, chw...)
	}
	return out, nil
}
