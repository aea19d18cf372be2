package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// IsValidImage checks the header and the container structure of an image.
// PNG and JPEG streams are walked without decoding pixel data, so a file cut
// short after its header is rejected.
func IsValidImage(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if !strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
		return false
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return false
	}
	return completeStream(data, format)
}

// DecodeImage validates and fully decodes an image.
func DecodeImage(data []byte) (image.Image, string, error) {
	if !IsValidImage(data) {
		return nil, "", ErrInvalidImage
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return img, format, nil
}

// ImageTensor resizes img to size×size and lays it out as CHW float32 in [0,1].
// When mean and std have three entries each channel is normalized with them.
func ImageTensor(img image.Image, size int, mean, std []float32) []float32 {
	resized := resize.Resize(uint(size), uint(size), img, resize.Lanczos3)

	bounds := resized.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	plane := width * height
	out := make([]float32, 3*plane)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := resized.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := y*width + x
			out[i] = float32(r) / 65535.0
			out[plane+i] = float32(g) / 65535.0
			out[2*plane+i] = float32(b) / 65535.0
		}
	}
	normalize(out, plane, mean, std)
	return out
}

func normalize(data []float32, plane int, mean, std []float32) {
	if len(mean) != 3 || len(std) != 3 {
		return
	}
	for c := 0; c < 3; c++ {
		if std[c] == 0 {
			continue
		}
		ch := data[c*plane : (c+1)*plane]
		for i := range ch {
			ch[i] = (ch[i] - mean[c]) / std[c]
		}
	}
}
