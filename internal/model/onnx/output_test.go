package onnx

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Brownie44l1/aidetect-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToResultSoftmax(t *testing.T) {
	m := Metadata{Classes: []string{"AI", "Human"}, Activation: ActivationSoftmax}
	r, err := toResult(m, []float32{2, 0})
	require.NoError(t, err)

	want := math.Exp(2) / (math.Exp(2) + 1)
	assert.InDelta(t, want, r.ProbAI, 1e-6)
	assert.InDelta(t, 1-want, r.ProbHuman, 1e-6)
	assert.Equal(t, model.LabelAI, r.Label)
	assert.InDelta(t, want, *r.Confidence, 1e-6)
}

func TestToResultClassOrderAndCase(t *testing.T) {
	m := Metadata{Classes: []string{"human", "ai"}, Activation: ActivationNone}
	r, err := toResult(m, []float32{0.9, 0.1})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, r.ProbAI, 1e-6)
	assert.InDelta(t, 0.9, r.ProbHuman, 1e-6)
	assert.Equal(t, model.LabelHuman, r.Label)
}

func TestToResultSingleLogit(t *testing.T) {
	r, err := toResult(Metadata{Activation: ActivationSigmoid}, []float32{0})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r.ProbAI, 1e-9)
	assert.InDelta(t, 0.5, r.ProbHuman, 1e-9)

	r, err = toResult(Metadata{Activation: ActivationNone}, []float32{1.2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.ProbAI, "raw probabilities are clamped")
	assert.Equal(t, 0.0, r.ProbHuman)
}

func TestToResultErrors(t *testing.T) {
	_, err := toResult(Metadata{Classes: []string{"AI", "Human"}}, nil)
	assert.Error(t, err)

	_, err = toResult(Metadata{Classes: []string{"cat", "dog"}, Activation: ActivationSoftmax}, []float32{1, 2})
	assert.Error(t, err)
}

func writeMetadata(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model_metadata.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMetadata(t *testing.T) {
	path := writeMetadata(t, `{
		"input_shape": [1, 20, 3, 224, 224],
		"output_shape": [1, 2],
		"classes": ["AI", "Human"],
		"image_size": 224,
		"num_frames": 20,
		"mean": [0.485, 0.456, 0.406],
		"std": [0.229, 0.224, 0.225]
	}`)
	m, err := LoadMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, "input", m.InputName)
	assert.Equal(t, "output", m.OutputName)
	assert.Equal(t, ActivationSoftmax, m.Activation)
	assert.Equal(t, 20*3*224*224, m.InputSize())
	assert.Equal(t, 2, m.OutputSize())
}

func TestLoadMetadataRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"missing shapes":     `{"classes": ["AI", "Human"]}`,
		"bad dimension":      `{"input_shape": [1, -1], "output_shape": [1, 2], "classes": ["AI", "Human"]}`,
		"unknown activation": `{"input_shape": [1, 3], "output_shape": [1, 2], "classes": ["AI", "Human"], "activation": "relu"}`,
		"classes mismatch":   `{"input_shape": [1, 3], "output_shape": [1, 2], "classes": ["real", "fake"]}`,
		"not json":           `{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadMetadata(writeMetadata(t, body))
			assert.Error(t, err)
		})
	}

	_, err := LoadMetadata(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFirstPositive(t *testing.T) {
	assert.Equal(t, 16, firstPositive(0, 16, 20))
	assert.Equal(t, 8, firstPositive(8, 16, 20))
	assert.Equal(t, 0, firstPositive(0, -1))
}

func TestVideoOptionsResolve(t *testing.T) {
	exported := Metadata{NumFrames: 16, ImageSize: 112}

	tests := map[string]struct {
		opts         VideoOptions
		meta         Metadata
		frames, size int
	}{
		"metadata when unset":   {VideoOptions{}, exported, 16, 112},
		"explicit override":     {VideoOptions{Frames: 8, Size: 64}, exported, 8, 64},
		"partial override":      {VideoOptions{Frames: 8}, exported, 8, 112},
		"defaults without meta": {VideoOptions{}, Metadata{}, 20, 224},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			frames, size := tt.opts.resolve(tt.meta)
			assert.Equal(t, tt.frames, frames)
			assert.Equal(t, tt.size, size)
		})
	}
}
