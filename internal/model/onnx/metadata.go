package onnx

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	ActivationSoftmax = "softmax"
	ActivationSigmoid = "sigmoid"
	ActivationNone    = "none"
)

// Metadata describes an exported model. It is read from the JSON file shipped
// next to the .onnx weights.
type Metadata struct {
	InputName   string    `json:"input_name"`
	OutputName  string    `json:"output_name"`
	InputShape  []int64   `json:"input_shape"`
	OutputShape []int64   `json:"output_shape"`
	Classes     []string  `json:"classes"`
	ImageSize   int       `json:"image_size"`
	NumFrames   int       `json:"num_frames"`
	Mean        []float32 `json:"mean"`
	Std         []float32 `json:"std"`
	Activation  string    `json:"activation"`
}

func LoadMetadata(path string) (Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read metadata: %w", err)
	}
	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return Metadata{}, fmt.Errorf("failed to parse metadata: %w", err)
	}
	m.applyDefaults()
	if err := m.validate(); err != nil {
		return Metadata{}, err
	}
	return m, nil
}

func (m *Metadata) applyDefaults() {
	if m.InputName == "" {
		m.InputName = "input"
	}
	if m.OutputName == "" {
		m.OutputName = "output"
	}
	if m.Activation == "" {
		m.Activation = ActivationSoftmax
	}
	m.Activation = strings.ToLower(m.Activation)
}

func (m Metadata) validate() error {
	if len(m.InputShape) == 0 || len(m.OutputShape) == 0 {
		return fmt.Errorf("metadata: input_shape and output_shape are required")
	}
	for _, d := range m.InputShape {
		if d <= 0 {
			return fmt.Errorf("metadata: input_shape %v has non-positive dimension", m.InputShape)
		}
	}
	switch m.Activation {
	case ActivationSoftmax, ActivationSigmoid, ActivationNone:
	default:
		return fmt.Errorf("metadata: unknown activation %q", m.Activation)
	}
	if m.OutputSize() > 1 && (m.classIndex("ai") < 0 || m.classIndex("human") < 0) {
		return fmt.Errorf("metadata: classes %v must contain AI and Human", m.Classes)
	}
	return nil
}

// InputSize is the number of float32 values the model consumes per run.
func (m Metadata) InputSize() int {
	return product(m.InputShape)
}

func (m Metadata) OutputSize() int {
	return product(m.OutputShape)
}

func (m Metadata) classIndex(name string) int {
	for i, c := range m.Classes {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}

func product(shape []int64) int {
	n := 1
	for _, d := range shape {
		n *= int(d)
	}
	return n
}
