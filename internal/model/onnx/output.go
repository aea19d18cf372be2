package onnx

import (
	"errors"
	"fmt"
	"math"

	"github.com/Brownie44l1/aidetect-api/internal/model"
)

func toResult(m Metadata, raw []float32) (model.Result, error) {
	if len(raw) == 0 {
		return model.Result{}, errors.New("model produced no output")
	}
	probs := activate(m.Activation, raw)

	if len(probs) == 1 {
		p := clamp01(probs[0])
		return model.NewResult(p, 1-p), nil
	}

	ai, human := m.classIndex("ai"), m.classIndex("human")
	if ai < 0 || human < 0 || ai >= len(probs) || human >= len(probs) {
		return model.Result{}, fmt.Errorf("output of size %d does not match classes %v", len(probs), m.Classes)
	}
	return model.NewResult(probs[ai], probs[human]), nil
}

func activate(kind string, raw []float32) []float64 {
	out := make([]float64, len(raw))
	switch kind {
	case ActivationSigmoid:
		for i, v := range raw {
			out[i] = 1 / (1 + math.Exp(-float64(v)))
		}
	case ActivationSoftmax:
		if len(raw) == 1 {
			out[0] = float64(raw[0])
			break
		}
		maxVal := float64(raw[0])
		for _, v := range raw[1:] {
			maxVal = math.Max(maxVal, float64(v))
		}
		var sum float64
		for i, v := range raw {
			out[i] = math.Exp(float64(v) - maxVal)
			sum += out[i]
		}
		for i := range out {
			out[i] /= sum
		}
	default:
		for i, v := range raw {
			out[i] = float64(v)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
