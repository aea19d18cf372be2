// Package format shapes classifier results into the JSON bodies returned by each route.
package format

import (
	"math"

	"github.com/Brownie44l1/aidetect-api/internal/model"
)

type TextResponse struct {
	Label      model.Label `json:"label"`
	Confidence float64     `json:"confidence"`
	ProbAI     float64     `json:"prob_ai"`
	ProbHuman  float64     `json:"prob_human"`
}

type ImageResponse struct {
	AIProbabilityPercent    float64     `json:"AI_probability_percent"`
	HumanProbabilityPercent float64     `json:"Human_probability_percent"`
	Label                   model.Label `json:"Label"`
}

type VideoResponse struct {
	Label                   model.Label `json:"label"`
	Confidence              float64     `json:"confidence"`
	AIProbabilityPercent    float64     `json:"AI_probability_percent"`
	HumanProbabilityPercent float64     `json:"Human_probability_percent"`
	ProbAI                  float64     `json:"prob_ai"`
	ProbHuman               float64     `json:"prob_human"`
	FramesSampled           int         `json:"frames_sampled"`
}

func Text(r model.Result) TextResponse {
	return TextResponse{
		Label:      r.Label,
		Confidence: Round(confidence(r), 4),
		ProbAI:     Round(r.ProbAI, 4),
		ProbHuman:  Round(r.ProbHuman, 4),
	}
}

func Image(r model.Result) ImageResponse {
	return ImageResponse{
		AIProbabilityPercent:    Round(r.ProbAI*100, 2),
		HumanProbabilityPercent: Round(r.ProbHuman*100, 2),
		Label:                   r.Label,
	}
}

func Video(r model.VideoResult) VideoResponse {
	return VideoResponse{
		Label:                   r.Label,
		Confidence:              Round(confidence(r.Result), 4),
		AIProbabilityPercent:    Round(r.ProbAI*100, 2),
		HumanProbabilityPercent: Round(r.ProbHuman*100, 2),
		ProbAI:                  Round(r.ProbAI, 4),
		ProbHuman:               Round(r.ProbHuman, 4),
		FramesSampled:           r.FramesSampled,
	}
}

func confidence(r model.Result) float64 {
	if r.Confidence != nil {
		return *r.Confidence
	}
	return math.Max(r.ProbAI, r.ProbHuman)
}

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
