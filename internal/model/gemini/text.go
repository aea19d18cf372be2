package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Brownie44l1/aidetect-api/internal/model"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPrompt = `You are a detector of machine-generated text.
Given a passage, estimate the probability that it was written by an AI language model rather than a human.
Answer with JSON only: {"prob_ai": <number between 0 and 1>}.`

// TextClassifier scores text with a Gemini model.
type TextClassifier struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

func New(ctx context.Context, apiKey, modelName string) (*TextClassifier, error) {
	apiKey, modelName = strings.TrimSpace(apiKey), strings.TrimSpace(modelName)
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	m := cl.GenerativeModel(modelName)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"prob_ai": {Type: genai.TypeNumber},
			},
			Required: []string{"prob_ai"},
		},
	}
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	return &TextClassifier{client: cl, model: m, name: modelName}, nil
}

func (c *TextClassifier) Name() string { return c.name }

func (c *TextClassifier) PredictText(ctx context.Context, text string) (model.Result, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return model.Result{}, fmt.Errorf("gemini generate: %w", err)
	}
	return parseVerdict(firstText(resp))
}

func (c *TextClassifier) Close() error {
	return c.client.Close()
}

type verdict struct {
	ProbAI *float64 `json:"prob_ai"`
}

func parseVerdict(raw string) (model.Result, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Result{}, errors.New("gemini returned an empty response")
	}
	var v verdict
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return model.Result{}, fmt.Errorf("gemini returned invalid JSON: %w", err)
	}
	if v.ProbAI == nil {
		return model.Result{}, errors.New("gemini response has no prob_ai")
	}
	p := *v.ProbAI
	if p < 0 || p > 1 {
		return model.Result{}, fmt.Errorf("gemini prob_ai %v out of range", p)
	}
	return model.NewResult(p, 1-p), nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
