package gemini

import (
	"context"
	"testing"

	"github.com/Brownie44l1/aidetect-api/internal/model"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict(t *testing.T) {
	r, err := parseVerdict(` {"prob_ai": 0.93} `)
	require.NoError(t, err)
	assert.Equal(t, model.LabelAI, r.Label)
	assert.InDelta(t, 0.93, r.ProbAI, 1e-9)
	assert.InDelta(t, 0.07, r.ProbHuman, 1e-9)

	r, err = parseVerdict(`{"prob_ai": 0}`)
	require.NoError(t, err)
	assert.Equal(t, model.LabelHuman, r.Label)
}

func TestParseVerdictErrors(t *testing.T) {
	for _, raw := range []string{"", "sure, it looks AI-written", `{"score": 0.4}`, `{"prob_ai": 1.7}`, `{"prob_ai": -0.1}`} {
		_, err := parseVerdict(raw)
		assert.Error(t, err, raw)
	}
}

func TestFirstText(t *testing.T) {
	assert.Empty(t, firstText(nil))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"prob_ai":0.2}`)}}},
		},
	}
	assert.Equal(t, `{"prob_ai":0.2}`, firstText(resp))
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), "  ", "gemini-2.5-flash")
	assert.Error(t, err)
}

func TestNewTrimsModelName(t *testing.T) {
	c, err := New(context.Background(), "test-key", " gemini-2.5-flash ")
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "gemini-2.5-flash", c.Name())
}
