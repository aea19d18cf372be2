package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Brownie44l1/aidetect-api/internal/model"
)

// TextClassifier calls an external inference service over HTTP.
type TextClassifier struct {
	url   string
	httpc *http.Client
}

func New(url string, timeout time.Duration) *TextClassifier {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &TextClassifier{
		url:   strings.TrimSpace(url),
		httpc: &http.Client{Timeout: timeout},
	}
}

type textRequest struct {
	Text string `json:"text"`
}

type textResponse struct {
	Label      string   `json:"label"`
	ProbAI     *float64 `json:"prob_ai"`
	ProbHuman  *float64 `json:"prob_human"`
	Confidence *float64 `json:"confidence"`
}

func (c *TextClassifier) PredictText(ctx context.Context, text string) (model.Result, error) {
	payload, err := json.Marshal(textRequest{Text: text})
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to call inference service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("inference service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity {
			return model.Result{}, fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
		}
		return model.Result{}, err
	}

	var out textResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.Result{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return out.toResult()
}

func (r textResponse) toResult() (model.Result, error) {
	if r.ProbAI == nil {
		return model.Result{}, fmt.Errorf("inference response has no prob_ai")
	}
	probAI := *r.ProbAI
	probHuman := 1 - probAI
	if r.ProbHuman != nil {
		probHuman = *r.ProbHuman
	}

	res := model.NewResult(probAI, probHuman)
	switch {
	case strings.EqualFold(r.Label, string(model.LabelAI)):
		res.Label = model.LabelAI
	case strings.EqualFold(r.Label, string(model.LabelHuman)):
		res.Label = model.LabelHuman
	}
	if r.Confidence != nil {
		res.Confidence = r.Confidence
	}
	return res, nil
}
