package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Brownie44l1/aidetect-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req textRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "some essay", req.Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"label":"Human","prob_ai":0.2,"prob_human":0.8,"confidence":0.61}`))
	}))
	defer srv.Close()

	r, err := New(srv.URL, time.Second).PredictText(context.Background(), "some essay")
	require.NoError(t, err)
	assert.Equal(t, model.LabelHuman, r.Label)
	assert.Equal(t, 0.2, r.ProbAI)
	assert.Equal(t, 0.8, r.ProbHuman)
	require.NotNil(t, r.Confidence)
	assert.Equal(t, 0.61, *r.Confidence)
}

func TestPredictTextDerivesMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prob_ai":0.9}`))
	}))
	defer srv.Close()

	r, err := New(srv.URL, time.Second).PredictText(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, model.LabelAI, r.Label)
	assert.InDelta(t, 0.1, r.ProbHuman, 1e-9)
	assert.InDelta(t, 0.9, *r.Confidence, 1e-9)
}

func TestPredictTextErrors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		invalidInput bool
	}{
		{"rejected input", http.StatusUnprocessableEntity, `{"detail":"too long"}`, true},
		{"server error", http.StatusInternalServerError, `boom`, false},
		{"not found", http.StatusNotFound, `nope`, false},
		{"bad body", http.StatusOK, `{`, false},
		{"no probability", http.StatusOK, `{"label":"AI"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, time.Second).PredictText(context.Background(), "x")
			require.Error(t, err)
			assert.Equal(t, tt.invalidInput, errors.Is(err, model.ErrInvalidInput))
		})
	}
}

func TestPredictTextHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := New(srv.URL, time.Minute).PredictText(ctx, "x")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
