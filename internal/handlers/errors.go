package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Brownie44l1/aidetect-api/internal/media"
	"github.com/Brownie44l1/aidetect-api/internal/model"
	"github.com/gin-gonic/gin"
)

const (
	kindValidation       = "validation_error"
	kindInvalidInput     = "invalid_input"
	kindInferenceFailed  = "inference_failed"
	kindInferenceTimeout = "inference_timeout"
	kindModelUnavailable = "model_unavailable"
	kindPayloadTooLarge  = "payload_too_large"
)

// ErrorResponse is the body of every non-2xx response. Detail is always a
// fixed, client-safe message; the underlying error is only logged.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string          `json:"status"`
	Models map[string]bool `json:"models"`
}

// classify maps an inference error to a status code, kind and safe detail.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, model.ErrModelUnavailable):
		return http.StatusServiceUnavailable, kindModelUnavailable, "Model is not loaded."
	case errors.Is(err, media.ErrEmptyVideo):
		return http.StatusBadRequest, kindInvalidInput, "No frames could be read from video."
	case errors.Is(err, media.ErrInvalidImage):
		return http.StatusBadRequest, kindInvalidInput, "File is not a valid image."
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, kindInvalidInput, "Input could not be processed by the model."
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, kindInferenceTimeout, "Prediction timed out."
	default:
		return http.StatusInternalServerError, kindInferenceFailed, "Prediction failed."
	}
}

func (h *Handler) fail(c *gin.Context, modality string, err error) {
	status, kind, detail := classify(err)
	if status >= http.StatusInternalServerError {
		h.log.Errorw("prediction failed", "modality", modality, "kind", kind, "error", err)
	} else {
		h.log.Infow("prediction rejected", "modality", modality, "kind", kind, "error", err)
	}
	h.abort(c, status, kind, detail)
}

func (h *Handler) reject(c *gin.Context, status int, detail string) {
	h.abort(c, status, kindValidation, detail)
}

func (h *Handler) abort(c *gin.Context, status int, kind, detail string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: kind, Detail: detail})
}
