package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/Brownie44l1/aidetect-api/internal/detect"
	"github.com/Brownie44l1/aidetect-api/internal/format"
	"github.com/Brownie44l1/aidetect-api/internal/media"
	"github.com/Brownie44l1/aidetect-api/internal/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Options struct {
	MinTextLength    int
	MaxUploadBytes   int64
	InferenceTimeout time.Duration
}

type Handler struct {
	svc  *detect.Service
	opts Options
	log  *zap.SugaredLogger
}

func NewHandler(svc *detect.Service, opts Options, log *zap.SugaredLogger) *Handler {
	if opts.MinTextLength <= 0 {
		opts.MinTextLength = media.MinTextLength
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 100 << 20
	}
	return &Handler{
		svc:  svc,
		opts: opts,
		log:  log,
	}
}

type TextRequest struct {
	Text string `json:"text"`
}

// Health godoc
// @Summary  Service health and loaded models
// @Tags     health
// @Produce  json
// @Success  200 {object} HealthResponse
// @Router   /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
		Models: h.svc.Status(),
	})
}

// PredictText godoc
// @Summary  Classify text as AI-generated or human-written
// @Tags     detect
// @Accept   json
// @Produce  json
// @Param    request body     TextRequest true "Text to classify, at least 200 characters"
// @Success  200     {object} format.TextResponse
// @Failure  400     {object} ErrorResponse
// @Failure  500     {object} ErrorResponse
// @Failure  503     {object} ErrorResponse
// @Router   /detect/predict/text [post]
func (h *Handler) PredictText(c *gin.Context) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if !media.IsValidText(req.Text, h.opts.MinTextLength) {
		h.reject(c, http.StatusBadRequest, fmt.Sprintf("Text must be at least %d characters.", h.opts.MinTextLength))
		return
	}
	if h.svc.Text == nil {
		h.fail(c, "text", model.ErrModelUnavailable)
		return
	}

	ctx, cancel := h.inferenceContext(c)
	defer cancel()

	result, err := h.svc.Text.PredictText(ctx, req.Text)
	if err != nil {
		h.fail(c, "text", err)
		return
	}
	c.JSON(http.StatusOK, format.Text(result))
}

// PredictImage godoc
// @Summary  Classify an image as AI-generated or human-made
// @Tags     detect
// @Accept   multipart/form-data
// @Produce  json
// @Param    file formData file true "Image file (image/*)"
// @Success  200  {object} format.ImageResponse
// @Failure  400  {object} ErrorResponse
// @Failure  413  {object} ErrorResponse
// @Failure  500  {object} ErrorResponse
// @Failure  503  {object} ErrorResponse
// @Router   /detect/predict/image [post]
func (h *Handler) PredictImage(c *gin.Context) {
	data, ok := h.readUpload(c, "image/", "File is not an image.")
	if !ok {
		return
	}
	if h.svc.Image == nil {
		h.fail(c, "image", model.ErrModelUnavailable)
		return
	}

	ctx, cancel := h.inferenceContext(c)
	defer cancel()

	result, err := h.svc.Image.PredictImage(ctx, data)
	if err != nil {
		h.fail(c, "image", err)
		return
	}
	c.JSON(http.StatusOK, format.Image(result))
}

// PredictVideo godoc
// @Summary  Classify a video as AI-generated or human-made
// @Tags     detect
// @Accept   multipart/form-data
// @Produce  json
// @Param    file formData file true "Video file (video/*)"
// @Success  200  {object} format.VideoResponse
// @Failure  400  {object} ErrorResponse
// @Failure  413  {object} ErrorResponse
// @Failure  500  {object} ErrorResponse
// @Failure  503  {object} ErrorResponse
// @Router   /detect/predict/video [post]
func (h *Handler) PredictVideo(c *gin.Context) {
	data, ok := h.readUpload(c, "video/", "File is not a video.")
	if !ok {
		return
	}
	if h.svc.Video == nil {
		h.fail(c, "video", model.ErrModelUnavailable)
		return
	}

	ctx, cancel := h.inferenceContext(c)
	defer cancel()

	result, err := h.svc.Video.PredictVideo(ctx, data)
	if err != nil {
		h.fail(c, "video", err)
		return
	}
	c.JSON(http.StatusOK, format.Video(result))
}

// readUpload checks the declared content type of the "file" part before
// reading it fully into memory.
func (h *Handler) readUpload(c *gin.Context, typePrefix, wrongType string) ([]byte, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.abort(c, http.StatusRequestEntityTooLarge, kindPayloadTooLarge, "File is too large.")
			return nil, false
		}
		h.reject(c, http.StatusBadRequest, "No file provided. Use 'file' as the form field name.")
		return nil, false
	}
	if !strings.HasPrefix(strings.ToLower(header.Header.Get("Content-Type")), typePrefix) {
		h.reject(c, http.StatusBadRequest, wrongType)
		return nil, false
	}

	data, err := readFile(header)
	if err != nil {
		h.log.Warnw("failed to read upload", "file", header.Filename, "error", err)
		h.reject(c, http.StatusBadRequest, "Failed to read uploaded file.")
		return nil, false
	}
	h.log.Debugw("received file", "file", header.Filename, "size", len(data), "content_type", header.Header.Get("Content-Type"))
	return data, true
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (h *Handler) inferenceContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.opts.InferenceTimeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.opts.InferenceTimeout)
	}
	return context.WithCancel(c.Request.Context())
}
