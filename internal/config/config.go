package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	TextBackendGemini = "gemini"
	TextBackendRemote = "remote"
	TextBackendNone   = "none"
)

type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	ONNXRuntimeLib    string
	ImageModelPath    string
	ImageMetadataPath string
	VideoModelPath    string
	VideoMetadataPath string

	TextBackend  string
	GeminiAPIKey string
	GeminiModel  string
	TextModelURL string

	MinTextLength  int
	VideoFrames    int
	VideoFrameSize int
	MaxUploadBytes int64

	InferenceTimeout time.Duration
	ShutdownTimeout  time.Duration

	CORSAllowOrigins []string

	FFmpegPath  string
	FFprobePath string
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) (string, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return "", fmt.Errorf("missing required env %s", k)
	}
	return v, nil
}

func getInt(k string, def int) (int, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("env %s: expected a positive integer, got %q", k, v)
	}
	return n, nil
}

func getDuration(k string, def time.Duration) (time.Duration, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("env %s: expected a duration such as 30s, got %q", k, v)
	}
	return d, nil
}

func getList(k, def string) []string {
	var out []string
	for _, s := range strings.Split(getEnv(k, def), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "release"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		ONNXRuntimeLib:    getEnv("ONNXRUNTIME_LIB", ""),
		ImageModelPath:    getEnv("IMAGE_MODEL_PATH", ""),
		ImageMetadataPath: getEnv("IMAGE_METADATA_PATH", ""),
		VideoModelPath:    getEnv("VIDEO_MODEL_PATH", ""),
		VideoMetadataPath: getEnv("VIDEO_METADATA_PATH", ""),

		TextBackend:  strings.ToLower(getEnv("TEXT_BACKEND", TextBackendNone)),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		TextModelURL: getEnv("TEXT_MODEL_URL", ""),

		CORSAllowOrigins: getList("CORS_ALLOW_ORIGINS", "*"),

		FFmpegPath:  getEnv("FFMPEG_PATH", "ffmpeg"),
		FFprobePath: getEnv("FFPROBE_PATH", "ffprobe"),
	}

	var err error
	if cfg.MinTextLength, err = getInt("MIN_TEXT_LENGTH", 200); err != nil {
		return nil, err
	}
	if cfg.VideoFrames, err = getInt("VIDEO_FRAMES", 0); err != nil {
		return nil, err
	}
	if cfg.VideoFrameSize, err = getInt("VIDEO_FRAME_SIZE", 0); err != nil {
		return nil, err
	}
	maxUpload, err := getInt("MAX_UPLOAD_BYTES", 100<<20)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadBytes = int64(maxUpload)
	if cfg.InferenceTimeout, err = getDuration("INFERENCE_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.loadTextBackend(); err != nil {
		return nil, err
	}
	if err := pairedPaths("IMAGE", cfg.ImageModelPath, cfg.ImageMetadataPath); err != nil {
		return nil, err
	}
	if err := pairedPaths("VIDEO", cfg.VideoModelPath, cfg.VideoMetadataPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadTextBackend() error {
	var err error
	switch c.TextBackend {
	case TextBackendGemini:
		c.GeminiAPIKey, err = mustEnv("GEMINI_API_KEY")
	case TextBackendRemote:
		c.TextModelURL, err = mustEnv("TEXT_MODEL_URL")
	case TextBackendNone:
	default:
		err = fmt.Errorf("env TEXT_BACKEND: unknown backend %q", c.TextBackend)
	}
	return err
}

func pairedPaths(prefix, modelPath, metadataPath string) error {
	if (modelPath == "") != (metadataPath == "") {
		return fmt.Errorf("%s_MODEL_PATH and %s_METADATA_PATH must be set together", prefix, prefix)
	}
	return nil
}

// ONNXEnabled reports whether any modality is served by an ONNX model.
func (c *Config) ONNXEnabled() bool {
	return c.ImageModelPath != "" || c.VideoModelPath != ""
}
