package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Tools names the ffmpeg and ffprobe binaries used to decode video.
type Tools struct {
	FFmpeg  string
	FFprobe string
}

var DefaultTools = Tools{FFmpeg: "ffmpeg", FFprobe: "ffprobe"}

// VideoFile is an uploaded video materialized on disk so ffmpeg can seek in it.
// It must be closed to remove the temporary file.
type VideoFile struct {
	tools Tools
	path  string

	probed bool
	width  int
	height int
	frames int
}

// OpenVideo writes data to a temporary file.
func (t Tools) OpenVideo(data []byte) (*VideoFile, error) {
	f, err := os.CreateTemp("", "detect-*.mp4")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp video: %w", err)
	}
	path := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("failed to write temp video: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write temp video: %w", err)
	}
	return &VideoFile{tools: t.withDefaults(), path: path}, nil
}

func OpenVideo(data []byte) (*VideoFile, error) {
	return DefaultTools.OpenVideo(data)
}

func (t Tools) withDefaults() Tools {
	if t.FFmpeg == "" {
		t.FFmpeg = DefaultTools.FFmpeg
	}
	if t.FFprobe == "" {
		t.FFprobe = DefaultTools.FFprobe
	}
	return t
}

func (v *VideoFile) Path() string { return v.path }

// Close removes the temporary file. It is safe to call more than once.
func (v *VideoFile) Close() error {
	if v.path == "" {
		return nil
	}
	err := os.Remove(v.path)
	v.path = ""
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// IsValidVideo reports whether at least one frame of data decodes.
func (t Tools) IsValidVideo(ctx context.Context, data []byte) bool {
	if len(data) == 0 {
		return false
	}
	v, err := t.OpenVideo(data)
	if err != nil {
		return false
	}
	defer v.Close()
	return v.HasFrame(ctx)
}

func IsValidVideo(ctx context.Context, data []byte) bool {
	return DefaultTools.IsValidVideo(ctx, data)
}

// HasFrame decodes the first frame of the first video stream.
func (v *VideoFile) HasFrame(ctx context.Context) bool {
	if v.path == "" {
		return false
	}
	cmd := exec.CommandContext(ctx, v.tools.FFmpeg,
		"-v", "error", "-nostdin",
		"-i", v.path,
		"-map", "0:v:0", "-frames:v", "1",
		"-f", "rawvideo", "-pix_fmt", "rgb24", "pipe:1")
	out, err := cmd.Output()
	return err == nil && len(out) > 0
}

func (v *VideoFile) probe(ctx context.Context) error {
	if v.probed {
		return nil
	}
	cmd := exec.CommandContext(ctx, v.tools.FFprobe,
		"-v", "error",
		"-select_streams", "v:0",
		"-count_packets",
		"-show_entries", "stream=width,height,nb_frames,nb_read_packets",
		"-of", "json",
		v.path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("ffprobe failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	w, h, n, err := parseProbe(out)
	if err != nil {
		return err
	}
	v.width, v.height, v.frames = w, h, n
	v.probed = true
	return nil
}

type probeOutput struct {
	Streams []struct {
		Width         int    `json:"width"`
		Height        int    `json:"height"`
		NbFrames      string `json:"nb_frames"`
		NbReadPackets string `json:"nb_read_packets"`
	} `json:"streams"`
}

func parseProbe(raw []byte) (width, height, frames int, err error) {
	var out probeOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	if len(out.Streams) == 0 {
		return 0, 0, 0, errors.New("no video stream")
	}
	s := out.Streams[0]
	if s.Width <= 0 || s.Height <= 0 {
		return 0, 0, 0, fmt.Errorf("invalid video dimensions %dx%d", s.Width, s.Height)
	}
	frames, convErr := strconv.Atoi(s.NbFrames)
	if convErr != nil || frames <= 0 {
		frames, _ = strconv.Atoi(s.NbReadPackets)
	}
	return s.Width, s.Height, max(frames, 0), nil
}

// FrameCount returns the number of frames reported by the container.
func (v *VideoFile) FrameCount(ctx context.Context) (int, error) {
	if err := v.probe(ctx); err != nil {
		return 0, err
	}
	return v.frames, nil
}

// DecodeFrames decodes the requested frames with a single ffmpeg pass. Frames
// are streamed as raw RGB so only one native-size frame is held at a time.
func (v *VideoFile) DecodeFrames(ctx context.Context, indices []int, fn func(index int, img image.Image) error) error {
	if len(indices) == 0 {
		return nil
	}
	if err := v.probe(ctx); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, v.tools.FFmpeg,
		"-v", "error", "-nostdin",
		"-noautorotate",
		"-i", v.path,
		"-map", "0:v:0",
		"-vf", selectFilter(indices),
		"-vsync", "0",
		"-f", "rawvideo", "-pix_fmt", "rgb24", "pipe:1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	buf := make([]byte, v.width*v.height*3)
	var cbErr error
	for _, index := range indices {
		if _, err := io.ReadFull(stdout, buf); err != nil {
			break
		}
		if cbErr = fn(index, rgbImage(buf, v.width, v.height)); cbErr != nil {
			break
		}
	}
	_, _ = io.Copy(io.Discard, stdout)
	waitErr := cmd.Wait()

	if cbErr != nil {
		return cbErr
	}
	if waitErr != nil {
		return fmt.Errorf("ffmpeg failed: %w: %s", waitErr, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// selectFilter builds an ffmpeg select expression that keeps only the given frame numbers.
func selectFilter(indices []int) string {
	terms := make([]string, len(indices))
	for i, n := range indices {
		terms[i] = `eq(n\,` + strconv.Itoa(n) + `)`
	}
	return "select=" + strings.Join(terms, "+")
}

func rgbImage(buf []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, j := 0, 0; i < len(buf); i, j = i+3, j+4 {
		img.Pix[j] = buf[i]
		img.Pix[j+1] = buf[i+1]
		img.Pix[j+2] = buf[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}
