package media

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProbe(t *testing.T) {
	w, h, n, err := parseProbe([]byte(`{"streams":[{"width":640,"height":360,"nb_frames":"48","nb_read_packets":"48"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []int{640, 360, 48}, []int{w, h, n})

	// webm and some mkv files carry no nb_frames
	_, _, n, err = parseProbe([]byte(`{"streams":[{"width":320,"height":240,"nb_read_packets":"12"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, _, n, err = parseProbe([]byte(`{"streams":[{"width":320,"height":240}]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, _, _, err = parseProbe([]byte(`{"streams":[]}`))
	assert.Error(t, err)
	_, _, _, err = parseProbe([]byte(`{"streams":[{"width":0,"height":0}]}`))
	assert.Error(t, err)
	_, _, _, err = parseProbe([]byte(`not json`))
	assert.Error(t, err)
}

func TestSelectFilter(t *testing.T) {
	assert.Equal(t, `select=eq(n\,0)+eq(n\,12)+eq(n\,24)`, selectFilter([]int{0, 12, 24}))
}

func TestVideoFileCloseRemovesTempFile(t *testing.T) {
	v, err := OpenVideo([]byte("fake video bytes"))
	require.NoError(t, err)

	path := v.Path()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fake video bytes", string(raw))

	require.NoError(t, v.Close())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, v.Close(), "second close is a no-op")
	assert.False(t, v.HasFrame(context.Background()))
}

func TestVideoFileCloseIgnoresMissingFile(t *testing.T) {
	v, err := OpenVideo([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, os.Remove(v.Path()))
	assert.NoError(t, v.Close())
}

func TestIsValidVideoRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsValidVideo(ctx, nil))
	assert.False(t, IsValidVideo(ctx, []byte("this is not a video container")))

	missing := Tools{FFmpeg: filepath.Join(t.TempDir(), "no-ffmpeg"), FFprobe: "no-ffprobe"}
	assert.False(t, missing.IsValidVideo(ctx, []byte("anything")))
}

func requireFFmpeg(t *testing.T) {
	t.Helper()
	for _, bin := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(bin); err != nil {
			t.Skipf("%s not found in PATH", bin)
		}
	}
}

// makeClip renders a short synthetic clip with ffmpeg.
func makeClip(t *testing.T, frames int) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.avi")
	cmd := exec.Command("ffmpeg", "-v", "error", "-nostdin",
		"-f", "lavfi", "-i", "testsrc=size=64x48:rate=10",
		"-frames:v", strconv.Itoa(frames),
		"-c:v", "mjpeg", "-pix_fmt", "yuvj420p", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Skipf("ffmpeg cannot render test clip: %v: %s", err, out)
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestSampleFramesFromRealVideo(t *testing.T) {
	requireFFmpeg(t)
	ctx := context.Background()

	for _, n := range []int{1, 30} {
		data := makeClip(t, n)
		assert.True(t, IsValidVideo(ctx, data))

		v, err := OpenVideo(data)
		require.NoError(t, err)

		total, err := v.FrameCount(ctx)
		require.NoError(t, err)
		assert.InDelta(t, n, total, 1)

		frames, err := SampleFrames(ctx, v, DefaultFrameCount, 32)
		require.NoError(t, err)
		require.Len(t, frames, DefaultFrameCount)
		for _, f := range frames {
			assert.Len(t, f.Pix, 32*32*3)
		}
		if n == 1 {
			for _, f := range frames {
				assert.Equal(t, frames[0].Pix, f.Pix)
			}
		}

		path := v.Path()
		require.NoError(t, v.Close())
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	}
}
