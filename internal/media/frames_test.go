package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameIndices(t *testing.T) {
	tests := []struct {
		name     string
		total, k int
		want     []int
	}{
		{"evenly spaced", 100, 5, []int{0, 25, 50, 74, 99}},
		{"exact fit", 5, 5, []int{0, 1, 2, 3, 4}},
		{"fewer frames than samples", 3, 5, []int{0, 1, 1, 2, 2}},
		{"single frame", 1, 4, []int{0, 0, 0, 0}},
		{"no frames", 0, 3, []int{0, 0, 0}},
		{"negative total", -7, 2, []int{0, 0}},
		{"one sample", 50, 1, []int{0}},
		{"no samples", 50, 0, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FrameIndices(tt.total, tt.k))
		})
	}
}

func TestFrameIndicesBounds(t *testing.T) {
	for total := 0; total < 60; total++ {
		idx := FrameIndices(total, DefaultFrameCount)
		assert.Len(t, idx, DefaultFrameCount)
		for i, v := range idx {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, max(total-1, 0))
			if i > 0 {
				assert.GreaterOrEqual(t, v, idx[i-1], "indices must not decrease")
			}
		}
	}
}
