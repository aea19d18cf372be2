package media

import "math"

const (
	DefaultFrameCount = 20
	DefaultFrameSize  = 224
)

// FrameIndices returns k evenly spaced frame indices over [0, total-1],
// rounded to the nearest frame. Indices repeat when total < k.
func FrameIndices(total, k int) []int {
	if k <= 0 {
		return []int{}
	}
	last := max(total-1, 0)
	idx := make([]int, k)
	if k == 1 {
		return idx
	}
	step := float64(last) / float64(k-1)
	for i := range idx {
		idx[i] = int(math.Round(step * float64(i)))
	}
	idx[k-1] = last
	return idx
}
