package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"short", "short", false},
		{"exactly minimum", strings.Repeat("a", 200), true},
		{"one below minimum", strings.Repeat("a", 199), false},
		{"padding does not count", "   " + strings.Repeat("a", 199) + "\n\t", false},
		{"inner whitespace counts", strings.Repeat("a ", 100) + "b", true},
		{"multibyte characters", strings.Repeat("é", 200), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidText(tt.text, MinTextLength))
		})
	}
}
