package media

import (
	"strings"
	"unicode/utf8"
)

const MinTextLength = 200

// IsValidText reports whether text has at least minLength characters once
// surrounding whitespace is trimmed.
func IsValidText(text string, minLength int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= minLength
}
