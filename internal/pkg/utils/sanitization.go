package utils

import (
	"strings"
	"unicode/utf8"
)

// TruncateForMetadata trims free text and cuts it to limit characters so it
// fits inside a processor metadata value. The cut counts runes, not bytes,
// so multibyte text is never split mid-character.
func TruncateForMetadata(text string, limit int) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit])
}
