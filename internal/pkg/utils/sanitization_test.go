package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForMetadata(t *testing.T) {
	t.Run("Short Text Passes Through", func(t *testing.T) {
		assert.Equal(t, "mild headache", TruncateForMetadata("mild headache", 500))
	})

	t.Run("Whitespace Is Trimmed", func(t *testing.T) {
		assert.Equal(t, "mild headache", TruncateForMetadata("  mild headache  ", 500))
	})

	t.Run("Long Text Is Cut To Limit", func(t *testing.T) {
		long := strings.Repeat("a", 600)
		result := TruncateForMetadata(long, 500)
		assert.Len(t, result, 500)
	})

	t.Run("Exact Limit Is Kept", func(t *testing.T) {
		exact := strings.Repeat("b", 500)
		assert.Equal(t, exact, TruncateForMetadata(exact, 500))
	})

	t.Run("Multibyte Text Is Cut On Rune Boundaries", func(t *testing.T) {
		// Urdu description well past the limit; each character is multibyte.
		long := strings.Repeat("درد", 300)
		result := TruncateForMetadata(long, 500)

		assert.True(t, utf8.ValidString(result))
		assert.Equal(t, 500, utf8.RuneCountInString(result))
	})

	t.Run("Multibyte Text Under The Limit Is Untouched", func(t *testing.T) {
		text := "سر میں شدید درد"
		assert.Equal(t, text, TruncateForMetadata(text, 500))
	})
}

func TestGenerateRoomID(t *testing.T) {
	first := GenerateRoomID()
	second := GenerateRoomID()

	assert.True(t, strings.HasPrefix(first, "room_"))
	assert.NotContains(t, first, "-")
	assert.NotEqual(t, first, second)
}
