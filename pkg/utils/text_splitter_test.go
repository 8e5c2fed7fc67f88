package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("texto corto", 100, 20)
	require.Len(t, chunks, 1)
	assert.Equal(t, "texto corto", chunks[0])
}

func TestSplitTextOverlap(t *testing.T) {
	text := strings.Repeat("palabra ", 200) // 1600 runes
	chunks := SplitText(text, 500, 100)

	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c)), 500)
	}

	// Consecutive chunks share the overlap region.
	first := []rune(chunks[0])
	second := []rune(chunks[1])
	assert.True(t, strings.HasPrefix(string(second), string(first[400:420])))
}

func TestSplitTextBreaksOnWhitespace(t *testing.T) {
	text := strings.Repeat("artículo cuarenta y cinco de la ley ", 40)
	for _, c := range SplitText(text, 300, 50) {
		assert.False(t, strings.HasSuffix(c, "artícu"),
			"chunk should not end mid-word: %q", c)
	}
}

func TestSplitTextOverlapLargerThanChunk(t *testing.T) {
	text := strings.Repeat("a", 1000)
	chunks := SplitText(text, 100, 100)
	// Falls back to non-overlapping steps instead of looping forever.
	assert.Len(t, chunks, 10)
}
