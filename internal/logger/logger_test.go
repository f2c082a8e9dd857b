package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New("development", false)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.False(t, log.Core().Enabled(-1), "debug must be off by default")

	debugLog, err := New("production", true)
	require.NoError(t, err)
	assert.True(t, debugLog.Core().Enabled(-1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "trimmed", Truncate("  trimmed  ", 10))

	// Rune-safe: never cuts a multibyte character in half.
	got := Truncate(strings.Repeat("日", 5), 3)
	assert.Equal(t, "日日日...", got)
}
