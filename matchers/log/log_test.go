package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "unknown", Level(250).String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"ERROR":   LevelError,
	}

	for input, expected := range cases {
		level, err := ParseLevel(input)

		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, level, "input %q", input)
	}

	_, err := ParseLevel("shout")
	require.Error(t, err)
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "ok", Value: true}, Bool("ok", true))
	assert.Equal(t, Field{Key: "any", Value: 1.5}, Any("any", 1.5))
	assert.Equal(t, "error", Err(assert.AnError).Key)
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	// Must be safe to use and report nothing enabled.
	logger.Log(context.Background(), LevelError, "dropped")
	assert.False(t, logger.Enabled(LevelError))
	assert.Same(t, logger, logger.With(String("k", "v")))
}

func TestStdLoggerEnabled(t *testing.T) {
	t.Parallel()

	logger := NewStd(LevelInfo)

	assert.True(t, logger.Enabled(LevelError))
	assert.True(t, logger.Enabled(LevelInfo))
	assert.False(t, logger.Enabled(LevelDebug))

	var nilLogger *StdLogger

	assert.False(t, nilLogger.Enabled(LevelError))
}

func TestStdLoggerWith(t *testing.T) {
	t.Parallel()

	parent := NewStd(LevelDebug)
	child := parent.With(String("component", "matchers"))

	// With must not mutate the parent.
	require.Empty(t, parent.fields)

	stdChild, ok := child.(*StdLogger)
	require.True(t, ok)
	require.Len(t, stdChild.fields, 1)
	require.Equal(t, "component", stdChild.fields[0].Key)
}

func TestSanitizeLogString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `line1\nline2`, sanitizeLogString("line1\nline2"))
	assert.Equal(t, `tab\there`, sanitizeLogString("tab\there"))
	assert.Equal(t, "clean", sanitizeLogString("clean"))
}
