package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fapete/Catch2/matchers/safe"
)

func TestEqualsString(t *testing.T) {
	t.Parallel()

	m := EqualsString("Hello")

	assert.True(t, m.Match("Hello"))
	assert.False(t, m.Match("hello"))
	assert.Equal(t, `equals: "Hello"`, m.Describe())

	insensitive := EqualsString("Hello", CaseInsensitive)
	assert.True(t, insensitive.Match("hELLO"))
	assert.Equal(t, `equals: "Hello" (case insensitive)`, insensitive.Describe())
}

func TestContainsSubstring(t *testing.T) {
	t.Parallel()

	m := ContainsSubstring("ell")

	assert.True(t, m.Match("Hello"))
	assert.False(t, m.Match("world"))
	assert.Equal(t, `contains: "ell"`, m.Describe())

	insensitive := ContainsSubstring("ELL", CaseInsensitive)
	assert.True(t, insensitive.Match("hello"))
}

func TestStartsWith(t *testing.T) {
	t.Parallel()

	m := StartsWith("He")

	assert.True(t, m.Match("Hello"))
	assert.False(t, m.Match("hello"))
	assert.Equal(t, `starts with: "He"`, m.Describe())

	assert.True(t, StartsWith("he", CaseInsensitive).Match("HELLO"))
}

func TestEndsWith(t *testing.T) {
	t.Parallel()

	m := EndsWith("lo")

	assert.True(t, m.Match("Hello"))
	assert.False(t, m.Match("Help"))
	assert.Equal(t, `ends with: "lo"`, m.Describe())

	assert.True(t, EndsWith("LO", CaseInsensitive).Match("hello"))
}

func TestMatchesPattern(t *testing.T) {
	t.Parallel()

	t.Run("valid pattern", func(t *testing.T) {
		t.Parallel()

		m, err := MatchesPattern(`^\d{4}-\d{2}-\d{2}$`)

		require.NoError(t, err)
		assert.True(t, m.Match("2026-08-23"))
		assert.False(t, m.Match("not a date"))
		assert.Equal(t, `matches "^\d{4}-\d{2}-\d{2}$" case sensitively`, m.Describe())
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()

		m, err := MatchesPattern(`^abc$`, CaseInsensitive)

		require.NoError(t, err)
		assert.True(t, m.Match("ABC"))
		assert.Equal(t, `matches "^abc$" case insensitively`, m.Describe())
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()

		m, err := MatchesPattern(`[unterminated`)

		require.Error(t, err)
		require.ErrorIs(t, err, safe.ErrInvalidRegex)
		assert.Nil(t, m)
	})
}

func TestStringMatchersCompose(t *testing.T) {
	t.Parallel()

	compound := And(StartsWith("He"), EndsWith("lo"))

	require.True(t, compound.Match("Hello"))
	require.False(t, compound.Match("Helipad"))
	require.Equal(t, `( starts with: "He" and ends with: "lo" )`, compound.Describe())
}
