package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceContains(t *testing.T) {
	t.Parallel()

	m := SliceContains(2)

	assert.True(t, m.Match([]int{1, 2, 3}))
	assert.False(t, m.Match([]int{1, 3}))
	assert.False(t, m.Match(nil))
	assert.Equal(t, "contains element 2", m.Describe())
}

func TestUnorderedEquals(t *testing.T) {
	t.Parallel()

	m := UnorderedEquals([]int{1, 2, 3})

	assert.True(t, m.Match([]int{3, 1, 2}))
	assert.True(t, m.Match([]int{1, 2, 3}))
	assert.False(t, m.Match([]int{1, 2}))
	assert.False(t, m.Match([]int{1, 2, 4}))
	assert.Equal(t, "unordered equals [1 2 3]", m.Describe())

	// Multiplicity is respected.
	duplicates := UnorderedEquals([]int{1, 1, 2})
	assert.True(t, duplicates.Match([]int{1, 2, 1}))
	assert.False(t, duplicates.Match([]int{1, 2, 2}))
}

func TestSizeIs(t *testing.T) {
	t.Parallel()

	m := SizeIs[string](2)

	assert.True(t, m.Match([]string{"a", "b"}))
	assert.False(t, m.Match([]string{"a"}))
	assert.Equal(t, "has size == 2", m.Describe())
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	m := IsEmpty[int]()

	assert.True(t, m.Match(nil))
	assert.True(t, m.Match([]int{}))
	assert.False(t, m.Match([]int{1}))
	assert.Equal(t, "is empty", m.Describe())
}

func TestAllMatch(t *testing.T) {
	t.Parallel()

	m := AllMatch(Predicate(func(v int) bool { return v > 0 }, "is positive"))

	assert.True(t, m.Match([]int{1, 2, 3}))
	assert.True(t, m.Match(nil))
	assert.False(t, m.Match([]int{1, -2, 3}))
	assert.Equal(t, "all elements match: is positive", m.Describe())
}

func TestAnyMatch(t *testing.T) {
	t.Parallel()

	m := AnyMatch(Equals(2))

	assert.True(t, m.Match([]int{1, 2, 3}))
	assert.False(t, m.Match([]int{1, 3}))
	assert.False(t, m.Match(nil))
	assert.Equal(t, "any element matches: equals 2", m.Describe())
}

func TestNoneMatch(t *testing.T) {
	t.Parallel()

	m := NoneMatch(Equals(2))

	assert.True(t, m.Match([]int{1, 3}))
	assert.True(t, m.Match(nil))
	assert.False(t, m.Match([]int{1, 2}))
	assert.Equal(t, "no element matches: equals 2", m.Describe())
}

func TestQuantifiersShortCircuit(t *testing.T) {
	t.Parallel()

	rejecting := &countingMatcher{accept: false}
	require.False(t, AllMatch[int](rejecting).Match([]int{1, 2, 3}))
	require.Equal(t, 1, rejecting.calls)

	accepting := &countingMatcher{accept: true}
	require.True(t, AnyMatch[int](accepting).Match([]int{1, 2, 3}))
	require.Equal(t, 1, accepting.calls)
}
