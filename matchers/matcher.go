package matchers

import (
	"strings"
	"sync"
)

// Matcher is the capability every predicate satisfies: a boolean test over a
// value of type T plus a human-readable description of what the test checks.
//
// Combinators (AllOf, AnyOf, NotOf) implement Matcher themselves, so any
// matcher, leaf or compound, can appear wherever a Matcher is expected.
type Matcher[T any] interface {
	// Match reports whether value satisfies the predicate.
	Match(value T) bool

	// Describe returns a human-readable description of the predicate.
	// Describe is conceptually pure and stable for the matcher's lifetime.
	Describe() string
}

// cachedMatcher memoizes the wrapped matcher's description so that a compound
// tree renders each node at most once.
type cachedMatcher[T any] struct {
	matcher Matcher[T]
	once    sync.Once
	text    string
}

// Cached wraps m so that its description is rendered at most once: the first
// Describe call invokes m.Describe and every later call returns that first
// rendering unconditionally.
//
// If m's description depends on mutable state that changes after the first
// rendering, the cached text goes stale. That is accepted behavior: the cache
// trades staleness for never rebuilding description strings for the same
// matcher instance. Wrapping an already-cached matcher returns it unchanged,
// so caching composes through nested groups.
//
//nolint:ireturn
func Cached[T any](m Matcher[T]) Matcher[T] {
	return cached(m)
}

func cached[T any](m Matcher[T]) *cachedMatcher[T] {
	if c, ok := m.(*cachedMatcher[T]); ok {
		return c
	}

	return &cachedMatcher[T]{matcher: m}
}

// Match delegates to the wrapped matcher.
func (c *cachedMatcher[T]) Match(value T) bool {
	return c.matcher.Match(value)
}

// Describe returns the wrapped matcher's description, rendering it on first
// call and returning the stored text on every call after that.
func (c *cachedMatcher[T]) Describe() string {
	c.once.Do(func() {
		c.text = c.matcher.Describe()
	})

	return c.text
}

// describeJoined renders a group description: "( " + the terms' cached
// descriptions joined by joiner + " )", in insertion order. A group with no
// terms renders "(  )".
func describeJoined[T any](terms []*cachedMatcher[T], joiner string) string {
	var sb strings.Builder

	sb.WriteString("( ")

	for i, term := range terms {
		if i > 0 {
			sb.WriteString(joiner)
		}

		sb.WriteString(term.Describe())
	}

	sb.WriteString(" )")

	return sb.String()
}
