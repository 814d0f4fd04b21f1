package matchers

// NotOf negates exactly one wrapped matcher. The wrapped matcher is set at
// construction and never changes; negating a compound expression is done by
// wrapping the whole group, which is itself a matcher.
type NotOf[T any] struct {
	matcher *cachedMatcher[T]
}

var _ Matcher[struct{}] = (*NotOf[struct{}])(nil)

// Not wraps m in a negation. The wrapper borrows m; it must stay alive
// through evaluation.
func Not[T any](m Matcher[T]) *NotOf[T] {
	return &NotOf[T]{matcher: cached(m)}
}

// Match reports the logical negation of the wrapped matcher's result.
func (not *NotOf[T]) Match(value T) bool {
	return !not.matcher.Match(value)
}

// Describe renders "not " followed by the wrapped matcher's cached
// description.
func (not *NotOf[T]) Describe() string {
	return "not " + not.matcher.Describe()
}
