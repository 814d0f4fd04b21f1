package matchers

type predicateMatcher[T any] struct {
	fn          func(T) bool
	description string
}

// Predicate lifts an arbitrary function into a matcher. The description is
// used verbatim in failure messages, so phrase it as a property of the value
// ("is prime", "has an even length").
//
//nolint:ireturn
func Predicate[T any](fn func(T) bool, description string) Matcher[T] {
	return predicateMatcher[T]{fn: fn, description: description}
}

func (m predicateMatcher[T]) Match(value T) bool {
	return m.fn(value)
}

func (m predicateMatcher[T]) Describe() string {
	return m.description
}
