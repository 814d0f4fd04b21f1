package matchers

// AnyOf is an ordered disjunction of matchers: it accepts a value iff at
// least one term accepts it.
//
// AnyOf follows the same one-shot builder rules as AllOf: built by Or,
// extended only through its Or method, and usable as a nested sub-matcher
// once finished.
type AnyOf[T any] struct {
	terms []*cachedMatcher[T]
}

var _ Matcher[struct{}] = (*AnyOf[struct{}])(nil)

// Or composes lhs and rhs into a fresh two-term disjunction. Extend the
// chain with the group's Or method: Or(a, b).Or(c) yields one flat
// three-term group.
//
// The group borrows its operands; they must stay alive through evaluation.
func Or[T any](lhs, rhs Matcher[T]) *AnyOf[T] {
	group := &AnyOf[T]{terms: make([]*cachedMatcher[T], 0, 2)}

	return group.Or(lhs).Or(rhs)
}

// Or appends m to the disjunction in place and returns the same group.
func (group *AnyOf[T]) Or(m Matcher[T]) *AnyOf[T] {
	group.terms = append(group.terms, cached(m))

	return group
}

// Match reports whether any term accepts value. Terms are evaluated in
// insertion order and evaluation stops at the first term that accepts.
func (group *AnyOf[T]) Match(value T) bool {
	for _, term := range group.terms {
		if term.Match(value) {
			return true
		}
	}

	return false
}

// Describe renders the terms' cached descriptions in insertion order,
// joined by " or " inside parentheses.
func (group *AnyOf[T]) Describe() string {
	return describeJoined(group.terms, " or ")
}
