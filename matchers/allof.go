package matchers

// AllOf is an ordered conjunction of matchers: it accepts a value iff every
// term accepts it.
//
// An AllOf is a one-shot builder. It is created by And from two operands and
// extended in place by its And method while the chain is being written;
// there is deliberately no way to merge two groups' term lists or to extend
// a group through any other path. A finished group used as an operand of
// And, Or, or Not participates as an ordinary nested sub-matcher.
type AllOf[T any] struct {
	terms []*cachedMatcher[T]
}

var _ Matcher[struct{}] = (*AllOf[struct{}])(nil)

// And composes lhs and rhs into a fresh two-term conjunction. Extend the
// chain with the group's And method: And(a, b).And(c) yields one flat
// three-term group, not nested two-term groups.
//
// The group borrows its operands; they must stay alive through evaluation.
func And[T any](lhs, rhs Matcher[T]) *AllOf[T] {
	group := &AllOf[T]{terms: make([]*cachedMatcher[T], 0, 2)}

	return group.And(lhs).And(rhs)
}

// And appends m to the conjunction in place and returns the same group, so
// that chained calls extend one flat group without reallocation per link.
func (group *AllOf[T]) And(m Matcher[T]) *AllOf[T] {
	group.terms = append(group.terms, cached(m))

	return group
}

// Match reports whether every term accepts value. Terms are evaluated in
// insertion order and evaluation stops at the first term that rejects.
func (group *AllOf[T]) Match(value T) bool {
	for _, term := range group.terms {
		if !term.Match(value) {
			return false
		}
	}

	return true
}

// Describe renders the terms' cached descriptions in insertion order,
// joined by " and " inside parentheses.
func (group *AllOf[T]) Describe() string {
	return describeJoined(group.terms, " and ")
}
