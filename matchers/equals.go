package matchers

import (
	"fmt"
	"reflect"

	"github.com/fapete/Catch2/matchers/internal/nilcheck"
)

type equalsMatcher[T comparable] struct {
	expected T
}

// Equals matches values equal to expected under Go's == operator.
//
//nolint:ireturn
func Equals[T comparable](expected T) Matcher[T] {
	return equalsMatcher[T]{expected: expected}
}

func (m equalsMatcher[T]) Match(value T) bool {
	return value == m.expected
}

func (m equalsMatcher[T]) Describe() string {
	return fmt.Sprintf("equals %v", m.expected)
}

type deepEqualsMatcher[T any] struct {
	expected T
}

// DeepEquals matches values deeply equal to expected per reflect.DeepEqual.
// Use it for slices, maps, and structs containing them; prefer Equals for
// comparable types.
//
//nolint:ireturn
func DeepEquals[T any](expected T) Matcher[T] {
	return deepEqualsMatcher[T]{expected: expected}
}

func (m deepEqualsMatcher[T]) Match(value T) bool {
	return reflect.DeepEqual(value, m.expected)
}

func (m deepEqualsMatcher[T]) Describe() string {
	return fmt.Sprintf("deep equals %v", m.expected)
}

type nilMatcher struct{}

// IsNil matches nil values, including typed-nil interfaces (a nil *T stored
// in an interface).
//
//nolint:ireturn
func IsNil() Matcher[any] {
	return nilMatcher{}
}

func (nilMatcher) Match(value any) bool {
	return nilcheck.Interface(value)
}

func (nilMatcher) Describe() string {
	return "is nil"
}
