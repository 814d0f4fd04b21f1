package matchers

import (
	"fmt"
)

type sliceContainsMatcher[T comparable] struct {
	element T
}

// SliceContains matches slices containing at least one element equal to
// element.
//
//nolint:ireturn
func SliceContains[T comparable](element T) Matcher[[]T] {
	return sliceContainsMatcher[T]{element: element}
}

func (m sliceContainsMatcher[T]) Match(value []T) bool {
	for _, candidate := range value {
		if candidate == m.element {
			return true
		}
	}

	return false
}

func (m sliceContainsMatcher[T]) Describe() string {
	return fmt.Sprintf("contains element %v", m.element)
}

type unorderedEqualsMatcher[T comparable] struct {
	expected []T
}

// UnorderedEquals matches slices holding exactly the expected elements in
// any order, respecting multiplicity: [1, 1, 2] does not match [1, 2, 2].
//
//nolint:ireturn
func UnorderedEquals[T comparable](expected []T) Matcher[[]T] {
	return unorderedEqualsMatcher[T]{expected: expected}
}

func (m unorderedEqualsMatcher[T]) Match(value []T) bool {
	if len(value) != len(m.expected) {
		return false
	}

	counts := make(map[T]int, len(m.expected))
	for _, element := range m.expected {
		counts[element]++
	}

	for _, element := range value {
		counts[element]--
		if counts[element] < 0 {
			return false
		}
	}

	return true
}

func (m unorderedEqualsMatcher[T]) Describe() string {
	return fmt.Sprintf("unordered equals %v", m.expected)
}

type sizeIsMatcher[T any] struct {
	size int
}

// SizeIs matches slices of exactly the given length.
//
//nolint:ireturn
func SizeIs[T any](size int) Matcher[[]T] {
	return sizeIsMatcher[T]{size: size}
}

func (m sizeIsMatcher[T]) Match(value []T) bool {
	return len(value) == m.size
}

func (m sizeIsMatcher[T]) Describe() string {
	return fmt.Sprintf("has size == %d", m.size)
}

type isEmptyMatcher[T any] struct{}

// IsEmpty matches slices with no elements, nil included.
//
//nolint:ireturn
func IsEmpty[T any]() Matcher[[]T] {
	return isEmptyMatcher[T]{}
}

func (isEmptyMatcher[T]) Match(value []T) bool {
	return len(value) == 0
}

func (isEmptyMatcher[T]) Describe() string {
	return "is empty"
}

type allMatchMatcher[T any] struct {
	inner *cachedMatcher[T]
}

// AllMatch matches slices whose every element satisfies inner. Evaluation
// stops at the first element that does not. An empty slice matches.
//
//nolint:ireturn
func AllMatch[T any](inner Matcher[T]) Matcher[[]T] {
	return allMatchMatcher[T]{inner: cached(inner)}
}

func (m allMatchMatcher[T]) Match(value []T) bool {
	for _, element := range value {
		if !m.inner.Match(element) {
			return false
		}
	}

	return true
}

func (m allMatchMatcher[T]) Describe() string {
	return "all elements match: " + m.inner.Describe()
}

type anyMatchMatcher[T any] struct {
	inner *cachedMatcher[T]
}

// AnyMatch matches slices with at least one element satisfying inner.
// Evaluation stops at the first element that does. An empty slice does not
// match.
//
//nolint:ireturn
func AnyMatch[T any](inner Matcher[T]) Matcher[[]T] {
	return anyMatchMatcher[T]{inner: cached(inner)}
}

func (m anyMatchMatcher[T]) Match(value []T) bool {
	for _, element := range value {
		if m.inner.Match(element) {
			return true
		}
	}

	return false
}

func (m anyMatchMatcher[T]) Describe() string {
	return "any element matches: " + m.inner.Describe()
}

type noneMatchMatcher[T any] struct {
	inner *cachedMatcher[T]
}

// NoneMatch matches slices with no element satisfying inner. Evaluation
// stops at the first element that does. An empty slice matches.
//
//nolint:ireturn
func NoneMatch[T any](inner Matcher[T]) Matcher[[]T] {
	return noneMatchMatcher[T]{inner: cached(inner)}
}

func (m noneMatchMatcher[T]) Match(value []T) bool {
	for _, element := range value {
		if m.inner.Match(element) {
			return false
		}
	}

	return true
}

func (m noneMatchMatcher[T]) Describe() string {
	return "no element matches: " + m.inner.Describe()
}
