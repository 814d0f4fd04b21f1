package matchers

import (
	"errors"
	"fmt"
)

type errorIsMatcher struct {
	target error
}

// ErrorIs matches errors whose chain contains target, per errors.Is. A nil
// error matches only a nil target.
//
//nolint:ireturn
func ErrorIs(target error) Matcher[error] {
	return errorIsMatcher{target: target}
}

func (m errorIsMatcher) Match(value error) bool {
	return errors.Is(value, m.target)
}

func (m errorIsMatcher) Describe() string {
	return fmt.Sprintf("is error %q", m.target)
}

type errorMessageMatcher struct {
	inner *cachedMatcher[string]
}

// ErrorMessage matches non-nil errors whose Error() text satisfies inner.
// Compose it with the string matchers:
//
//	matchers.ErrorMessage(matchers.ContainsSubstring("connection refused"))
//
//nolint:ireturn
func ErrorMessage(inner Matcher[string]) Matcher[error] {
	return errorMessageMatcher{inner: cached(inner)}
}

func (m errorMessageMatcher) Match(value error) bool {
	if value == nil {
		return false
	}

	return m.inner.Match(value.Error())
}

func (m errorMessageMatcher) Describe() string {
	return "error message " + m.inner.Describe()
}
