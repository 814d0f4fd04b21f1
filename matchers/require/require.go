package require

import (
	"fmt"

	"github.com/fapete/Catch2/matchers"
)

// TestingT is the subset of *testing.T used by this package.
type TestingT interface {
	Errorf(format string, args ...any)
	FailNow()
}

// tHelper marks calling functions as test helpers when the TestingT
// implementation supports it.
type tHelper interface {
	Helper()
}

// That evaluates matcher against value and stops the test immediately on a
// mismatch. Optional msgAndArgs are appended to the failure message, either
// a plain string or a format string plus arguments.
func That[T any](t TestingT, value T, matcher matchers.Matcher[T], msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if matcher.Match(value) {
		return
	}

	t.Errorf("%s", failureMessage(value, matcher, msgAndArgs))
	t.FailNow()
}

// CheckThat evaluates matcher against value and records a mismatch without
// stopping the test.
func CheckThat[T any](t TestingT, value T, matcher matchers.Matcher[T], msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if matcher.Match(value) {
		return
	}

	t.Errorf("%s", failureMessage(value, matcher, msgAndArgs))
}

func failureMessage[T any](value T, matcher matchers.Matcher[T], msgAndArgs []any) string {
	// Descriptions are rendered only on this failure path, through the
	// cached wrapper so nested groups render each node once.
	description := matchers.Cached(matcher).Describe()

	message := fmt.Sprintf("value %v does not match: %s", value, description)
	if extra := messageFromMsgAndArgs(msgAndArgs); extra != "" {
		message += "\nmessage: " + extra
	}

	return message
}

func messageFromMsgAndArgs(msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg
		}

		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}

		return fmt.Sprintf("%+v", msgAndArgs)
	}
}
