// Package safe provides error-returning wrappers around operations that
// otherwise panic on bad input, currently regular expression compilation.
// The matcher layer uses it so that an invalid user-supplied pattern is
// reported at matcher construction time instead of crashing an assertion.
package safe
