// Package matchers provides composable boolean predicates ("matchers") over
// values, with human-readable failure descriptions.
//
// A matcher is anything implementing Matcher: a predicate plus a description
// of what it checks. Matchers compose with And, Or, and Not, and the result
// is itself a matcher, so compositions nest arbitrarily:
//
//	m := matchers.Or[int](
//	    matchers.Not[int](matchers.And[int](matchers.Equals(1), matchers.Equals(2))),
//	    matchers.Equals(3),
//	)
//
// Composed groups borrow their operands: they store the matcher values as
// given and never copy or snapshot their state, so operands must stay alive
// and unchanged for as long as the composition is evaluated. Groups are
// one-shot builders meant to be assembled in a single chained expression and
// then handed to an assertion; descriptions are rendered lazily and only on
// failure.
//
// Assertion entry points live in the require subpackage (test code) and the
// assert subpackage (production invariants).
package matchers
