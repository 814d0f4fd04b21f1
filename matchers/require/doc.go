// Package require provides the test-time entry points that evaluate a
// matcher against a value and report mismatches through *testing.T.
//
// That stops the test on a mismatch; CheckThat records the failure and lets
// the test continue. The matcher's description is rendered only when the
// assertion fails.
//
//	require.That(t, response.Status, matchers.Equals(200))
//	require.CheckThat(t, body, matchers.ContainsSubstring("ok"))
package require
