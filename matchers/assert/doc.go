// Package assert evaluates matchers as production invariants and emits
// telemetry when one fails.
//
// Unlike the require package, which reports through *testing.T, an Asserter
// returns the failure as an error and records it on the structured logger,
// the active OpenTelemetry span, and a failure counter metric, so services
// can enforce invariants with the same matcher vocabulary their tests use.
//
//	asserter := assert.New(ctx, logger, "billing", "close-invoice")
//	if err := assert.Matches(ctx, asserter, invoice.Total, matchers.WithinDecimal(expected, margin), "totals must reconcile"); err != nil {
//	    return err
//	}
package assert
