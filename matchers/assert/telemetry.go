package assert

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// FailureSpanEventName is the event name used when recording assertion
// failures on spans.
const FailureSpanEventName = "match.assertion.failed"

// failureMetricName counts failed assertions, labeled by component,
// operation, and assertion kind.
const failureMetricName = "matchers_assertion_failed_total"

var (
	failureCounter   metric.Int64Counter
	failureCounterMu sync.RWMutex
)

// InitFailureMetrics creates the failure counter on the provided meter.
// Call once during application startup after telemetry is initialized; it is
// safe to call multiple times, subsequent calls are no-ops. Without
// initialization metric recording is skipped entirely.
func InitFailureMetrics(meter metric.Meter) error {
	failureCounterMu.Lock()
	defer failureCounterMu.Unlock()

	if failureCounter != nil {
		return nil
	}

	counter, err := meter.Int64Counter(
		failureMetricName,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of failed match assertions"),
	)
	if err != nil {
		return fmt.Errorf("failed to create assertion failure counter: %w", err)
	}

	failureCounter = counter

	return nil
}

// ResetFailureMetrics clears the failure counter (useful for tests).
func ResetFailureMetrics() {
	failureCounterMu.Lock()
	defer failureCounterMu.Unlock()

	failureCounter = nil
}

func recordFailureMetric(ctx context.Context, component, operation, assertion string) {
	failureCounterMu.RLock()
	counter := failureCounter
	failureCounterMu.RUnlock()

	if counter == nil {
		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("operation", operation),
		attribute.String("assertion", assertion),
	))
}

func recordFailureToSpan(ctx context.Context, assertion, message string, stack []byte, component, operation string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("assertion.name", assertion),
		attribute.String("assertion.message", message),
	}

	if component != "" {
		attrs = append(attrs, attribute.String("assertion.component", component))
	}

	if operation != "" {
		attrs = append(attrs, attribute.String("assertion.operation", operation))
	}

	if len(stack) > 0 {
		attrs = append(attrs, attribute.String("assertion.stack", string(stack)))
	}

	span.AddEvent(FailureSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("%w: %s", ErrMatchFailed, message))
	span.SetStatus(codes.Error, failureStatusMessage(component, operation))
}

func failureStatusMessage(component, operation string) string {
	switch {
	case component != "" && operation != "":
		return fmt.Sprintf("match assertion failed in %s/%s", component, operation)
	case component != "":
		return "match assertion failed in " + component
	case operation != "":
		return "match assertion failed in " + operation
	default:
		return "match assertion failed"
	}
}
