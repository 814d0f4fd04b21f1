// Package zap bridges the matchers/log abstraction to go.uber.org/zap,
// preserving structured fields and correlating entries with the active
// OpenTelemetry span when one is present in the context.
package zap
