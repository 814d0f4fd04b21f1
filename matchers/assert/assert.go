package assert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/fapete/Catch2/matchers"
	"github.com/fapete/Catch2/matchers/internal/nilcheck"
	"github.com/fapete/Catch2/matchers/log"
)

// Logger defines the minimal logging interface required by assertions.
// It is satisfied by matchers/log.Logger implementations.
type Logger interface {
	Log(ctx context.Context, level log.Level, msg string, fields ...log.Field)
}

// Asserter evaluates invariants and emits telemetry on failure.
type Asserter struct {
	ctx       context.Context
	logger    Logger
	component string
	operation string
}

// ErrMatchFailed is the sentinel error for failed assertions.
var ErrMatchFailed = errors.New("match assertion failed")

// MatchFailure represents a failed assertion with rich context.
type MatchFailure struct {
	Assertion string
	Message   string
	Component string
	Operation string
	Details   string
}

// Error returns the formatted assertion failure message.
func (failure *MatchFailure) Error() string {
	if failure == nil {
		return ErrMatchFailed.Error()
	}

	if failure.Details == "" {
		return "match assertion failed: " + failure.Message
	}

	return "match assertion failed: " + failure.Message + "\n" + failure.Details
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (failure *MatchFailure) Unwrap() error {
	return ErrMatchFailed
}

// New creates an Asserter with context, logging, and telemetry labels.
//
//nolint:contextcheck // Intentionally creates a fallback context when nil is passed
func New(ctx context.Context, logger Logger, component, operation string) *Asserter {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Asserter{
		ctx:       ctx,
		logger:    logger,
		component: component,
		operation: operation,
	}
}

// Matches returns an error unless value satisfies matcher. The matcher's
// cached description and the actual value are included in the failure
// context; the description is rendered only on failure.
//
// Matches is a function rather than an Asserter method because Go methods
// cannot introduce their own type parameters.
func Matches[T any](ctx context.Context, asserter *Asserter, value T, matcher matchers.Matcher[T], msg string, kv ...any) error {
	if matcher.Match(value) {
		return nil
	}

	// matcherKVPairs: 2 pairs added (matcher + actual), each pair = 2 elements
	const matcherKVPairs = 4

	kvWithMatch := make([]any, 0, len(kv)+matcherKVPairs)
	kvWithMatch = append(kvWithMatch, "matcher", matchers.Cached(matcher).Describe())
	kvWithMatch = append(kvWithMatch, "actual", value)
	kvWithMatch = append(kvWithMatch, kv...)

	return asserter.fail(ctx, "Matches", msg, kvWithMatch...)
}

// That returns an error if ok is false. Use for general-purpose assertions
// that do not need a matcher.
func (asserter *Asserter) That(ctx context.Context, ok bool, msg string, kv ...any) error {
	if ok {
		return nil
	}

	return asserter.fail(ctx, "That", msg, kv...)
}

// NotNil returns an error if v is nil, handling both untyped nil and typed
// nil (nil concrete pointers stored in interface values).
func (asserter *Asserter) NotNil(ctx context.Context, v any, msg string, kv ...any) error {
	if !nilcheck.Interface(v) {
		return nil
	}

	return asserter.fail(ctx, "NotNil", msg, kv...)
}

// NoError returns an error if err is not nil. The error message and type are
// included in the assertion context for debugging.
func (asserter *Asserter) NoError(ctx context.Context, err error, msg string, kv ...any) error {
	if err == nil {
		return nil
	}

	// errorKVPairs: 2 pairs added (error + error_type), each pair = 2 elements
	const errorKVPairs = 4

	kvWithError := make([]any, 0, len(kv)+errorKVPairs)
	kvWithError = append(kvWithError, "error", err.Error())
	kvWithError = append(kvWithError, "error_type", fmt.Sprintf("%T", err))
	kvWithError = append(kvWithError, kv...)

	return asserter.fail(ctx, "NoError", msg, kvWithError...)
}

// Never always returns an error. Use for code paths that should be
// unreachable.
func (asserter *Asserter) Never(ctx context.Context, msg string, kv ...any) error {
	return asserter.fail(ctx, "Never", msg, kv...)
}

const maxValueLength = 200 // Truncate logged values longer than this

// truncateValue truncates long values for logging safety, preventing log
// bloat from large actual values.
func truncateValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= maxValueLength {
		return s
	}

	return s[:maxValueLength] + "... (truncated " + strconv.Itoa(len(s)-maxValueLength) + " chars)"
}

func (asserter *Asserter) fail(ctx context.Context, assertion, msg string, kv ...any) error {
	ctx, logger, component, operation := asserter.values(ctx)
	details := detailLines(contextPairs(assertion, component, operation, kv))

	stack := []byte(nil)
	if shouldIncludeStack() {
		stack = debug.Stack()
	}

	logFailure(logger, failureLogMessage(msg, details, stack))
	recordFailureMetric(ctx, component, operation, assertion)
	recordFailureToSpan(ctx, assertion, msg, stack, component, operation)

	return &MatchFailure{
		Assertion: assertion,
		Message:   msg,
		Component: component,
		Operation: operation,
		Details:   details,
	}
}

func (asserter *Asserter) values(ctx context.Context) (context.Context, Logger, string, string) {
	if asserter == nil {
		if ctx == nil {
			ctx = context.Background()
		}

		return ctx, nil, "", ""
	}

	if ctx == nil {
		ctx = asserter.ctx
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return ctx, asserter.logger, asserter.component, asserter.operation
}

// fixedPairsCapacity covers the assertion, component, and operation pairs.
const fixedPairsCapacity = 6

func contextPairs(assertion, component, operation string, kv []any) []any {
	pairs := make([]any, 0, len(kv)+fixedPairsCapacity)
	pairs = append(pairs, "assertion", assertion)

	if component != "" {
		pairs = append(pairs, "component", component)
	}

	if operation != "" {
		pairs = append(pairs, "operation", operation)
	}

	pairs = append(pairs, kv...)

	return pairs
}

func detailLines(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		} else {
			value = "MISSING_VALUE"
		}

		fmt.Fprintf(&sb, "    %v=%v", kv[i], truncateValue(value))
	}

	return sb.String()
}

func failureLogMessage(msg, details string, stack []byte) string {
	var sb strings.Builder

	sb.WriteString("MATCH ASSERTION FAILED: ")
	sb.WriteString(msg)

	if details != "" {
		sb.WriteString("\n")
		sb.WriteString(details)
	}

	if len(stack) > 0 {
		sb.WriteString("\nstack trace:\n")
		sb.WriteString(string(stack))
	}

	return sb.String()
}

func logFailure(logger Logger, message string) {
	if logger != nil {
		logger.Log(context.Background(), log.LevelError, message)
		return
	}

	fmt.Fprintln(os.Stderr, message)
}

func shouldIncludeStack() bool {
	// Primary check: production mode set explicitly during startup via
	// SetProductionMode(true).
	if IsProductionMode() {
		return false
	}

	// Fallback for processes that never configured production mode.
	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return !strings.EqualFold(env, "production") && !strings.EqualFold(goEnv, "production")
}
