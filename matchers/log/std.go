package log

import (
	"context"
	"fmt"
	stdlog "log"
	"strings"
)

// logControlCharReplacer escapes control characters that can be used for log
// injection (CWE-117): newlines, carriage returns, and tabs in messages can
// forge fake log entries or false audit lines.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func sanitizeLogString(s string) string {
	return logControlCharReplacer.Replace(s)
}

// StdLogger is a Logger backed by the Go standard library's log package.
// String values are sanitized against log injection before emission.
type StdLogger struct {
	// Level is the verbosity ceiling; entries less severe than Level are
	// suppressed.
	Level  Level
	fields []Field
}

// NewStd creates a StdLogger emitting entries up to level.
func NewStd(level Level) *StdLogger {
	return &StdLogger{Level: level}
}

// Log writes a single line with the level prefix, the sanitized message, and
// all accumulated fields as key=value pairs.
func (l *StdLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	var sb strings.Builder

	sb.WriteString(level.String())
	sb.WriteString(": ")
	sb.WriteString(sanitizeLogString(msg))

	for _, field := range append(l.fields, fields...) {
		value := field.Value
		if s, ok := value.(string); ok {
			value = sanitizeLogString(s)
		}

		fmt.Fprintf(&sb, " %s=%v", field.Key, value)
	}

	stdlog.Print(sb.String())
}

// With returns a child logger carrying additional fields.
//
//nolint:ireturn
func (l *StdLogger) With(fields ...Field) Logger {
	child := &StdLogger{Level: l.Level, fields: make([]Field, 0, len(l.fields)+len(fields))}
	child.fields = append(child.fields, l.fields...)
	child.fields = append(child.fields, fields...)

	return child
}

// Enabled reports whether the logger emits entries at the given level.
func (l *StdLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}
