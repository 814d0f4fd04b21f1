package matchers

import (
	"github.com/shopspring/decimal"
)

type withinDecimalMatcher struct {
	target decimal.Decimal
	margin decimal.Decimal
}

// WithinDecimal matches decimal values within an absolute margin of target:
// |value - target| <= margin. Use a zero margin for exact decimal equality
// regardless of exponent representation (decimal.Decimal's Equal, not ==).
//
//nolint:ireturn
func WithinDecimal(target, margin decimal.Decimal) Matcher[decimal.Decimal] {
	return withinDecimalMatcher{target: target, margin: margin}
}

func (m withinDecimalMatcher) Match(value decimal.Decimal) bool {
	return value.Sub(m.target).Abs().LessThanOrEqual(m.margin)
}

func (m withinDecimalMatcher) Describe() string {
	if m.margin.IsZero() {
		return "equals decimal " + m.target.String()
	}

	return "is within " + m.margin.String() + " of " + m.target.String()
}
