package matchers

import (
	"fmt"
	"math"
)

type withinAbsMatcher struct {
	target float64
	margin float64
}

// WithinAbs matches floating point values within an absolute margin of
// target: |value - target| <= margin. The margin must be non-negative; a
// negative margin matches nothing.
//
//nolint:ireturn
func WithinAbs(target, margin float64) Matcher[float64] {
	return withinAbsMatcher{target: target, margin: margin}
}

func (m withinAbsMatcher) Match(value float64) bool {
	return math.Abs(value-m.target) <= m.margin
}

func (m withinAbsMatcher) Describe() string {
	return fmt.Sprintf("is within %v of %v", m.margin, m.target)
}

type withinRelMatcher struct {
	target  float64
	epsilon float64
}

// WithinRel matches floating point values within a relative tolerance of
// target: |value - target| <= epsilon * max(|value|, |target|). Use an
// epsilon such as 1e-9 for "equal up to rounding" comparisons of values of
// unknown magnitude.
//
//nolint:ireturn
func WithinRel(target, epsilon float64) Matcher[float64] {
	return withinRelMatcher{target: target, epsilon: epsilon}
}

func (m withinRelMatcher) Match(value float64) bool {
	margin := m.epsilon * math.Max(math.Abs(value), math.Abs(m.target))

	return math.Abs(value-m.target) <= margin
}

func (m withinRelMatcher) Describe() string {
	return fmt.Sprintf("and %v are within %v%% of each other", m.target, m.epsilon*100)
}

type withinULPMatcher struct {
	target float64
	ulps   uint64
}

// WithinULP matches floating point values no more than ulps representable
// doubles away from target. NaN matches nothing, including another NaN.
//
//nolint:ireturn
func WithinULP(target float64, ulps uint64) Matcher[float64] {
	return withinULPMatcher{target: target, ulps: ulps}
}

func (m withinULPMatcher) Match(value float64) bool {
	if math.IsNaN(value) || math.IsNaN(m.target) {
		return false
	}

	return ulpDistance(value, m.target) <= m.ulps
}

func (m withinULPMatcher) Describe() string {
	return fmt.Sprintf("is within %d ULPs of %v", m.ulps, m.target)
}

// floatOrdinal maps a float64 onto a signed integer scale on which
// consecutive representable doubles are consecutive integers. Both zeros
// map to ordinal zero.
func floatOrdinal(f float64) int64 {
	bits := int64(math.Float64bits(f))
	if bits < 0 {
		return math.MinInt64 - bits
	}

	return bits
}

// ulpDistance counts the representable doubles between a and b.
func ulpDistance(a, b float64) uint64 {
	ao := floatOrdinal(a)
	bo := floatOrdinal(b)

	if ao < bo {
		ao, bo = bo, ao
	}

	// Unsigned subtraction is exact here even when the ordinals straddle
	// zero, since the true distance always fits in 64 bits.
	return uint64(ao) - uint64(bo)
}
