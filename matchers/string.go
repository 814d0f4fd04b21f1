package matchers

import (
	"regexp"
	"strings"

	"github.com/fapete/Catch2/matchers/safe"
)

// Casing selects case sensitivity for the string matchers. The default for
// every string matcher is CaseSensitive.
type Casing uint8

const (
	// CaseSensitive compares strings exactly.
	CaseSensitive Casing = iota
	// CaseInsensitive compares strings after lower-casing both sides.
	CaseInsensitive
)

// stringComparison carries the pieces shared by the substring-style string
// matchers: the operation name used in descriptions, the comparator text,
// and the selected casing.
type stringComparison struct {
	operation  string
	comparator string
	casing     Casing
}

func (m stringComparison) adjust(s string) string {
	if m.casing == CaseInsensitive {
		return strings.ToLower(s)
	}

	return s
}

func (m stringComparison) Describe() string {
	suffix := ""
	if m.casing == CaseInsensitive {
		suffix = " (case insensitive)"
	}

	return m.operation + `: "` + m.comparator + `"` + suffix
}

func optionalCasing(casing []Casing) Casing {
	if len(casing) > 0 {
		return casing[0]
	}

	return CaseSensitive
}

type equalsStringMatcher struct {
	stringComparison
}

// EqualsString matches strings equal to expected, optionally ignoring case.
//
//nolint:ireturn
func EqualsString(expected string, casing ...Casing) Matcher[string] {
	return equalsStringMatcher{stringComparison{
		operation:  "equals",
		comparator: expected,
		casing:     optionalCasing(casing),
	}}
}

func (m equalsStringMatcher) Match(value string) bool {
	return m.adjust(value) == m.adjust(m.comparator)
}

type containsSubstringMatcher struct {
	stringComparison
}

// ContainsSubstring matches strings containing substring, optionally
// ignoring case.
//
//nolint:ireturn
func ContainsSubstring(substring string, casing ...Casing) Matcher[string] {
	return containsSubstringMatcher{stringComparison{
		operation:  "contains",
		comparator: substring,
		casing:     optionalCasing(casing),
	}}
}

func (m containsSubstringMatcher) Match(value string) bool {
	return strings.Contains(m.adjust(value), m.adjust(m.comparator))
}

type startsWithMatcher struct {
	stringComparison
}

// StartsWith matches strings beginning with prefix, optionally ignoring case.
//
//nolint:ireturn
func StartsWith(prefix string, casing ...Casing) Matcher[string] {
	return startsWithMatcher{stringComparison{
		operation:  "starts with",
		comparator: prefix,
		casing:     optionalCasing(casing),
	}}
}

func (m startsWithMatcher) Match(value string) bool {
	return strings.HasPrefix(m.adjust(value), m.adjust(m.comparator))
}

type endsWithMatcher struct {
	stringComparison
}

// EndsWith matches strings ending with suffix, optionally ignoring case.
//
//nolint:ireturn
func EndsWith(suffix string, casing ...Casing) Matcher[string] {
	return endsWithMatcher{stringComparison{
		operation:  "ends with",
		comparator: suffix,
		casing:     optionalCasing(casing),
	}}
}

func (m endsWithMatcher) Match(value string) bool {
	return strings.HasSuffix(m.adjust(value), m.adjust(m.comparator))
}

type patternMatcher struct {
	pattern string
	casing  Casing
	re      *regexp.Regexp
}

// MatchesPattern matches strings against a regular expression, optionally
// ignoring case. The pattern is compiled once, through the safe package's
// bounded cache, and an invalid pattern is reported at construction time.
func MatchesPattern(pattern string, casing ...Casing) (Matcher[string], error) {
	selected := optionalCasing(casing)

	compiled := pattern
	if selected == CaseInsensitive {
		compiled = "(?i)" + pattern
	}

	re, err := safe.Compile(compiled)
	if err != nil {
		return nil, err
	}

	return patternMatcher{pattern: pattern, casing: selected, re: re}, nil
}

func (m patternMatcher) Match(value string) bool {
	return m.re.MatchString(value)
}

func (m patternMatcher) Describe() string {
	sensitivity := "case sensitively"
	if m.casing == CaseInsensitive {
		sensitivity = "case insensitively"
	}

	return `matches "` + m.pattern + `" ` + sensitivity
}
