package matchers

import (
	"github.com/google/uuid"
)

type uuidMatcher struct{}

// IsUUID matches strings that parse as a UUID in any of the formats
// accepted by github.com/google/uuid (canonical, braced, URN, raw hex).
//
//nolint:ireturn
func IsUUID() Matcher[string] {
	return uuidMatcher{}
}

func (uuidMatcher) Match(value string) bool {
	_, err := uuid.Parse(value)

	return err == nil
}

func (uuidMatcher) Describe() string {
	return "is a valid UUID"
}
