package safe

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// ErrInvalidRegex is returned when a regex pattern cannot be compiled.
var ErrInvalidRegex = errors.New("invalid regular expression")

// maxCacheSize bounds the compiled-pattern cache. When the limit is hit the
// whole cache is dropped, which keeps memory bounded under a stream of
// dynamic user-provided patterns without LRU bookkeeping.
const maxCacheSize = 1024

var (
	regexMu    sync.RWMutex
	regexCache = make(map[string]*regexp.Regexp)
)

func cacheLoad(pattern string) (*regexp.Regexp, bool) {
	regexMu.RLock()
	defer regexMu.RUnlock()

	re, ok := regexCache[pattern]

	return re, ok
}

func cacheStore(pattern string, re *regexp.Regexp) {
	regexMu.Lock()
	defer regexMu.Unlock()

	if len(regexCache) >= maxCacheSize {
		regexCache = make(map[string]*regexp.Regexp)
	}

	regexCache[pattern] = re
}

// Compile compiles a regex pattern with an error return instead of a panic,
// caching compiled patterns. Use it for dynamic patterns such as those given
// to MatchesPattern; for static compile-time patterns use regexp.MustCompile
// directly.
func Compile(pattern string) (*regexp.Regexp, error) {
	if cached, ok := cacheLoad(pattern); ok {
		return cached, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegex, err)
	}

	cacheStore(pattern, re)

	return re, nil
}

// MatchString compiles pattern and matches it against input in one call.
// Returns an error if the pattern is invalid.
func MatchString(pattern, input string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(input), nil
}

// ClearCache drops all cached patterns. Useful for testing.
func ClearCache() {
	regexMu.Lock()
	defer regexMu.Unlock()

	regexCache = make(map[string]*regexp.Regexp)
}
