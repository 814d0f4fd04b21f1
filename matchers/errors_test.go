package matchers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSample = errors.New("sample failure")

func TestErrorIs(t *testing.T) {
	t.Parallel()

	m := ErrorIs(errSample)

	assert.True(t, m.Match(errSample))
	assert.True(t, m.Match(fmt.Errorf("wrapped: %w", errSample)))
	assert.False(t, m.Match(errors.New("sample failure")))
	assert.False(t, m.Match(nil))
	assert.Equal(t, `is error "sample failure"`, m.Describe())
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	m := ErrorMessage(ContainsSubstring("failure"))

	assert.True(t, m.Match(errSample))
	assert.False(t, m.Match(errors.New("all good")))
	assert.False(t, m.Match(nil))
	assert.Equal(t, `error message contains: "failure"`, m.Describe())
}

func TestErrorMatchersCompose(t *testing.T) {
	t.Parallel()

	compound := And[error](ErrorIs(errSample), ErrorMessage(StartsWith("sample")))

	require.True(t, compound.Match(errSample))
	require.False(t, compound.Match(errors.New("sample failure")))
}
