package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []string{ErrSpawn, ErrExit, ErrNotFound, ErrParse, ErrConfig}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code)
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	err := New(ErrNotFound, "no DDC-capable monitors detected", "Check i2c permissions")

	require.NotNil(t, err)
	assert.Equal(t, ErrNotFound, err.Code)
	assert.Contains(t, err.Error(), "no DDC-capable monitors detected")
	assert.Contains(t, err.Error(), "Check i2c permissions")
}

func TestWrapWithCode(t *testing.T) {
	cause := fmt.Errorf("exit status 1")
	err := WrapWithCode(cause, ErrExit, "ddcutil failed", "")

	assert.Equal(t, ErrExit, err.Code)
	assert.Contains(t, err.Error(), "ddcutil failed")
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorWithoutSuggestionIsSingleLine(t *testing.T) {
	err := New(ErrParse, "unable to parse response", "")

	assert.NotContains(t, err.Error(), "\n")
}

func TestIsCode(t *testing.T) {
	err := New(ErrSpawn, "ddcutil executable not found", "")

	assert.True(t, IsCode(err, ErrSpawn))
	assert.False(t, IsCode(err, ErrExit))
	assert.False(t, IsCode(nil, ErrSpawn))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrSpawn))
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := New(ErrExit, "backend failed", "")
	wrapped := fmt.Errorf("listing monitors: %w", inner)

	assert.True(t, IsCode(wrapped, ErrExit))
}
