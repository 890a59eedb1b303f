//go:build !windows
// +build !windows

package ddc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunChecksReportsEveryCheck(t *testing.T) {
	results := RunChecks("")

	require.Len(t, results, 4)
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
		assert.NotEmpty(t, r.Detail, "check %s must explain itself", r.Name)
	}
	assert.Contains(t, names[0], DefaultBinary)
}

func TestCheckBinary_Missing(t *testing.T) {
	result := checkBinary("definitely-not-a-real-binary-xyz")

	assert.False(t, result.OK)
	assert.Contains(t, result.Detail, "not found")
}

func TestCheckBinary_Found(t *testing.T) {
	result := checkBinary("sh")

	assert.True(t, result.OK)
	assert.NotEmpty(t, result.Detail)
}

func TestNulTerminated(t *testing.T) {
	assert.Equal(t, "Linux", nulTerminated([]byte{'L', 'i', 'n', 'u', 'x', 0, 'x'}))
	assert.Equal(t, "abc", nulTerminated([]byte("abc")))
	assert.Equal(t, "", nulTerminated([]byte{0}))
}
