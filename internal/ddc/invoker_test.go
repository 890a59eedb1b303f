package ddc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monitorctl/internal/errors"
	"monitorctl/internal/logger"
)

func TestExecInvoker_CapturesStdout(t *testing.T) {
	inv := NewExecInvoker("sh", nil)

	output, err := inv.Invoke(context.Background(), []string{"-c", "echo hello"}, true)

	require.NoError(t, err)
	assert.Equal(t, "hello\n", output)
}

func TestExecInvoker_DiscardsStdoutWhenNotCapturing(t *testing.T) {
	inv := NewExecInvoker("sh", nil)

	output, err := inv.Invoke(context.Background(), []string{"-c", "echo hello"}, false)

	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestExecInvoker_NonZeroExitUsesStderr(t *testing.T) {
	inv := NewExecInvoker("sh", nil)

	_, err := inv.Invoke(context.Background(), []string{"-c", "echo broken >&2; exit 2"}, true)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExit))
	assert.Contains(t, err.Error(), "broken")
}

func TestExecInvoker_NonZeroExitWithoutStderr(t *testing.T) {
	inv := NewExecInvoker("sh", nil)

	_, err := inv.Invoke(context.Background(), []string{"-c", "exit 3"}, true)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExit))
	assert.Contains(t, err.Error(), "non-zero")
}

func TestExecInvoker_MissingBinaryIsSpawnError(t *testing.T) {
	inv := NewExecInvoker("definitely-not-a-real-binary-xyz", nil)

	_, err := inv.Invoke(context.Background(), []string{"detect"}, true)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrSpawn))
	// The error must name the utility it tried to run.
	assert.Contains(t, err.Error(), "definitely-not-a-real-binary-xyz")
}

func TestExecInvoker_EmptyBinaryDefaults(t *testing.T) {
	inv := NewExecInvoker("", nil)
	assert.Equal(t, DefaultBinary, inv.Binary)
}

func TestExecInvoker_LogsCommandLine(t *testing.T) {
	log := logger.NewBufferLogger()
	inv := NewExecInvoker("sh", log)

	_, err := inv.Invoke(context.Background(), []string{"-c", "true"}, false)

	require.NoError(t, err)
	require.True(t, log.HasLevel("debug"))
	assert.Contains(t, log.Messages[0].Message, "sh -c true")
}
