package ddc

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"monitorctl/internal/errors"
	"monitorctl/internal/logger"
)

// DefaultBinary is the backend utility invoked when none is configured.
const DefaultBinary = "ddcutil"

// ExecInvoker runs the backend utility as a subprocess. Arguments are
// passed as a literal vector, never through a shell.
type ExecInvoker struct {
	Binary string
	Log    logger.Logger
}

// NewExecInvoker creates an invoker for the given binary name. An empty
// name falls back to DefaultBinary; a nil logger falls back to Noop.
func NewExecInvoker(binary string, log logger.Logger) *ExecInvoker {
	if binary == "" {
		binary = DefaultBinary
	}
	if log == nil {
		log = logger.Noop()
	}
	return &ExecInvoker{Binary: binary, Log: log}
}

// Invoke runs the backend with the given arguments and returns captured
// stdout. Stderr is always captured; on a non-zero exit its text becomes
// the error message. The call blocks until the process exits or ctx is
// done; callers needing responsiveness run it off their own loop.
func (i *ExecInvoker) Invoke(ctx context.Context, args []string, capture bool) (string, error) {
	path, err := exec.LookPath(i.Binary)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrSpawn,
			fmt.Sprintf("%s executable not found", i.Binary),
			fmt.Sprintf("Install the '%s' package to control monitors", i.Binary))
	}

	i.Log.Debug("running %s %s", i.Binary, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	if capture {
		cmd.Stdout = &stdout
	}
	cmd.Stderr = &stderr

	if runErr := cmd.Run(); runErr != nil {
		if _, ok := runErr.(*exec.ExitError); ok {
			message := strings.TrimSpace(stderr.String())
			if message == "" {
				message = fmt.Sprintf("%s exited with a non-zero status", i.Binary)
			}
			return "", errors.WrapWithCode(runErr, errors.ErrExit, message, "")
		}
		return "", errors.WrapWithCode(runErr, errors.ErrSpawn,
			fmt.Sprintf("failed to run %s", i.Binary), "")
	}

	return stdout.String(), nil
}
