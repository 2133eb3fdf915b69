package launcher

import (
	"context"
	"errors"
	"os/exec"
)

// Result describes a finished interpreter run.
type Result struct {
	// ExitCode is the child's own exit code, propagated unchanged.
	ExitCode int
}

// Spawn starts the interpreter and blocks until it terminates.
//
// The child inherits the launcher's environment and working directory, its
// standard streams are not redirected, and on Windows no console window is
// shown. There is no timeout: once the wait begins it ends only when the
// child exits (or ctx is cancelled, which kills the child).
//
// A process-creation failure is returned as *SpawnError carrying the host
// error code. A child that started and exited non-zero is not an error;
// its code is reported in Result. All OS handles for the child are released
// by the time Spawn returns, on every path.
func Spawn(ctx context.Context, cl CommandLine) (*Result, error) {
	cmd := newCommand(ctx, cl)

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Code: errnoCode(err), CommandLine: cl.String, Err: err}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Result{ExitCode: exitErr.ExitCode()}, nil
		}
		// Wait itself failed; the child's state is unknown.
		return nil, &SpawnError{Code: errnoCode(err), CommandLine: cl.String, Err: err}
	}
	return &Result{ExitCode: 0}, nil
}
