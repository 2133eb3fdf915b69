package cli

import (
	"context"
	"errors"

	"pslauncher/internal/diag"
	"pslauncher/internal/launcher"
)

// Spawner is the minimal process seam the CLI wires into. It allows exit-code
// mapping to be proven in tests without creating real processes.
type Spawner func(ctx context.Context, cl launcher.CommandLine) (*launcher.Result, error)

// CLIResult is the outcome of one launch attempt.
type CLIResult struct {
	ExitCode int
}

// Execute runs a canonical invocation against the real host.
func Execute(ctx context.Context, inv Invocation) (CLIResult, error) {
	return ExecuteWith(ctx, inv, launcher.NewResolver(), launcher.Spawn)
}

// ExecuteWith maps an Invocation to a child-process run.
//
// The sequence is fixed: resolve interpreter, validate script, build the
// command line, spawn, wait. Each step fails the run at the point of
// occurrence:
//   - resolution, validation, and capacity failures exit 1 and are reported
//     through diag
//   - an injection rejection exits 1 silently; no report, no child
//   - a spawn failure exits with the host error code
//   - a child that ran determines the exit code itself, including 0
func ExecuteWith(ctx context.Context, inv Invocation, resolver *launcher.Resolver, spawn Spawner) (CLIResult, error) {
	interpreter, err := resolver.Resolve()
	if err != nil {
		diag.Errorf("Interpreter Not Found", "%v", err)
		return CLIResult{ExitCode: ExitFailure}, err
	}
	diag.Debugf("resolved interpreter: %s", interpreter)

	if err := launcher.ValidateScript(inv.ScriptPath); err != nil {
		diag.Errorf("Script Validation Failed", "%v", err)
		return CLIResult{ExitCode: ExitFailure}, err
	}

	cl, err := launcher.BuildCommandLine(interpreter, inv.ScriptPath, inv.Params)
	if err != nil {
		if errors.Is(err, launcher.ErrInjectionRejected) {
			// Rejected parameters fail silently: exit 1, nothing displayed,
			// no process created.
			return CLIResult{ExitCode: ExitFailure}, nil
		}
		diag.Errorf("Command Line Build Failed", "%v", err)
		return CLIResult{ExitCode: ExitFailure}, err
	}

	result, err := spawn(ctx, cl)
	if err != nil {
		var spawnErr *launcher.SpawnError
		if errors.As(err, &spawnErr) {
			diag.Debugf("command line: %s", spawnErr.CommandLine)
			diag.Errorf("Process Creation Failed", "%v", spawnErr)
			return CLIResult{ExitCode: spawnErr.Code}, err
		}
		diag.Errorf("Process Creation Failed", "%v", err)
		return CLIResult{ExitCode: ExitFailure}, err
	}

	return CLIResult{ExitCode: result.ExitCode}, nil
}
