package cli

import (
	"context"
	"errors"
)

// Run is a high-level CLI entrypoint suitable for black-box tests.
// It accepts the full argument vector (including the program name) and
// returns the semantic exit code plus any error.
func Run(ctx context.Context, args []string) (CLIResult, error) {
	inv, err := ParseInvocation(args)
	if err != nil {
		var invErr *InvocationError
		if errors.As(err, &invErr) {
			return CLIResult{ExitCode: invErr.ExitCode}, err
		}
		return CLIResult{ExitCode: ExitFailure}, err
	}
	return Execute(ctx, inv)
}
