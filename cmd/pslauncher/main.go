package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pslauncher/internal/cli"
	"pslauncher/internal/diag"
)

// main is a thin process boundary: argv in, exit code out. All semantics
// live in internal/cli so they stay reachable from tests.
func main() {
	inv, err := cli.ParseInvocation(os.Args)
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			diag.Usage(invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}

	result, _ := cli.Execute(context.Background(), inv)
	os.Exit(result.ExitCode)
}
