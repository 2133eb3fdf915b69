//go:build !windows

package launcher

import (
	"context"
	"errors"
	"os/exec"
	"syscall"
)

// newCommand spawns from the argument vector. Only Windows consumes a single
// verbatim command-line string; everywhere else the kernel takes argv
// directly, so CommandLine.String is build-and-length-checked but not
// re-parsed here.
func newCommand(ctx context.Context, cl CommandLine) *exec.Cmd {
	return exec.CommandContext(ctx, cl.Argv[0], cl.Argv[1:]...)
}

func errnoCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 1
}
