//go:build windows

package launcher

import (
	"context"
	"errors"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// newCommand prepares the child with the assembled command line verbatim.
// SysProcAttr.CmdLine bypasses Go's own argv quoting so the string reaches
// CreateProcess exactly as built. CREATE_NO_WINDOW plus HideWindow keeps the
// interpreter from opening a console.
func newCommand(ctx context.Context, cl CommandLine) *exec.Cmd {
	cmd := exec.CommandContext(ctx, cl.Argv[0])
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:       cl.String,
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
	return cmd
}

// errnoCode extracts the Windows error number from a process-creation
// failure. Unknown failures map to 1.
func errnoCode(err error) int {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 1
}
