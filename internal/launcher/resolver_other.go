//go:build !windows

package launcher

const (
	// interpreterSuffix names PowerShell Core relative to the system
	// binaries directory on non-Windows hosts.
	interpreterSuffix = "pwsh"

	maxInterpreterPath = 4096
)

func systemDirectory() (string, error) {
	return "/usr/bin", nil
}
