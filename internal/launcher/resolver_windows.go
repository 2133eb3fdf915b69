//go:build windows

package launcher

import (
	"golang.org/x/sys/windows"
)

const (
	// interpreterSuffix is the fixed location of Windows PowerShell relative
	// to the system directory. The v1.0 segment is historical; it is the
	// installed path for every PowerShell 2.0+ host.
	interpreterSuffix = `WindowsPowerShell\v1.0\powershell.exe`

	maxInterpreterPath = windows.MAX_PATH
)

func systemDirectory() (string, error) {
	return windows.GetSystemDirectory()
}
