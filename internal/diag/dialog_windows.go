//go:build windows && dialogs

package diag

import (
	"golang.org/x/sys/windows"
)

const (
	iconError = windows.MB_ICONERROR
	iconInfo  = windows.MB_ICONINFORMATION
)

func showDialog(title, msg string, icon uint32) {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	m, err := windows.UTF16PtrFromString(msg)
	if err != nil {
		return
	}
	// Best effort; a failed dialog must not change the exit path.
	_, _ = windows.MessageBox(0, m, t, windows.MB_OK|icon)
}
