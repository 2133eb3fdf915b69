//go:build !windows || !dialogs

package diag

const (
	iconError uint32 = 0x10
	iconInfo  uint32 = 0x40
)

func showDialog(title, msg string, icon uint32) {}
