package launcher

import (
	"fmt"
	"os"
)

// ValidateScript confirms the script path references an existing regular
// file. Content, extension, and signature are not inspected.
func ValidateScript(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrScriptNotFound, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrScriptNotFile, path)
	}
	return nil
}
