package launcher

import (
	"errors"
	"fmt"
)

var (
	// ErrInterpreterNotFound reports that the resolved interpreter path does
	// not reference an existing file.
	ErrInterpreterNotFound = errors.New("interpreter not found")

	// ErrScriptNotFound reports that the script path does not exist on disk.
	ErrScriptNotFound = errors.New("script not found")

	// ErrScriptNotFile reports that the script path exists but is not a
	// regular file.
	ErrScriptNotFile = errors.New("script path is not a file")

	// ErrPathTooLong reports that interpreter path assembly would exceed the
	// host's maximum path length.
	ErrPathTooLong = errors.New("interpreter path too long")

	// ErrCapacityExceeded reports that a command-line append would exceed
	// MaxCommandLine. The builder fails rather than truncate.
	ErrCapacityExceeded = errors.New("command line exceeds maximum length")

	// ErrInjectionRejected reports that a forwarded parameter contained a
	// semicolon. The run aborts before any process is created.
	//
	// This gate blocks exactly one vector: `;` is PowerShell's statement
	// separator. Other metacharacters (backtick, pipe, ampersand) are
	// deliberately not rejected; callers relying on this gate should treat
	// it as narrow.
	ErrInjectionRejected = errors.New("parameter rejected: contains semicolon")
)

// SpawnError wraps a process-creation failure with the host error code.
//
// Code is the platform's raw error number and becomes the launcher's own
// exit code, distinguishing spawn failures from validation failures (which
// always exit 1).
type SpawnError struct {
	Code        int
	CommandLine string
	Err         error
}

func (e *SpawnError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("starting interpreter (code %d): %v", e.Code, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
