package cli

import (
	"strings"
)

const (
	ExitSuccess = 0
	// ExitFailure covers every validation, resolution, capacity, and
	// injection failure local to the launcher. Spawn failures exit with the
	// host error code instead, and a child that ran exits with its own code.
	ExitFailure = 1
)

// scriptFlag is matched case-insensitively against the first argument after
// the program name. It is the launcher's only flag.
const scriptFlag = "-Script"

const usageText = `PS-Launcher Usage:

pslauncher -Script <script_path> [parameters]

Examples:
  pslauncher -Script test.ps1
  pslauncher -Script test.ps1 -FilePath "C:\temp\test.txt"
  pslauncher -Script test.ps1 -FileList "file1.txt,file2.txt"
  pslauncher -Script test.ps1 -Name "John Doe" -Verbose

Notes:
- Parameters with spaces must be quoted
- Array parameters should be comma-separated within quotes
- Returns 0 for success, 1 for errors or if no script specified`

// Invocation is the canonical description of one launch: the script to run
// and the parameters forwarded to it verbatim. Immutable once parsed.
type Invocation struct {
	ScriptPath string
	Params     []string
}

// InvocationError carries the exit code and the message to surface for a
// rejected invocation.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// ParseInvocation validates the full argument vector, program name included.
//
// The contract is positional: token 1 must equal -Script (case-insensitive),
// token 2 is the script path, and every later token is forwarded untouched.
// Nothing after token 1 is interpreted as a flag, so forwarded parameters
// like "-Verbose" survive intact. Fewer than three tokens, or a wrong
// token 1, yields an *InvocationError holding the usage text.
func ParseInvocation(args []string) (Invocation, error) {
	if len(args) < 3 || !strings.EqualFold(args[1], scriptFlag) {
		return Invocation{}, &InvocationError{ExitCode: ExitFailure, Message: usageText}
	}
	return Invocation{
		ScriptPath: args[2],
		Params:     args[3:],
	}, nil
}
