package launcher

import (
	"strings"
)

// MaxCommandLine is the hard cap, in characters, on the assembled command
// line. Any append that would exceed it fails the whole build; the builder
// never truncates. The value follows the conventional Windows command-line
// length limit.
const MaxCommandLine = 8191

// interpreterFlags is the fixed token run between the interpreter path and
// the script path. Leading and trailing spaces are part of the literal.
const interpreterFlags = " -NonInteractive -NoProfile -ExecutionPolicy Bypass -File "

// CommandLine is the assembled invocation in both spawn forms.
//
// String is the verbatim quoted command line; on Windows it is handed to the
// process manager unchanged. Argv is the equivalent argument vector for
// hosts that spawn from discrete arguments instead of a single string.
type CommandLine struct {
	String string
	Argv   []string
}

// boundedBuilder accumulates the command line under MaxCommandLine.
// Appends are all-or-nothing: an append that would overflow leaves the
// buffer untouched and reports ErrCapacityExceeded.
type boundedBuilder struct {
	b   strings.Builder
	max int
}

func (bb *boundedBuilder) append(s string) error {
	if bb.b.Len()+len(s) > bb.max {
		return ErrCapacityExceeded
	}
	bb.b.WriteString(s)
	return nil
}

// BuildCommandLine assembles the interpreter invocation:
//
//	"<interpreter>" -NonInteractive -NoProfile -ExecutionPolicy Bypass -File "<script>" <p0> <p1> ...
//
// Interpreter and script paths are locally resolved and trusted: they are
// wrapped in double quotes without internal escaping. Forwarded parameters
// go through quoteParam.
//
// Each parameter is scanned for a semicolon before any quoting decision, on
// its raw text. The scan order is a contract: it must see the original
// parameter, not the escaped form, so a semicolon cannot be disguised by the
// quoting path. A rejected parameter aborts the whole build.
//
// The build is deterministic: identical inputs always produce the identical
// string.
func BuildCommandLine(interpreter, script string, params []string) (CommandLine, error) {
	bb := &boundedBuilder{max: MaxCommandLine}

	if err := bb.append(`"` + interpreter + `"`); err != nil {
		return CommandLine{}, err
	}
	if err := bb.append(interpreterFlags); err != nil {
		return CommandLine{}, err
	}
	if err := bb.append(`"` + script + `"`); err != nil {
		return CommandLine{}, err
	}

	for _, p := range params {
		// Injection gate runs first, on the raw parameter.
		if strings.ContainsRune(p, ';') {
			return CommandLine{}, ErrInjectionRejected
		}
		if err := bb.append(" "); err != nil {
			return CommandLine{}, err
		}
		if err := bb.append(quoteParam(p)); err != nil {
			return CommandLine{}, err
		}
	}

	argv := make([]string, 0, len(params)+7)
	argv = append(argv,
		interpreter,
		"-NonInteractive", "-NoProfile", "-ExecutionPolicy", "Bypass",
		"-File", script,
	)
	argv = append(argv, params...)

	return CommandLine{String: bb.b.String(), Argv: argv}, nil
}

// quoteParam applies the forwarding policy for one parameter:
//
//   - Already quoted (length >= 2, first and last char `"`): passed through
//     unmodified. The caller is trusted to have escaped it.
//   - Otherwise: wrapped in a fresh pair of double quotes, with every
//     embedded `"` replaced by `\"` beforehand.
func quoteParam(p string) string {
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		return p
	}
	if strings.ContainsRune(p, '"') {
		p = strings.ReplaceAll(p, `"`, `\"`)
	}
	return `"` + p + `"`
}
