// Package launcher implements the mechanics of invoking the PowerShell
// interpreter for a single script run.
//
// It is intentionally split into:
//   - Interpreter resolution (Resolver): a trusted, non-PATH-dependent path
//     built from the host's system-binaries directory
//   - Command-line assembly (BuildCommandLine): deterministic quoting and
//     escaping of forwarded parameters under a fixed capacity
//   - Process spawn (Spawn): hidden-window child creation, blocking wait,
//     exit-code propagation
//
// Nothing in this package retains state across runs; every value is scoped
// to one invocation.
package launcher
