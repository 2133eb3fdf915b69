package launcher

import (
	"fmt"
	"os"
	"strings"
)

// Resolver locates the interpreter binary under the host's system-binaries
// directory. The path is rebuilt on every run and never consults PATH, so a
// binary dropped earlier in the search order cannot hijack the launch.
type Resolver struct {
	// Dir is the system-binaries directory. Empty means query the host.
	Dir string

	// Suffix is the interpreter path relative to Dir.
	Suffix string

	// MaxPath bounds the assembled path length, including the separator.
	MaxPath int
}

// NewResolver returns a Resolver with the host platform's defaults.
func NewResolver() *Resolver {
	return &Resolver{
		Suffix:  interpreterSuffix,
		MaxPath: maxInterpreterPath,
	}
}

// Resolve builds the interpreter path and confirms it exists.
//
// Failure modes, each surfaced as an error: the system-directory query
// fails or returns an empty path; the directory alone, or the directory
// plus suffix, would exceed MaxPath; the final path does not reference an
// existing file.
func (r *Resolver) Resolve() (string, error) {
	dir := r.Dir
	if dir == "" {
		d, err := systemDirectory()
		if err != nil {
			return "", fmt.Errorf("querying system directory: %w", err)
		}
		dir = d
	}
	if dir == "" {
		return "", fmt.Errorf("querying system directory: empty path")
	}
	if len(dir) >= r.MaxPath {
		return "", fmt.Errorf("%w: system directory %q", ErrPathTooLong, dir)
	}

	sep := string(os.PathSeparator)
	if !strings.HasSuffix(dir, sep) {
		dir += sep
	}

	path := dir + r.Suffix
	if len(path) >= r.MaxPath {
		return "", fmt.Errorf("%w: %q", ErrPathTooLong, path)
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInterpreterNotFound, path)
	}
	return path, nil
}
