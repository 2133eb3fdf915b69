package launcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# test\n"), 0o755))
}

func TestResolver_FindsInterpreter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pwsh"))

	r := &Resolver{Dir: dir, Suffix: "pwsh", MaxPath: 4096}
	path, err := r.Resolve()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "pwsh"), path)
}

func TestResolver_SeparatorNotDoubled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pwsh"))

	sep := string(os.PathSeparator)
	r := &Resolver{Dir: dir + sep, Suffix: "pwsh", MaxPath: 4096}
	path, err := r.Resolve()
	require.NoError(t, err)
	require.NotContains(t, path, sep+sep)
}

func TestResolver_NestedSuffix(t *testing.T) {
	dir := t.TempDir()
	suffix := filepath.Join("sub", "v1.0", "pwsh")
	writeFile(t, filepath.Join(dir, suffix))

	r := &Resolver{Dir: dir, Suffix: suffix, MaxPath: 4096}
	path, err := r.Resolve()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, suffix), path)
}

func TestResolver_MissingInterpreter(t *testing.T) {
	r := &Resolver{Dir: t.TempDir(), Suffix: "pwsh", MaxPath: 4096}
	_, err := r.Resolve()
	require.ErrorIs(t, err, ErrInterpreterNotFound)
}

func TestResolver_DirectoryTooLong(t *testing.T) {
	r := &Resolver{Dir: strings.Repeat("d", 300), Suffix: "pwsh", MaxPath: 260}
	_, err := r.Resolve()
	require.ErrorIs(t, err, ErrPathTooLong)
}

func TestResolver_JoinedPathTooLong(t *testing.T) {
	dir := t.TempDir()
	r := &Resolver{Dir: dir, Suffix: strings.Repeat("s", 4096), MaxPath: 4096}
	_, err := r.Resolve()
	require.ErrorIs(t, err, ErrPathTooLong)
}
