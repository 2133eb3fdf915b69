package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pslauncher/internal/launcher"
)

// fakeSpawner records whether it ran and returns a canned outcome.
type fakeSpawner struct {
	called bool
	cl     launcher.CommandLine
	result *launcher.Result
	err    error
}

func (f *fakeSpawner) spawn(_ context.Context, cl launcher.CommandLine) (*launcher.Result, error) {
	f.called = true
	f.cl = cl
	return f.result, f.err
}

func testResolver(t *testing.T) *launcher.Resolver {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "pwsh")
	require.NoError(t, os.WriteFile(path, []byte("#\n"), 0o755))
	return &launcher.Resolver{Dir: dir, Suffix: "pwsh", MaxPath: 4096}
}

func testScript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.ps1")
	require.NoError(t, os.WriteFile(path, []byte("Write-Output ok\n"), 0o644))
	return path
}

func TestExecuteWith_ForwardsChildExitCode(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"success", 0},
		{"script failure", 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spawner := &fakeSpawner{result: &launcher.Result{ExitCode: tc.code}}
			inv := Invocation{ScriptPath: testScript(t), Params: []string{"-Name", "John"}}

			res, err := ExecuteWith(context.Background(), inv, testResolver(t), spawner.spawn)
			require.NoError(t, err)
			assert.Equal(t, tc.code, res.ExitCode)
			assert.True(t, spawner.called)
		})
	}
}

func TestExecuteWith_CommandLineReachesSpawner(t *testing.T) {
	spawner := &fakeSpawner{result: &launcher.Result{}}
	resolver := testResolver(t)
	script := testScript(t)
	inv := Invocation{ScriptPath: script, Params: []string{`"John Doe"`}}

	_, err := ExecuteWith(context.Background(), inv, resolver, spawner.spawn)
	require.NoError(t, err)

	interp, err := resolver.Resolve()
	require.NoError(t, err)
	want := `"` + interp + `" -NonInteractive -NoProfile -ExecutionPolicy Bypass -File "` + script + `" "John Doe"`
	assert.Equal(t, want, spawner.cl.String)
}

func TestExecuteWith_MissingInterpreter(t *testing.T) {
	spawner := &fakeSpawner{}
	resolver := &launcher.Resolver{Dir: t.TempDir(), Suffix: "pwsh", MaxPath: 4096}
	inv := Invocation{ScriptPath: testScript(t)}

	res, err := ExecuteWith(context.Background(), inv, resolver, spawner.spawn)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, res.ExitCode)
	assert.False(t, spawner.called, "no child may be created")
}

func TestExecuteWith_MissingScript(t *testing.T) {
	spawner := &fakeSpawner{}
	inv := Invocation{ScriptPath: filepath.Join(t.TempDir(), "absent.ps1")}

	res, err := ExecuteWith(context.Background(), inv, testResolver(t), spawner.spawn)
	require.ErrorIs(t, err, launcher.ErrScriptNotFound)
	assert.Equal(t, ExitFailure, res.ExitCode)
	assert.False(t, spawner.called)
}

func TestExecuteWith_InjectionRejectedSilently(t *testing.T) {
	spawner := &fakeSpawner{}
	inv := Invocation{ScriptPath: testScript(t), Params: []string{"-Name", "a;b"}}

	res, err := ExecuteWith(context.Background(), inv, testResolver(t), spawner.spawn)
	assert.NoError(t, err, "rejection is silent: nothing to report upward")
	assert.Equal(t, ExitFailure, res.ExitCode)
	assert.False(t, spawner.called, "no child may be created")
}

func TestExecuteWith_SpawnFailureUsesHostCode(t *testing.T) {
	spawner := &fakeSpawner{err: &launcher.SpawnError{Code: 193, Err: os.ErrInvalid}}
	inv := Invocation{ScriptPath: testScript(t)}

	res, err := ExecuteWith(context.Background(), inv, testResolver(t), spawner.spawn)
	require.Error(t, err)
	assert.Equal(t, 193, res.ExitCode)
}
