package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jleechanorg/codex-fork/internal/paths"
)

func TestResolveAbsolutePathUsedAsIs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "hook.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	resolved := resolve(path, "project", nil)
	require.Equal(t, path, resolved.Path)
	require.False(t, resolved.EmbeddedShell)
}

func TestResolveNonExecutablePythonGetsInterpreter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "hook.py")
	require.NoError(t, os.WriteFile(path, []byte("print('hi')\n"), 0o644))

	resolved := resolve(path, "project", nil)
	require.Equal(t, "python3", resolved.Interpreter)
}

func TestResolveNonExecutableShellIsEmbedded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "hook.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo hi\n"), 0o644))

	resolved := resolve(path, "project", nil)
	require.True(t, resolved.EmbeddedShell)
}

func TestResolveBareNameSearchesScopedHooksDirBeforePath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	hooksDir := filepath.Join(root, "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0o755))
	candidate := filepath.Join(hooksDir, "check.sh")
	require.NoError(t, os.WriteFile(candidate, []byte("#!/bin/sh\n"), 0o755))

	roots := []paths.Root{
		{Scope: paths.User, Dir: t.TempDir()},
		{Scope: paths.Project, Dir: root},
	}

	resolved := resolve("check.sh", "project", roots)
	require.Equal(t, candidate, resolved.Path)
}

func TestResolveBareNameIgnoresOtherScopes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	hooksDir := filepath.Join(root, "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "check.sh"), []byte("#!/bin/sh\n"), 0o755))

	roots := []paths.Root{{Scope: paths.Project, Dir: root}}

	resolved := resolve("check.sh", "user", roots)
	require.Equal(t, "check.sh", resolved.Path)
}
