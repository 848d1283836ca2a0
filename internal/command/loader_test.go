package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCommand(t *testing.T, dir, filename, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))
}

func TestLoadDirMissingIsEmpty(t *testing.T) {
	t.Parallel()

	cmds := loadDir(filepath.Join(t.TempDir(), "nope"), User)
	require.Empty(t, cmds)
}

func TestLoadDirSkipsInvalidAndDuplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCommand(t, dir, "a_valid.md", "do $ARGUMENTS")
	writeCommand(t, dir, "b_invalid.md", "---\nname: bad name!\n---\nbody")
	writeCommand(t, dir, "c_dup.md", "---\nname: a_valid\n---\nduplicate body")
	writeCommand(t, dir, "ignored.txt", "not a command")

	cmds := loadDir(dir, Project)
	require.Len(t, cmds, 1)
	require.Equal(t, "a_valid", cmds[0].Name)
	require.Equal(t, "do $ARGUMENTS", cmds[0].Body)
	require.Equal(t, Project, cmds[0].Scope)
}
