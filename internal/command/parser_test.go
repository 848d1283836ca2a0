package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNoHeader(t *testing.T) {
	t.Parallel()

	cmd, err := Parse("/root/.claude/commands/review.md", []byte("Review $ARGUMENTS for bugs."))
	require.NoError(t, err)
	require.Equal(t, "review", cmd.Name)
	require.Equal(t, "Review $ARGUMENTS for bugs.", cmd.Body)
	require.Empty(t, cmd.Description)
}

func TestParseWithHeader(t *testing.T) {
	t.Parallel()

	content := []byte(`---
description: Summarize a diff
argument-hint: <ref>
allowed-tools: Bash, Read
---
Summarize the diff for $ARGUMENTS.`)

	cmd, err := Parse("/root/.claude/commands/diff-summary.md", content)
	require.NoError(t, err)
	require.Equal(t, "diff-summary", cmd.Name)
	require.Equal(t, "Summarize a diff", cmd.Description)
	require.Equal(t, "<ref>", cmd.ArgumentHint)
	require.Equal(t, "Bash, Read", cmd.AllowedTools)
	require.Equal(t, "Summarize the diff for $ARGUMENTS.", cmd.Body)
}

func TestParseHeaderOverridesName(t *testing.T) {
	t.Parallel()

	content := []byte("---\nname: custom-name\n---\nbody")
	cmd, err := Parse("/root/.claude/commands/original.md", content)
	require.NoError(t, err)
	require.Equal(t, "custom-name", cmd.Name)
}

func TestParseUnterminatedHeader(t *testing.T) {
	t.Parallel()

	_, err := Parse("/root/.claude/commands/broken.md", []byte("---\ndescription: oops"))
	require.Error(t, err)
}

func TestParseJustDashesNoPanic(t *testing.T) {
	t.Parallel()

	_, err := Parse("/root/.claude/commands/broken.md", []byte("---"))
	require.Error(t, err)
}

func TestParseInvalidNameFromHeader(t *testing.T) {
	t.Parallel()

	content := []byte("---\nname: not a valid name!\n---\nbody")
	_, err := Parse("/root/.claude/commands/x.md", content)
	require.Error(t, err)
}

func TestParseFileDerivesNameFromStem(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "fix_bug.md")
	require.NoError(t, os.WriteFile(path, []byte("Fix $ARGUMENTS"), 0o644))

	cmd, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, "fix_bug", cmd.Name)
}
