package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	workingDir := t.TempDir()
	home := t.TempDir()

	roots := Resolve(workingDir, home)
	require.Len(t, roots, 3)

	require.Equal(t, ProjectHigh, roots[0].Scope)
	require.Equal(t, filepath.Join(workingDir, ".codexplus"), roots[0].Dir)

	require.Equal(t, Project, roots[1].Scope)
	require.Equal(t, filepath.Join(workingDir, ".claude"), roots[1].Dir)

	require.Equal(t, User, roots[2].Scope)
	require.Equal(t, filepath.Join(home, ".claude"), roots[2].Dir)
}

func TestResolveEmptyHomeFallsBackToOSUserHomeDir(t *testing.T) {
	t.Parallel()

	roots := Resolve(t.TempDir(), "")
	require.Len(t, roots, 3)
	require.Equal(t, User, roots[2].Scope)
	require.NotEmpty(t, roots[2].Dir)
}

func TestRootPaths(t *testing.T) {
	t.Parallel()

	root := Root{Scope: Project, Dir: "/tmp/proj/.claude"}
	require.Equal(t, "/tmp/proj/.claude/settings.json", root.SettingsPath())
	require.Equal(t, "/tmp/proj/.claude/commands", root.CommandsDir())
	require.Equal(t, "/tmp/proj/.claude/hooks", root.HooksDir())
}

func TestAscendingPrecedence(t *testing.T) {
	t.Parallel()

	descending := []Root{
		{Scope: ProjectHigh, Dir: "a"},
		{Scope: Project, Dir: "b"},
		{Scope: User, Dir: "c"},
	}

	ascending := AscendingPrecedence(descending)
	require.Equal(t, []Scope{User, Project, ProjectHigh}, []Scope{ascending[0].Scope, ascending[1].Scope, ascending[2].Scope})

	// original slice must be untouched
	require.Equal(t, ProjectHigh, descending[0].Scope)
}
