package hooks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jleechanorg/codex-fork/internal/hookspec"
	"github.com/jleechanorg/codex-fork/internal/xconfig"
)

func scriptThat(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))
	return path
}

func TestSystemRunShortCircuitsOnFirstBlock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := scriptThat(t, dir, "first.sh", "#!/bin/sh\nexit 2\n")
	second := scriptThat(t, dir, "second.sh", "#!/bin/sh\nexit 0\n")

	view := &xconfig.View{
		Hooks: map[hookspec.Event][]hookspec.Registration{
			hookspec.UserPromptSubmit: {
				{Matcher: "*", Hooks: []hookspec.HookCommand{{Command: first}, {Command: second}}},
			},
		},
	}

	sys := NewSystem(view, NewExecutor(nil))
	agg := sys.Run(context.Background(), hookspec.UserPromptSubmit, hookspec.Input{})

	require.True(t, agg.Blocked)
	require.Len(t, agg.Outcomes, 1)
	require.Equal(t, first, agg.Outcomes[0].Command)
}

func TestSystemRunAggregatesContextWhenNotBlocked(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := scriptThat(t, dir, "a.sh", `#!/bin/sh
echo '{"hookSpecificOutput":{"additionalContext":"first"}}'
`)
	b := scriptThat(t, dir, "b.sh", `#!/bin/sh
echo '{"hookSpecificOutput":{"additionalContext":"second"}}'
`)

	view := &xconfig.View{
		Hooks: map[hookspec.Event][]hookspec.Registration{
			hookspec.UserPromptSubmit: {
				{Matcher: "*", Hooks: []hookspec.HookCommand{{Command: a}, {Command: b}}},
			},
		},
	}

	sys := NewSystem(view, NewExecutor(nil))
	agg := sys.Run(context.Background(), hookspec.UserPromptSubmit, hookspec.Input{})

	require.False(t, agg.Blocked)
	require.Equal(t, "first\n\nsecond", agg.AddedContext)
}

func TestSystemRunMatcherFiltersByToolName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := scriptThat(t, dir, "bash-only.sh", "#!/bin/sh\nexit 0\n")

	view := &xconfig.View{
		Hooks: map[hookspec.Event][]hookspec.Registration{
			hookspec.PreToolUse: {
				{Matcher: "Bash", Hooks: []hookspec.HookCommand{{Command: script}}},
			},
		},
	}

	sys := NewSystem(view, NewExecutor(nil))

	agg := sys.Run(context.Background(), hookspec.PreToolUse, hookspec.Input{ToolName: "Read"})
	require.Empty(t, agg.Outcomes)

	agg = sys.Run(context.Background(), hookspec.PreToolUse, hookspec.Input{ToolName: "Bash"})
	require.Len(t, agg.Outcomes, 1)
}

func TestSystemRunNoRegistrationsIsEmptyAggregate(t *testing.T) {
	t.Parallel()

	view := &xconfig.View{Hooks: map[hookspec.Event][]hookspec.Registration{}}
	sys := NewSystem(view, NewExecutor(nil))

	agg := sys.Run(context.Background(), hookspec.SessionStart, hookspec.Input{})
	require.False(t, agg.Blocked)
	require.Empty(t, agg.Outcomes)
}
