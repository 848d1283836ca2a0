// Package integration exposes the three thin entry points a host CLI or
// agent wires into its own prompt and tool-use pipeline: prompt rewriting,
// lifecycle event dispatch, and status-line generation. Each is a self
// contained call — construct an Engine once per session and reuse it for
// every call.
package integration

import (
	"context"
	"strings"

	"github.com/jleechanorg/codex-fork/internal/command"
	"github.com/jleechanorg/codex-fork/internal/csync"
	"github.com/jleechanorg/codex-fork/internal/hooks"
	"github.com/jleechanorg/codex-fork/internal/hookspec"
	"github.com/jleechanorg/codex-fork/internal/paths"
	"github.com/jleechanorg/codex-fork/internal/xconfig"
)

// Engine bundles the loaded configuration for one working directory into
// the three operations a host needs.
type Engine struct {
	registry *command.Registry
	system   *hooks.System
	view     *xconfig.View

	// cachedStatusLine holds the last successful StatusLine render, so a
	// host redrawing a status bar on every keystroke can read it without
	// re-running the external command each time.
	cachedStatusLine *csync.String
}

// Load resolves configuration roots for workingDir (and home, which may be
// empty to use os.UserHomeDir), builds the command registry, and loads the
// merged settings view. It returns an error only when a scope's
// settings.json exists but cannot be read or fails to parse.
func Load(workingDir, home string) (*Engine, error) {
	roots := paths.Resolve(workingDir, home)

	view, err := xconfig.Load(roots)
	if err != nil {
		return nil, err
	}

	return &Engine{
		registry:         command.Build(workingDir, home),
		system:           hooks.NewSystem(view, hooks.NewExecutor(roots)),
		view:             view,
		cachedStatusLine: csync.NewString(),
	}, nil
}

// Commands returns every registered slash command, sorted by name.
func (e *Engine) Commands() []*command.Command {
	return e.registry.All()
}

// RewritePrompt detects a leading slash-command invocation in userText and,
// if one is registered, returns its body with $ARGUMENTS substituted. Text
// that does not match a registered command is returned unchanged.
func (e *Engine) RewritePrompt(userText string) string {
	name, args, ok := command.Detect(userText)
	if !ok {
		return userText
	}
	cmd, ok := e.registry.Lookup(name)
	if !ok {
		return userText
	}
	return command.Substitute(cmd, args)
}

// RunEvent executes every hook registered for event against input and
// returns the aggregated result, short-circuiting on the first blocking
// outcome.
func (e *Engine) RunEvent(ctx context.Context, event hookspec.Event, input hookspec.Input) hookspec.Aggregate {
	return e.system.Run(ctx, event, input)
}

// StatusLine runs the configured statusLine command, if any, and returns
// its trimmed stdout and composition mode. ok is false when no statusLine
// is configured, or the command timed out or exited non-zero — callers
// should treat that as "nothing to show", not an error.
func (e *Engine) StatusLine(ctx context.Context, input hookspec.Input) (text string, mode hookspec.StatusLineMode, ok bool) {
	hc := e.view.StatusLine
	if hc == nil {
		return "", "", false
	}

	outcome := e.system.ExecuteStatusLine(ctx, *hc, input)
	if outcome.Err != nil || outcome.ExitCode != 0 {
		return "", "", false
	}

	text = strings.TrimRight(outcome.RawStdout, "\n")
	e.cachedStatusLine.Store(text)
	mode = hc.Mode
	if mode == "" {
		mode = hookspec.StatusLineAppend
	}
	return text, mode, true
}

// CachedStatusLine returns the text from the most recent successful
// StatusLine call, or "" if none has succeeded yet. Safe to call
// concurrently with StatusLine and RunEvent.
func (e *Engine) CachedStatusLine() string {
	return e.cachedStatusLine.String()
}
