package xconfig

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/jleechanorg/codex-fork/internal/hookspec"
	"github.com/jleechanorg/codex-fork/internal/paths"
	"github.com/jleechanorg/codex-fork/internal/xerrors"
	"github.com/jleechanorg/codex-fork/internal/xlog"
)

// loadScope reads and decodes one root's settings.json. A missing file is
// not an error — it is treated as an empty scope. Malformed JSON is a hard
// failure for that scope only, named with the offending path.
func loadScope(root paths.Root) (*rawSettings, error) {
	data, err := os.ReadFile(root.SettingsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &rawSettings{}, nil
		}
		return nil, &xerrors.ConfigIOError{Path: root.SettingsPath(), Err: err}
	}

	var raw rawSettings
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &xerrors.ConfigParseError{Path: root.SettingsPath(), Err: err}
	}
	return &raw, nil
}

// Load resolves settings across all scopes in roots (expected in
// descending precedence, as returned by paths.Resolve) and merges them
// into a single View. Registrations for one event are concatenated in
// ascending precedence order (user, project, project-high) so
// higher-precedence scopes run later. A registration with a missing or
// empty hooks list is dropped. Unknown event names are ignored with a
// logged warning. statusLine is taken from the highest-precedence scope
// that defines one. A scope whose settings.json cannot be read or decoded
// is left out of the View while the other scopes still merge; the returned
// error then joins the error of every failing scope.
func Load(roots []paths.Root) (*View, error) {
	view := &View{Hooks: map[hookspec.Event][]hookspec.Registration{}}
	var errs []error

	for _, root := range paths.AscendingPrecedence(roots) {
		raw, err := loadScope(root)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		for event, regs := range raw.Hooks {
			if !hookspec.KnownEvents[event] {
				xlog.Warn("ignoring unknown hook event", "component", "xconfig", "scope", root.Scope, "event", event)
				continue
			}
			for _, reg := range regs {
				if len(reg.Hooks) == 0 {
					continue
				}
				reg.Scope = string(root.Scope)
				view.Hooks[event] = append(view.Hooks[event], reg)
			}
		}

		if raw.StatusLine != nil {
			view.StatusLine = raw.StatusLine
		}
	}

	return view, errors.Join(errs...)
}
