// Package xconfig loads and merges settings.json across the three
// configuration scopes into a single immutable runtime view.
package xconfig

import (
	"github.com/jleechanorg/codex-fork/internal/hookspec"
)

// rawSettings is the tolerant on-disk shape of one scope's settings.json.
// encoding/json already ignores keys it doesn't recognize, which is all
// the "tolerant parsing of unknown fields" this format requires.
type rawSettings struct {
	Hooks      map[hookspec.Event][]hookspec.Registration `json:"hooks,omitempty" jsonschema:"description=Lifecycle hook registrations keyed by event name"`
	StatusLine *hookspec.HookCommand                       `json:"statusLine,omitempty" jsonschema:"description=Optional status-line generator command"`
}

// View is the merged, read-only runtime configuration for a session. It is
// safe to share across concurrent events without locking once built.
type View struct {
	Hooks      map[hookspec.Event][]hookspec.Registration
	StatusLine *hookspec.HookCommand
}

// HooksFor returns the registrations for event, or nil if none are
// configured.
func (v *View) HooksFor(event hookspec.Event) []hookspec.Registration {
	if v == nil {
		return nil
	}
	return v.Hooks[event]
}
