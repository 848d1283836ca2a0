// Package hookspec defines the typed request/response records shared by
// every lifecycle event: the wire format hooks receive on stdin, the
// decoded shape of what they may return, and the registration types that
// settings.json decodes into.
package hookspec

import "encoding/json"

// Event is one of the closed set of lifecycle events a hook may register
// for. Unknown events encountered in configuration are ignored with a
// logged warning by the settings loader, not rejected here.
type Event string

const (
	UserPromptSubmit Event = "UserPromptSubmit"
	PreToolUse        Event = "PreToolUse"
	PostToolUse       Event = "PostToolUse"
	SessionStart      Event = "SessionStart"
	SessionEnd        Event = "SessionEnd"
	Notification      Event = "Notification"
	Stop              Event = "Stop"
	PreCompact        Event = "PreCompact"
)

// KnownEvents is the closed enumeration of lifecycle events.
var KnownEvents = map[Event]bool{
	UserPromptSubmit: true,
	PreToolUse:        true,
	PostToolUse:       true,
	SessionStart:      true,
	SessionEnd:        true,
	Notification:      true,
	Stop:              true,
	PreCompact:        true,
}

// DefaultTimeoutSeconds is used when a HookCommand omits "timeout".
const DefaultTimeoutSeconds = 5

// StatusLineMode controls how a generated status line composes with the
// host's own status bar content.
type StatusLineMode string

const (
	StatusLinePrepend StatusLineMode = "prepend"
	StatusLineAppend  StatusLineMode = "append"
)

// HookCommand is a single external-executable hook registration.
type HookCommand struct {
	// Type is currently always "command"; modeled as a string rather than
	// a closed enum so an in-process hook variant can be added later
	// without an incompatible schema change.
	Type    string `json:"type,omitempty"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`

	// Mode only applies to the statusLine registration; it is ignored
	// everywhere else.
	Mode StatusLineMode `json:"mode,omitempty"`
}

// TimeoutOrDefault returns the configured timeout, or DefaultTimeoutSeconds
// when unset or non-positive.
func (h HookCommand) TimeoutOrDefault() int {
	if h.Timeout <= 0 {
		return DefaultTimeoutSeconds
	}
	return h.Timeout
}

// Registration pairs a matcher with the ordered hooks it triggers.
type Registration struct {
	Matcher string        `json:"matcher,omitempty"`
	Hooks   []HookCommand `json:"hooks"`
	// Scope records which configuration root contributed this
	// registration, so the executor knows which hooks/ directory to
	// search first for a bare command name.
	Scope string `json:"-"`
}

// EffectiveMatcher returns the matcher, defaulting absence to "*".
func (r Registration) EffectiveMatcher() string {
	if r.Matcher == "" {
		return "*"
	}
	return r.Matcher
}

// Input is serialized to JSON on a hook's standard input. Event-specific
// fields are merged at the top level; unknown keys on either side are
// tolerated via omitempty plus JSON's natural forward-compatibility.
type Input struct {
	SessionID      string `json:"sessionId"`
	TranscriptPath string `json:"transcriptPath,omitempty"`
	Cwd            string `json:"cwd"`
	HookEventName  Event  `json:"hookEventName"`

	// UserPromptSubmit
	Prompt string `json:"prompt,omitempty"`

	// PreToolUse / PostToolUse
	ToolName     string          `json:"toolName,omitempty"`
	ToolUseID    string          `json:"toolUseId,omitempty"`
	ToolInput    json.RawMessage `json:"toolInput,omitempty"`
	ToolResponse json.RawMessage `json:"toolResponse,omitempty"`

	// Notification
	Message string `json:"message,omitempty"`

	// Stop
	Reason string `json:"reason,omitempty"`
}

// Decision is the structured-JSON decision channel a hook may return on
// stdout, as an alternative to the exit-code channel.
type Decision string

const (
	DecisionBlock   Decision = "block"
	DecisionAllow   Decision = "allow"
	DecisionProceed Decision = "proceed"
)

// HookSpecificOutput carries the per-event extras a hook may attach to its
// JSON response.
type HookSpecificOutput struct {
	HookEventName     string `json:"hookEventName,omitempty"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// StdoutPayload is the shape a hook's stdout decodes into when it parses
// as a JSON object. All fields are optional; non-JSON stdout simply never
// produces one of these.
type StdoutPayload struct {
	Decision           Decision            `json:"decision,omitempty"`
	Reason             string              `json:"reason,omitempty"`
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// Outcome is what running one hook produced.
type Outcome struct {
	Command           string         `json:"command"`
	ExitCode          int            `json:"exitCode"`
	RawStdout         string         `json:"-"`
	StdoutParsed      *StdoutPayload `json:"stdoutParsed,omitempty"`
	IsBlocking        bool           `json:"isBlocking"`
	AdditionalContext string         `json:"additionalContext,omitempty"`
	BlockReason       string         `json:"blockReason,omitempty"`
	Err               error          `json:"-"`
}

// Aggregate is the result of running every hook registered for one event.
type Aggregate struct {
	Outcomes      []Outcome `json:"outcomes"`
	Blocked       bool      `json:"blocked"`
	BlockReason   string    `json:"blockReason,omitempty"`
	AddedContext  string    `json:"addedContext,omitempty"`
}
