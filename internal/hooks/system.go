package hooks

import (
	"context"
	"strings"

	"github.com/jleechanorg/codex-fork/internal/hookspec"
	"github.com/jleechanorg/codex-fork/internal/xconfig"
	"github.com/jleechanorg/codex-fork/internal/xlog"
)

// System runs every hook registered for an event against one Input,
// honoring matcher selection, execution order, and blocking short-circuit.
type System struct {
	view     *xconfig.View
	executor *Executor
}

// NewSystem builds a System over the given merged settings view, running
// each hook through executor.
func NewSystem(view *xconfig.View, executor *Executor) *System {
	return &System{view: view, executor: executor}
}

// Run executes every Registration whose matcher selects input, in
// registration order, running each Registration's Hooks sequentially. The
// first blocking Outcome stops all further execution (within and across
// registrations) and is reflected in the returned Aggregate.
func (s *System) Run(ctx context.Context, event hookspec.Event, input hookspec.Input) hookspec.Aggregate {
	input.HookEventName = event

	var agg hookspec.Aggregate
	var contexts []string

	log := xlog.With("component", "hooks", "event", event)

	for _, reg := range s.view.HooksFor(event) {
		if !matches(reg.EffectiveMatcher(), input) {
			continue
		}
		for _, hc := range reg.Hooks {
			outcome := s.executor.Execute(ctx, hc, reg.Scope, input)
			agg.Outcomes = append(agg.Outcomes, outcome)

			if outcome.AdditionalContext != "" {
				contexts = append(contexts, outcome.AdditionalContext)
			}

			if outcome.IsBlocking {
				log.Info("hook blocked event", "command", outcome.Command, "reason", outcome.BlockReason)
				agg.Blocked = true
				agg.BlockReason = outcome.BlockReason
				agg.AddedContext = strings.Join(contexts, "\n\n")
				return agg
			}
		}
	}

	agg.AddedContext = strings.Join(contexts, "\n\n")
	return agg
}

// ExecuteStatusLine runs the settings view's statusLine command directly,
// bypassing matcher selection and blocking semantics, which do not apply
// to it.
func (s *System) ExecuteStatusLine(ctx context.Context, hc hookspec.HookCommand, input hookspec.Input) hookspec.Outcome {
	return s.executor.Execute(ctx, hc, "", input)
}

// matches implements the registration matcher: "*", empty, and absent all
// select every input. For PreToolUse/PostToolUse a non-wildcard matcher is
// compared against the tool name exactly; for every other event a
// non-wildcard matcher never matches, since there is no tool name to
// compare against.
func matches(matcher string, input hookspec.Input) bool {
	if matcher == "*" || matcher == "" {
		return true
	}
	switch input.HookEventName {
	case hookspec.PreToolUse, hookspec.PostToolUse:
		return matcher == input.ToolName
	default:
		return false
	}
}
