// Package hooks spawns the external processes that back lifecycle hooks,
// and orchestrates per-event execution: ordering, matching, timeouts, and
// blocking short-circuit semantics.
package hooks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/jleechanorg/codex-fork/internal/hookspec"
	"github.com/jleechanorg/codex-fork/internal/paths"
	"github.com/jleechanorg/codex-fork/internal/xerrors"
	"github.com/jleechanorg/codex-fork/internal/xlog"
)

// Executor runs exactly one HookCommand against one Input and returns an
// Outcome.
type Executor struct {
	roots []paths.Root
}

// NewExecutor creates an Executor that resolves bare hook names against
// the given configuration roots (expected in descending precedence, as
// returned by paths.Resolve).
func NewExecutor(roots []paths.Root) *Executor {
	return &Executor{roots: roots}
}

// Execute spawns hc against input, honoring hc's timeout, and decodes its
// response. scope identifies which root's hooks/ directory to search first
// for a bare command name — it should be the Scope of the Registration hc
// came from.
func (e *Executor) Execute(ctx context.Context, hc hookspec.HookCommand, scope string, input hookspec.Input) hookspec.Outcome {
	payload, err := json.Marshal(input)
	if err != nil {
		return hookspec.Outcome{Command: hc.Command, ExitCode: -1, Err: fmt.Errorf("marshal hook input: %w", err)}
	}

	timeout := time.Duration(hc.TimeoutOrDefault()) * time.Second
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resolved := resolve(hc.Command, scope, e.roots)

	env := append(os.Environ(),
		"CODEX_SESSION_ID="+input.SessionID,
		"CODEX_CWD="+input.Cwd,
		"CODEX_HOOK_EVENT="+string(input.HookEventName),
	)

	log := xlog.With("component", "hooks", "event", input.HookEventName, "command", hc.Command)

	var stdout, stderr string
	var exitCode int
	var runErr error

	if resolved.EmbeddedShell {
		stdout, stderr, exitCode, runErr = runShellScript(execCtx, resolved.Path, input.Cwd, env, bytes.NewReader(payload))
	} else {
		stdout, stderr, exitCode, runErr = runProcess(execCtx, resolved, env, input.Cwd, payload)
	}

	if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
		log.Warn("hook timed out", "timeout", timeout)
		timeoutErr := &xerrors.HookTimeoutError{Command: hc.Command, Timeout: timeout.String()}
		return hookspec.Outcome{
			Command:     hc.Command,
			ExitCode:    -1,
			IsBlocking:  false,
			BlockReason: timeoutErr.Error(),
			Err:         timeoutErr,
		}
	}

	if runErr != nil {
		log.Warn("hook failed to run", "error", runErr)
		return hookspec.Outcome{Command: hc.Command, ExitCode: -1, Err: &xerrors.HookSpawnError{Command: hc.Command, Err: runErr}}
	}

	if stderr != "" {
		log.Debug("hook stderr", "stderr", stderr)
	}

	outcome := hookspec.Outcome{Command: hc.Command, ExitCode: exitCode, RawStdout: stdout}

	if parsed := parseStdout(stdout); parsed != nil {
		outcome.StdoutParsed = parsed
		if parsed.HookSpecificOutput != nil {
			outcome.AdditionalContext = parsed.HookSpecificOutput.AdditionalContext
		}
	}

	outcome.IsBlocking = exitCode == 2 || (outcome.StdoutParsed != nil && outcome.StdoutParsed.Decision == hookspec.DecisionBlock)
	if outcome.IsBlocking {
		if outcome.StdoutParsed != nil && outcome.StdoutParsed.Reason != "" {
			outcome.BlockReason = outcome.StdoutParsed.Reason
		} else {
			outcome.BlockReason = fmt.Sprintf("Hook %s exited with status 2", hc.Command)
		}
	} else if exitCode != 0 {
		outcome.Err = &xerrors.HookNonZeroError{Command: hc.Command, ExitCode: exitCode}
	}

	return outcome
}

// parseStdout decodes stdout as a hookspec.StdoutPayload if it parses as a
// JSON object; any other content (including empty stdout) is discarded,
// not treated as an error.
func parseStdout(stdout string) *hookspec.StdoutPayload {
	trimmed := strings.TrimSpace(stdout)
	if trimmed == "" || trimmed[0] != '{' {
		return nil
	}
	var payload hookspec.StdoutPayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return nil
	}
	return &payload
}

// runProcess spawns resolved (directly, or through its interpreter) with
// the given environment, working directory, and stdin payload.
func runProcess(ctx context.Context, resolved resolvedCommand, env []string, dir string, stdin []byte) (stdout, stderr string, exitCode int, err error) {
	var cmd *exec.Cmd
	if resolved.Interpreter != "" {
		cmd = exec.CommandContext(ctx, resolved.Interpreter, resolved.Path)
	} else {
		cmd = exec.CommandContext(ctx, resolved.Path)
	}
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = bytes.NewReader(stdin)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	stdout, stderr = outBuf.String(), errBuf.String()

	if runErr == nil {
		return stdout, stderr, 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return stdout, stderr, exitErr.ExitCode(), nil
	}

	// Failed to launch, or was killed before producing an exit status
	// (including context cancellation).
	return stdout, stderr, 0, runErr
}
