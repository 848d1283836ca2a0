package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// runShellScript executes a .sh hook that lacks the executable bit through
// an embedded POSIX shell, the way the teacher runs its own generated
// shell scripts through mvdan.cc/sh rather than shelling out to /bin/sh —
// portable on platforms with no /bin/sh.
func runShellScript(ctx context.Context, path, dir string, env []string, stdin io.Reader) (stdout, stderr string, exitCode int, err error) {
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return "", "", -1, readErr
	}

	file, parseErr := syntax.NewParser().Parse(bytes.NewReader(content), path)
	if parseErr != nil {
		return "", "", -1, fmt.Errorf("parse %s: %w", path, parseErr)
	}

	var outBuf, errBuf bytes.Buffer
	runner, newErr := interp.New(
		interp.StdIO(stdin, &outBuf, &errBuf),
		interp.Env(expand.ListEnviron(env...)),
		interp.Dir(dir),
		interp.Interactive(false),
	)
	if newErr != nil {
		return "", "", -1, newErr
	}

	runErr := runner.Run(ctx, file)
	if runErr == nil {
		return outBuf.String(), errBuf.String(), 0, nil
	}
	if ctx.Err() != nil {
		return outBuf.String(), errBuf.String(), -1, ctx.Err()
	}

	var status interp.ExitStatus
	if errors.As(runErr, &status) {
		return outBuf.String(), errBuf.String(), int(status), nil
	}
	return outBuf.String(), errBuf.String(), 1, nil
}
