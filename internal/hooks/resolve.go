package hooks

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jleechanorg/codex-fork/internal/paths"
)

// resolvedCommand is what command resolution decided to run.
type resolvedCommand struct {
	// Path is the file to execute (absolute, or a name os/exec will
	// resolve against PATH when Interpreter == "").
	Path string
	// Interpreter is the program to invoke Path with, when Path itself is
	// not executable. Empty means invoke Path directly.
	Interpreter string
	// EmbeddedShell is true when Path is a non-executable .sh file that
	// should run through the in-process POSIX shell interpreter instead
	// of os/exec.
	EmbeddedShell bool
}

var interpreterByExt = map[string]string{
	".py": "python3",
	".js": "node",
}

// resolve implements the command resolution rules in the hook executor
// design: absolute paths and paths containing a separator are used as-is;
// bare names are searched in a hooks/ directory first, then the ambient
// PATH. If the resolved file is not executable, an interpreter is chosen
// from its extension (.sh is handled separately by the embedded POSIX
// shell, not os/exec).
//
// scope narrows the hooks/ directory search to the registration's own
// scope, since that is where its author would have placed a sibling
// script. An empty scope (the statusLine command has no owning
// registration) searches every root's hooks/ directory instead.
func resolve(command string, scope string, roots []paths.Root) resolvedCommand {
	if filepath.IsAbs(command) || strings.ContainsRune(command, '/') || strings.ContainsRune(command, filepath.Separator) {
		return finishResolve(command)
	}

	for _, root := range roots {
		if scope != "" && string(root.Scope) != scope {
			continue
		}
		candidate := filepath.Join(root.HooksDir(), command)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return finishResolve(candidate)
		}
	}

	if found, err := exec.LookPath(command); err == nil {
		return finishResolve(found)
	}

	// Not found anywhere; return the bare name so the spawn attempt
	// produces a clear "executable file not found" error.
	return finishResolve(command)
}

func finishResolve(path string) resolvedCommand {
	if isExecutableFile(path) {
		return resolvedCommand{Path: path}
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".sh" {
		return resolvedCommand{Path: path, EmbeddedShell: true}
	}
	return resolvedCommand{Path: path, Interpreter: interpreterByExt[ext]}
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}
