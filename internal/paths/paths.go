// Package paths resolves the three scoped configuration roots the
// extension engine reads from, in descending precedence order.
package paths

import (
	"os"
	"path/filepath"

	"github.com/jleechanorg/codex-fork/internal/xlog"
)

// Scope identifies one of the three configuration roots, ordered by
// precedence (ProjectHigh is highest, User is lowest).
type Scope string

const (
	ProjectHigh Scope = "project-high"
	Project     Scope = "project"
	User        Scope = "user"
)

// Root is one scoped configuration directory.
type Root struct {
	Scope Scope
	Dir   string
}

// SettingsPath returns the settings.json path under this root.
func (r Root) SettingsPath() string { return filepath.Join(r.Dir, "settings.json") }

// CommandsDir returns the commands/ directory under this root.
func (r Root) CommandsDir() string { return filepath.Join(r.Dir, "commands") }

// HooksDir returns the hooks/ directory under this root.
func (r Root) HooksDir() string { return filepath.Join(r.Dir, "hooks") }

// Resolve locates the three configuration roots for workingDir, in
// descending precedence: "<workingDir>/.codexplus", "<workingDir>/.claude",
// "<home>/.claude". Missing roots are not an error — callers treat an
// absent directory as empty. home may be empty, in which case the user
// scope is resolved from os.UserHomeDir.
func Resolve(workingDir, home string) []Root {
	if home == "" {
		if dir, err := os.UserHomeDir(); err == nil {
			home = dir
		}
	}

	roots := []Root{
		{Scope: ProjectHigh, Dir: filepath.Join(workingDir, ".codexplus")},
		{Scope: Project, Dir: filepath.Join(workingDir, ".claude")},
	}
	if home != "" {
		roots = append(roots, Root{Scope: User, Dir: filepath.Join(home, ".claude")})
	}

	for _, r := range roots {
		if _, err := os.Stat(r.Dir); err != nil {
			xlog.Debug("configuration root not found", "component", "paths", "scope", r.Scope, "dir", r.Dir)
		}
	}
	return roots
}

// AscendingPrecedence returns roots ordered lowest-precedence first (user,
// project, project-high), the order settings merges and command scan
// population follow.
func AscendingPrecedence(roots []Root) []Root {
	out := make([]Root, len(roots))
	copy(out, roots)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
