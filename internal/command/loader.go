package command

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/jleechanorg/codex-fork/internal/xlog"
)

// ParseFile reads and parses a single command file.
func ParseFile(path string) (*Command, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, content)
}

// loadDir parses every *.md file directly under dir (non-recursive) and
// stamps each command with scope. Files are processed in lexicographic
// path order so the "first-loaded wins" duplicate rule is deterministic.
// Missing directories are not an error.
func loadDir(dir string, scope Scope) []*Command {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			xlog.Warn("failed to read commands directory", "component", "command", "dir", dir, "error", err)
		}
		return nil
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".md" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	seen := map[string]bool{}
	var out []*Command
	for _, name := range names {
		path := filepath.Join(dir, name)
		cmd, err := ParseFile(path)
		if err != nil {
			xlog.Warn("skipping invalid command file", "component", "command", "path", path, "error", err)
			continue
		}
		if seen[cmd.Name] {
			xlog.Warn("duplicate command name in scope, keeping first", "component", "command", "scope", scope, "name", cmd.Name, "path", path)
			continue
		}
		seen[cmd.Name] = true
		cmd.Scope = scope
		out = append(out, cmd)
	}
	return out
}
