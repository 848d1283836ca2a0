package command

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jleechanorg/codex-fork/internal/paths"
)

// detectRe matches a leading slash-command invocation: a "/" followed by
// an identifier, optionally followed by one delimiting space and the
// remainder of the line as raw arguments.
var detectRe = regexp.MustCompile(`^/([A-Za-z0-9_-]+)(?: (.*))?$`)

// Registry stores commands by name, post scope-precedence merge, and
// implements invocation detection and argument substitution.
type Registry struct {
	commands map[string]*Command
}

// scopeOf maps a configuration root's scope to a command Scope.
func scopeOf(s paths.Scope) Scope {
	switch s {
	case paths.ProjectHigh:
		return ProjectHigh
	case paths.Project:
		return Project
	default:
		return User
	}
}

// Build scans all three command directories rooted at workingDir (and the
// user's home, resolved the same way the settings loader resolves roots)
// and returns a registry populated in ascending precedence order, so
// higher-precedence scopes silently replace lower-precedence entries with
// the same name.
func Build(workingDir, home string) *Registry {
	roots := paths.AscendingPrecedence(paths.Resolve(workingDir, home))

	reg := &Registry{commands: map[string]*Command{}}
	for _, root := range roots {
		for _, cmd := range loadDir(root.CommandsDir(), scopeOf(root.Scope)) {
			reg.commands[cmd.Name] = cmd
		}
	}
	return reg
}

// NewRegistry builds a registry directly from a pre-loaded command list,
// useful for tests and for hosts that load commands through their own
// mechanism. Commands are inserted in the order given — later entries with
// the same name replace earlier ones, matching Build's ascending
// precedence semantics.
func NewRegistry(commands []*Command) *Registry {
	reg := &Registry{commands: map[string]*Command{}}
	for _, cmd := range commands {
		reg.commands[cmd.Name] = cmd
	}
	return reg
}

// Lookup returns the command registered under name, if any.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// All returns every registered command, sorted by name.
func (r *Registry) All() []*Command {
	out := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Detect matches a leading slash-command invocation in text: after
// trimming leading ASCII whitespace, text must begin with "/" followed by
// a non-empty identifier matching [A-Za-z0-9_-]+. On match it returns the
// identifier and the raw remainder of the line (trailing whitespace
// preserved) as arguments.
func Detect(text string) (name, args string, ok bool) {
	trimmed := strings.TrimLeft(text, " \t\r\n\v\f")
	line, _, _ := strings.Cut(trimmed, "\n")

	m := detectRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Substitute returns cmd's body with every literal occurrence of
// $ARGUMENTS replaced by args. An empty args string still replaces the
// sentinel — it is never left in place.
func Substitute(cmd *Command, args string) string {
	return strings.ReplaceAll(cmd.Body, Substitution, args)
}
