// Package command implements the slash-command registry: parsing markdown
// command files into executable prompt templates, detecting invocations in
// free-form user text, and substituting arguments.
package command

import "regexp"

// Scope is the precedence tier a command was loaded from, highest first:
// ProjectHigh > Project > User.
type Scope string

const (
	ProjectHigh Scope = "project-high"
	Project     Scope = "project"
	User        Scope = "user"
)

// nameRe is the closed grammar for command names and detected invocation
// identifiers alike.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidName reports whether name is non-empty and matches [A-Za-z0-9_-]+.
func ValidName(name string) bool {
	return name != "" && nameRe.MatchString(name)
}

// Substitution is the literal sentinel a command body substitutes its
// arguments into.
const Substitution = "$ARGUMENTS"

// Command is a named, documented prompt template, stamped with the file
// and scope it was loaded from. Commands are immutable once constructed.
type Command struct {
	Name        string
	Description string
	Body        string

	// ArgumentHint and AllowedTools are inert metadata read from the
	// optional header when present; they do not affect matching or
	// substitution, only what a caller may choose to display as usage
	// help.
	ArgumentHint string
	AllowedTools string

	Path  string
	Scope Scope
}
