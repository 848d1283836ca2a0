// Package xerrors provides the centralized error vocabulary for the
// extension engine: one sentinel per error kind named in the hook/command
// error handling design, plus thin wrapper types that name the offending
// file or hook while staying errors.Is-compatible with the sentinel.
// ErrBlocked has no wrapper type.
package xerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per error kind in the error handling design.
var (
	ErrConfigParse  = errors.New("settings file is malformed")
	ErrConfigIO     = errors.New("settings file could not be read")
	ErrCommandParse = errors.New("command file has malformed frontmatter")
	ErrHookSpawn    = errors.New("hook process failed to launch")
	ErrHookIO       = errors.New("hook process I/O failed")
	ErrHookTimeout  = errors.New("hook process timed out")
	ErrHookNonZero  = errors.New("hook process exited non-zero")
	ErrBlocked      = errors.New("hook blocked the event")
)

// ConfigParseError names the settings.json file that failed to decode.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, ErrConfigParse, e.Err)
}

func (e *ConfigParseError) Unwrap() []error { return []error{ErrConfigParse, e.Err} }

// ConfigIOError names the settings.json file that could not be read.
type ConfigIOError struct {
	Path string
	Err  error
}

func (e *ConfigIOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, ErrConfigIO, e.Err)
}

func (e *ConfigIOError) Unwrap() []error { return []error{ErrConfigIO, e.Err} }

// CommandParseError names the command file that failed to parse.
type CommandParseError struct {
	Path string
	Err  error
}

func (e *CommandParseError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, ErrCommandParse, e.Err)
}

func (e *CommandParseError) Unwrap() []error { return []error{ErrCommandParse, e.Err} }

// HookSpawnError names the hook command that could not be launched.
type HookSpawnError struct {
	Command string
	Err     error
}

func (e *HookSpawnError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Command, ErrHookSpawn, e.Err)
}

func (e *HookSpawnError) Unwrap() []error { return []error{ErrHookSpawn, e.Err} }

// HookIOError names the hook command whose stdin/stdout handling failed.
type HookIOError struct {
	Command string
	Err     error
}

func (e *HookIOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Command, ErrHookIO, e.Err)
}

func (e *HookIOError) Unwrap() []error { return []error{ErrHookIO, e.Err} }

// HookTimeoutError names the hook command that exceeded its timeout.
type HookTimeoutError struct {
	Command string
	Timeout string
}

func (e *HookTimeoutError) Error() string {
	return fmt.Sprintf("%s: %s after %s", e.Command, ErrHookTimeout, e.Timeout)
}

func (e *HookTimeoutError) Unwrap() error { return ErrHookTimeout }

// HookNonZeroError names the hook command and the exit code it returned.
type HookNonZeroError struct {
	Command  string
	ExitCode int
}

func (e *HookNonZeroError) Error() string {
	return fmt.Sprintf("%s: %s (exit %d)", e.Command, ErrHookNonZero, e.ExitCode)
}

func (e *HookNonZeroError) Unwrap() error { return ErrHookNonZero }
