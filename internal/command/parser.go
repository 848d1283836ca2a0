package command

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jleechanorg/codex-fork/internal/xerrors"
)

const headerDelimiter = "---"

// Parse decodes one command file's contents into a Command. path is used
// only to derive the default name (file stem) and is stamped onto the
// result; scope stamping is the caller's responsibility (loadDir does it).
//
// The header, if present, is a block delimited by lines consisting solely
// of "---": zero or more "key: value" lines, no nesting. Recognized keys
// are name, description, argument-hint, allowed-tools; any other key is
// ignored. Body is everything after the closing delimiter, or the entire
// file if no header is present.
func Parse(path string, content []byte) (*Command, error) {
	text := string(content)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	header, body, err := splitHeader(text)
	if err != nil {
		return nil, &xerrors.CommandParseError{Path: path, Err: err}
	}

	cmd := &Command{
		Name: stem,
		Body: body,
		Path: path,
	}

	for key, value := range header {
		switch key {
		case "name":
			cmd.Name = value
		case "description":
			cmd.Description = value
		case "argument-hint":
			cmd.ArgumentHint = value
		case "allowed-tools":
			cmd.AllowedTools = value
		}
	}

	if !ValidName(cmd.Name) {
		return nil, &xerrors.CommandParseError{
			Path: path,
			Err:  fmt.Errorf("derived command name %q is empty or contains characters outside [A-Za-z0-9_-]", cmd.Name),
		}
	}

	return cmd, nil
}

// splitHeader separates an optional "---"-delimited header block from the
// body. Lines must consist solely of "---" (after trimming trailing
// carriage returns) to act as a delimiter.
func splitHeader(text string) (map[string]string, string, error) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != headerDelimiter {
		return nil, text, nil
	}

	closeIdx := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == headerDelimiter {
			closeIdx = i
			break
		}
	}
	if closeIdx == -1 {
		return nil, "", fmt.Errorf("unterminated header block: missing closing %q", headerDelimiter)
	}

	header := map[string]string{}
	for _, line := range lines[1:closeIdx] {
		line = strings.TrimRight(line, "\r")
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		header[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	body := strings.Join(lines[closeIdx+1:], "\n")
	return header, body, nil
}
