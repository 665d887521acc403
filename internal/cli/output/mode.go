// Package output renders command results for terminals, pipes and machines.
//
// A Renderer picks one of three concrete modes. In auto mode a TTY gets
// styled text and anything else gets markdown, which reads well in logs and
// when pasted into documents.
package output

import (
	"fmt"
	"strings"
)

// Mode selects how command output is rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Modes returns every accepted mode name, for validation and completion.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}
}

// ParseMode validates a mode name. Empty input means auto; "md" is accepted
// as shorthand for markdown.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "text":
		return ModeText, nil
	case "markdown", "md":
		return ModeMarkdown, nil
	case "json":
		return ModeJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected one of: %s)", s, strings.Join(Modes(), ", "))
	}
}
