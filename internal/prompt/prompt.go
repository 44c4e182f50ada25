// Package prompt provides interactive confirmation prompts for
// destructive CLI operations, designed for testability.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm displays prompt and returns the user's answer. An empty
	// answer returns def.
	Confirm(prompt string, def bool) (bool, error)
}

// StdinConfirmer implements Confirmer over a reader/writer pair,
// typically stdin and stdout.
type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// New creates a StdinConfirmer on os.Stdin and os.Stdout.
func New() *StdinConfirmer {
	return &StdinConfirmer{In: os.Stdin, Out: os.Stdout}
}

// Confirm displays the prompt with a [y/N] or [Y/n] suffix and reads one
// line of input. Answers beginning with y or Y mean yes, anything else
// means no, and an empty answer means the default.
func (c *StdinConfirmer) Confirm(prompt string, def bool) (bool, error) {
	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	_, _ = fmt.Fprintf(c.Out, "%s %s ", prompt, suffix)

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Interactive reports whether stdin is attached to a terminal. Callers
// should skip prompting (and take the safe default) when it is not.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
