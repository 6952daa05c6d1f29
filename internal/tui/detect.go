package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode is whether a human is at a terminal.
type Mode int

const (
	ModeNonInteractive Mode = iota // pipes, scripts, CI: plain text, no prompts
	ModeInteractive                // a terminal: full-screen preview and prompts
)

// EnvNonInteractive forces ModeNonInteractive when set to "1".
const EnvNonInteractive = "TABLOAD_NON_INTERACTIVE"

// DetectMode decides between the scrollable preview and prompts on one
// side, and plain output on the other. Both stdin and stdout must be
// terminals; TABLOAD_NON_INTERACTIVE=1, CI or NO_COLOR force plain output.
func DetectMode() Mode {
	return detectMode(os.Getenv, func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	})
}

func detectMode(getenv func(string) string, attached func() bool) Mode {
	if getenv(EnvNonInteractive) == "1" || getenv("CI") != "" || getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}
	if !attached() {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive reports DetectMode() == ModeInteractive.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
