package depth

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Detect determines the best supported depth for the given output file.
// NO_COLOR, non-terminal output, and dumb terminals all yield None.
func Detect(output *os.File) Depth {
	// NO_COLOR or CLICOLOR=0 disables color regardless of the terminal
	if termenv.EnvNoColor() {
		return None
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return None
	}

	return FromEnvironment()
}

// FromEnvironment maps TERM/COLORTERM onto a depth without looking at the
// output stream. Terminals that advertise true color without setting
// COLORTERM (terminator, mosh) are checked first.
func FromEnvironment() Depth {
	term := os.Getenv("TERM")
	if term == "dumb" {
		return None
	}
	if strings.Contains(term, "24bit") || term == "terminator" || term == "mosh" {
		return High
	}

	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return High
	}
	if strings.Contains(term, "256color") {
		return Medium
	}
	return Low
}
