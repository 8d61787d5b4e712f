// Package depth models terminal color precision tiers and infers the best
// tier the current terminal supports. The conversion engine in pkg/dahlia
// consumes a Depth as a typed input and never inspects the environment
// itself.
package depth

import (
	"strings"

	"github.com/arthur-debert/dahlia/pkg/errors"
)

// Depth is a terminal color precision tier. The numeric values are the
// conventional bit widths, so tiers are ordered and comparable.
type Depth int

const (
	// None disables color output entirely; converting with it strips codes.
	None Depth = 0
	// TTY is 3-bit color (the 8-color family shared with bold variants)
	TTY Depth = 3
	// Low is 4-bit color (16 colors, bright family)
	Low Depth = 4
	// Medium is 8-bit color (256-color palette)
	Medium Depth = 8
	// High is 24-bit true color
	High Depth = 24
)

// String returns the string representation of the depth
func (d Depth) String() string {
	switch d {
	case None:
		return "none"
	case TTY:
		return "tty"
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Parse parses a depth from its name or its bit width
func Parse(s string) (Depth, error) {
	switch strings.ToLower(s) {
	case "none":
		return None, nil
	case "tty", "3":
		return TTY, nil
	case "low", "4":
		return Low, nil
	case "medium", "8":
		return Medium, nil
	case "high", "24":
		return High, nil
	default:
		return None, errors.Newf(errors.ErrInvalidDepth, "unknown depth %q", s)
	}
}
