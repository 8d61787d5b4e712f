package dahlia

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dahlia/pkg/depth"
)

type codeKind int

const (
	kindFormat codeKind = iota
	kindColor
	kindHex
)

// code is the structured classification of one matched markup token
type code struct {
	kind       codeKind
	background bool
	value      string
}

// classify splits a raw match into its tagged variant using the pattern's
// capture groups. Exactly one of the color, hex, and formatter groups is
// non-empty for any match the grammar produces.
func (d *Dahlia) classify(match string) code {
	groups := d.pattern.FindStringSubmatch(match)
	switch {
	case groups[groupFormat] != "":
		return code{kind: kindFormat, value: groups[groupFormat]}
	case groups[groupHex] != "":
		return code{kind: kindHex, background: groups[groupBackground] == "~", value: groups[groupHex]}
	default:
		return code{kind: kindColor, background: groups[groupBackground] == "~", value: groups[groupColor]}
	}
}

// resolve renders one classified code as the ANSI fragment to substitute.
// A code the matcher produced but the tables do not know signals a
// grammar/table mismatch; the two are co-designed, so that state is
// unreachable through the public API and treated as a fatal fault.
func (d *Dahlia) resolve(c code) string {
	switch c.kind {
	case kindFormat:
		params, ok := formatters[c.value]
		if !ok {
			panic(fmt.Sprintf("dahlia: formatter %q matched but has no table entry", c.value))
		}
		var b strings.Builder
		for _, n := range params {
			fmt.Fprintf(&b, "\x1b[%dm", n)
		}
		return b.String()
	case kindHex:
		// Explicit literals always render at 24-bit precision; they
		// bypass the palette entirely.
		return rgbSequence(parseHex(c.value), c.background)
	default:
		return d.resolveColor(c)
	}
}

// resolveColor renders a short color code at the active depth
func (d *Dahlia) resolveColor(c code) string {
	key := c.value[0]

	if d.depth == depth.High {
		t, ok := colorsHigh[key]
		if !ok {
			panic(fmt.Sprintf("dahlia: color %q matched but has no 24-bit table entry", c.value))
		}
		return rgbSequence(t, c.background)
	}

	n, ok := colorTable(d.depth)[key]
	if !ok {
		panic(fmt.Sprintf("dahlia: color %q matched but has no %s table entry", c.value, d.depth))
	}

	switch {
	case d.depth == depth.Medium && c.background:
		return fmt.Sprintf("\x1b[48;5;%dm", n)
	case d.depth == depth.Medium:
		return fmt.Sprintf("\x1b[38;5;%dm", n)
	case c.background:
		// TTY and Low encode backgrounds as a fixed +10 offset on the
		// foreground parameter.
		return fmt.Sprintf("\x1b[%dm", n+10)
	default:
		return fmt.Sprintf("\x1b[%dm", n)
	}
}

// rgbSequence emits the 24-bit SGR template
func rgbSequence(t rgb, background bool) string {
	if background {
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", t.r, t.g, t.b)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", t.r, t.g, t.b)
}

// parseHex converts a 3- or 6-digit hex payload into an RGB triple. The
// 3-digit form duplicates each nibble per channel (f -> ff). The grammar
// only admits those two lengths and lowercase digits.
func parseHex(h string) rgb {
	if len(h) == 3 {
		return rgb{
			r: hexNibble(h[0]) * 0x11,
			g: hexNibble(h[1]) * 0x11,
			b: hexNibble(h[2]) * 0x11,
		}
	}
	return rgb{
		r: hexNibble(h[0])<<4 | hexNibble(h[1]),
		g: hexNibble(h[2])<<4 | hexNibble(h[3]),
		b: hexNibble(h[4])<<4 | hexNibble(h[5]),
	}
}

func hexNibble(c byte) uint8 {
	if c >= 'a' {
		return uint8(c-'a') + 10
	}
	return uint8(c - '0')
}
