package dahlia

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/dahlia/pkg/depth"
	"github.com/arthur-debert/dahlia/pkg/logging"
)

// FullReset is the SGR sequence clearing all colors and attributes
const FullReset = "\x1b[0m"

// Dahlia converts marker-based markup into ANSI escape sequences.
//
// Conversion is a pure function of text and configuration: a converter
// with stable configuration is safe for concurrent use. The setters
// replace the compiled matcher and must not race with conversion calls.
type Dahlia struct {
	depth     depth.Depth
	autoReset bool
	marker    rune
	pattern   *regexp.Regexp
	escape    string
}

// Option configures a converter at construction time
type Option func(*Dahlia)

// WithDepth sets the color precision tier. depth.None makes Convert
// behave exactly like Clean.
func WithDepth(d depth.Depth) Option {
	return func(dh *Dahlia) { dh.depth = d }
}

// WithAutoReset controls whether Convert appends a full reset when the
// output does not already end with one.
func WithAutoReset(enabled bool) Option {
	return func(dh *Dahlia) { dh.autoReset = enabled }
}

// WithMarker sets the character introducing codes
func WithMarker(marker rune) Option {
	return func(dh *Dahlia) { dh.marker = marker }
}

// New creates a converter with marker '&', low depth and auto-reset
// enabled unless options say otherwise.
func New(opts ...Option) *Dahlia {
	d := &Dahlia{
		depth:     depth.Low,
		autoReset: true,
		marker:    '&',
	}
	for _, opt := range opts {
		opt(d)
	}
	d.recompile()
	return d
}

// Depth returns the active color precision tier
func (d *Dahlia) Depth() depth.Depth { return d.depth }

// Marker returns the active marker character
func (d *Dahlia) Marker() rune { return d.marker }

// AutoReset reports whether Convert appends a trailing full reset
func (d *Dahlia) AutoReset() bool { return d.autoReset }

// SetDepth changes the color precision tier
func (d *Dahlia) SetDepth(v depth.Depth) { d.depth = v }

// SetAutoReset changes the auto-reset behavior
func (d *Dahlia) SetAutoReset(enabled bool) { d.autoReset = enabled }

// SetMarker changes the marker and recompiles the matcher. Codes written
// under the previous marker become inert and pass through literally.
func (d *Dahlia) SetMarker(marker rune) {
	d.marker = marker
	d.recompile()
}

func (d *Dahlia) recompile() {
	d.pattern, d.escape = compilePattern(d.marker)
	logger := logging.GetLogger("dahlia")
	logger.Debug().
		Str("marker", string(d.marker)).
		Str("depth", d.depth.String()).
		Msg("Compiled marker pattern")
}

// Convert replaces every markup code in text with the ANSI sequence it
// denotes at the configured depth, then finalizes. Text without any code
// is returned unchanged apart from the finalize step.
func (d *Dahlia) Convert(text string) string {
	if d.depth == depth.None {
		return d.Clean(text)
	}
	converted := d.pattern.ReplaceAllStringFunc(text, func(m string) string {
		return d.resolve(d.classify(m))
	})
	return d.finalize(converted)
}

// Clean strips every markup code from text without emitting ANSI, then
// unescapes literal markers. It never appends the auto-reset: Clean
// output contains no escape sequences under any configuration.
func (d *Dahlia) Clean(text string) string {
	return d.unescape(d.pattern.ReplaceAllString(text, ""))
}

// finalize appends the full reset when auto-reset is on and the text does
// not already end with one, then unescapes. Unescaping runs strictly
// after code substitution so an escape token is never read as a live code.
func (d *Dahlia) finalize(text string) string {
	if d.autoReset && !strings.HasSuffix(text, FullReset) {
		text += FullReset
	}
	return d.unescape(text)
}

// unescape rewrites every marker+underscore token as one literal marker,
// leaving whatever follows the token untouched.
func (d *Dahlia) unescape(text string) string {
	return strings.ReplaceAll(text, d.escape, string(d.marker))
}

// Chart renders every color code and formatter as a sample string, each
// code applied to its own letter.
func (d *Dahlia) Chart() string {
	var b strings.Builder
	for _, ch := range "0123456789abcdef" {
		fmt.Fprintf(&b, "%c%c%c", d.marker, ch, ch)
	}
	for _, ch := range "hijklmno" {
		fmt.Fprintf(&b, "%cR%c%c%c", d.marker, d.marker, ch, ch)
	}
	return d.Convert(b.String())
}
