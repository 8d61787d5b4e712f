/*
Package dahlia converts a compact inline markup into ANSI escape
sequences, in the style popularized by Minecraft's formatting codes.

A marker character (default '&') followed by a short code becomes an SGR
sequence at the configured color depth:

	d := dahlia.New(dahlia.WithDepth(depth.High))
	fmt.Println(d.Convert("&aHello &cWorld"))

# Codes

Color codes are the hex nibbles 0-9 a-f, addressing a fixed 16-entry
palette rendered at the active depth. A '~' between the marker and the
code applies the color to the background instead:

	&4red text    &~4red background

Explicit colors use a hex literal, 3 or 6 digits, always rendered at
24-bit precision regardless of depth:

	&#f0f;magenta    &~#ff00ff;magenta background

Formatters are h (hidden), i (inverse), j (dim), k (blink), l (bold),
m (strikethrough), n (underline) and o (italic). R resets everything;
rf, rb and rc reset the foreground, background or both colors, and r
followed by a formatter letter resets that one attribute.

A marker followed by an underscore produces one literal marker:

	&_4 literal ampersand-four

# Depths

The depth selects color precision: tty (3-bit), low (4-bit), medium
(256-color) and high (24-bit). depth.None disables color entirely, making
Convert equivalent to Clean. Detection of the terminal's supported depth
lives in pkg/depth; this package never inspects the environment.

# Stripping

Clean removes markup without emitting ANSI. CleanAnsi removes existing
ANSI escape sequences from arbitrary text, whatever produced them.
*/
package dahlia
