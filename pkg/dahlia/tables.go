package dahlia

import "github.com/arthur-debert/dahlia/pkg/depth"

// rgb is a 24-bit color triple
type rgb struct {
	r, g, b uint8
}

// formatters maps attribute and reset code letters to their SGR
// parameters. Independent of depth and of foreground/background. The
// color reset pair is the only entry with two parameters.
var formatters = map[string][]int{
	"h": {8}, // hidden
	"i": {7}, // inverse
	"j": {2}, // dim
	"k": {5}, // blink
	"l": {1}, // bold
	"m": {9}, // strikethrough
	"n": {4}, // underline
	"o": {3}, // italic

	"R":  {0},      // full reset
	"rf": {39},     // reset foreground
	"rb": {49},     // reset background
	"rc": {39, 49}, // reset color (both)
	"rh": {28},     // reset hidden
	"ri": {27},     // reset inverse
	"rj": {22},     // reset dim
	"rk": {25},     // reset blink
	"rl": {22},     // reset bold
	"rm": {29},     // reset strikethrough
	"rn": {24},     // reset underline
	"ro": {23},     // reset italic
}

// colorsTTY maps color codes to 3-bit SGR parameters. The bright half of
// the palette folds back onto the 8 base colors.
var colorsTTY = map[byte]int{
	'0': 30, '1': 34, '2': 32, '3': 36,
	'4': 31, '5': 35, '6': 33, '7': 37,
	'8': 30, '9': 34, 'a': 32, 'b': 34,
	'c': 31, 'd': 35, 'e': 33, 'f': 37,
}

// colorsLow maps color codes to 4-bit SGR parameters, using the bright
// family (90-97) for the upper half.
var colorsLow = map[byte]int{
	'0': 30, '1': 34, '2': 32, '3': 36,
	'4': 31, '5': 35, '6': 33, '7': 37,
	'8': 90, '9': 94, 'a': 92, 'b': 96,
	'c': 91, 'd': 95, 'e': 93, 'f': 97,
}

// colorsMedium maps color codes to 256-color palette indices. Hand-curated
// to approximate the 24-bit table, not derived from it.
var colorsMedium = map[byte]int{
	'0': 0, '1': 19, '2': 34, '3': 37,
	'4': 124, '5': 127, '6': 214, '7': 248,
	'8': 240, '9': 147, 'a': 83, 'b': 87,
	'c': 203, 'd': 207, 'e': 227, 'f': 15,
}

// colorsHigh maps color codes to RGB triples
var colorsHigh = map[byte]rgb{
	'0': {0, 0, 0},
	'1': {0, 0, 170},
	'2': {0, 170, 0},
	'3': {0, 170, 170},
	'4': {170, 0, 0},
	'5': {170, 0, 170},
	'6': {255, 170, 0},
	'7': {170, 170, 170},
	'8': {85, 85, 85},
	'9': {85, 85, 255},
	'a': {85, 255, 85},
	'b': {85, 255, 255},
	'c': {255, 85, 85},
	'd': {255, 85, 255},
	'e': {255, 255, 85},
	'f': {255, 255, 255},
}

// colorTable returns the parameter table for a depth below High
func colorTable(d depth.Depth) map[byte]int {
	switch d {
	case depth.TTY:
		return colorsTTY
	case depth.Low:
		return colorsLow
	case depth.Medium:
		return colorsMedium
	default:
		return nil
	}
}
