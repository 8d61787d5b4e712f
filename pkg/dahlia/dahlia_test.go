package dahlia_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/dahlia/pkg/dahlia"
	"github.com/arthur-debert/dahlia/pkg/depth"
)

func newConverter(d depth.Depth, autoReset bool, marker rune) *dahlia.Dahlia {
	return dahlia.New(
		dahlia.WithDepth(d),
		dahlia.WithAutoReset(autoReset),
		dahlia.WithMarker(marker),
	)
}

func TestConvertDepths(t *testing.T) {
	tests := []struct {
		name  string
		depth depth.Depth
		want  string
	}{
		{"tty", depth.TTY, "\x1b[33m\x1b[4munderlined\x1b[0m \x1b[43myellow"},
		{"low", depth.Low, "\x1b[93m\x1b[4munderlined\x1b[0m \x1b[103myellow"},
		{"medium", depth.Medium, "\x1b[38;5;227m\x1b[4munderlined\x1b[0m \x1b[48;5;227myellow"},
		{"high", depth.High, "\x1b[38;2;255;255;85m\x1b[4munderlined\x1b[0m \x1b[48;2;255;255;85myellow"},
		{"none", depth.None, "underlined yellow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newConverter(tt.depth, false, '&')
			assert.Equal(t, tt.want, d.Convert("&e&nunderlined&R &~eyellow"))
		})
	}
}

func TestConvertHighWithAutoReset(t *testing.T) {
	d := newConverter(depth.High, true, '&')

	assert.Equal(t,
		"\x1b[38;2;85;255;85mHello \x1b[38;2;255;85;85mWorld\x1b[0m",
		d.Convert("&aHello &cWorld"))
}

func TestConvertMarkers(t *testing.T) {
	// One fixed input exercised under every marker it contains.
	const input = "&ee§ee§§_4x"

	tests := []struct {
		name   string
		marker rune
		want   string
	}{
		{"ampersand", '&', "\x1b[93me§ee§§_4x"},
		{"e", 'e', "&\x1b[93m§\x1b[93m§§_4x"},
		{"section", '§', "&ee\x1b[93me§§4x"},
		{"underscore", '_', "&ee§ee§§\x1b[31mx"},
		{"four", '4', "&ee§ee§§_4x"},
		{"x", 'x', "&ee§ee§§_4x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newConverter(depth.Low, false, tt.marker)
			assert.Equal(t, tt.want, d.Convert(input))
		})
	}
}

func TestConvertMetacharacterMarkers(t *testing.T) {
	// Markers that are regex metacharacters must be quoted, not compiled.
	for _, marker := range []rune{'$', '^', '?', '(', ')', '\\', '/', '[', ']', '*', '+', '.'} {
		t.Run(string(marker), func(t *testing.T) {
			d := newConverter(depth.Low, false, marker)

			input := string(marker) + "4foo" + string(marker) + "_2bar"
			want := "\x1b[31mfoo" + string(marker) + "2bar"

			assert.Equal(t, want, d.Convert(input))
		})
	}
}

func TestConvertAutoReset(t *testing.T) {
	tests := []struct {
		name      string
		autoReset bool
		input     string
		want      string
	}{
		{"appended", true, "a", "a\x1b[0m"},
		{"already present", true, "a&R", "a\x1b[0m"},
		{"disabled", false, "a", "a"},
		{"disabled but explicit", false, "a&R", "a\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newConverter(depth.Low, tt.autoReset, '&')
			assert.Equal(t, tt.want, d.Convert(tt.input))
		})
	}
}

func TestConvertHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short form", "&#f0f;", "\x1b[38;2;255;0;255m"},
		{"long form", "&#ff00ff;", "\x1b[38;2;255;0;255m"},
		{"long without repeats", "&#f00ffa;", "\x1b[38;2;240;15;250m"},
		{"background", "&~#f0f;", "\x1b[48;2;255;0;255m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Hex literals render 24-bit even at low depth.
			d := newConverter(depth.Low, false, '&')
			assert.Equal(t, tt.want, d.Convert(tt.input))
		})
	}
}

func TestBackgroundEncoding(t *testing.T) {
	low := newConverter(depth.Low, false, '&')
	assert.Equal(t, "\x1b[36m", low.Convert("&3"))
	assert.Equal(t, "\x1b[46m", low.Convert("&~3"))

	medium := newConverter(depth.Medium, false, '&')
	assert.Equal(t, "\x1b[38;5;37m", medium.Convert("&3"))
	assert.Equal(t, "\x1b[48;5;37m", medium.Convert("&~3"))
}

func TestConvertEscapeToken(t *testing.T) {
	d := newConverter(depth.Low, false, '&')

	assert.Equal(t, "&4foo", d.Convert("&_4foo"))
	assert.Equal(t, "&R", d.Convert("&_R"))
	assert.Equal(t, "&~3", d.Convert("&_~3"))
}

func TestClean(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		marker rune
		want   string
	}{
		{"formatters and reset", "&e&nunderlined&rn yellow", '&', "underlined yellow"},
		{"marker mismatch", "&e&nunderlined&rn yellow", '!', "&e&nunderlined&rn yellow"},
		{"changed marker", "!e!nunderlined!rn yellow", '!', "underlined yellow"},
		{"escape token", "§_4 gives §4red", '§', "§4 gives red"},
		{"hex literal", "&#aaa;underlined&R", '&', "underlined"},
		{"greentext", "&2>be me", '&', ">be me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newConverter(depth.Low, false, tt.marker)
			assert.Equal(t, tt.want, d.Clean(tt.input))
		})
	}
}

func TestCleanMetacharacterMarkers(t *testing.T) {
	for _, marker := range []rune{'$', '^', '?', '(', ')', '\\', '/', '[', ']', '*', '+', '.'} {
		t.Run(string(marker), func(t *testing.T) {
			d := newConverter(depth.Low, false, marker)

			input := string(marker) + "4foo" + string(marker) + "_2bar"
			want := "foo" + string(marker) + "2bar"

			assert.Equal(t, want, d.Clean(input))
		})
	}
}

func TestCleanNeverEmitsANSI(t *testing.T) {
	inputs := []string{
		"&aplain color",
		"&~bbackground",
		"&#ff00ff;hex",
		"&lbold &R&rfresets",
		"no codes at all",
	}

	for _, d := range []depth.Depth{depth.None, depth.TTY, depth.Low, depth.Medium, depth.High} {
		// Auto-reset enabled on purpose: Clean must not append it either.
		conv := newConverter(d, true, '&')
		for _, input := range inputs {
			assert.NotContains(t, conv.Clean(input), "\x1b", "depth %s input %q", d, input)
		}
	}
}

func TestConvertNoneMatchesClean(t *testing.T) {
	d := newConverter(depth.None, true, '&')

	inputs := []string{
		"&e&nunderlined&R &~eyellow",
		"&#f0f;hex&R",
		"&_4escaped",
		"plain",
	}
	for _, input := range inputs {
		assert.Equal(t, d.Clean(input), d.Convert(input), "input %q", input)
	}
}

func TestNoMarkupPassthrough(t *testing.T) {
	const text = "nothing to see here"

	plain := newConverter(depth.High, false, '&')
	assert.Equal(t, text, plain.Convert(text))

	reset := newConverter(depth.High, true, '&')
	assert.Equal(t, text+"\x1b[0m", reset.Convert(text))
	assert.Equal(t, text+"\x1b[0m", reset.Convert(text+"\x1b[0m"))
}

func TestCleanAnsi(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"16 color", "\x1b[93m\x1b[4munderlined\x1b[0m yellow", "underlined yellow"},
		{"24-bit", "\x1b[38;2;255;255;85m\x1b[4munderlined\x1b[0m yellow", "underlined yellow"},
		{"pink", "\x1b[38;2;255;0;255mpink", "pink"},
		{"invalid escape", "\x1bxxx", "\x1bxxx"},
		{"invalid escape code", "\x1b[xm", "\x1b[xm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dahlia.CleanAnsi(tt.input))
		})
	}
}

func TestCleanAnsiInvertsConvert(t *testing.T) {
	d := newConverter(depth.High, true, '&')

	inputs := []string{
		"hmm &3&oyes&R.",
		"&e&nunderlined&R &~eyellow",
		"&#f0f;hex",
	}
	for _, input := range inputs {
		assert.Equal(t, d.Clean(input), dahlia.CleanAnsi(d.Convert(input)), "input %q", input)
	}
}

func TestSetMarker(t *testing.T) {
	d := newConverter(depth.Low, false, '&')
	assert.Equal(t, "\x1b[31mred", d.Convert("&4red"))

	d.SetMarker('!')
	assert.Equal(t, '!', d.Marker())

	// Old marker codes are inert, new marker codes are live.
	assert.Equal(t, "&4red", d.Convert("&4red"))
	assert.Equal(t, "\x1b[31mred", d.Convert("!4red"))

	// The escape token follows the marker.
	assert.Equal(t, "!4red", d.Convert("!_4red"))
	assert.Equal(t, "&_4red", d.Convert("&_4red"))
}

func TestSetDepth(t *testing.T) {
	d := newConverter(depth.Low, false, '&')
	assert.Equal(t, "\x1b[93m", d.Convert("&e"))

	d.SetDepth(depth.Medium)
	assert.Equal(t, depth.Medium, d.Depth())
	assert.Equal(t, "\x1b[38;5;227m", d.Convert("&e"))
}

func TestChart(t *testing.T) {
	d := newConverter(depth.High, false, '&')
	chart := d.Chart()

	assert.Equal(t, "0123456789abcdefhijklmno", dahlia.CleanAnsi(chart))
	assert.Contains(t, chart, "\x1b[38;2;255;85;85m")
	assert.NotContains(t, chart, "&")
}

func TestConcurrentConvert(t *testing.T) {
	// A converter with stable configuration requires no locking.
	d := newConverter(depth.High, true, '&')

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := d.Convert("&aHello &cWorld")
				if !strings.HasSuffix(got, "\x1b[0m") {
					t.Error("missing trailing reset")
					return
				}
			}
		}()
	}
	wg.Wait()
}
