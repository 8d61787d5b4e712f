package dahlia

import "regexp"

// Capture group indices in the compiled pattern
const (
	groupBackground = 1
	groupColor      = 2
	groupHex        = 3
	groupFormat     = 4
)

// codeGrammar recognizes every valid code form after the marker: an
// optional background flag followed by either a short color code or a hex
// literal, or a single attribute/reset code. Attribute letters are
// disjoint from the color nibble alphabet, so no match is ambiguous
// between the two branches.
const codeGrammar = `(?:(~?)(?:([0-9a-f])|#([0-9a-f]{3}|[0-9a-f]{6});)|([h-oR]|r[bcfh-o]))`

// compilePattern builds the matcher for a marker along with the literal
// escape token (marker followed by an underscore). The marker is quoted
// so regex metacharacters like '[' or '*' work as markers. The grammar
// has no nested quantifiers, so scanning stays linear in input length.
func compilePattern(marker rune) (*regexp.Regexp, string) {
	quoted := regexp.QuoteMeta(string(marker))
	return regexp.MustCompile(quoted + codeGrammar), string(marker) + "_"
}
