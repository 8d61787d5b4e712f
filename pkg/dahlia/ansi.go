package dahlia

import "regexp"

// ansiPattern matches the general CSI/OSC escape grammar, not just the
// sequences this package emits. Invalid escapes (a lone ESC, or a CSI
// with a non-final payload byte) are deliberately left alone.
var ansiPattern = regexp.MustCompile(`[\x{001B}\x{009B}][\[\]()#;?]*(?:(?:(?:(?:;[-a-zA-Z\d/#&.:=?%@~_]+)*|[a-zA-Z\d]+(?:;[-a-zA-Z\d/#&.:=?%@~_]*)*)?\x{0007})|(?:(?:\d{1,4}(?:;\d{0,4})*)?[\dA-PR-TZcf-nq-uy=><~]))`)

// CleanAnsi removes all ANSI escape sequences from text, whether or not
// they were produced by a converter.
func CleanAnsi(text string) string {
	return ansiPattern.ReplaceAllString(text, "")
}
