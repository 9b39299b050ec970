package markdown

import "regexp"

var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`__(.+?)__`)
)

// RewriteEmphasis replaces **bold** with <b> and __italic__ with <em>.
// Bold runs first. Matching is leftmost and non-greedy, and unmatched
// delimiters are left as they are.
func RewriteEmphasis(text string) string {
	text = boldPattern.ReplaceAllString(text, "<b>$1</b>")
	return italicPattern.ReplaceAllString(text, "<em>$1</em>")
}
