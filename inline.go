package mdreport

import "regexp"

// Inline emphasis markers, matched non-greedily.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)
	codePattern   = regexp.MustCompile("`(.+?)`")
)

// stripInline removes inline emphasis markers, leaving the inner text.
// Bold runs first so doubled asterisks never feed the italic pattern.
// Unterminated markers are left as literal text.
func stripInline(s string) string {
	s = boldPattern.ReplaceAllString(s, "$1")
	s = italicPattern.ReplaceAllString(s, "$1")
	s = codePattern.ReplaceAllString(s, "$1")
	return s
}
