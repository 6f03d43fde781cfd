package normalize

import (
	"regexp"
	"strings"
)

// Leading single-letter parenthesized prefix, e.g. "(A) DUPONT JEAN".
var parenPrefix = regexp.MustCompile(`^\([A-Z]\)\s*`)

// NormalizeName trims, uppercases, strips a leading "(X)" annotation,
// removes commas, and collapses whitespace runs to a single space.
// Returns "" if the input is empty or all whitespace.
func NormalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	s = parenPrefix.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}
