package normalize

import (
	"regexp"
	"strings"

	"github.com/aberthier/kinerecon/internal/model"
)

var multiSpace = regexp.MustCompile(`\s+`)

// NormalizeCode trims whitespace, uppercases, and collapses internal
// whitespace runs to a single space. Returns "" if the input is empty or
// all whitespace.
func NormalizeCode(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	return multiSpace.ReplaceAllString(s, " ")
}

// Decompose maps a free-text billing cell to the atomic codes it mentions.
// Every marker in AllBillingCodes is tested independently against the
// uppercased text, so a cell like "K-1 + RECOND" yields both codes.
// Unrecognized text yields an empty slice, never an error.
func Decompose(s string) []string {
	text := strings.ToUpper(s)
	var codes []string
	for _, bc := range model.AllBillingCodes {
		for _, marker := range bc.Markers {
			if strings.Contains(text, marker) {
				codes = append(codes, NormalizeCode(bc.Name))
				break
			}
		}
	}
	return codes
}
