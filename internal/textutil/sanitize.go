// Package textutil normalizes free-text input before it is stored.
// It does no HTML escaping; that belongs to whatever renders the data.
package textutil

import "strings"

// Sanitize collapses runs of whitespace to single spaces, trims leading and
// trailing whitespace, and truncates the result to at most maxLen runes.
func Sanitize(s string, maxLen int) string {
	s = strings.Join(strings.Fields(s), " ")
	if maxLen < 0 {
		return s
	}
	r := []rune(s)
	if len(r) > maxLen {
		return string(r[:maxLen])
	}
	return s
}
