// Package textutil normalizes display names for loose matching.
package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName lowercases a display name and strips every run of
// whitespace, so "My Board " and "myboard" compare equal.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.TrimSpace(name)
	return whitespaceRegex.ReplaceAllString(name, "")
}

// MatchName reports whether the normalized name contains any of the
// queries, themselves normalized.
func MatchName(name string, queries []string) bool {
	name = NormalizeName(name)
	for _, q := range queries {
		if q == "" {
			continue
		}
		if strings.Contains(name, NormalizeName(q)) {
			return true
		}
	}
	return false
}
