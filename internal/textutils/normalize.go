// Package textutils provides text canonicalization used for rule matching.
package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical comparison form of s: lowercased, with
// diacritics removed (NFD decomposition, combining marks dropped) and
// whitespace runs collapsed to a single space with no leading or trailing
// space. It never fails; an empty input yields an empty output.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	folded, _, err := transform.String(stripMarks(), strings.ToLower(s))
	if err != nil {
		// transform only errors on malformed chains; fall back to lowercase
		folded = strings.ToLower(s)
	}

	return strings.Join(strings.Fields(folded), " ")
}

// stripMarks builds a fresh transformer per call: transform.Chain holds
// state and is not safe for concurrent use.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
}
