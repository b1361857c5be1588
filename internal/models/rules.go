package models

import (
	"sort"
	"strings"
)

// Rules maps a keyword to the category it assigns. Keys are unique; their
// order carries no meaning.
type Rules map[string]string

// Clone returns an independent copy of r.
func (r Rules) Clone() Rules {
	out := make(Rules, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Keywords returns the keywords in sorted order.
func (r Rules) Keywords() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RuleKey canonicalizes a keyword the way the rule administration commands
// store it: lowercased and trimmed. Accents are kept as authored.
func RuleKey(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}
