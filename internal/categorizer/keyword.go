package categorizer

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/textutils"
)

type compiledRule struct {
	keyword    string // as authored
	normalized string
	length     int // runes in normalized
	category   string
}

// RuleIndex is a rule table compiled for repeated classification: keywords
// normalized once and ordered longest first. A RuleIndex is immutable and
// safe for concurrent use.
type RuleIndex struct {
	ordered []compiledRule
	exact   map[string]compiledRule
}

// NewRuleIndex compiles rules. Keywords that normalize to the empty string
// are ignored since they would match every description.
func NewRuleIndex(rules models.Rules) *RuleIndex {
	ix := &RuleIndex{
		ordered: make([]compiledRule, 0, len(rules)),
		exact:   make(map[string]compiledRule, len(rules)),
	}
	for keyword, category := range rules {
		n := textutils.Normalize(keyword)
		if n == "" {
			continue
		}
		r := compiledRule{keyword: keyword, normalized: n, length: utf8.RuneCountInString(n), category: category}
		ix.ordered = append(ix.ordered, r)

		if prev, ok := ix.exact[n]; !ok || keyword < prev.keyword {
			ix.exact[n] = r
		}
	}

	sort.Slice(ix.ordered, func(i, j int) bool {
		a, b := ix.ordered[i], ix.ordered[j]
		if a.length != b.length {
			return a.length > b.length
		}
		if a.normalized != b.normalized {
			return a.normalized < b.normalized
		}
		return a.keyword < b.keyword
	})
	return ix
}

// Len returns the number of usable rules.
func (ix *RuleIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.ordered)
}

// Match returns the category and keyword of the longest keyword contained
// in description.
func (ix *RuleIndex) Match(description string) (category, keyword string, ok bool) {
	if ix.Len() == 0 {
		return "", "", false
	}
	return ix.matchNormalized(textutils.Normalize(description))
}

func (ix *RuleIndex) matchNormalized(desc string) (string, string, bool) {
	if desc == "" {
		return "", "", false
	}
	for _, r := range ix.ordered {
		if strings.Contains(desc, r.normalized) {
			return r.category, r.keyword, true
		}
	}
	return "", "", false
}

// MatchExact returns the category of the keyword equal to description once
// both are normalized.
func (ix *RuleIndex) MatchExact(description string) (category, keyword string, ok bool) {
	if ix.Len() == 0 {
		return "", "", false
	}
	return ix.matchExactNormalized(textutils.Normalize(description))
}

func (ix *RuleIndex) matchExactNormalized(desc string) (string, string, bool) {
	r, ok := ix.exact[desc]
	if !ok {
		return "", "", false
	}
	return r.category, r.keyword, true
}

// Classify returns the category of the longest rule keyword found in
// description, comparing normalized text. Length counts characters, not
// bytes. Ties in length go to the alphabetically first keyword.
func Classify(description string, rules models.Rules) (string, bool) {
	category, _, ok := NewRuleIndex(rules).Match(description)
	return category, ok
}

// KeywordStrategy categorizes by substring match, longest keyword first.
type KeywordStrategy struct {
	index  *RuleIndex
	logger logging.Logger
}

// NewKeywordStrategy creates a new KeywordStrategy instance.
func NewKeywordStrategy(index *RuleIndex, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordStrategy{index: index, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize attempts to categorize a description using keyword matching.
func (s *KeywordStrategy) Categorize(ctx context.Context, description string) (Match, bool, error) {
	if err := ctx.Err(); err != nil {
		return Match{}, false, err
	}
	category, keyword, ok := s.index.Match(description)
	if !ok {
		return Match{}, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: logging.FieldKeyword, Value: keyword},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Description categorized using keyword matching")

	return Match{Category: category, Keyword: keyword, Strategy: s.Name()}, true, nil
}
