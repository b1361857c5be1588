package categorizer

import (
	"context"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
)

// ClassifyExact returns the category whose keyword equals description after
// normalization. When several keywords normalize to the same text the
// alphabetically first one wins.
func ClassifyExact(description string, rules models.Rules) (string, bool) {
	category, _, ok := NewRuleIndex(rules).MatchExact(description)
	return category, ok
}

// ExactStrategy categorizes only descriptions that equal a rule keyword.
type ExactStrategy struct {
	index  *RuleIndex
	logger logging.Logger
}

// NewExactStrategy creates a new ExactStrategy instance.
func NewExactStrategy(index *RuleIndex, logger logging.Logger) *ExactStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &ExactStrategy{index: index, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *ExactStrategy) Name() string {
	return "Exact"
}

// Categorize attempts to categorize a description using an exact rule.
func (s *ExactStrategy) Categorize(ctx context.Context, description string) (Match, bool, error) {
	if err := ctx.Err(); err != nil {
		return Match{}, false, err
	}
	category, keyword, ok := s.index.MatchExact(description)
	if !ok {
		return Match{}, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: logging.FieldKeyword, Value: keyword},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Description categorized using exact rule")

	return Match{Category: category, Keyword: keyword, Strategy: s.Name()}, true, nil
}
