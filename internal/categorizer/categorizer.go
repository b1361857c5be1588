// Package categorizer assigns spending categories to transaction descriptions
// from a keyword rule table:
// 1. Exact rules, where the whole normalized description equals a keyword
// 2. Substring rules, where the longest contained keyword wins
package categorizer

import (
	"context"
	"fmt"
	"sync"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
)

// Categorizer chains the exact and keyword strategies over rules loaded from
// a RuleSource. Rules can be reloaded after they are edited.
type Categorizer struct {
	source   RuleSource
	logger   logging.Logger
	fallback string

	mu         sync.RWMutex
	index      *RuleIndex
	strategies []CategorizationStrategy
}

// NewCategorizer creates a Categorizer and loads its rules. A load failure is
// logged and leaves the categorizer with an empty rule table, so every
// description falls back.
func NewCategorizer(source RuleSource, fallback string, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if fallback == "" {
		fallback = models.CategoryOther
	}

	c := &Categorizer{
		source:   source,
		logger:   logger,
		fallback: fallback,
	}
	c.install(models.Rules{})

	if err := c.ReloadRules(); err != nil {
		c.logger.WithError(err).Warn("Failed to load rules")
	}
	return c
}

// ReloadRules reloads the rule table from the source.
func (c *Categorizer) ReloadRules() error {
	if c.source == nil {
		return nil
	}
	rules, err := c.source.LoadRules()
	if err != nil {
		return fmt.Errorf("error loading rules: %w", err)
	}
	c.install(rules)
	c.logger.WithField(logging.FieldCount, len(rules)).Debug("Loaded rules")
	return nil
}

func (c *Categorizer) install(rules models.Rules) {
	ix := NewRuleIndex(rules)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = ix
	c.strategies = []CategorizationStrategy{
		NewExactStrategy(ix, c.logger),
		NewKeywordStrategy(ix, c.logger),
	}
}

// Index returns the compiled rule table currently in use.
func (c *Categorizer) Index() *RuleIndex {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index
}

// Fallback returns the category used when nothing matches.
func (c *Categorizer) Fallback() string {
	return c.fallback
}

// Categorize runs the strategies in order and returns the first match.
func (c *Categorizer) Categorize(ctx context.Context, description string) (Match, bool, error) {
	c.mu.RLock()
	strategies := c.strategies
	c.mu.RUnlock()

	for _, s := range strategies {
		m, ok, err := s.Categorize(ctx, description)
		if err != nil {
			return Match{}, false, fmt.Errorf("strategy %s: %w", s.Name(), err)
		}
		if ok {
			return m, true, nil
		}
	}
	return Match{}, false, nil
}

// Classify matches description against the current rules. With exact set,
// only exact rules are considered; otherwise only substring rules are.
func (c *Categorizer) Classify(description string, exact bool) (string, bool) {
	ix := c.Index()
	if exact {
		category, _, ok := ix.MatchExact(description)
		return category, ok
	}
	category, _, ok := ix.Match(description)
	return category, ok
}

// CategorizeOrDefault returns the first matching category or the fallback.
func (c *Categorizer) CategorizeOrDefault(description string) string {
	m, ok, err := c.Categorize(context.Background(), description)
	if err != nil || !ok {
		return c.fallback
	}
	return m.Category
}
