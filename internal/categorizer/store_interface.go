package categorizer

import "fjacquet/fintrack/internal/models"

// RuleSource supplies the rule table. store.RuleStore satisfies it.
type RuleSource interface {
	LoadRules() (models.Rules, error)
}
