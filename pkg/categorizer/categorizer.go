// Package categorizer is the public entry point to the rule-based
// classifier and the ledger reconciliation core.
//
// Typical use:
//
//	rules := categorizer.Rules{"ifood": "Alimentação", "uber": "Transporte"}
//	c := categorizer.New(rules)
//	category, ok := c.Classify("IFOOD *Restaurante")
package categorizer

import (
	internal "fjacquet/fintrack/internal/categorizer"
	"fjacquet/fintrack/internal/ledger"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/textutils"
)

type (
	// Rules maps a keyword to the category it assigns.
	Rules = models.Rules
	// Transaction is a single ledger record.
	Transaction = models.Transaction
	// CategorySet is a set of category names.
	CategorySet = models.CategorySet
	// ReclassifyStats reports what a reclassification pass did.
	ReclassifyStats = models.ReclassifyStats
)

// Categorizer classifies descriptions against a fixed rule table. It is
// safe for concurrent use.
type Categorizer struct {
	index *internal.RuleIndex
}

// New compiles rules into a Categorizer.
func New(rules Rules) *Categorizer {
	return &Categorizer{index: internal.NewRuleIndex(rules)}
}

// Classify returns the category of the longest keyword contained in
// description.
func (c *Categorizer) Classify(description string) (string, bool) {
	category, _, ok := c.index.Match(description)
	return category, ok
}

// ClassifyExact returns the category of the keyword equal to description.
func (c *Categorizer) ClassifyExact(description string) (string, bool) {
	category, _, ok := c.index.MatchExact(description)
	return category, ok
}

// Reclassify reapplies the rules to ledger. Categories in skip (nil means
// the built-in internal-movement set) only change through an exact rule.
// skip may hold names as authored or normalized; they are compared after
// normalization.
func (c *Categorizer) Reclassify(l []Transaction, skip CategorySet) ([]Transaction, ReclassifyStats) {
	if skip != nil {
		skip = models.NewNormalizedCategorySet(skip.Names()...)
	}
	return internal.ReclassifyWithIndex(l, c.index, skip)
}

// Normalize returns the comparison form of s used by the classifier.
func Normalize(s string) string {
	return textutils.Normalize(s)
}

// Deduplicate drops later copies of cross-bank movements. A nil internal
// set means the built-in one.
func Deduplicate(l []Transaction, internalSet CategorySet) []Transaction {
	if internalSet == nil {
		internalSet = models.CrossBankCategories
	}
	return ledger.Deduplicate(l, internalSet)
}

// MergeSynced appends the records of incoming whose external id is new and
// returns the merged ledger with the number of records accepted.
func MergeSynced(l, incoming []Transaction, internalSet CategorySet) ([]Transaction, int) {
	if internalSet == nil {
		internalSet = models.CrossBankCategories
	}
	return ledger.MergeSynced(l, incoming, internalSet)
}
