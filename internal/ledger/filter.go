package ledger

import (
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"
)

// Filter selects records for summaries. Empty lists match everything.
type Filter struct {
	Range      dateutils.DateRange
	Categories []string
	Sources    []string
}

// Match reports whether tx passes the filter.
func (f Filter) Match(tx models.Transaction) bool {
	if !f.Range.Contains(tx.Date) {
		return false
	}
	if len(f.Categories) > 0 && !contains(f.Categories, tx.Category) {
		return false
	}
	if len(f.Sources) > 0 && !contains(f.Sources, tx.Source) {
		return false
	}
	return true
}

// Apply returns the matching records with their Type re-derived.
func (f Filter) Apply(ledger []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(ledger))
	for _, tx := range ledger {
		if f.Match(tx) {
			out = append(out, tx.WithDerivedType())
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
