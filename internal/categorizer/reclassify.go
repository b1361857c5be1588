package categorizer

import (
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/textutils"
)

// Reclassify recomputes categories across a ledger and returns a new slice;
// ledger itself is not modified. Per record:
//
//  1. an exact rule always applies, even to protected categories
//  2. otherwise a substring rule applies unless the current category is in skip
//  3. otherwise the record is kept as is
//
// skip holds normalized category names. A nil or empty skip means
// models.DefaultReclassifySkip.
func Reclassify(ledger []models.Transaction, rules models.Rules, skip models.CategorySet) ([]models.Transaction, models.ReclassifyStats) {
	return ReclassifyWithIndex(ledger, NewRuleIndex(rules), skip)
}

// ReclassifyWithIndex is Reclassify over an already compiled rule table.
func ReclassifyWithIndex(ledger []models.Transaction, ix *RuleIndex, skip models.CategorySet) ([]models.Transaction, models.ReclassifyStats) {
	if skip.Len() == 0 {
		skip = models.DefaultReclassifySkip
	}
	if ix == nil {
		ix = NewRuleIndex(nil)
	}

	out := make([]models.Transaction, len(ledger))
	stats := models.ReclassifyStats{Total: len(ledger)}

	for i, tx := range ledger {
		out[i] = tx

		desc := textutils.Normalize(tx.Description)
		if category, _, ok := ix.matchExactNormalized(desc); ok {
			stats.Exact++
			out[i].Category = category
		} else if skip.Contains(textutils.Normalize(tx.Category)) {
			stats.Protected++
			continue
		} else if category, _, ok := ix.matchNormalized(desc); ok {
			stats.Keyword++
			out[i].Category = category
		}

		if out[i].Category != tx.Category {
			stats.Changed++
		}
	}
	return out, stats
}
