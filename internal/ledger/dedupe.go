// Package ledger holds the pure operations over an in-memory ledger: the
// cross-source deduplicator, the sync merge and the manual edits. Functions
// here never modify their input slice and never log.
package ledger

import (
	"fjacquet/fintrack/internal/models"
)

type dedupKey struct {
	day    string
	amount string // |amount| in canonical decimal form
}

func keyOf(tx models.Transaction) dedupKey {
	return dedupKey{day: tx.Day(), amount: tx.AbsAmount().String()}
}

// Deduplicate drops later copies of internal movements. A record whose
// category is in internal (compared verbatim) is dropped when an earlier
// record of the same set shares its calendar day and absolute amount.
// Records of any other category are always kept, and order is preserved.
func Deduplicate(ledger []models.Transaction, internal models.CategorySet) []models.Transaction {
	out := make([]models.Transaction, 0, len(ledger))
	seen := make(map[dedupKey]struct{})

	for _, tx := range ledger {
		if !internal.Contains(tx.Category) {
			out = append(out, tx)
			continue
		}
		k := keyOf(tx)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, tx)
	}
	return out
}
