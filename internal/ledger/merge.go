package ledger

import (
	"fjacquet/fintrack/internal/models"
)

// MergeSynced appends the incoming records whose external id is not yet in
// the ledger, deduplicates internal movements and sorts by date. It returns
// the new ledger and how many incoming records were accepted; records the
// deduplicator drops afterwards still count as accepted.
//
// An incoming record without an external id cannot be matched and is always
// accepted. Within one batch only the first record carrying a given id is.
//
// When nothing is accepted the original ledger is returned as is.
func MergeSynced(ledger, incoming []models.Transaction, internal models.CategorySet) ([]models.Transaction, int) {
	if len(incoming) == 0 {
		return ledger, 0
	}

	known := make(map[string]struct{}, len(ledger))
	for _, tx := range ledger {
		if tx.HasExternalID() {
			known[tx.ExternalID] = struct{}{}
		}
	}

	fresh := make([]models.Transaction, 0, len(incoming))
	for _, tx := range incoming {
		if tx.HasExternalID() {
			if _, ok := known[tx.ExternalID]; ok {
				continue
			}
			known[tx.ExternalID] = struct{}{}
		}
		fresh = append(fresh, tx)
	}
	if len(fresh) == 0 {
		return ledger, 0
	}

	combined := make([]models.Transaction, 0, len(ledger)+len(fresh))
	combined = append(combined, ledger...)
	combined = append(combined, fresh...)

	return SortByDate(Deduplicate(combined, internal)), len(fresh)
}
