package ledger

import (
	"sort"
	"strings"
	"time"

	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/validation"

	"github.com/shopspring/decimal"
)

// ManualEntry is a record typed in by the user.
type ManualEntry struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Direction   models.TransactionType
	Category    string
	Source      string
}

// ClassifyFunc returns the category for a description, if any rule matches.
type ClassifyFunc func(description string) (string, bool)

// AddManual appends a manual entry and returns the date-sorted ledger along
// with the stored record.
//
// An empty category, or one equal to fallback, is replaced by the classify
// result when there is one. An Inflow keeps the amount as given; any other
// direction stores -|amount|.
func AddManual(ledger []models.Transaction, entry ManualEntry, fallback string, classify ClassifyFunc) ([]models.Transaction, models.Transaction) {
	category := strings.TrimSpace(entry.Category)
	if category == "" || category == fallback {
		if classify != nil {
			if c, ok := classify(entry.Description); ok {
				category = c
			}
		}
		if category == "" {
			category = fallback
		}
	}

	amount := entry.Amount
	if entry.Direction != models.TypeInflow {
		amount = amount.Abs().Neg()
	}

	tx := models.NewTransaction(entry.Date, entry.Description, amount, category, entry.Source, "")

	out := make([]models.Transaction, 0, len(ledger)+1)
	out = append(out, ledger...)
	out = append(out, tx)
	return SortByDate(out), tx
}

// Delete removes the record at index.
func Delete(ledger []models.Transaction, index int) ([]models.Transaction, error) {
	if err := validation.CheckIndex(index, len(ledger)); err != nil {
		return nil, err
	}
	out := make([]models.Transaction, 0, len(ledger)-1)
	out = append(out, ledger[:index]...)
	out = append(out, ledger[index+1:]...)
	return out, nil
}

// UpdateCategory sets the category of the record at index.
func UpdateCategory(ledger []models.Transaction, index int, category string) ([]models.Transaction, error) {
	if err := validation.CheckIndex(index, len(ledger)); err != nil {
		return nil, err
	}
	out := make([]models.Transaction, len(ledger))
	copy(out, ledger)
	out[index].Category = category
	return out, nil
}

// SortByDate returns a copy stable-sorted by date, oldest first.
func SortByDate(ledger []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(ledger))
	copy(out, ledger)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// RestoreTypes returns a copy with every Type re-derived from its amount.
func RestoreTypes(ledger []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(ledger))
	for i, tx := range ledger {
		out[i] = tx.WithDerivedType()
	}
	return out
}
