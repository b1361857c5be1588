package ledger

import (
	"testing"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	ledger := []models.Transaction{
		rec(1, "-10", "Lazer", "Nubank", "a"),
		rec(5, "-20", "Alimentação", "Santander", "b"),
		rec(9, "3000", "Salário", "Santander", "c"),
	}
	ledger[2].Type = models.TypeOutflow

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{"empty filter matches all", Filter{}, []string{"a", "b", "c"}},
		{"inclusive range", Filter{Range: dateutils.DateRange{Start: d(5), End: d(9)}}, []string{"b", "c"}},
		{"categories", Filter{Categories: []string{"Lazer", "Salário"}}, []string{"a", "c"}},
		{"sources", Filter{Sources: []string{"Santander"}}, []string{"b", "c"}},
		{"combined", Filter{Range: dateutils.DateRange{End: d(5)}, Sources: []string{"Santander"}}, []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.filter.Apply(ledger)
			ids := make([]string, 0, len(out))
			for _, tx := range out {
				ids = append(ids, tx.ExternalID)
				assert.True(t, tx.HasConsistentType())
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
