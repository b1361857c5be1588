package analytics

import (
	"testing"
	"time"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(day int, amount, category, source string) models.Transaction {
	return models.NewTransaction(time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC), category, decimal.RequireFromString(amount), category, source, "")
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleLedger() []models.Transaction {
	return []models.Transaction{
		tx(1, "3000", models.CategorySalary, "Santander"),
		tx(1, "-100", "Alimentação", "Nubank"),
		tx(2, "-50", "Alimentação", "Santander"),
		tx(2, "-150", "Lazer", "Nubank"),
		tx(3, "-500", models.CategoryInvestments, "Santander"),
		tx(3, "20", "Alimentação", "Nubank"),
		tx(4, "-39.90", models.CategorySubscriptions, "Nubank"),
	}
}

var realSet = models.NewCategorySet("Alimentação", "Lazer", models.CategorySubscriptions)

func TestRealExpenses(t *testing.T) {
	out := RealExpenses(sampleLedger(), realSet)
	require.Len(t, out, 4)
	for _, r := range out {
		assert.True(t, r.IsOutflow())
	}
}

func TestByCategory(t *testing.T) {
	out := ByCategory(RealExpenses(sampleLedger(), realSet))
	require.Len(t, out, 3)

	assert.Equal(t, "Alimentação", out[0].Category, "equal totals ordered by name")
	assert.True(t, out[0].Total.Equal(dec("150")))
	assert.Equal(t, "Lazer", out[1].Category)
	assert.True(t, out[1].Total.Equal(dec("150")))
	assert.Equal(t, models.CategorySubscriptions, out[2].Category)

	sum := decimal.Zero
	for _, ct := range out {
		sum = sum.Add(ct.Share)
	}
	assert.InDelta(t, 1.0, sum.InexactFloat64(), 0.001)
}

func TestByCategory_Empty(t *testing.T) {
	assert.Empty(t, ByCategory(nil))
}

func TestBySource(t *testing.T) {
	out := BySource(sampleLedger())
	require.Len(t, out, 2)

	assert.Equal(t, "Nubank", out[0].Source)
	assert.True(t, out[0].Inflows.Equal(dec("20")))
	assert.True(t, out[0].Outflows.Equal(dec("289.90")))
	assert.True(t, out[0].Balance.Equal(dec("-269.90")))

	assert.Equal(t, "Santander", out[1].Source)
	assert.True(t, out[1].Balance.Equal(dec("2450")))
}

func TestDaily(t *testing.T) {
	out := Daily(RealExpenses(sampleLedger(), realSet))
	require.Len(t, out, 3)
	assert.Equal(t, "2024-05-01", out[0].Day)
	assert.True(t, out[1].Total.Equal(dec("200")))
	assert.Equal(t, "2024-05-04", out[2].Day)
}

func TestSubscriptions(t *testing.T) {
	out := Subscriptions(sampleLedger())
	require.Len(t, out, 1)
	assert.Equal(t, models.CategorySubscriptions, out[0].Category)
}
