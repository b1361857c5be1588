package categorizer

import (
	"testing"
	"time"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reclassifyFixture() []models.Transaction {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return []models.Transaction{
		models.NewTransaction(day, "UBER TRIP 123", decimal.NewFromInt(-20), models.CategoryOther, "Nubank", ""),
		models.NewTransaction(day, "Transferencia Maria", decimal.NewFromInt(-100), models.CategoryPersonalTransfer, "Nubank", ""),
		models.NewTransaction(day, "PIX JOAO", decimal.NewFromInt(-50), models.CategoryPersonalTransfer, "Nubank", ""),
	}
}

func reclassifyRules() models.Rules {
	return models.Rules{
		"uber":          "Transporte",
		"transferencia": "Outros gastos",
		"pix joao":      "Presente",
	}
}

func TestReclassify(t *testing.T) {
	ledger := reclassifyFixture()

	out, stats := Reclassify(ledger, reclassifyRules(), nil)
	require.Len(t, out, 3)

	assert.Equal(t, "Transporte", out[0].Category)
	assert.Equal(t, models.CategoryPersonalTransfer, out[1].Category, "protected category kept")
	assert.Equal(t, "Presente", out[2].Category, "exact rule overrides protection")

	assert.Equal(t, models.ReclassifyStats{Total: 3, Exact: 1, Keyword: 1, Protected: 1, Changed: 2}, stats)

	assert.Equal(t, models.CategoryOther, ledger[0].Category, "input untouched")
	assert.Equal(t, models.CategoryPersonalTransfer, ledger[2].Category)
}

func TestReclassify_AccountTransferProtected(t *testing.T) {
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	ledger := []models.Transaction{
		models.NewTransaction(day, "Transferencia conta Santander", decimal.NewFromInt(-1500), models.CategoryAccountTransfer, "Nubank", ""),
		models.NewTransaction(day, "TED CONTA INTER", decimal.NewFromInt(-200), models.CategoryAccountTransfer, "Nubank", ""),
	}
	rules := models.Rules{
		"transferencia":   "Outros gastos",
		"ted conta inter": "Investimentos",
	}

	out, stats := Reclassify(ledger, rules, nil)
	assert.Equal(t, "Transferência Entre Contas", out[0].Category, "substring rule cannot touch a protected record")
	assert.Equal(t, "Investimentos", out[1].Category, "exact rule still applies")
	assert.Equal(t, models.ReclassifyStats{Total: 2, Exact: 1, Protected: 1, Changed: 1}, stats)
}

func TestReclassify_SecondPassChangesNothing(t *testing.T) {
	first, _ := Reclassify(reclassifyFixture(), reclassifyRules(), nil)
	second, stats := Reclassify(first, reclassifyRules(), nil)

	assert.Equal(t, first, second)
	assert.Equal(t, 0, stats.Changed)
}

func TestReclassify_CustomSkip(t *testing.T) {
	skip := models.NewNormalizedCategorySet(models.CategoryOther)
	out, stats := Reclassify(reclassifyFixture(), reclassifyRules(), skip)

	assert.Equal(t, models.CategoryOther, out[0].Category)
	assert.Equal(t, "Outros gastos", out[1].Category)
	assert.Equal(t, "Presente", out[2].Category)
	assert.Equal(t, 1, stats.Protected)
}

func TestReclassify_NoMatchKeepsCategory(t *testing.T) {
	ledger := reclassifyFixture()[:1]
	ledger[0].Category = "Lazer"

	out, stats := Reclassify(ledger, models.Rules{"cinema": "Lazer"}, nil)
	assert.Equal(t, "Lazer", out[0].Category)
	assert.Equal(t, 0, stats.Changed)
}

func TestReclassify_Boundaries(t *testing.T) {
	out, stats := Reclassify(nil, reclassifyRules(), nil)
	assert.Empty(t, out)
	assert.Equal(t, 0, stats.Total)

	ledger := reclassifyFixture()
	out, stats = Reclassify(ledger, models.Rules{}, nil)
	assert.Equal(t, ledger, out)
	assert.Equal(t, 0, stats.Changed)

	out, _ = ReclassifyWithIndex(ledger, nil, nil)
	assert.Equal(t, ledger, out)
}
