package analytics

import (
	"testing"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeKPIs(t *testing.T) {
	k := ComputeKPIs(sampleLedger(), realSet)

	assert.True(t, k.Income.Equal(dec("3000")))
	assert.True(t, k.RealExpenses.Equal(dec("-339.90")))
	assert.True(t, k.Invested.Equal(dec("-500")))
	assert.True(t, k.PctSalary.Equal(dec("11.33")), k.PctSalary.String())
}

func TestComputeKPIs_NoIncome(t *testing.T) {
	k := ComputeKPIs([]models.Transaction{tx(1, "-10", "Lazer", "Nubank")}, realSet)
	assert.True(t, k.PctSalary.IsZero())
	assert.True(t, k.RealExpenses.Equal(dec("-10")))
}

func TestSimulateSavings(t *testing.T) {
	summary := []CategoryTotal{
		{Category: "Lazer", Total: dec("400")},
		{Category: "Alimentação", Total: dec("600")},
	}

	sim, ok := SimulateSavings(summary, []string{"Lazer"}, 25, dec("1000"), dec("200"))
	require.True(t, ok)
	assert.True(t, sim.Monthly.Equal(dec("100")))
	assert.True(t, sim.Yearly.Equal(dec("1200")))
	require.True(t, sim.HasGoal)
	assert.True(t, sim.MonthsToGoal.Equal(dec("8")))

	sim, ok = SimulateSavings(summary, []string{"Lazer"}, 10, decimal.Zero, decimal.Zero)
	require.True(t, ok)
	assert.False(t, sim.HasGoal)

	_, ok = SimulateSavings(summary, nil, 10, dec("1"), decimal.Zero)
	assert.False(t, ok)
	_, ok = SimulateSavings(nil, []string{"Lazer"}, 10, dec("1"), decimal.Zero)
	assert.False(t, ok)
}
