package analytics

import (
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// KPIs are the headline numbers of a period.
type KPIs struct {
	Income       decimal.Decimal // signed sum of the salary category
	RealExpenses decimal.Decimal // signed sum of real expenses, so <= 0
	PctSalary    decimal.Decimal // |real expenses| as a percentage of income
	Invested     decimal.Decimal // signed sum of the investments category
}

// ComputeKPIs derives the KPIs of ledger. PctSalary is zero when there is no
// positive income.
func ComputeKPIs(ledger []models.Transaction, real models.CategorySet) KPIs {
	k := KPIs{
		Income:   SumCategory(ledger, models.CategorySalary),
		Invested: SumCategory(ledger, models.CategoryInvestments),
	}
	for _, tx := range RealExpenses(ledger, real) {
		k.RealExpenses = k.RealExpenses.Add(tx.Amount)
	}
	if k.Income.IsPositive() {
		k.PctSalary = k.RealExpenses.Div(k.Income).Mul(hundred).Abs().Round(2)
	}
	return k
}

// SavingsSimulation projects the effect of cutting some categories.
type SavingsSimulation struct {
	Monthly      decimal.Decimal
	Yearly       decimal.Decimal
	MonthsToGoal decimal.Decimal
	HasGoal      bool // MonthsToGoal is meaningful
}

// SimulateSavings estimates what cutting cutPct percent of the selected
// categories would save. ok is false when nothing is selected or the summary
// is empty.
func SimulateSavings(byCategory []CategoryTotal, selected []string, cutPct int, goal, saved decimal.Decimal) (SavingsSimulation, bool) {
	if len(selected) == 0 || len(byCategory) == 0 {
		return SavingsSimulation{}, false
	}

	pick := models.NewCategorySet(selected...)
	potential := decimal.Zero
	for _, ct := range byCategory {
		if pick.Contains(ct.Category) {
			potential = potential.Add(ct.Total)
		}
	}

	sim := SavingsSimulation{
		Monthly: potential.Mul(decimal.NewFromInt(int64(cutPct))).Div(hundred),
	}
	sim.Yearly = sim.Monthly.Mul(decimal.NewFromInt(12))

	if goal.IsPositive() && sim.Monthly.IsPositive() {
		sim.MonthsToGoal = goal.Sub(saved).DivRound(sim.Monthly, 2)
		sim.HasGoal = true
	}
	return sim, true
}
