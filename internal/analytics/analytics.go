// Package analytics computes the summaries shown by the summary command:
// real expenses by category and by day, totals per source, and KPIs.
package analytics

import (
	"sort"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the absolute spending of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Share    decimal.Decimal // fraction of the grand total, 0..1
}

// SourceTotal holds the money in and out of one source.
type SourceTotal struct {
	Source   string
	Inflows  decimal.Decimal
	Outflows decimal.Decimal // absolute value
	Balance  decimal.Decimal
}

// DailyTotal is the absolute spending of one calendar day.
type DailyTotal struct {
	Day   string
	Total decimal.Decimal
}

// RealExpenses keeps the negative records whose category is in real.
func RealExpenses(ledger []models.Transaction, real models.CategorySet) []models.Transaction {
	out := make([]models.Transaction, 0, len(ledger))
	for _, tx := range ledger {
		if tx.IsOutflow() && real.Contains(tx.Category) {
			out = append(out, tx)
		}
	}
	return out
}

// ByCategory sums expenses per category, largest first. Equal totals are
// ordered by category name.
func ByCategory(expenses []models.Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range expenses {
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	out := make([]CategoryTotal, 0, len(sums))
	grand := decimal.Zero
	for category, sum := range sums {
		total := sum.Abs()
		grand = grand.Add(total)
		out = append(out, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})

	if !grand.IsZero() {
		for i := range out {
			out[i].Share = out[i].Total.DivRound(grand, 4)
		}
	}
	return out
}

// BySource sums inflows and outflows per source, ordered by source name.
func BySource(ledger []models.Transaction) []SourceTotal {
	totals := make(map[string]*SourceTotal)
	for _, tx := range ledger {
		st, ok := totals[tx.Source]
		if !ok {
			st = &SourceTotal{Source: tx.Source}
			totals[tx.Source] = st
		}
		switch {
		case tx.Amount.IsPositive():
			st.Inflows = st.Inflows.Add(tx.Amount)
		case tx.Amount.IsNegative():
			st.Outflows = st.Outflows.Add(tx.Amount.Abs())
		}
	}

	out := make([]SourceTotal, 0, len(totals))
	for _, st := range totals {
		st.Balance = st.Inflows.Sub(st.Outflows)
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out
}

// Daily sums expenses per calendar day, oldest first.
func Daily(expenses []models.Transaction) []DailyTotal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range expenses {
		sums[tx.Day()] = sums[tx.Day()].Add(tx.Amount)
	}

	out := make([]DailyTotal, 0, len(sums))
	for day, sum := range sums {
		out = append(out, DailyTotal{Day: day, Total: sum.Abs()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Subscriptions returns the records filed under the subscriptions category.
func Subscriptions(ledger []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0)
	for _, tx := range ledger {
		if tx.Category == models.CategorySubscriptions {
			out = append(out, tx)
		}
	}
	return out
}

// SumCategory returns the signed sum of the records in category.
func SumCategory(ledger []models.Transaction, category string) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range ledger {
		if tx.Category == category {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}
