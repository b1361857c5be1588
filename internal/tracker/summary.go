package tracker

import (
	"context"
	"io"
	"strconv"

	"fjacquet/fintrack/internal/analytics"
	"fjacquet/fintrack/internal/ledger"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"
	"fjacquet/fintrack/internal/validation"

	"github.com/shopspring/decimal"
)

// Summary gathers the figures of a filtered ledger.
type Summary struct {
	Count         int
	ByCategory    []analytics.CategoryTotal
	BySource      []analytics.SourceTotal
	Daily         []analytics.DailyTotal
	KPIs          analytics.KPIs
	Subscriptions []models.Transaction
}

func (s *Service) filtered(ctx context.Context, f ledger.Filter) ([]models.Transaction, models.CategorySet, error) {
	l, err := s.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	realCats, err := s.RealExpenseCategories()
	if err != nil {
		return nil, nil, err
	}
	return f.Apply(l), realCats, nil
}

// Summary computes the summary of the records selected by f.
func (s *Service) Summary(ctx context.Context, f ledger.Filter) (Summary, error) {
	l, realCats, err := s.filtered(ctx, f)
	if err != nil {
		return Summary{}, err
	}

	expenses := analytics.RealExpenses(l, realCats)
	return Summary{
		Count:         len(l),
		ByCategory:    analytics.ByCategory(expenses),
		BySource:      analytics.BySource(l),
		Daily:         analytics.Daily(expenses),
		KPIs:          analytics.ComputeKPIs(l, realCats),
		Subscriptions: analytics.Subscriptions(l),
	}, nil
}

// KPIs computes the KPIs of the records selected by f.
func (s *Service) KPIs(ctx context.Context, f ledger.Filter) (analytics.KPIs, error) {
	l, realCats, err := s.filtered(ctx, f)
	if err != nil {
		return analytics.KPIs{}, err
	}
	return analytics.ComputeKPIs(l, realCats), nil
}

// SimulateSavings projects cutting cutPct percent of the real spending of
// the selected categories within f. ok is false when there is nothing to
// simulate.
func (s *Service) SimulateSavings(ctx context.Context, f ledger.Filter, selected []string, cutPct int, goal, saved decimal.Decimal) (sim analytics.SavingsSimulation, ok bool, err error) {
	if cutPct < 0 || cutPct > 100 {
		return sim, false, &validation.ValidationError{Field: "cut_pct", Value: strconv.Itoa(cutPct), Reason: "must be between 0 and 100"}
	}
	l, realCats, err := s.filtered(ctx, f)
	if err != nil {
		return sim, false, err
	}
	byCategory := analytics.ByCategory(analytics.RealExpenses(l, realCats))
	sim, ok = analytics.SimulateSavings(byCategory, selected, cutPct, goal, saved)
	return sim, ok, nil
}

// Export writes the records selected by f as CSV, without external ids.
func (s *Service) Export(ctx context.Context, w io.Writer, f ledger.Filter, delimiter rune) error {
	l, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return store.ExportCSV(w, f.Apply(l), delimiter)
}
