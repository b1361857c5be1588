// Package banking reads transactions exported by the bank aggregator and
// maps them onto ledger records.
package banking

import (
	"context"
	"time"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/validation"
)

// DefaultWindowDays is how far back a sync looks when no start is given.
const DefaultWindowDays = 30

// ErrNoSyncItems is returned when a sync runs with no configured item.
var ErrNoSyncItems = validation.ErrNoSyncItems

// ErrSyncDirNotFound is returned when the export directory is missing.
var ErrSyncDirNotFound = validation.ErrSyncDirNotFound

// CategorizeFunc assigns a category to a description. An empty result means
// the fallback category.
type CategorizeFunc func(description string) string

// Source fetches already-classified records for a date window.
type Source interface {
	Fetch(ctx context.Context, window Window, categorize CategorizeFunc) ([]models.Transaction, error)
}

// Window is the requested sync period. Zero sides are filled in by Range.
type Window struct {
	From time.Time
	To   time.Time
}

// Range resolves the window against now: a zero To means today and a zero
// From means defaultDays before To.
func (w Window) Range(now time.Time, defaultDays int) (dateutils.DateRange, error) {
	if defaultDays < 1 {
		defaultDays = DefaultWindowDays
	}
	to := w.To
	if to.IsZero() {
		to = now
	}
	from := w.From
	if from.IsZero() {
		from = dateutils.LastNDays(to, defaultDays).Start
	}
	return dateutils.NewDateRange(from, to)
}

// Item is one connected institution.
type Item struct {
	ID   string
	Bank string
}
