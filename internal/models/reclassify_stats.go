package models

import (
	"fjacquet/fintrack/internal/logging"
)

// ReclassifyStats tracks what a reclassification pass did to each record.
type ReclassifyStats struct {
	Total     int // records visited
	Exact     int // records whose category came from an exact rule
	Keyword   int // records whose category came from a substring rule
	Protected int // internal-movement records left alone
	Changed   int // records whose category differs from before
}

// Unchanged returns how many records kept their previous category.
func (s ReclassifyStats) Unchanged() int {
	return s.Total - s.Changed
}

// ChangeRate returns the share of changed records as a percentage.
func (s ReclassifyStats) ChangeRate() float64 {
	if s.Total == 0 {
		return 0.0
	}
	return float64(s.Changed) / float64(s.Total) * 100.0
}

// LogSummary logs a summary of the pass.
func (s ReclassifyStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}

	logger.Info("Reclassification summary",
		logging.Field{Key: logging.FieldCount, Value: s.Total},
		logging.Field{Key: "exact", Value: s.Exact},
		logging.Field{Key: "keyword", Value: s.Keyword},
		logging.Field{Key: "protected", Value: s.Protected},
		logging.Field{Key: "changed", Value: s.Changed},
		logging.Field{Key: "change_rate", Value: s.ChangeRate()},
	)
}
