// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"time"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/ledger"

	"github.com/spf13/cobra"
)

// FilterFlags holds the record selection flags shared by read commands.
type FilterFlags struct {
	From       string
	To         string
	Month      string
	Categories []string
	Sources    []string
}

// AddFilterFlags registers the selection flags on cmd.
func AddFilterFlags(cmd *cobra.Command, f *FilterFlags) {
	cmd.Flags().StringVar(&f.From, "from", "", "First day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.To, "to", "", "Last day to include (YYYY-MM-DD)")
	cmd.Flags().StringSliceVarP(&f.Categories, "category", "c", nil, "Only include these categories")
	cmd.Flags().StringSliceVarP(&f.Sources, "source", "s", nil, "Only include these sources")
}

// AddMonthFlag registers --month, a shorthand for a whole calendar month.
func AddMonthFlag(cmd *cobra.Command, f *FilterFlags) {
	cmd.Flags().StringVarP(&f.Month, "month", "m", "", "Only include this month (YYYY-MM)")
}

// Filter converts the flag values to a ledger filter.
func (f FilterFlags) Filter() (ledger.Filter, error) {
	if f.Month != "" {
		if f.From != "" || f.To != "" {
			return ledger.Filter{}, errors.New("--month cannot be combined with --from or --to")
		}
		dr, err := ParseMonth(f.Month)
		if err != nil {
			return ledger.Filter{}, err
		}
		return ledger.Filter{Range: dr, Categories: f.Categories, Sources: f.Sources}, nil
	}

	from, to, err := ParseWindow(f.From, f.To)
	if err != nil {
		return ledger.Filter{}, err
	}
	dr, err := dateutils.NewDateRange(from, to)
	if err != nil {
		return ledger.Filter{}, err
	}
	return ledger.Filter{Range: dr, Categories: f.Categories, Sources: f.Sources}, nil
}

// ParseMonth parses a YYYY-MM value into the range of its calendar days.
func ParseMonth(value string) (dateutils.DateRange, error) {
	month, err := time.Parse("2006-01", value)
	if err != nil {
		return dateutils.DateRange{}, fmt.Errorf("invalid --month %q: expected YYYY-MM", value)
	}
	return dateutils.NewDateRange(dateutils.StartOfMonth(month), dateutils.EndOfMonth(month))
}

// ParseOptionalDay parses a day flag. An empty value yields the zero time.
func ParseOptionalDay(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	day, err := dateutils.ParseDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return day, nil
}

// ParseWindow parses the --from and --to flag values.
func ParseWindow(from, to string) (time.Time, time.Time, error) {
	start, err := ParseOptionalDay("from", from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseOptionalDay("to", to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
