package dateutils

import (
	"fmt"
	"time"
)

// DateRange is an inclusive range of calendar days. A zero Start or End
// leaves that side open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range over the calendar days of start and end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{}
	if !start.IsZero() {
		r.Start = StartOfDay(start)
	}
	if !end.IsZero() {
		r.End = StartOfDay(end)
	}
	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return DateRange{}, fmt.Errorf("end date %s is before start date %s", ToISODate(r.End), ToISODate(r.Start))
	}
	return r, nil
}

// LastNDays returns the range covering the n days that end on now's day.
func LastNDays(now time.Time, n int) DateRange {
	end := StartOfDay(now)
	return DateRange{Start: end.AddDate(0, 0, -n), End: end}
}

// IsZero reports whether both sides are open.
func (dr DateRange) IsZero() bool {
	return dr.Start.IsZero() && dr.End.IsZero()
}

// Contains reports whether the calendar day of t falls inside the range.
func (dr DateRange) Contains(t time.Time) bool {
	if !dr.Start.IsZero() && CompareDates(t, dr.Start) < 0 {
		return false
	}
	if !dr.End.IsZero() && CompareDates(t, dr.End) > 0 {
		return false
	}
	return true
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s", ToISODate(dr.Start), ToISODate(dr.End))
}
