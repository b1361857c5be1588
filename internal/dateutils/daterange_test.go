package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_Contains(t *testing.T) {
	r, err := NewDateRange(day(2024, 1, 10), day(2024, 1, 20).Add(15*time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"start day inclusive", day(2024, 1, 10).Add(23 * time.Hour), true},
		{"end day inclusive", day(2024, 1, 20).Add(23 * time.Hour), true},
		{"before", day(2024, 1, 9), false},
		{"after", day(2024, 1, 21), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.t))
		})
	}
}

func TestDateRange_OpenSides(t *testing.T) {
	assert.True(t, DateRange{}.Contains(day(1999, 1, 1)))
	assert.True(t, DateRange{}.IsZero())

	from := DateRange{Start: day(2024, 1, 1)}
	assert.False(t, from.Contains(day(2023, 12, 31)))
	assert.True(t, from.Contains(day(2030, 1, 1)))
	assert.Equal(t, "", from.String())
}

func TestNewDateRange_Inverted(t *testing.T) {
	_, err := NewDateRange(day(2024, 2, 1), day(2024, 1, 1))
	assert.ErrorContains(t, err, "before start date")
}

func TestLastNDays(t *testing.T) {
	r := LastNDays(time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC), 30)
	assert.Equal(t, "2024-03-01_2024-03-31", r.String())
}
