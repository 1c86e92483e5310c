package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsEndOfMonth(t *testing.T) {
	tests := []struct {
		day  time.Time
		want bool
	}{
		{date(2024, 2, 29), true},
		{date(2024, 2, 28), false},
		{date(2025, 2, 28), true},
		{date(2025, 4, 30), true},
		{date(2025, 12, 31), true},
		{date(2025, 12, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.day.Format(DateLayout), func(t *testing.T) {
			assert.Equal(t, tt.want, IsEndOfMonth(tt.day))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"Plain month", date(2024, 1, 15), 1, date(2024, 2, 15)},
		{"Clamp to leap February", date(2024, 1, 31), 1, date(2024, 2, 29)},
		{"Clamp to February", date(2025, 1, 31), 1, date(2025, 2, 28)},
		{"Clamp to 30-day month", date(2025, 3, 31), 1, date(2025, 4, 30)},
		{"Day restored after clamp", date(2025, 1, 31), 2, date(2025, 3, 31)},
		{"Across year end", date(2025, 11, 30), 3, date(2026, 2, 28)},
		{"Backwards", date(2025, 3, 31), -1, date(2025, 2, 28)},
		{"Zero", date(2025, 3, 31), 0, date(2025, 3, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}

	// time of day is preserved
	base := time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 12, 15, 12, 30, 45, 0, time.UTC), AddMonths(base, 18))
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"Same day", date(2025, 8, 1), date(2025, 8, 1), 0},
		{"12 months", date(2020, 1, 1), date(2021, 1, 1), 12},
		{"18 months", date(2020, 1, 1), date(2021, 7, 1), 18},
		{"Day before anniversary", date(2024, 1, 15), date(2024, 3, 14), 1},
		{"On anniversary", date(2024, 1, 15), date(2024, 3, 15), 2},
		{"Month end counts as full month", date(2024, 1, 31), date(2024, 2, 29), 1},
		{"Backwards", date(2024, 3, 15), date(2024, 1, 15), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.from, tt.to))
		})
	}
}

func TestMonthsBetweenInvertsAddMonths(t *testing.T) {
	starts := []time.Time{date(2024, 1, 31), date(2023, 8, 29), date(2025, 2, 28), date(2025, 6, 15)}
	for _, start := range starts {
		for n := 0; n <= 36; n++ {
			assert.Equal(t, n, MonthsBetween(start, AddMonths(start, n)), "start %s n %d", start.Format(DateLayout), n)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 29), d)

	_, err = ParseDate("2025-02-29")
	assert.Error(t, err)

	_, err = ParseDate("29/02/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}
