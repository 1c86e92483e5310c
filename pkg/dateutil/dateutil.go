package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format accepted on the command line and in reports
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date in UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsEndOfMonth reports whether date falls on the last day of its month
func IsEndOfMonth(date time.Time) bool {
	return date.Day() == DaysInMonth(date.Year(), date.Month())
}

// AddMonths adds months to a date, clamping the day to the end of the target month
// (Jan 31 + 1 month = Feb 28/29) instead of overflowing into the month after.
func AddMonths(date time.Time, months int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m+time.Month(months), 1, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
	if last := DaysInMonth(first.Year(), first.Month()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

// MonthsBetween counts whole calendar months from one date to another, consistent with
// AddMonths: MonthsBetween(d, AddMonths(d, n)) == n. Negative when to is before from.
func MonthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return -MonthsBetween(to, from)
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() && !IsEndOfMonth(to) {
		months--
	}
	return months
}
