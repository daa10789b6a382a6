// Package calendar holds the pure date helpers the rest of the app builds on.
// Every date it hands out is midnight UTC, so keys and weekdays never depend
// on the host timezone.
package calendar

import (
	"fmt"
	"time"
)

// Layout of the canonical day key, e.g. 2026-01-07
const KeyLayout = "2006-01-02"

// Gregorian leap year rule
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// Midnight UTC of the given day. Out of range values normalize the way
// time.Date does; use ParseKey or IsValidDate when that is not wanted.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate any instant to midnight UTC of its UTC calendar day
func Normalize(t time.Time) time.Time {
	t = t.UTC()
	return Date(t.Year(), t.Month(), t.Day())
}

// Reports whether year-month-day names a real calendar day
func IsValidDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 {
		return false
	}
	return day <= DaysInMonth(year, month)
}

// Number of days in the month
func DaysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// Canonical YYYY-MM-DD key of the UTC day
func Key(t time.Time) string {
	return t.UTC().Format(KeyLayout)
}

// Parse a YYYY-MM-DD key. Dates that time.Date would roll over (2026-02-30)
// are rejected.
func ParseKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Compact YYYYMMDD form used by iCalendar DATE values and UIDs
func CompactKey(t time.Time) string {
	return t.UTC().Format("20060102")
}

// Weekday index with Monday=0 ... Sunday=6
func MondayIndex(t time.Time) int {
	return (int(t.UTC().Weekday()) + 6) % 7
}
