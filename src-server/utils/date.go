package utils

import (
	"fmt"
	"time"

	"naptar/src-server/calendar"
)

// Resolve a YYYY-MM-DD key or an English phrase ("tomorrow", "next friday")
// relative to now into a calendar date
func (as *AppState) ResolveDate(text string, now time.Time) (time.Time, error) {
	text = CleanupString(text)
	if text == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if date, err := calendar.ParseKey(text); err == nil {
		return date, nil
	}

	result, err := as.When.Parse(text, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("can't parse date %q: %w", text, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("no date found in %q", text)
	}
	return calendar.Date(result.Time.Year(), result.Time.Month(), result.Time.Day()), nil
}
