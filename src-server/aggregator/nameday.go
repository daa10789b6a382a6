package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"naptar/src-server/cache"
	"naptar/src-server/calendar"
	"naptar/src-server/model"
)

// Names of the leap day inserted on February 24th
const LeapDayNames = "Szökőnap"

// any non-leap year, the nameday table follows its layout
const tableYear = 2023

type nameDayEntry struct {
	month time.Month
	day   int
	names string
}

// Get the namedays of a year sorted by date. In a leap year every February
// entry from the 24th on moves one day later and the 24th becomes Szökőnap.
func (a *Aggregator) GetNameDays(ctx context.Context, year int) ([]model.NameDay, error) {
	table, err := cache.Fetch(ctx, a.cache, a.nameDayURL, func(ctx context.Context) ([]nameDayEntry, error) {
		body, err := a.loader.Load(ctx, a.nameDayURL)
		if err != nil {
			return nil, err
		}
		table, err := parseNameDays(body)
		if err != nil {
			var tableErr *TableError
			if errors.As(err, &tableErr) {
				tableErr.args["url"] = a.nameDayURL
			}
			return nil, err
		}
		return table, nil
	})
	if err != nil {
		var tableErr *TableError
		if errors.As(err, &tableErr) {
			return nil, err
		}
		slog.Warn("nameday table unavailable", "url", a.nameDayURL, "error", err)
		a.metrics.SourceFailed("nameday")
		return []model.NameDay{}, nil
	}
	return nameDaysOf(table, year), nil
}

// Decode and validate a nameday table ("MM-DD" -> names)
func parseNameDays(body []byte) ([]nameDayEntry, error) {
	raw := map[string]string{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, NewTableError("can't decode nameday table", map[string]any{"error": err})
	}

	table := make([]nameDayEntry, 0, len(raw))
	for key, names := range raw {
		month, day, ok := parseMonthDay(key)
		if !ok {
			return nil, NewTableError("malformed nameday key", map[string]any{"key": key})
		}
		// keys like 02-30 or 04-31 name no day
		if !calendar.IsValidDate(tableYear, month, day) {
			continue
		}
		table = append(table, nameDayEntry{month: month, day: day, names: names})
	}
	return table, nil
}

// Parse "MM-DD" with a month of 1-12 and a day of 1-31
func parseMonthDay(key string) (time.Month, int, bool) {
	if len(key) != 5 || key[2] != '-' {
		return 0, 0, false
	}
	month, err := strconv.Atoi(key[:2])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	day, err := strconv.Atoi(key[3:])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, false
	}
	return time.Month(month), day, true
}

func nameDaysOf(table []nameDayEntry, year int) []model.NameDay {
	leap := calendar.IsLeapYear(year)
	nameDays := make([]model.NameDay, 0, len(table)+1)
	for _, entry := range table {
		date := calendar.Date(year, entry.month, entry.day)
		if leap && entry.month == time.February && entry.day >= 24 {
			date = date.AddDate(0, 0, 1)
		}
		nameDays = append(nameDays, model.NameDay{Date: date, Names: entry.names})
	}
	if leap {
		nameDays = append(nameDays, model.NameDay{
			Date:  calendar.Date(year, time.February, 24),
			Names: LeapDayNames,
		})
	}

	sort.SliceStable(nameDays, func(i, j int) bool {
		return nameDays[i].Date.Before(nameDays[j].Date)
	})
	return nameDays
}
