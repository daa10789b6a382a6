package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"naptar/src-server/cache"
	"naptar/src-server/calendar"
	"naptar/src-server/model"

	"github.com/xyedo/rrule"
)

// Get the waste collection events of a year in discovery order: per
// collection, explicit dates first, then the recurring weekday, then the
// rrule. Years without a schedule yield an empty slice.
func (a *Aggregator) GetWasteEvents(ctx context.Context, year int) ([]model.WasteEvent, error) {
	if !a.SupportsWaste(year) {
		return []model.WasteEvent{}, nil
	}

	url := fmt.Sprintf(a.wasteURL, year)
	schedule, err := cache.Fetch(ctx, a.cache, url, func(ctx context.Context) (*model.WasteSchedule, error) {
		return a.loadSchedule(ctx, url, year)
	})
	if err != nil {
		var tableErr *TableError
		if errors.As(err, &tableErr) {
			return nil, err
		}
		slog.Warn("waste schedule unavailable", "url", url, "error", err)
		a.metrics.SourceFailed("waste")
		return []model.WasteEvent{}, nil
	}
	return ExpandSchedule(schedule, year), nil
}

func (a *Aggregator) loadSchedule(ctx context.Context, url string, year int) (*model.WasteSchedule, error) {
	body, err := a.loader.Load(ctx, url)
	if err != nil {
		return nil, err
	}
	schedule, err := ParseSchedule(body)
	if err != nil {
		var tableErr *TableError
		if errors.As(err, &tableErr) {
			tableErr.args["url"] = url
		}
		return nil, err
	}
	if schedule.Year != 0 && schedule.Year != year {
		return nil, NewTableError("waste schedule is for another year", map[string]any{
			"url":      url,
			"expected": year,
			"got":      schedule.Year,
		})
	}
	return schedule, nil
}

// Decode and validate a waste schedule table
func ParseSchedule(body []byte) (*model.WasteSchedule, error) {
	schedule := new(model.WasteSchedule)
	if err := json.Unmarshal(body, schedule); err != nil {
		return nil, NewTableError("can't decode waste schedule", map[string]any{"error": err})
	}

	for i, collection := range schedule.Collections {
		if !collection.Type.Valid() {
			return nil, NewTableError("collection has no waste type", map[string]any{"collection": i})
		}
		for _, month := range collection.Dates {
			if month.Month < 1 || month.Month > 12 {
				return nil, NewTableError("month out of range", map[string]any{
					"collection": i,
					"type":       collection.Type,
					"month":      month.Month,
				})
			}
		}
		if collection.RecurringDay != nil && (*collection.RecurringDay < 0 || *collection.RecurringDay > 6) {
			return nil, NewTableError("recurring day out of range", map[string]any{
				"collection":   i,
				"type":         collection.Type,
				"recurringDay": *collection.RecurringDay,
			})
		}
		if collection.RRule != "" {
			if _, err := rruleOption(collection.RRule); err != nil {
				return nil, NewTableError("invalid rrule", map[string]any{
					"collection": i,
					"type":       collection.Type,
					"rrule":      collection.RRule,
					"error":      err,
				})
			}
		}
	}
	return schedule, nil
}

// Expand a validated schedule into the events of a year
func ExpandSchedule(schedule *model.WasteSchedule, year int) []model.WasteEvent {
	events := []model.WasteEvent{}
	for _, collection := range schedule.Collections {
		for _, month := range collection.Dates {
			for _, day := range month.Days {
				if !calendar.IsValidDate(year, time.Month(month.Month), day) {
					continue
				}
				events = append(events, model.WasteEvent{
					Date: calendar.Date(year, time.Month(month.Month), day),
					Type: collection.Type,
				})
			}
		}

		if weekday, ok := collection.Weekday(); ok {
			for _, date := range WeekdaysOfYear(year, weekday) {
				events = append(events, model.WasteEvent{Date: date, Type: collection.Type})
			}
		}

		if collection.RRule != "" {
			dates, err := RRuleDates(year, collection.RRule)
			if err != nil {
				slog.Warn("skipping invalid rrule", "type", collection.Type, "rrule", collection.RRule, "error", err)
				continue
			}
			for _, date := range dates {
				events = append(events, model.WasteEvent{Date: date, Type: collection.Type})
			}
		}
	}
	return events
}

// Walk every day of the year and keep those falling on weekday
func WeekdaysOfYear(year int, weekday time.Weekday) []time.Time {
	var dates []time.Time
	start := calendar.Date(year, time.January, 1)
	for i := 0; i < 366; i++ {
		date := start.AddDate(0, 0, i)
		if date.Year() != year {
			break
		}
		if date.Weekday() == weekday {
			dates = append(dates, date)
		}
	}
	return dates
}

// Expand an RRULE body within the year. Without a DTSTART the rule starts on
// January 1st.
func RRuleDates(year int, body string) ([]time.Time, error) {
	option, err := rruleOption(body)
	if err != nil {
		return nil, err
	}
	first := calendar.Date(year, time.January, 1)
	last := calendar.Date(year, time.December, 31)
	if option.Dtstart.IsZero() {
		option.Dtstart = first
	}
	rule, err := rrule.NewRRule(*option)
	if err != nil {
		return nil, err
	}

	var dates []time.Time
	for _, occurrence := range rule.Between(first, last, true) {
		date := calendar.Normalize(occurrence)
		if date.Year() == year {
			dates = append(dates, date)
		}
	}
	return dates, nil
}

func rruleOption(body string) (*rrule.ROption, error) {
	body = strings.TrimPrefix(strings.TrimSpace(body), "RRULE:")
	return rrule.StrToROption(body)
}
