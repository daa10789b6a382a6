// Package aggregator derives the waste, holiday and nameday events of a year
// and merges them into a date-keyed view.
package aggregator

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"naptar/src-server/cache"
	"naptar/src-server/calendar"
	"naptar/src-server/metric"
	"naptar/src-server/model"
	"naptar/src-server/source"
)

const (
	DefaultWasteURL   = "waste-calendar-%d.json"
	DefaultNameDayURL = "namedays.json"
)

var DefaultWasteYears = []int{2026}

type Options struct {
	Loader     source.Loader
	Holidays   source.HolidaySource
	Cache      *cache.Cache
	Metrics    *metric.Metrics
	WasteYears []int
	// fmt pattern receiving the year
	WasteURL   string
	NameDayURL string
}

type Aggregator struct {
	loader     source.Loader
	holidays   source.HolidaySource
	cache      *cache.Cache
	metrics    *metric.Metrics
	wasteYears []int
	wasteURL   string
	nameDayURL string
}

// Everything the presentation layer needs to render a year
type Result struct {
	CalendarData model.CalendarData `json:"calendarData"`
	NameDays     []model.NameDay    `json:"nameDays"`
}

// Create a new aggregator, zero options fall back to the embedded tables,
// the builtin holidays and a fresh cache.
func New(opts Options) *Aggregator {
	a := &Aggregator{
		loader:     opts.Loader,
		holidays:   opts.Holidays,
		cache:      opts.Cache,
		metrics:    opts.Metrics,
		wasteYears: slices.Clone(opts.WasteYears),
		wasteURL:   opts.WasteURL,
		nameDayURL: opts.NameDayURL,
	}
	if a.loader == nil {
		a.loader = source.NewLoader(10 * time.Second)
	}
	if a.holidays == nil {
		a.holidays = source.NewBuiltin()
	}
	if a.cache == nil {
		a.cache = cache.New()
		a.cache.SetObserver(a.metrics.CacheObserver())
	}
	if opts.WasteYears == nil {
		a.wasteYears = slices.Clone(DefaultWasteYears)
	}
	if a.wasteURL == "" {
		a.wasteURL = DefaultWasteURL
	}
	if a.nameDayURL == "" {
		a.nameDayURL = DefaultNameDayURL
	}
	return a
}

// Get the cache owned by this aggregator
func (a *Aggregator) Cache() *cache.Cache {
	return a.cache
}

// Get the years that have a waste schedule
func (a *Aggregator) WasteYears() []int {
	return slices.Clone(a.wasteYears)
}

func (a *Aggregator) SupportsWaste(year int) bool {
	return slices.Contains(a.wasteYears, year)
}

// Fetch the sources of a year concurrently and merge them. With wasteOnly the
// holiday and nameday sources are never touched.
func (a *Aggregator) GetCalendarData(ctx context.Context, year int, wasteOnly bool) (Result, error) {
	start := time.Now()
	defer func() { a.metrics.ObserveAggregation(time.Since(start)) }()

	var (
		wg         sync.WaitGroup
		waste      []model.WasteEvent
		wasteErr   error
		holidays   []model.Holiday
		nameDays   []model.NameDay
		nameDayErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		waste, wasteErr = a.GetWasteEvents(ctx, year)
	}()
	if !wasteOnly {
		wg.Add(2)
		go func() {
			defer wg.Done()
			holidays = a.GetHolidays(ctx, year)
		}()
		go func() {
			defer wg.Done()
			nameDays, nameDayErr = a.GetNameDays(ctx, year)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := errors.Join(wasteErr, nameDayErr); err != nil {
		return Result{}, err
	}
	return Merge(waste, holidays, nameDays), nil
}

// Build the date-keyed view. Waste events append to their day, holidays and
// namedays set the single slot of their day. Holidays whose date does not
// parse are dropped.
func Merge(waste []model.WasteEvent, holidays []model.Holiday, nameDays []model.NameDay) Result {
	data := model.CalendarData{}

	for _, event := range waste {
		if event.Date.IsZero() {
			continue
		}
		day := data.Day(event.Date)
		day.Waste = append(day.Waste, event)
	}

	for _, holiday := range holidays {
		date, err := calendar.ParseKey(holiday.Date)
		if err != nil {
			slog.Debug("dropping holiday with invalid date", "date", holiday.Date, "error", err)
			continue
		}
		holiday := holiday
		data.Day(date).Holiday = &holiday
	}

	for _, nameDay := range nameDays {
		if nameDay.Date.IsZero() {
			continue
		}
		nameDay := nameDay
		data.Day(nameDay.Date).NameDay = &nameDay
	}

	if nameDays == nil {
		nameDays = []model.NameDay{}
	}
	return Result{CalendarData: data, NameDays: nameDays}
}
