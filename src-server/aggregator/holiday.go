package aggregator

import (
	"context"
	"log/slog"

	"naptar/src-server/cache"
	"naptar/src-server/model"
)

// Get the public holidays of a year. The holiday source is optional data:
// any failure is logged and yields an empty slice.
func (a *Aggregator) GetHolidays(ctx context.Context, year int) []model.Holiday {
	key := a.holidays.Key(year)
	holidays, err := cache.Fetch(ctx, a.cache, key, func(ctx context.Context) ([]model.Holiday, error) {
		return a.holidays.Holidays(ctx, year)
	})
	if err != nil {
		slog.Warn("holidays unavailable", "key", key, "error", err)
		a.metrics.SourceFailed("holiday")
		return []model.Holiday{}
	}
	if holidays == nil {
		return []model.Holiday{}
	}
	return holidays
}
