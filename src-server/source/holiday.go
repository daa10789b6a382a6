// Package source holds the collaborators the aggregator reads from: holiday
// providers and the loader for the static schedule and nameday tables.
package source

import (
	"context"

	"naptar/src-server/model"
)

// Public holidays of Hungary for a year. Implementations are treated as
// untrusted: callers drop records whose date does not parse.
type HolidaySource interface {
	// Cache key of the year's data, e.g. the request URL
	Key(year int) string
	Holidays(ctx context.Context, year int) ([]model.Holiday, error)
}
