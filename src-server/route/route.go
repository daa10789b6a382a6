package route

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"naptar/src-server/aggregator"
	"naptar/src-server/utils"
)

// Register every route and wrap the muxer with the middlewares
func NewHandler(as *utils.AppState) http.Handler {
	muxer := http.NewServeMux()
	Metrics(muxer, as)
	Calendar(muxer, as)
	Grid(muxer, as)
	Day(muxer, as)
	Feeds(muxer, as)
	Ical(muxer, as)
	SPA(muxer, as)
	return RequestID(AccessLog(muxer))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("can't write to response", "error", err)
	}
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}

// Map an aggregation error to a status code
func writeAggregationError(w http.ResponseWriter, r *http.Request, err error) {
	var tableErr *aggregator.TableError
	switch {
	case errors.As(err, &tableErr):
		slog.Error("malformed calendar table", "request_id", RequestIDFrom(r.Context()), "error", err)
		http.Error(w, "malformed calendar table", http.StatusInternalServerError)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "request canceled", http.StatusServiceUnavailable)
	default:
		slog.Error("can't build calendar data", "request_id", RequestIDFrom(r.Context()), "error", err)
		http.Error(w, "can't build calendar data", http.StatusInternalServerError)
	}
}
