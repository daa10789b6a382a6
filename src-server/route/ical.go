package route

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"naptar/src-server/export"
	"naptar/src-server/ical"
	"naptar/src-server/utils"
)

func Ical(muxer *http.ServeMux, as *utils.AppState) {
	exporter := export.New(as.Aggregator, as.Metrics)

	serve := func(w http.ResponseWriter, r *http.Request, feed ical.Feed, year int, disposition string) {
		text, err := exporter.Feed(r.Context(), feed, year)
		if err != nil {
			writeAggregationError(w, r, err)
			return
		}
		// no zero-byte downloads
		if text == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", ical.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%s", disposition, feed.FileName(year)))
		w.WriteHeader(http.StatusOK)
		if _, err := io.WriteString(w, text); err != nil {
			slog.Warn("can't write to response", "where", "route/ical.go", "error", err)
		}
	}

	// download
	muxer.HandleFunc("GET /ical/{feed}/{year}", func(w http.ResponseWriter, r *http.Request) {
		feed, err := ical.ParseFeed(r.PathValue("feed"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		year, err := parseYear(r.PathValue("year"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		serve(w, r, feed, year, "attachment")
	})

	// subscription
	muxer.HandleFunc("GET /data/{file}", func(w http.ResponseWriter, r *http.Request) {
		feed, year, err := ical.ParseFileName(r.PathValue("file"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		serve(w, r, feed, year, "inline")
	})
}
