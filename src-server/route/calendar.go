package route

import (
	"net/http"
	"strconv"

	"naptar/src-server/utils"
)

func Calendar(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("GET /api/calendar/{year}", func(w http.ResponseWriter, r *http.Request) {
		year, err := parseYear(r.PathValue("year"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		wasteOnly := false
		if raw := r.URL.Query().Get("wasteOnly"); raw != "" {
			if wasteOnly, err = strconv.ParseBool(raw); err != nil {
				http.Error(w, "invalid wasteOnly", http.StatusBadRequest)
				return
			}
		}

		result, err := as.Aggregator.GetCalendarData(r.Context(), year, wasteOnly)
		if err != nil {
			writeAggregationError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}
