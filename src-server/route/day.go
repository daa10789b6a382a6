package route

import (
	"net/http"
	"time"

	"naptar/src-server/calendar"
	"naptar/src-server/model"
	"naptar/src-server/utils"
)

type DayRespBody struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Weekend bool   `json:"weekend"`
	// Null when nothing happens on the day
	Day *model.CalendarDay `json:"day"`
	// Highest priority collection of the day
	Primary *model.WasteType `json:"primaryWaste,omitempty"`
	// Whether a waste table exists for the year at all
	HasWaste bool `json:"hasWasteData"`
}

// Resolve ?q= (an ISO date or a phrase like "next friday") and describe that day
func Day(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("GET /api/day", func(w http.ResponseWriter, r *http.Request) {
		date, err := as.ResolveDate(r.URL.Query().Get("q"), time.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result, err := as.Aggregator.GetCalendarData(r.Context(), date.Year(), false)
		if err != nil {
			writeAggregationError(w, r, err)
			return
		}

		resp := DayRespBody{
			Date:     calendar.Key(date),
			Weekday:  calendar.WeekdayNames()[calendar.MondayIndex(date)],
			Weekend:  calendar.IsWeekend(date),
			Day:      result.CalendarData[calendar.Key(date)],
			HasWaste: as.Aggregator.SupportsWaste(date.Year()),
		}
		if resp.Day != nil {
			if primary, ok := resp.Day.PrimaryWaste(); ok {
				resp.Primary = &primary
			}
		}
		writeJSON(w, http.StatusOK, resp)
	})
}
