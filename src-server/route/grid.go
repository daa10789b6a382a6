package route

import (
	"net/http"
	"strconv"
	"time"

	"naptar/src-server/calendar"
	"naptar/src-server/utils"
)

type GridRespBody struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	MonthName string    `json:"monthName"`
	Weekdays  [7]string `json:"weekdays"`
	// Monday first, null for the leading blanks
	Days []*string `json:"days"`
}

func Grid(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("GET /api/grid/{year}/{month}", func(w http.ResponseWriter, r *http.Request) {
		year, err := parseYear(r.PathValue("year"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		month, err := strconv.Atoi(r.PathValue("month"))
		if err != nil || month < 1 || month > 12 {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, gridBody(year, time.Month(month), calendar.MonthGrid(year, time.Month(month))))
	})

	// The annual view, January first
	muxer.HandleFunc("GET /api/grid/{year}", func(w http.ResponseWriter, r *http.Request) {
		year, err := parseYear(r.PathValue("year"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		grids := calendar.YearGrid(year)
		months := make([]GridRespBody, len(grids))
		for i, cells := range grids {
			months[i] = gridBody(year, time.Month(i+1), cells)
		}
		writeJSON(w, http.StatusOK, months)
	})
}

func gridBody(year int, month time.Month, cells []*time.Time) GridRespBody {
	days := make([]*string, len(cells))
	for i, cell := range cells {
		if cell != nil {
			key := calendar.Key(*cell)
			days[i] = &key
		}
	}
	return GridRespBody{
		Year:      year,
		Month:     int(month),
		MonthName: calendar.MonthName(month),
		Weekdays:  calendar.WeekdayNames(),
		Days:      days,
	}
}
