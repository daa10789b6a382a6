package calendar

import "time"

// MonthGrid returns the cells of a Monday-first month view: one nil per
// leading blank, then every day of the month in order.
func MonthGrid(year int, month time.Month) []*time.Time {
	first := Date(year, month, 1)
	blanks := MondayIndex(first)
	days := DaysInMonth(year, month)

	grid := make([]*time.Time, blanks, blanks+days)
	for day := 1; day <= days; day++ {
		d := Date(year, month, day)
		grid = append(grid, &d)
	}
	return grid
}

// YearGrid returns the twelve month grids of the annual view
func YearGrid(year int) [12][]*time.Time {
	var grids [12][]*time.Time
	for i := range grids {
		grids[i] = MonthGrid(year, time.Month(i+1))
	}
	return grids
}
