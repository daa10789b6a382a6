package calendar_test

import (
	"testing"
	"time"

	"naptar/src-server/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{1900, false},
		{2000, true},
		{2023, false},
		{2026, false},
		{2100, false},
		{2400, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calendar.IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestMonthGridJanuary2026(t *testing.T) {
	grid := calendar.MonthGrid(2026, time.January)

	require.Len(t, grid, 34)
	for i := 0; i < 3; i++ {
		assert.Nil(t, grid[i], "cell %d should be blank", i)
	}
	require.NotNil(t, grid[3])
	assert.Equal(t, "2026-01-01", calendar.Key(*grid[3]))
	assert.Equal(t, time.Thursday, grid[3].Weekday())
	assert.Equal(t, "2026-01-31", calendar.Key(*grid[33]))
}

func TestMonthGridStartsOnMonday(t *testing.T) {
	// June 2026 starts on a Monday, February 2026 on a Sunday
	june := calendar.MonthGrid(2026, time.June)
	require.NotNil(t, june[0])
	assert.Len(t, june, 30)

	feb := calendar.MonthGrid(2026, time.February)
	assert.Len(t, feb, 6+28)
	require.NotNil(t, feb[6])
	assert.Equal(t, time.Sunday, feb[6].Weekday())
}

func TestMonthGridLeapFebruary(t *testing.T) {
	grid := calendar.MonthGrid(2024, time.February)
	last := grid[len(grid)-1]
	require.NotNil(t, last)
	assert.Equal(t, "2024-02-29", calendar.Key(*last))
	assert.Equal(t, time.UTC, last.Location())
}

func TestYearGrid(t *testing.T) {
	grids := calendar.YearGrid(2026)
	total := 0
	for _, g := range grids {
		for _, cell := range g {
			if cell != nil {
				total++
			}
		}
	}
	assert.Equal(t, 365, total)
}

func TestParseKey(t *testing.T) {
	d, err := calendar.ParseKey("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, calendar.Date(2026, time.March, 15), d)

	for _, bad := range []string{"2026-02-30", "2026-13-01", "15/03/2026", ""} {
		_, err := calendar.ParseKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, calendar.IsValidDate(2024, time.February, 29))
	assert.False(t, calendar.IsValidDate(2026, time.February, 29))
	assert.False(t, calendar.IsValidDate(2026, time.Month(13), 1))
	assert.False(t, calendar.IsValidDate(2026, time.April, 0))
}

func TestNormalize(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2026, time.January, 1, 0, 30, 0, 0, loc)
	assert.Equal(t, "2025-12-31", calendar.Key(calendar.Normalize(in)))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Január", calendar.MonthName(time.January))
	assert.Equal(t, "Április", calendar.MonthName(time.April))
	assert.Equal(t, "", calendar.MonthName(time.Month(0)))
	assert.Equal(t, "Hétfő", calendar.WeekdayNames()[0])
	assert.Equal(t, "Csü", calendar.WeekdayShortNames()[3])
	assert.Equal(t, "Vas", calendar.WeekdayShortNames()[6])
}
