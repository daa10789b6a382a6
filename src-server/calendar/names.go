package calendar

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	monthNames = [12]string{
		"január", "február", "március", "április", "május", "június",
		"július", "augusztus", "szeptember", "október", "november", "december",
	}
	weekdayNames = [7]string{
		"hétfő", "kedd", "szerda", "csütörtök", "péntek", "szombat", "vasárnap",
	}

	// a Caser is stateful, so titles are built once here
	monthTitles   = title(monthNames[:])
	weekdayTitles = title(weekdayNames[:])
)

func title(names []string) []string {
	caser := cases.Title(language.Hungarian)
	titles := make([]string, len(names))
	for i, name := range names {
		titles[i] = caser.String(name)
	}
	return titles
}

// Hungarian month name, capitalized for headings ("Január")
func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return monthTitles[month-1]
}

// Hungarian weekday names, Monday first, capitalized
func WeekdayNames() [7]string {
	var names [7]string
	copy(names[:], weekdayTitles)
	return names
}

// Three letter weekday abbreviations for grid headers ("Hét", "Ked", ...)
func WeekdayShortNames() [7]string {
	var names [7]string
	for i, name := range WeekdayNames() {
		runes := []rune(name)
		if len(runes) > 3 {
			runes = runes[:3]
		}
		names[i] = string(runes)
	}
	return names
}

// Reports whether the day falls on Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
