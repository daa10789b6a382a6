package model

import (
	"sort"
	"time"

	"naptar/src-server/calendar"
)

// One waste collection on a day
type WasteEvent struct {
	Date time.Time `json:"date"`
	Type WasteType `json:"type"`
}

// A public holiday as delivered by a holiday source. Date stays the raw
// YYYY-MM-DD string until merge, where unparsable dates are dropped.
type Holiday struct {
	Date      string   `json:"date"`
	LocalName string   `json:"localName"`
	Name      string   `json:"name,omitempty"`
	Types     []string `json:"types,omitempty"`
}

// Names celebrated on a day. Names is free text ("Ábel, Ádám" or "Szökőnap").
type NameDay struct {
	Date  time.Time `json:"date"`
	Names string    `json:"names"`
}

// Everything known about one calendar day
type CalendarDay struct {
	Date    time.Time    `json:"date"`
	Waste   []WasteEvent `json:"waste"`
	Holiday *Holiday     `json:"holiday"`
	NameDay *NameDay     `json:"nameDay"`
}

// Reports whether the day carries at least one event
func (d *CalendarDay) HasEvents() bool {
	return d != nil && (len(d.Waste) > 0 || d.Holiday != nil || d.NameDay != nil)
}

// The waste type a calendar cell should be colored with: the first type that
// is not Vegyes, otherwise the first one.
func (d *CalendarDay) PrimaryWaste() (WasteType, bool) {
	if d == nil || len(d.Waste) == 0 {
		return 0, false
	}
	for _, w := range d.Waste {
		if w.Type != WasteMixed {
			return w.Type, true
		}
	}
	return d.Waste[0].Type, true
}

// Day records keyed by calendar.Key
type CalendarData map[string]*CalendarDay

// Get the day for a date, creating it when missing
func (c CalendarData) Day(date time.Time) *CalendarDay {
	date = calendar.Normalize(date)
	key := calendar.Key(date)
	day, ok := c[key]
	if !ok {
		day = &CalendarDay{Date: date, Waste: []WasteEvent{}}
		c[key] = day
	}
	return day
}

// Keys in ascending date order
func (c CalendarData) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Year of the earliest day. Keys are sorted first, map order is never used.
func (c CalendarData) Year() (int, bool) {
	keys := c.Keys()
	if len(keys) == 0 {
		return 0, false
	}
	return c[keys[0]].Date.Year(), true
}

// Copy of the data restricted to days with waste collections
func (c CalendarData) WasteOnly() CalendarData {
	out := make(CalendarData)
	for k, day := range c {
		if len(day.Waste) > 0 {
			out[k] = day
		}
	}
	return out
}
