package model

import "time"

// Static waste collection table for one year
type WasteSchedule struct {
	Year        int               `json:"year"`
	Collections []WasteCollection `json:"collections"`
}

// Collection rules of one waste type
type WasteCollection struct {
	Type  WasteType    `json:"type"`
	Dates []WasteMonth `json:"dates"`
	// 0=Sunday ... 6=Saturday, collected every such weekday of the year
	RecurringDay *int `json:"recurringDay,omitempty"`
	// RRULE body such as FREQ=WEEKLY;INTERVAL=2;BYDAY=TH
	RRule string `json:"rrule,omitempty"`
}

// Explicit collection days within one month (1-12)
type WasteMonth struct {
	Month int   `json:"month"`
	Days  []int `json:"days"`
}

// Recurring weekday of the collection, if any
func (c WasteCollection) Weekday() (time.Weekday, bool) {
	if c.RecurringDay == nil {
		return 0, false
	}
	return time.Weekday(*c.RecurringDay), true
}
