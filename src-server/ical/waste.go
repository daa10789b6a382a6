package ical

import (
	"fmt"
	"time"

	"naptar/src-server/calendar"
	"naptar/src-server/model"

	ics "github.com/arran4/golang-ical"
)

// Serialize the waste collections of data, stamped with the current time.
// Returns "" when no day has a collection.
func GenerateWasteIcal(data model.CalendarData) string {
	return GenerateWasteIcalAt(data, time.Now())
}

// Same as GenerateWasteIcal with a fixed DTSTAMP
func GenerateWasteIcalAt(data model.CalendarData, now time.Time) string {
	waste := data.WasteOnly()
	year, ok := waste.Year()
	if !ok {
		return ""
	}

	cal := ics.NewCalendar()
	cal.SetProductId(fmt.Sprintf("-//Hulladeknaptar//Martonvasar %d//HU", year))
	cal.SetXWRCalName(fmt.Sprintf("Martonvásár Hulladéknaptár %d", year))
	cal.SetXWRTimezone(timezone)
	cal.SetCalscale("GREGORIAN")

	for _, key := range waste.Keys() {
		day := waste[key]
		for _, collection := range day.Waste {
			addWasteEvent(cal, day.Date, collection.Type, now)
		}
	}
	return cal.Serialize()
}

func addWasteEvent(cal *ics.Calendar, date time.Time, t model.WasteType, now time.Time) {
	event := cal.AddEvent(fmt.Sprintf("%s-%s@%s", calendar.CompactKey(date), t, uidDomain))
	event.SetDtStampTime(now)
	event.SetAllDayStartAt(date)
	event.SetSummary(wasteSummary(t))
	event.SetDescription(wasteDescription(t))
	event.SetLocation(wasteLocation)

	alarm := event.AddAlarm()
	alarm.SetAction(ics.ActionDisplay)
	alarm.SetProperty(ics.ComponentPropertyDescription, wasteReminder)
	alarm.SetTrigger(wasteTrigger)
}
