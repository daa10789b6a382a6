package ical

import (
	"fmt"
	"time"

	"naptar/src-server/calendar"
	"naptar/src-server/model"

	ics "github.com/arran4/golang-ical"
)

// Serialize the namedays of a year. Returns "" when there are none.
func GenerateNameDayIcal(nameDays []model.NameDay, year int) string {
	return GenerateNameDayIcalAt(nameDays, year, time.Now())
}

func GenerateNameDayIcalAt(nameDays []model.NameDay, year int, now time.Time) string {
	if len(nameDays) == 0 {
		return ""
	}

	cal := ics.NewCalendar()
	cal.SetProductId(fmt.Sprintf("-//Hulladeknaptar//Magyar Nevnapok %d//HU", year))
	cal.SetXWRCalName(fmt.Sprintf("Magyar Névnapok %d", year))
	cal.SetXWRTimezone(timezone)

	for _, nameDay := range nameDays {
		event := cal.AddEvent(fmt.Sprintf("%s-nameday@%s", calendar.CompactKey(nameDay.Date), uidDomain))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(nameDay.Date)
		event.SetSummary("Névnap: " + nameDay.Names)
		event.SetProperty(ics.ComponentPropertyTransp, "TRANSPARENT")
		event.AddProperty(ics.ComponentPropertyCategories, nameDayCategory)
	}
	return cal.Serialize()
}
