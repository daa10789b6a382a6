package source

import (
	"context"
	"fmt"
	"time"

	"naptar/src-server/calendar"
	"naptar/src-server/model"

	"github.com/rickar/cal/v2"
)

// Hungarian public holidays (Munka Törvénykönyve 102. §)
var (
	NewYear = &cal.Holiday{
		Name: "Újév", Type: cal.ObservancePublic,
		Month: time.January, Day: 1, Func: cal.CalcDayOfMonth,
	}
	Revolution1848 = &cal.Holiday{
		Name: "Nemzeti ünnep", Type: cal.ObservancePublic,
		Month: time.March, Day: 15, Func: cal.CalcDayOfMonth,
	}
	GoodFriday = &cal.Holiday{
		Name: "Nagypéntek", Type: cal.ObservancePublic,
		Offset: -2, Func: cal.CalcEasterOffset, StartYear: 2017,
	}
	EasterSunday = &cal.Holiday{
		Name: "Húsvétvasárnap", Type: cal.ObservancePublic,
		Offset: 0, Func: cal.CalcEasterOffset,
	}
	EasterMonday = &cal.Holiday{
		Name: "Húsvéthétfő", Type: cal.ObservancePublic,
		Offset: 1, Func: cal.CalcEasterOffset,
	}
	LabourDay = &cal.Holiday{
		Name: "A munka ünnepe", Type: cal.ObservancePublic,
		Month: time.May, Day: 1, Func: cal.CalcDayOfMonth,
	}
	WhitSunday = &cal.Holiday{
		Name: "Pünkösdvasárnap", Type: cal.ObservancePublic,
		Offset: 49, Func: cal.CalcEasterOffset,
	}
	WhitMonday = &cal.Holiday{
		Name: "Pünkösdhétfő", Type: cal.ObservancePublic,
		Offset: 50, Func: cal.CalcEasterOffset,
	}
	StateFoundation = &cal.Holiday{
		Name: "Az államalapítás ünnepe", Type: cal.ObservancePublic,
		Month: time.August, Day: 20, Func: cal.CalcDayOfMonth,
	}
	Revolution1956 = &cal.Holiday{
		Name: "Nemzeti ünnep", Type: cal.ObservancePublic,
		Month: time.October, Day: 23, Func: cal.CalcDayOfMonth,
	}
	AllSaints = &cal.Holiday{
		Name: "Mindenszentek", Type: cal.ObservancePublic,
		Month: time.November, Day: 1, Func: cal.CalcDayOfMonth,
	}
	Christmas = &cal.Holiday{
		Name: "Karácsony", Type: cal.ObservancePublic,
		Month: time.December, Day: 25, Func: cal.CalcDayOfMonth,
	}
	ChristmasSecondDay = &cal.Holiday{
		Name: "Karácsony másnapja", Type: cal.ObservancePublic,
		Month: time.December, Day: 26, Func: cal.CalcDayOfMonth,
	}

	HungarianHolidays = []*cal.Holiday{
		NewYear, Revolution1848, GoodFriday, EasterSunday, EasterMonday,
		LabourDay, WhitSunday, WhitMonday, StateFoundation, Revolution1956,
		AllSaints, Christmas, ChristmasSecondDay,
	}
)

// Offline holiday source computing the statutory holidays locally
type Builtin struct {
	holidays []*cal.Holiday
}

func NewBuiltin() *Builtin {
	return &Builtin{holidays: HungarianHolidays}
}

func (b *Builtin) Key(year int) string {
	return fmt.Sprintf("builtin:holidays/%d/HU", year)
}

func (b *Builtin) Holidays(_ context.Context, year int) ([]model.Holiday, error) {
	holidays := make([]model.Holiday, 0, len(b.holidays))
	for _, h := range b.holidays {
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		holidays = append(holidays, model.Holiday{
			Date:      calendar.Key(calendar.Date(actual.Year(), actual.Month(), actual.Day())),
			LocalName: h.Name,
			Types:     []string{"Public"},
		})
	}
	return holidays, nil
}
