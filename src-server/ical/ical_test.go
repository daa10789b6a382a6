package ical_test

import (
	"strings"
	"testing"
	"time"

	"naptar/src-server/calendar"
	"naptar/src-server/ical"
	"naptar/src-server/model"

	goical "github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2026, time.January, 15, 8, 30, 0, 0, time.UTC)

func decode(t *testing.T, text string) *goical.Calendar {
	t.Helper()
	cal, err := goical.NewDecoder(strings.NewReader(text)).Decode()
	require.NoError(t, err)
	return cal
}

func text(t *testing.T, props goical.Props, name string) string {
	t.Helper()
	value, err := props.Text(name)
	require.NoError(t, err)
	return value
}

func wasteData(events ...model.WasteEvent) model.CalendarData {
	data := model.CalendarData{}
	for _, event := range events {
		day := data.Day(event.Date)
		day.Waste = append(day.Waste, event)
	}
	return data
}

func TestEmptyWasteIcal(t *testing.T) {
	assert.Equal(t, "", ical.GenerateWasteIcal(model.CalendarData{}))

	// days without waste do not count
	data := model.CalendarData{}
	data.Day(calendar.Date(2026, time.March, 15)).Holiday = &model.Holiday{Date: "2026-03-15", LocalName: "Nemzeti ünnep"}
	assert.Equal(t, "", ical.GenerateWasteIcal(data))
}

func TestWasteIcalTwoTypesOneDay(t *testing.T) {
	date := calendar.Date(2026, time.February, 18)
	out := ical.GenerateWasteIcalAt(wasteData(
		model.WasteEvent{Date: date, Type: model.WasteMixed},
		model.WasteEvent{Date: date, Type: model.WasteGlass},
	), stamp)

	assert.Contains(t, out, "\r\n")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VALARM"))
	assert.Equal(t, 2, strings.Count(out, "TRIGGER:-PT7H"))

	cal := decode(t, out)
	assert.Equal(t, "-//Hulladeknaptar//Martonvasar 2026//HU", cal.Props.Get(goical.PropProductID).Value)
	assert.Equal(t, "Martonvásár Hulladéknaptár 2026", cal.Props.Get("X-WR-CALNAME").Value)
	assert.Equal(t, "Europe/Budapest", cal.Props.Get("X-WR-TIMEZONE").Value)
	assert.Equal(t, "GREGORIAN", cal.Props.Get(goical.PropCalendarScale).Value)

	events := cal.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "20260218-Vegyes@hulladeknaptar.app", text(t, events[0].Props, goical.PropUID))
	assert.Equal(t, "20260218-Üveg@hulladeknaptar.app", text(t, events[1].Props, goical.PropUID))
	assert.Equal(t, "🗑️ Vegyes hulladékgyűjtés", text(t, events[0].Props, goical.PropSummary))
	assert.Equal(t, "🍾 Üveghulladék gyűjtés", text(t, events[1].Props, goical.PropSummary))
	assert.Equal(t,
		"Üveghulladék gyűjtése (fehér és színes). Kérjük, az üvegeket kiöblítve helyezze ki!",
		text(t, events[1].Props, goical.PropDescription))

	for _, event := range events {
		start := event.Props.Get(goical.PropDateTimeStart)
		require.NotNil(t, start)
		assert.Equal(t, "20260218", start.Value)
		assert.Equal(t, "DATE", start.Params.Get(goical.ParamValue))
		assert.Equal(t, "20260115T083000Z", event.Props.Get(goical.PropDateTimeStamp).Value)
		assert.Equal(t, "Martonvásár, Magyarország", text(t, event.Props, goical.PropLocation))

		require.Len(t, event.Children, 1)
		alarm := event.Children[0]
		assert.Equal(t, goical.CompAlarm, alarm.Name)
		assert.Equal(t, "DISPLAY", alarm.Props.Get(goical.PropAction).Value)
		assert.Equal(t, "-PT7H", alarm.Props.Get(goical.PropTrigger).Value)
		assert.Equal(t, "Emlékeztető: Hulladék kihelyezés másnap reggelre!", text(t, alarm.Props, goical.PropDescription))
	}
}

func TestWasteIcalOrderAndYear(t *testing.T) {
	out := ical.GenerateWasteIcalAt(wasteData(
		model.WasteEvent{Date: calendar.Date(2026, time.March, 5), Type: model.WasteSelective},
		model.WasteEvent{Date: calendar.Date(2026, time.January, 7), Type: model.WasteMixed},
		model.WasteEvent{Date: calendar.Date(2026, time.April, 2), Type: model.WasteGreen},
	), stamp)

	cal := decode(t, out)
	var uids []string
	for _, event := range cal.Events() {
		uids = append(uids, text(t, event.Props, goical.PropUID))
	}
	assert.Equal(t, []string{
		"20260107-Vegyes@hulladeknaptar.app",
		"20260305-Szelektív@hulladeknaptar.app",
		"20260402-Zöldhulladék@hulladeknaptar.app",
	}, uids)
	assert.Contains(t, cal.Props.Get("X-WR-CALNAME").Value, "2026")
}

func TestWasteIcalOnlyWasteDays(t *testing.T) {
	data := wasteData(model.WasteEvent{Date: calendar.Date(2026, time.May, 20), Type: model.WasteGlass})
	data.Day(calendar.Date(2026, time.May, 1)).NameDay = &model.NameDay{Date: calendar.Date(2026, time.May, 1), Names: "Fülöp"}

	cal := decode(t, ical.GenerateWasteIcalAt(data, stamp))
	require.Len(t, cal.Events(), 1)
}

func TestNameDayIcal(t *testing.T) {
	assert.Equal(t, "", ical.GenerateNameDayIcal(nil, 2026))

	nameDays := []model.NameDay{
		{Date: calendar.Date(2024, time.February, 24), Names: "Szökőnap"},
		{Date: calendar.Date(2024, time.February, 25), Names: "Mátyás"},
		{Date: calendar.Date(2024, time.March, 19), Names: "József, Bánk"},
	}
	out := ical.GenerateNameDayIcalAt(nameDays, 2024, stamp)
	assert.NotContains(t, out, "VALARM")

	cal := decode(t, out)
	assert.Equal(t, "-//Hulladeknaptar//Magyar Nevnapok 2024//HU", cal.Props.Get(goical.PropProductID).Value)
	assert.Equal(t, "Magyar Névnapok 2024", cal.Props.Get("X-WR-CALNAME").Value)
	assert.Equal(t, "Europe/Budapest", cal.Props.Get("X-WR-TIMEZONE").Value)
	assert.Nil(t, cal.Props.Get(goical.PropCalendarScale))

	events := cal.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "20240224-nameday@hulladeknaptar.app", text(t, events[0].Props, goical.PropUID))
	assert.Equal(t, "Névnap: Szökőnap", text(t, events[0].Props, goical.PropSummary))
	assert.Equal(t, "Névnap: József, Bánk", text(t, events[2].Props, goical.PropSummary))
	for _, event := range events {
		assert.Equal(t, "TRANSPARENT", event.Props.Get(goical.PropTransparency).Value)
		assert.Equal(t, "Névnap", event.Props.Get(goical.PropCategories).Value)
		assert.Equal(t, "DATE", event.Props.Get(goical.PropDateTimeStart).Params.Get(goical.ParamValue))
		assert.Empty(t, event.Children)
	}
}

func TestFeedNames(t *testing.T) {
	assert.Equal(t, "martonvasar_hulladek_2026.ics", ical.FeedWaste.FileName(2026))
	assert.Equal(t, "magyar_nevnapok_2024.ics", ical.FeedNameDay.FileName(2024))
	assert.Equal(t, "data/martonvasar_hulladek_2026.ics", ical.FeedWaste.SubscriptionPath(2026))
	assert.Equal(t, "https://naptar.example/data/magyar_nevnapok_2026.ics", ical.FeedNameDay.SubscriptionURL("https://naptar.example/", 2026))
	assert.Equal(t, "/data/magyar_nevnapok_2026.ics", ical.FeedNameDay.SubscriptionURL("", 2026))
	assert.Equal(t, "Hulladéknaptár", ical.FeedWaste.Title())
	assert.Equal(t, "Magyar Névnapok", ical.FeedNameDay.Title())
	assert.Equal(t, "text/calendar;charset=utf-8", ical.ContentType)

	feed, err := ical.ParseFeed("nameday")
	require.NoError(t, err)
	assert.Equal(t, ical.FeedNameDay, feed)
	_, err = ical.ParseFeed("holiday")
	assert.Error(t, err)
}

func TestParseFileName(t *testing.T) {
	for _, feed := range ical.Feeds {
		got, year, err := ical.ParseFileName(feed.FileName(2026))
		require.NoError(t, err)
		assert.Equal(t, feed, got)
		assert.Equal(t, 2026, year)
	}

	for _, name := range []string{
		"martonvasar_hulladek_2026.txt",
		"martonvasar_hulladek.ics",
		"martonvasar_hulladek_abc.ics",
		"unnepnapok_2026.ics",
		"../martonvasar_hulladek_2026.ics",
	} {
		_, _, err := ical.ParseFileName(name)
		assert.Error(t, err, name)
	}
}

func TestGenerate(t *testing.T) {
	data := wasteData(model.WasteEvent{Date: calendar.Date(2026, time.May, 20), Type: model.WasteGlass})
	nameDays := []model.NameDay{{Date: calendar.Date(2026, time.May, 20), Names: "Hanna"}}

	assert.Equal(t, ical.GenerateWasteIcalAt(data, stamp), ical.Generate(ical.FeedWaste, data, nameDays, 2026, stamp))
	assert.Equal(t, ical.GenerateNameDayIcalAt(nameDays, 2026, stamp), ical.Generate(ical.FeedNameDay, data, nameDays, 2026, stamp))
	assert.Equal(t, "", ical.Generate(ical.Feed(0), data, nameDays, 2026, stamp))
}
