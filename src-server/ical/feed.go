// Package ical serializes calendar data into the waste and nameday
// iCalendar feeds and names the files they are published under.
package ical

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"naptar/src-server/model"
)

const ContentType = "text/calendar;charset=utf-8"

type Feed int

const (
	FeedWaste Feed = iota + 1
	FeedNameDay
)

var Feeds = []Feed{FeedWaste, FeedNameDay}

// URL slug of the feed
func (f Feed) String() string {
	switch f {
	case FeedWaste:
		return "waste"
	case FeedNameDay:
		return "nameday"
	default:
		return "unknown"
	}
}

// File name prefix, the year is appended
func (f Feed) Prefix() string {
	switch f {
	case FeedWaste:
		return "martonvasar_hulladek"
	case FeedNameDay:
		return "magyar_nevnapok"
	default:
		return ""
	}
}

// Title shown next to the download and subscribe links
func (f Feed) Title() string {
	switch f {
	case FeedWaste:
		return "Hulladéknaptár"
	case FeedNameDay:
		return "Magyar Névnapok"
	default:
		return ""
	}
}

func (f Feed) Valid() bool {
	return f == FeedWaste || f == FeedNameDay
}

// Get {Prefix}_{Year}.ics
func (f Feed) FileName(year int) string {
	return fmt.Sprintf("%s_%d.ics", f.Prefix(), year)
}

// Path of the subscription file relative to the site root
func (f Feed) SubscriptionPath(year int) string {
	return "data/" + f.FileName(year)
}

// Absolute subscription URL, or the bare path when base is empty
func (f Feed) SubscriptionURL(base string, year int) string {
	if base == "" {
		return "/" + f.SubscriptionPath(year)
	}
	return strings.TrimSuffix(base, "/") + "/" + f.SubscriptionPath(year)
}

// Parse a feed slug ("waste" or "nameday")
func ParseFeed(s string) (Feed, error) {
	for _, f := range Feeds {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown feed %q", s)
}

// Split a {Prefix}_{Year}.ics file name into its feed and year
func ParseFileName(name string) (Feed, int, error) {
	base, ok := strings.CutSuffix(name, ".ics")
	if !ok {
		return 0, 0, fmt.Errorf("not an ics file: %q", name)
	}
	sep := strings.LastIndexByte(base, '_')
	if sep < 0 {
		return 0, 0, fmt.Errorf("missing year in %q", name)
	}
	year, err := strconv.Atoi(base[sep+1:])
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, fmt.Errorf("invalid year in %q", name)
	}
	for _, f := range Feeds {
		if f.Prefix() == base[:sep] {
			return f, year, nil
		}
	}
	return 0, 0, fmt.Errorf("unknown feed in %q", name)
}

// Generate the text of a feed, "" when it would have no events
func Generate(feed Feed, data model.CalendarData, nameDays []model.NameDay, year int, now time.Time) string {
	switch feed {
	case FeedWaste:
		return GenerateWasteIcalAt(data, now)
	case FeedNameDay:
		return GenerateNameDayIcalAt(nameDays, year, now)
	default:
		return ""
	}
}
