package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"naptar/src-server/model"

	"github.com/tidwall/gjson"
)

const DefaultNagerURL = "https://date.nager.at/api/v3"

// Holiday source backed by the Nager.Date public holiday API
type Nager struct {
	baseURL string
	country string
	client  *http.Client
}

func NewNager(baseURL string, timeout time.Duration) *Nager {
	if baseURL == "" {
		baseURL = DefaultNagerURL
	}
	return &Nager{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		country: "HU",
		client:  &http.Client{Timeout: timeout},
	}
}

func (n *Nager) Key(year int) string {
	return fmt.Sprintf("%s/PublicHolidays/%d/%s", n.baseURL, year, n.country)
}

func (n *Nager) Holidays(ctx context.Context, year int) ([]model.Holiday, error) {
	body, err := getBody(ctx, n.client, n.Key(year))
	if err != nil {
		return nil, err
	}
	return ParseNager(body)
}

// Parse a Nager.Date PublicHolidays response. Unknown fields are ignored;
// anything but a JSON array is an error.
func ParseNager(body []byte) ([]model.Holiday, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("holiday response is not valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("holiday response is not a JSON array")
	}

	holidays := make([]model.Holiday, 0, len(root.Array()))
	root.ForEach(func(_, item gjson.Result) bool {
		h := model.Holiday{
			Date:      item.Get("date").String(),
			LocalName: item.Get("localName").String(),
			Name:      item.Get("name").String(),
		}
		for _, t := range item.Get("types").Array() {
			h.Types = append(h.Types, t.String())
		}
		if h.LocalName == "" {
			h.LocalName = h.Name
		}
		holidays = append(holidays, h)
		return true
	})
	return holidays, nil
}
