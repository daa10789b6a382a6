package route

import (
	"fmt"
	"net/http"

	"naptar/src-server/ical"
	"naptar/src-server/utils"
)

type FeedRespBody struct {
	Feed            string `json:"feed"`
	Title           string `json:"title"`
	FileName        string `json:"fileName"`
	DownloadURL     string `json:"downloadUrl"`
	SubscriptionURL string `json:"subscriptionUrl"`
	Available       bool   `json:"available"`
}

func Feeds(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("GET /api/feeds/{year}", func(w http.ResponseWriter, r *http.Request) {
		year, err := parseYear(r.PathValue("year"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		feeds := make([]FeedRespBody, 0, len(ical.Feeds))
		for _, feed := range ical.Feeds {
			feeds = append(feeds, FeedRespBody{
				Feed:            feed.String(),
				Title:           feed.Title(),
				FileName:        feed.FileName(year),
				DownloadURL:     fmt.Sprintf("/ical/%s/%d", feed, year),
				SubscriptionURL: feed.SubscriptionURL(as.Config.GetPublicURL(), year),
				Available:       feed != ical.FeedWaste || as.Aggregator.SupportsWaste(year),
			})
		}
		writeJSON(w, http.StatusOK, feeds)
	})
}
