package metric

import (
	"time"

	"naptar/src-server/cache"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters of the calendar engine. A nil *Metrics is valid and records
// nothing, so packages can take one without caring whether it is wired.
type Metrics struct {
	cacheRequests   *prometheus.CounterVec
	sourceFailures  *prometheus.CounterVec
	feedsGenerated  *prometheus.CounterVec
	aggregationTime prometheus.Histogram
}

// Create the metrics and register them on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		cacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "naptar_cache_requests_total",
			Help: "Source cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		sourceFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "naptar_source_failures_total",
			Help: "Sources that degraded to an empty result",
		}, []string{"source"}),
		feedsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "naptar_feed_generated_total",
			Help: "Non-empty iCalendar feeds generated",
		}, []string{"feed"}),
		aggregationTime: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "naptar_aggregation_duration_seconds",
			Help:    "Time spent building the calendar data of a year",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
}

// Observer counting cache lookups
func (m *Metrics) CacheObserver() cache.Observer {
	return func(_ string, result cache.Result) {
		if m == nil {
			return
		}
		m.cacheRequests.WithLabelValues(string(result)).Inc()
	}
}

func (m *Metrics) SourceFailed(source string) {
	if m == nil {
		return
	}
	m.sourceFailures.WithLabelValues(source).Inc()
}

func (m *Metrics) FeedGenerated(feed string) {
	if m == nil {
		return
	}
	m.feedsGenerated.WithLabelValues(feed).Inc()
}

func (m *Metrics) ObserveAggregation(d time.Duration) {
	if m == nil {
		return
	}
	m.aggregationTime.Observe(d.Seconds())
}
