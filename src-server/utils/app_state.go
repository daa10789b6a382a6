package utils

import (
	"log/slog"
	"os"
	"sync"

	"naptar/src-server/aggregator"
	"naptar/src-server/metric"
	"naptar/src-server/source"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type AppState struct {
	Config     *Config
	Registry   *prometheus.Registry
	Metrics    *metric.Metrics
	Aggregator *aggregator.Aggregator
	When       *when.Parser

	// receives SIGINT/SIGTERM, or a signal from a component that failed
	AppCloseSignalChan chan os.Signal

	mu                    sync.Mutex
	gracefulShutdownChans []chan struct{}
}

func NewAppState(config *Config) *AppState {
	as := &AppState{
		Config:             config,
		AppCloseSignalChan: make(chan os.Signal, 1),
	}

	// metrics
	as.Registry = prometheus.NewRegistry()
	as.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	as.Metrics = metric.New(as.Registry)

	// date parser
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	// calendar sources
	var holidays source.HolidaySource
	switch config.GetHolidaySource() {
	case HolidaySourceBuiltin:
		holidays = source.NewBuiltin()
	default:
		holidays = source.NewNager(config.GetHolidayAPIURL(), config.GetFetchTimeout())
	}
	as.Aggregator = aggregator.New(aggregator.Options{
		Loader:     source.NewLoader(config.GetFetchTimeout()),
		Holidays:   holidays,
		Metrics:    as.Metrics,
		WasteYears: config.GetWasteDataYears(),
		WasteURL:   config.GetWasteDataURL(),
		NameDayURL: config.GetNameDayDataURL(),
	})

	return as
}

// Get a channel that is closed on graceful shutdown
func (as *AppState) CreateGracefulShutdownChan() *chan struct{} {
	as.mu.Lock()
	defer as.mu.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, ch)
	return &ch
}

// Close every channel handed out by CreateGracefulShutdownChan
func (as *AppState) GracefulShutdown() {
	as.mu.Lock()
	defer as.mu.Unlock()
	for _, ch := range as.gracefulShutdownChans {
		close(ch)
	}
	slog.Debug("graceful shutdown signaled", "listeners", len(as.gracefulShutdownChans))
	as.gracefulShutdownChans = nil
}
