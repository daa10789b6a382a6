package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"naptar/src-server/export"
	"naptar/src-server/utils"

	"github.com/robfig/cron/v3"
)

const (
	WORKER_COUNT   = 2
	EXPORT_TIMEOUT = 5 * time.Minute
)

// robfig/cron logging through slog
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

// Regenerate the exported files of the current and the next year on
// EXPORT_SCHEDULE, once right away, until graceful shutdown. Returns a nil
// cron when EXPORT_DIR is not set.
func Export(as *utils.AppState) (*cron.Cron, error) {
	dir := as.Config.GetExportDir()
	if dir == "" {
		slog.Debug("EXPORT_DIR not set, scheduled export disabled")
		return nil, nil
	}

	exporter := export.New(as.Aggregator, as.Metrics)
	ctx, cancel := context.WithCancel(context.Background())
	job := func() {
		year := time.Now().Year()
		ExportYears(ctx, exporter, dir, []int{year, year + 1})
	}

	c := cron.New(
		cron.WithLogger(cronLogger{}),
		cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{})),
	)
	if _, err := c.AddFunc(as.Config.GetExportSchedule(), job); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid EXPORT_SCHEDULE %q: %w", as.Config.GetExportSchedule(), err)
	}
	c.Start()
	go job()

	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	go func() {
		<-*gracefulShutdownCh
		cancel()
		<-c.Stop().Done()
		slog.Debug("scheduled export stopped")
	}()

	slog.Info("scheduled export started", "dir", dir, "schedule", as.Config.GetExportSchedule())
	return c, nil
}

// Export every year into dir with a small worker pool. Failures are logged,
// reports of successful years are returned in the order of years.
func ExportYears(ctx context.Context, exporter *export.Exporter, dir string, years []int) []export.Report {
	jobs := make(chan int, len(years))
	results := make([]*export.Report, len(years))
	var wg sync.WaitGroup

	for range WORKER_COUNT {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				jobCtx, cancel := context.WithTimeout(ctx, EXPORT_TIMEOUT)
				report, err := exporter.Export(jobCtx, dir, years[i])
				cancel()
				if err != nil {
					slog.Warn("export failed", "year", years[i], "dir", dir, "error", err)
					continue
				}
				slog.Info("export done",
					"year", report.Year,
					"written", len(report.Written),
					"unchanged", len(report.Unchanged),
					"skipped", len(report.Skipped),
				)
				results[i] = &report
			}
		}()
	}

	for i := range years {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	reports := make([]export.Report, 0, len(years))
	for _, report := range results {
		if report != nil {
			reports = append(reports, *report)
		}
	}
	return reports
}
