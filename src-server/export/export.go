// Package export writes the feeds and a JSON snapshot of a year to a
// directory, ready for static hosting under data/.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"naptar/src-server/aggregator"
	"naptar/src-server/ical"
	"naptar/src-server/metric"
	"naptar/src-server/utils"
)

type Exporter struct {
	aggregator *aggregator.Aggregator
	metrics    *metric.Metrics
	now        func() time.Time
}

// Report is the outcome of exporting one year.
type Report struct {
	Year int
	// Files rewritten by this export.
	Written []string
	// Files left untouched because their content did not change.
	Unchanged []string
	// Feeds without events. No file is written for them.
	Skipped []ical.Feed
	// Files of skipped feeds left over from an earlier export.
	Removed []string
}

func New(agg *aggregator.Aggregator, metrics *metric.Metrics) *Exporter {
	return &Exporter{
		aggregator: agg,
		metrics:    metrics,
		now:        time.Now,
	}
}

// Use a fixed clock for DTSTAMP
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	e.now = now
	return e
}

// Generate a feed of a year, "" when the feed has no events
func (e *Exporter) Feed(ctx context.Context, feed ical.Feed, year int) (string, error) {
	if !feed.Valid() {
		return "", fmt.Errorf("unknown feed %d", feed)
	}
	result, err := e.aggregator.GetCalendarData(ctx, year, feed == ical.FeedWaste)
	if err != nil {
		return "", err
	}
	text := ical.Generate(feed, result.CalendarData, result.NameDays, year, e.now())
	if text != "" {
		e.metrics.FeedGenerated(feed.String())
	}
	return text, nil
}

// Name of the JSON snapshot of a year
func SnapshotName(year int) string {
	return fmt.Sprintf("calendar_%d.json", year)
}

// Write {dir}/{Prefix}_{Year}.ics for every non-empty feed and
// {dir}/calendar_{year}.json
func (e *Exporter) Export(ctx context.Context, dir string, year int) (Report, error) {
	report := Report{Year: year}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return report, fmt.Errorf("can't create export dir: %w", err)
	}

	for _, feed := range ical.Feeds {
		text, err := e.Feed(ctx, feed, year)
		if err != nil {
			return report, fmt.Errorf("can't generate %s feed: %w", feed, err)
		}
		path := filepath.Join(dir, feed.FileName(year))
		if text == "" {
			slog.Info("feed has no events, skipping", "feed", feed, "year", year)
			report.Skipped = append(report.Skipped, feed)
			if err := remove(&report, path); err != nil {
				return report, err
			}
			continue
		}
		if err := e.write(&report, path, []byte(text), isDTStamp); err != nil {
			return report, err
		}
	}

	result, err := e.aggregator.GetCalendarData(ctx, year, false)
	if err != nil {
		return report, fmt.Errorf("can't build calendar data: %w", err)
	}
	snapshot, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return report, fmt.Errorf("can't encode calendar data: %w", err)
	}
	if err := e.write(&report, filepath.Join(dir, SnapshotName(year)), snapshot, nil); err != nil {
		return report, err
	}

	return report, nil
}

// DTSTAMP is the generation time, it changes on every run even when no event did
func isDTStamp(line []byte) bool {
	return bytes.HasPrefix(line, []byte("DTSTAMP"))
}

// Replace path with content unless it already holds the same bytes. Lines
// matched by volatile are left out of the comparison, so a file differing
// only in those lines keeps its old content.
func (e *Exporter) write(report *Report, path string, content []byte, volatile func(line []byte) bool) error {
	same, err := sameContent(path, content, volatile)
	if err != nil {
		return err
	}
	if same {
		report.Unchanged = append(report.Unchanged, path)
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return fmt.Errorf("can't create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("can't write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("can't write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("can't chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("can't move %s into place: %w", path, err)
	}

	slog.Debug("exported file", "path", path, "bytes", len(content))
	report.Written = append(report.Written, path)
	return nil
}

func sameContent(path string, content []byte, volatile func(line []byte) bool) (bool, error) {
	if volatile == nil {
		oldHash, err := utils.GetFileHash(path)
		if err != nil {
			return false, err
		}
		return oldHash == utils.GetContentHash(content), nil
	}

	old, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("can't read %s: %w", path, err)
	}
	return utils.GetContentHash(dropLines(old, volatile)) == utils.GetContentHash(dropLines(content, volatile)), nil
}

func dropLines(content []byte, drop func(line []byte) bool) []byte {
	lines := bytes.SplitAfter(content, []byte("\n"))
	kept := lines[:0]
	for _, line := range lines {
		if !drop(line) {
			kept = append(kept, line)
		}
	}
	return bytes.Join(kept, nil)
}

// Delete the file of a feed that has no events anymore
func remove(report *Report, path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("can't remove stale %s: %w", path, err)
	}
	slog.Info("removed stale feed", "path", path)
	report.Removed = append(report.Removed, path)
	return nil
}
