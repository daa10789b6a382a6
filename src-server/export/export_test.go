package export_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"naptar/src-server/aggregator"
	"naptar/src-server/export"
	"naptar/src-server/ical"
	"naptar/src-server/metric"
	"naptar/src-server/source"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2026, time.January, 15, 8, 30, 0, 0, time.UTC)

func newExporter(reg prometheus.Registerer) *export.Exporter {
	metrics := metric.New(reg)
	agg := aggregator.New(aggregator.Options{Holidays: source.NewBuiltin(), Metrics: metrics})
	return export.New(agg, metrics).WithClock(func() time.Time { return stamp })
}

func TestExportSupportedYear(t *testing.T) {
	dir := t.TempDir()
	reg := prometheus.NewRegistry()
	exporter := newExporter(reg)

	report, err := exporter.Export(context.Background(), dir, 2026)
	require.NoError(t, err)
	assert.Empty(t, report.Skipped)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "martonvasar_hulladek_2026.ics"),
		filepath.Join(dir, "magyar_nevnapok_2026.ics"),
		filepath.Join(dir, "calendar_2026.json"),
	}, report.Written)

	waste, err := os.ReadFile(filepath.Join(dir, "martonvasar_hulladek_2026.ics"))
	require.NoError(t, err)
	assert.Equal(t, 100, strings.Count(string(waste), "BEGIN:VEVENT"))

	nameDays, err := os.ReadFile(filepath.Join(dir, "magyar_nevnapok_2026.ics"))
	require.NoError(t, err)
	assert.Equal(t, 365, strings.Count(string(nameDays), "BEGIN:VEVENT"))

	snapshot, err := os.ReadFile(filepath.Join(dir, "calendar_2026.json"))
	require.NoError(t, err)
	var result aggregator.Result
	require.NoError(t, json.Unmarshal(snapshot, &result))
	assert.Len(t, result.NameDays, 365)
	require.Contains(t, result.CalendarData, "2026-08-20")
	assert.NotNil(t, result.CalendarData["2026-08-20"].Holiday)

	// one series per feed
	count, err := testutil.GatherAndCount(reg, "naptar_feed_generated_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestExportIsIdempotentForSnapshot(t *testing.T) {
	dir := t.TempDir()
	exporter := newExporter(prometheus.NewRegistry())

	_, err := exporter.Export(context.Background(), dir, 2026)
	require.NoError(t, err)
	report, err := exporter.Export(context.Background(), dir, 2026)
	require.NoError(t, err)
	assert.Contains(t, report.Unchanged, filepath.Join(dir, "calendar_2026.json"))
	// fixed clock, so the feeds are byte-identical too
	assert.Empty(t, report.Written)
}

func TestExportKeepsFeedsWhenOnlyStampChanged(t *testing.T) {
	dir := t.TempDir()
	agg := aggregator.New(aggregator.Options{Holidays: source.NewBuiltin()})
	clock := stamp
	exporter := export.New(agg, nil).WithClock(func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	})

	first, err := exporter.Export(context.Background(), dir, 2026)
	require.NoError(t, err)
	require.Len(t, first.Written, 3)
	path := filepath.Join(dir, "martonvasar_hulladek_2026.ics")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	second, err := exporter.Export(context.Background(), dir, 2026)
	require.NoError(t, err)
	assert.Empty(t, second.Written)
	assert.ElementsMatch(t, first.Written, second.Unchanged)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "the first DTSTAMP stays in place")
}

func TestExportRewritesChangedFeed(t *testing.T) {
	dir := t.TempDir()
	exportWith := func(names string) export.Report {
		loader := source.NewLoader(time.Second).WithFS(fstest.MapFS{
			"namedays.json": {Data: []byte(names)},
		})
		agg := aggregator.New(aggregator.Options{Loader: loader, Holidays: source.NewBuiltin()})
		report, err := export.New(agg, nil).Export(context.Background(), dir, 2026)
		require.NoError(t, err)
		return report
	}

	exportWith(`{"01-01": "Fruzsina"}`)
	report := exportWith(`{"01-01": "Fruzsina, Aglája"}`)
	assert.Contains(t, report.Written, filepath.Join(dir, "magyar_nevnapok_2026.ics"))

	content, err := os.ReadFile(filepath.Join(dir, "magyar_nevnapok_2026.ics"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Aglája")
}

func TestExportRemovesStaleFeed(t *testing.T) {
	dir := t.TempDir()
	_, err := newExporter(prometheus.NewRegistry()).Export(context.Background(), dir, 2026)
	require.NoError(t, err)
	path := filepath.Join(dir, "martonvasar_hulladek_2026.ics")
	require.FileExists(t, path)

	// the waste table of 2026 is gone, so the feed is empty now
	loader := source.NewLoader(time.Second).WithFS(fstest.MapFS{
		"namedays.json": {Data: []byte(`{"01-01": "Fruzsina"}`)},
	})
	agg := aggregator.New(aggregator.Options{Loader: loader, Holidays: source.NewBuiltin()})
	report, err := export.New(agg, nil).Export(context.Background(), dir, 2026)
	require.NoError(t, err)
	assert.Equal(t, []ical.Feed{ical.FeedWaste}, report.Skipped)
	assert.Equal(t, []string{path}, report.Removed)
	assert.NoFileExists(t, path)
}

func TestExportYearWithoutWaste(t *testing.T) {
	dir := t.TempDir()
	exporter := newExporter(prometheus.NewRegistry())

	report, err := exporter.Export(context.Background(), dir, 2025)
	require.NoError(t, err)
	assert.Equal(t, []ical.Feed{ical.FeedWaste}, report.Skipped)
	assert.NoFileExists(t, filepath.Join(dir, "martonvasar_hulladek_2025.ics"))
	assert.FileExists(t, filepath.Join(dir, "magyar_nevnapok_2025.ics"))
	assert.FileExists(t, filepath.Join(dir, "calendar_2025.json"))
	assert.Empty(t, report.Removed)
}

func TestFeed(t *testing.T) {
	exporter := newExporter(prometheus.NewRegistry())

	text, err := exporter.Feed(context.Background(), ical.FeedNameDay, 2024)
	require.NoError(t, err)
	assert.Contains(t, text, "SUMMARY:Névnap: Szökőnap")

	_, err = exporter.Feed(context.Background(), ical.Feed(7), 2024)
	assert.Error(t, err)
}
