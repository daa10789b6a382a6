package utils_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"naptar/src-server/calendar"
	"naptar/src-server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	config, err := utils.NewConfig(utils.NewViper())
	require.NoError(t, err)

	assert.Equal(t, "8080", config.GetPort())
	assert.Equal(t, slog.LevelDebug, config.GetLogLevel())
	assert.Equal(t, utils.HolidaySourceNager, config.GetHolidaySource())
	assert.Equal(t, "https://date.nager.at/api/v3", config.GetHolidayAPIURL())
	assert.Equal(t, 10*time.Second, config.GetFetchTimeout())
	assert.Equal(t, []int{2026}, config.GetWasteDataYears())
	assert.Equal(t, "waste-calendar-%d.json", config.GetWasteDataURL())
	assert.Equal(t, "namedays.json", config.GetNameDayDataURL())
	assert.Equal(t, "", config.GetPublicURL())
	assert.Equal(t, "", config.GetStaticWebClientDir())
	assert.Equal(t, "", config.GetExportDir())
	assert.Equal(t, "@daily", config.GetExportSchedule())
}

func TestConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("HOLIDAY_SOURCE", "builtin")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("WASTE_DATA_YEARS", "2026, 2027")
	t.Setenv("PUBLIC_URL", "https://naptar.example/")
	t.Setenv("STATIC_WEB_CLIENT_DIR", dir)
	t.Setenv("EXPORT_DIR", filepath.Join(dir, "out"))

	config, err := utils.NewConfig(utils.NewViper())
	require.NoError(t, err)
	assert.Equal(t, "9000", config.GetPort())
	assert.Equal(t, slog.LevelWarn, config.GetLogLevel())
	assert.Equal(t, utils.HolidaySourceBuiltin, config.GetHolidaySource())
	assert.Equal(t, 3*time.Second, config.GetFetchTimeout())
	assert.Equal(t, []int{2026, 2027}, config.GetWasteDataYears())
	assert.Equal(t, "https://naptar.example", config.GetPublicURL())
	assert.Equal(t, dir, config.GetStaticWebClientDir())
	assert.Equal(t, filepath.Join(dir, "out"), config.GetExportDir())
}

func TestConfigInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := map[string]string{
		"LOG_LEVEL":             "chatty",
		"HOLIDAY_SOURCE":        "calendarific",
		"FETCH_TIMEOUT":         "soon",
		"WASTE_DATA_YEARS":      "2026,next",
		"WASTE_DATA_URL":        "waste.json",
		"STATIC_WEB_CLIENT_DIR": file,
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := utils.NewConfig(utils.NewViper())
			assert.Error(t, err)
		})
	}
}

func newAppState(t *testing.T) *utils.AppState {
	t.Helper()
	t.Setenv("HOLIDAY_SOURCE", "builtin")
	config, err := utils.NewConfig(utils.NewViper())
	require.NoError(t, err)
	return utils.NewAppState(config)
}

func TestResolveDate(t *testing.T) {
	as := newAppState(t)
	now := time.Date(2026, time.May, 19, 10, 0, 0, 0, time.UTC)

	date, err := as.ResolveDate(" 2026-08-20 ", now)
	require.NoError(t, err)
	assert.Equal(t, calendar.Date(2026, time.August, 20), date)

	date, err = as.ResolveDate("tomorrow", now)
	require.NoError(t, err)
	assert.Equal(t, calendar.Date(2026, time.May, 20), date)

	_, err = as.ResolveDate("", now)
	assert.Error(t, err)
	_, err = as.ResolveDate("xyzzy", now)
	assert.Error(t, err)
}

func TestGracefulShutdown(t *testing.T) {
	as := newAppState(t)
	first := as.CreateGracefulShutdownChan()
	second := as.CreateGracefulShutdownChan()

	as.GracefulShutdown()
	for _, ch := range []*chan struct{}{first, second} {
		select {
		case <-*ch:
		default:
			t.Fatal("shutdown channel not closed")
		}
	}
	assert.True(t, as.Aggregator.SupportsWaste(2026))
}

func TestCleanupString(t *testing.T) {
	assert.Equal(t, "next friday", utils.CleanupString("  next   friday. "))
	assert.Equal(t, "Üveg", utils.CleanupString("U\u0308veg"))
}

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ics")

	hash, err := utils.GetFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, "", hash)

	require.NoError(t, os.WriteFile(path, []byte("BEGIN:VCALENDAR"), 0o644))
	hash, err = utils.GetFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, utils.GetContentHash([]byte("BEGIN:VCALENDAR")), hash)
	assert.NotEqual(t, utils.GetContentHash([]byte("other")), hash)
}
