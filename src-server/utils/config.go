package utils

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/viper"
)

const (
	HolidaySourceNager   = "nager"
	HolidaySourceBuiltin = "builtin"
)

type Config struct {
	port     string
	logLevel slog.Level

	holidaySource  string
	holidayAPIURL  string
	fetchTimeout   time.Duration
	wasteDataYears []int
	wasteDataURL   string
	nameDayDataURL string

	publicURL          string
	staticWebClientDir string

	exportDir      string
	exportSchedule string
}

// Register the defaults of every key and read them from the environment.
// Flags bound to v take precedence over the environment.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("HOLIDAY_SOURCE", HolidaySourceNager)
	v.SetDefault("HOLIDAY_API_URL", "https://date.nager.at/api/v3")
	v.SetDefault("FETCH_TIMEOUT", "10s")
	v.SetDefault("WASTE_DATA_YEARS", "2026")
	v.SetDefault("WASTE_DATA_URL", "waste-calendar-%d.json")
	v.SetDefault("NAMEDAY_DATA_URL", "namedays.json")
	v.SetDefault("PUBLIC_URL", "")
	v.SetDefault("STATIC_WEB_CLIENT_DIR", "")
	v.SetDefault("EXPORT_DIR", "")
	v.SetDefault("EXPORT_SCHEDULE", "@daily")
	return v
}

func NewConfig(v *viper.Viper) (*Config, error) {
	c := &Config{
		port:           v.GetString("PORT"),
		holidayAPIURL:  strings.TrimSuffix(v.GetString("HOLIDAY_API_URL"), "/"),
		wasteDataURL:   v.GetString("WASTE_DATA_URL"),
		nameDayDataURL: v.GetString("NAMEDAY_DATA_URL"),
		publicURL:      strings.TrimSuffix(v.GetString("PUBLIC_URL"), "/"),
		exportSchedule: v.GetString("EXPORT_SCHEDULE"),
	}
	slog.Debug("env", "PORT", c.port)

	if err := c.logLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	switch source := strings.ToLower(v.GetString("HOLIDAY_SOURCE")); source {
	case HolidaySourceNager, HolidaySourceBuiltin:
		c.holidaySource = source
	default:
		return nil, fmt.Errorf("invalid HOLIDAY_SOURCE %q, want %s or %s", source, HolidaySourceNager, HolidaySourceBuiltin)
	}
	slog.Debug("env", "HOLIDAY_SOURCE", c.holidaySource, "HOLIDAY_API_URL", c.holidayAPIURL)

	timeout, err := time.ParseDuration(v.GetString("FETCH_TIMEOUT"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT %q", v.GetString("FETCH_TIMEOUT"))
	}
	c.fetchTimeout = timeout

	if c.wasteDataYears, err = parseYears(v.GetString("WASTE_DATA_YEARS")); err != nil {
		return nil, fmt.Errorf("invalid WASTE_DATA_YEARS: %w", err)
	}
	if strings.Count(c.wasteDataURL, "%d") != 1 {
		return nil, fmt.Errorf("WASTE_DATA_URL must contain exactly one %%d: %q", c.wasteDataURL)
	}
	slog.Debug("env", "WASTE_DATA_YEARS", c.wasteDataYears, "WASTE_DATA_URL", c.wasteDataURL, "NAMEDAY_DATA_URL", c.nameDayDataURL)

	if dir := v.GetString("STATIC_WEB_CLIENT_DIR"); dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("can't get info of STATIC_WEB_CLIENT_DIR: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("STATIC_WEB_CLIENT_DIR is not a directory: %s", dir)
		}
		c.staticWebClientDir = filepath.Clean(dir)
		slog.Debug("env", "STATIC_WEB_CLIENT_DIR", c.staticWebClientDir)
	}

	if dir := v.GetString("EXPORT_DIR"); dir != "" {
		c.exportDir = filepath.Clean(dir)
		slog.Debug("env", "EXPORT_DIR", c.exportDir, "EXPORT_SCHEDULE", c.exportSchedule)
	}

	return c, nil
}

// "2026, 2027" or "2026 2027"
func parseYears(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	years := make([]int, 0, len(fields))
	for _, field := range fields {
		year, err := strconv.Atoi(field)
		if err != nil || year < 1 || year > 9999 {
			return nil, fmt.Errorf("not a year: %q", field)
		}
		years = append(years, year)
	}
	return years, nil
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get LOG_LEVEL env, default to debug
func (c *Config) GetLogLevel() slog.Level {
	return c.logLevel
}

// Get HOLIDAY_SOURCE env, nager or builtin
func (c *Config) GetHolidaySource() string {
	return c.holidaySource
}

// Get HOLIDAY_API_URL env without trailing slash
func (c *Config) GetHolidayAPIURL() string {
	return c.holidayAPIURL
}

// Get FETCH_TIMEOUT env, default to 10s
func (c *Config) GetFetchTimeout() time.Duration {
	return c.fetchTimeout
}

// Get WASTE_DATA_YEARS env
func (c *Config) GetWasteDataYears() []int {
	return c.wasteDataYears
}

// Get WASTE_DATA_URL env
func (c *Config) GetWasteDataURL() string {
	return c.wasteDataURL
}

// Get NAMEDAY_DATA_URL env
func (c *Config) GetNameDayDataURL() string {
	return c.nameDayDataURL
}

// Get PUBLIC_URL env without trailing slash
func (c *Config) GetPublicURL() string {
	return c.publicURL
}

// Get STATIC_WEB_CLIENT_DIR env, empty when not serving a web client
func (c *Config) GetStaticWebClientDir() string {
	return c.staticWebClientDir
}

// Get EXPORT_DIR env, empty disables the scheduled export
func (c *Config) GetExportDir() string {
	return c.exportDir
}

// Get EXPORT_SCHEDULE env, default to @daily
func (c *Config) GetExportSchedule() string {
	return c.exportSchedule
}
