package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Formats lists the report output formats accepted by the CLI.
var Formats = []string{"text", "json", "markdown", "xlsx"}

// Config holds process-wide settings for sprintsum.
type Config struct {
	LogLevel      string
	LogJSON       bool
	NoColor       bool
	DefaultFormat string
	WatchDebounce time.Duration
	// IconBaseURL, when set, makes markdown output link priority icons as
	// {IconBaseURL}/{tier}.svg.
	IconBaseURL string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "warn",
		LogJSON:       false,
		NoColor:       false,
		DefaultFormat: "text",
		WatchDebounce: 300 * time.Millisecond,
	}
}

// Load reads an optional .env file and then SPRINTSUM_* environment
// variables, falling back to defaults for unset or invalid values.
// Variables already present in the environment win over .env entries.
func Load(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)
	return LoadFromEnv()
}

// LoadFromEnv reads configuration from the process environment only.
func LoadFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SPRINTSUM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("SPRINTSUM_LOG_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogJSON = b
		}
	}
	if v := os.Getenv("SPRINTSUM_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
	// https://no-color.org: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	if v := os.Getenv("SPRINTSUM_FORMAT"); v != "" {
		if f := strings.ToLower(strings.TrimSpace(v)); IsFormat(f) {
			cfg.DefaultFormat = f
		}
	}
	if v := os.Getenv("SPRINTSUM_WATCH_DEBOUNCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WatchDebounce = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("SPRINTSUM_ICON_BASE_URL"); v != "" {
		cfg.IconBaseURL = strings.TrimRight(strings.TrimSpace(v), "/")
	}

	return cfg
}

// IsFormat reports whether f names a supported output format.
func IsFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
