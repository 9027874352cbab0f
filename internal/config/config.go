// Package config loads runtime settings from the environment and the
// department table from YAML.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Config holds process-wide settings.
type Config struct {
	DepartmentsPath string
	LogBuild        bool
	LogLevel        slog.Level
	Lang            language.Tag
}

// DefaultConfig returns a Config using the built-in departments, English
// labels and logging disabled.
func DefaultConfig() Config {
	return Config{
		LogLevel: slog.LevelInfo,
		Lang:     language.English,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset or unparsable values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ADMISSIONS_DEPARTMENTS"); v != "" {
		cfg.DepartmentsPath = v
	}
	if v := os.Getenv("ADMISSIONS_LOG"); v != "" {
		cfg.LogBuild, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ADMISSIONS_LOG_LEVEL"); v != "" {
		if lvl, ok := parseLevel(v); ok {
			cfg.LogLevel = lvl
		}
	}

	locale := os.Getenv("ADMISSIONS_LANG")
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	if locale != "" {
		cfg.Lang = MatchLanguage(locale)
	}

	return cfg
}

func parseLevel(s string) (slog.Level, bool) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, false
	}
	return lvl, true
}
