// Package config loads the eventbuilder CLI configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvLogLevel  = "EVENTBUILDER_LOG_LEVEL"
	EnvLogFormat = "EVENTBUILDER_LOG_FORMAT"

	defaultLogLevel  = slog.LevelWarn
	defaultLogFormat = LogFormatText
)

var ErrInvalidLogLevel = errors.New("invalid log level")
var ErrInvalidLogFormat = errors.New("invalid log format")

type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

type Config struct {
	LogLevel  slog.Level
	LogFormat LogFormat
}

// Default returns the configuration used when nothing is set in the environment.
func Default() Config {
	return Config{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// Load reads an optional .env file from the given paths (default: ./.env) and then the environment.
// A missing .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...) // Loads .env file if present

	return FromLookup(os.LookupEnv)
}

// FromLookup builds the Config from a lookup function shaped like os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if raw, ok := lookup(EnvLogLevel); ok && raw != "" {
		level, err := ParseLogLevel(raw)
		if err != nil {
			return Config{}, err
		}

		cfg.LogLevel = level
	}

	if raw, ok := lookup(EnvLogFormat); ok && raw != "" {
		format, err := ParseLogFormat(raw)
		if err != nil {
			return Config{}, err
		}

		cfg.LogFormat = format
	}

	return cfg, nil
}

func ParseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, raw)
	}

	return level, nil
}

func ParseLogFormat(raw string) (LogFormat, error) {
	switch format := LogFormat(strings.ToLower(strings.TrimSpace(raw))); format {
	case LogFormatText, LogFormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLogFormat, raw)
	}
}
