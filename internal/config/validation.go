package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks a configuration after defaults have been applied.
func Validate(cfg *Config) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Logging.Level)
	}

	switch cfg.Console.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q (expected auto, always or never)", ErrInvalidColorMode, cfg.Console.Color)
	}

	outputs := []struct {
		key  string
		path string
	}{
		{"output.convert_file", cfg.Output.ConvertFile},
		{"output.statistics_file", cfg.Output.StatisticsFile},
		{"output.wordcount_file", cfg.Output.WordCountFile},
	}
	for _, o := range outputs {
		if strings.TrimSpace(o.path) == "" {
			return fmt.Errorf("%w: %s", ErrEmptyOutputPath, o.key)
		}
	}
	return nil
}

// SlogLevel returns the parsed logging level. Validate must have succeeded.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelWarn
	}
	return level
}
