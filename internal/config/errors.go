package config

import "errors"

// Error definitions for the config package
var (
	// ErrInvalidConfigPath is returned when the config file path is invalid
	ErrInvalidConfigPath = errors.New("invalid config file path")

	// ErrConfigRead is returned when the config file cannot be read
	ErrConfigRead = errors.New("failed to read config file")

	// ErrConfigParse is returned when the config file is not valid TOML or
	// contains unknown keys
	ErrConfigParse = errors.New("failed to parse config file")

	// ErrInvalidLogLevel is returned when logging.level is not a known level
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidColorMode is returned when console.color is not auto, always or never
	ErrInvalidColorMode = errors.New("invalid color mode")

	// ErrEmptyOutputPath is returned when an output file name resolves to an empty string
	ErrEmptyOutputPath = errors.New("output file path must not be empty")
)
