// Package config loads the TOML configuration shared by the text tools and
// fills in defaults for anything the file leaves out.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Loader reads configuration files.
type Loader struct {
	readFile func(string) ([]byte, error)
}

// NewLoader creates a new config loader backed by the local filesystem
func NewLoader() *Loader {
	return &Loader{readFile: os.ReadFile}
}

// LoadConfig reads, decodes and validates the file at path. An empty path
// yields the default configuration.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	cleanPath := filepath.Clean(path)
	if cleanPath == "." || cleanPath == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidConfigPath, path)
	}

	content, err := l.readFile(cleanPath) // #nosec G304 - path is cleaned above
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigRead, err)
	}
	return Parse(content)
}

// Parse decodes TOML content, rejecting unknown keys, then applies defaults
// and validates the result.
func Parse(content []byte) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
