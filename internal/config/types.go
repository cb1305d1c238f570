package config

// ColorMode selects when console diagnostics are colored.
type ColorMode string

const (
	// ColorAuto colors output only on an interactive, color-capable terminal
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colored output
	ColorAlways ColorMode = "always"
	// ColorNever disables colored output
	ColorNever ColorMode = "never"
)

// Config is the top-level TOML configuration shared by all tools.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Logging LoggingConfig `toml:"logging"`
	Metrics MetricsConfig `toml:"metrics"`
	Console ConsoleConfig `toml:"console"`
}

// OutputConfig names the results file of each tool.
type OutputConfig struct {
	ConvertFile    string `toml:"convert_file"`
	StatisticsFile string `toml:"statistics_file"`
	WordCountFile  string `toml:"wordcount_file"`
}

// LoggingConfig controls the slog handlers.
type LoggingConfig struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `toml:"textfile"`
}

// ConsoleConfig controls console rendering.
type ConsoleConfig struct {
	Color ColorMode `toml:"color"`
}
