package config

// Default values for configuration fields
const (
	DefaultConvertFile    = "ConvertionResults.txt"
	DefaultStatisticsFile = "StatisticsResults.txt"
	DefaultWordCountFile  = "WordCountResults.txt"
	DefaultLogLevel       = "warn"
	DefaultColorMode      = ColorAuto
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields with their default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.ConvertFile == "" {
		cfg.Output.ConvertFile = DefaultConvertFile
	}
	if cfg.Output.StatisticsFile == "" {
		cfg.Output.StatisticsFile = DefaultStatisticsFile
	}
	if cfg.Output.WordCountFile == "" {
		cfg.Output.WordCountFile = DefaultWordCountFile
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Console.Color == "" {
		cfg.Console.Color = DefaultColorMode
	}
}
