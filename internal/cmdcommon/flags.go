// Package cmdcommon provides the flag handling and run harness shared by the
// convert, stats and wordcount commands.
package cmdcommon

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Error definitions for command-line parsing
var (
	ErrInputRequired    = errors.New("exactly one input file path must be provided")
	ErrConflictingColor = errors.New("-color and -no-color are mutually exclusive")
)

// Flags holds the parsed command line.
type Flags struct {
	ConfigPath  string
	Output      string
	LogLevel    string
	LogDir      string
	MetricsFile string
	Color       bool
	NoColor     bool
	Input       string
}

// ParseArgs parses args for the named tool. flag.ErrHelp is returned as-is
// when -h or -help is given.
func ParseArgs(tool string, args []string, stderr io.Writer) (*Flags, *flag.FlagSet, error) {
	f := &Flags{}
	fs := flag.NewFlagSet(tool, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { PrintUsage(fs, stderr) }
	fs.StringVar(&f.ConfigPath, "config", "", "Path to a TOML configuration file")
	fs.StringVar(&f.Output, "output", "", "Results file path (overrides the configured file)")
	fs.StringVar(&f.Output, "o", "", "Short alias for -output")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogDir, "log-dir", "", "Directory to place a per-run JSON log")
	fs.StringVar(&f.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	fs.BoolVar(&f.Color, "color", false, "Force colored console output")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored console output")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if f.Color && f.NoColor {
		return nil, fs, ErrConflictingColor
	}
	if fs.NArg() != 1 {
		return nil, fs, fmt.Errorf("%w (got %d)", ErrInputRequired, fs.NArg())
	}
	f.Input = fs.Arg(0)
	return f, fs, nil
}

// PrintUsage writes the usage line and flag defaults to w.
func PrintUsage(fs *flag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] <file_path>\n", fs.Name())
	fs.PrintDefaults()
}
