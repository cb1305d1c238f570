package cmdcommon

import (
	"fmt"
	"io"
	"time"

	"github.com/isseis/go-txt-tools/internal/color"
	"github.com/isseis/go-txt-tools/internal/config"
	"github.com/isseis/go-txt-tools/internal/ingest"
	"github.com/isseis/go-txt-tools/internal/logging"
	"github.com/isseis/go-txt-tools/internal/metrics"
	"github.com/isseis/go-txt-tools/internal/report"
	"github.com/isseis/go-txt-tools/internal/terminal"
)

// Env is everything a tool needs for one run.
type Env struct {
	Tool        string
	RunID       string
	Config      *config.Config
	Logger      *logging.Logger
	Metrics     *metrics.Recorder
	Report      *report.Writer
	OutputPath  string
	MetricsPath string

	stderr      io.Writer
	diagnostics color.Palette
	started     time.Time
}

// Bootstrap loads configuration, applies flag overrides and sets up logging,
// console colors and metrics. Failures are returned as *logging.StartupError.
func Bootstrap(tool Tool, flags *Flags, runID string, stdout, stderr io.Writer) (*Env, error) {
	cfg, err := config.NewLoader().LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, &logging.StartupError{
			Type:      logging.ErrorTypeConfigParsing,
			Message:   fmt.Sprintf("Failed to load config %q", flags.ConfigPath),
			Component: "config",
			RunID:     runID,
			Err:       err,
		}
	}
	if err := applyOverrides(cfg, flags); err != nil {
		return nil, &logging.StartupError{
			Type:      logging.ErrorTypeInvalidArguments,
			Message:   "Invalid command-line override",
			Component: "config",
			RunID:     runID,
			Err:       err,
		}
	}

	logger, err := logging.Setup(logging.Options{
		Tool:    tool.Name,
		RunID:   runID,
		Level:   cfg.SlogLevel(),
		Console: stderr,
		LogDir:  cfg.Logging.Dir,
	})
	if err != nil {
		return nil, &logging.StartupError{
			Type:      logging.ErrorTypeLogSetup,
			Message:   "Failed to set up logging",
			Component: "logging",
			RunID:     runID,
			Err:       err,
		}
	}

	pref := colorPreference(cfg.Console.Color)
	env := &Env{
		Tool:        tool.Name,
		RunID:       runID,
		Config:      cfg,
		Logger:      logger,
		Metrics:     metrics.NewRecorder(tool.Name),
		OutputPath:  tool.OutputFile(cfg),
		MetricsPath: cfg.Metrics.Textfile,
		Report: &report.Writer{
			Console: stdout,
			Palette: color.NewPalette(terminal.UseColor(stdout, pref)),
		},
		stderr:      stderr,
		diagnostics: color.NewPalette(terminal.UseColor(stderr, pref)),
	}
	if flags.Output != "" {
		env.OutputPath = flags.Output
	}

	logger.Debug("Run environment ready",
		"run_id", runID,
		"config", flags.ConfigPath,
		"output", env.OutputPath,
		"log_file", logger.Path(),
		"metrics_file", env.MetricsPath)
	return env, nil
}

func applyOverrides(cfg *config.Config, flags *Flags) error {
	if flags.LogLevel != "" {
		cfg.Logging.Level = flags.LogLevel
	}
	if flags.LogDir != "" {
		cfg.Logging.Dir = flags.LogDir
	}
	if flags.MetricsFile != "" {
		cfg.Metrics.Textfile = flags.MetricsFile
	}
	switch {
	case flags.Color:
		cfg.Console.Color = config.ColorAlways
	case flags.NoColor:
		cfg.Console.Color = config.ColorNever
	}
	return config.Validate(cfg)
}

func colorPreference(mode config.ColorMode) terminal.ColorPreference {
	return terminal.ColorPreference{
		Force:   mode == config.ColorAlways,
		Disable: mode == config.ColorNever,
	}
}

// ReportSkipped prints a diagnostic for every skipped line and records the
// line accounting in the metrics.
func (e *Env) ReportSkipped(total int, skipped []ingest.Skipped) {
	byReason := make(map[string]int)
	for _, s := range skipped {
		byReason[string(s.Reason)]++
		_, _ = fmt.Fprintln(e.stderr, e.diagnostics.Warn(s.Message()))
		e.Logger.Debug("Skipped input line", "line", s.Line, "reason", string(s.Reason), "value", s.Value)
	}
	e.Metrics.ObserveInput(total, byReason)
}

// Summary returns the line accounting of the run and the time elapsed since
// processing started.
func (e *Env) Summary(total, removed int) report.Summary {
	return report.Summary{TotalLines: total, Removed: removed, Elapsed: now().Sub(e.started)}
}

// Emit prints r to the console and writes it to the results file.
func (e *Env) Emit(r *report.Report) error {
	if err := e.Report.Emit(r, e.OutputPath); err != nil {
		return err
	}
	e.Logger.Info("Results written", "path", e.OutputPath, "run_id", e.RunID)
	return nil
}

// Close releases the resources held by the environment.
func (e *Env) Close() error {
	return e.Logger.Close()
}
