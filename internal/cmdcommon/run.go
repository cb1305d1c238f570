package cmdcommon

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/isseis/go-txt-tools/internal/config"
	"github.com/isseis/go-txt-tools/internal/ingest"
	"github.com/isseis/go-txt-tools/internal/logging"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ErrNoValidData is returned by a Process function when filtering left
// nothing to compute. The run still succeeds but writes no results file.
var ErrNoValidData = errors.New("no valid data in input")

// Tool describes one command.
type Tool struct {
	Name string

	// OutputFile selects the configured results file.
	OutputFile func(*config.Config) string

	// Process turns the raw input into a report and emits it.
	Process func(env *Env, in *ingest.Input) error
}

// now is replaced in tests.
var now = time.Now

// Run executes tool with the given command-line arguments and returns the
// process exit code.
func Run(tool Tool, args []string, stdout, stderr io.Writer) int {
	runID := logging.GenerateRunID()

	flags, fs, err := ParseArgs(tool.Name, args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		PrintUsage(fs, stderr)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	env, err := Bootstrap(tool, flags, runID, stdout, stderr)
	if err != nil {
		handle(stderr, nil, err)
		return ExitFailure
	}
	defer func() { _ = env.Close() }()

	logger := env.Logger
	logger.Info("Run started", "tool", tool.Name, "input", flags.Input, "run_id", runID)

	start := now()
	succeeded := false
	defer func() {
		finished := now()
		env.Metrics.ObserveRun(finished.Sub(start), finished, succeeded)
		if env.MetricsPath == "" {
			return
		}
		if err := env.Metrics.WriteTextfile(env.MetricsPath); err != nil {
			logger.Warn("Failed to write metrics", "error", err, "run_id", runID)
		}
	}()

	in, err := ingest.ReadFile(flags.Input)
	if err != nil {
		handle(stderr, logger.Logger, &logging.StartupError{
			Type:      logging.ErrorTypeInputAccess,
			Message:   fmt.Sprintf("Cannot read input %s", flags.Input),
			Component: "ingest",
			RunID:     runID,
			Err:       err,
		})
		return ExitFailure
	}
	logger.Debug("Input read", "path", in.Path, "lines", in.TotalLines())

	env.started = now()
	if err := tool.Process(env, in); err != nil {
		if errors.Is(err, ErrNoValidData) {
			logger.Warn("No valid data found, nothing written", "input", in.Path, "lines", in.TotalLines(), "run_id", runID)
			succeeded = true
			return ExitSuccess
		}
		handle(stderr, logger.Logger, &logging.StartupError{
			Type:      logging.ErrorTypeOutputWrite,
			Message:   "Failed to produce results",
			Component: tool.Name,
			RunID:     runID,
			Err:       err,
		})
		return ExitFailure
	}

	succeeded = true
	logger.Info("Run completed",
		"tool", tool.Name,
		"output", env.OutputPath,
		"duration_ms", now().Sub(start).Milliseconds(),
		"run_id", runID)
	return ExitSuccess
}

func handle(stderr io.Writer, logger *slog.Logger, err error) {
	var startupErr *logging.StartupError
	if errors.As(err, &startupErr) {
		logging.HandleStartupError(stderr, logger, startupErr)
		return
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
}
