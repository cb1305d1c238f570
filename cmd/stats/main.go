// Package main provides the stats command. It reads one number per line and
// writes the mean, median, mode, variance and standard deviation.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/isseis/go-txt-tools/internal/cmdcommon"
	"github.com/isseis/go-txt-tools/internal/config"
	"github.com/isseis/go-txt-tools/internal/ingest"
	"github.com/isseis/go-txt-tools/internal/report"
	"github.com/isseis/go-txt-tools/internal/stats"
)

var tool = cmdcommon.Tool{
	Name:       "stats",
	OutputFile: func(cfg *config.Config) string { return cfg.Output.StatisticsFile },
	Process:    process,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	return cmdcommon.Run(tool, args, stdout, stderr)
}

func process(env *cmdcommon.Env, in *ingest.Input) error {
	numbers := ingest.Floats(in.Lines)
	env.ReportSkipped(numbers.Total, numbers.Skipped)
	if len(numbers.Values) == 0 {
		return cmdcommon.ErrNoValidData
	}

	summary, err := stats.Compute(numbers.Values)
	if err != nil {
		return fmt.Errorf("failed to compute statistics: %w", err)
	}
	env.Metrics.ObserveValues(summary.Count)

	return env.Emit(report.Statistics(summary, env.Summary(numbers.Total, numbers.Removed())))
}
