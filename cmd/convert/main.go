// Package main provides the convert command. It reads one integer per line
// and writes each value in decimal, binary and hexadecimal, with negative
// values in two's complement.
package main

import (
	"io"
	"os"

	"github.com/isseis/go-txt-tools/internal/cmdcommon"
	"github.com/isseis/go-txt-tools/internal/config"
	"github.com/isseis/go-txt-tools/internal/ingest"
	"github.com/isseis/go-txt-tools/internal/numconv"
	"github.com/isseis/go-txt-tools/internal/report"
)

var tool = cmdcommon.Tool{
	Name:       "convert",
	OutputFile: func(cfg *config.Config) string { return cfg.Output.ConvertFile },
	Process:    process,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	return cmdcommon.Run(tool, args, stdout, stderr)
}

func process(env *cmdcommon.Env, in *ingest.Input) error {
	numbers := ingest.Integers(in.Lines)
	env.ReportSkipped(numbers.Total, numbers.Skipped)
	if len(numbers.Values) == 0 {
		return cmdcommon.ErrNoValidData
	}

	results := numconv.ConvertAll(numbers.Values)
	for _, r := range results {
		env.Metrics.ObserveConversion(r.Negative())
	}
	env.Metrics.ObserveValues(len(results))

	return env.Emit(report.Conversions(results, env.Summary(numbers.Total, numbers.Removed())))
}
