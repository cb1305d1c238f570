// Package main provides the wordcount command. It treats every non-blank line
// as a word and writes how often each word occurs, in order of first
// appearance.
package main

import (
	"io"
	"os"

	"github.com/isseis/go-txt-tools/internal/cmdcommon"
	"github.com/isseis/go-txt-tools/internal/config"
	"github.com/isseis/go-txt-tools/internal/ingest"
	"github.com/isseis/go-txt-tools/internal/report"
	"github.com/isseis/go-txt-tools/internal/wordcount"
)

var tool = cmdcommon.Tool{
	Name:       "wordcount",
	OutputFile: func(cfg *config.Config) string { return cfg.Output.WordCountFile },
	Process:    process,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	return cmdcommon.Run(tool, args, stdout, stderr)
}

func process(env *cmdcommon.Env, in *ingest.Input) error {
	words := ingest.Words(in.Lines)
	env.ReportSkipped(words.Total, words.Skipped)
	if len(words.Values) == 0 {
		return cmdcommon.ErrNoValidData
	}

	entries := wordcount.Count(words.Values)
	env.Metrics.ObserveValues(len(words.Values))

	return env.Emit(report.WordCounts(entries, env.Summary(words.Total, words.Removed())))
}
