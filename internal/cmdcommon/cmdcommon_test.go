package cmdcommon

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/isseis/go-txt-tools/internal/config"
	"github.com/isseis/go-txt-tools/internal/ingest"
	"github.com/isseis/go-txt-tools/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errProcess = errors.New("process failure")

// echoTool reports every non-blank line as a result item.
func echoTool(processErr error) Tool {
	return Tool{
		Name:       "echo",
		OutputFile: func(cfg *config.Config) string { return cfg.Output.WordCountFile },
		Process: func(env *Env, in *ingest.Input) error {
			if processErr != nil {
				return processErr
			}
			words := ingest.Words(in.Lines)
			env.ReportSkipped(words.Total, words.Skipped)
			if len(words.Values) == 0 {
				return ErrNoValidData
			}
			return env.Emit(report.WordCounts(nil, env.Summary(words.Total, words.Removed())))
		},
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func fixClock(t *testing.T, times ...time.Time) {
	t.Helper()
	original := now
	i := 0
	now = func() time.Time {
		tm := times[min(i, len(times)-1)]
		i++
		return tm
	}
	t.Cleanup(func() { now = original })
}

func TestParseArgs(t *testing.T) {
	flags, _, err := ParseArgs("convert", []string{"-config", "c.toml", "-o", "out.txt", "-log-level", "debug", "-no-color", "in.txt"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "c.toml", flags.ConfigPath)
	assert.Equal(t, "out.txt", flags.Output)
	assert.Equal(t, "debug", flags.LogLevel)
	assert.True(t, flags.NoColor)
	assert.Equal(t, "in.txt", flags.Input)
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no input", args: nil, wantErr: ErrInputRequired},
		{name: "two inputs", args: []string{"a.txt", "b.txt"}, wantErr: ErrInputRequired},
		{name: "conflicting color flags", args: []string{"-color", "-no-color", "a.txt"}, wantErr: ErrConflictingColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseArgs("convert", tt.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_Success(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "words.txt", "a\n\nb\n")
	output := filepath.Join(dir, "out.txt")
	metricsFile := filepath.Join(dir, "tools.prom")

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fixClock(t, start, start, start.Add(2*time.Second))

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := Run(echoTool(nil), []string{"-o", output, "-metrics-file", metricsFile, "-no-color", input}, stdout, stderr)

	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "Total Initial Count: 3")
	assert.Contains(t, stdout.String(), "Removed a total of 1 elements")
	assert.Contains(t, stderr.String(), "Skipping empty line: ")

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, stdout.String(), string(content))

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `txt_tools_input_lines_total{tool="echo"} 3`)
	assert.Contains(t, string(prom), `txt_tools_input_lines_skipped_total{reason="empty",tool="echo"} 1`)
}

func TestRun_UsesConfiguredOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "words.txt", "a\n")
	output := filepath.Join(dir, "configured.txt")
	cfgPath := writeFile(t, dir, "tools.toml", "[output]\nwordcount_file = \""+filepath.ToSlash(output)+"\"\n")

	code := Run(echoTool(nil), []string{"-config", cfgPath, input}, &bytes.Buffer{}, &bytes.Buffer{})

	require.Equal(t, ExitSuccess, code)
	assert.FileExists(t, output)
}

func TestRun_WritesJSONLog(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "words.txt", "a\n")
	logDir := filepath.Join(dir, "logs")

	code := Run(echoTool(nil), []string{"-o", filepath.Join(dir, "o.txt"), "-log-dir", logDir, "-log-level", "info", input}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Equal(t, ExitSuccess, code)

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	content, err := os.ReadFile(filepath.Join(logDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"Run completed"`)
}

func TestRun_Help(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := Run(echoTool(nil), []string{"-h"}, &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stderr.String(), "Usage: echo [flags] <file_path>")
}

func TestRun_UsageError(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := Run(echoTool(nil), nil, &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr.String(), "Usage: echo")
	assert.Contains(t, stderr.String(), "exactly one input file path")
}

func TestRun_MissingInput(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := Run(echoTool(nil), []string{filepath.Join(t.TempDir(), "missing.txt")}, &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr.String(), "Error: input_access_failed")
	assert.Contains(t, stderr.String(), "file not found")
}

func TestRun_BadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "bad.toml", "[console]\ncolor = \"rainbow\"\n")

	stderr := &bytes.Buffer{}
	code := Run(echoTool(nil), []string{"-config", cfgPath, writeFile(t, dir, "in.txt", "a\n")}, &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr.String(), "Error: config_parsing_failed")
}

func TestRun_BadLogLevelFlag(t *testing.T) {
	dir := t.TempDir()
	stderr := &bytes.Buffer{}
	code := Run(echoTool(nil), []string{"-log-level", "chatty", writeFile(t, dir, "in.txt", "a\n")}, &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr.String(), "Error: invalid_arguments")
}

func TestRun_NoValidData(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.txt")
	stderr := &bytes.Buffer{}

	code := Run(echoTool(nil), []string{"-o", output, writeFile(t, dir, "in.txt", "\n   \n")}, &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitSuccess, code)
	assert.NoFileExists(t, output)
	assert.Equal(t, 2, strings.Count(stderr.String(), "Skipping empty line"))
	assert.Contains(t, stderr.String(), "No valid data found")
}

func TestRun_ProcessFailure(t *testing.T) {
	dir := t.TempDir()
	stderr := &bytes.Buffer{}

	code := Run(echoTool(errProcess), []string{writeFile(t, dir, "in.txt", "a\n")}, &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr.String(), "Error: output_write_failed")
	assert.Contains(t, stderr.String(), "process failure")
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	err := applyOverrides(cfg, &Flags{LogLevel: "error", LogDir: "/tmp/logs", MetricsFile: "m.prom", Color: true})
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "/tmp/logs", cfg.Logging.Dir)
	assert.Equal(t, "m.prom", cfg.Metrics.Textfile)
	assert.Equal(t, config.ColorAlways, cfg.Console.Color)
}
