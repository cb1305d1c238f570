package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) (input, output string) {
	t.Helper()
	dir := t.TempDir()
	input = filepath.Join(dir, "numbers.txt")
	require.NoError(t, os.WriteFile(input, []byte(content), 0o600))
	return input, filepath.Join(dir, "ConvertionResults.txt")
}

func TestRunConvertsNumbers(t *testing.T) {
	input, output := writeInput(t, "10\n-5\n\n0\nabc\n255\n-1\n")
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	exitCode := run([]string{"-no-color", "-o", output, input}, stdout, stderr)

	require.Equal(t, 0, exitCode, "stderr: %s", stderr.String())

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(content)
	assert.True(t, strings.HasPrefix(text,
		"Decimal: 10, Binary: 1010, Hex: A\n"+
			"Decimal: -5, Binary: 1111111011, Hex: FFFFFFFFFB\n"+
			"Decimal: 0, Binary: 0, Hex: 0\n"+
			"Decimal: 255, Binary: 11111111, Hex: FF\n"+
			"Decimal: -1, Binary: 1111111111, Hex: FFFFFFFFFF\n"+
			"\n\nTotal Initial Count: 7\n"+
			"Removed a total of 2 elements\n"+
			"\nElapsed Time: "), text)
	assert.True(t, strings.HasSuffix(text, " s\n"))
	assert.Equal(t, text, stdout.String())

	assert.Contains(t, stderr.String(), "Skipping empty line: \n")
	assert.Contains(t, stderr.String(), "Skipping invalid value: abc\n")
}

func TestRunNoValidNumbers(t *testing.T) {
	input, output := writeInput(t, "x\ny\n")
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"-o", output, input}, &bytes.Buffer{}, stderr)

	assert.Equal(t, 0, exitCode)
	assert.NoFileExists(t, output)
	assert.Contains(t, stderr.String(), "Skipping invalid value: y")
}

func TestRunRequiresInput(t *testing.T) {
	stderr := &bytes.Buffer{}

	exitCode := run(nil, &bytes.Buffer{}, stderr)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Usage: convert [flags] <file_path>")
}

func TestRunMissingFile(t *testing.T) {
	stderr := &bytes.Buffer{}

	exitCode := run([]string{filepath.Join(t.TempDir(), "none.txt")}, &bytes.Buffer{}, stderr)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "file not found")
}

func TestRunWritesConversionMetrics(t *testing.T) {
	input, output := writeInput(t, "1\n-2\n-3\n")
	metricsFile := filepath.Join(filepath.Dir(output), "convert.prom")

	exitCode := run([]string{"-o", output, "-metrics-file", metricsFile, input}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Equal(t, 0, exitCode)

	content, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `txt_tools_conversions_total{sign="negative",tool="convert"} 2`)
	assert.Contains(t, string(content), `txt_tools_conversions_total{sign="positive",tool="convert"} 1`)
	assert.Contains(t, string(content), `txt_tools_values_processed_total{tool="convert"} 3`)
}
