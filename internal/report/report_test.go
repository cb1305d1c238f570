package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/isseis/go-txt-tools/internal/color"
	"github.com/isseis/go-txt-tools/internal/numconv"
	"github.com/isseis/go-txt-tools/internal/stats"
	"github.com/isseis/go-txt-tools/internal/wordcount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversions(t *testing.T) {
	results := numconv.ConvertAll([]int64{10, 0, -5})
	r := Conversions(results, Summary{TotalLines: 5, Removed: 2, Elapsed: 1500 * time.Millisecond})

	want := "Decimal: 10, Binary: 1010, Hex: A\n" +
		"Decimal: 0, Binary: 0, Hex: 0\n" +
		"Decimal: -5, Binary: 1111111011, Hex: FFFFFFFFFB\n" +
		"\n" +
		"\n" +
		"Total Initial Count: 5\n" +
		"Removed a total of 2 elements\n" +
		"\n" +
		"Elapsed Time: 1.5 s\n"
	assert.Equal(t, want, r.String())
}

func TestWordCounts(t *testing.T) {
	entries := wordcount.Count([]string{"go", "is", "go"})
	r := WordCounts(entries, Summary{TotalLines: 4, Removed: 1, Elapsed: 2 * time.Second})

	want := "Word: go, Count: 2\n" +
		"Word: is, Count: 1\n" +
		"\n" +
		"\n" +
		"Total Initial Count: 4\n" +
		"Removed a total of 1 elements\n" +
		"\n" +
		"Elapsed Time: 2 s\n"
	assert.Equal(t, want, r.String())
}

func TestStatistics(t *testing.T) {
	st, err := stats.Compute([]float64{1, 2, 2, 3})
	require.NoError(t, err)

	r := Statistics(st, Summary{TotalLines: 6, Removed: 2, Elapsed: 250 * time.Millisecond})

	want := "Descriptive Statistics Results:\n" +
		"Total Initial Count: 6\n" +
		"Removed a total of: 2 elements\n" +
		"Mean: 2\n" +
		"Median: 2\n" +
		"Mode: 2\n" +
		"Variance: 0.5\n" +
		"Standard Deviation: 0.7071067811865476\n" +
		"\n" +
		"Elapsed Time: 0.25 s\n"
	assert.Equal(t, want, r.String())
}

func TestRender_Colored(t *testing.T) {
	r := Conversions(numconv.ConvertAll([]int64{1}), Summary{TotalLines: 1})
	out := r.Render(color.NewPalette(true))

	assert.Contains(t, out, "\033[32mDecimal: 1, Binary: 1, Hex: 1\033[0m\n")
	assert.Contains(t, out, "\033[36mTotal Initial Count:\033[0m 1\n")
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0 s", FormatElapsed(0))
	assert.Equal(t, "0.000123 s", FormatElapsed(123*time.Microsecond))
	assert.Equal(t, "61 s", FormatElapsed(61*time.Second))
}

func TestWriter_Emit(t *testing.T) {
	var console bytes.Buffer
	w := &Writer{Console: &console, Palette: color.NewPalette(true)}
	path := filepath.Join(t.TempDir(), "nested", "ConvertionResults.txt")
	r := Conversions(numconv.ConvertAll([]int64{255}), Summary{TotalLines: 1})

	require.NoError(t, w.Emit(r, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, r.String(), string(content), "file content is never colored")
	assert.Contains(t, console.String(), "\033[")
	assert.Contains(t, console.String(), "Hex: FF")
}

func TestWriteFile_ReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer\n"), 0o600))

	r := WordCounts(nil, Summary{})
	require.NoError(t, WriteFile(path, r))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, r.String(), string(content))
}

func TestWriteFile_Error(t *testing.T) {
	dir := t.TempDir()
	err := WriteFile(dir, WordCounts(nil, Summary{}))
	assert.ErrorIs(t, err, ErrWriteResults)
}
