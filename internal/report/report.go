// Package report renders tool results and the run summary, and writes them to
// the console and to the results file.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/isseis/go-txt-tools/internal/color"
	"github.com/isseis/go-txt-tools/internal/numconv"
	"github.com/isseis/go-txt-tools/internal/stats"
	"github.com/isseis/go-txt-tools/internal/wordcount"
)

// ErrWriteResults is returned when the results file cannot be written.
var ErrWriteResults = errors.New("failed to write results file")

const resultsFilePerm os.FileMode = 0o644

// Summary is the line accounting and timing of one run.
type Summary struct {
	TotalLines int
	Removed    int
	Elapsed    time.Duration
}

// Report is a rendered block of text lines.
type Report struct {
	lines []line
}

type line struct {
	label string // colored with Palette.Label
	value string
	item  bool // colored with Palette.Success
}

func (r *Report) item(text string) {
	r.lines = append(r.lines, line{value: text, item: true})
}

func (r *Report) field(label, value string) {
	r.lines = append(r.lines, line{label: label, value: value})
}

func (r *Report) blank() {
	r.lines = append(r.lines, line{})
}

// Render returns the report text using p for coloring.
func (r *Report) Render(p color.Palette) string {
	var sb strings.Builder
	for _, l := range r.lines {
		switch {
		case l.item:
			sb.WriteString(p.Success(l.value))
		case l.label != "":
			sb.WriteString(p.Label(l.label))
			if l.value != "" {
				sb.WriteString(" ")
				sb.WriteString(l.value)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// String returns the uncolored report text.
func (r *Report) String() string {
	return r.Render(color.NewPalette(false))
}

// Conversions builds the convert report.
func Conversions(results []numconv.Result, s Summary) *Report {
	r := &Report{}
	for _, res := range results {
		r.item(res.String())
	}
	r.countSummary(s)
	return r
}

// WordCounts builds the word count report.
func WordCounts(entries []wordcount.Entry, s Summary) *Report {
	r := &Report{}
	for _, e := range entries {
		r.item(e.String())
	}
	r.countSummary(s)
	return r
}

// Statistics builds the descriptive statistics report.
func Statistics(st *stats.Summary, s Summary) *Report {
	r := &Report{}
	r.field("Descriptive Statistics Results:", "")
	r.field("Total Initial Count:", strconv.Itoa(s.TotalLines))
	r.field("Removed a total of:", fmt.Sprintf("%d elements", s.Removed))
	r.field("Mean:", stats.FormatNumber(st.Mean))
	r.field("Median:", stats.FormatNumber(st.Median))
	r.field("Mode:", st.ModeString())
	r.field("Variance:", stats.FormatNumber(st.Variance))
	r.field("Standard Deviation:", stats.FormatNumber(st.StdDev))
	r.blank()
	r.field("Elapsed Time:", FormatElapsed(s.Elapsed))
	return r
}

func (r *Report) countSummary(s Summary) {
	r.blank()
	r.blank()
	r.field("Total Initial Count:", strconv.Itoa(s.TotalLines))
	r.field("Removed a total of", fmt.Sprintf("%d elements", s.Removed))
	r.blank()
	r.field("Elapsed Time:", FormatElapsed(s.Elapsed))
}

// FormatElapsed renders d as fractional seconds followed by " s".
func FormatElapsed(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + " s"
}

// Writer sends reports to the console and to a results file.
type Writer struct {
	Console io.Writer
	Palette color.Palette
}

// Emit prints the report to the console and writes its plain text to path.
func (w *Writer) Emit(r *Report, path string) error {
	if w.Console != nil {
		if _, err := io.WriteString(w.Console, r.Render(w.Palette)); err != nil {
			return fmt.Errorf("failed to write report to console: %w", err)
		}
	}
	return WriteFile(path, r)
}

// WriteFile writes the plain report text to path, replacing any previous
// content. Missing parent directories are created.
func WriteFile(path string, r *Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteResults, err)
		}
	}
	if err := os.WriteFile(path, []byte(r.String()), resultsFilePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteResults, err)
	}
	return nil
}
