package ingest

import (
	"math"
	"strconv"
	"strings"
)

// SkipReason describes why a line was left out.
type SkipReason string

const (
	// ReasonEmpty marks a blank or whitespace-only line
	ReasonEmpty SkipReason = "empty"
	// ReasonInvalid marks a line that could not be parsed
	ReasonInvalid SkipReason = "invalid"
)

// Skipped records a line that was filtered out.
type Skipped struct {
	Line   int // 1-based line number
	Value  string
	Reason SkipReason
}

// Message returns the console diagnostic for the skipped line.
func (s Skipped) Message() string {
	if s.Reason == ReasonEmpty {
		return "Skipping empty line: " + s.Value
	}
	return "Skipping invalid value: " + s.Value
}

// Filtered is the outcome of filtering an Input into values of type T.
type Filtered[T any] struct {
	Total   int
	Values  []T
	Skipped []Skipped
}

// Removed returns how many lines did not yield a value.
func (f *Filtered[T]) Removed() int {
	return f.Total - len(f.Values)
}

// Filter trims every line, drops blank lines and keeps the lines parse
// accepts. Lines rejected by parse are recorded as invalid.
func Filter[T any](lines []string, parse func(string) (T, error)) *Filtered[T] {
	out := &Filtered[T]{Total: len(lines)}
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out.Skipped = append(out.Skipped, Skipped{Line: i + 1, Reason: ReasonEmpty})
			continue
		}
		v, err := parse(trimmed)
		if err != nil {
			out.Skipped = append(out.Skipped, Skipped{Line: i + 1, Value: trimmed, Reason: ReasonInvalid})
			continue
		}
		out.Values = append(out.Values, v)
	}
	return out
}

// Integers keeps lines holding a base-10 integer that fits in int64.
func Integers(lines []string) *Filtered[int64] {
	return Filter(lines, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// Floats keeps lines holding a finite decimal number.
func Floats(lines []string) *Filtered[float64] {
	return Filter(lines, parseFiniteFloat)
}

// Words keeps every non-blank line as a single word.
func Words(lines []string) *Filtered[string] {
	return Filter(lines, func(s string) (string, error) {
		return s, nil
	})
}

func parseFiniteFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
