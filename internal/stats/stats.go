// Package stats computes descriptive statistics over a list of numbers.
package stats

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ErrNoData is returned when statistics are requested for an empty list.
var ErrNoData = errors.New("no data")

// NotApplicable is the mode rendition when every value is equally frequent.
const NotApplicable = "N/A"

// Summary holds the descriptive statistics of a sample.
type Summary struct {
	Count    int
	Mean     float64
	Median   float64
	Mode     []float64 // nil when every value is equally frequent
	Variance float64   // population variance
	StdDev   float64
}

// Compute returns the statistics of values.
func Compute(values []float64) (*Summary, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mean := Mean(values)
	v := populationVariance(values, mean)
	return &Summary{
		Count:    len(values),
		Mean:     mean,
		Median:   median(sorted),
		Mode:     mode(sorted),
		Variance: v,
		StdDev:   math.Sqrt(v),
	}, nil
}

// Mean returns the arithmetic mean of values, or NaN for an empty list.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mode returns the most frequent values in ascending order. It returns nil
// when all distinct values share the same frequency.
func mode(sorted []float64) []float64 {
	type run struct {
		value float64
		count int
	}
	var runs []run
	for _, v := range sorted {
		if len(runs) > 0 && runs[len(runs)-1].value == v {
			runs[len(runs)-1].count++
			continue
		}
		runs = append(runs, run{value: v, count: 1})
	}

	maxCount, minCount := 0, len(sorted)
	for _, r := range runs {
		maxCount = max(maxCount, r.count)
		minCount = min(minCount, r.count)
	}
	if maxCount == minCount {
		return nil
	}

	var modes []float64
	for _, r := range runs {
		if r.count == maxCount {
			modes = append(modes, r.value)
		}
	}
	return modes
}

func populationVariance(values []float64, mean float64) float64 {
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}

// ModeString renders the mode as a single number, a comma-separated list,
// or NotApplicable.
func (s *Summary) ModeString() string {
	if len(s.Mode) == 0 {
		return NotApplicable
	}
	parts := make([]string, len(s.Mode))
	for i, v := range s.Mode {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, ", ")
}

// FormatNumber prints integral values without a fractional part and other
// values in the shortest form that round-trips.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
