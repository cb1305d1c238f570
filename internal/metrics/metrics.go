// Package metrics records per-run counters in a private Prometheus registry
// and writes them out in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "txt_tools"

// Recorder collects the metrics of one tool run.
type Recorder struct {
	registry *prometheus.Registry

	linesTotal   prometheus.Counter
	linesSkipped *prometheus.CounterVec
	values       prometheus.Counter
	conversions  *prometheus.CounterVec
	duration     prometheus.Gauge
	lastSuccess  prometheus.Gauge
}

// NewRecorder creates a recorder whose series carry a constant tool label.
func NewRecorder(tool string) *Recorder {
	labels := prometheus.Labels{"tool": tool}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		linesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "input_lines_total",
			Help:        "Lines read from the input file.",
			ConstLabels: labels,
		}),
		linesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "input_lines_skipped_total",
			Help:        "Input lines left out, by reason.",
			ConstLabels: labels,
		}, []string{"reason"}),
		values: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "values_processed_total",
			Help:        "Values that passed filtering and were processed.",
			ConstLabels: labels,
		}),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "conversions_total",
			Help:        "Integers converted, by sign.",
			ConstLabels: labels,
		}, []string{"sign"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "run_duration_seconds",
			Help:        "Wall-clock duration of the last run.",
			ConstLabels: labels,
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "last_success_timestamp_seconds",
			Help:        "Unix time of the last successful run.",
			ConstLabels: labels,
		}),
	}
	r.registry.MustRegister(r.linesTotal, r.linesSkipped, r.values, r.conversions, r.duration, r.lastSuccess)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveInput records the line accounting of a filtered input.
func (r *Recorder) ObserveInput(total int, skippedByReason map[string]int) {
	r.linesTotal.Add(float64(total))
	for reason, n := range skippedByReason {
		r.linesSkipped.WithLabelValues(reason).Add(float64(n))
	}
}

// ObserveValues adds n processed values.
func (r *Recorder) ObserveValues(n int) {
	r.values.Add(float64(n))
}

// ObserveConversion counts one converted integer.
func (r *Recorder) ObserveConversion(negative bool) {
	sign := "positive"
	if negative {
		sign = "negative"
	}
	r.conversions.WithLabelValues(sign).Inc()
}

// ObserveRun records the run duration and, when succeeded, the finish time.
func (r *Recorder) ObserveRun(elapsed time.Duration, finished time.Time, succeeded bool) {
	r.duration.Set(elapsed.Seconds())
	if succeeded {
		r.lastSuccess.Set(float64(finished.Unix()))
	}
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
