package metrics

import (
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/matreduce/internal/partition"
)

const namespace = "matreduce"

// Run is the summary of one reduction handed to the Recorder.
type Run struct {
	Strategy string
	Slots    []partition.Slot
	Totals   partition.Totals
	Duration time.Duration
}

// Recorder owns a private Prometheus registry so that several recorders can
// coexist in one process.
type Recorder struct {
	registry      *prometheus.Registry
	rowsProcessed *prometheus.CounterVec
	grossSum      *prometheus.GaugeVec
	workers       *prometheus.GaugeVec
	imbalance     *prometheus.GaugeVec
	duration      *prometheus.HistogramVec
	runs          *prometheus.CounterVec
}

// NewRecorder creates a Recorder with the reduction metrics and the Go
// runtime collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		rowsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_processed_total",
			Help:      "Rows folded into an accumulator slot, by strategy and worker.",
		}, []string{"strategy", "worker"}),
		grossSum: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gross_sum",
			Help:      "Gross sum of the most recent run, by strategy.",
		}, []string{"strategy"}),
		workers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workers",
			Help:      "Worker count of the most recent run, by strategy.",
		}, []string{"strategy"}),
		imbalance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "worker_imbalance_rows",
			Help:      "Difference between the most and least loaded worker in the most recent run.",
		}, []string{"strategy"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time from first spawn to aggregation.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"strategy"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed reduction runs, by strategy.",
		}, []string{"strategy"}),
	}
	r.registry.MustRegister(
		r.rowsProcessed, r.grossSum, r.workers, r.imbalance, r.duration, r.runs,
		collectors.NewGoCollector(),
	)
	return r
}

// Observe records a finished run.
func (r *Recorder) Observe(run Run) {
	for w, s := range run.Slots {
		r.rowsProcessed.WithLabelValues(run.Strategy, strconv.Itoa(w)).Add(float64(s.Rows))
	}
	r.grossSum.WithLabelValues(run.Strategy).Set(float64(run.Totals.GrossSum))
	r.workers.WithLabelValues(run.Strategy).Set(float64(len(run.Slots)))
	r.imbalance.WithLabelValues(run.Strategy).Set(float64(partition.Imbalance(run.Slots)))
	r.duration.WithLabelValues(run.Strategy).Observe(run.Duration.Seconds())
	r.runs.WithLabelValues(run.Strategy).Inc()
}

// WriteText writes every gathered metric family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
