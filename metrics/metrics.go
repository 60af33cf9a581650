// Package metrics exports editor activity as Prometheus metrics.
//
// Recorder implements editor.MetricsRecorder. Every collector is registered
// on the Registerer passed to New, so tests and embedders can use a private
// registry instead of the global one.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/molkit/editor"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultMerged   = "merged"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Recorder is a Prometheus-backed editor.MetricsRecorder.
type Recorder struct {
	edits     *prometheus.CounterVec
	history   *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	atoms     prometheus.Gauge
	bonds     prometheus.Gauge
	groups    prometheus.Gauge
	undoDepth prometheus.Gauge
}

var _ editor.MetricsRecorder = (*Recorder)(nil)

// New registers the editor collectors on reg under namespace.
// It panics if they are already registered there.
func New(reg prometheus.Registerer, namespace string) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		edits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_total",
			Help:      "Edit attempts, labelled by command kind and result (ok, merged, rejected).",
		}, []string{"kind", "result"}),

		history: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_steps_total",
			Help:      "Undo and redo steps, labelled by operation, command kind and result.",
		}, []string{"op", "kind", "result"}),

		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Time spent applying an edit, undo or redo.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"op"}),

		atoms: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "atoms",
			Help:      "Atoms in the edited molecule.",
		}),
		bonds: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bonds",
			Help:      "Bonds in the edited molecule.",
		}),
		groups: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "groups",
			Help:      "Connected fragments tracked by the editor.",
		}),
		undoDepth: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "undo_depth",
			Help:      "Steps currently available to undo.",
		}),
	}
}

// RecordEdit implements editor.MetricsRecorder.
func (r *Recorder) RecordEdit(kind editor.Kind, merged bool, duration time.Duration, err error) {
	result := ResultOK
	switch {
	case err != nil:
		result = ResultRejected
	case merged:
		result = ResultMerged
	}
	r.edits.WithLabelValues(kind.String(), result).Inc()
	r.latency.WithLabelValues("edit").Observe(duration.Seconds())
}

// RecordUndo implements editor.MetricsRecorder.
func (r *Recorder) RecordUndo(kind editor.Kind, duration time.Duration, err error) {
	r.step("undo", kind, duration, err)
}

// RecordRedo implements editor.MetricsRecorder.
func (r *Recorder) RecordRedo(kind editor.Kind, duration time.Duration, err error) {
	r.step("redo", kind, duration, err)
}

// RecordState implements editor.MetricsRecorder.
func (r *Recorder) RecordState(atoms, bonds, groups, undoDepth int) {
	r.atoms.Set(float64(atoms))
	r.bonds.Set(float64(bonds))
	r.groups.Set(float64(groups))
	r.undoDepth.Set(float64(undoDepth))
}

func (r *Recorder) step(op string, kind editor.Kind, duration time.Duration, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.history.WithLabelValues(op, kind.String(), result).Inc()
	r.latency.WithLabelValues(op).Observe(duration.Seconds())
}
