package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molkit/editor"
	"github.com/katalvlaran/molkit/metrics"
	"github.com/katalvlaran/molkit/molecule"
)

// value returns the counter or gauge value of the series name{labels}, or
// -1 when no such series was gathered.
func value(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if matches(m, labels) {
				switch {
				case m.Counter != nil:
					return m.GetCounter().GetValue()
				case m.Gauge != nil:
					return m.GetGauge().GetValue()
				case m.Histogram != nil:
					return float64(m.GetHistogram().GetSampleCount())
				}
			}
		}
	}
	return -1
}

func matches(m *dto.Metric, labels map[string]string) bool {
	if len(m.GetLabel()) != len(labels) {
		return false
	}
	for _, lp := range m.GetLabel() {
		if labels[lp.GetName()] != lp.GetValue() {
			return false
		}
	}
	return true
}

func TestRecorder_Direct(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.New(reg, "test")

	r.RecordEdit(editor.KindAddAtom, false, time.Millisecond, nil)
	r.RecordEdit(editor.KindSetPosition3D, true, time.Millisecond, nil)
	r.RecordEdit(editor.KindRemoveAtom, false, time.Millisecond, errors.New("boom"))
	r.RecordUndo(editor.KindAddAtom, time.Millisecond, nil)
	r.RecordRedo(editor.KindAddAtom, time.Millisecond, errors.New("boom"))
	r.RecordState(3, 2, 1, 4)

	assert.Equal(t, 1.0, value(t, reg, "test_edits_total", map[string]string{"kind": "add_atom", "result": "ok"}))
	assert.Equal(t, 1.0, value(t, reg, "test_edits_total", map[string]string{"kind": "set_position3d", "result": "merged"}))
	assert.Equal(t, 1.0, value(t, reg, "test_edits_total", map[string]string{"kind": "remove_atom", "result": "rejected"}))
	assert.Equal(t, 1.0, value(t, reg, "test_history_steps_total", map[string]string{"op": "undo", "kind": "add_atom", "result": "ok"}))
	assert.Equal(t, 1.0, value(t, reg, "test_history_steps_total", map[string]string{"op": "redo", "kind": "add_atom", "result": "error"}))
	assert.Equal(t, 3.0, value(t, reg, "test_operation_duration_seconds", map[string]string{"op": "edit"}))
	assert.Equal(t, 3.0, value(t, reg, "test_atoms", nil))
	assert.Equal(t, 2.0, value(t, reg, "test_bonds", nil))
	assert.Equal(t, 1.0, value(t, reg, "test_groups", nil))
	assert.Equal(t, 4.0, value(t, reg, "test_undo_depth", nil))
}

func TestRecorder_WiredIntoEditor(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := editor.New(editor.WithMetrics(metrics.New(reg, "molkit")))

	a := e.AddAtom(6)
	b := e.AddAtom(8)
	_, err := e.AddBond(a, b, 2)
	require.NoError(t, err)
	_, err = e.AddBond(a, b, 2)
	require.ErrorIs(t, err, molecule.ErrBondExists)
	require.NoError(t, e.Undo())

	assert.Equal(t, 2.0, value(t, reg, "molkit_edits_total", map[string]string{"kind": "add_atom", "result": "ok"}))
	assert.Equal(t, 1.0, value(t, reg, "molkit_edits_total", map[string]string{"kind": "add_bond", "result": "rejected"}))
	assert.Equal(t, 1.0, value(t, reg, "molkit_history_steps_total", map[string]string{"op": "undo", "kind": "add_bond", "result": "ok"}))
	assert.Equal(t, 0.0, value(t, reg, "molkit_bonds", nil))
	assert.Equal(t, 2.0, value(t, reg, "molkit_groups", nil))
	assert.Equal(t, 2.0, value(t, reg, "molkit_undo_depth", nil))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg, "dup")
	assert.Panics(t, func() { metrics.New(reg, "dup") })
}
