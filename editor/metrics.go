package editor

import "time"

// MetricsRecorder receives editor activity. Implementations must be cheap:
// they run inline on every edit.
type MetricsRecorder interface {
	// RecordEdit is called after each edit attempt. merged reports whether
	// the command was folded into the top of the undo stack; err is the
	// rejection reason, if any.
	RecordEdit(kind Kind, merged bool, duration time.Duration, err error)

	// RecordUndo is called after each Undo that applied a command.
	RecordUndo(kind Kind, duration time.Duration, err error)

	// RecordRedo is called after each Redo that applied a command.
	RecordRedo(kind Kind, duration time.Duration, err error)

	// RecordState reports the molecule size, the number of fragments and the
	// undo stack depth after a change.
	RecordState(atoms, bonds, groups, undoDepth int)
}

// NoopMetrics is a MetricsRecorder that records nothing.
type NoopMetrics struct{}

// RecordEdit implements MetricsRecorder.
func (NoopMetrics) RecordEdit(Kind, bool, time.Duration, error) {}

// RecordUndo implements MetricsRecorder.
func (NoopMetrics) RecordUndo(Kind, time.Duration, error) {}

// RecordRedo implements MetricsRecorder.
func (NoopMetrics) RecordRedo(Kind, time.Duration, error) {}

// RecordState implements MetricsRecorder.
func (NoopMetrics) RecordState(int, int, int, int) {}

var _ MetricsRecorder = NoopMetrics{}
