package editor

import (
	"fmt"
	"time"

	"github.com/katalvlaran/molkit/groupmap"
	"github.com/katalvlaran/molkit/molecule"
	"github.com/katalvlaran/molkit/undo"
)

// Options holds the Editor configuration.
type Options struct {
	// Logger receives edit and history events. Nil means NoopLogger.
	Logger *Logger
	// Metrics receives counters and gauges. Nil means NoopMetrics.
	Metrics MetricsRecorder
	// UndoLimit bounds the undo history; 0 is unlimited.
	UndoLimit int
	// MergeInteractive enables coalescing during interactive sessions.
	MergeInteractive bool
	// Molecule is the initial structure. It is cloned; nil starts empty.
	Molecule *molecule.Molecule
}

// Option configures an Editor via functional arguments.
type Option func(*Options)

// DefaultOptions returns no-op logging and metrics, unlimited history, and
// interactive merging enabled.
func DefaultOptions() Options {
	return Options{
		Logger:           NoopLogger(),
		Metrics:          NoopMetrics{},
		UndoLimit:        0,
		MergeInteractive: true,
	}
}

// WithLogger sets the logger.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}

// WithUndoLimit bounds the undo history. Negative values mean unlimited.
func WithUndoLimit(n int) Option {
	return func(o *Options) { o.UndoLimit = max(n, 0) }
}

// WithMergeInteractive enables or disables interactive coalescing.
func WithMergeInteractive(on bool) Option {
	return func(o *Options) { o.MergeInteractive = on }
}

// WithMolecule starts the editor on a copy of m. Loading is not an undo step.
func WithMolecule(m *molecule.Molecule) Option {
	return func(o *Options) { o.Molecule = m }
}

// Editor owns one molecule, its fragment map and its undo history.
type Editor struct {
	mol    *molecule.Molecule
	groups *groupmap.GroupMap
	stack  *undo.Stack[Command]

	macros           []*macroFrame
	interactive      bool
	mergeInteractive bool

	log     *Logger
	metrics MetricsRecorder
}

type macroFrame struct {
	text     string
	children []Command
}

// New creates an Editor.
func New(opts ...Option) *Editor {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = NoopLogger()
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}

	e := &Editor{
		mol:              molecule.New(),
		groups:           groupmap.New(0),
		stack:            undo.New(mergeCommands, undo.WithLimit(o.UndoLimit)),
		mergeInteractive: o.MergeInteractive,
		log:              o.Logger,
		metrics:          o.Metrics,
	}
	if o.Molecule != nil {
		e.mol = o.Molecule.Clone()
		// A freshly cloned molecule always yields its components.
		_ = e.rebuildGroups()
	}

	return e
}

// Molecule returns a read-only view of the current structure. The view is
// invalidated by ModifyMolecule and by undoing or redoing one; re-query it.
func (e *Editor) Molecule() molecule.Reader { return e.mol }

// SetInteractive starts (true) or ends (false) an interactive session.
func (e *Editor) SetInteractive(on bool) { e.interactive = on }

// Interactive reports whether an interactive session is active.
func (e *Editor) Interactive() bool { return e.interactive }

// SetMergeInteractive enables or disables coalescing for future sessions.
func (e *Editor) SetMergeInteractive(on bool) { e.mergeInteractive = on }

// SetUndoLimit changes the history bound. The history must be empty.
func (e *Editor) SetUndoLimit(n int) error { return e.stack.SetLimit(n) }

// exec applies c forward and records it. A rejected command records nothing.
func (e *Editor) exec(c Command) error {
	start := time.Now()
	if err := e.apply(c, true); err != nil {
		e.reject(c.Kind, start, err)
		return err
	}
	e.record(c, start)

	return nil
}

// record appends c to the open macro, or pushes it onto the undo stack.
func (e *Editor) record(c Command, start time.Time) {
	merged := false
	if n := len(e.macros); n > 0 {
		e.macros[n-1].children = append(e.macros[n-1].children, c)
	} else {
		merged = e.stack.Push(c, e.interactive && e.mergeInteractive)
	}
	e.log.logEdit(c.Kind, merged, nil)
	e.metrics.RecordEdit(c.Kind, merged, time.Since(start), nil)
	e.reportState()
}

func (e *Editor) reject(kind Kind, start time.Time, err error) {
	e.log.logEdit(kind, false, err)
	e.metrics.RecordEdit(kind, false, time.Since(start), err)
}

func (e *Editor) reportState() {
	e.metrics.RecordState(e.mol.AtomCount(), e.mol.BondCount(), e.groups.GroupCount(), e.stack.Index())
}

// Undo reverts the most recent step. No-op when there is nothing to undo.
func (e *Editor) Undo() error {
	if len(e.macros) > 0 {
		return ErrMacroOpen
	}
	c, ok := e.stack.Peek()
	if !ok {
		return nil
	}
	start := time.Now()
	err := e.stack.Undo(func(c Command) error { return e.apply(c, false) })
	e.log.logHistory("undo", c.Kind, e.stack.Index(), err)
	e.metrics.RecordUndo(c.Kind, time.Since(start), err)
	e.reportState()

	return err
}

// Redo reapplies the most recently undone step. No-op when there is
// nothing to redo.
func (e *Editor) Redo() error {
	if len(e.macros) > 0 {
		return ErrMacroOpen
	}
	c, ok := e.stack.PeekRedo()
	if !ok {
		return nil
	}
	start := time.Now()
	err := e.stack.Redo(func(c Command) error { return e.apply(c, true) })
	e.log.logHistory("redo", c.Kind, e.stack.Index(), err)
	e.metrics.RecordRedo(c.Kind, time.Since(start), err)
	e.reportState()

	return err
}

// CanUndo reports whether Undo would revert a step.
func (e *Editor) CanUndo() bool { return e.stack.CanUndo() }

// CanRedo reports whether Redo would reapply a step.
func (e *Editor) CanRedo() bool { return e.stack.CanRedo() }

// UndoText returns the label of the step Undo would revert, or "".
func (e *Editor) UndoText() string {
	c, _ := e.stack.Peek()
	return c.Text
}

// RedoText returns the label of the step Redo would reapply, or "".
func (e *Editor) RedoText() string {
	c, _ := e.stack.PeekRedo()
	return c.Text
}

// UndoIndex reports the history cursor: the number of applied steps.
func (e *Editor) UndoIndex() int { return e.stack.Index() }

// UndoCount reports the number of retained steps, including redoable ones.
func (e *Editor) UndoCount() int { return e.stack.Len() }

// SetClean marks the current state as saved.
func (e *Editor) SetClean() { e.stack.SetClean() }

// IsClean reports whether the current state is the saved one.
func (e *Editor) IsClean() bool { return e.stack.IsClean() }

// ClearHistory drops every step. The molecule is unchanged.
func (e *Editor) ClearHistory() error {
	if len(e.macros) > 0 {
		return ErrMacroOpen
	}
	e.stack.Clear()
	e.reportState()

	return nil
}

// BeginMacro starts grouping subsequent edits into one undo step labelled
// text. Macros nest; only the outermost one reaches the history.
func (e *Editor) BeginMacro(text string) {
	e.macros = append(e.macros, &macroFrame{text: text})
}

// EndMacro closes the innermost macro. An empty macro records nothing and a
// macro with a single edit records that edit alone.
func (e *Editor) EndMacro() error {
	n := len(e.macros)
	if n == 0 {
		return ErrNoMacro
	}
	f := e.macros[n-1]
	e.macros = e.macros[:n-1]

	var c Command
	switch len(f.children) {
	case 0:
		return nil
	case 1:
		c = f.children[0]
	default:
		c = Command{Kind: KindMacro, Text: f.text, data: &macro{children: f.children}}
	}
	if n > 1 {
		parent := e.macros[n-2]
		parent.children = append(parent.children, c)
		return nil
	}
	merged := e.stack.Push(c, e.interactive && e.mergeInteractive && c.Kind != KindMacro)
	e.log.logEdit(c.Kind, merged, nil)
	e.reportState()

	return nil
}

// abortMacro closes the innermost macro and reverts every edit recorded in it.
func (e *Editor) abortMacro() error {
	n := len(e.macros)
	if n == 0 {
		return ErrNoMacro
	}
	f := e.macros[n-1]
	e.macros = e.macros[:n-1]
	for i := len(f.children) - 1; i >= 0; i-- {
		if err := e.apply(f.children[i], false); err != nil {
			return fmt.Errorf("editor: revert %s: %w", f.children[i].Kind, err)
		}
	}

	return nil
}

// withMacro runs fn inside a macro; if fn fails the partial edits are reverted.
func (e *Editor) withMacro(text string, fn func() error) error {
	e.BeginMacro(text)
	if err := fn(); err != nil {
		if aerr := e.abortMacro(); aerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, aerr)
		}
		return err
	}

	return e.EndMacro()
}
