package editor_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molkit/editor"
	"github.com/katalvlaran/molkit/molecule"
)

func TestDrag_MergesIntoOneStep(t *testing.T) {
	e := editor.New()
	id := e.AddAtomAt(6, molecule.Vector3{})
	require.Equal(t, 1, e.UndoCount())

	e.SetInteractive(true)
	for i := 1; i <= 3; i++ {
		require.NoError(t, e.SetAtomPosition3D(id, molecule.Vector3{X: float64(i)}))
	}
	e.SetInteractive(false)

	assert.Equal(t, 2, e.UndoCount())
	pos, _ := e.Molecule().Position3D(0)
	assert.Equal(t, 3.0, pos.X)

	require.NoError(t, e.Undo())
	pos, _ = e.Molecule().Position3D(0)
	assert.Equal(t, molecule.Vector3{}, pos)
	assert.Equal(t, 1, e.Molecule().AtomCount())
}

func TestDrag_ManyAtomsOneStep(t *testing.T) {
	f := newFixture(t)
	before := snap(f.e)

	f.e.SetInteractive(true)
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[0], molecule.Vector3{Y: 1}))
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[3], molecule.Vector3{Y: 2}))
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[0], molecule.Vector3{Y: 3}))
	f.e.SetInteractive(false)

	require.Equal(t, 1, f.e.UndoCount())
	p0, _ := f.e.Molecule().Position3D(0)
	p3, _ := f.e.Molecule().Position3D(3)
	assert.Equal(t, 3.0, p0.Y)
	assert.Equal(t, 2.0, p3.Y)

	require.NoError(t, f.e.Undo())
	assert.True(t, snap(f.e).Equal(before))
}

func TestMerge_OffOutsideInteractive(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[0], molecule.Vector3{Y: 1}))
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[0], molecule.Vector3{Y: 2}))
	assert.Equal(t, 2, f.e.UndoCount())
}

func TestMerge_Disabled(t *testing.T) {
	f := newFixture(t, editor.WithMergeInteractive(false))
	f.e.SetInteractive(true)
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[0], molecule.Vector3{Y: 1}))
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[0], molecule.Vector3{Y: 2}))
	assert.Equal(t, 2, f.e.UndoCount())

	f.e.SetMergeInteractive(true)
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[0], molecule.Vector3{Y: 3}))
	assert.Equal(t, 2, f.e.UndoCount())
}

func TestMerge_DifferentKindsStaySeparate(t *testing.T) {
	f := newFixture(t)
	f.e.SetInteractive(true)
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[0], molecule.Vector3{Y: 1}))
	require.NoError(t, f.e.SetAtomicNumber(f.atoms[0], 9))
	require.NoError(t, f.e.SetAtomicNumber(f.atoms[0], 17))
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[0], molecule.Vector3{Y: 2}))
	assert.Equal(t, 4, f.e.UndoCount())
}

func TestMerge_BondOrderSameBondOnly(t *testing.T) {
	f := newFixture(t)
	f.e.SetInteractive(true)
	require.NoError(t, f.e.SetBondOrder(f.bonds[0], 2))
	require.NoError(t, f.e.SetBondOrder(f.bonds[0], 3))
	require.Equal(t, 1, f.e.UndoCount())
	require.NoError(t, f.e.SetBondOrder(f.bonds[1], 2))
	assert.Equal(t, 2, f.e.UndoCount())

	require.NoError(t, f.e.Undo())
	assert.Equal(t, uint8(3), f.e.Molecule().BondOrder(0))
	require.NoError(t, f.e.Undo())
	assert.Equal(t, uint8(1), f.e.Molecule().BondOrder(0))
}

func TestMerge_ForceVectors(t *testing.T) {
	f := newFixture(t)
	f.e.SetInteractive(true)
	require.NoError(t, f.e.SetForceVector(f.atoms[1], molecule.Vector3{Z: 1}))
	require.NoError(t, f.e.SetForceVector(f.atoms[2], molecule.Vector3{Z: 2}))
	require.NoError(t, f.e.SetForceVector(f.atoms[1], molecule.Vector3{Z: 3}))
	f.e.SetInteractive(false)
	require.Equal(t, 1, f.e.UndoCount())
	assert.Equal(t, molecule.Vector3{Z: 3}, f.e.Molecule().ForceVector(1))

	require.NoError(t, f.e.Undo())
	assert.Equal(t, molecule.Vector3{}, f.e.Molecule().ForceVector(1))
	assert.Equal(t, molecule.Vector3{}, f.e.Molecule().ForceVector(2))

	require.NoError(t, f.e.Redo())
	assert.Equal(t, molecule.Vector3{Z: 3}, f.e.Molecule().ForceVector(1))
	assert.Equal(t, molecule.Vector3{Z: 2}, f.e.Molecule().ForceVector(2))
}

func TestMerge_BulkPositions(t *testing.T) {
	f := newFixture(t)
	before := snap(f.e)
	f.e.SetInteractive(true)
	for i := 1; i <= 3; i++ {
		ps := f.e.Molecule().Positions3D()
		for j := range ps {
			ps[j].Z = float64(i)
		}
		require.NoError(t, f.e.SetAtomPositions3D(ps))
	}
	f.e.SetInteractive(false)
	require.Equal(t, 1, f.e.UndoCount())

	require.NoError(t, f.e.Undo())
	assert.True(t, snap(f.e).Equal(before))
}

func TestMacro_OneStep(t *testing.T) {
	e := editor.New()
	e.BeginMacro("Build")
	a := e.AddAtom(6)
	b := e.AddAtom(8)
	_, err := e.AddBond(a, b, 2)
	require.NoError(t, err)
	require.NoError(t, e.EndMacro())

	assert.Equal(t, 1, e.UndoCount())
	assert.Equal(t, "Build", e.UndoText())

	require.NoError(t, e.Undo())
	assert.Equal(t, 0, e.Molecule().AtomCount())
	assert.Equal(t, "Build", e.RedoText())

	require.NoError(t, e.Redo())
	assert.Equal(t, 2, e.Molecule().AtomCount())
	_, err = e.BondBetween(a, b)
	assert.NoError(t, err)
}

func TestMacro_Nesting(t *testing.T) {
	e := editor.New()
	e.BeginMacro("Outer")
	e.AddAtom(6)
	e.BeginMacro("Inner")
	e.AddAtom(7)
	e.AddAtom(8)
	require.NoError(t, e.EndMacro())
	require.Equal(t, 0, e.UndoCount())
	require.NoError(t, e.EndMacro())

	assert.Equal(t, 1, e.UndoCount())
	assert.Equal(t, "Outer", e.UndoText())
	require.NoError(t, e.Undo())
	assert.Equal(t, 0, e.Molecule().AtomCount())
}

func TestMacro_EmptyAndSingle(t *testing.T) {
	e := editor.New()
	e.BeginMacro("Nothing")
	require.NoError(t, e.EndMacro())
	assert.Equal(t, 0, e.UndoCount())

	e.BeginMacro("One")
	e.AddAtom(6)
	require.NoError(t, e.EndMacro())
	assert.Equal(t, 1, e.UndoCount())
	assert.Equal(t, "Add Atom", e.UndoText())

	assert.ErrorIs(t, e.EndMacro(), editor.ErrNoMacro)
}

func TestMacro_BlocksHistory(t *testing.T) {
	e := editor.New()
	e.AddAtom(6)
	e.BeginMacro("Open")
	assert.ErrorIs(t, e.Undo(), editor.ErrMacroOpen)
	assert.ErrorIs(t, e.Redo(), editor.ErrMacroOpen)
	assert.ErrorIs(t, e.ClearHistory(), editor.ErrMacroOpen)
	require.NoError(t, e.EndMacro())
	assert.NoError(t, e.Undo())
}

func TestUndoLimit_DropsOldest(t *testing.T) {
	e := editor.New(editor.WithUndoLimit(2))
	for i := 0; i < 3; i++ {
		e.AddAtom(6)
	}
	assert.Equal(t, 2, e.UndoCount())

	require.NoError(t, e.Undo())
	require.NoError(t, e.Undo())
	assert.False(t, e.CanUndo())
	assert.Equal(t, 1, e.Molecule().AtomCount())
	assert.NoError(t, e.Undo(), "undo with nothing to undo is a no-op")
}

func TestSetUndoLimit_RequiresEmptyHistory(t *testing.T) {
	e := editor.New()
	e.AddAtom(6)
	assert.Error(t, e.SetUndoLimit(5))
	require.NoError(t, e.ClearHistory())
	assert.NoError(t, e.SetUndoLimit(5))
}

func TestClean_TracksSavedState(t *testing.T) {
	e := editor.New()
	assert.True(t, e.IsClean())
	e.AddAtom(6)
	e.SetClean()
	assert.True(t, e.IsClean())

	e.AddAtom(7)
	assert.False(t, e.IsClean())
	require.NoError(t, e.Undo())
	assert.True(t, e.IsClean())
	require.NoError(t, e.Undo())
	assert.False(t, e.IsClean())

	// Branching off drops the saved state for good.
	e.AddAtom(8)
	require.NoError(t, e.Undo())
	assert.False(t, e.IsClean())
}

func TestClean_NoMergeIntoSavedStep(t *testing.T) {
	f := newFixture(t)
	f.e.SetInteractive(true)
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[0], molecule.Vector3{Y: 1}))
	f.e.SetClean()
	require.NoError(t, f.e.SetAtomPosition3D(f.atoms[0], molecule.Vector3{Y: 2}))
	assert.Equal(t, 2, f.e.UndoCount())
	assert.False(t, f.e.IsClean())
}

func TestRedoTail_DroppedByNewEdit(t *testing.T) {
	e := editor.New()
	e.AddAtom(6)
	e.AddAtom(7)
	require.NoError(t, e.Undo())
	require.True(t, e.CanRedo())

	e.AddAtom(8)
	assert.False(t, e.CanRedo())
	assert.Equal(t, 2, e.UndoCount())
	assert.Equal(t, uint8(8), e.Molecule().AtomicNumber(1))
}

type countingMetrics struct {
	edits, merged, rejected int
	undos, redos            int
	atoms, groups, depth    int
}

func (m *countingMetrics) RecordEdit(_ editor.Kind, merged bool, _ time.Duration, err error) {
	switch {
	case err != nil:
		m.rejected++
	case merged:
		m.merged++
	default:
		m.edits++
	}
}

func (m *countingMetrics) RecordUndo(editor.Kind, time.Duration, error) { m.undos++ }
func (m *countingMetrics) RecordRedo(editor.Kind, time.Duration, error) { m.redos++ }

func (m *countingMetrics) RecordState(atoms, _, groups, depth int) {
	m.atoms, m.groups, m.depth = atoms, groups, depth
}

func TestMetrics_Recorded(t *testing.T) {
	rec := &countingMetrics{}
	e := editor.New(editor.WithMetrics(rec))
	a := e.AddAtom(6)
	e.AddAtom(8)
	e.SetInteractive(true)
	require.NoError(t, e.SetAtomPosition3D(a, molecule.Vector3{X: 1}))
	require.NoError(t, e.SetAtomPosition3D(a, molecule.Vector3{X: 2}))
	e.SetInteractive(false)
	assert.Error(t, e.SetAtomicNumber(molecule.AtomID(99), 1))
	require.NoError(t, e.Undo())
	require.NoError(t, e.Redo())

	assert.Equal(t, 3, rec.edits)
	assert.Equal(t, 1, rec.merged)
	assert.Equal(t, 1, rec.rejected)
	assert.Equal(t, 1, rec.undos)
	assert.Equal(t, 1, rec.redos)
	assert.Equal(t, 2, rec.atoms)
	assert.Equal(t, 2, rec.groups)
	assert.Equal(t, 3, rec.depth)
}

func TestLogger_EditFields(t *testing.T) {
	var buf bytes.Buffer
	log := editor.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := editor.New(editor.WithLogger(log))

	e.AddAtom(6)
	assert.Contains(t, buf.String(), "kind=add_atom")

	buf.Reset()
	err := e.RemoveAtom(molecule.AtomID(42))
	require.True(t, errors.Is(err, molecule.ErrAtomNotFound))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "kind=remove_atom")

	buf.Reset()
	require.NoError(t, e.Undo())
	assert.Contains(t, buf.String(), "undo applied")
}
