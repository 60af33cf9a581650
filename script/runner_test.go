package script_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molkit/editor"
	"github.com/katalvlaran/molkit/molecule"
	"github.com/katalvlaran/molkit/script"
)

func run(t *testing.T, src string) (*editor.Editor, *script.Runner, error) {
	t.Helper()
	s, err := script.Parse([]byte(src))
	require.NoError(t, err)
	e := editor.New()
	r := script.NewRunner(e)
	return e, r, r.Run(context.Background(), s)
}

func TestLoad_Fixture(t *testing.T) {
	s, err := script.Load("testdata/ethanol.yaml")
	require.NoError(t, err)
	assert.Equal(t, "ethanol", s.Name)

	e := editor.New()
	r := script.NewRunner(e)
	require.NoError(t, r.Run(context.Background(), s))

	o, ok := r.Atom("o")
	require.True(t, ok)
	p, err := e.Molecule().AtomPosition(o)
	require.NoError(t, err)
	pos, _ := e.Molecule().Position3D(p)
	assert.Equal(t, 2.3, pos.X)
	_, err = e.Molecule().AtomPosition(mustAtom(t, r, "c1"))
	assert.ErrorIs(t, err, molecule.ErrAtomNotFound)
}

func mustAtom(t *testing.T, r *script.Runner, ref string) molecule.AtomID {
	t.Helper()
	id, ok := r.Atom(ref)
	require.True(t, ok, ref)
	return id
}

func TestRun_UndoRedoAndRefs(t *testing.T) {
	e, r, err := run(t, `
name: pair
steps:
  - {op: add_atom, ref: a, element: 6}
  - {op: add_atom, ref: b, element: 6}
  - {op: add_bond, ref: ab, atoms: [a, b], order: 3}
  - {op: undo}
  - {op: expect, want: {bonds: 0, groups: 2}}
  - {op: redo}
  - {op: expect, want: {bonds: 1, groups: 1}}
`)
	require.NoError(t, err)
	id, ok := r.Bond("ab")
	require.True(t, ok)
	b, err := e.Molecule().BondPosition(id)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), e.Molecule().BondOrder(b))
}

func TestRun_AtomProperties(t *testing.T) {
	e, r, err := run(t, `
steps:
  - {op: add_atom, ref: n, element: 7}
  - {op: set_element, atom: n, element: 15}
  - {op: set_charge, atom: n, charge: 1}
  - {op: set_hybridization, atom: n, hybridization: 3}
  - {op: set_color, atom: n, color: [10, 20, 30]}
  - {op: set_force, atom: n, vector: [0, 0, 1]}
  - {op: add_unit_cell, cell: [[5, 0, 0], [0, 5, 0], [0, 0, 5]]}
  - {op: expect, want: {undo_count: 7}}
`)
	require.NoError(t, err)
	rec, err := e.Molecule().Atom(0)
	require.NoError(t, err)
	assert.Equal(t, molecule.AtomRecord{
		AtomicNumber:  15,
		FormalCharge:  1,
		Hybridization: molecule.HybridizationSP3,
		Color:         molecule.Color{R: 10, G: 20, B: 30},
		ForceVector:   molecule.Vector3{Z: 1},
	}, rec)
	cell, ok := e.Molecule().UnitCell()
	require.True(t, ok)
	assert.Equal(t, 5.0, cell.B.Y)
	_, ok = r.Atom("missing")
	assert.False(t, ok)
}

func TestRun_BondEditsAndClear(t *testing.T) {
	_, _, err := run(t, `
steps:
  - {op: add_atom, ref: a, element: 6}
  - {op: add_atom, ref: b, element: 6}
  - {op: add_atom, ref: c, element: 6}
  - {op: add_bond, ref: ab, atoms: [a, b]}
  - {op: set_bond_pair, bond: ab, atoms: [b, c]}
  - {op: expect, want: {groups: 2}}
  - {op: set_bond_order, atoms: [c, b], order: 2}
  - {op: remove_bond, bond: ab}
  - {op: expect, want: {bonds: 0, groups: 3}}
  - {op: clear_atoms}
  - {op: expect, want: {atoms: 0, groups: 0}}
  - {op: undo}
  - {op: recompute_groups}
  - {op: expect, want: {atoms: 3, groups: 3}}
  - {op: set_clean}
  - {op: clear_history}
  - {op: expect, want: {undo_count: 0}}
`)
	require.NoError(t, err)
}

func TestRun_ExpectationFails(t *testing.T) {
	e, _, err := run(t, `
name: wrong
steps:
  - {op: add_atom, element: 1}
  - {op: expect, want: {atoms: 2}}
  - {op: add_atom, element: 1}
`)
	require.ErrorIs(t, err, script.ErrExpectation)
	assert.Contains(t, err.Error(), "step 1")
	assert.Equal(t, 1, e.Molecule().AtomCount(), "steps after the failure do not run")
}

func TestRun_TraversalExpectations(t *testing.T) {
	_, _, err := run(t, `
name: propane
steps:
  - {op: add_atom, ref: c1, element: 6}
  - {op: add_atom, ref: c2, element: 6}
  - {op: add_atom, ref: c3, element: 6}
  - {op: add_atom, ref: cl, element: 17}
  - {op: add_bond, atoms: [c1, c2]}
  - {op: add_bond, atoms: [c2, c3]}
  - {op: expect_distance, atoms: [c1, c3], want: {distance: 2}}
  - {op: expect_distance, atoms: [c3, cl], want: {distance: -1}}
  - {op: expect_within, atom: c1, want: {atoms: 1}}
  - {op: expect_within, atom: c1, depth: 1, want: {atoms: 2}}
  - {op: expect_substituent, atoms: [c1, c2], want: {atoms: 2}}
  - {op: add_bond, atoms: [c3, cl]}
  - {op: expect_distance, atoms: [c1, cl], want: {distance: 3}}
  - {op: expect_substituent, atoms: [c2, c3], want: {atoms: 2}}
`)
	require.NoError(t, err)

	_, _, err = run(t, `
steps:
  - {op: add_atom, ref: a, element: 6}
  - {op: add_atom, ref: b, element: 6}
  - {op: add_bond, atoms: [a, b]}
  - {op: expect_distance, atoms: [a, b], want: {distance: 2}}
`)
	require.ErrorIs(t, err, script.ErrExpectation)
	assert.Contains(t, err.Error(), "distance = 1")

	_, _, err = run(t, `
steps:
  - {op: add_atom, ref: a, element: 6}
  - {op: add_atom, ref: b, element: 6}
  - {op: expect_substituent, atoms: [a, b], want: {atoms: 1}}
`)
	assert.ErrorIs(t, err, molecule.ErrBondNotFound)
}

func TestRun_UnknownRef(t *testing.T) {
	_, _, err := run(t, `
steps:
  - {op: remove_atom, atom: ghost}
`)
	assert.ErrorIs(t, err, script.ErrUnknownRef)
}

func TestRun_EditorErrorsSurface(t *testing.T) {
	_, _, err := run(t, `
steps:
  - {op: add_atom, ref: a, element: 6}
  - {op: add_atom, ref: b, element: 6}
  - {op: add_bond, atoms: [a, b]}
  - {op: add_bond, atoms: [b, a]}
`)
	assert.ErrorIs(t, err, molecule.ErrBondExists)

	_, _, err = run(t, `
steps:
  - {op: end_macro}
`)
	assert.ErrorIs(t, err, editor.ErrNoMacro)
}

func TestRun_Cancelled(t *testing.T) {
	s, err := script.Parse([]byte("steps:\n  - {op: add_atom, element: 6}\n"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := editor.New()
	err = script.NewRunner(e).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, e.Molecule().AtomCount())
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"unknown op", "steps:\n  - {op: explode}\n", script.ErrUnknownOp},
		{"missing atom", "steps:\n  - {op: remove_atom}\n", script.ErrBadOperand},
		{"missing pos", "steps:\n  - {op: set_position, atom: a}\n", script.ErrBadOperand},
		{"one-atom bond", "steps:\n  - {op: add_bond, atoms: [a]}\n", script.ErrBadOperand},
		{"bond order zero", "steps:\n  - {op: set_bond_order, bond: x}\n", script.ErrBadOperand},
		{"duplicate ref", "steps:\n  - {op: add_atom, ref: a}\n  - {op: add_atom, ref: a}\n", script.ErrBadOperand},
		{"empty want", "steps:\n  - {op: expect}\n", script.ErrBadOperand},
		{"distance without want", "steps:\n  - {op: expect_distance, atoms: [a, b], want: {atoms: 1}}\n", script.ErrBadOperand},
		{"within without atom", "steps:\n  - {op: expect_within, want: {atoms: 1}}\n", script.ErrBadOperand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := script.Parse([]byte(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := script.Parse([]byte("steps: [unclosed"))
	assert.Error(t, err)
	_, err = script.Parse([]byte("steps:\n  - {op: add_atom, pos: [1, 2]}\n"))
	assert.Error(t, err, "pos needs three components")
}

func TestOps_Sorted(t *testing.T) {
	ops := script.Ops()
	assert.Contains(t, ops, "add_atom")
	assert.Contains(t, ops, "expect")
	assert.IsNonDecreasing(t, ops)
}
