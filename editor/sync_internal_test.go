package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molkit/groupmap"
)

func TestAddBond_FragmentMapOutOfSync_LeavesMoleculeUntouched(t *testing.T) {
	e := New()
	a, b := e.AddAtom(6), e.AddAtom(8)
	require.NoError(t, e.ClearHistory())
	// Drop atom b from the fragment map behind the editor's back.
	require.NoError(t, e.groups.RemoveElement(1))
	before := e.mol.Clone()

	_, err := e.AddBond(a, b, 1)
	require.ErrorIs(t, err, groupmap.ErrElementNotFound)
	assert.Equal(t, 0, e.mol.BondCount())
	assert.Equal(t, 0, e.UndoCount())
	assert.False(t, e.mol.GraphDirty())
	assert.Empty(t, e.mol.Neighbors(0))
	assert.Equal(t, before.AtomIDs(), e.mol.AtomIDs())
}

func TestAddAtom_FragmentMapOutOfSync_Panics(t *testing.T) {
	e := New()
	e.AddAtom(6)
	require.NoError(t, e.ClearHistory())
	// Claim the next position in the fragment map in advance.
	require.NoError(t, e.groups.AddElement(1))

	assert.Panics(t, func() { e.AddAtom(8) })
	assert.Equal(t, 1, e.mol.AtomCount())
	assert.Equal(t, 0, e.UndoCount())
}
