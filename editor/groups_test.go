package editor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molkit/builder"
	"github.com/katalvlaran/molkit/editor"
	"github.com/katalvlaran/molkit/molecule"
)

func ring(t *testing.T, e *editor.Editor, n int) []molecule.AtomID {
	t.Helper()
	ids := make([]molecule.AtomID, n)
	for i := range ids {
		ids[i] = e.AddAtom(6)
	}
	for i := range ids {
		_, err := e.AddBond(ids[i], ids[(i+1)%n], 1)
		require.NoError(t, err)
	}

	return ids
}

func TestGroups_TwoTriangles(t *testing.T) {
	e := editor.New()
	first := ring(t, e, 3)
	second := ring(t, e, 3)
	require.Equal(t, 2, e.GroupCount())

	// A triangle edge has a shared neighbor: nothing splits.
	require.NoError(t, e.RemoveBondBetween(first[0], first[1]))
	assert.Equal(t, 2, e.GroupCount())
	members, err := e.GroupMembers(first[1])
	require.NoError(t, err)
	assert.ElementsMatch(t, first, members)

	ga, err := e.Group(first[0])
	require.NoError(t, err)
	gb, err := e.Group(second[0])
	require.NoError(t, err)
	assert.NotEqual(t, ga, gb)
	checkGroupsCover(t, e)
}

func TestGroups_BuiltFragments(t *testing.T) {
	m, err := builder.Build(nil, nil, builder.Ring(6), builder.Star(4), builder.Grid(2, 2))
	require.NoError(t, err)
	e := editor.New(editor.WithMolecule(m))
	require.Equal(t, 3, e.GroupCount())

	// Star center sits right after the ring; dropping it frees its ligands.
	center := e.Molecule().AtomIDs()[6]
	require.NoError(t, e.RemoveAtom(center))
	assert.Equal(t, 5, e.GroupCount())
	checkGroupsCover(t, e)

	require.NoError(t, e.Undo())
	assert.Equal(t, 3, e.GroupCount())
	assert.True(t, snap(e).Equal(m))
}

func TestGroups_ChainSplits(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, 2, f.e.GroupCount())

	require.NoError(t, f.e.RemoveBond(f.bonds[1]))
	assert.Equal(t, 3, f.e.GroupCount())
	assert.Equal(t, [][]molecule.AtomID{
		{f.atoms[0], f.atoms[1]},
		{f.atoms[2], f.atoms[3]},
		{f.atoms[4]},
	}, f.e.Groups())

	require.NoError(t, f.e.Undo())
	assert.Equal(t, 2, f.e.GroupCount())
}

func TestGroups_PendantSplitsExactly(t *testing.T) {
	f := newFixture(t)
	_, err := f.e.AddBond(f.atoms[4], f.atoms[0], 1)
	require.NoError(t, err)
	require.Equal(t, 1, f.e.GroupCount())

	require.NoError(t, f.e.Undo())
	assert.Equal(t, [][]molecule.AtomID{
		{f.atoms[0], f.atoms[1], f.atoms[2], f.atoms[3]},
		{f.atoms[4]},
	}, f.e.Groups())
}

func TestGroups_RecomputeRepairsApproximateSplit(t *testing.T) {
	e := editor.New()
	ids := ring(t, e, 4)
	require.NoError(t, e.RemoveBondBetween(ids[0], ids[1]))
	// 0-3-2-1 is still one path, but no single shared neighbor proves it.
	require.Equal(t, 2, e.GroupCount())

	require.NoError(t, e.RecomputeGroups(context.Background()))
	assert.Equal(t, 1, e.GroupCount())
	checkGroupsCover(t, e)
}

func TestGroups_RecomputeCancelled(t *testing.T) {
	e := editor.New()
	ring(t, e, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, e.RecomputeGroups(ctx), context.Canceled)
}

func TestGroups_FollowCompaction(t *testing.T) {
	e := editor.New()
	a := ring(t, e, 3)
	b := ring(t, e, 3)

	// Removing a[0] moves b[2] into its position.
	require.NoError(t, e.RemoveAtom(a[0]))
	checkGroupsCover(t, e)
	members, err := e.GroupMembers(b[2])
	require.NoError(t, err)
	assert.ElementsMatch(t, b, members)
	members, err = e.GroupMembers(a[1])
	require.NoError(t, err)
	assert.ElementsMatch(t, a[1:], members)

	require.NoError(t, e.Undo())
	checkGroupsCover(t, e)
	assert.Equal(t, 2, e.GroupCount())
	members, err = e.GroupMembers(a[0])
	require.NoError(t, err)
	assert.ElementsMatch(t, a, members)
}

func TestGroups_BondRewireRecomputes(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.e.SetBondPair(f.bonds[2], f.atoms[3], f.atoms[4]))
	assert.Equal(t, 2, f.e.GroupCount())
	members, err := f.e.GroupMembers(f.atoms[4])
	require.NoError(t, err)
	assert.Equal(t, []molecule.AtomID{f.atoms[3], f.atoms[4]}, members)
}

func TestGroup_StaleID(t *testing.T) {
	e := editor.New()
	_, err := e.Group(molecule.AtomID(7))
	assert.ErrorIs(t, err, molecule.ErrAtomNotFound)
	_, err = e.GroupMembers(molecule.AtomID(7))
	assert.ErrorIs(t, err, molecule.ErrAtomNotFound)
}
