package editor

import (
	"context"
	"fmt"

	"github.com/katalvlaran/molkit/bfs"
	"github.com/katalvlaran/molkit/molecule"
)

// Group returns the handle of the fragment holding atom id. Handles are
// valid until the next edit.
func (e *Editor) Group(id molecule.AtomID) (int, error) {
	p, err := e.mol.AtomPosition(id)
	if err != nil {
		return 0, err
	}

	return e.groups.Group(p)
}

// GroupMembers returns the atoms sharing a fragment with id, in position order.
func (e *Editor) GroupMembers(id molecule.AtomID) ([]molecule.AtomID, error) {
	g, err := e.Group(id)
	if err != nil {
		return nil, err
	}
	members, err := e.groups.Members(g)
	if err != nil {
		return nil, err
	}

	return e.atomIDs(members), nil
}

// Groups returns every fragment as atom ids, ordered by the lowest position
// in each fragment.
func (e *Editor) Groups() [][]molecule.AtomID {
	all := e.groups.AllGroups()
	out := make([][]molecule.AtomID, len(all))
	for i, members := range all {
		out[i] = e.atomIDs(members)
	}

	return out
}

// GroupCount reports the number of fragments.
func (e *Editor) GroupCount() int { return e.groups.GroupCount() }

// RecomputeGroups replaces the incremental fragment map with the exact
// connected components of the bond graph.
func (e *Editor) RecomputeGroups(ctx context.Context) error {
	comps, err := bfs.Components(e.mol, bfs.WithContext(ctx))
	if err != nil {
		return err
	}
	if err := e.installGroups(comps); err != nil {
		return err
	}
	e.log.Debug("groups recomputed", "groups", len(comps))
	e.reportState()

	return nil
}

func (e *Editor) rebuildGroups() error {
	comps, err := bfs.Components(e.mol)
	if err != nil {
		return err
	}

	return e.installGroups(comps)
}

func (e *Editor) installGroups(comps [][]int) error {
	e.groups.Reset(e.mol.AtomCount())
	for _, comp := range comps {
		for _, p := range comp[1:] {
			if err := e.groups.Connect(comp[0], p); err != nil {
				return fmt.Errorf("editor: install groups: %w", err)
			}
		}
	}

	return nil
}

func (e *Editor) atomIDs(positions []int) []molecule.AtomID {
	out := make([]molecule.AtomID, len(positions))
	for i, p := range positions {
		out[i], _ = e.mol.AtomID(p)
	}

	return out
}
