package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/molkit/bfs"
	"github.com/katalvlaran/molkit/molecule"
)

// errReached stops a path search once the target atom is visited.
var errReached = errors.New("editor: target reached")

// BondPath returns a shortest bond path from a to b as atom ids, both ends
// included. Among equally short paths the choice is deterministic for a
// given molecule. BondPath(a, a) is [a].
func (e *Editor) BondPath(ctx context.Context, a, b molecule.AtomID) ([]molecule.AtomID, error) {
	pa, err := e.mol.AtomPosition(a)
	if err != nil {
		return nil, err
	}
	pb, err := e.mol.AtomPosition(b)
	if err != nil {
		return nil, err
	}

	res, err := bfs.BFS(e.mol, pa,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(p, _ int) error {
			if p == pb {
				return errReached
			}
			return nil
		}),
	)
	if err != nil && !errors.Is(err, errReached) {
		return nil, err
	}
	path, err := res.PathTo(pb)
	if err != nil {
		return nil, fmt.Errorf("%w: atoms %d and %d", ErrNoPath, a, b)
	}

	return e.atomIDs(path), nil
}

// BondDistance returns the number of bonds on a shortest path from a to b.
func (e *Editor) BondDistance(ctx context.Context, a, b molecule.AtomID) (int, error) {
	path, err := e.BondPath(ctx, a, b)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}

// AtomsWithin returns the atoms at most depth bonds away from id, nearest
// first, starting with id itself. A negative depth is rejected with
// bfs.ErrOptionViolation.
func (e *Editor) AtomsWithin(ctx context.Context, id molecule.AtomID, depth int) ([]molecule.AtomID, error) {
	p, err := e.mol.AtomPosition(id)
	if err != nil {
		return nil, err
	}
	if depth == 0 {
		return []molecule.AtomID{id}, nil
	}

	res, err := bfs.BFS(e.mol, p, bfs.WithContext(ctx), bfs.WithMaxDepth(depth))
	if err != nil {
		return nil, err
	}

	return e.atomIDs(res.Order), nil
}

// Substituent returns the atoms reachable from via without crossing the
// bond to from, via first. from and via must be bonded. When that bond sits
// in a ring the result holds every other ring atom.
func (e *Editor) Substituent(ctx context.Context, from, via molecule.AtomID) ([]molecule.AtomID, error) {
	pf, err := e.mol.AtomPosition(from)
	if err != nil {
		return nil, err
	}
	pv, err := e.mol.AtomPosition(via)
	if err != nil {
		return nil, err
	}
	if _, ok := e.mol.FindBond(pf, pv); !ok {
		return nil, fmt.Errorf("%w: atoms %d and %d", molecule.ErrBondNotFound, from, via)
	}

	res, err := bfs.BFS(e.mol, pv,
		bfs.WithContext(ctx),
		bfs.WithFilterNeighbor(func(_, nb int) bool { return nb != pf }),
	)
	if err != nil {
		return nil, err
	}

	return e.atomIDs(res.Order), nil
}
