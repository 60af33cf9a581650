// File: methods_bonds.go
// Role: Bond edits and the bond primitives shared by do, undo and redo.
package editor

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/molkit/molecule"
)

// AddBond bonds atoms a and b with the given order and returns the bond id.
//
// Errors:
//   - molecule.ErrAtomNotFound: a or b is stale.
//   - molecule.ErrInvalidBond: a == b.
//   - molecule.ErrBondExists: a and b are already bonded.
func (e *Editor) AddBond(a, b molecule.AtomID, order uint8) (molecule.BondID, error) {
	start := time.Now()
	pa, err := e.mol.AtomPosition(a)
	if err != nil {
		e.reject(KindAddBond, start, err)
		return 0, err
	}
	pb, err := e.mol.AtomPosition(b)
	if err != nil {
		e.reject(KindAddBond, start, err)
		return 0, err
	}
	id, pos, err := e.mol.AppendBond(pa, pb, order)
	if err != nil {
		e.reject(KindAddBond, start, err)
		return 0, err
	}
	if err := e.groups.Connect(pa, pb); err != nil {
		// The bond is last, so removing it restores the molecule exactly.
		_, _, _ = e.mol.RemoveBondAt(pos)
		err = fmt.Errorf("editor: fragment map out of sync: %w", err)
		e.reject(KindAddBond, start, err)
		return 0, err
	}
	rec := molecule.BondRecord{Pair: e.mol.BondPair(pos), Order: order}
	e.record(Command{Kind: KindAddBond, Text: "Add Bond", data: &bondChange{id: id, pos: pos, rec: rec}}, start)

	return id, nil
}

// RemoveBond removes one bond. The last bond moves into the freed position;
// its id keeps resolving. Fragments split only when the former endpoints
// share no neighbor.
func (e *Editor) RemoveBond(id molecule.BondID) error {
	start := time.Now()
	b, err := e.mol.BondPosition(id)
	if err != nil {
		e.reject(KindRemoveBond, start, err)
		return err
	}
	rec, _ := e.mol.Bond(b)

	return e.exec(Command{Kind: KindRemoveBond, Text: "Remove Bond", data: &bondChange{id: id, pos: b, rec: rec}})
}

// RemoveBondBetween removes the bond joining atoms a and b.
func (e *Editor) RemoveBondBetween(a, b molecule.AtomID) error {
	id, err := e.BondBetween(a, b)
	if err != nil {
		e.reject(KindRemoveBond, time.Now(), err)
		return err
	}

	return e.RemoveBond(id)
}

// BondBetween returns the id of the bond joining atoms a and b.
func (e *Editor) BondBetween(a, b molecule.AtomID) (molecule.BondID, error) {
	pa, err := e.mol.AtomPosition(a)
	if err != nil {
		return 0, err
	}
	pb, err := e.mol.AtomPosition(b)
	if err != nil {
		return 0, err
	}
	pos, ok := e.mol.FindBond(pa, pb)
	if !ok {
		return 0, fmt.Errorf("%w: atoms %d-%d", molecule.ErrBondNotFound, a, b)
	}
	id, _ := e.mol.BondID(pos)

	return id, nil
}

// SetBondOrders replaces every bond order at once.
func (e *Editor) SetBondOrders(orders []uint8) error {
	return e.exec(Command{
		Kind: KindSetBondOrders,
		Text: "Change Bond Orders",
		data: &column[uint8]{before: e.mol.BondOrders(), after: slices.Clone(orders)},
	})
}

// SetBondOrder changes the order of one bond. Repeated changes of the same
// bond during an interactive session form one undo step.
func (e *Editor) SetBondOrder(id molecule.BondID, order uint8) error {
	b, err := e.resolveBond(KindSetBondOrder, id)
	if err != nil {
		return err
	}

	return e.exec(Command{
		Kind: KindSetBondOrder,
		Text: "Change Bond Order",
		data: &bondValue[uint8]{id: id, before: e.mol.BondOrder(b), after: order},
	})
}

// SetBondPairs rewires every bond at once. pairs are atom positions in the
// current molecule; fragments are recomputed exactly.
func (e *Editor) SetBondPairs(pairs []molecule.BondPair) error {
	return e.exec(Command{
		Kind: KindSetBondPairs,
		Text: "Update Bonds",
		data: &column[molecule.BondPair]{before: e.mol.BondPairs(), after: slices.Clone(pairs)},
	})
}

// SetBondPair rewires one bond to join atoms a and b; fragments are
// recomputed exactly.
func (e *Editor) SetBondPair(id molecule.BondID, a, b molecule.AtomID) error {
	start := time.Now()
	pos, err := e.resolveBond(KindSetBondPair, id)
	if err != nil {
		return err
	}
	pa, err := e.mol.AtomPosition(a)
	if err != nil {
		e.reject(KindSetBondPair, start, err)
		return err
	}
	pb, err := e.mol.AtomPosition(b)
	if err != nil {
		e.reject(KindSetBondPair, start, err)
		return err
	}

	return e.exec(Command{
		Kind: KindSetBondPair,
		Text: "Update Bond",
		data: &bondValue[molecule.BondPair]{
			id:     id,
			before: e.mol.BondPair(pos),
			after:  molecule.BondPair{First: pa, Second: pb},
		},
	})
}

func (e *Editor) resolveBond(kind Kind, id molecule.BondID) (int, error) {
	b, err := e.mol.BondPosition(id)
	if err != nil {
		e.reject(kind, time.Now(), err)
	}

	return b, err
}

func (e *Editor) atBond(id molecule.BondID, fn func(b int) error) error {
	b, err := e.mol.BondPosition(id)
	if err != nil {
		return err
	}

	return fn(b)
}

// insertBond places d.rec back at d.pos under d.id and connects its endpoints.
func (e *Editor) insertBond(d *bondChange) error {
	if err := e.mol.InsertBondAt(d.pos, d.rec, d.id); err != nil {
		return err
	}
	if err := e.groups.Connect(d.rec.Pair.First, d.rec.Pair.Second); err != nil {
		return fmt.Errorf("editor: fragment map out of sync: %w", err)
	}

	return nil
}

// eraseBond removes bond id by swap-with-last compaction, then applies the
// neighbor-intersection split rule to its former endpoints.
func (e *Editor) eraseBond(id molecule.BondID) error {
	b, err := e.mol.BondPosition(id)
	if err != nil {
		return err
	}
	rec, _, err := e.mol.RemoveBondAt(b)
	if err != nil {
		return err
	}
	a, c := rec.Pair.First, rec.Pair.Second
	na, nc := e.mol.Neighbors(a), e.mol.Neighbors(c)
	// Detach the side with fewer neighbors; a lone pendant atom then splits
	// off exactly.
	if len(nc) < len(na) {
		a, c, na, nc = c, a, nc, na
	}
	if err := e.groups.DisconnectIfIsolated(a, na, c, nc); err != nil {
		return fmt.Errorf("editor: fragment map out of sync: %w", err)
	}

	return nil
}
