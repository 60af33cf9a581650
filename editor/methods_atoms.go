// File: methods_atoms.go
// Role: Atom edits and the compaction-aware atom primitives shared by do,
// undo and redo.
package editor

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/molkit/molecule"
)

// AddAtom appends an atom with the given atomic number and returns its id.
// When the coordinate column is present the new atom sits at the origin.
func (e *Editor) AddAtom(number uint8) molecule.AtomID {
	return e.addAtom(molecule.AtomRecord{AtomicNumber: number}, "Add Atom")
}

// AddAtomAt appends an atom at coordinate pos. The coordinate is dropped
// when the molecule carries no coordinate column.
func (e *Editor) AddAtomAt(number uint8, pos molecule.Vector3) molecule.AtomID {
	return e.addAtom(molecule.AtomRecord{AtomicNumber: number, Position3D: pos}, "Add Atom")
}

func (e *Editor) addAtom(rec molecule.AtomRecord, text string) molecule.AtomID {
	start := time.Now()
	id, p := e.mol.AppendAtom(rec)
	if err := e.groups.AddElement(p); err != nil {
		// p is a fresh position, so a collision means the fragment map is out
		// of sync. Drop the atom again before reporting it.
		_, _, _ = e.mol.RemoveAtomAt(p)
		panic(fmt.Sprintf("editor: fragment map out of sync at atom %d: %v", p, err))
	}
	e.record(Command{Kind: KindAddAtom, Text: text, data: &atomChange{id: id, pos: p, rec: rec}}, start)

	return id
}

// RemoveAtom removes the atom and every bond incident to it as one undo
// step. The last atom moves into the freed position; its id keeps resolving.
func (e *Editor) RemoveAtom(id molecule.AtomID) error {
	start := time.Now()
	p, err := e.mol.AtomPosition(id)
	if err != nil {
		e.reject(KindRemoveAtom, start, err)
		return err
	}

	return e.withMacro("Remove Atom", func() error {
		for _, bid := range e.incidentBondIDs(p) {
			if err := e.RemoveBond(bid); err != nil {
				return err
			}
		}
		rec, err := e.mol.Atom(p)
		if err != nil {
			return err
		}
		return e.exec(Command{Kind: KindRemoveAtom, Text: "Remove Atom", data: &atomChange{id: id, pos: p, rec: rec}})
	})
}

// ClearAtoms removes every atom and bond as one undo step. The unit cell
// and the name are kept.
func (e *Editor) ClearAtoms() error {
	return e.withMacro("Clear Atoms", func() error {
		for n := e.mol.AtomCount(); n > 0; n = e.mol.AtomCount() {
			id, _ := e.mol.AtomID(n - 1)
			if err := e.RemoveAtom(id); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetAtomicNumbers replaces every atomic number at once.
func (e *Editor) SetAtomicNumbers(numbers []uint8) error {
	return e.exec(Command{
		Kind: KindSetAtomicNumbers,
		Text: "Change Elements",
		data: &column[uint8]{before: e.mol.AtomicNumbers(), after: slices.Clone(numbers)},
	})
}

// SetAtomicNumber changes the element of one atom.
func (e *Editor) SetAtomicNumber(id molecule.AtomID, number uint8) error {
	p, err := e.resolveAtom(KindSetAtomicNumber, id)
	if err != nil {
		return err
	}

	return e.exec(Command{
		Kind: KindSetAtomicNumber,
		Text: "Change Element",
		data: &atomValue[uint8]{id: id, before: e.mol.AtomicNumber(p), after: number},
	})
}

// SetAtomPositions3D replaces the whole coordinate column. A nil slice
// removes the column (see molecule.SetPositions3D). Mergeable during an
// interactive session.
func (e *Editor) SetAtomPositions3D(positions []molecule.Vector3) error {
	return e.exec(Command{
		Kind: KindSetPositions3D,
		Text: "Change Atom Positions",
		data: &column[molecule.Vector3]{before: e.mol.Positions3D(), after: slices.Clone(positions)},
	})
}

// SetAtomPosition3D moves one atom. Consecutive moves during an interactive
// session accumulate into a single undo step, one entry per atom.
func (e *Editor) SetAtomPosition3D(id molecule.AtomID, pos molecule.Vector3) error {
	return e.SetAtomPositions3DByID([]molecule.AtomID{id}, []molecule.Vector3{pos})
}

// SetAtomPositions3DByID moves several atoms in one step. ids must be
// distinct. Mergeable during an interactive session.
func (e *Editor) SetAtomPositions3DByID(ids []molecule.AtomID, positions []molecule.Vector3) error {
	start := time.Now()
	if !e.mol.HasPositions3D() {
		err := molecule.ErrNoPositions
		e.reject(KindSetPosition3D, start, err)
		return err
	}
	before, err := e.captureVectors(ids, positions, func(p int) molecule.Vector3 {
		v, _ := e.mol.Position3D(p)
		return v
	})
	if err != nil {
		e.reject(KindSetPosition3D, start, err)
		return err
	}

	return e.exec(Command{
		Kind: KindSetPosition3D,
		Text: "Change Atom Position",
		data: &atomVectors{ids: slices.Clone(ids), before: before, after: slices.Clone(positions)},
	})
}

// SetHybridization changes the hybridization of one atom.
func (e *Editor) SetHybridization(id molecule.AtomID, h molecule.Hybridization) error {
	p, err := e.resolveAtom(KindSetHybridization, id)
	if err != nil {
		return err
	}

	return e.exec(Command{
		Kind: KindSetHybridization,
		Text: "Change Atom Hybridization",
		data: &atomValue[molecule.Hybridization]{id: id, before: e.mol.Hybridization(p), after: h},
	})
}

// SetFormalCharge changes the formal charge of one atom.
func (e *Editor) SetFormalCharge(id molecule.AtomID, charge int8) error {
	p, err := e.resolveAtom(KindSetFormalCharge, id)
	if err != nil {
		return err
	}

	return e.exec(Command{
		Kind: KindSetFormalCharge,
		Text: "Change Atom Formal Charge",
		data: &atomValue[int8]{id: id, before: e.mol.FormalCharge(p), after: charge},
	})
}

// SetColor changes the display color of one atom.
func (e *Editor) SetColor(id molecule.AtomID, c molecule.Color) error {
	p, err := e.resolveAtom(KindSetColor, id)
	if err != nil {
		return err
	}

	return e.exec(Command{
		Kind: KindSetColor,
		Text: "Change Atom Color",
		data: &atomValue[molecule.Color]{id: id, before: e.mol.Color(p), after: c},
	})
}

// SetForceVector changes the force vector of one atom. Mergeable per atom
// during an interactive session.
func (e *Editor) SetForceVector(id molecule.AtomID, f molecule.Vector3) error {
	start := time.Now()
	ids := []molecule.AtomID{id}
	after := []molecule.Vector3{f}
	before, err := e.captureVectors(ids, after, e.mol.ForceVector)
	if err != nil {
		e.reject(KindSetForceVector, start, err)
		return err
	}

	return e.exec(Command{
		Kind: KindSetForceVector,
		Text: "Change Force Vector",
		data: &atomVectors{ids: ids, before: before, after: after},
	})
}

func (e *Editor) resolveAtom(kind Kind, id molecule.AtomID) (int, error) {
	p, err := e.mol.AtomPosition(id)
	if err != nil {
		e.reject(kind, time.Now(), err)
	}

	return p, err
}

// captureVectors resolves every id and reads its current value through get.
func (e *Editor) captureVectors(ids []molecule.AtomID, values []molecule.Vector3, get func(int) molecule.Vector3) ([]molecule.Vector3, error) {
	if len(ids) != len(values) {
		return nil, fmt.Errorf("%w: %d atoms, %d vectors", molecule.ErrLengthMismatch, len(ids), len(values))
	}
	before := make([]molecule.Vector3, len(ids))
	for i, id := range ids {
		p, err := e.mol.AtomPosition(id)
		if err != nil {
			return nil, err
		}
		before[i] = get(p)
	}

	return before, nil
}

// setVectors resolves every id first, then writes; a stale id writes nothing.
func (e *Editor) setVectors(ids []molecule.AtomID, values []molecule.Vector3, set func(int, molecule.Vector3) error) error {
	positions := make([]int, len(ids))
	for i, id := range ids {
		p, err := e.mol.AtomPosition(id)
		if err != nil {
			return err
		}
		positions[i] = p
	}
	for i, p := range positions {
		if err := set(p, values[i]); err != nil {
			return err
		}
	}

	return nil
}

func (e *Editor) atAtom(id molecule.AtomID, fn func(p int) error) error {
	p, err := e.mol.AtomPosition(id)
	if err != nil {
		return err
	}

	return fn(p)
}

// insertAtom places d.rec back at d.pos under d.id and mirrors the move in
// the fragment map: the atom displaced from d.pos goes to the end.
func (e *Editor) insertAtom(d *atomChange) error {
	if err := e.mol.InsertAtomAt(d.pos, d.rec, d.id); err != nil {
		return err
	}
	if last := e.mol.AtomCount() - 1; d.pos != last {
		if err := e.groups.MoveElement(d.pos, last); err != nil {
			return fmt.Errorf("editor: fragment map out of sync: %w", err)
		}
	}
	if err := e.groups.AddElement(d.pos); err != nil {
		return fmt.Errorf("editor: fragment map out of sync: %w", err)
	}

	return nil
}

// eraseAtom removes the bond-free atom id by swap-with-last compaction and
// mirrors the move in the fragment map.
func (e *Editor) eraseAtom(id molecule.AtomID) error {
	p, err := e.mol.AtomPosition(id)
	if err != nil {
		return err
	}
	last := e.mol.AtomCount() - 1
	if _, _, err := e.mol.RemoveAtomAt(p); err != nil {
		return err
	}
	if err := e.groups.RemoveElement(p); err != nil {
		return fmt.Errorf("editor: fragment map out of sync: %w", err)
	}
	if p != last {
		if err := e.groups.MoveElement(last, p); err != nil {
			return fmt.Errorf("editor: fragment map out of sync: %w", err)
		}
	}

	return nil
}

// incidentBondIDs returns the ids of the bonds touching atom p.
func (e *Editor) incidentBondIDs(p int) []molecule.BondID {
	bonds := e.mol.Bonds(p)
	ids := make([]molecule.BondID, 0, len(bonds))
	for _, b := range bonds {
		id, _ := e.mol.BondID(b)
		ids = append(ids, id)
	}

	return ids
}
