// File: methods_atoms.go
// Role: Atom lifecycle (append, swap-with-last removal, inverse insertion)
// and per-atom column access.
package molecule

import (
	"fmt"
	"slices"
)

// AppendAtom appends rec at position AtomCount() and allocates its AtomID.
// The coordinate is stored only when the coordinate column is present.
// Complexity: O(1) amortized.
func (m *Molecule) AppendAtom(rec AtomRecord) (AtomID, int) {
	p := len(m.atomicNumbers)
	m.pushAtom(rec)
	id, err := m.atomIDs.Allocate(p)
	if err != nil {
		// The table is kept parallel to the columns; Allocate(len) cannot fail.
		panic(err)
	}
	m.growIndex()

	return id, p
}

// RemoveAtomAt removes the atom at position p by swap-with-last compaction
// and returns its record and id. The atom must have no bonds.
//
// When p is not the last position, the last atom's values move into p, every
// bond endpoint referencing the last position is rewritten to p, and the
// moved atom's id is rebound to p. Exactly one atom changes position.
//
// Complexity: O(deg(last)) amortized; the bond index is updated in place.
func (m *Molecule) RemoveAtomAt(p int) (AtomRecord, AtomID, error) {
	if err := m.checkAtom(p); err != nil {
		return AtomRecord{}, 0, err
	}
	if n := len(m.bondsOf(p)); n > 0 {
		return AtomRecord{}, 0, fmt.Errorf("%w: position %d has %d bonds", ErrAtomHasBonds, p, n)
	}
	m.assertPositions()

	rec := m.atomRecord(p)
	id, _ := m.atomIDs.IDOf(p)
	last := len(m.atomicNumbers) - 1

	if p != last {
		m.copyAtom(last, p)
		m.rewriteEndpoints(last, p)
		moved, _ := m.atomIDs.IDOf(last)
		_ = m.atomIDs.Rebind(moved, p)
	}
	_ = m.atomIDs.Invalidate(id)
	m.truncateAtoms(last)
	m.atomIDs.Truncate(last)
	// bondsOf above left the index fresh; slot last is empty after the move.
	m.bondIndex = m.bondIndex[:last]

	return rec, id, nil
}

// InsertAtomAt is the exact inverse of RemoveAtomAt: rec is placed at
// position p under id, and the atom currently at p (if any) moves back to
// the end with its bonds rewritten. With p == AtomCount() it re-appends an
// atom under a previously allocated id.
func (m *Molecule) InsertAtomAt(p int, rec AtomRecord, id AtomID) error {
	n := len(m.atomicNumbers)
	if p < 0 || p > n {
		return fmt.Errorf("%w: insert position %d (count %d)", ErrAtomNotFound, p, n)
	}
	m.assertPositions()

	m.pushAtom(rec)
	m.growIndex()
	last := n
	if p != last {
		m.rewriteEndpoints(p, last)
		m.swapAtoms(p, last)
		moved, _ := m.atomIDs.IDOf(p)
		if err := m.atomIDs.Rebind(moved, last); err != nil {
			return err
		}
	}
	if err := m.atomIDs.Rebind(id, p); err != nil {
		return err
	}

	return nil
}

// Atom returns every column value of the atom at p.
func (m *Molecule) Atom(p int) (AtomRecord, error) {
	if err := m.checkAtom(p); err != nil {
		return AtomRecord{}, err
	}

	return m.atomRecord(p), nil
}

// AtomID returns the id of the atom at p.
func (m *Molecule) AtomID(p int) (AtomID, bool) { return m.atomIDs.IDOf(p) }

// AtomPosition resolves id to its current position.
func (m *Molecule) AtomPosition(id AtomID) (int, error) {
	p, ok := m.atomIDs.Resolve(id)
	if !ok {
		return p, fmt.Errorf("%w: id %d", ErrAtomNotFound, id)
	}

	return p, nil
}

// AtomIDs returns the ids of all atoms in position order.
func (m *Molecule) AtomIDs() []AtomID { return m.atomIDs.IDs() }

// AtomicNumber returns the atomic number at p. p must be in [0, AtomCount()).
func (m *Molecule) AtomicNumber(p int) uint8 { return m.atomicNumbers[p] }

// Position3D returns the coordinate at p and whether the column is present.
func (m *Molecule) Position3D(p int) (Vector3, bool) {
	if !m.hasPositions || p < 0 || p >= len(m.positions3d) {
		return Vector3{}, false
	}

	return m.positions3d[p], true
}

// Hybridization returns the hybridization at p.
func (m *Molecule) Hybridization(p int) Hybridization { return m.hybridizations[p] }

// FormalCharge returns the formal charge at p.
func (m *Molecule) FormalCharge(p int) int8 { return m.formalCharges[p] }

// Color returns the color at p.
func (m *Molecule) Color(p int) Color { return m.colors[p] }

// ForceVector returns the force vector at p.
func (m *Molecule) ForceVector(p int) Vector3 { return m.forceVectors[p] }

// AtomicNumbers returns a copy of the atomic-number column.
func (m *Molecule) AtomicNumbers() []uint8 { return slices.Clone(m.atomicNumbers) }

// Positions3D returns a copy of the coordinate column: nil when the column
// is absent, non-nil (possibly empty) when present. SetPositions3D accepts
// the result back unchanged.
func (m *Molecule) Positions3D() []Vector3 {
	if !m.hasPositions {
		return nil
	}
	out := make([]Vector3, len(m.positions3d))
	copy(out, m.positions3d)

	return out
}

// SetAtomicNumber writes the atomic number at p.
func (m *Molecule) SetAtomicNumber(p int, number uint8) error {
	if err := m.checkAtom(p); err != nil {
		return err
	}
	m.atomicNumbers[p] = number

	return nil
}

// SetAtomicNumbers replaces the whole atomic-number column.
func (m *Molecule) SetAtomicNumbers(numbers []uint8) error {
	if len(numbers) != len(m.atomicNumbers) {
		return fmt.Errorf("%w: %d atomic numbers for %d atoms", ErrLengthMismatch, len(numbers), len(m.atomicNumbers))
	}
	copy(m.atomicNumbers, numbers)

	return nil
}

// SetPosition3D writes the coordinate at p. The column must be present.
func (m *Molecule) SetPosition3D(p int, pos Vector3) error {
	if err := m.checkAtom(p); err != nil {
		return err
	}
	if !m.HasPositions3D() {
		return ErrNoPositions
	}
	m.positions3d[p] = pos

	return nil
}

// SetPositions3D replaces the coordinate column. A nil slice removes the
// column, and so does an empty one while atoms exist; otherwise the length
// must equal AtomCount(). On a molecule with no atoms a non-nil empty slice
// keeps the column present.
func (m *Molecule) SetPositions3D(positions []Vector3) error {
	n := len(m.atomicNumbers)
	if positions == nil || (len(positions) == 0 && n > 0) {
		m.positions3d = []Vector3{}
		m.hasPositions = false
		return nil
	}
	if len(positions) != n {
		return fmt.Errorf("%w: %d positions for %d atoms", ErrLengthMismatch, len(positions), n)
	}
	m.positions3d = slices.Clone(positions)
	m.hasPositions = true

	return nil
}

// SetHybridization writes the hybridization at p.
func (m *Molecule) SetHybridization(p int, h Hybridization) error {
	if err := m.checkAtom(p); err != nil {
		return err
	}
	m.hybridizations[p] = h

	return nil
}

// SetFormalCharge writes the formal charge at p.
func (m *Molecule) SetFormalCharge(p int, charge int8) error {
	if err := m.checkAtom(p); err != nil {
		return err
	}
	m.formalCharges[p] = charge

	return nil
}

// SetColor writes the color at p.
func (m *Molecule) SetColor(p int, c Color) error {
	if err := m.checkAtom(p); err != nil {
		return err
	}
	m.colors[p] = c

	return nil
}

// SetForceVector writes the force vector at p.
func (m *Molecule) SetForceVector(p int, f Vector3) error {
	if err := m.checkAtom(p); err != nil {
		return err
	}
	m.forceVectors[p] = f

	return nil
}

func (m *Molecule) atomRecord(p int) AtomRecord {
	rec := AtomRecord{
		AtomicNumber:  m.atomicNumbers[p],
		Hybridization: m.hybridizations[p],
		FormalCharge:  m.formalCharges[p],
		Color:         m.colors[p],
		ForceVector:   m.forceVectors[p],
	}
	if m.HasPositions3D() {
		rec.Position3D = m.positions3d[p]
	}

	return rec
}

// pushAtom appends rec to every column; the coordinate column grows only
// when it is present.
func (m *Molecule) pushAtom(rec AtomRecord) {
	if m.HasPositions3D() {
		m.positions3d = append(m.positions3d, rec.Position3D)
	}
	m.atomicNumbers = append(m.atomicNumbers, rec.AtomicNumber)
	m.hybridizations = append(m.hybridizations, rec.Hybridization)
	m.formalCharges = append(m.formalCharges, rec.FormalCharge)
	m.colors = append(m.colors, rec.Color)
	m.forceVectors = append(m.forceVectors, rec.ForceVector)
}

func (m *Molecule) copyAtom(from, to int) {
	if m.HasPositions3D() {
		m.positions3d[to] = m.positions3d[from]
	}
	m.atomicNumbers[to] = m.atomicNumbers[from]
	m.hybridizations[to] = m.hybridizations[from]
	m.formalCharges[to] = m.formalCharges[from]
	m.colors[to] = m.colors[from]
	m.forceVectors[to] = m.forceVectors[from]
}

func (m *Molecule) swapAtoms(i, j int) {
	if m.HasPositions3D() {
		m.positions3d[i], m.positions3d[j] = m.positions3d[j], m.positions3d[i]
	}
	m.atomicNumbers[i], m.atomicNumbers[j] = m.atomicNumbers[j], m.atomicNumbers[i]
	m.hybridizations[i], m.hybridizations[j] = m.hybridizations[j], m.hybridizations[i]
	m.formalCharges[i], m.formalCharges[j] = m.formalCharges[j], m.formalCharges[i]
	m.colors[i], m.colors[j] = m.colors[j], m.colors[i]
	m.forceVectors[i], m.forceVectors[j] = m.forceVectors[j], m.forceVectors[i]
}

// truncateAtoms shrinks every atom column to n.
func (m *Molecule) truncateAtoms(n int) {
	if m.HasPositions3D() {
		m.positions3d = m.positions3d[:n]
	}
	m.atomicNumbers = m.atomicNumbers[:n]
	m.hybridizations = m.hybridizations[:n]
	m.formalCharges = m.formalCharges[:n]
	m.colors = m.colors[:n]
	m.forceVectors = m.forceVectors[:n]
}

// rewriteEndpoints moves every bond endpoint at atom position from to
// position to, keeping pairs canonical, and hands the incident list of from
// over to to. Atom to must have no bonds.
func (m *Molecule) rewriteEndpoints(from, to int) {
	bonds := m.bondsOf(from)
	for _, b := range bonds {
		pair := m.bondPairs[b]
		m.bondPairs[b] = MakeBondPair(pair.Other(from), to)
	}
	// Bond positions are unchanged, so the other endpoints' lists stay valid.
	m.bondIndex[to], m.bondIndex[from] = bonds, nil
}
