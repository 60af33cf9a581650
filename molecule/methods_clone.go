// File: methods_clone.go
// Role: Whole-molecule snapshots and structural equality.
package molecule

import "slices"

// Clone returns a deep copy of m, including both id tables and the unit
// cell. The bond index is not copied; the clone rebuilds it on demand.
// Complexity: O(V + E).
func (m *Molecule) Clone() *Molecule {
	c := &Molecule{
		name:           m.name,
		atomicNumbers:  cloneOrEmpty(m.atomicNumbers),
		positions3d:    cloneOrEmpty(m.positions3d),
		hasPositions:   m.hasPositions,
		hybridizations: cloneOrEmpty(m.hybridizations),
		formalCharges:  cloneOrEmpty(m.formalCharges),
		colors:         cloneOrEmpty(m.colors),
		forceVectors:   cloneOrEmpty(m.forceVectors),
		atomIDs:        m.atomIDs.Clone(),
		bondPairs:      cloneOrEmpty(m.bondPairs),
		bondOrders:     cloneOrEmpty(m.bondOrders),
		bondIDs:        m.bondIDs.Clone(),
		graphDirty:     true,
	}
	if m.unitCell != nil {
		cell := *m.unitCell
		c.unitCell = &cell
	}

	return c
}

// Equal reports whether m and o hold identical columns, id bindings, unit
// cell and name. Cached adjacency is ignored.
func (m *Molecule) Equal(o *Molecule) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.name == o.name &&
		slices.Equal(m.atomicNumbers, o.atomicNumbers) &&
		m.hasPositions == o.hasPositions &&
		slices.Equal(m.positions3d, o.positions3d) &&
		slices.Equal(m.hybridizations, o.hybridizations) &&
		slices.Equal(m.formalCharges, o.formalCharges) &&
		slices.Equal(m.colors, o.colors) &&
		slices.Equal(m.forceVectors, o.forceVectors) &&
		slices.Equal(m.bondPairs, o.bondPairs) &&
		slices.Equal(m.bondOrders, o.bondOrders) &&
		m.atomIDs.Equal(o.atomIDs) &&
		m.bondIDs.Equal(o.bondIDs) &&
		equalCells(m.unitCell, o.unitCell)
}

// UnitCell returns the unit cell and whether one is set.
func (m *Molecule) UnitCell() (UnitCell, bool) {
	if m.unitCell == nil {
		return UnitCell{}, false
	}

	return *m.unitCell, true
}

// SetUnitCell attaches a copy of cell, or detaches the cell when cell is nil.
func (m *Molecule) SetUnitCell(cell *UnitCell) {
	if cell == nil {
		m.unitCell = nil
		return
	}
	c := *cell
	m.unitCell = &c
}

func equalCells(a, b *UnitCell) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func cloneOrEmpty[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)

	return out
}
