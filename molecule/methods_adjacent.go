// File: methods_adjacent.go
// Role: Bond index and adjacency queries.
//
// Determinism:
//   - Bonds(atom) is ascending by bond position; Neighbors(atom) ascending by atom position.
package molecule

import "slices"

// ensureIndex rebuilds the bond index when it is dirty or sized for a
// different atom count.
// Complexity: O(V + E) on rebuild, O(1) otherwise.
func (m *Molecule) ensureIndex() {
	if m.indexFresh() {
		return
	}
	n := len(m.atomicNumbers)
	index := make([][]int, n)
	for b, pair := range m.bondPairs {
		index[pair.First] = append(index[pair.First], b)
		index[pair.Second] = append(index[pair.Second], b)
	}
	m.bondIndex = index
	m.graphDirty = false
}

// indexFresh reports whether the bond index matches the current columns.
func (m *Molecule) indexFresh() bool {
	return !m.graphDirty && len(m.bondIndex) == len(m.atomicNumbers)
}

// bondsOf returns the internal incident-bond slice of atom p. Callers must
// not retain it across mutations.
func (m *Molecule) bondsOf(p int) []int {
	m.ensureIndex()
	if p < 0 || p >= len(m.bondIndex) {
		return nil
	}

	return m.bondIndex[p]
}

// growIndex extends a fresh index by one empty slot after an atom push.
func (m *Molecule) growIndex() {
	if !m.graphDirty && len(m.bondIndex) == len(m.atomicNumbers)-1 {
		m.bondIndex = append(m.bondIndex, nil)
		return
	}
	m.graphDirty = true
}

// linkBond records bond position b in the lists of both endpoints.
func (m *Molecule) linkBond(pair BondPair, b int) {
	m.bondIndex[pair.First] = insertSorted(m.bondIndex[pair.First], b)
	m.bondIndex[pair.Second] = insertSorted(m.bondIndex[pair.Second], b)
}

// unlinkBond drops bond position b from the lists of both endpoints.
func (m *Molecule) unlinkBond(pair BondPair, b int) {
	m.bondIndex[pair.First] = deleteSorted(m.bondIndex[pair.First], b)
	m.bondIndex[pair.Second] = deleteSorted(m.bondIndex[pair.Second], b)
}

// renumberBond relabels bond position from as to in the endpoint lists.
func (m *Molecule) renumberBond(pair BondPair, from, to int) {
	m.unlinkBond(pair, from)
	m.linkBond(pair, to)
}

func insertSorted(list []int, x int) []int {
	i, _ := slices.BinarySearch(list, x)
	return slices.Insert(list, i, x)
}

func deleteSorted(list []int, x int) []int {
	i, ok := slices.BinarySearch(list, x)
	if !ok {
		return list
	}

	return slices.Delete(list, i, i+1)
}

// GraphDirty reports whether the bond index will be rebuilt on next query.
func (m *Molecule) GraphDirty() bool { return m.graphDirty }

// Bonds returns the positions of the bonds incident to atom p, ascending.
func (m *Molecule) Bonds(p int) []int {
	return slices.Clone(m.bondsOf(p))
}

// Neighbors returns the atom positions bonded to atom p, ascending.
func (m *Molecule) Neighbors(p int) []int {
	bonds := m.bondsOf(p)
	out := make([]int, 0, len(bonds))
	for _, b := range bonds {
		out = append(out, m.bondPairs[b].Other(p))
	}
	slices.Sort(out)

	return out
}

// Degree returns the number of bonds incident to atom p.
func (m *Molecule) Degree(p int) int { return len(m.bondsOf(p)) }

// FindBond returns the position of the bond joining atom positions a and b.
// Complexity: O(min degree) once the index is built.
func (m *Molecule) FindBond(a, b int) (int, bool) {
	if a == b {
		return 0, false
	}
	pair := MakeBondPair(a, b)
	bonds := m.bondsOf(pair.First)
	if other := m.bondsOf(pair.Second); len(other) < len(bonds) {
		bonds = other
	}
	for _, idx := range bonds {
		if m.bondPairs[idx] == pair {
			return idx, true
		}
	}

	return 0, false
}
