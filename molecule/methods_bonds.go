// File: methods_bonds.go
// Role: Bond lifecycle (append, swap-with-last removal, inverse insertion)
// and per-bond column access.
package molecule

import (
	"fmt"
	"slices"
)

// AppendBond creates a bond between atom positions a and b with the given
// order. The pair is stored canonically (smaller position first), so
// AppendBond(a, b) and AppendBond(b, a) are the same request.
//
// Errors:
//   - ErrInvalidBond: a == b or either position out of range.
//   - ErrBondExists: the pair is already bonded.
func (m *Molecule) AppendBond(a, b int, order uint8) (BondID, int, error) {
	pair, err := m.validPair(a, b)
	if err != nil {
		return 0, 0, err
	}
	if existing, ok := m.FindBond(a, b); ok {
		return 0, 0, fmt.Errorf("%w: %d-%d (bond %d)", ErrBondExists, pair.First, pair.Second, existing)
	}
	pos := len(m.bondPairs)
	m.bondPairs = append(m.bondPairs, pair)
	m.bondOrders = append(m.bondOrders, order)
	id, err := m.bondIDs.Allocate(pos)
	if err != nil {
		panic(err)
	}
	if m.indexFresh() {
		m.bondIndex[pair.First] = append(m.bondIndex[pair.First], pos)
		m.bondIndex[pair.Second] = append(m.bondIndex[pair.Second], pos)
	} else {
		m.graphDirty = true
	}

	return id, pos, nil
}

// RemoveBondAt removes the bond at position b by swap-with-last compaction
// and returns its record and id.
func (m *Molecule) RemoveBondAt(b int) (BondRecord, BondID, error) {
	if err := m.checkBond(b); err != nil {
		return BondRecord{}, 0, err
	}
	rec := BondRecord{Pair: m.bondPairs[b], Order: m.bondOrders[b]}
	id, _ := m.bondIDs.IDOf(b)
	last := len(m.bondPairs) - 1

	if m.indexFresh() {
		m.unlinkBond(rec.Pair, b)
		if b != last {
			m.renumberBond(m.bondPairs[last], last, b)
		}
	}
	if b != last {
		m.bondPairs[b] = m.bondPairs[last]
		m.bondOrders[b] = m.bondOrders[last]
		moved, _ := m.bondIDs.IDOf(last)
		_ = m.bondIDs.Rebind(moved, b)
	}
	_ = m.bondIDs.Invalidate(id)
	m.bondPairs = m.bondPairs[:last]
	m.bondOrders = m.bondOrders[:last]
	m.bondIDs.Truncate(last)

	return rec, id, nil
}

// InsertBondAt is the exact inverse of RemoveBondAt: rec is placed at
// position b under id, and the bond currently at b (if any) moves back to
// the end. With b == BondCount() it re-appends a bond under a previously
// allocated id.
func (m *Molecule) InsertBondAt(b int, rec BondRecord, id BondID) error {
	n := len(m.bondPairs)
	if b < 0 || b > n {
		return fmt.Errorf("%w: insert position %d (count %d)", ErrBondNotFound, b, n)
	}
	pair, err := m.validPair(rec.Pair.First, rec.Pair.Second)
	if err != nil {
		return err
	}
	fresh := m.indexFresh()
	m.bondPairs = append(m.bondPairs, pair)
	m.bondOrders = append(m.bondOrders, rec.Order)
	last := n
	if fresh && b != last {
		m.renumberBond(m.bondPairs[b], b, last)
	}
	if b != last {
		m.bondPairs[b], m.bondPairs[last] = m.bondPairs[last], m.bondPairs[b]
		m.bondOrders[b], m.bondOrders[last] = m.bondOrders[last], m.bondOrders[b]
		moved, _ := m.bondIDs.IDOf(b)
		if err := m.bondIDs.Rebind(moved, last); err != nil {
			return err
		}
	}
	if err := m.bondIDs.Rebind(id, b); err != nil {
		return err
	}
	if fresh {
		m.linkBond(pair, b)
	}

	return nil
}

// Bond returns every column value of the bond at b.
func (m *Molecule) Bond(b int) (BondRecord, error) {
	if err := m.checkBond(b); err != nil {
		return BondRecord{}, err
	}

	return BondRecord{Pair: m.bondPairs[b], Order: m.bondOrders[b]}, nil
}

// BondID returns the id of the bond at b.
func (m *Molecule) BondID(b int) (BondID, bool) { return m.bondIDs.IDOf(b) }

// BondPosition resolves id to its current position.
func (m *Molecule) BondPosition(id BondID) (int, error) {
	p, ok := m.bondIDs.Resolve(id)
	if !ok {
		return p, fmt.Errorf("%w: id %d", ErrBondNotFound, id)
	}

	return p, nil
}

// BondIDs returns the ids of all bonds in position order.
func (m *Molecule) BondIDs() []BondID { return m.bondIDs.IDs() }

// BondPair returns the endpoints of the bond at b. b must be in [0, BondCount()).
func (m *Molecule) BondPair(b int) BondPair { return m.bondPairs[b] }

// BondOrder returns the order of the bond at b.
func (m *Molecule) BondOrder(b int) uint8 { return m.bondOrders[b] }

// BondPairs returns a copy of the bond-pair column.
func (m *Molecule) BondPairs() []BondPair { return slices.Clone(m.bondPairs) }

// BondOrders returns a copy of the bond-order column.
func (m *Molecule) BondOrders() []uint8 { return slices.Clone(m.bondOrders) }

// SetBondOrder writes the order of the bond at b.
func (m *Molecule) SetBondOrder(b int, order uint8) error {
	if err := m.checkBond(b); err != nil {
		return err
	}
	m.bondOrders[b] = order

	return nil
}

// SetBondOrders replaces the bond-order column.
func (m *Molecule) SetBondOrders(orders []uint8) error {
	if len(orders) != len(m.bondOrders) {
		return fmt.Errorf("%w: %d orders for %d bonds", ErrLengthMismatch, len(orders), len(m.bondOrders))
	}
	copy(m.bondOrders, orders)

	return nil
}

// SetBondPair rewires the bond at b to the canonical form of pair.
func (m *Molecule) SetBondPair(b int, pair BondPair) error {
	if err := m.checkBond(b); err != nil {
		return err
	}
	canon, err := m.validPair(pair.First, pair.Second)
	if err != nil {
		return err
	}
	if existing, ok := m.FindBond(canon.First, canon.Second); ok && existing != b {
		return fmt.Errorf("%w: %d-%d (bond %d)", ErrBondExists, canon.First, canon.Second, existing)
	}
	m.bondPairs[b] = canon
	m.graphDirty = true

	return nil
}

// SetBondPairs replaces the bond-pair column. Every pair is validated and
// stored canonically; duplicate pairs are rejected.
func (m *Molecule) SetBondPairs(pairs []BondPair) error {
	if len(pairs) != len(m.bondPairs) {
		return fmt.Errorf("%w: %d pairs for %d bonds", ErrLengthMismatch, len(pairs), len(m.bondPairs))
	}
	next := make([]BondPair, len(pairs))
	seen := make(map[BondPair]int, len(pairs))
	for i, p := range pairs {
		canon, err := m.validPair(p.First, p.Second)
		if err != nil {
			return err
		}
		if j, dup := seen[canon]; dup {
			return fmt.Errorf("%w: %d-%d (bonds %d and %d)", ErrBondExists, canon.First, canon.Second, j, i)
		}
		seen[canon] = i
		next[i] = canon
	}
	m.bondPairs = next
	m.graphDirty = true

	return nil
}

func (m *Molecule) validPair(a, b int) (BondPair, error) {
	n := len(m.atomicNumbers)
	if a == b || a < 0 || b < 0 || a >= n || b >= n {
		return BondPair{}, fmt.Errorf("%w: %d-%d (atoms %d)", ErrInvalidBond, a, b, n)
	}

	return MakeBondPair(a, b), nil
}
