// Package molecule is the columnar storage for a molecular graph: atoms
// and bonds live in parallel, densely packed attribute slices addressed by
// position, with ident tables mapping stable AtomID/BondID handles onto
// those positions.
//
// What:
//
//   - Per-atom columns: atomic number, optional 3-D coordinate, hybridization,
//     formal charge, color, force vector.
//   - Per-bond columns: endpoint pair (smaller atom position first) and order.
//   - A lazily rebuilt bond index for Bonds/Neighbors queries.
//   - Swap-with-last removal (RemoveAtomAt, RemoveBondAt) and the exact
//     inverses used by undo (InsertAtomAt, InsertBondAt).
//
// Invariants:
//
//   - Positions are always the contiguous range [0, count).
//   - The 3-D coordinate column is either empty or exactly as long as the
//     atomic-number column; every other atom column is always parallel.
//   - Every bond pair references valid atom positions, first < second, and
//     no two bonds share a pair.
//
// Compaction (removing atom p, last = count-1):
//
//  1. If p != last, copy every column value from last into p, rewrite every
//     bond endpoint last -> p, and rebind last's AtomID to p.
//  2. Invalidate the removed AtomID.
//  3. Truncate every column to last.
//  4. Mark the bond index dirty.
//
// An atom must have no bonds when it is removed; the editor removes them
// first so that each removal is its own undoable step.
//
// Concurrency:
//
//	A Molecule is owned by one goroutine. There is no internal locking.
//
// Errors:
//
//   - ErrAtomNotFound / ErrBondNotFound: id or position does not name a live entity.
//   - ErrInvalidBond: self bond or endpoint out of range.
//   - ErrBondExists: a bond between the pair already exists.
//   - ErrAtomHasBonds: removal attempted while bonds still reference the atom.
//   - ErrLengthMismatch: bulk column write with the wrong length.
//   - ErrNoPositions: a single coordinate write while the column is absent.
//   - ErrNoUnitCell / ErrUnitCellExists: unit cell add/remove preconditions.
package molecule
