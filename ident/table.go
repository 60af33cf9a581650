package ident

import (
	"errors"
	"fmt"
)

// InvalidPosition is the position reported for removed or unknown ids.
const InvalidPosition = -1

var (
	// ErrUnknownID indicates an id that was never allocated by the table.
	ErrUnknownID = errors.New("ident: unknown id")
	// ErrPositionOutOfRange indicates a position outside [0, Len()].
	ErrPositionOutOfRange = errors.New("ident: position out of range")
)

// Table is a bijection between ids of type ID and positions [0, Len()).
type Table[ID ~uint64] struct {
	positions []int // id -> position, InvalidPosition when removed
	ids       []ID  // position -> id
}

// NewTable returns an empty table.
func NewTable[ID ~uint64]() *Table[ID] {
	return &Table[ID]{}
}

// Len reports the number of live positions.
func (t *Table[ID]) Len() int { return len(t.ids) }

// Allocated reports how many ids were ever handed out.
func (t *Table[ID]) Allocated() int { return len(t.positions) }

// Allocate returns a fresh id bound to position. Position must be Len()
// (append) or an existing slot whose current id is overwritten.
func (t *Table[ID]) Allocate(position int) (ID, error) {
	if position < 0 || position > len(t.ids) {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrPositionOutOfRange, position, len(t.ids))
	}
	id := ID(len(t.positions))
	t.positions = append(t.positions, position)
	if position == len(t.ids) {
		t.ids = append(t.ids, id)
	} else {
		t.positions[t.ids[position]] = InvalidPosition
		t.ids[position] = id
	}

	return id, nil
}

// Resolve returns the position of id and whether it is live.
func (t *Table[ID]) Resolve(id ID) (int, bool) {
	p := t.PositionOf(id)

	return p, p != InvalidPosition
}

// PositionOf returns the position of id or InvalidPosition.
func (t *Table[ID]) PositionOf(id ID) int {
	if uint64(id) >= uint64(len(t.positions)) {
		return InvalidPosition
	}

	return t.positions[id]
}

// IDOf returns the id bound to position.
func (t *Table[ID]) IDOf(position int) (ID, bool) {
	if position < 0 || position >= len(t.ids) {
		return 0, false
	}

	return t.ids[position], true
}

// Invalidate marks id unresolvable. The position it held keeps its entry
// until the caller rebinds or truncates it.
func (t *Table[ID]) Invalidate(id ID) error {
	if uint64(id) >= uint64(len(t.positions)) {
		return fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	t.positions[id] = InvalidPosition

	return nil
}

// Rebind binds id to position, growing the position slice by one when
// position == Len(). It is used by compaction and by undo to restore an
// invalidated id.
func (t *Table[ID]) Rebind(id ID, position int) error {
	if uint64(id) >= uint64(len(t.positions)) {
		return fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	switch {
	case position >= 0 && position < len(t.ids):
		t.ids[position] = id
	case position == len(t.ids):
		t.ids = append(t.ids, id)
	default:
		return fmt.Errorf("%w: %d (len %d)", ErrPositionOutOfRange, position, len(t.ids))
	}
	t.positions[id] = position

	return nil
}

// Truncate drops every position at or beyond n. Ids still bound to the
// dropped positions are not touched; callers invalidate or rebind them first.
func (t *Table[ID]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(t.ids) {
		t.ids = t.ids[:n]
	}
}

// IDs returns a copy of the position -> id column.
func (t *Table[ID]) IDs() []ID {
	out := make([]ID, len(t.ids))
	copy(out, t.ids)

	return out
}

// Clone returns an independent copy.
func (t *Table[ID]) Clone() *Table[ID] {
	c := &Table[ID]{
		positions: make([]int, len(t.positions)),
		ids:       make([]ID, len(t.ids)),
	}
	copy(c.positions, t.positions)
	copy(c.ids, t.ids)

	return c
}

// Equal reports whether both tables bind the same ids to the same
// positions. Ids allocated by only one table compare as InvalidPosition.
func (t *Table[ID]) Equal(o *Table[ID]) bool {
	if len(t.ids) != len(o.ids) {
		return false
	}
	for i := range t.ids {
		if t.ids[i] != o.ids[i] {
			return false
		}
	}
	n := max(len(t.positions), len(o.positions))
	for i := 0; i < n; i++ {
		if t.PositionOf(ID(i)) != o.PositionOf(ID(i)) {
			return false
		}
	}

	return true
}
