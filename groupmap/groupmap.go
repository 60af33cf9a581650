package groupmap

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// GroupMap is a partition of element ids into disjoint groups.
//
// Every element present belongs to exactly one group; every live group has
// at least one member. The zero value is not usable; call New.
type GroupMap struct {
	elementToGroup map[int]int
	groups         map[int]*roaring.Bitmap
	nextGroup      int
}

// New returns a GroupMap holding n singleton groups {0}, {1}, ..., {n-1}.
func New(n int) *GroupMap {
	m := &GroupMap{}
	m.Reset(n)

	return m
}

// Reset discards every element and group, then installs n singletons.
// Complexity: O(n).
func (m *GroupMap) Reset(n int) {
	if n < 0 {
		n = 0
	}
	m.elementToGroup = make(map[int]int, n)
	m.groups = make(map[int]*roaring.Bitmap, n)
	m.nextGroup = 0
	for i := 0; i < n; i++ {
		m.newSingleton(i)
	}
}

// Clear removes every element and group.
func (m *GroupMap) Clear() { m.Reset(0) }

// Len reports the number of elements tracked.
func (m *GroupMap) Len() int { return len(m.elementToGroup) }

// GroupCount reports the number of live groups.
func (m *GroupMap) GroupCount() int { return len(m.groups) }

// Has reports whether id is tracked.
func (m *GroupMap) Has(id int) bool {
	_, ok := m.elementToGroup[id]

	return ok
}

// AddElement inserts id as a new singleton group.
//
// Errors:
//   - ErrInvalidElement: id outside the 32-bit member space.
//   - ErrElementExists: id already tracked.
func (m *GroupMap) AddElement(id int) error {
	if err := validate(id); err != nil {
		return err
	}
	if _, ok := m.elementToGroup[id]; ok {
		return fmt.Errorf("%w: %d", ErrElementExists, id)
	}
	m.newSingleton(id)

	return nil
}

// Connect merges the groups of a and b. The group with fewer members is
// absorbed into the other (ties absorb b's group into a's); every absorbed
// member is relabeled and the absorbed group is discarded.
// Connecting two elements of the same group is a no-op.
//
// Complexity: O(size of the absorbed group).
func (m *GroupMap) Connect(a, b int) error {
	ga, err := m.lookup(a)
	if err != nil {
		return err
	}
	gb, err := m.lookup(b)
	if err != nil {
		return err
	}
	if ga == gb {
		return nil
	}
	into, from := ga, gb
	if m.groups[ga].GetCardinality() < m.groups[gb].GetCardinality() {
		into, from = gb, ga
	}
	absorbed := m.groups[from]
	it := absorbed.Iterator()
	for it.HasNext() {
		m.elementToGroup[int(it.Next())] = into
	}
	m.groups[into].Or(absorbed)
	delete(m.groups, from)

	return nil
}

// Disconnect detaches id into a new singleton group. The remaining members
// keep their group even if they are no longer mutually connected.
// No-op when id is already alone.
func (m *GroupMap) Disconnect(id int) error {
	g, err := m.lookup(id)
	if err != nil {
		return err
	}
	members := m.groups[g]
	if members.GetCardinality() <= 1 {
		return nil
	}
	members.Remove(uint32(id))
	m.newSingleton(id)

	return nil
}

// DisconnectIfIsolated is called after the edge a-b has been removed, with
// the current neighbor lists of both endpoints. If the lists share no
// element, a is detached into its own group and every element of
// aNeighbors migrates into that group. A shared neighbor means the two
// endpoints still close a triangle, and the groups are left untouched.
//
// Only one-hop reconnection is detected; see the package documentation.
// Every id is validated before anything changes.
func (m *GroupMap) DisconnectIfIsolated(a int, aNeighbors []int, b int, bNeighbors []int) error {
	if _, err := m.lookup(a); err != nil {
		return err
	}
	if _, err := m.lookup(b); err != nil {
		return err
	}
	for _, n := range aNeighbors {
		if _, err := m.lookup(n); err != nil {
			return err
		}
	}
	for _, n := range bNeighbors {
		if err := validate(n); err != nil {
			return err
		}
	}

	if bitmapOf(aNeighbors).Intersects(bitmapOf(bNeighbors)) {
		return nil
	}

	if err := m.Disconnect(a); err != nil {
		return err
	}
	target := m.elementToGroup[a]
	for _, n := range aNeighbors {
		old := m.elementToGroup[n]
		if old == target {
			continue
		}
		m.detach(n, old)
		m.groups[target].Add(uint32(n))
		m.elementToGroup[n] = target
	}

	return nil
}

// RemoveElement detaches id and deletes it; a group left empty is freed.
func (m *GroupMap) RemoveElement(id int) error {
	g, err := m.lookup(id)
	if err != nil {
		return err
	}
	m.detach(id, g)
	delete(m.elementToGroup, id)

	return nil
}

// MoveElement relabels element from as to, keeping its group membership.
// It follows swap-with-last compaction when elements are storage positions.
func (m *GroupMap) MoveElement(from, to int) error {
	if from == to {
		_, err := m.lookup(from)
		return err
	}
	if err := validate(to); err != nil {
		return err
	}
	g, err := m.lookup(from)
	if err != nil {
		return err
	}
	if _, ok := m.elementToGroup[to]; ok {
		return fmt.Errorf("%w: %d", ErrElementExists, to)
	}
	members := m.groups[g]
	members.Remove(uint32(from))
	members.Add(uint32(to))
	delete(m.elementToGroup, from)
	m.elementToGroup[to] = g

	return nil
}

// Group returns the handle of the group holding id. Handles are not stable
// across mutating calls.
func (m *GroupMap) Group(id int) (int, error) {
	return m.lookup(id)
}

// Members returns the ascending member ids of group.
func (m *GroupMap) Members(group int) ([]int, error) {
	members, ok := m.groups[group]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrGroupNotFound, group)
	}

	return toInts(members), nil
}

// AllGroups returns every group's members, ascending within a group and
// ordered by each group's smallest member.
func (m *GroupMap) AllGroups() [][]int {
	out := make([][]int, 0, len(m.groups))
	for _, members := range m.groups {
		out = append(out, toInts(members))
	}
	slices.SortFunc(out, func(x, y []int) int { return x[0] - y[0] })

	return out
}

// SameGroup reports whether a and b are currently in one group.
func (m *GroupMap) SameGroup(a, b int) (bool, error) {
	ga, err := m.lookup(a)
	if err != nil {
		return false, err
	}
	gb, err := m.lookup(b)
	if err != nil {
		return false, err
	}

	return ga == gb, nil
}

func (m *GroupMap) newSingleton(id int) {
	g := m.nextGroup
	m.nextGroup++
	m.groups[g] = roaring.BitmapOf(uint32(id))
	m.elementToGroup[id] = g
}

// detach removes id from group g and frees g when it empties.
func (m *GroupMap) detach(id, g int) {
	members := m.groups[g]
	members.Remove(uint32(id))
	if members.IsEmpty() {
		delete(m.groups, g)
	}
}

func (m *GroupMap) lookup(id int) (int, error) {
	g, ok := m.elementToGroup[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrElementNotFound, id)
	}

	return g, nil
}

func validate(id int) error {
	if id < 0 || uint64(id) > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrInvalidElement, id)
	}

	return nil
}

func bitmapOf(ids []int) *roaring.Bitmap {
	b := roaring.New()
	for _, id := range ids {
		b.Add(uint32(id))
	}

	return b
}

func toInts(b *roaring.Bitmap) []int {
	raw := b.ToArray()
	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = int(v)
	}

	return out
}
