package molecule

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/molkit/ident"
)

// Sentinel errors for molecule storage operations.
var (
	// ErrAtomNotFound indicates an id or position that names no live atom.
	ErrAtomNotFound = errors.New("molecule: atom not found")

	// ErrBondNotFound indicates an id or position that names no live bond.
	ErrBondNotFound = errors.New("molecule: bond not found")

	// ErrInvalidBond indicates a self bond or an endpoint out of range.
	ErrInvalidBond = errors.New("molecule: invalid bond endpoints")

	// ErrBondExists indicates a second bond between the same atom pair.
	ErrBondExists = errors.New("molecule: bond already exists")

	// ErrAtomHasBonds indicates removal of an atom still referenced by bonds.
	ErrAtomHasBonds = errors.New("molecule: atom still has bonds")

	// ErrLengthMismatch indicates a bulk column write of the wrong length.
	ErrLengthMismatch = errors.New("molecule: column length mismatch")

	// ErrNoPositions indicates a coordinate write while the column is absent.
	ErrNoPositions = errors.New("molecule: 3-D positions not present")

	// ErrNoUnitCell indicates removal of a unit cell that is not set.
	ErrNoUnitCell = errors.New("molecule: no unit cell")

	// ErrUnitCellExists indicates adding a unit cell when one is set.
	ErrUnitCellExists = errors.New("molecule: unit cell already set")
)

// AtomID is the stable handle of an atom.
type AtomID uint64

// BondID is the stable handle of a bond.
type BondID uint64

// Vector3 is a 3-D vector in Angstrom (positions) or arbitrary units (forces).
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Hybridization of an atom.
type Hybridization int8

// Hybridization values.
const (
	HybridizationUnknown Hybridization = -1
	HybridizationNone    Hybridization = 0
	HybridizationSP      Hybridization = 1
	HybridizationSP2     Hybridization = 2
	HybridizationSP3     Hybridization = 3
	HybridizationSP2D    Hybridization = 4 // square planar
	HybridizationSP3D    Hybridization = 5 // trigonal bipyramidal
	HybridizationSP3D2   Hybridization = 6 // octahedral
)

// String returns a short label.
func (h Hybridization) String() string {
	switch h {
	case HybridizationNone:
		return "none"
	case HybridizationSP:
		return "sp"
	case HybridizationSP2:
		return "sp2"
	case HybridizationSP3:
		return "sp3"
	case HybridizationSP2D:
		return "sp2d"
	case HybridizationSP3D:
		return "sp3d"
	case HybridizationSP3D2:
		return "sp3d2"
	default:
		return "unknown"
	}
}

// BondPair holds the atom positions of a bond, smaller first.
type BondPair struct {
	First, Second int
}

// MakeBondPair returns the canonical pair for a and b.
func MakeBondPair(a, b int) BondPair {
	if a < b {
		return BondPair{First: a, Second: b}
	}

	return BondPair{First: b, Second: a}
}

// Other returns the endpoint opposite to atom.
func (p BondPair) Other(atom int) int {
	if p.First == atom {
		return p.Second
	}

	return p.First
}

// Has reports whether atom is an endpoint.
func (p BondPair) Has(atom int) bool { return p.First == atom || p.Second == atom }

// UnitCell holds the three cell vectors of a periodic structure.
type UnitCell struct {
	A, B, C Vector3
}

// AtomRecord carries every per-atom column value of one atom. Position3D
// is only stored when the coordinate column is present.
type AtomRecord struct {
	AtomicNumber  uint8
	Position3D    Vector3
	Hybridization Hybridization
	FormalCharge  int8
	Color         Color
	ForceVector   Vector3
}

// BondRecord carries every per-bond column value of one bond.
type BondRecord struct {
	Pair  BondPair
	Order uint8
}

// Molecule is the columnar atom/bond store.
//
// Columns indexed by atom position: atomicNumbers, positions3d (optional),
// hybridizations, formalCharges, colors, forceVectors.
// Columns indexed by bond position: bondPairs, bondOrders.
// hasPositions records whether the coordinate column exists; it is kept
// explicitly so an empty molecule remembers it.
// bondIndex[atom] lists incident bond positions ascending. Appends, removals
// and their inverses update it in place; bond rewiring sets graphDirty and
// it is rebuilt on demand.
type Molecule struct {
	name string

	atomicNumbers  []uint8
	positions3d    []Vector3
	hasPositions   bool
	hybridizations []Hybridization
	formalCharges  []int8
	colors         []Color
	forceVectors   []Vector3
	atomIDs        *ident.Table[AtomID]

	bondPairs  []BondPair
	bondOrders []uint8
	bondIDs    *ident.Table[BondID]

	unitCell *UnitCell

	bondIndex  [][]int
	graphDirty bool
}

// Option configures a Molecule at construction.
type Option func(m *Molecule)

// WithName sets the display name of the molecule.
func WithName(name string) Option {
	return func(m *Molecule) { m.name = name }
}

// WithCapacity preallocates the atom and bond columns.
func WithCapacity(atoms, bonds int) Option {
	return func(m *Molecule) {
		m.atomicNumbers = make([]uint8, 0, atoms)
		m.positions3d = make([]Vector3, 0, atoms)
		m.hybridizations = make([]Hybridization, 0, atoms)
		m.formalCharges = make([]int8, 0, atoms)
		m.colors = make([]Color, 0, atoms)
		m.forceVectors = make([]Vector3, 0, atoms)
		m.bondPairs = make([]BondPair, 0, bonds)
		m.bondOrders = make([]uint8, 0, bonds)
	}
}

// New creates an empty Molecule. The coordinate column starts present
// (empty and parallel to the zero atoms).
func New(opts ...Option) *Molecule {
	m := &Molecule{
		hasPositions: true,
		atomIDs:      ident.NewTable[AtomID](),
		bondIDs:      ident.NewTable[BondID](),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name returns the display name.
func (m *Molecule) Name() string { return m.name }

// SetName sets the display name.
func (m *Molecule) SetName(name string) { m.name = name }

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int { return len(m.atomicNumbers) }

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int { return len(m.bondPairs) }

// HasPositions3D reports whether the coordinate column is present.
func (m *Molecule) HasPositions3D() bool { return m.hasPositions }

func (m *Molecule) checkAtom(p int) error {
	if p < 0 || p >= len(m.atomicNumbers) {
		return fmt.Errorf("%w: position %d (count %d)", ErrAtomNotFound, p, len(m.atomicNumbers))
	}

	return nil
}

func (m *Molecule) checkBond(b int) error {
	if b < 0 || b >= len(m.bondPairs) {
		return fmt.Errorf("%w: position %d (count %d)", ErrBondNotFound, b, len(m.bondPairs))
	}

	return nil
}

// assertPositions panics when the coordinate column disagrees with its
// presence flag. No sequence of API calls can reach that state.
func (m *Molecule) assertPositions() {
	want := 0
	if m.hasPositions {
		want = len(m.atomicNumbers)
	}
	if n := len(m.positions3d); n != want {
		panic(fmt.Sprintf("molecule: positions column has %d entries for %d atoms (present=%t)", n, len(m.atomicNumbers), m.hasPositions))
	}
}
