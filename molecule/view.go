// File: view.go
// Role: Read-only access surface handed to display adapters and the
// geometry collaborator.
package molecule

// Reader is the read-only view of a Molecule. Positions passed to its
// methods are iteration indexes valid until the next edit; stable handles
// are obtained with AtomID/BondID.
type Reader interface {
	Name() string
	AtomCount() int
	BondCount() int
	HasPositions3D() bool

	AtomID(p int) (AtomID, bool)
	AtomPosition(id AtomID) (int, error)
	AtomIDs() []AtomID
	Atom(p int) (AtomRecord, error)
	AtomicNumber(p int) uint8
	Position3D(p int) (Vector3, bool)
	Hybridization(p int) Hybridization
	FormalCharge(p int) int8
	Color(p int) Color
	ForceVector(p int) Vector3
	AtomicNumbers() []uint8
	Positions3D() []Vector3

	BondID(b int) (BondID, bool)
	BondPosition(id BondID) (int, error)
	BondIDs() []BondID
	Bond(b int) (BondRecord, error)
	BondPair(b int) BondPair
	BondOrder(b int) uint8
	BondPairs() []BondPair
	BondOrders() []uint8

	Bonds(p int) []int
	Neighbors(p int) []int
	FindBond(a, b int) (int, bool)

	UnitCell() (UnitCell, bool)
	Clone() *Molecule
}

var _ Reader = (*Molecule)(nil)
