// File: commands.go
// Role: The closed set of undoable commands, their payloads, forward and
// inverse application, and the interactive merge rule.
package editor

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/molkit/molecule"
)

// Kind tags a Command. The set is closed; apply and mergeCommands switch
// over every value.
type Kind uint8

// Command kinds.
const (
	KindAddAtom Kind = iota + 1
	KindRemoveAtom
	KindSetAtomicNumbers
	KindSetAtomicNumber
	KindSetPositions3D
	KindSetPosition3D
	KindSetHybridization
	KindSetFormalCharge
	KindSetColor
	KindSetForceVector
	KindAddBond
	KindRemoveBond
	KindSetBondOrders
	KindSetBondOrder
	KindSetBondPairs
	KindSetBondPair
	KindAddUnitCell
	KindRemoveUnitCell
	KindModifyMolecule
	KindMacro
)

var kindNames = [...]string{
	KindAddAtom:          "add_atom",
	KindRemoveAtom:       "remove_atom",
	KindSetAtomicNumbers: "set_atomic_numbers",
	KindSetAtomicNumber:  "set_atomic_number",
	KindSetPositions3D:   "set_positions3d",
	KindSetPosition3D:    "set_position3d",
	KindSetHybridization: "set_hybridization",
	KindSetFormalCharge:  "set_formal_charge",
	KindSetColor:         "set_color",
	KindSetForceVector:   "set_force_vector",
	KindAddBond:          "add_bond",
	KindRemoveBond:       "remove_bond",
	KindSetBondOrders:    "set_bond_orders",
	KindSetBondOrder:     "set_bond_order",
	KindSetBondPairs:     "set_bond_pairs",
	KindSetBondPair:      "set_bond_pair",
	KindAddUnitCell:      "add_unit_cell",
	KindRemoveUnitCell:   "remove_unit_cell",
	KindModifyMolecule:   "modify_molecule",
	KindMacro:            "macro",
}

// String returns the snake_case name used in logs and metric labels.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Mergeable reports whether commands of kind k coalesce during an
// interactive session.
func (k Kind) Mergeable() bool {
	switch k {
	case KindSetPositions3D, KindSetPosition3D, KindSetForceVector, KindSetBondOrder:
		return true
	default:
		return false
	}
}

// Command is one undoable step. It carries only the values it touches,
// except KindModifyMolecule which holds two whole-molecule snapshots.
type Command struct {
	Kind Kind
	// Text is a short human-readable label ("Remove Atom").
	Text string

	data any
}

// Payloads. Each Kind uses exactly one of these.
type (
	atomChange struct {
		id  molecule.AtomID
		pos int
		rec molecule.AtomRecord
	}
	bondChange struct {
		id  molecule.BondID
		pos int
		rec molecule.BondRecord
	}
	atomValue[T any] struct {
		id            molecule.AtomID
		before, after T
	}
	bondValue[T any] struct {
		id            molecule.BondID
		before, after T
	}
	// atomVectors is keyed by atom: ids[i] moves from before[i] to after[i].
	atomVectors struct {
		ids           []molecule.AtomID
		before, after []molecule.Vector3
	}
	column[T any] struct {
		before, after []T
	}
	cellChange struct {
		cell molecule.UnitCell
	}
	snapshot struct {
		before, after *molecule.Molecule
	}
	macro struct {
		children []Command
	}
)

func pick[T any](forward bool, before, after T) T {
	if forward {
		return after
	}

	return before
}

// apply runs c forward (do/redo) or backward (undo) against the editor's
// molecule and fragment map.
func (e *Editor) apply(c Command, forward bool) error {
	switch c.Kind {
	case KindAddAtom:
		d := c.data.(*atomChange)
		if forward {
			return e.insertAtom(d)
		}
		return e.eraseAtom(d.id)

	case KindRemoveAtom:
		d := c.data.(*atomChange)
		if forward {
			return e.eraseAtom(d.id)
		}
		return e.insertAtom(d)

	case KindSetAtomicNumbers:
		d := c.data.(*column[uint8])
		return e.mol.SetAtomicNumbers(pick(forward, d.before, d.after))

	case KindSetAtomicNumber:
		d := c.data.(*atomValue[uint8])
		return e.atAtom(d.id, func(p int) error {
			return e.mol.SetAtomicNumber(p, pick(forward, d.before, d.after))
		})

	case KindSetPositions3D:
		d := c.data.(*column[molecule.Vector3])
		return e.mol.SetPositions3D(pick(forward, d.before, d.after))

	case KindSetPosition3D:
		d := c.data.(*atomVectors)
		return e.setVectors(d.ids, pick(forward, d.before, d.after), e.mol.SetPosition3D)

	case KindSetHybridization:
		d := c.data.(*atomValue[molecule.Hybridization])
		return e.atAtom(d.id, func(p int) error {
			return e.mol.SetHybridization(p, pick(forward, d.before, d.after))
		})

	case KindSetFormalCharge:
		d := c.data.(*atomValue[int8])
		return e.atAtom(d.id, func(p int) error {
			return e.mol.SetFormalCharge(p, pick(forward, d.before, d.after))
		})

	case KindSetColor:
		d := c.data.(*atomValue[molecule.Color])
		return e.atAtom(d.id, func(p int) error {
			return e.mol.SetColor(p, pick(forward, d.before, d.after))
		})

	case KindSetForceVector:
		d := c.data.(*atomVectors)
		return e.setVectors(d.ids, pick(forward, d.before, d.after), e.mol.SetForceVector)

	case KindAddBond:
		d := c.data.(*bondChange)
		if forward {
			return e.insertBond(d)
		}
		return e.eraseBond(d.id)

	case KindRemoveBond:
		d := c.data.(*bondChange)
		if forward {
			return e.eraseBond(d.id)
		}
		return e.insertBond(d)

	case KindSetBondOrders:
		d := c.data.(*column[uint8])
		return e.mol.SetBondOrders(pick(forward, d.before, d.after))

	case KindSetBondOrder:
		d := c.data.(*bondValue[uint8])
		return e.atBond(d.id, func(b int) error {
			return e.mol.SetBondOrder(b, pick(forward, d.before, d.after))
		})

	case KindSetBondPairs:
		d := c.data.(*column[molecule.BondPair])
		if err := e.mol.SetBondPairs(pick(forward, d.before, d.after)); err != nil {
			return err
		}
		return e.rebuildGroups()

	case KindSetBondPair:
		d := c.data.(*bondValue[molecule.BondPair])
		err := e.atBond(d.id, func(b int) error {
			return e.mol.SetBondPair(b, pick(forward, d.before, d.after))
		})
		if err != nil {
			return err
		}
		return e.rebuildGroups()

	case KindAddUnitCell, KindRemoveUnitCell:
		d := c.data.(*cellChange)
		if forward == (c.Kind == KindAddUnitCell) {
			e.mol.SetUnitCell(&d.cell)
		} else {
			e.mol.SetUnitCell(nil)
		}
		return nil

	case KindModifyMolecule:
		d := c.data.(*snapshot)
		e.mol = pick(forward, d.before, d.after).Clone()
		return e.rebuildGroups()

	case KindMacro:
		d := c.data.(*macro)
		if forward {
			for _, child := range d.children {
				if err := e.apply(child, true); err != nil {
					return err
				}
			}
			return nil
		}
		for i := len(d.children) - 1; i >= 0; i-- {
			if err := e.apply(d.children[i], false); err != nil {
				return err
			}
		}
		return nil

	default:
		panic(fmt.Sprintf("editor: unknown command kind %d", uint8(c.Kind)))
	}
}

// mergeCommands folds next into *top when both are the same mergeable kind.
// Only the "after" side of top changes.
func mergeCommands(top *Command, next Command) bool {
	if top.Kind != next.Kind || !top.Kind.Mergeable() {
		return false
	}
	switch top.Kind {
	case KindSetPositions3D:
		t, n := top.data.(*column[molecule.Vector3]), next.data.(*column[molecule.Vector3])
		t.after = n.after
		return true

	case KindSetPosition3D, KindSetForceVector:
		t, n := top.data.(*atomVectors), next.data.(*atomVectors)
		for i, id := range n.ids {
			if j := slices.Index(t.ids, id); j >= 0 {
				t.after[j] = n.after[i]
				continue
			}
			t.ids = append(t.ids, id)
			t.before = append(t.before, n.before[i])
			t.after = append(t.after, n.after[i])
		}
		return true

	case KindSetBondOrder:
		t, n := top.data.(*bondValue[uint8]), next.data.(*bondValue[uint8])
		if t.id != n.id {
			return false
		}
		t.after = n.after
		return true

	default:
		return false
	}
}
