// File: methods_molecule.go
// Role: Whole-molecule edits: unit cell and replacement.
package editor

import (
	"time"

	"github.com/katalvlaran/molkit/molecule"
)

// AddUnitCell attaches cell to the molecule.
// Errors: molecule.ErrUnitCellExists when a cell is already attached.
func (e *Editor) AddUnitCell(cell molecule.UnitCell) error {
	if _, ok := e.mol.UnitCell(); ok {
		e.reject(KindAddUnitCell, time.Now(), molecule.ErrUnitCellExists)
		return molecule.ErrUnitCellExists
	}

	return e.exec(Command{Kind: KindAddUnitCell, Text: "Add Unit Cell", data: &cellChange{cell: cell}})
}

// RemoveUnitCell detaches the unit cell.
// Errors: molecule.ErrNoUnitCell when none is attached.
func (e *Editor) RemoveUnitCell() error {
	cell, ok := e.mol.UnitCell()
	if !ok {
		e.reject(KindRemoveUnitCell, time.Now(), molecule.ErrNoUnitCell)
		return molecule.ErrNoUnitCell
	}

	return e.exec(Command{Kind: KindRemoveUnitCell, Text: "Remove Unit Cell", data: &cellChange{cell: cell}})
}

// ModifyMolecule replaces the whole structure with a copy of m as one undo
// step labelled text. Ids held for the previous structure stop resolving
// until the step is undone. Fragments are recomputed exactly.
func (e *Editor) ModifyMolecule(m *molecule.Molecule, text string) error {
	if m == nil {
		e.reject(KindModifyMolecule, time.Now(), ErrNilMolecule)
		return ErrNilMolecule
	}
	if text == "" {
		text = "Modify Molecule"
	}

	return e.exec(Command{
		Kind: KindModifyMolecule,
		Text: text,
		data: &snapshot{before: e.mol.Clone(), after: m.Clone()},
	})
}
