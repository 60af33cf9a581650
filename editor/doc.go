// Package editor is the mutation layer over a molecule: every edit goes
// through an Editor, which updates the columnar store, the id tables and the
// fragment map together and records an undoable command.
//
// What:
//
//   - Atom edits: AddAtom, AddAtomAt, RemoveAtom, ClearAtoms, per-atom and
//     bulk setters for atomic number, coordinates, hybridization, formal
//     charge, color and force vector.
//   - Bond edits: AddBond, RemoveBond, RemoveBondBetween, bond order and bond
//     pair setters (per bond and bulk).
//   - Unit cell and whole-molecule replacement (ModifyMolecule).
//   - History: Undo, Redo, macros (BeginMacro/EndMacro), clean state, and
//     interactive sessions (SetInteractive) during which drag-style edits
//     coalesce into one undo step.
//   - Fragments: Group, GroupMembers, Groups, and RecomputeGroups.
//   - Bond-graph queries: BondPath, BondDistance, AtomsWithin, Substituent.
//
// Handles:
//
//	Callers address atoms and bonds by molecule.AtomID and molecule.BondID.
//	Positions are an internal detail that changes on removal. An id stays
//	valid until its entity is removed and becomes valid again when that
//	removal is undone.
//
// Coalescing:
//
//	While the interactive flag is set, consecutive edits of the same
//	mergeable kind fold into the command on top of the stack: the "after"
//	values are replaced, the "before" values are kept. Mergeable kinds are
//	KindSetPositions3D, KindSetPosition3D and KindSetForceVector (matched per
//	atom), and KindSetBondOrder (same bond only).
//
// Fragments:
//
//	Group membership is maintained incrementally and follows the groupmap
//	approximation on bond removal. Bulk bond-pair edits and whole-molecule
//	replacement recompute exact fragments; RecomputeGroups does so on demand.
//
// Concurrency:
//
//	An Editor is owned by one goroutine. It performs no locking.
//
// Errors:
//
//   - molecule.ErrAtomNotFound / ErrBondNotFound: stale or unknown handle.
//   - molecule.ErrInvalidBond, ErrBondExists, ErrLengthMismatch,
//     ErrNoPositions, ErrNoUnitCell, ErrUnitCellExists: rejected edits.
//   - ErrMacroOpen: Undo/Redo while a macro is being recorded.
//   - ErrNoMacro: EndMacro without BeginMacro.
//   - ErrNilMolecule: ModifyMolecule with a nil molecule.
//   - ErrNoPath: BondPath or BondDistance across fragments.
//
// A rejected edit changes nothing and records nothing.
package editor
