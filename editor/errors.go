package editor

import "errors"

var (
	// ErrMacroOpen indicates an operation that is not allowed while a macro
	// is being recorded.
	ErrMacroOpen = errors.New("editor: macro in progress")

	// ErrNoMacro indicates EndMacro without a matching BeginMacro.
	ErrNoMacro = errors.New("editor: no macro in progress")

	// ErrNilMolecule indicates a nil replacement molecule.
	ErrNilMolecule = errors.New("editor: nil molecule")

	// ErrNoPath indicates two atoms in different fragments.
	ErrNoPath = errors.New("editor: no bond path")
)
