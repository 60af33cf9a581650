package editor_test

import (
	"fmt"

	"github.com/katalvlaran/molkit/editor"
	"github.com/katalvlaran/molkit/molecule"
)

// ExampleEditor_dragAtom shows an interactive drag collapsing into one
// undo step.
func ExampleEditor_dragAtom() {
	e := editor.New()
	c := e.AddAtomAt(6, molecule.Vector3{})

	e.SetInteractive(true)
	for x := 1; x <= 10; x++ {
		_ = e.SetAtomPosition3D(c, molecule.Vector3{X: float64(x) / 10})
	}
	e.SetInteractive(false)

	fmt.Println("steps:", e.UndoCount(), e.UndoText())
	_ = e.Undo()
	pos, _ := e.Molecule().Position3D(0)
	fmt.Println("after undo:", pos.X)
	// Output:
	// steps: 2 Change Atom Position
	// after undo: 0
}

// ExampleEditor_removeAtom removes the middle atom of a chain; the last atom
// takes its position and keeps its id.
func ExampleEditor_removeAtom() {
	e := editor.New()
	c := e.AddAtom(6)
	o := e.AddAtom(8)
	h := e.AddAtom(1)
	_, _ = e.AddBond(c, o, 2)
	_, _ = e.AddBond(o, h, 1)

	_ = e.RemoveAtom(o)
	p, _ := e.Molecule().AtomPosition(h)
	fmt.Println("atoms:", e.Molecule().AtomCount(), "bonds:", e.Molecule().BondCount(), "h at:", p)

	_ = e.Undo()
	p, _ = e.Molecule().AtomPosition(h)
	fmt.Println("atoms:", e.Molecule().AtomCount(), "bonds:", e.Molecule().BondCount(), "h at:", p)
	// Output:
	// atoms: 2 bonds: 0 h at: 1
	// atoms: 3 bonds: 2 h at: 2
}

// ExampleEditor_BeginMacro groups several edits under one label.
func ExampleEditor_BeginMacro() {
	e := editor.New()
	e.BeginMacro("Add Water")
	o := e.AddAtom(8)
	for i := 0; i < 2; i++ {
		h := e.AddAtom(1)
		_, _ = e.AddBond(o, h, 1)
	}
	_ = e.EndMacro()

	fmt.Println(e.UndoCount(), e.UndoText(), e.GroupCount())
	// Output:
	// 1 Add Water 1
}
