package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/molkit/editor"
	"github.com/katalvlaran/molkit/molecule"
)

type handler struct {
	check func(Step) error
	run   func(r *Runner, st Step) error
}

var handlers = map[string]handler{
	"add_atom":           {run: (*Runner).addAtom},
	"remove_atom":        {check: needAtom, run: (*Runner).removeAtom},
	"clear_atoms":        {run: func(r *Runner, _ Step) error { return r.ed.ClearAtoms() }},
	"set_element":        {check: needAtom, run: (*Runner).setElement},
	"set_position":       {check: all(needAtom, need("pos", hasPos)), run: (*Runner).setPosition},
	"set_charge":         {check: needAtom, run: (*Runner).setCharge},
	"set_hybridization":  {check: needAtom, run: (*Runner).setHybridization},
	"set_color":          {check: all(needAtom, need("color", hasColor)), run: (*Runner).setColor},
	"set_force":          {check: all(needAtom, need("vector", hasVector)), run: (*Runner).setForce},
	"add_bond":           {check: needPair, run: (*Runner).addBond},
	"remove_bond":        {check: needBond, run: (*Runner).removeBond},
	"set_bond_order":     {check: all(needBond, need("order", hasOrder)), run: (*Runner).setBondOrder},
	"set_bond_pair":      {check: all(need("bond", hasBond), needPair), run: (*Runner).setBondPair},
	"add_unit_cell":      {check: need("cell", hasCell), run: (*Runner).addUnitCell},
	"remove_unit_cell":   {run: func(r *Runner, _ Step) error { return r.ed.RemoveUnitCell() }},
	"begin_macro":        {check: need("text", hasText), run: func(r *Runner, st Step) error { r.ed.BeginMacro(st.Text); return nil }},
	"end_macro":          {run: func(r *Runner, _ Step) error { return r.ed.EndMacro() }},
	"begin_interactive":  {run: func(r *Runner, _ Step) error { r.ed.SetInteractive(true); return nil }},
	"end_interactive":    {run: func(r *Runner, _ Step) error { r.ed.SetInteractive(false); return nil }},
	"undo":               {run: func(r *Runner, _ Step) error { return r.ed.Undo() }},
	"redo":               {run: func(r *Runner, _ Step) error { return r.ed.Redo() }},
	"set_clean":          {run: func(r *Runner, _ Step) error { r.ed.SetClean(); return nil }},
	"clear_history":      {run: func(r *Runner, _ Step) error { return r.ed.ClearHistory() }},
	"recompute_groups":   {run: func(r *Runner, _ Step) error { return r.ed.RecomputeGroups(r.ctx) }},
	"expect":             {check: need("want", hasWant), run: (*Runner).expect},
	"expect_distance":    {check: all(needPair, need("want.distance", hasWantDistance)), run: (*Runner).expectDistance},
	"expect_within":      {check: all(needAtom, need("want.atoms", hasWantAtoms)), run: (*Runner).expectWithin},
	"expect_substituent": {check: all(needPair, need("want.atoms", hasWantAtoms)), run: (*Runner).expectSubstituent},
}

func hasPos(st Step) bool    { return st.Pos != nil }
func hasColor(st Step) bool  { return st.Color != nil }
func hasVector(st Step) bool { return st.Vector != nil }
func hasOrder(st Step) bool  { return st.Order != 0 }
func hasBond(st Step) bool   { return st.Bond != "" }
func hasCell(st Step) bool   { return st.Cell != nil }
func hasText(st Step) bool   { return st.Text != "" }
func hasWant(st Step) bool   { return st.Want != nil }

func hasWantDistance(st Step) bool { return st.Want != nil && st.Want.Distance != nil }
func hasWantAtoms(st Step) bool    { return st.Want != nil && st.Want.Atoms != nil }

// Option configures a Runner.
type Option func(*Runner)

// WithLogger logs each step at debug level. The default discards.
func WithLogger(log *slog.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// Runner executes scripts against one editor. References made by one Run
// stay visible to later runs on the same Runner.
type Runner struct {
	ed    *editor.Editor
	log   *slog.Logger
	ctx   context.Context
	atoms map[string]molecule.AtomID
	bonds map[string]molecule.BondID
}

// NewRunner creates a Runner editing ed.
func NewRunner(ed *editor.Editor, opts ...Option) *Runner {
	r := &Runner{
		ed:    ed,
		log:   slog.New(slog.DiscardHandler),
		atoms: make(map[string]molecule.AtomID),
		bonds: make(map[string]molecule.BondID),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes s step by step and stops at the first failing step. Edits
// made by earlier steps are kept; the caller can undo them.
// ctx is checked between steps.
func (r *Runner) Run(ctx context.Context, s *Script) error {
	if err := Validate(s); err != nil {
		return err
	}
	r.ctx = ctx
	defer func() { r.ctx = nil }()

	start := time.Now()
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("script %q: step %d: %w", s.Name, i, err)
		}
		if err := handlers[st.Op].run(r, st); err != nil {
			return fmt.Errorf("script %q: step %d (%s): %w", s.Name, i, st.Op, err)
		}
		r.log.Debug("script step", "script", s.Name, "step", i, "op", st.Op)
	}
	r.log.Info("script finished", "script", s.Name, "steps", len(s.Steps), "duration", time.Since(start))
	return nil
}

// Atom resolves an atom reference made by an earlier add_atom.
func (r *Runner) Atom(ref string) (molecule.AtomID, bool) {
	id, ok := r.atoms[ref]
	return id, ok
}

// Bond resolves a bond reference made by an earlier add_bond.
func (r *Runner) Bond(ref string) (molecule.BondID, bool) {
	id, ok := r.bonds[ref]
	return id, ok
}

func (r *Runner) atom(ref string) (molecule.AtomID, error) {
	id, ok := r.atoms[ref]
	if !ok {
		return 0, fmt.Errorf("%w: atom %q", ErrUnknownRef, ref)
	}
	return id, nil
}

func (r *Runner) pair(st Step) (molecule.AtomID, molecule.AtomID, error) {
	a, err := r.atom(st.Atoms[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := r.atom(st.Atoms[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// bond resolves st.Bond, or the bond joining st.Atoms when no bond is named.
func (r *Runner) bond(st Step) (molecule.BondID, error) {
	if st.Bond != "" {
		id, ok := r.bonds[st.Bond]
		if !ok {
			return 0, fmt.Errorf("%w: bond %q", ErrUnknownRef, st.Bond)
		}
		return id, nil
	}
	a, b, err := r.pair(st)
	if err != nil {
		return 0, err
	}
	return r.ed.BondBetween(a, b)
}

func vec(v *[3]float64) molecule.Vector3 {
	return molecule.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (r *Runner) addAtom(st Step) error {
	var id molecule.AtomID
	if st.Pos != nil {
		id = r.ed.AddAtomAt(st.Element, vec(st.Pos))
	} else {
		id = r.ed.AddAtom(st.Element)
	}
	if st.Ref != "" {
		r.atoms[st.Ref] = id
	}
	return nil
}

func (r *Runner) removeAtom(st Step) error {
	id, err := r.atom(st.Atom)
	if err != nil {
		return err
	}
	return r.ed.RemoveAtom(id)
}

func (r *Runner) setElement(st Step) error {
	id, err := r.atom(st.Atom)
	if err != nil {
		return err
	}
	return r.ed.SetAtomicNumber(id, st.Element)
}

func (r *Runner) setPosition(st Step) error {
	id, err := r.atom(st.Atom)
	if err != nil {
		return err
	}
	return r.ed.SetAtomPosition3D(id, vec(st.Pos))
}

func (r *Runner) setCharge(st Step) error {
	id, err := r.atom(st.Atom)
	if err != nil {
		return err
	}
	return r.ed.SetFormalCharge(id, st.Charge)
}

func (r *Runner) setHybridization(st Step) error {
	id, err := r.atom(st.Atom)
	if err != nil {
		return err
	}
	return r.ed.SetHybridization(id, molecule.Hybridization(st.Hybridization))
}

func (r *Runner) setColor(st Step) error {
	id, err := r.atom(st.Atom)
	if err != nil {
		return err
	}
	return r.ed.SetColor(id, molecule.Color{R: st.Color[0], G: st.Color[1], B: st.Color[2]})
}

func (r *Runner) setForce(st Step) error {
	id, err := r.atom(st.Atom)
	if err != nil {
		return err
	}
	return r.ed.SetForceVector(id, vec(st.Vector))
}

func (r *Runner) addBond(st Step) error {
	a, b, err := r.pair(st)
	if err != nil {
		return err
	}
	order := st.Order
	if order == 0 {
		order = 1
	}
	id, err := r.ed.AddBond(a, b, order)
	if err != nil {
		return err
	}
	if st.Ref != "" {
		r.bonds[st.Ref] = id
	}
	return nil
}

func (r *Runner) removeBond(st Step) error {
	id, err := r.bond(st)
	if err != nil {
		return err
	}
	return r.ed.RemoveBond(id)
}

func (r *Runner) setBondOrder(st Step) error {
	id, err := r.bond(st)
	if err != nil {
		return err
	}
	return r.ed.SetBondOrder(id, st.Order)
}

func (r *Runner) setBondPair(st Step) error {
	id, err := r.bond(Step{Bond: st.Bond})
	if err != nil {
		return err
	}
	a, b, err := r.pair(st)
	if err != nil {
		return err
	}
	return r.ed.SetBondPair(id, a, b)
}

func (r *Runner) addUnitCell(st Step) error {
	c := st.Cell
	return r.ed.AddUnitCell(molecule.UnitCell{A: vec(&c[0]), B: vec(&c[1]), C: vec(&c[2])})
}

func (r *Runner) expect(st Step) error {
	m := r.ed.Molecule()
	checks := []struct {
		name string
		want *int
		got  int
	}{
		{"atoms", st.Want.Atoms, m.AtomCount()},
		{"bonds", st.Want.Bonds, m.BondCount()},
		{"groups", st.Want.Groups, r.ed.GroupCount()},
		{"undo_count", st.Want.UndoCount, r.ed.UndoCount()},
		{"undo_index", st.Want.UndoIndex, r.ed.UndoIndex()},
	}
	for _, c := range checks {
		if err := compare(c.name, c.want, c.got); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) expectDistance(st Step) error {
	a, b, err := r.pair(st)
	if err != nil {
		return err
	}
	got, err := r.ed.BondDistance(r.ctx, a, b)
	if errors.Is(err, editor.ErrNoPath) {
		got, err = -1, nil
	}
	if err != nil {
		return err
	}
	return compare("distance", st.Want.Distance, got)
}

func (r *Runner) expectWithin(st Step) error {
	id, err := r.atom(st.Atom)
	if err != nil {
		return err
	}
	ids, err := r.ed.AtomsWithin(r.ctx, id, st.Depth)
	if err != nil {
		return err
	}
	return compare("atoms", st.Want.Atoms, len(ids))
}

func (r *Runner) expectSubstituent(st Step) error {
	from, via, err := r.pair(st)
	if err != nil {
		return err
	}
	ids, err := r.ed.Substituent(r.ctx, from, via)
	if err != nil {
		return err
	}
	return compare("atoms", st.Want.Atoms, len(ids))
}

func compare(name string, want *int, got int) error {
	if want != nil && *want != got {
		return fmt.Errorf("%w: %s = %d, want %d", ErrExpectation, name, got, *want)
	}
	return nil
}
