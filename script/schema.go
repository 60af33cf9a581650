// Package script drives an editor.Editor from a YAML edit script.
//
// A script is a list of steps. Each step names an op and its operands.
// Atoms and bonds created by a step can be labelled with ref and referred
// to by that label in later steps:
//
//	name: water
//	steps:
//	  - {op: add_atom, ref: o, element: 8, pos: [0, 0, 0]}
//	  - {op: add_atom, ref: h1, element: 1, pos: [0.96, 0, 0]}
//	  - {op: add_bond, ref: oh1, atoms: [o, h1]}
//	  - {op: expect, want: {atoms: 2, bonds: 1, groups: 1}}
//
// The expect op checks counts and fails the run on a mismatch, so scripts
// double as regression fixtures. expect_distance, expect_within and
// expect_substituent check bond-graph queries the same way:
//
//   - {op: expect_distance, atoms: [c1, o], want: {distance: 2}}
//   - {op: expect_within, atom: c2, depth: 1, want: {atoms: 3}}
//   - {op: expect_substituent, atoms: [c1, c2], want: {atoms: 2}}
//
// A distance of -1 means the atoms lie in different fragments.
package script

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	ErrUnknownOp   = errors.New("script: unknown op")
	ErrUnknownRef  = errors.New("script: unknown reference")
	ErrBadOperand  = errors.New("script: bad operand")
	ErrExpectation = errors.New("script: expectation failed")
)

// Script is the top-level YAML structure.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one edit. Only the operands its op reads are consulted.
type Step struct {
	Op   string `yaml:"op"`
	Ref  string `yaml:"ref,omitempty"`
	Text string `yaml:"text,omitempty"`

	Atom  string   `yaml:"atom,omitempty"`
	Atoms []string `yaml:"atoms,omitempty"`
	Bond  string   `yaml:"bond,omitempty"`
	Depth int      `yaml:"depth,omitempty"`

	Element       uint8          `yaml:"element,omitempty"`
	Order         uint8          `yaml:"order,omitempty"`
	Charge        int8           `yaml:"charge,omitempty"`
	Hybridization int8           `yaml:"hybridization,omitempty"`
	Pos           *[3]float64    `yaml:"pos,omitempty"`
	Vector        *[3]float64    `yaml:"vector,omitempty"`
	Color         *[3]uint8      `yaml:"color,omitempty"`
	Cell          *[3][3]float64 `yaml:"cell,omitempty"`

	Want *Want `yaml:"want,omitempty"`
}

// Want lists the counts an expect step checks. Nil fields are not checked.
// The traversal expectations read Atoms as the size of the atom set they
// query and Distance as a bond count.
type Want struct {
	Atoms     *int `yaml:"atoms,omitempty"`
	Distance  *int `yaml:"distance,omitempty"`
	Bonds     *int `yaml:"bonds,omitempty"`
	Groups    *int `yaml:"groups,omitempty"`
	UndoCount *int `yaml:"undo_count,omitempty"`
	UndoIndex *int `yaml:"undo_index,omitempty"`
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks every step for a known op and the operands it needs.
// References are resolved at run time, since undo can invalidate them.
func Validate(s *Script) error {
	var errs []error
	refs := make(map[string]int)
	for i, st := range s.Steps {
		h, ok := handlers[st.Op]
		if !ok {
			errs = append(errs, fmt.Errorf("steps[%d]: %w %q", i, ErrUnknownOp, st.Op))
			continue
		}
		if h.check != nil {
			if err := h.check(st); err != nil {
				errs = append(errs, fmt.Errorf("steps[%d] (%s): %w", i, st.Op, err))
			}
		}
		if st.Ref != "" {
			if prev, dup := refs[st.Ref]; dup {
				errs = append(errs, fmt.Errorf("steps[%d]: %w: ref %q already defined at steps[%d]", i, ErrBadOperand, st.Ref, prev))
			} else {
				refs[st.Ref] = i
			}
		}
	}
	return errors.Join(errs...)
}

// Ops returns the names of every supported op.
func Ops() []string {
	out := make([]string, 0, len(handlers))
	for name := range handlers {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func needAtom(st Step) error {
	if st.Atom == "" {
		return fmt.Errorf("%w: atom is required", ErrBadOperand)
	}
	return nil
}

func needBond(st Step) error {
	if st.Bond == "" && len(st.Atoms) != 2 {
		return fmt.Errorf("%w: bond or two atoms are required", ErrBadOperand)
	}
	return nil
}

func needPair(st Step) error {
	if len(st.Atoms) != 2 {
		return fmt.Errorf("%w: atoms must name exactly two atoms, got %d", ErrBadOperand, len(st.Atoms))
	}
	return nil
}

func all(checks ...func(Step) error) func(Step) error {
	return func(st Step) error {
		var errs []error
		for _, c := range checks {
			if err := c(st); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

func need(field string, present func(Step) bool) func(Step) error {
	return func(st Step) error {
		if !present(st) {
			return fmt.Errorf("%w: %s is required", ErrBadOperand, field)
		}
		return nil
	}
}
