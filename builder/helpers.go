// SPDX-License-Identifier: MIT
// Package: molkit/builder
//
// helpers.go: shared atom/bond emission and layout helpers.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/molkit/molecule"
)

// addAtoms appends len(coords) atoms shifted by cfg.offset and returns the
// position of the first one.
func addAtoms(m *molecule.Molecule, cfg builderConfig, coords []molecule.Vector3) int {
	base := m.AtomCount()
	for i, c := range coords {
		m.AppendAtom(molecule.AtomRecord{
			AtomicNumber: cfg.elementFn(i),
			Position3D:   c.Add(cfg.offset),
		})
	}

	return base
}

// bond joins the local atoms i and j of the fragment starting at base.
func bond(m *molecule.Molecule, cfg builderConfig, method string, base, i, j int) error {
	order := cfg.orderFn(cfg.rng)
	if _, _, err := m.AppendBond(base+i, base+j, order); err != nil {
		return fmt.Errorf("%s: AppendBond(%d-%d, order=%d): %v: %w", method, base+i, base+j, order, err, ErrConstructFailed)
	}

	return nil
}

// circle returns n points on a circle whose chord between neighbors is
// spacing.
func circle(n int, spacing float64) []molecule.Vector3 {
	out := make([]molecule.Vector3, n)
	if n == 1 {
		return out
	}
	r := spacing / (2 * math.Sin(math.Pi/float64(n)))
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = molecule.Vector3{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}

	return out
}

// line returns n points along x at the given spacing.
func line(n int, spacing float64) []molecule.Vector3 {
	out := make([]molecule.Vector3, n)
	for i := range out {
		out[i].X = float64(i) * spacing
	}

	return out
}
