// SPDX-License-Identifier: MIT
// Package: molkit/builder
//
// impl_star.go: Star(n): one center bonded to n-1 ligands.
//
// Contract:
//   • n >= minStarAtoms; otherwise ErrTooFewAtoms.
//   • Local atom 0 is the center at the fragment origin; ligands sit on a
//     circle of radius spacing around it.
//   • Emits n-1 bonds, all incident to the center.
//
// Complexity: O(n).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/molkit/molecule"
)

const (
	methodStar   = "Star"
	minStarAtoms = 2
)

// Star returns a Constructor that appends a center atom with n-1 ligands.
func Star(n int) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if n < minStarAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarAtoms, ErrTooFewAtoms)
		}
		coords := make([]molecule.Vector3, n)
		for i := 1; i < n; i++ {
			a := 2 * math.Pi * float64(i-1) / float64(n-1)
			coords[i] = molecule.Vector3{X: cfg.spacing * math.Cos(a), Y: cfg.spacing * math.Sin(a)}
		}
		base := addAtoms(m, cfg, coords)
		for i := 1; i < n; i++ {
			if err := bond(m, cfg, methodStar, base, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
