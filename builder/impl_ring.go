// SPDX-License-Identifier: MIT
// Package: molkit/builder
//
// impl_ring.go: Ring(n): closed cycle a0-a1-...-a(n-1)-a0.
//
// Contract:
//   • n >= minRingAtoms; otherwise ErrTooFewAtoms.
//   • Atoms sit on a regular polygon with side length = spacing.
//   • Emits n bonds; the closing bond is a(n-1)-a0.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/molkit/molecule"
)

const (
	methodRing   = "Ring"
	minRingAtoms = 3
)

// Ring returns a Constructor that appends an n-membered ring.
func Ring(n int) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if n < minRingAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingAtoms, ErrTooFewAtoms)
		}
		base := addAtoms(m, cfg, circle(n, cfg.spacing))
		for i := 0; i < n; i++ {
			if err := bond(m, cfg, methodRing, base, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
