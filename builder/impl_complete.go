// SPDX-License-Identifier: MIT
// Package: molkit/builder
//
// impl_complete.go: Complete(n): every atom pair bonded (cluster fixture).
//
// Contract:
//   • n >= minCompleteAtoms; otherwise ErrTooFewAtoms.
//   • Emits n*(n-1)/2 bonds in lexicographic (i<j) order.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/molkit/molecule"
)

const (
	methodComplete   = "Complete"
	minCompleteAtoms = 1
)

// Complete returns a Constructor that appends n mutually bonded atoms.
func Complete(n int) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if n < minCompleteAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteAtoms, ErrTooFewAtoms)
		}
		base := addAtoms(m, cfg, circle(n, cfg.spacing))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := bond(m, cfg, methodComplete, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
