// SPDX-License-Identifier: MIT
// Package: molkit/builder
//
// impl_chain.go: Chain(n): linear backbone a0-a1-...-a(n-1) along x.
//
// Contract:
//   • n >= minChainAtoms; otherwise ErrTooFewAtoms.
//   • Emits n atoms and n-1 bonds, each joining consecutive atoms.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/molkit/molecule"
)

const (
	methodChain   = "Chain"
	minChainAtoms = 1
)

// Chain returns a Constructor that appends a linear chain of n atoms.
func Chain(n int) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if n < minChainAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainAtoms, ErrTooFewAtoms)
		}
		base := addAtoms(m, cfg, line(n, cfg.spacing))
		for i := 0; i+1 < n; i++ {
			if err := bond(m, cfg, methodChain, base, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
