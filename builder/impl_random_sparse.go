// SPDX-License-Identifier: MIT
// Package: molkit/builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi G(n,p) fragment.
//
// Contract:
//   • n >= minRandomAtoms; otherwise ErrTooFewAtoms.
//   • p ∈ [0,1]; otherwise ErrInvalidProbability.
//   • 0 < p < 1 requires an RNG (WithSeed/WithRand); otherwise
//     ErrNeedRandSource. p == 0 and p == 1 are deterministic.
//   • Each pair i<j is bonded independently with probability p, visited in
//     lexicographic order so a fixed seed reproduces the same bonds.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/molkit/molecule"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomAtoms     = 1
)

// RandomSparse returns a Constructor that appends n atoms bonded at random.
func RandomSparse(n int, p float64) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if n < minRandomAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomAtoms, ErrTooFewAtoms)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrNeedRandSource)
		}
		base := addAtoms(m, cfg, circle(n, cfg.spacing))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				if err := bond(m, cfg, methodRandomSparse, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
