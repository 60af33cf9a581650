// SPDX-License-Identifier: MIT
// Package: molkit/builder
//
// impl_grid.go: Grid(rows, cols): rectangular lattice with 4-neighborhood.
//
// Contract:
//   • rows >= 1 and cols >= 1; otherwise ErrTooFewAtoms.
//   • Local index of cell (r,c) is r*cols + c; coordinates are
//     (c*spacing, r*spacing, 0).
//   • Emits rows*(cols-1) horizontal and (rows-1)*cols vertical bonds.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/molkit/molecule"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewAtoms)
		}
		coords := make([]molecule.Vector3, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				coords = append(coords, molecule.Vector3{X: float64(c) * cfg.spacing, Y: float64(r) * cfg.spacing})
			}
		}
		base := addAtoms(m, cfg, coords)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := bond(m, cfg, methodGrid, base, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := bond(m, cfg, methodGrid, base, i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
