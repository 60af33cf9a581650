// SPDX-License-Identifier: MIT
// Package: molkit/builder
//
// api.go: public entry points for the builder package.
//
// Design contract:
//   • One orchestrator pair: Build creates a molecule, Into extends one.
//     Both resolve options once and run constructors in order.
//   • Constructors are declared here and implemented in impl_*.go.
//   • Determinism: same inputs/options/seed and constructor order ⇒ Equal
//     molecules.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molkit/molecule"
)

// fragmentGap separates consecutive fragments along z, in units of spacing.
const fragmentGap = 2.0

// Constructor appends one fragment to m using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching m and return sentinel errors.
//   - Append atoms after the existing ones and bond only among those.
//   - Preserve determinism for the same config and call order.
type Constructor func(m *molecule.Molecule, cfg builderConfig) error

// Build creates a molecule with mopts and applies every constructor in
// order. Any constructor error is wrapped as "Build: %w"; no partial
// cleanup is attempted.
func Build(mopts []molecule.Option, bopts []BuilderOption, cons ...Constructor) (*molecule.Molecule, error) {
	m := molecule.New(mopts...)
	if err := apply(m, bopts, cons); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return m, nil
}

// Into applies the constructors to an existing molecule. Fragments are
// appended after its atoms.
func Into(m *molecule.Molecule, bopts []BuilderOption, cons ...Constructor) error {
	if err := apply(m, bopts, cons); err != nil {
		return fmt.Errorf("Into: %w", err)
	}

	return nil
}

func apply(m *molecule.Molecule, bopts []BuilderOption, cons []Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		cfg.offset = molecule.Vector3{Z: float64(i) * fragmentGap * cfg.spacing}
		if err := fn(m, cfg); err != nil {
			return err
		}
	}

	return nil
}
