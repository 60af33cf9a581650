// SPDX-License-Identifier: MIT
// Package: molkit/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • elementFn = carbon for every atom
//   • orderFn   = single bonds
//   • rng       = nil (pure/deterministic unless seeded)
//   • spacing   = 1.5 Å

package builder

import (
	"math/rand"

	"github.com/katalvlaran/molkit/molecule"
)

const (
	defaultElement = uint8(6)
	defaultOrder   = uint8(1)
	defaultSpacing = 1.5
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Atomic number per local atom index.
	elementFn func(int) uint8
	// Bond order per emitted bond.
	orderFn func(*rand.Rand) uint8
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Layout distance between neighboring atoms.
	spacing float64
	// Shift applied to every coordinate of the current fragment; set per
	// constructor by Build/Into.
	offset molecule.Vector3
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		elementFn: func(int) uint8 { return defaultElement },
		orderFn:   func(*rand.Rand) uint8 { return defaultOrder },
		spacing:   defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
