// SPDX-License-Identifier: MIT
// Package: molkit/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithElement uses atomic number z for every atom.
func WithElement(z uint8) BuilderOption {
	return func(c *builderConfig) {
		c.elementFn = func(int) uint8 { return z }
	}
}

// WithElementFn sets the atomic number of the i-th atom of each fragment.
// Panics on nil.
func WithElementFn(fn func(i int) uint8) BuilderOption {
	if fn == nil {
		panic("builder: WithElementFn(nil)")
	}
	return func(c *builderConfig) {
		c.elementFn = fn
	}
}

// WithOrderFn sets the generator of bond orders. The function receives the
// (possibly nil) RNG. Panics on nil.
func WithOrderFn(fn func(*rand.Rand) uint8) BuilderOption {
	if fn == nil {
		panic("builder: WithOrderFn(nil)")
	}
	return func(c *builderConfig) {
		c.orderFn = fn
	}
}

// WithSpacing sets the layout distance between neighboring atoms.
// Panics unless d > 0.
func WithSpacing(d float64) BuilderOption {
	if !(d > 0) {
		panic("builder: WithSpacing requires d > 0")
	}
	return func(c *builderConfig) {
		c.spacing = d
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
