// SPDX-License-Identifier: MIT
// Package: molkit/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Option constructors (WithX) panic on meaningless input; constructors
//     never panic.

package builder

import "errors"

// ErrTooFewAtoms indicates that a size parameter (n, rows, cols) is below
// the constructor minimum.
var ErrTooFewAtoms = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a bond the molecule
// refused.
var ErrConstructFailed = errors.New("builder: construction failed")
