// Package builder assembles molecules from reusable topology constructors:
// chains, rings, stars, grids, complete graphs and random sparse fragments.
// It feeds tests, benchmarks and examples with deterministic fixtures.
//
// What:
//
//   - Build(mopts, bopts, cons...) creates a molecule.Molecule and applies
//     each Constructor in order. Into does the same on an existing molecule.
//   - Every constructor appends its atoms after the existing ones and bonds
//     only among them, so composed constructors yield disjoint fragments:
//     Build(nil, nil, Ring(3), Ring(3)) is two separate triangles.
//   - Coordinates are laid out in the xy plane at the configured spacing,
//     each fragment shifted along z so fragments do not overlap.
//
// Options:
//
//   - WithElement / WithElementFn: atomic number per local atom index.
//   - WithOrderFn: bond order per bond (default single bonds).
//   - WithSpacing: distance between neighboring atoms in the layout.
//   - WithSeed / WithRand: RNG for RandomSparse and stochastic order functions.
//
// Option constructors panic on meaningless values (nil functions,
// non-positive spacing). Constructors never panic; they return the
// sentinels below wrapped with the constructor name.
//
// Errors:
//
//   - ErrTooFewAtoms: a size parameter below the constructor minimum.
//   - ErrInvalidProbability: p outside [0,1].
//   - ErrNeedRandSource: RandomSparse with 0 < p < 1 and no RNG.
//   - ErrConstructFailed: a nil constructor, or the molecule refused a bond.
//
// Complexity:
//
//   - Chain, Ring, Star: O(n). Grid: O(rows*cols). Complete, RandomSparse: O(n²).
//
// Determinism: equal options, seed and constructor order produce Equal
// molecules.
package builder
