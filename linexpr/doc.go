// Package linexpr implements LinExpr (§4.1), a dense vector of
// arbitrary-precision integer coefficients indexed by dimension, plus
// the scalar/vector kernels (scale, add, dot, gcd-normalize) that the
// conversion algorithm in package poly drives.
//
// Storage mirrors matrix.Dense's flat row-major []float64 backing
// store: a LinExpr is backed by a single []numeric.Z slice, giving
// O(1) indexed access and a single allocation per expression. A sparse
// variant is not provided: spec.md §2 allows either representation,
// and the teacher package never reaches for a sparse encoding even in
// its largest adjacency/incidence matrices, so neither does this one.
package linexpr
