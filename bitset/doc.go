// Package bitset provides a fixed-capacity, word-packed set of small
// non-negative integers (dimension indices, row indices).
//
// The backing store is a flat []uint64 in the same spirit as
// matrix.Dense's flat row-major []float64: a single allocation per Set,
// branchless word access, and whole-word operations throughout: And/Or/
// AndNot combine words directly, and Next and PopCount scan a word at a
// time with math/bits.
package bitset
