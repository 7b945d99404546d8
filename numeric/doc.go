// Package numeric provides the arbitrary-precision integer and rational
// substrate that every other polydd package builds on.
//
// Z wraps math/big.Int and Q wraps math/big.Rat. Both are value types:
// operations return a new Z/Q rather than mutating receivers in place,
// except where a method is explicitly named *Set* or *Add*-into-self,
// mirroring the allocate-then-fill discipline of matrix.NewDense in the
// teacher package this module was adapted from.
//
// polydd never guesses at a rational's internal representation beyond
// the guarantees math/big documents (always kept in lowest terms by
// big.Rat). All gcd-normalization logic specific to constraints and
// generators lives in linexpr, not here.
package numeric
