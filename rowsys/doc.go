// Package rowsys implements the two row kinds of §4.1, Con
// (constraint) and Gen (generator), their strong-normalization
// invariants, and the deterministic ordering used to make both kinds
// hashable and comparable (§4.2, "Ordering on rows uses lexicographic
// compare on (type-rank, expression, inhomo, divisor)").
//
// Sentinel errors follow the teacher's core package convention
// (errors.New + %w wrapping at call sites), not panics, because
// row construction from client-controlled rational coefficients is
// exactly the kind of external-input boundary spec.md §7 calls out as
// needing detectable, non-fatal failure.
package rowsys
