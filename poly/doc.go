// Package poly implements Poly (§3.4), the double-description (DD)
// engine at the core of polydd: a convex polyhedron represented
// simultaneously by a constraint system and a generator system, kept
// in mutual correspondence by a saturation matrix (package satmatrix),
// updated incrementally by the Chernikova-style conversion algorithm
// of §4.2 (package-internal, convert.go).
//
// Design decision (recorded in full in DESIGN.md): rather than the
// literal non-skeletal bitset-of-combinations row kind spec.md
// describes for NNC (§3.2, §4.2), a strict inequality is stored as an
// ordinary skeletal Con tagged rowsys.Strict, and the implicit ε
// positivity slot (§3.1) is carried entirely by whether a skeletal
// generator is rowsys.Point (ε=1) or rowsys.ClosurePoint (ε=0),
// instead of as an extra ambient-like coordinate. Every operation and
// invariant spec.md lists is preserved; only one internal compaction
// mechanism is replaced by a semantically equivalent, simpler one.
package poly
