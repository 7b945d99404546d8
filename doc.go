// Package polydd implements the double-description method for convex
// polyhedra over the exact rationals, for use as the numerical core of
// an abstract-interpretation or program-analysis pipeline.
//
//	rowsys/    — constraint and generator row types, the ascii-free core systems
//	satmatrix/ — saturation matrix between constraints and generators
//	poly/      — Poly: the flat dual (constraint, generator) representation,
//	             conversion, relational ops, affine transforms, splitting, widening
//	fpoly/     — F_Poly: Cartesian factorization over Poly's block structure
//	upoly/     — U_Poly: kernelized projection that elides unconstrained dims
//	bbox/      — BBox/B_Poly: interval-hull approximation with a lazy cache
//	absdomain/ — AbsPoly: the common interface over all four representations,
//	             plus a timing-instrumented Stats decorator
//	ascii/     — plain-text dump/load format
//	config/    — functional-options Context (default topology, kind, widening)
//	shapes/    — canned polyhedra (box, simplex, orthant, half-space)
//
// Every coordinate is an exact numeric.Z or numeric.Q (arbitrary-precision
// integer/rational); there is no floating-point path anywhere in the
// representation.
package polydd
