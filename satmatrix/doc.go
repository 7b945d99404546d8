// Package satmatrix implements the saturation matrix (§3.3, §3.4): a
// rectangular bit matrix relating generators to constraints.
//
// sat[g][c] == true means "generator g does NOT saturate constraint
// c", i.e. c·g > 0 (strictly on the positive side). The engine keeps
// exactly one orientation authoritative (sat_c indexed by generator row,
// constraint column, or its transpose sat_g) and regenerates the other
// on demand via Transpose, matching §3.3's "maintains exactly one of
// the two as authoritative".
//
// Storage follows the teacher's matrix.Dense discipline: rows are
// independently packed bitset.Set values rather than one flat buffer,
// because rows are added/removed one at a time during conversion
// (§4.2) and a flat layout would force a full reflow on every row
// mutation.
package satmatrix
