package fpoly

import (
	"github.com/polydd/polydd/poly"
	"github.com/polydd/polydd/rowsys"
)

// IntersectionAssign replaces f with f ∩ other (§4.5.3 "intersection_
// assign"). polydd computes the blocks_lub discipline by round-
// tripping through the flat Poly representation (ToPoly/FromPoly)
// rather than maintaining a lazy per-block refactor proxy: this is
// documented in DESIGN.md as a simplification that keeps the exact
// semantics (the result is always re-normalized to the maximal
// syntactic partition) at the cost of redoing block discovery instead
// of reusing known-compatible factors.
func (f *F_Poly) IntersectionAssign(other *F_Poly) error {
	if f.d != other.d {
		return ErrSpaceDimMismatch
	}
	a, b := f.ToPoly(), other.ToPoly()
	if err := a.IntersectionAssign(b); err != nil {
		return err
	}
	*f = *FromPoly(a)
	return nil
}

// JoinAssign replaces f with the convex hull of f and other (§4.5.3
// "poly_hull_assign"), via the same round-trip discipline.
func (f *F_Poly) JoinAssign(other *F_Poly) error {
	if f.d != other.d {
		return ErrSpaceDimMismatch
	}
	a, b := f.ToPoly(), other.ToPoly()
	if err := a.JoinAssign(b); err != nil {
		return err
	}
	*f = *FromPoly(a)
	return nil
}

// ConHullAssign replaces f with the constraint hull of f and other
// (§4.5.3 "con_hull_assign").
func (f *F_Poly) ConHullAssign(other *F_Poly) error {
	if f.d != other.d {
		return ErrSpaceDimMismatch
	}
	a, b := f.ToPoly(), other.ToPoly()
	if err := a.ConHullAssign(b); err != nil {
		return err
	}
	*f = *FromPoly(a)
	return nil
}

// Contains reports whether f contains every point of other (§4.5.3).
func (f *F_Poly) Contains(other *F_Poly) (bool, error) {
	if f.d != other.d {
		return false, ErrSpaceDimMismatch
	}
	return f.ToPoly().Contains(other.ToPoly())
}

// Equals reports whether f and other denote the same set (§4.5.3);
// both sides are normalized first so the comparison is also exact
// factor-wise when the caller only needs a quick structural check.
func (f *F_Poly) Equals(other *F_Poly) (bool, error) {
	if f.d != other.d {
		return false, ErrSpaceDimMismatch
	}
	normalize(f)
	normalize(other)
	return f.ToPoly().Equals(other.ToPoly())
}

// TimeElapseAssign computes other's rays in the joined ambient space
// and adds them to f (§4.5.3 "time_elapse_assign(y)").
func (f *F_Poly) TimeElapseAssign(other *F_Poly) error {
	if f.d != other.d {
		return ErrSpaceDimMismatch
	}
	a := f.ToPoly()
	if err := a.TimeElapseAssign(other.ToPoly()); err != nil {
		return err
	}
	*f = *FromPoly(a)
	return nil
}

// WideningAssign widens f against other (§4.5.3 "widening_assign"):
// proper intervals widen pointwise; blocked dims widen through the
// flat-Poly round trip using impl. upto, if non-nil, is re-added
// afterwards restricted to constraints already valid in f (§4.4, §4.5.3
// "preserve any upto constraint that was already valid in x").
func (f *F_Poly) WideningAssign(other *F_Poly, impl poly.WideningImpl, upto []rowsys.Con) error {
	if f.d != other.d {
		return ErrSpaceDimMismatch
	}
	mask := f.blockedMask()
	otherMask := other.blockedMask()
	for i := 0; i < f.d; i++ {
		if mask[i] || otherMask[i] {
			continue
		}
		f.itvs[i] = f.itvs[i].Widen(other.itvs[i])
	}
	a, b := f.ToPoly(), other.ToPoly()
	widened := poly.RiskyWiden(a, b, impl)
	if len(upto) > 0 {
		if err := poly.ReaddUpto(widened, a, upto); err != nil {
			return err
		}
	}
	*f = *FromPoly(widened)
	return nil
}
