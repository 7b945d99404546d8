package upoly

import (
	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
)

// IntersectionAssign replaces u with u ∩ other (§4.6): both sides are
// synchronized through the flat-Poly round trip (ToPoly/FromPoly)
// rather than a positional info-merge, since the two kernels' dim
// orders are otherwise unrelated.
func (u *U_Poly) IntersectionAssign(other *U_Poly) error {
	if u.d != other.d {
		return ErrSpaceDimMismatch
	}
	a, b := u.ToPoly(), other.ToPoly()
	if err := a.IntersectionAssign(b); err != nil {
		return err
	}
	*u = *FromPoly(a)
	return nil
}

// JoinAssign replaces u with the convex hull of u and other (§4.6).
func (u *U_Poly) JoinAssign(other *U_Poly) error {
	if u.d != other.d {
		return ErrSpaceDimMismatch
	}
	a, b := u.ToPoly(), other.ToPoly()
	if err := a.JoinAssign(b); err != nil {
		return err
	}
	*u = *FromPoly(a)
	return nil
}

// Contains reports whether u contains every point of other (§4.6).
func (u *U_Poly) Contains(other *U_Poly) (bool, error) {
	if u.d != other.d {
		return false, ErrSpaceDimMismatch
	}
	return u.ToPoly().Contains(other.ToPoly())
}

// Equals reports whether u and other denote the same set (§4.6).
func (u *U_Poly) Equals(other *U_Poly) (bool, error) {
	if u.d != other.d {
		return false, ErrSpaceDimMismatch
	}
	return u.ToPoly().Equals(other.ToPoly())
}

// IsDisjointFrom reports whether u and other share no point (§4.6).
func (u *U_Poly) IsDisjointFrom(other *U_Poly) (bool, error) {
	if u.d != other.d {
		return false, ErrSpaceDimMismatch
	}
	tmp := u.Clone()
	if err := tmp.IntersectionAssign(other); err != nil {
		return false, err
	}
	return tmp.IsEmpty(), nil
}

// AffineImage applies x_var := (e·x+b)/den (§4.6): kernel dims are
// allocated for var and e's support, the image runs on the kernel,
// then any dim minimization left unconstrained is elided.
func (u *U_Poly) AffineImage(varIdx int, e *linexpr.LinExpr, b numeric.Z, den numeric.Z) error {
	dims := append([]int{varIdx}, e.Support()...)
	u.kernelize(dims)
	ke := u.rewriteExprToKernel(e)
	if err := u.kernel.AffineImage(u.info[varIdx], ke, b, den); err != nil {
		return err
	}
	u.kernel.Minimize()
	u.elideUnconstrained()
	return nil
}

// TopologicalClosureAssign closes the kernel (§4.6, Cartesian-
// preserving: unmapped dims are already free on every side).
func (u *U_Poly) TopologicalClosureAssign() {
	u.kernel.TopologicalClosureAssign()
}
