package linexpr

import "github.com/polydd/polydd/numeric"

// LinExpr is a linear expression over Z: e(x) = sum_i coeff[i] * x_i.
// The inhomogeneous term is not part of LinExpr; it is carried
// alongside by Con/Gen (§4.1).
type LinExpr struct {
	coeffs []numeric.Z
}

// New allocates a zero LinExpr of the given space dimension.
func New(d int) *LinExpr {
	c := make([]numeric.Z, d)
	for i := range c {
		c[i] = numeric.ZeroZ()
	}
	return &LinExpr{coeffs: c}
}

// FromCoeffs adopts coeffs by value (the slice is copied).
func FromCoeffs(coeffs []numeric.Z) *LinExpr {
	c := make([]numeric.Z, len(coeffs))
	copy(c, coeffs)
	return &LinExpr{coeffs: c}
}

// SpaceDim returns the number of dimensions e is defined over.
func (e *LinExpr) SpaceDim() int { return len(e.coeffs) }

// Coeff returns the coefficient of dimension i.
func (e *LinExpr) Coeff(i int) numeric.Z { return e.coeffs[i] }

// SetCoeff sets the coefficient of dimension i.
func (e *LinExpr) SetCoeff(i int, v numeric.Z) { e.coeffs[i] = v }

// Coeffs returns the backing slice directly; callers must not mutate
// it without understanding aliasing (used by hot paths in poly that
// need to avoid a defensive copy).
func (e *LinExpr) Coeffs() []numeric.Z { return e.coeffs }

// Clone returns an independent deep copy.
func (e *LinExpr) Clone() *LinExpr {
	c := make([]numeric.Z, len(e.coeffs))
	for i, v := range e.coeffs {
		c[i] = v.Clone()
	}
	return &LinExpr{coeffs: c}
}

// IsZero reports whether every coefficient is zero.
func (e *LinExpr) IsZero() bool {
	for _, c := range e.coeffs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// AllZeroes reports whether coefficients in [lo, hi) are all zero.
func (e *LinExpr) AllZeroes(lo, hi int) bool {
	if lo < 0 {
		lo = 0
	}
	if hi > len(e.coeffs) {
		hi = len(e.coeffs)
	}
	for i := lo; i < hi; i++ {
		if !e.coeffs[i].IsZero() {
			return false
		}
	}
	return true
}

// LastNonZero returns the highest-indexed dimension with a non-zero
// coefficient, and false if e is entirely zero.
func (e *LinExpr) LastNonZero() (int, bool) {
	for i := len(e.coeffs) - 1; i >= 0; i-- {
		if !e.coeffs[i].IsZero() {
			return i, true
		}
	}
	return 0, false
}

// FirstNonZero returns the lowest-indexed dimension with a non-zero
// coefficient, and false if e is entirely zero.
func (e *LinExpr) FirstNonZero() (int, bool) {
	for i, c := range e.coeffs {
		if !c.IsZero() {
			return i, true
		}
	}
	return 0, false
}

// ScaleInPlace multiplies every coefficient by k.
func (e *LinExpr) ScaleInPlace(k numeric.Z) {
	for i, c := range e.coeffs {
		e.coeffs[i] = c.Mul(k)
	}
}

// AddScaledInPlace adds k*other into e in place. Precondition: equal
// space dims.
func (e *LinExpr) AddScaledInPlace(k numeric.Z, other *LinExpr) {
	for i := range e.coeffs {
		if k.IsZero() || other.coeffs[i].IsZero() {
			continue
		}
		e.coeffs[i] = e.coeffs[i].Add(k.Mul(other.coeffs[i]))
	}
}

// Neg returns -e.
func (e *LinExpr) Neg() *LinExpr {
	out := e.Clone()
	out.ScaleInPlace(numeric.NewZ(-1))
	return out
}

// Add returns e + other. Precondition: equal space dims.
func (e *LinExpr) Add(other *LinExpr) *LinExpr {
	out := e.Clone()
	out.AddScaledInPlace(numeric.OneZ(), other)
	return out
}

// Dot returns the scalar product e . other (sum of coeff[i]*other[i]).
// Precondition: equal space dims. This is the "scalar-product column"
// primitive of §4.2 step 1 when applied between a Con's expression and
// a Gen's expression (including their ε-slots, handled in package poly).
func (e *LinExpr) Dot(other *LinExpr) numeric.Z {
	acc := numeric.ZeroZ()
	for i := range e.coeffs {
		if e.coeffs[i].IsZero() || other.coeffs[i].IsZero() {
			continue
		}
		acc = acc.Add(e.coeffs[i].Mul(other.coeffs[i]))
	}
	return acc
}

// GCDAll returns the gcd of every non-zero coefficient together with
// extra (typically an inhomogeneous term); 0 if everything is zero.
func (e *LinExpr) GCDAll(extra numeric.Z) numeric.Z {
	g := extra.Abs()
	for _, c := range e.coeffs {
		if c.IsZero() {
			continue
		}
		if g.IsZero() {
			g = c.Abs()
			continue
		}
		g = g.GCD(c)
	}
	return g
}

// Normalize divides e and inhomo by gcd(e's coefficients, inhomo),
// returning the normalized expression, the normalized inhomogeneous
// term, and the divisor used (1 if e and inhomo were already coprime,
// 0 only when both e and inhomo are entirely zero). This is the core
// of the "strong normalization" invariant of §3.2/§4.1.
func (e *LinExpr) Normalize(inhomo numeric.Z) (*LinExpr, numeric.Z, numeric.Z) {
	g := e.GCDAll(inhomo)
	if g.IsZero() {
		return e.Clone(), inhomo.Clone(), numeric.ZeroZ()
	}
	if g.Cmp(numeric.OneZ()) == 0 {
		return e.Clone(), inhomo.Clone(), g
	}
	out := make([]numeric.Z, len(e.coeffs))
	for i, c := range e.coeffs {
		if c.IsZero() {
			out[i] = numeric.ZeroZ()
			continue
		}
		out[i] = c.QuoExact(g)
	}
	return &LinExpr{coeffs: out}, inhomo.QuoExact(g), g
}

// Permute applies the dimension permutation described by cycle (a
// sequence of dimension indices forming one cycle, as used by
// map_space_dims (§4.3) and the builder's generic remapping) in place:
// for cycle = [i0, i1, ..., ik], coefficient at i1 moves to i0, i2 to
// i1, ..., i0 to ik.
func (e *LinExpr) Permute(cycle []int) {
	if len(cycle) < 2 {
		return
	}
	last := e.coeffs[cycle[0]]
	for i := 0; i < len(cycle)-1; i++ {
		e.coeffs[cycle[i]] = e.coeffs[cycle[i+1]]
	}
	e.coeffs[cycle[len(cycle)-1]] = last
}

// Compare implements a deterministic total order over expressions,
// used by the strong-normalization tie-break of §4.2 ("Ordering on
// rows uses lexicographic compare..."). It compares coefficients
// dimension by dimension, lowest index first.
func (e *LinExpr) Compare(other *LinExpr) int {
	n := len(e.coeffs)
	if len(other.coeffs) < n {
		n = len(other.coeffs)
	}
	for i := 0; i < n; i++ {
		if c := e.coeffs[i].Cmp(other.coeffs[i]); c != 0 {
			return c
		}
	}
	return len(e.coeffs) - len(other.coeffs)
}

// Support returns the set of dimensions with non-zero coefficients, in
// ascending order. Used by the syntactic block-partition discovery in
// package fpoly.
func (e *LinExpr) Support() []int {
	var out []int
	for i, c := range e.coeffs {
		if !c.IsZero() {
			out = append(out, i)
		}
	}
	return out
}
