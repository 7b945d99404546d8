package poly

import (
	"sort"

	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/rowsys"
)

// WideningImpl selects the widening operator used by RiskyWiden and
// SafeWiden (§4.4, §7 "widen_impl").
type WideningImpl int

const (
	// H79 keeps exactly the non-redundant constraints of x also
	// satisfied by y (Cousot-Halbwachs).
	H79 WideningImpl = iota
	// BHRZ03 additionally tries the evolving-rays and evolving-points
	// heuristics, picking whichever candidate strictly shrinks the
	// certificate.
	BHRZ03
)

// Certificate is the convergence measure compared lexicographically by
// risky widening (§4.4): (affine_dim, dim_of_lineality_space,
// num_skeleton_cons, multiset_of_strict_supports, num_skeleton_points,
// sequence_of_ray_null_coord_counts).
type Certificate struct {
	AffineDim      int
	LinealityDim   int
	NumSkelCons    int
	StrictSupports []int // sorted ascending (multiset)
	NumSkelPoints  int
	RayNullCounts  []int // generator order (sequence)
}

// ComputeCertificate builds p's certificate (triggers minimize).
func ComputeCertificate(p *Poly) Certificate {
	p.Minimize()
	cert := Certificate{AffineDim: p.AffineDim(), LinealityDim: len(p.gs.Singular)}
	if p.status == Empty {
		return cert
	}
	cert.NumSkelCons = len(p.cs.Skeletal)
	var strictSupports []int
	for _, c := range p.cs.Skeletal {
		if c.Type() == rowsys.Strict {
			strictSupports = append(strictSupports, len(c.Expr().Support()))
		}
	}
	sort.Ints(strictSupports)
	cert.StrictSupports = strictSupports
	var rayNulls []int
	for _, g := range p.gs.Skeletal {
		switch g.Type() {
		case rowsys.Point, rowsys.ClosurePoint:
			cert.NumSkelPoints++
		case rowsys.Ray:
			rayNulls = append(rayNulls, p.d-len(g.Expr().Support()))
		}
	}
	cert.RayNullCounts = rayNulls
	return cert
}

// Greater reports whether c1 is strictly greater than c2: the first
// differing component of the tuple is larger (§4.4).
func (c1 Certificate) Greater(c2 Certificate) bool {
	if c1.AffineDim != c2.AffineDim {
		return c1.AffineDim > c2.AffineDim
	}
	if c1.LinealityDim != c2.LinealityDim {
		return c1.LinealityDim > c2.LinealityDim
	}
	if c1.NumSkelCons != c2.NumSkelCons {
		return c1.NumSkelCons > c2.NumSkelCons
	}
	if cmp := compareIntSeq(c1.StrictSupports, c2.StrictSupports); cmp != 0 {
		return cmp > 0
	}
	if c1.NumSkelPoints != c2.NumSkelPoints {
		return c1.NumSkelPoints > c2.NumSkelPoints
	}
	return compareIntSeq(c1.RayNullCounts, c2.RayNullCounts) > 0
}

func compareIntSeq(a, b []int) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// H79Widening keeps exactly those constraints of x's minimized system
// that are also satisfied (relation ⊇) by y (§4.4, Cousot-Halbwachs).
func H79Widening(x, y *Poly) *Poly {
	x.Minimize()
	y.Minimize()
	if x.status == Empty {
		return NewEmpty(x.d, x.topol)
	}
	result := NewUniverse(x.d, x.topol)
	for _, c := range x.cs.Singular {
		if relationHolds(c, y) {
			_ = result.AddCon(c)
		}
	}
	for _, c := range x.cs.Skeletal {
		if relationHolds(c, y) {
			_ = result.AddCon(c)
		}
	}
	result.Minimize()
	return result
}

// BHRZ03Widening computes H79 plus the evolving-rays and
// evolving-points candidates and returns the first whose certificate
// is strictly smaller than x's, falling back to H79 when none improve
// on it (§4.4).
func BHRZ03Widening(x, y *Poly) *Poly {
	x.Minimize()
	y.Minimize()
	if x.status == Empty {
		return NewEmpty(x.d, x.topol)
	}
	xCert := ComputeCertificate(x)
	h79 := H79Widening(x, y)
	candidates := []*Poly{h79}
	if er := evolvingRaysCandidate(x, y); er != nil {
		candidates = append(candidates, er)
	}
	if ep := evolvingPointsCandidate(x, y); ep != nil {
		candidates = append(candidates, ep)
	}
	for _, cand := range candidates {
		if xCert.Greater(ComputeCertificate(cand)) {
			return cand
		}
	}
	return h79
}

// evolvingRaysCandidate extends y with, for every pair of x-point and
// y-point, the ray pointing from the y-point towards the x-point
// (§4.4 "evolving rays"). Returns nil when no such ray is nontrivial.
func evolvingRaysCandidate(x, y *Poly) *Poly {
	cand := y.Clone()
	added := false
	for _, gx := range x.gs.Skeletal {
		if gx.Type() != rowsys.Point && gx.Type() != rowsys.ClosurePoint {
			continue
		}
		for _, gy := range y.gs.Skeletal {
			if gy.Type() != rowsys.Point && gy.Type() != rowsys.ClosurePoint {
				continue
			}
			ray, ok := pointDifferenceRay(gx, gy)
			if !ok {
				continue
			}
			if err := cand.AddGen(ray); err == nil {
				added = true
			}
		}
	}
	if !added {
		return nil
	}
	cand.Minimize()
	return cand
}

// pointDifferenceRay builds the ray gx/div(gx) - gy/div(gy), scaled to
// an integral representative by the (positive) product of the two
// divisors; returns false when the difference is the zero vector.
func pointDifferenceRay(gx, gy rowsys.Gen) (rowsys.Gen, bool) {
	d := gx.SpaceDim()
	e := linexpr.New(d)
	nonzero := false
	for i := 0; i < d; i++ {
		v := gx.Expr().Coeff(i).Mul(gy.Divisor()).Sub(gy.Expr().Coeff(i).Mul(gx.Divisor()))
		if !v.IsZero() {
			nonzero = true
		}
		e.SetCoeff(i, v)
	}
	if !nonzero {
		return rowsys.Gen{}, false
	}
	ray, err := rowsys.NewGen(rowsys.Ray, e, numeric.ZeroZ())
	if err != nil {
		return rowsys.Gen{}, false
	}
	return ray, true
}

// evolvingPointsCandidate extends y with the centroid of x's points
// that are not already contained in y (§4.4 "evolving points").
func evolvingPointsCandidate(x, y *Poly) *Poly {
	var emerged []rowsys.Gen
	for _, gx := range x.gs.Skeletal {
		if gx.Type() != rowsys.Point && gx.Type() != rowsys.ClosurePoint {
			continue
		}
		if !y.RelationWithGen(gx).IsIncluded {
			emerged = append(emerged, gx)
		}
	}
	if len(emerged) == 0 {
		return nil
	}
	centroid, ok := centroidPoint(emerged, x.d)
	if !ok {
		return nil
	}
	cand := y.Clone()
	if err := cand.AddGen(centroid); err != nil {
		return nil
	}
	cand.Minimize()
	return cand
}

// centroidPoint averages the coordinates of points (exact rational
// arithmetic) and renormalizes to an integral Point generator.
func centroidPoint(points []rowsys.Gen, d int) (rowsys.Gen, bool) {
	if len(points) == 0 {
		return rowsys.Gen{}, false
	}
	sums := make([]numeric.Q, d)
	for i := range sums {
		sums[i] = numeric.ZeroQ()
	}
	for _, g := range points {
		for i := 0; i < d; i++ {
			q, err := numeric.NewQFromZZ(g.Expr().Coeff(i), g.Divisor())
			if err != nil {
				return rowsys.Gen{}, false
			}
			sums[i] = sums[i].Add(q)
		}
	}
	n, _ := numeric.NewQFromZZ(numeric.NewZ(int64(len(points))), numeric.OneZ())
	for i := range sums {
		q, err := sums[i].Quo(n)
		if err != nil {
			return rowsys.Gen{}, false
		}
		sums[i] = q
	}
	commonDen := numeric.OneZ()
	for _, q := range sums {
		commonDen = commonDen.LCM(q.Denom())
	}
	e := linexpr.New(d)
	for i, q := range sums {
		scale := commonDen.QuoExact(q.Denom())
		e.SetCoeff(i, q.Num().Mul(scale))
	}
	pt, err := rowsys.NewGen(rowsys.Point, e, commonDen)
	if err != nil {
		return rowsys.Gen{}, false
	}
	return pt, true
}

// RiskyWiden widens x against y under the precondition x ⊇ y (§4.4),
// using the named operator.
func RiskyWiden(x, y *Poly, impl WideningImpl) *Poly {
	if impl == BHRZ03 {
		return BHRZ03Widening(x, y)
	}
	return H79Widening(x, y)
}

// SafeWiden drops risky widening's x ⊇ y precondition: it joins x and
// y, then risky-widens the join against x — except that a join which
// would strictly increase x's affine dimension (y not affinely
// contained in x) is returned unchanged, to avoid spuriously raising
// the affine dim in a single widening step (§4.4).
func SafeWiden(x, y *Poly, impl WideningImpl) *Poly {
	x.Minimize()
	y.Minimize()
	joined := x.Clone()
	_ = joined.JoinAssign(y)
	joined.Minimize()
	if joined.AffineDim() > x.AffineDim() {
		return joined
	}
	return RiskyWiden(joined, x, impl)
}

// ReaddUpto re-adds to widened, the result of a widening step, each
// constraint of upto that was already valid in x before widening
// (§4.4 "upto" constraint set).
func ReaddUpto(widened, x *Poly, upto []rowsys.Con) error {
	x.Minimize()
	for _, c := range upto {
		if !relationHolds(c, x) {
			continue
		}
		if err := widened.AddCon(c); err != nil {
			return err
		}
	}
	widened.Minimize()
	return nil
}
