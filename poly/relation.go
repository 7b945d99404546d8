package poly

import (
	"github.com/polydd/polydd/rowsys"
)

// satisfies reports whether generator g satisfies constraint c (not
// merely saturates it): for Nonstrict/Eq, sp == 0 is satisfying; for
// Strict, sp == 0 is the excluded boundary (§3.1, §4.2).
func satisfies(c rowsys.Con, g rowsys.Gen) bool {
	sp := c.ScalarProduct(g.Expr(), g.Divisor())
	switch c.Type() {
	case rowsys.Eq:
		return sp.IsZero()
	case rowsys.Strict:
		return sp.Sign() > 0
	default:
		return sp.Sign() >= 0
	}
}

// saturates reports whether generator g saturates constraint c
// (sp == 0), regardless of c's relational type (§3.3).
func saturates(c rowsys.Con, g rowsys.Gen) bool {
	return c.ScalarProduct(g.Expr(), g.Divisor()).IsZero()
}

// ConRelation classifies how constraint c relates to p's generators,
// partitioned by the sign of c's scalar product with every one of them
// (§4.5 "relation_with").
type ConRelation struct {
	Saturates          bool // every generator saturates c (p lies in c's hyperplane)
	IsIncluded         bool // every generator satisfies c (p is a subset of c's half-space)
	IsDisjoint         bool // every generator violates c (p doesn't meet c's half-space)
	StrictlyIntersects bool // some generators satisfy c, others violate it
}

// RelationWithCon reports how c relates to the minimized generator
// system of p (§4.5 "relation_with"), bucketing every generator on the
// sign of its scalar product with c rather than stopping at the first
// violation, so disjointness and a genuine straddle are distinguishable.
func (p *Poly) RelationWithCon(c rowsys.Con) ConRelation {
	p.Minimize()
	if p.status == Empty {
		return ConRelation{Saturates: true, IsIncluded: true, IsDisjoint: true}
	}

	allSaturate := true
	allSatisfy, allViolate := true, true
	var anySatisfy, anyViolate bool

	for _, g := range p.gs.Skeletal {
		sp := c.ScalarProduct(g.Expr(), g.Divisor())
		if !sp.IsZero() {
			allSaturate = false
		}
		if satisfies(c, g) {
			anySatisfy = true
			allViolate = false
		} else {
			anyViolate = true
			allSatisfy = false
		}
	}
	for _, l := range p.gs.Singular {
		sp := c.ScalarProduct(l.Expr(), numericZero())
		if sp.IsZero() {
			continue // runs parallel to c's hyperplane, doesn't affect satisfy/violate
		}
		// a line realizes points on both sides of c at once.
		allSaturate = false
		allSatisfy, allViolate = false, false
		anySatisfy, anyViolate = true, true
	}

	return ConRelation{
		Saturates:          allSaturate,
		IsIncluded:         allSatisfy,
		IsDisjoint:         allViolate,
		StrictlyIntersects: anySatisfy && anyViolate,
	}
}

// GenRelation classifies how generator g relates to p's minimized
// constraint system, partitioned by the sign of each constraint's
// scalar product with g (§4.5 "relation_with", dual form).
type GenRelation struct {
	Saturates          bool // g saturates every constraint
	IsIncluded         bool // g satisfies every constraint (g already denotes a point/ray of p)
	IsDisjoint         bool // g violates every constraint
	StrictlyIntersects bool // g satisfies some constraints, violates others
}

// RelationWithGen reports how generator g relates to p's minimized
// constraint system (§4.5 "relation_with", dual form).
func (p *Poly) RelationWithGen(g rowsys.Gen) GenRelation {
	p.Minimize()
	if p.status == Empty {
		return GenRelation{IsDisjoint: true}
	}

	allSaturate := true
	allSatisfy, allViolate := true, true
	var anySatisfy, anyViolate bool

	for _, c := range p.cs.Skeletal {
		sp := c.ScalarProduct(g.Expr(), g.Divisor())
		if !sp.IsZero() {
			allSaturate = false
		}
		if satisfies(c, g) {
			anySatisfy = true
			allViolate = false
		} else {
			anyViolate = true
			allSatisfy = false
		}
	}
	for _, eq := range p.cs.Singular {
		sp := eq.ScalarProduct(g.Expr(), g.Divisor())
		if sp.IsZero() {
			continue
		}
		allSaturate = false
		allSatisfy = false
		anyViolate = true
	}

	return GenRelation{
		Saturates:          allSaturate,
		IsIncluded:         allSatisfy,
		IsDisjoint:         allViolate,
		StrictlyIntersects: anySatisfy && anyViolate,
	}
}
