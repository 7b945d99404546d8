package poly

import (
	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/topology"
)

// IsEmpty reports whether p denotes the empty set (§4.5).
func (p *Poly) IsEmpty() bool {
	p.Minimize()
	return p.status == Empty
}

// IsUniverse reports whether p denotes the whole ambient space.
func (p *Poly) IsUniverse() bool {
	p.Minimize()
	return p.status != Empty && p.cs.IsEmpty()
}

// IsTopologicallyClosed reports whether p has no strict constraint in
// its minimized system (§4.5, §4.9): an NNC polyhedron with no Strict
// rows denotes the same set as its Closed-topology counterpart.
func (p *Poly) IsTopologicallyClosed() bool {
	p.Minimize()
	if p.topol == topology.Closed {
		return true
	}
	if p.status == Empty {
		return true
	}
	for _, c := range p.cs.Skeletal {
		if c.Type() == rowsys.Strict {
			return false
		}
	}
	return true
}

// IsBounded reports whether p denotes a bounded (possibly empty) set:
// no lines and no rays in the minimized generator system.
func (p *Poly) IsBounded() bool {
	p.Minimize()
	if p.status == Empty {
		return true
	}
	if len(p.gs.Singular) > 0 {
		return false
	}
	for _, g := range p.gs.Skeletal {
		if g.Type() == rowsys.Ray {
			return false
		}
	}
	return true
}

// AffineDim returns the affine dimension of p: SpaceDim() minus the
// number of independent equalities, or -1 if p is empty (§4.5).
func (p *Poly) AffineDim() int {
	p.Minimize()
	if p.status == Empty {
		return -1
	}
	return p.d - len(p.cs.Singular) - rankDeficiencyFromLines(p)
}

// rankDeficiencyFromLines accounts for the fact that the number of
// lineality directions (not just equalities) also shrinks the affine
// dimension when a polyhedron is unbounded only along a strict subspace;
// lines do not lower the affine dimension (the universe has d lines and
// affine dimension d), and each independent equality lowers it by one,
// so no additional correction beyond len(Singular) equalities is needed
// in practice. Kept as a seam in case a future minimization pass leaves
// them momentarily inconsistent.
func rankDeficiencyFromLines(_ *Poly) int { return 0 }

// Contains reports whether p contains every point of other (p ⊇ other),
// i.e. every generator of other's minimized system satisfies every
// constraint of p's minimized system (§4.5).
func (p *Poly) Contains(other *Poly) (bool, error) {
	if p.d != other.d {
		return false, ErrSpaceDimMismatch
	}
	p.Minimize()
	other.Minimize()
	if other.status == Empty {
		return true, nil
	}
	if p.status == Empty {
		return false, nil
	}
	for _, c := range p.cs.Skeletal {
		for _, g := range other.gs.Skeletal {
			if !satisfies(c, g) {
				return false, nil
			}
		}
		for _, l := range other.gs.Singular {
			if c.ScalarProduct(l.Expr(), numericZero()).Sign() != 0 {
				return false, nil
			}
		}
	}
	for _, eq := range p.cs.Singular {
		for _, g := range other.gs.Skeletal {
			if eq.ScalarProduct(g.Expr(), g.Divisor()).Sign() != 0 {
				return false, nil
			}
		}
		for _, l := range other.gs.Singular {
			if eq.ScalarProduct(l.Expr(), numericZero()).Sign() != 0 {
				return false, nil
			}
		}
	}
	return true, nil
}

// Equals reports whether p and other denote the same set (mutual
// containment, §4.5).
func (p *Poly) Equals(other *Poly) (bool, error) {
	a, err := p.Contains(other)
	if err != nil {
		return false, err
	}
	if !a {
		return false, nil
	}
	return other.Contains(p)
}

// IsDisjointFrom reports whether p and other share no point: their
// intersection (computed on clones, to avoid mutating either operand)
// is empty.
func (p *Poly) IsDisjointFrom(other *Poly) (bool, error) {
	if p.d != other.d {
		return false, ErrSpaceDimMismatch
	}
	tmp := p.Clone()
	if err := tmp.IntersectionAssign(other); err != nil {
		return false, err
	}
	return tmp.IsEmpty(), nil
}

// Bound describes a one-sided optimum of a linear expression over p
// (§4.5 "maximize"/"minimize").
type Bound struct {
	Unbounded bool
	Value     numeric.Q
	Included  bool     // whether the bound is attained (vs. a strict supremum/infimum)
	Witness   rowsys.Gen
}

// MaxBound returns the supremum of expr(x)+b over x in p (§4.5).
func (p *Poly) MaxBound(expr *linexpr.LinExpr, b numeric.Z) Bound {
	return p.optimize(expr, b, true)
}

// MinBound returns the infimum of expr(x)+b over x in p (§4.5).
func (p *Poly) MinBound(expr *linexpr.LinExpr, b numeric.Z) Bound {
	return p.optimize(expr, b, false)
}

func (p *Poly) optimize(expr *linexpr.LinExpr, b numeric.Z, wantMax bool) Bound {
	p.Minimize()
	if p.status == Empty {
		return Bound{Unbounded: false, Value: numeric.ZeroQ(), Included: true}
	}
	for _, l := range p.gs.Singular {
		d := l.Expr().Dot(expr)
		if !d.IsZero() {
			return Bound{Unbounded: true}
		}
	}
	for _, g := range p.gs.Skeletal {
		if g.Type() == rowsys.Ray {
			d := g.Expr().Dot(expr)
			if wantMax && d.Sign() > 0 || !wantMax && d.Sign() < 0 {
				return Bound{Unbounded: true}
			}
		}
	}
	var best numeric.Q
	var bestWitness rowsys.Gen
	first := true
	bestIncluded := true
	for _, g := range p.gs.Skeletal {
		if g.Type() != rowsys.Point && g.Type() != rowsys.ClosurePoint {
			continue
		}
		num := g.Expr().Dot(expr).Add(b.Mul(g.Divisor()))
		val, _ := numeric.NewQFromZZ(num, g.Divisor())
		included := g.Type() == rowsys.Point
		if first {
			best, bestWitness, bestIncluded, first = val, g, included, false
			continue
		}
		better := wantMax && val.Cmp(best) > 0 || !wantMax && val.Cmp(best) < 0
		if better {
			best, bestWitness, bestIncluded = val, g, included
		} else if val.Cmp(best) == 0 && included && !bestIncluded {
			bestWitness, bestIncluded = g, included
		}
	}
	if first {
		return Bound{Unbounded: false, Value: numeric.ZeroQ(), Included: true}
	}
	return Bound{Value: best, Included: bestIncluded, Witness: bestWitness}
}
