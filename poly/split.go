package poly

import (
	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/topology"
)

// Split produces the pair (self ∩ c, self ∩ ¬c), sharing the
// conversion work of one incorporation (§4.3): self becomes the
// "inside" and the returned polyhedron the "outside". In Closed
// topology an equality cannot be split this way (use IntegralSplit).
func (p *Poly) Split(c rowsys.Con, topol topology.Topology) (*Poly, error) {
	if c.IsEquality() && topol == topology.Closed {
		return nil, ErrStrictInClosedSplit
	}
	outside := p.Clone()
	comp, ok := c.ComplementCon(topol)
	if !ok {
		// equality in NNC splits into two open half-spaces
		pos, _ := rowsys.NewCon(c.Expr().Neg(), c.Inhomo().Neg(), rowsys.Strict, topol)
		neg, _ := rowsys.NewCon(c.Expr(), c.Inhomo(), rowsys.Strict, topol)
		if err := p.AddCon(pos); err != nil {
			return nil, err
		}
		if err := outside.AddCon(neg); err != nil {
			return nil, err
		}
		p.Minimize()
		outside.Minimize()
		return outside, nil
	}
	if err := p.AddCon(c); err != nil {
		return nil, err
	}
	if err := outside.AddCon(comp); err != nil {
		return nil, err
	}
	p.Minimize()
	outside.Minimize()
	return outside, nil
}

// ErrStrictInClosedSplit indicates an equality split was requested in
// Closed topology, where it is undefined (use IntegralSplit).
var ErrStrictInClosedSplit = rowsys.ErrStrictInClosed

// IntegralSplit requires c's coefficients and inhomogeneous term to be
// integral (they already are, by construction of rowsys.Con) and rounds
// the cutting hyperplane to the nearest integer lattice side (§4.3):
// self keeps e·x+b >= 1 shifted appropriately is not meaningful for a
// strict cut across the integers, so the "inside" gets e·x+b >= 0 and
// the "outside" gets e·x+b <= -1, i.e. -e·x-b >= 1.
func (p *Poly) IntegralSplit(c rowsys.Con) (*Poly, error) {
	outside := p.Clone()
	inside, _ := rowsys.NewCon(c.Expr(), c.Inhomo(), rowsys.Nonstrict, p.topol)
	negExpr := c.Expr().Neg()
	negB := c.Inhomo().Neg().Sub(numericOne())
	out, _ := rowsys.NewCon(negExpr, negB, rowsys.Nonstrict, p.topol)
	if err := p.AddCon(inside); err != nil {
		return nil, err
	}
	if err := outside.AddCon(out); err != nil {
		return nil, err
	}
	p.Minimize()
	outside.Minimize()
	return outside, nil
}

// TimeElapseAssign replaces p with { x + t*r : x in p, t >= 0, r in
// cone(other) } (§4.3): every point/closure-point of other's minimized
// generator system is added to p as a ray, and every ray/line of other
// is added unchanged.
func (p *Poly) TimeElapseAssign(other *Poly) error {
	if p.d != other.d {
		return ErrSpaceDimMismatch
	}
	other.Minimize()
	if other.status == Empty {
		p.setEmptyInPlace()
		return nil
	}
	for _, l := range other.gs.Singular {
		if err := p.AddGen(l); err != nil {
			return err
		}
	}
	for _, g := range other.gs.Skeletal {
		switch g.Type() {
		case rowsys.Ray:
			if err := p.AddGen(g); err != nil {
				return err
			}
		default:
			ray, _ := rowsys.NewGen(rowsys.Ray, g.Expr(), numericZero())
			if err := p.AddGen(ray); err != nil {
				return err
			}
		}
	}
	return nil
}
