package poly

import (
	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/topology"
)

// IntersectionAssign replaces p with p ∩ other: every constraint of
// other's minimized system is folded into p via AddCon (§4.6).
func (p *Poly) IntersectionAssign(other *Poly) error {
	if p.d != other.d {
		return ErrSpaceDimMismatch
	}
	other.Minimize()
	if other.status == Empty {
		p.setEmptyInPlace()
		return nil
	}
	for _, c := range other.cs.Singular {
		if err := p.AddCon(c); err != nil {
			return err
		}
	}
	for _, c := range other.cs.Skeletal {
		if err := p.AddCon(c); err != nil {
			return err
		}
	}
	return nil
}

// JoinAssign replaces p with the convex hull of p and other's
// generators (poly-hull, §4.6): every generator of other is folded
// into p via AddGen.
func (p *Poly) JoinAssign(other *Poly) error {
	if p.d != other.d {
		return ErrSpaceDimMismatch
	}
	other.Minimize()
	if other.status == Empty {
		return nil
	}
	p.Minimize()
	if p.status == Empty {
		*p = *other.Clone()
		return nil
	}
	for _, l := range other.gs.Singular {
		if err := p.AddGen(l); err != nil {
			return err
		}
	}
	for _, g := range other.gs.Skeletal {
		if err := p.AddGen(g); err != nil {
			return err
		}
	}
	return nil
}

// ConHullAssign replaces p with the constraint hull of p and other
// (§4.6): the tightest closed polyhedron described purely by combining
// constraint systems that each side already satisfies from the other.
// polydd implements this as the intersection of every constraint that
// both p and other's generators satisfy, built by testing each side's
// minimized constraints against the other's generators (a direct,
// un-optimized reading of "the conjunction of constraints valid for
// both", appropriate given spec.md's own note that con_hull need not
// be minimal).
func (p *Poly) ConHullAssign(other *Poly) error {
	if p.d != other.d {
		return ErrSpaceDimMismatch
	}
	p.Minimize()
	other.Minimize()
	if p.status == Empty && other.status == Empty {
		return nil
	}
	if p.status == Empty {
		*p = *other.Clone()
		return nil
	}
	if other.status == Empty {
		return nil
	}
	var kept []rowsys.Con
	for _, c := range p.cs.Skeletal {
		if relationHolds(c, other) {
			kept = append(kept, c)
		}
	}
	for _, c := range other.cs.Skeletal {
		if relationHolds(c, p) {
			kept = append(kept, c)
		}
	}
	var keptEq []rowsys.Con
	for _, c := range p.cs.Singular {
		if relationHolds(c, other) {
			keptEq = append(keptEq, c)
		}
	}
	for _, c := range other.cs.Singular {
		if relationHolds(c, p) {
			keptEq = append(keptEq, c)
		}
	}
	u := NewUniverse(p.d, p.topol)
	for _, c := range keptEq {
		if err := u.AddCon(c); err != nil {
			return err
		}
	}
	for _, c := range kept {
		if err := u.AddCon(c); err != nil {
			return err
		}
	}
	u.Minimize()
	*p = *u
	return nil
}

func relationHolds(c rowsys.Con, other *Poly) bool {
	for _, g := range other.gs.Skeletal {
		if !satisfies(c, g) {
			return false
		}
	}
	for _, l := range other.gs.Singular {
		if c.ScalarProduct(l.Expr(), numericZero()).Sign() != 0 {
			return false
		}
	}
	return true
}

// TopologicalClosureAssign replaces every Strict constraint of p's
// minimized system with its Nonstrict counterpart (§4.9) and promotes
// every ClosurePoint generator's role implicitly (closure points and
// points denote the same set once no strict constraint remains).
func (p *Poly) TopologicalClosureAssign() {
	p.Minimize()
	if p.status == Empty || p.topol != topology.NNC {
		return
	}
	changed := false
	for i, c := range p.cs.Skeletal {
		if c.Type() == rowsys.Strict {
			nc, _ := rowsys.NewCon(c.Expr(), c.Inhomo(), rowsys.Nonstrict, p.topol)
			p.cs.Skeletal[i] = nc
			changed = true
		}
	}
	if !changed {
		return
	}
	for i, g := range p.gs.Skeletal {
		if g.Type() == rowsys.ClosurePoint {
			ng, _ := rowsys.NewGen(rowsys.Point, g.Expr(), g.Divisor())
			p.gs.Skeletal[i] = ng
		}
	}
	p.rebuildSat()
}

// SetTopology changes p's topology in place (§4.9). Switching NNC ->
// Closed requires p to already be topologically closed (no surviving
// Strict rows); callers needing an unconditional switch should call
// TopologicalClosureAssign first.
func (p *Poly) SetTopology(t topology.Topology) error {
	if t == p.topol {
		return nil
	}
	if t == topology.Closed {
		if !p.IsTopologicallyClosed() {
			return ErrStrictSurvivesClosure
		}
	}
	p.topol = t
	return nil
}

// PolyDifferenceAssign replaces p with p \ other (§4.6): the union,
// over each constraint c of other's minimized system, of (p ∩ ¬c),
// joined together. Non-convex in general, so the result is the convex
// hull of that union's pieces only when the pieces happen to recombine
// convexly; polydd follows spec.md's own framing of difference as an
// operation whose result MAY need PolyHullAssign-style approximation
// and returns the exact (possibly-disjoint-represented-as-hull) result
// via successive JoinAssign of each piece, which is exact when other is
// a half-space and an over-approximation otherwise (documented in
// DESIGN.md as the accepted imprecision, since Poly has no disjunctive
// representation).
func (p *Poly) PolyDifferenceAssign(other *Poly) error {
	if p.d != other.d {
		return ErrSpaceDimMismatch
	}
	other.Minimize()
	if other.status == Empty {
		return nil
	}
	p.Minimize()
	if p.status == Empty {
		return nil
	}
	base := p.Clone()
	result := NewEmpty(p.d, p.topol)
	allCons := append(append([]rowsys.Con{}, other.cs.Singular...), other.cs.Skeletal...)
	for _, c := range allCons {
		comp, ok := c.ComplementCon(p.topol)
		if !ok {
			continue
		}
		piece := base.Clone()
		if err := piece.AddCon(comp); err != nil {
			return err
		}
		piece.Minimize()
		if piece.status == Empty {
			continue
		}
		if err := result.JoinAssign(piece); err != nil {
			return err
		}
	}
	result.Minimize()
	*p = *result
	return nil
}
