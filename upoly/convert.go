package upoly

import (
	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/poly"
	"github.com/polydd/polydd/rowsys"
)

// ToPoly materializes u as a flat Poly over its full ambient space:
// the kernel's constraints widened back through info's inverse
// mapping, with every unmapped dim left free (already the case in a
// freshly built universe).
func (u *U_Poly) ToPoly() *poly.Poly {
	topol := u.kernel.Topology()
	if u.kernel.SpaceDim() == 0 {
		if u.kernel.IsEmpty() {
			return poly.NewEmpty(u.d, topol)
		}
		return poly.NewUniverse(u.d, topol)
	}
	inv := make([]int, u.kernel.SpaceDim())
	for i, kj := range u.info {
		if kj != NotADim {
			inv[kj] = i
		}
	}
	p := poly.NewUniverse(u.d, topol)
	kcs := u.kernel.ConsSystem()
	widen := func(c rowsys.Con) rowsys.Con {
		e := linexpr.New(u.d)
		for kj := 0; kj < c.Expr().SpaceDim(); kj++ {
			e.SetCoeff(inv[kj], c.Expr().Coeff(kj))
		}
		nc, _ := rowsys.NewCon(e, c.Inhomo(), c.Type(), topol)
		return nc
	}
	for _, c := range kcs.Singular {
		_ = p.AddCon(widen(c))
	}
	for _, c := range kcs.Skeletal {
		_ = p.AddCon(widen(c))
	}
	p.Minimize()
	return p
}

// FromPoly rebuilds a U_Poly from a flat Poly by feeding its
// constraints through AddCon, which kernelizes exactly the dims that
// turn out to matter (§4.6).
func FromPoly(p *poly.Poly) *U_Poly {
	p.Minimize()
	u := NewUniverse(p.SpaceDim(), p.Topology())
	if p.IsEmpty() {
		u.kernel = poly.NewEmpty(0, p.Topology())
		return u
	}
	cs := p.ConsSystem()
	for _, c := range cs.Singular {
		_ = u.AddCon(c)
	}
	for _, c := range cs.Skeletal {
		_ = u.AddCon(c)
	}
	return u
}
