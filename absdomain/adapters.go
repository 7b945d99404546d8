package absdomain

import (
	"fmt"
	"io"
	"strings"

	"github.com/polydd/polydd/ascii"
	"github.com/polydd/polydd/bbox"
	"github.com/polydd/polydd/fpoly"
	"github.com/polydd/polydd/poly"
	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/upoly"
)

func conLine(c rowsys.Con) string {
	parts := make([]string, c.SpaceDim())
	for i := range parts {
		parts[i] = c.Expr().Coeff(i).String()
	}
	return fmt.Sprintf("C %d %d %s %s", int(c.Type()), c.SpaceDim(), strings.Join(parts, ","), c.Inhomo().String())
}

func genLine(g rowsys.Gen) string {
	parts := make([]string, g.SpaceDim())
	for i := range parts {
		parts[i] = g.Expr().Coeff(i).String()
	}
	return fmt.Sprintf("G %d %d %s %s", int(g.Type()), g.SpaceDim(), strings.Join(parts, ","), g.Divisor().String())
}

func rowsOf(p *poly.Poly) ([]string, []string) {
	p.Minimize()
	cs, gs := p.ConsSystem(), p.GensSystem()
	var cons, gens []string
	for _, c := range cs.Singular {
		cons = append(cons, conLine(c))
	}
	for _, c := range cs.Skeletal {
		cons = append(cons, conLine(c))
	}
	for _, g := range gs.Singular {
		gens = append(gens, genLine(g))
	}
	for _, g := range gs.Skeletal {
		gens = append(gens, genLine(g))
	}
	return cons, gens
}

// polyAdapter wraps poly.Poly to satisfy AbsPoly.
type polyAdapter struct {
	p    *poly.Poly
	kind Kind
}

func (a *polyAdapter) SpaceDim() int { return a.p.SpaceDim() }
func (a *polyAdapter) IsEmpty() bool { return a.p.IsEmpty() }
func (a *polyAdapter) CopyCons() []string {
	cons, _ := rowsOf(a.p)
	return cons
}
func (a *polyAdapter) CopyGens() []string {
	_, gens := rowsOf(a.p)
	return gens
}
func (a *polyAdapter) Clone() AbsPoly { return &polyAdapter{p: a.p.Clone(), kind: a.kind} }
func (a *polyAdapter) Hash() uint64   { return dumpToHash(a.AsciiDump) }
func (a *polyAdapter) MemoryBytes() int {
	cs, gs := a.p.ConsSystem(), a.p.GensSystem()
	n := len(cs.Singular) + len(cs.Skeletal) + len(gs.Singular) + len(gs.Skeletal)
	return n * (a.p.SpaceDim() + 2) * 8
}
func (a *polyAdapter) AsciiDump(w io.Writer) error { return ascii.Dump(w, a.p) }
func (a *polyAdapter) Kind() Kind                  { return a.kind }

// fpolyAdapter wraps fpoly.F_Poly to satisfy AbsPoly via its ToPoly
// round trip.
type fpolyAdapter struct {
	f    *fpoly.F_Poly
	kind Kind
}

func (a *fpolyAdapter) SpaceDim() int { return a.f.SpaceDim() }
func (a *fpolyAdapter) IsEmpty() bool { return a.f.IsEmpty() }
func (a *fpolyAdapter) CopyCons() []string {
	cons, _ := rowsOf(a.f.ToPoly())
	return cons
}
func (a *fpolyAdapter) CopyGens() []string {
	_, gens := rowsOf(a.f.ToPoly())
	return gens
}
func (a *fpolyAdapter) Clone() AbsPoly { return &fpolyAdapter{f: a.f.Clone(), kind: a.kind} }
func (a *fpolyAdapter) Hash() uint64   { return dumpToHash(a.AsciiDump) }
func (a *fpolyAdapter) MemoryBytes() int {
	n := 0
	for _, blk := range a.f.Blocks() {
		n += len(blk)
	}
	return n*8 + len(a.f.Intervals())*32
}
func (a *fpolyAdapter) AsciiDump(w io.Writer) error { return ascii.Dump(w, a.f.ToPoly()) }
func (a *fpolyAdapter) Kind() Kind                  { return a.kind }

// upolyAdapter wraps upoly.U_Poly to satisfy AbsPoly via its ToPoly
// round trip.
type upolyAdapter struct {
	u    *upoly.U_Poly
	kind Kind
}

func (a *upolyAdapter) SpaceDim() int { return a.u.SpaceDim() }
func (a *upolyAdapter) IsEmpty() bool { return a.u.IsEmpty() }
func (a *upolyAdapter) CopyCons() []string {
	cons, _ := rowsOf(a.u.ToPoly())
	return cons
}
func (a *upolyAdapter) CopyGens() []string {
	_, gens := rowsOf(a.u.ToPoly())
	return gens
}
func (a *upolyAdapter) Clone() AbsPoly { return &upolyAdapter{u: a.u.Clone(), kind: a.kind} }
func (a *upolyAdapter) Hash() uint64   { return dumpToHash(a.AsciiDump) }
func (a *upolyAdapter) MemoryBytes() int {
	return len(a.u.Info())*8 + a.u.Kernel().SpaceDim()*a.u.Kernel().SpaceDim()*8
}
func (a *upolyAdapter) AsciiDump(w io.Writer) error { return ascii.Dump(w, a.u.ToPoly()) }
func (a *upolyAdapter) Kind() Kind                  { return a.kind }

// bpolyAdapter wraps bbox.B_Poly to satisfy AbsPoly.
type bpolyAdapter struct {
	bp   *bbox.B_Poly
	kind Kind
}

func (a *bpolyAdapter) SpaceDim() int { return a.bp.Poly().SpaceDim() }
func (a *bpolyAdapter) IsEmpty() bool { return a.bp.Poly().IsEmpty() }
func (a *bpolyAdapter) CopyCons() []string {
	cons, _ := rowsOf(a.bp.Poly())
	return cons
}
func (a *bpolyAdapter) CopyGens() []string {
	_, gens := rowsOf(a.bp.Poly())
	return gens
}
func (a *bpolyAdapter) Clone() AbsPoly {
	return &bpolyAdapter{bp: bbox.NewBPoly(a.bp.Poly().Clone()), kind: a.kind}
}
func (a *bpolyAdapter) Hash() uint64 { return dumpToHash(a.AsciiDump) }
func (a *bpolyAdapter) MemoryBytes() int {
	return a.bp.EnsureBBox().SpaceDim()*32 + len(a.CopyCons())*64
}
func (a *bpolyAdapter) AsciiDump(w io.Writer) error { return ascii.Dump(w, a.bp.Poly()) }
func (a *bpolyAdapter) Kind() Kind                  { return a.kind }
