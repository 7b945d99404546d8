package fpoly

import (
	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/poly"
)

// Clone returns a deep, independent copy of f.
func (f *F_Poly) Clone() *F_Poly {
	c := &F_Poly{d: f.d, topol: f.topol, empty: f.empty}
	c.itvs = append([]Itv{}, f.itvs...)
	c.blocks = make([][]int, len(f.blocks))
	for i, blk := range f.blocks {
		c.blocks[i] = append([]int{}, blk...)
	}
	c.factors = make([]*poly.Poly, len(f.factors))
	for i, fac := range f.factors {
		c.factors[i] = fac.Clone()
	}
	return c
}

// AffineImage applies x_var := (e·x + b)/den (§4.3, §4.5.3
// "affine_image"): f is converted to a single Poly, the image is
// applied there, and the result is factored again with FromPoly; the
// blocks are not updated one by one.
func (f *F_Poly) AffineImage(varIdx int, e *linexpr.LinExpr, b numeric.Z, den numeric.Z) error {
	if f.empty {
		return nil
	}
	p := f.ToPoly()
	if err := p.AffineImage(varIdx, e, b, den); err != nil {
		return err
	}
	*f = *FromPoly(p)
	return nil
}

// TopologicalClosureAssign closes every factor (§4.5.3, Cartesian-
// preserving: operates inside each factor without touching the others
// or the interval vector).
func (f *F_Poly) TopologicalClosureAssign() {
	for _, fac := range f.factors {
		fac.TopologicalClosureAssign()
	}
}

// Normalize exposes the §4.5.4 normalization pass.
func (f *F_Poly) Normalize() {
	normalize(f)
}
