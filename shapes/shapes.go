// Package shapes builds a handful of canned polyhedra used as fixtures
// and demo inputs, the way the teacher's builder package assembles
// canned graphs from constructors over a shared config.
package shapes

import (
	"errors"
	"fmt"

	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/poly"
	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/topology"
)

// ErrDimMismatch indicates lo and hi (or another pair of per-dim
// slices) disagree on length.
var ErrDimMismatch = errors.New("shapes: dimension mismatch")

// ErrEmptyRange indicates lo[i] > hi[i] for some axis, which would
// build an empty box; callers wanting the empty polyhedron should use
// Empty directly instead.
var ErrEmptyRange = errors.New("shapes: lo exceeds hi on some axis")

// Universe returns the whole space R^d (no constraints).
func Universe(d int, t topology.Topology) *poly.Poly {
	return poly.NewUniverse(d, t)
}

// Empty returns the empty polyhedron in R^d.
func Empty(d int, t topology.Topology) *poly.Poly {
	return poly.NewEmpty(d, t)
}

// Box builds the axis-aligned box lo[i] <= x_i <= hi[i] for every i.
func Box(lo, hi []numeric.Q, t topology.Topology) (*poly.Poly, error) {
	if len(lo) != len(hi) {
		return nil, ErrDimMismatch
	}
	d := len(lo)
	p := poly.NewUniverse(d, t)
	for i := 0; i < d; i++ {
		if lo[i].Cmp(hi[i]) > 0 {
			return nil, fmt.Errorf("shapes: axis %d: %w", i, ErrEmptyRange)
		}
		loCon, err := rationalLowerBound(d, i, lo[i], t)
		if err != nil {
			return nil, err
		}
		hiCon, err := rationalUpperBound(d, i, hi[i], t)
		if err != nil {
			return nil, err
		}
		if err := p.AddCon(loCon); err != nil {
			return nil, err
		}
		if err := p.AddCon(hiCon); err != nil {
			return nil, err
		}
	}
	p.Minimize()
	return p, nil
}

// rationalLowerBound builds the constraint den*x_i - num >= 0, i.e.
// x_i >= lo, from lo = num/den (den > 0 by numeric.Q's invariant).
func rationalLowerBound(d, i int, lo numeric.Q, t topology.Topology) (rowsys.Con, error) {
	den := lo.Denom()
	e := linexpr.New(d)
	e.SetCoeff(i, den)
	return rowsys.NewCon(e, lo.Num().Neg(), rowsys.Nonstrict, t)
}

// rationalUpperBound builds the constraint num - den*x_i >= 0, i.e.
// x_i <= hi, from hi = num/den.
func rationalUpperBound(d, i int, hi numeric.Q, t topology.Topology) (rowsys.Con, error) {
	den := hi.Denom()
	e := linexpr.New(d)
	e.SetCoeff(i, den.Neg())
	return rowsys.NewCon(e, hi.Num(), rowsys.Nonstrict, t)
}

// UnitBox builds the unit box [0,1]^d.
func UnitBox(d int, t topology.Topology) (*poly.Poly, error) {
	zero, one := numeric.NewQFromZ(numeric.ZeroZ()), numeric.NewQFromZ(numeric.OneZ())
	lo := make([]numeric.Q, d)
	hi := make([]numeric.Q, d)
	for i := range lo {
		lo[i], hi[i] = zero, one
	}
	return Box(lo, hi, t)
}

// Simplex builds the standard d-simplex { x >= 0, sum(x) <= 1 }.
func Simplex(d int, t topology.Topology) (*poly.Poly, error) {
	if d <= 0 {
		return nil, fmt.Errorf("shapes: simplex: %w", ErrDimMismatch)
	}
	p := poly.NewUniverse(d, t)
	for i := 0; i < d; i++ {
		e := linexpr.New(d)
		e.SetCoeff(i, numeric.OneZ())
		c, err := rowsys.NewCon(e, numeric.ZeroZ(), rowsys.Nonstrict, t)
		if err != nil {
			return nil, err
		}
		if err := p.AddCon(c); err != nil {
			return nil, err
		}
	}
	sum := linexpr.New(d)
	for i := 0; i < d; i++ {
		sum.SetCoeff(i, numeric.NewZ(-1))
	}
	c, err := rowsys.NewCon(sum, numeric.OneZ(), rowsys.Nonstrict, t)
	if err != nil {
		return nil, err
	}
	if err := p.AddCon(c); err != nil {
		return nil, err
	}
	p.Minimize()
	return p, nil
}

// Orthant builds the nonnegative orthant { x_i >= 0 for all i }.
func Orthant(d int, t topology.Topology) (*poly.Poly, error) {
	p := poly.NewUniverse(d, t)
	for i := 0; i < d; i++ {
		e := linexpr.New(d)
		e.SetCoeff(i, numeric.OneZ())
		c, err := rowsys.NewCon(e, numeric.ZeroZ(), rowsys.Nonstrict, t)
		if err != nil {
			return nil, err
		}
		if err := p.AddCon(c); err != nil {
			return nil, err
		}
	}
	p.Minimize()
	return p, nil
}

// HalfSpace builds { e·x + b >= 0 } (or strictly, in an NNC topology).
func HalfSpace(e *linexpr.LinExpr, b numeric.Z, strict bool, t topology.Topology) (*poly.Poly, error) {
	typ := rowsys.Nonstrict
	if strict {
		typ = rowsys.Strict
	}
	c, err := rowsys.NewCon(e, b, typ, t)
	if err != nil {
		return nil, err
	}
	p := poly.NewUniverse(e.SpaceDim(), t)
	if err := p.AddCon(c); err != nil {
		return nil, err
	}
	p.Minimize()
	return p, nil
}
