package poly

import (
	"errors"

	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/satmatrix"
	"github.com/polydd/polydd/topology"
)

// Status is the DD pair's lifecycle state (§3.4, §4.8).
type Status int

const (
	// Min: cs and gs are minimized and mutually consistent.
	Min Status = iota
	// Pending: cs/gs describe a valid DD pair, but cs_pending/gs_pending
	// hold rows not yet incorporated.
	Pending
	// Empty: all row systems are empty; d is retained.
	Empty
)

// String renders the status name.
func (s Status) String() string {
	switch s {
	case Min:
		return "Min"
	case Pending:
		return "Pending"
	case Empty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Poly is a convex polyhedron over Q^d, represented by the DD pair
// (§3.4). The zero value is not valid; use NewUniverse or NewEmpty.
type Poly struct {
	d      int
	topol  topology.Topology
	status Status

	cs rowsys.ConSystem
	gs rowsys.GenSystem

	pendingCons []rowsys.Con
	pendingGens []rowsys.Gen

	// sat.Get(g, c) == true iff skeletal generator gs.Skeletal[g] does
	// NOT saturate skeletal constraint cs.Skeletal[c] (§3.3).
	sat *satmatrix.Matrix
}

// ErrSpaceDimMismatch indicates an operation was given a row or
// polyhedron of a different ambient dimension.
var ErrSpaceDimMismatch = errors.New("poly: space dimension mismatch")

// ErrDimOutOfRange indicates a variable index outside [0, d).
var ErrDimOutOfRange = errors.New("poly: dimension index out of range")

// ErrStrictSurvivesClosure indicates a Closed-topology switch was
// requested on a polyhedron that still has an active strict constraint.
var ErrStrictSurvivesClosure = errors.New("poly: strict constraint survives topological closure")

// NewUniverse builds the universe polyhedron of dimension d (§4.2
// "Bootstrapping"): d lines (one per axis) as singular generators, one
// point at the origin as the sole skeletal generator, no constraints.
func NewUniverse(d int, t topology.Topology) *Poly {
	p := &Poly{d: d, topol: t, status: Min}
	p.gs.Singular = make([]rowsys.Gen, d)
	for i := 0; i < d; i++ {
		e := unitExpr(d, i)
		g, _ := rowsys.NewGen(rowsys.Line, e, numericZero())
		p.gs.Singular[i] = g
	}
	origin, _ := rowsys.NewGen(rowsys.Point, zeroExpr(d), numericOne())
	p.gs.Skeletal = []rowsys.Gen{origin}
	p.cs = rowsys.ConSystem{}
	p.sat = satmatrix.New(1, 0)
	return p
}

// NewEmpty builds the empty polyhedron of dimension d.
func NewEmpty(d int, t topology.Topology) *Poly {
	return &Poly{d: d, topol: t, status: Empty, sat: satmatrix.New(0, 0)}
}

// SpaceDim returns the ambient dimension.
func (p *Poly) SpaceDim() int { return p.d }

// Topology returns the polyhedron's topology kind.
func (p *Poly) Topology() topology.Topology { return p.topol }

// Status returns the current lifecycle status.
func (p *Poly) Status() Status { return p.status }

// Clone returns a deep, independent copy of p.
func (p *Poly) Clone() *Poly {
	c := &Poly{
		d:      p.d,
		topol:  p.topol,
		status: p.status,
		cs:     p.cs.Clone(),
		gs:     p.gs.Clone(),
	}
	c.pendingCons = make([]rowsys.Con, len(p.pendingCons))
	for i, r := range p.pendingCons {
		c.pendingCons[i] = r.Clone()
	}
	c.pendingGens = make([]rowsys.Gen, len(p.pendingGens))
	for i, r := range p.pendingGens {
		c.pendingGens[i] = r.Clone()
	}
	if p.sat != nil {
		c.sat = p.sat.Clone()
	}
	return c
}

// SetUniverse reinitializes p in place to the universe polyhedron of
// its existing ambient dimension (§4.8: "Empty is terminal modulo
// set_universe()").
func (p *Poly) SetUniverse() {
	u := NewUniverse(p.d, p.topol)
	*p = *u
}

// SetEmptyInPlace reinitializes p in place to the empty polyhedron of
// its existing ambient dimension.
func (p *Poly) setEmptyInPlace() {
	p.status = Empty
	p.cs = rowsys.ConSystem{}
	p.gs = rowsys.GenSystem{}
	p.pendingCons = nil
	p.pendingGens = nil
	p.sat = satmatrix.New(0, 0)
}

// ConsSystem exposes the minimized constraint system (triggers minimize).
func (p *Poly) ConsSystem() rowsys.ConSystem {
	p.Minimize()
	return p.cs
}

// GensSystem exposes the minimized generator system (triggers minimize).
func (p *Poly) GensSystem() rowsys.GenSystem {
	p.Minimize()
	return p.gs
}

// NumMinCons returns the number of constraints in the minimized system.
func (p *Poly) NumMinCons() int {
	p.Minimize()
	return p.cs.Len()
}

// NumMinGens returns the number of generators in the minimized system.
func (p *Poly) NumMinGens() int {
	p.Minimize()
	return p.gs.Len()
}
