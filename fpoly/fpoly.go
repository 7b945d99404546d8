// Package fpoly implements F_Poly, the Cartesian factorization of a
// Poly into independent blocks plus a vector of proper intervals
// (§3.5, §4.5). Block discovery is a union-find over dimension
// indices driven by each constraint's support, grounded on the
// disjoint-set pattern of the teacher's Kruskal implementation.
package fpoly

import (
	"errors"
	"sort"

	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/poly"
	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/topology"
)

// ErrSpaceDimMismatch indicates an operation was given an F_Poly or row
// of a different ambient dimension.
var ErrSpaceDimMismatch = errors.New("fpoly: space dimension mismatch")

// dsu is an int-indexed union-find over dimensions [0,d), path
// compression plus union-by-rank, mirroring the teacher's Kruskal DSU.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

func (d *dsu) union(u, v int) {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}
	if d.rank[ru] < d.rank[rv] {
		d.parent[ru] = rv
	} else {
		d.parent[rv] = ru
		if d.rank[ru] == d.rank[rv] {
			d.rank[ru]++
		}
	}
}

// F_Poly is a factorized polyhedron of ambient dim d (§3.5): blocks
// partition a subset of [0,d) into the supports of independent
// factors; itvs carries a proper interval for every dim not claimed by
// a block.
type F_Poly struct {
	d      int
	topol  topology.Topology
	empty  bool
	itvs   []Itv          // one per dim; meaningful only where blocked[i] is false
	blocks [][]int         // sorted ascending dims per block
	factors []*poly.Poly   // factors[k] has SpaceDim() == len(blocks[k])
}

// SpaceDim returns the ambient dimension.
func (f *F_Poly) SpaceDim() int { return f.d }

// Topology returns the shared topology of every factor.
func (f *F_Poly) Topology() topology.Topology { return f.topol }

// IsEmpty reports whether f denotes the empty set.
func (f *F_Poly) IsEmpty() bool { return f.empty }

// Blocks returns the current block partition (read-only view).
func (f *F_Poly) Blocks() [][]int { return f.blocks }

// Intervals returns the current proper-interval vector (read-only
// view; entries for blocked dims are meaningless).
func (f *F_Poly) Intervals() []Itv { return f.itvs }

// blockedMask returns a bool slice flagging which dims belong to a
// block (vs. being a proper interval).
func (f *F_Poly) blockedMask() []bool {
	mask := make([]bool, f.d)
	for _, blk := range f.blocks {
		for _, i := range blk {
			mask[i] = true
		}
	}
	return mask
}

// NewUniverse builds the universe F_Poly of dim d: no blocks, every
// dim a (-inf,+inf) interval.
func NewUniverse(d int, t topology.Topology) *F_Poly {
	itvs := make([]Itv, d)
	for i := range itvs {
		itvs[i] = Unbounded()
	}
	return &F_Poly{d: d, topol: t, itvs: itvs}
}

// NewEmpty builds the empty F_Poly of dim d.
func NewEmpty(d int, t topology.Topology) *F_Poly {
	return &F_Poly{d: d, topol: t, empty: true, itvs: make([]Itv, d)}
}

// FromPoly computes the syntactic block partition of p (§4.5.1): the
// coarsest partition such that every constraint's support lies within
// one block, found by union-find driven by each constraint's support.
// p is minimized first, so any implicit equality minimization reveals
// (which can decouple dims a syntactic scan of the pending rows alone
// would miss) is already reflected in the partition.
func FromPoly(p *poly.Poly) *F_Poly {
	p.Minimize()
	if p.IsEmpty() {
		return NewEmpty(p.SpaceDim(), p.Topology())
	}
	d := p.SpaceDim()
	blocks := discoverBlocks(p)
	f := &F_Poly{d: d, topol: p.Topology(), itvs: make([]Itv, d)}
	mask := make([]bool, d)
	for _, blk := range blocks {
		if len(blk) <= 1 {
			continue
		}
		f.blocks = append(f.blocks, blk)
		for _, i := range blk {
			mask[i] = true
		}
	}
	for _, blk := range f.blocks {
		f.factors = append(f.factors, extractFactor(p, blk))
	}
	for i := 0; i < d; i++ {
		if mask[i] {
			continue
		}
		f.itvs[i] = boundsToItv(p, i)
	}
	normalize(f)
	return f
}

// discoverBlocks runs the union-find pass of §4.5.1 over p's minimized
// constraint system's supports.
func discoverBlocks(p *poly.Poly) [][]int {
	d := p.SpaceDim()
	u := newDSU(d)
	cs := p.ConsSystem()
	merge := func(c rowsys.Con) {
		support := c.Expr().Support()
		for i := 1; i < len(support); i++ {
			u.union(support[0], support[i])
		}
	}
	for _, c := range cs.Singular {
		merge(c)
	}
	for _, c := range cs.Skeletal {
		merge(c)
	}
	groups := map[int][]int{}
	for i := 0; i < d; i++ {
		r := u.find(i)
		groups[r] = append(groups[r], i)
	}
	var blocks [][]int
	for _, blk := range groups {
		sort.Ints(blk)
		blocks = append(blocks, blk)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i][0] < blocks[j][0] })
	return blocks
}

// extractFactor rebuilds, as a fresh low-dim Poly, the constraints of
// p whose support lies entirely within blk, remapped onto local
// coordinates 0..len(blk)-1.
func extractFactor(p *poly.Poly, blk []int) *poly.Poly {
	local := make(map[int]int, len(blk))
	for li, gi := range blk {
		local[gi] = li
	}
	factor := poly.NewUniverse(len(blk), p.Topology())
	cs := p.ConsSystem()
	remap := func(c rowsys.Con) (rowsys.Con, bool) {
		for _, i := range c.Expr().Support() {
			if _, ok := local[i]; !ok {
				return rowsys.Con{}, false
			}
		}
		e := linexpr.New(len(blk))
		for gi, li := range local {
			e.SetCoeff(li, c.Expr().Coeff(gi))
		}
		nc, err := rowsys.NewCon(e, c.Inhomo(), c.Type(), p.Topology())
		if err != nil {
			return rowsys.Con{}, false
		}
		return nc, true
	}
	for _, c := range cs.Singular {
		if nc, ok := remap(c); ok {
			_ = factor.AddCon(nc)
		}
	}
	for _, c := range cs.Skeletal {
		if nc, ok := remap(c); ok {
			_ = factor.AddCon(nc)
		}
	}
	factor.Minimize()
	return factor
}

// boundsToItv reads dim i's exact bounds out of p via MinBound/MaxBound
// on the unit expression, valid once block discovery has established
// that i is independent of every other dim.
func boundsToItv(p *poly.Poly, i int) Itv {
	e := linexpr.New(p.SpaceDim())
	e.SetCoeff(i, numeric.OneZ())
	lo := p.MinBound(e, numeric.ZeroZ())
	hi := p.MaxBound(e, numeric.ZeroZ())
	itv := Unbounded()
	if !lo.Unbounded {
		itv.LoInf = false
		itv.Lo = lo.Value
	}
	if !hi.Unbounded {
		itv.HiInf = false
		itv.Hi = hi.Value
	}
	return itv
}


// normalize enforces §4.5.4: maximal syntactic partition (already the
// case after discoverBlocks), per-factor minimization, boxable-factor
// collapse to an interval, and lexicographic sort of blocks by content.
func normalize(f *F_Poly) {
	var blocks [][]int
	var factors []*poly.Poly
	for bi, blk := range f.blocks {
		factor := f.factors[bi]
		factor.Minimize()
		if factor.IsEmpty() {
			f.empty = true
			return
		}
		if len(blk) == 1 && factor.IsTopologicallyClosed() {
			f.itvs[blk[0]] = boundsToItv(factor, 0)
			continue
		}
		blocks = append(blocks, blk)
		factors = append(factors, factor)
	}
	sort.Slice(blocks, func(i, j int) bool {
		return lexLess(blocks[i], blocks[j])
	})
	f.blocks = blocks
	f.factors = factors
}

func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// ToPoly materializes f back into a single Poly over its ambient
// space: the Cartesian product of its factors and proper intervals.
func (f *F_Poly) ToPoly() *poly.Poly {
	if f.empty {
		return poly.NewEmpty(f.d, f.topol)
	}
	p := poly.NewUniverse(f.d, f.topol)
	mask := f.blockedMask()
	for i, itv := range f.itvs {
		if mask[i] {
			continue
		}
		if err := addItvCons(p, i, itv); err != nil {
			return poly.NewEmpty(f.d, f.topol)
		}
	}
	for bi, blk := range f.blocks {
		factor := f.factors[bi]
		factor.Minimize()
		fcs := factor.ConsSystem()
		widen := func(c rowsys.Con) rowsys.Con {
			e := linexpr.New(f.d)
			for li, gi := range blk {
				e.SetCoeff(gi, c.Expr().Coeff(li))
			}
			nc, _ := rowsys.NewCon(e, c.Inhomo(), c.Type(), f.topol)
			return nc
		}
		for _, c := range fcs.Singular {
			_ = p.AddCon(widen(c))
		}
		for _, c := range fcs.Skeletal {
			_ = p.AddCon(widen(c))
		}
	}
	p.Minimize()
	return p
}

func addItvCons(p *poly.Poly, i int, itv Itv) error {
	d := p.SpaceDim()
	if !itv.LoInf {
		e := linexpr.New(d)
		e.SetCoeff(i, itv.Lo.Denom())
		b := itv.Lo.Num().Neg()
		c, err := rowsys.NewCon(e, b, rowsys.Nonstrict, p.Topology())
		if err != nil {
			return err
		}
		if err := p.AddCon(c); err != nil {
			return err
		}
	}
	if !itv.HiInf {
		e := linexpr.New(d)
		e.SetCoeff(i, itv.Hi.Denom().Neg())
		b := itv.Hi.Num()
		c, err := rowsys.NewCon(e, b, rowsys.Nonstrict, p.Topology())
		if err != nil {
			return err
		}
		if err := p.AddCon(c); err != nil {
			return err
		}
	}
	return nil
}
