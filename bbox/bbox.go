// Package bbox implements BBox, the per-dim interval hull with an
// optional pseudo-volume (§3.7), and B_Poly, a Poly wrapper that keeps
// a lazily-validated BBox cache alongside it.
package bbox

import (
	"errors"

	"github.com/polydd/polydd/fpoly"
	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/poly"
)

// ErrSpaceDimMismatch indicates an operation was given a box/polyhedron
// of a different ambient dimension.
var ErrSpaceDimMismatch = errors.New("bbox: space dimension mismatch")

// BBox is a d-dim interval vector plus its pseudo-volume (§3.7): the
// count of unbounded axes, and the Q-product of the bounded axes'
// widths.
type BBox struct {
	d            int
	itvs         []fpoly.Itv
	numUnbounded int
	volume       numeric.Q
}

// New builds a BBox directly from an interval vector.
func New(itvs []fpoly.Itv) *BBox {
	b := &BBox{d: len(itvs), itvs: append([]fpoly.Itv{}, itvs...)}
	b.computeVolume()
	return b
}

// FromPoly computes the exact interval hull of p (§3.7): MinBound/
// MaxBound of each unit axis expression.
func FromPoly(p *poly.Poly) *BBox {
	d := p.SpaceDim()
	itvs := make([]fpoly.Itv, d)
	for i := 0; i < d; i++ {
		e := linexpr.New(d)
		e.SetCoeff(i, numeric.OneZ())
		lo := p.MinBound(e, numeric.ZeroZ())
		hi := p.MaxBound(e, numeric.ZeroZ())
		itv := fpoly.Unbounded()
		if !lo.Unbounded {
			itv.LoInf, itv.Lo = false, lo.Value
		}
		if !hi.Unbounded {
			itv.HiInf, itv.Hi = false, hi.Value
		}
		itvs[i] = itv
	}
	return New(itvs)
}

func (b *BBox) computeVolume() {
	b.numUnbounded = 0
	vol := numeric.OneQ()
	for _, itv := range b.itvs {
		if itv.LoInf || itv.HiInf {
			b.numUnbounded++
			continue
		}
		width := itv.Hi.Sub(itv.Lo)
		vol = vol.Mul(width)
	}
	b.volume = vol
}

// SpaceDim returns the ambient dimension.
func (b *BBox) SpaceDim() int { return b.d }

// Intervals returns the interval vector (read-only view).
func (b *BBox) Intervals() []fpoly.Itv { return b.itvs }

// NumUnbounded returns the count of unbounded axes.
func (b *BBox) NumUnbounded() int { return b.numUnbounded }

// PseudoVolume returns (numUnbounded, product of bounded widths).
func (b *BBox) PseudoVolume() (int, numeric.Q) { return b.numUnbounded, b.volume }

// Contains reports whether b contains every point of other (interval-
// wise, a necessary but not sufficient condition for polyhedron
// containment — used as the bbox short-circuit of §4.7).
func (b *BBox) Contains(other *BBox) bool {
	if b.d != other.d {
		return false
	}
	for i := range b.itvs {
		if !itvContains(b.itvs[i], other.itvs[i]) {
			return false
		}
	}
	return true
}

func itvContains(a, o fpoly.Itv) bool {
	if !a.LoInf {
		if o.LoInf || o.Lo.Cmp(a.Lo) < 0 {
			return false
		}
	}
	if !a.HiInf {
		if o.HiInf || o.Hi.Cmp(a.Hi) > 0 {
			return false
		}
	}
	return true
}

// Equals reports whether b and other describe the same interval
// vector.
func (b *BBox) Equals(other *BBox) bool {
	if b.d != other.d {
		return false
	}
	for i := range b.itvs {
		x, y := b.itvs[i], other.itvs[i]
		if x.LoInf != y.LoInf || x.HiInf != y.HiInf {
			return false
		}
		if !x.LoInf && x.Lo.Cmp(y.Lo) != 0 {
			return false
		}
		if !x.HiInf && x.Hi.Cmp(y.Hi) != 0 {
			return false
		}
	}
	return true
}

// IsDisjointFrom reports whether b and other's interval hulls share no
// point (sufficient, not necessary, for polyhedron disjointness).
func (b *BBox) IsDisjointFrom(other *BBox) bool {
	if b.d != other.d {
		return true
	}
	for i := range b.itvs {
		if itvDisjoint(b.itvs[i], other.itvs[i]) {
			return true
		}
	}
	return false
}

func itvDisjoint(a, o fpoly.Itv) bool {
	if !a.HiInf && !o.LoInf && a.Hi.Cmp(o.Lo) < 0 {
		return true
	}
	if !o.HiInf && !a.LoInf && o.Hi.Cmp(a.Lo) < 0 {
		return true
	}
	return false
}
