package bbox

import "github.com/polydd/polydd/poly"

// B_Poly owns a Poly and optionally a lazily-validated BBox cache
// (§3.7): every reader re-validates the cache via EnsureBBox; every
// state-changing operation invalidates it, and the next EnsureBBox
// recomputes it from scratch (polydd does not attempt incremental
// lock-step bbox maintenance across arbitrary operations — documented
// in DESIGN.md as a simplification of §4.7's "update it in lock-step").
type B_Poly struct {
	p   *poly.Poly
	box *BBox
}

// NewBPoly wraps p; the bbox is computed lazily on first use.
func NewBPoly(p *poly.Poly) *B_Poly {
	return &B_Poly{p: p}
}

// Poly returns the wrapped polyhedron (read-only view; callers
// mutating it directly must call Invalidate).
func (bp *B_Poly) Poly() *poly.Poly { return bp.p }

// EnsureBBox returns the current bbox, recomputing it if the cache was
// invalidated.
func (bp *B_Poly) EnsureBBox() *BBox {
	if bp.box == nil {
		bp.box = FromPoly(bp.p)
	}
	return bp.box
}

// Invalidate drops the cached bbox; the next EnsureBBox recomputes it.
func (bp *B_Poly) Invalidate() { bp.box = nil }

// IntersectionAssign replaces bp with bp ∩ other and invalidates the
// cache.
func (bp *B_Poly) IntersectionAssign(other *B_Poly) error {
	if err := bp.p.IntersectionAssign(other.p); err != nil {
		return err
	}
	bp.Invalidate()
	return nil
}

// JoinAssign replaces bp with the convex hull of bp and other and
// invalidates the cache.
func (bp *B_Poly) JoinAssign(other *B_Poly) error {
	if err := bp.p.JoinAssign(other.p); err != nil {
		return err
	}
	bp.Invalidate()
	return nil
}

// Contains reports whether bp contains every point of other: the bbox
// short-circuits to false when other's hull escapes bp's hull, and
// otherwise defers to the exact polyhedron test (§4.7).
func (bp *B_Poly) Contains(other *B_Poly) (bool, error) {
	if !bp.EnsureBBox().Contains(other.EnsureBBox()) {
		return false, nil
	}
	return bp.p.Contains(other.p)
}

// Equals reports whether bp and other denote the same set: the bbox
// short-circuits to false on a hull mismatch, and otherwise defers to
// the exact polyhedron test.
func (bp *B_Poly) Equals(other *B_Poly) (bool, error) {
	if !bp.EnsureBBox().Equals(other.EnsureBBox()) {
		return false, nil
	}
	return bp.p.Equals(other.p)
}

// IsDisjointFrom reports whether bp and other share no point: the bbox
// short-circuits to true when the hulls don't overlap, and otherwise
// defers to the exact polyhedron test.
func (bp *B_Poly) IsDisjointFrom(other *B_Poly) (bool, error) {
	if bp.EnsureBBox().IsDisjointFrom(other.EnsureBBox()) {
		return true, nil
	}
	return bp.p.IsDisjointFrom(other.p)
}
