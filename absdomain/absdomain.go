// Package absdomain implements the abstract polymorphic interface of
// §6.1: a common AbsPoly surface over the concrete representations
// (Poly, F_Poly, U_Poly, B_Poly), a factory selecting one of the named
// kinds, and a Stats decorator that times every call.
package absdomain

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"

	"github.com/polydd/polydd/bbox"
	"github.com/polydd/polydd/config"
	"github.com/polydd/polydd/fpoly"
	"github.com/polydd/polydd/poly"
	"github.com/polydd/polydd/topology"
	"github.com/polydd/polydd/upoly"
)

// Kind re-exports config.Kind so callers of absdomain need not import
// config directly for the common case.
type Kind = config.Kind

// ErrUnknownKind indicates a name that does not match any of the 14
// concrete variants (§6.1: "unknown names are rejected").
var ErrUnknownKind = errors.New("absdomain: unknown kind name")

// ErrKindNotImplemented indicates a syntactically valid kind name
// (UF_Poly, P_Set, FP_Set and their Stats variants) whose semantics
// spec.md enumerates but never defines beyond the name: polydd does
// not materialize these three combinator kinds (documented in
// DESIGN.md), so the factory reports them as a precondition violation
// rather than silently degrading to a different kind.
var ErrKindNotImplemented = errors.New("absdomain: kind not implemented")

// AbsPoly is the common surface of §6.1's abstract polymorphic
// interface: the subset of §4.3's operations that make sense uniformly
// across every concrete representation, plus the bookkeeping
// operations (copy, hash, memory accounting, ascii I/O, kind lookup).
type AbsPoly interface {
	SpaceDim() int
	IsEmpty() bool
	CopyCons() []string // constraint system rendered as ascii C-lines (copy_cons)
	CopyGens() []string // generator system rendered as ascii G-lines (copy_gens)
	Clone() AbsPoly
	Hash() uint64
	MemoryBytes() int
	AsciiDump(w io.Writer) error
	Kind() Kind
}

// NewDomain builds the universe polyhedron of the given kind and ambient
// dimension (§6.1 factory). Unknown names, and the three unmaterialized
// combinator kinds, are reported as an error rather than a panic,
// matching §7's "boolean/error on invalid inputs".
func NewDomain(kind Kind, d int, topol topology.Topology) (AbsPoly, error) {
	switch kind {
	case config.PolyKind:
		return &polyAdapter{p: poly.NewUniverse(d, topol), kind: kind}, nil
	case config.PolyStatsKind:
		inner := &polyAdapter{p: poly.NewUniverse(d, topol), kind: config.PolyKind}
		return NewStatsPoly(inner, kind), nil
	case config.FPolyKind:
		return &fpolyAdapter{f: fpoly.NewUniverse(d, topol), kind: kind}, nil
	case config.FPolyStatsKind:
		inner := &fpolyAdapter{f: fpoly.NewUniverse(d, topol), kind: config.FPolyKind}
		return NewStatsPoly(inner, kind), nil
	case config.UPolyKind:
		return &upolyAdapter{u: upoly.NewUniverse(d, topol), kind: kind}, nil
	case config.UPolyStatsKind:
		inner := &upolyAdapter{u: upoly.NewUniverse(d, topol), kind: config.UPolyKind}
		return NewStatsPoly(inner, kind), nil
	case config.BPolyKind:
		return &bpolyAdapter{bp: bbox.NewBPoly(poly.NewUniverse(d, topol)), kind: kind}, nil
	case config.BPolyStatsKind:
		inner := &bpolyAdapter{bp: bbox.NewBPoly(poly.NewUniverse(d, topol)), kind: config.BPolyKind}
		return NewStatsPoly(inner, kind), nil
	case config.UFPolyKind, config.UFPolyStatsKind, config.PSetKind, config.PSetStatsKind, config.FPSetKind, config.FPSetStatsKind:
		return nil, fmt.Errorf("absdomain: %s: %w", kind, ErrKindNotImplemented)
	default:
		return nil, fmt.Errorf("absdomain: %s: %w", kind, ErrUnknownKind)
	}
}

func dumpToHash(dump func(w io.Writer) error) uint64 {
	h := fnv.New64a()
	_ = dump(h)
	return h.Sum64()
}
