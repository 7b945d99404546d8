// Package config holds the tunable flags spec.md describes as
// "thread-local configuration" (§6.3, §9): default topology, default
// concrete kind, widening operator/spec, and a couple of
// implementation-tuning knobs. Go has no implicit thread-locals, so
// callers either consult the package-level default (guarded by a
// mutex, mirroring core.Graph's split-lock discipline) or build and
// pass around their own *Context explicitly.
package config

import (
	"sync"

	"github.com/polydd/polydd/topology"
)

// Kind names the 14 concrete AbsPoly variants of §6.1.
type Kind string

const (
	PolyKind         Kind = "Poly"
	PolyStatsKind    Kind = "Poly_Stats"
	BPolyKind        Kind = "B_Poly"
	BPolyStatsKind   Kind = "B_Poly_Stats"
	FPolyKind        Kind = "F_Poly"
	FPolyStatsKind   Kind = "F_Poly_Stats"
	UPolyKind        Kind = "U_Poly"
	UPolyStatsKind   Kind = "U_Poly_Stats"
	UFPolyKind       Kind = "UF_Poly"
	UFPolyStatsKind  Kind = "UF_Poly_Stats"
	PSetKind         Kind = "P_Set"
	PSetStatsKind    Kind = "P_Set_Stats"
	FPSetKind        Kind = "FP_Set"
	FPSetStatsKind   Kind = "FP_Set_Stats"
)

// allKinds backs NameToKind; order matches §6.1's listing.
var allKinds = []Kind{
	PolyKind, PolyStatsKind, BPolyKind, BPolyStatsKind,
	FPolyKind, FPolyStatsKind, UPolyKind, UPolyStatsKind,
	UFPolyKind, UFPolyStatsKind, PSetKind, PSetStatsKind,
	FPSetKind, FPSetStatsKind,
}

// NameToKind performs a case-sensitive lookup of a kind name (§6.1);
// ok is false for any name not in the fixed 14-element list.
func NameToKind(s string) (Kind, bool) {
	for _, k := range allKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// WidenImpl selects the widening operator consulted by default when a
// caller does not name one explicitly (§6.3 widen_impl).
type WidenImpl int

const (
	WidenH79 WidenImpl = iota
	WidenBHRZ03
)

// WidenSpec selects risky vs safe widening (§6.3 widen_spec).
type WidenSpec int

const (
	WidenRisky WidenSpec = iota
	WidenSafe
)

// Context carries the tunable flags of §6.3.
type Context struct {
	DefaultTopology           topology.Topology
	DefaultKind               Kind
	WidenImpl                 WidenImpl
	WidenSpec                 WidenSpec
	RemoveSpaceDimsPercentage int
	MinimizeFilterThreshold   int
	NoisyStats                bool
}

// Option configures a Context.
type Option func(*Context)

// WithDefaultTopology sets the default topology new polyhedra are
// built with when a caller does not name one.
func WithDefaultTopology(t topology.Topology) Option {
	return func(c *Context) { c.DefaultTopology = t }
}

// WithDefaultKind sets the concrete variant the AbsPoly factory builds
// when a caller does not name one.
func WithDefaultKind(k Kind) Option {
	return func(c *Context) { c.DefaultKind = k }
}

// WithWidenImpl sets the default widening operator.
func WithWidenImpl(w WidenImpl) Option {
	return func(c *Context) { c.WidenImpl = w }
}

// WithWidenSpec sets the default widening precondition discipline.
func WithWidenSpec(w WidenSpec) Option {
	return func(c *Context) { c.WidenSpec = w }
}

// WithRemoveSpaceDimsPercentage clamps and sets the percentage
// threshold implementations may use to decide between bulk
// remove-dims strategies; out-of-range values are clamped to [0,100].
func WithRemoveSpaceDimsPercentage(p int) Option {
	return func(c *Context) {
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		c.RemoveSpaceDimsPercentage = p
	}
}

// WithMinimizeFilterThreshold sets an implementation-tuning threshold
// (e.g. a row-count above which a cheaper filtering pass is tried
// before full minimization).
func WithMinimizeFilterThreshold(n int) Option {
	return func(c *Context) { c.MinimizeFilterThreshold = n }
}

// WithNoisyStats sets the NoisyStats flag. absdomain.StatsPoly does not
// read it: Stats-decorated kinds always aggregate silently and log
// nothing.
func WithNoisyStats(noisy bool) Option {
	return func(c *Context) { c.NoisyStats = noisy }
}

// New builds a Context from spec.md's §6.3 defaults, overridden by
// opts in order.
func New(opts ...Option) *Context {
	c := &Context{
		DefaultTopology:           topology.NNC,
		DefaultKind:               PolyKind,
		WidenImpl:                 WidenH79,
		WidenSpec:                 WidenRisky,
		RemoveSpaceDimsPercentage: 30,
		MinimizeFilterThreshold:   0,
		NoisyStats:                false,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultMu  sync.RWMutex
	defaultCtx = New()
)

// Default returns the process-wide default configuration (mirroring
// spec.md's "thread-local" note, §9, adapted to Go's lack of
// goroutine-locals: one shared default, guarded by a mutex, plus the
// option for callers to build and thread their own *Context instead).
func Default() *Context {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	d := *defaultCtx
	return &d
}

// SetDefault replaces the process-wide default configuration.
func SetDefault(c *Context) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	d := *c
	defaultCtx = &d
}
