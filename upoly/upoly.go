// Package upoly implements U_Poly, the unconstrained-projection
// representation of §3.6/§4.6: an ambient dim d is sparsely mapped
// onto a small kernel Poly that only tracks the dims some constraint
// has actually mentioned; every other ambient dim is implicitly free.
package upoly

import (
	"errors"
	"sort"

	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/poly"
	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/topology"
)

// NotADim marks an ambient dim as not mapped into the kernel.
const NotADim = -1

// ErrSpaceDimMismatch indicates an operation was given a U_Poly or row
// of a different ambient dimension.
var ErrSpaceDimMismatch = errors.New("upoly: space dimension mismatch")

// U_Poly is the pre-image of a small kernel polyhedron under the
// projection that keeps only the ambient dims named in info (§3.6):
// info[i] is the kernel dim ambient dim i maps to, or NotADim.
type U_Poly struct {
	d      int
	info   []int
	kernel *poly.Poly
}

// SpaceDim returns the ambient dimension.
func (u *U_Poly) SpaceDim() int { return u.d }

// Info returns the ambient->kernel dim mapping (read-only view).
func (u *U_Poly) Info() []int { return u.info }

// Kernel returns the kernel polyhedron (read-only view; callers must
// not mutate it directly).
func (u *U_Poly) Kernel() *poly.Poly { return u.kernel }

// NewUniverse builds the universe U_Poly of dim d: every dim free, a
// 0-dim kernel.
func NewUniverse(d int, t topology.Topology) *U_Poly {
	info := make([]int, d)
	for i := range info {
		info[i] = NotADim
	}
	return &U_Poly{d: d, info: info, kernel: poly.NewUniverse(0, t)}
}

// IsEmpty reports whether u denotes the empty set.
func (u *U_Poly) IsEmpty() bool { return u.kernel.IsEmpty() }

// Clone returns a deep, independent copy of u.
func (u *U_Poly) Clone() *U_Poly {
	return &U_Poly{d: u.d, info: append([]int{}, u.info...), kernel: u.kernel.Clone()}
}

// kernelize allocates a fresh kernel dim for every ambient dim in
// dims not already mapped, leaving already-mapped dims untouched.
func (u *U_Poly) kernelize(dims []int) {
	for _, i := range dims {
		if u.info[i] != NotADim {
			continue
		}
		base := u.kernel.SpaceDim()
		_ = u.kernel.AddSpaceDims(1, false)
		u.info[i] = base
	}
}

// rewriteExprToKernel rebuilds e (over ambient dims) as a linear
// expression over the current kernel dims, assuming every nonzero
// coefficient's ambient dim is already mapped.
func (u *U_Poly) rewriteExprToKernel(e *linexpr.LinExpr) *linexpr.LinExpr {
	ke := linexpr.New(u.kernel.SpaceDim())
	for i := 0; i < e.SpaceDim(); i++ {
		c := e.Coeff(i)
		if c.IsZero() {
			continue
		}
		ke.SetCoeff(u.info[i], c)
	}
	return ke
}

// AddCon allocates a fresh kernel dim for every unmapped ambient dim in
// c's support, rewrites c into the kernel, adds and minimizes it, then
// elides any kernel dim that minimization left unconstrained (§4.6).
func (u *U_Poly) AddCon(c rowsys.Con) error {
	if c.SpaceDim() != u.d {
		return ErrSpaceDimMismatch
	}
	u.kernelize(c.Expr().Support())
	kc, err := rowsys.NewCon(u.rewriteExprToKernel(c.Expr()), c.Inhomo(), c.Type(), u.kernel.Topology())
	if err != nil {
		return err
	}
	if err := u.kernel.AddCon(kc); err != nil {
		return err
	}
	u.kernel.Minimize()
	u.elideUnconstrained()
	return nil
}

// AddGen handles the three cases of §4.6: a line on an unmapped dim is
// a no-op (the dim is already free); any other generator with nonzero
// component on a mapped dim is rewritten into the kernel; a generator
// touching only unmapped dims besides its own axis is likewise a
// no-op since unmapped dims are already unconstrained.
func (u *U_Poly) AddGen(g rowsys.Gen) error {
	if g.SpaceDim() != u.d {
		return ErrSpaceDimMismatch
	}
	support := g.Expr().Support()
	var mapped []int
	for _, i := range support {
		if u.info[i] != NotADim {
			mapped = append(mapped, i)
		}
	}
	if len(mapped) == 0 {
		return nil
	}
	u.kernelize(support)
	kg, err := rowsys.NewGen(g.Type(), u.rewriteExprToKernel(g.Expr()), g.Divisor())
	if err != nil {
		return err
	}
	if err := u.kernel.AddGen(kg); err != nil {
		return err
	}
	u.kernel.Minimize()
	u.elideUnconstrained()
	return nil
}

// elideUnconstrained drops every kernel dim minimization revealed to
// be unconstrained (checked via the kernel's axis-line generators) and
// renumbers info accordingly (§4.6).
func (u *U_Poly) elideUnconstrained() {
	free := u.kernel.GetUnconstrained()
	if len(free) == 0 {
		return
	}
	freeSet := make(map[int]bool, len(free))
	for _, j := range free {
		freeSet[j] = true
	}
	if err := u.kernel.RemoveSpaceDims(free); err != nil {
		return
	}
	sort.Ints(free)
	for i, kj := range u.info {
		if kj == NotADim {
			continue
		}
		if freeSet[kj] {
			u.info[i] = NotADim
			continue
		}
		shift := 0
		for _, f := range free {
			if f < kj {
				shift++
			}
		}
		u.info[i] = kj - shift
	}
}
