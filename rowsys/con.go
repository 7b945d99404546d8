package rowsys

import (
	"errors"
	"fmt"

	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/topology"
)

// ConType is the relational operator of a constraint: e·x + b ⊙ 0.
type ConType int

const (
	// Eq denotes an equality constraint.
	Eq ConType = iota
	// Nonstrict denotes e·x + b >= 0.
	Nonstrict
	// Strict denotes e·x + b > 0 (NNC only).
	Strict
)

// String renders the constraint type's symbol.
func (t ConType) String() string {
	switch t {
	case Eq:
		return "="
	case Nonstrict:
		return ">="
	case Strict:
		return ">"
	default:
		return "?"
	}
}

// typeRank orders constraint types for the strong-normalization tie-break
// (§4.2): equalities sort before non-strict, before strict.
func (t ConType) typeRank() int { return int(t) }

// ErrSpaceDimMismatch indicates two rows (or a row and a polyhedron)
// disagree on ambient dimension.
var ErrSpaceDimMismatch = errors.New("rowsys: space dimension mismatch")

// ErrStrictInClosed indicates a strict inequality was supplied to a
// Closed-topology context (§3.1, §4.9).
var ErrStrictInClosed = errors.New("rowsys: strict inequality not allowed in Closed topology")

// Con is a constraint e·x + b ⊙ 0 over a d-dimensional space.
type Con struct {
	e *linexpr.LinExpr
	b numeric.Z
	t ConType
}

// NewCon builds and strong-normalizes a constraint. Returns
// ErrStrictInClosed if t == Strict and topol == topology.Closed.
func NewCon(e *linexpr.LinExpr, b numeric.Z, t ConType, topol topology.Topology) (Con, error) {
	if t == Strict && topol == topology.Closed {
		return Con{}, ErrStrictInClosed
	}
	c := Con{e: e.Clone(), b: b.Clone(), t: t}
	c.normalize()
	return c, nil
}

// MustNewCon is NewCon but panics on error; intended for tests and
// canned shape constructors where the topology precondition is known
// to hold by construction.
func MustNewCon(e *linexpr.LinExpr, b numeric.Z, t ConType, topol topology.Topology) Con {
	c, err := NewCon(e, b, t, topol)
	if err != nil {
		panic(fmt.Sprintf("rowsys: MustNewCon: %v", err))
	}
	return c
}

// Expr returns the linear part e.
func (c Con) Expr() *linexpr.LinExpr { return c.e }

// Inhomo returns the inhomogeneous term b.
func (c Con) Inhomo() numeric.Z { return c.b }

// Type returns the relational operator.
func (c Con) Type() ConType { return c.t }

// SpaceDim returns the ambient dimension.
func (c Con) SpaceDim() int { return c.e.SpaceDim() }

// IsEquality reports whether c is an equality.
func (c Con) IsEquality() bool { return c.t == Eq }

// IsStrict reports whether c is a strict inequality.
func (c Con) IsStrict() bool { return c.t == Strict }

// Clone returns a deep, independent copy.
func (c Con) Clone() Con { return Con{e: c.e.Clone(), b: c.b.Clone(), t: c.t} }

// normalize enforces §4.1 strong normalization in place: divide e and
// b by their shared gcd; for equalities, also fix the sign so that the
// leading non-zero coefficient (or b, when e is zero) is positive.
// Inequalities keep their sign, since negating e·x + b >= 0 (or > 0)
// would describe the opposite half-space; dividing by the positive gcd
// is their whole canonical form.
func (c *Con) normalize() {
	e, b, g := c.e.Normalize(c.b)
	c.e, c.b = e, b
	if g.IsZero() || c.t != Eq {
		return
	}
	lead, ok := c.e.FirstNonZero()
	var sign int
	if ok {
		sign = c.e.Coeff(lead).Sign()
	} else {
		sign = c.b.Sign()
	}
	if sign < 0 {
		c.e.ScaleInPlace(numeric.NewZ(-1))
		c.b = c.b.Neg()
	}
}

// IsTautological reports whether c holds for every x (zero LHS, and
// the inhomogeneous term satisfies the relation on its own): 0 ⊙ (-b)
// is always true, e.g. "0 >= 0" or "5 >= 0".
func (c Con) IsTautological() bool {
	if !c.e.IsZero() {
		return false
	}
	switch c.t {
	case Eq:
		return c.b.IsZero()
	case Nonstrict:
		return c.b.Sign() >= 0
	case Strict:
		return c.b.Sign() > 0
	default:
		return false
	}
}

// IsInconsistent reports whether c can never hold (zero LHS, never
// satisfiable): e.g. "5 = 0", "-5 >= 0", "-5 > 0", "0 > 0".
func (c Con) IsInconsistent() bool {
	if !c.e.IsZero() {
		return false
	}
	switch c.t {
	case Eq:
		return !c.b.IsZero()
	case Nonstrict:
		return c.b.Sign() < 0
	case Strict:
		return c.b.Sign() <= 0
	default:
		return true
	}
}

// ComplementCon returns the "other side" of c in the requested
// topology (§4.1): for e·x + b >= 0, the NNC complement is
// -e·x - b > 0; for e·x + b > 0, the closed complement is
// -e·x - b >= 0. ok is false for a non-strict c in Closed topology
// (its complement is open) and for every equality in either topology:
// an equality has no single complementary half-space, so callers
// handle equalities specially rather than calling ComplementCon.
func (c Con) ComplementCon(topol topology.Topology) (Con, bool) {
	switch c.t {
	case Nonstrict:
		if topol != topology.NNC {
			return Con{}, false
		}
		nc := Con{e: c.e.Neg(), b: c.b.Neg(), t: Strict}
		nc.normalize()
		return nc, true
	case Strict:
		nc := Con{e: c.e.Neg(), b: c.b.Neg(), t: Nonstrict}
		nc.normalize()
		return nc, true
	case Eq:
		return Con{}, false
	default:
		return Con{}, false
	}
}

// ScalarProduct returns c's linear part dotted with gen's, plus
// c.Inhomo()*div, i.e. the "scalar product" sp[g] of §4.2 step 1 for a
// generator whose expression is gen and whose divisor is div (0 for
// lines/rays, so the inhomogeneous term drops out exactly as spec.md
// requires: "zero inhomogeneous term for lines/rays").
func (c Con) ScalarProduct(gen *linexpr.LinExpr, div numeric.Z) numeric.Z {
	return c.e.Dot(gen).Add(c.b.Mul(div))
}

// Compare implements the strong-normalization total order of §4.2:
// (type-rank, expression, inhomo, -) lexicographically.
func (c Con) Compare(other Con) int {
	if d := c.t.typeRank() - other.t.typeRank(); d != 0 {
		return d
	}
	if d := c.e.Compare(other.e); d != 0 {
		return d
	}
	return c.b.Cmp(other.b)
}

// Equal reports whether c and other are identical after normalization.
func (c Con) Equal(other Con) bool { return c.Compare(other) == 0 }
