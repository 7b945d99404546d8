package rowsys

import (
	"errors"

	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
)

// GenType is the kind of a generator (§3.2, §4.1).
type GenType int

const (
	// Line is a singular generator, always paired with its negation.
	Line GenType = iota
	// Ray is a skeletal generator with zero divisor, no ε component.
	Ray
	// Point is a skeletal generator with positive divisor and ε = 1.
	Point
	// ClosurePoint is a skeletal generator with positive divisor and
	// ε = 0 (lies on the boundary of the implicit strict positivity
	// constraint in NNC, §3.1).
	ClosurePoint
)

// String renders the generator type's name.
func (t GenType) String() string {
	switch t {
	case Line:
		return "line"
	case Ray:
		return "ray"
	case Point:
		return "point"
	case ClosurePoint:
		return "closure_point"
	default:
		return "?"
	}
}

func (t GenType) typeRank() int { return int(t) }

// IsSingular reports whether the type is Line (the generator-side
// "singular" kind of §3.2).
func (t GenType) IsSingular() bool { return t == Line }

// HasEpsilon reports whether the generator type saturates the implicit
// strict positivity constraint strictly (true only for Point, §3.1,
// §4.2 "NNC ε encoding").
func (t GenType) HasEpsilon() bool { return t == Point }

// ErrZeroDivisor indicates a Point/ClosurePoint was given a zero
// divisor (§4.1: "div > 0 for points and closure-points").
var ErrZeroDivisor = errors.New("rowsys: point/closure-point must have a positive divisor")

// ErrNonZeroDivisor indicates a Line/Ray was given a non-zero divisor
// (§4.1: "div = 0 for lines and rays").
var ErrNonZeroDivisor = errors.New("rowsys: line/ray must have a zero divisor")

// Gen is a generator: a line, ray, point, or closure-point.
type Gen struct {
	t   GenType
	e   *linexpr.LinExpr
	div numeric.Z
}

// NewGen builds and strong-normalizes a generator.
func NewGen(t GenType, e *linexpr.LinExpr, div numeric.Z) (Gen, error) {
	switch t {
	case Point, ClosurePoint:
		if div.Sign() <= 0 {
			return Gen{}, ErrZeroDivisor
		}
	case Line, Ray:
		if !div.IsZero() {
			return Gen{}, ErrNonZeroDivisor
		}
	}
	g := Gen{t: t, e: e.Clone(), div: div.Clone()}
	g.normalize()
	return g, nil
}

// Type returns the generator kind.
func (g Gen) Type() GenType { return g.t }

// Expr returns the linear part.
func (g Gen) Expr() *linexpr.LinExpr { return g.e }

// Divisor returns the divisor (0 for lines/rays).
func (g Gen) Divisor() numeric.Z { return g.div }

// SpaceDim returns the ambient dimension.
func (g Gen) SpaceDim() int { return g.e.SpaceDim() }

// Clone returns a deep, independent copy.
func (g Gen) Clone() Gen { return Gen{t: g.t, e: g.e.Clone(), div: g.div.Clone()} }

// normalize enforces §4.1: for points/closure-points, gcd(coords, div)
// == 1 with div > 0; for lines/rays, gcd(coords) == 1, and for lines
// the leading non-zero coefficient's sign is made positive. A ray keeps
// its sign, since negating it would point it the opposite way.
func (g *Gen) normalize() {
	switch g.t {
	case Point, ClosurePoint:
		e, div, gc := g.e.Normalize(g.div)
		g.e, g.div = e, div
		if !gc.IsZero() && g.div.Sign() < 0 {
			g.e.ScaleInPlace(numeric.NewZ(-1))
			g.div = g.div.Neg()
		}
	case Line, Ray:
		e, _, _ := g.e.Normalize(numeric.ZeroZ())
		g.e = e
		lead, ok := g.e.FirstNonZero()
		if g.t == Line && ok && g.e.Coeff(lead).Sign() < 0 {
			g.e.ScaleInPlace(numeric.NewZ(-1))
		}
	}
}

// ScalarProduct returns gen's expression dotted with con's linear
// part, plus con's inhomogeneous term scaled by gen's divisor — the
// dual-direction scalar product of §4.2 ("sp is constraint·generator").
func (g Gen) ScalarProduct(conExpr *linexpr.LinExpr, conB numeric.Z) numeric.Z {
	return g.e.Dot(conExpr).Add(conB.Mul(g.div))
}

// Compare implements the strong-normalization total order of §4.2.
func (g Gen) Compare(other Gen) int {
	if d := g.t.typeRank() - other.t.typeRank(); d != 0 {
		return d
	}
	if d := g.e.Compare(other.e); d != 0 {
		return d
	}
	return g.div.Cmp(other.div)
}

// Equal reports whether g and other are identical after normalization.
func (g Gen) Equal(other Gen) bool { return g.Compare(other) == 0 }

// Coord converts a (point or closure-point) generator's affine
// coordinate e_i/div into a rational value for dimension i.
// Precondition: g.Type() is Point or ClosurePoint.
func (g Gen) Coord(i int) numeric.Q {
	q, _ := numeric.NewQFromZZ(g.e.Coeff(i), g.div)
	return q
}
