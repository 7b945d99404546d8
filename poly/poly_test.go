package poly

import (
	"testing"

	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitCoeff(d, i int, v int64) *linexpr.LinExpr {
	e := linexpr.New(d)
	e.SetCoeff(i, numeric.NewZ(v))
	return e
}

func nonstrictCon(t *testing.T, e *linexpr.LinExpr, b numeric.Z, topol topology.Topology) rowsys.Con {
	t.Helper()
	c, err := rowsys.NewCon(e, b, rowsys.Nonstrict, topol)
	require.NoError(t, err)
	return c
}

func unitBox(t *testing.T, d int, topol topology.Topology) *Poly {
	t.Helper()
	p := NewUniverse(d, topol)
	for i := 0; i < d; i++ {
		require.NoError(t, p.AddCon(nonstrictCon(t, unitCoeff(d, i, 1), numeric.ZeroZ(), topol)))
		require.NoError(t, p.AddCon(nonstrictCon(t, unitCoeff(d, i, -1), numeric.OneZ(), topol)))
	}
	return p
}

func TestUniverseIsNotEmpty(t *testing.T) {
	p := NewUniverse(2, topology.Closed)
	assert.False(t, p.IsEmpty())
	assert.True(t, p.IsUniverse())
}

func TestEmptyIsEmpty(t *testing.T) {
	p := NewEmpty(2, topology.Closed)
	assert.True(t, p.IsEmpty())
}

func TestUnitBoxContainsOrigin(t *testing.T) {
	box := unitBox(t, 2, topology.Closed)
	assert.False(t, box.IsEmpty())
	assert.True(t, box.IsBounded())

	origin := NewUniverse(2, topology.Closed)
	for i := 0; i < 2; i++ {
		require.NoError(t, origin.AddCon(nonstrictCon(t, unitCoeff(2, i, 1), numeric.ZeroZ(), topology.Closed)))
		require.NoError(t, origin.AddCon(nonstrictCon(t, unitCoeff(2, i, -1), numeric.ZeroZ(), topology.Closed)))
	}
	contains, err := box.Contains(origin)
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestIntersectionOfDisjointBoxesIsEmpty(t *testing.T) {
	a := unitBox(t, 1, topology.Closed)
	b := NewUniverse(1, topology.Closed)
	require.NoError(t, b.AddCon(nonstrictCon(t, unitCoeff(1, 0, 1), numeric.NewZ(-2), topology.Closed)))

	require.NoError(t, a.IntersectionAssign(b))
	assert.True(t, a.IsEmpty())
}

func TestJoinOfTwoPointsIsBoundedAndContainsBoth(t *testing.T) {
	a := NewUniverse(1, topology.Closed)
	require.NoError(t, a.AddCon(nonstrictCon(t, unitCoeff(1, 0, 1), numeric.ZeroZ(), topology.Closed)))
	require.NoError(t, a.AddCon(nonstrictCon(t, unitCoeff(1, 0, -1), numeric.ZeroZ(), topology.Closed)))

	b := NewUniverse(1, topology.Closed)
	require.NoError(t, b.AddCon(nonstrictCon(t, unitCoeff(1, 0, 1), numeric.NewZ(-1), topology.Closed)))
	require.NoError(t, b.AddCon(nonstrictCon(t, unitCoeff(1, 0, -1), numeric.OneZ(), topology.Closed)))

	require.NoError(t, a.JoinAssign(b))
	assert.True(t, a.IsBounded())

	contains, err := a.Contains(b)
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestEqualsAfterClone(t *testing.T) {
	p := unitBox(t, 2, topology.Closed)
	clone := p.Clone()
	equal, err := p.Equals(clone)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestMinMaxBoundOnUnitBox(t *testing.T) {
	box := unitBox(t, 1, topology.Closed)
	hi := box.MaxBound(unitCoeff(1, 0, 1), numeric.ZeroZ())
	lo := box.MinBound(unitCoeff(1, 0, 1), numeric.ZeroZ())
	require.False(t, hi.Unbounded)
	require.False(t, lo.Unbounded)
	assert.Equal(t, "1", hi.Value.String())
	assert.Equal(t, "0", lo.Value.String())
}

func TestMaxBoundUnboundedOnUniverse(t *testing.T) {
	u := NewUniverse(1, topology.Closed)
	hi := u.MaxBound(unitCoeff(1, 0, 1), numeric.ZeroZ())
	assert.True(t, hi.Unbounded)
}

func strictCon(t *testing.T, e *linexpr.LinExpr, b numeric.Z, topol topology.Topology) rowsys.Con {
	t.Helper()
	c, err := rowsys.NewCon(e, b, rowsys.Strict, topol)
	require.NoError(t, err)
	return c
}

func TestNNCHalfOpenIntervalSplitsGeneratorsAtStrictBound(t *testing.T) {
	p := NewUniverse(1, topology.NNC)
	// 0 <= x
	require.NoError(t, p.AddCon(nonstrictCon(t, unitCoeff(1, 0, 1), numeric.ZeroZ(), topology.NNC)))
	// x < 1, i.e. 1 - x > 0
	require.NoError(t, p.AddCon(strictCon(t, unitCoeff(1, 0, -1), numeric.OneZ(), topology.NNC)))

	p.Minimize()
	assert.False(t, p.IsEmpty())
	assert.False(t, p.IsTopologicallyClosed())

	var points, closurePoints int
	for _, g := range p.GensSystem().Skeletal {
		switch g.Type() {
		case rowsys.Point:
			points++
		case rowsys.ClosurePoint:
			closurePoints++
		}
	}
	assert.Equal(t, 1, points, "x=0 is strictly attained, stays a Point")
	assert.Equal(t, 1, closurePoints, "x=1 only saturates the strict bound, demoted to ClosurePoint")

	hi := p.MaxBound(unitCoeff(1, 0, 1), numeric.ZeroZ())
	require.False(t, hi.Unbounded)
	assert.Equal(t, "1", hi.Value.String())
	assert.False(t, hi.Included, "supremum 1 is not attained under the strict upper bound")

	lo := p.MinBound(unitCoeff(1, 0, 1), numeric.ZeroZ())
	require.False(t, lo.Unbounded)
	assert.Equal(t, "0", lo.Value.String())
	assert.True(t, lo.Included, "infimum 0 is attained, x=0 satisfies the nonstrict lower bound")

	closedBox := unitBox(t, 1, topology.Closed)
	halfOpenAsClosed := p.Clone()
	halfOpenAsClosed.TopologicalClosureAssign()
	equal, err := halfOpenAsClosed.Equals(closedBox)
	require.NoError(t, err)
	assert.True(t, equal, "closing the half-open interval should yield [0,1]")

	equalBeforeClosure, err := p.Equals(closedBox)
	require.NoError(t, err)
	assert.False(t, equalBeforeClosure, "the half-open interval must not equal the closed box")
}

func TestAffineImageTranslatesBox(t *testing.T) {
	box := unitBox(t, 1, topology.Closed)
	require.NoError(t, box.AffineImage(0, unitCoeff(1, 0, 1), numeric.NewZ(5), numeric.OneZ()))
	hi := box.MaxBound(unitCoeff(1, 0, 1), numeric.ZeroZ())
	lo := box.MinBound(unitCoeff(1, 0, 1), numeric.ZeroZ())
	assert.Equal(t, "6", hi.Value.String())
	assert.Equal(t, "5", lo.Value.String())
}
