package rowsys

import (
	"testing"

	"github.com/polydd/polydd/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenPointNormalizes(t *testing.T) {
	g, err := NewGen(Point, e(2, 4), numeric.NewZ(6))
	require.NoError(t, err)
	assert.Equal(t, "1", g.Expr().Coeff(0).String())
	assert.Equal(t, "2", g.Expr().Coeff(1).String())
	assert.Equal(t, "3", g.Divisor().String())
}

func TestNewGenPointZeroDivisorRejected(t *testing.T) {
	_, err := NewGen(Point, e(1), numeric.ZeroZ())
	assert.ErrorIs(t, err, ErrZeroDivisor)
}

func TestNewGenRayNonZeroDivisorRejected(t *testing.T) {
	_, err := NewGen(Ray, e(1), numeric.OneZ())
	assert.ErrorIs(t, err, ErrNonZeroDivisor)
}

func TestGenScalarProductAndCoord(t *testing.T) {
	g, err := NewGen(Point, e(1, 1), numeric.NewZ(2))
	require.NoError(t, err)
	sp := g.ScalarProduct(e(1, 1), numeric.NewZ(1))
	// e=(1,1)/2, con = x0+x1 + 1 >= 0  => sp = (1*1+1*1) + 1*2 = 4
	assert.Equal(t, "4", sp.String())

	q := g.Coord(0)
	assert.Equal(t, "1/2", q.String())
}

func TestGenHasEpsilonAndSingular(t *testing.T) {
	assert.True(t, Point.HasEpsilon())
	assert.False(t, ClosurePoint.HasEpsilon())
	assert.False(t, Ray.HasEpsilon())
	assert.True(t, Line.IsSingular())
	assert.False(t, Ray.IsSingular())
}
