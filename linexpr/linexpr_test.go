package linexpr

import (
	"testing"

	"github.com/polydd/polydd/numeric"
	"github.com/stretchr/testify/assert"
)

func mkExpr(vals ...int64) *LinExpr {
	c := make([]numeric.Z, len(vals))
	for i, v := range vals {
		c[i] = numeric.NewZ(v)
	}
	return FromCoeffs(c)
}

func TestLinExprBasics(t *testing.T) {
	e := mkExpr(1, 0, 3)
	assert.Equal(t, 3, e.SpaceDim())
	assert.False(t, e.IsZero())
	assert.True(t, e.AllZeroes(1, 2))
	assert.False(t, e.AllZeroes(0, 2))

	last, ok := e.LastNonZero()
	assert.True(t, ok)
	assert.Equal(t, 2, last)

	first, ok := e.FirstNonZero()
	assert.True(t, ok)
	assert.Equal(t, 0, first)
}

func TestLinExprDotAndAdd(t *testing.T) {
	a := mkExpr(1, 2, 3)
	b := mkExpr(4, 5, 6)
	assert.Equal(t, "32", a.Dot(b).String()) // 4+10+18

	sum := a.Add(b)
	assert.Equal(t, "5", sum.Coeff(0).String())
	assert.Equal(t, "7", sum.Coeff(1).String())
	assert.Equal(t, "9", sum.Coeff(2).String())
}

func TestLinExprScaleAndAddScaled(t *testing.T) {
	a := mkExpr(1, 2)
	a.ScaleInPlace(numeric.NewZ(3))
	assert.Equal(t, "3", a.Coeff(0).String())
	assert.Equal(t, "6", a.Coeff(1).String())

	b := mkExpr(1, 1)
	a.AddScaledInPlace(numeric.NewZ(2), b)
	assert.Equal(t, "5", a.Coeff(0).String())
	assert.Equal(t, "8", a.Coeff(1).String())
}

func TestLinExprNormalize(t *testing.T) {
	e := mkExpr(2, 4, 6)
	norm, inhomo, div := e.Normalize(numeric.NewZ(8))
	assert.Equal(t, "2", div.String())
	assert.Equal(t, "4", inhomo.String())
	assert.Equal(t, "1", norm.Coeff(0).String())
	assert.Equal(t, "2", norm.Coeff(1).String())
	assert.Equal(t, "3", norm.Coeff(2).String())
}

func TestLinExprNormalizeAllZero(t *testing.T) {
	e := mkExpr(0, 0)
	norm, inhomo, div := e.Normalize(numeric.ZeroZ())
	assert.True(t, div.IsZero())
	assert.True(t, norm.IsZero())
	assert.True(t, inhomo.IsZero())
}

func TestLinExprPermute(t *testing.T) {
	e := mkExpr(10, 20, 30)
	e.Permute([]int{0, 1, 2})
	assert.Equal(t, "20", e.Coeff(0).String())
	assert.Equal(t, "30", e.Coeff(1).String())
	assert.Equal(t, "10", e.Coeff(2).String())
}

func TestLinExprCompare(t *testing.T) {
	a := mkExpr(1, 2)
	b := mkExpr(1, 3)
	assert.True(t, a.Compare(b) < 0)
	assert.True(t, b.Compare(a) > 0)
	assert.Equal(t, 0, a.Compare(a.Clone()))
}

func TestLinExprSupport(t *testing.T) {
	e := mkExpr(0, 5, 0, 7)
	assert.Equal(t, []int{1, 3}, e.Support())
}
