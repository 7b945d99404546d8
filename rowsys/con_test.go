package rowsys

import (
	"testing"

	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func e(vals ...int64) *linexpr.LinExpr {
	c := make([]numeric.Z, len(vals))
	for i, v := range vals {
		c[i] = numeric.NewZ(v)
	}
	return linexpr.FromCoeffs(c)
}

func TestNewConNormalizes(t *testing.T) {
	c, err := NewCon(e(2, 4), numeric.NewZ(6), Nonstrict, topology.Closed)
	require.NoError(t, err)
	assert.Equal(t, "1", c.Expr().Coeff(0).String())
	assert.Equal(t, "2", c.Expr().Coeff(1).String())
	assert.Equal(t, "3", c.Inhomo().String())
}

func TestNewConStrictRejectedInClosed(t *testing.T) {
	_, err := NewCon(e(1), numeric.ZeroZ(), Strict, topology.Closed)
	assert.ErrorIs(t, err, ErrStrictInClosed)
}

func TestConSignConvention(t *testing.T) {
	c, err := NewCon(e(-1, -2), numeric.NewZ(-3), Eq, topology.Closed)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Expr().Coeff(0).Sign())
}

func TestConTautologicalAndInconsistent(t *testing.T) {
	tauto, _ := NewCon(e(0, 0), numeric.NewZ(5), Nonstrict, topology.Closed)
	assert.True(t, tauto.IsTautological())

	incon, _ := NewCon(e(0, 0), numeric.NewZ(-5), Nonstrict, topology.Closed)
	assert.True(t, incon.IsInconsistent())

	eqIncon, _ := NewCon(e(0, 0), numeric.NewZ(1), Eq, topology.Closed)
	assert.True(t, eqIncon.IsInconsistent())
}

func TestConComplement(t *testing.T) {
	c, _ := NewCon(e(1), numeric.ZeroZ(), Nonstrict, topology.NNC)
	comp, ok := c.ComplementCon(topology.NNC)
	require.True(t, ok)
	assert.Equal(t, Strict, comp.Type())
	assert.Equal(t, -1, comp.Expr().Coeff(0).Sign())

	strict, _ := NewCon(e(1), numeric.ZeroZ(), Strict, topology.NNC)
	closedComp, ok := strict.ComplementCon(topology.Closed)
	require.True(t, ok)
	assert.Equal(t, Nonstrict, closedComp.Type())

	eq, _ := NewCon(e(1), numeric.ZeroZ(), Eq, topology.Closed)
	_, ok = eq.ComplementCon(topology.Closed)
	assert.False(t, ok)
}

func TestConScalarProductAndCompare(t *testing.T) {
	c, _ := NewCon(e(1, 1), numeric.ZeroZ(), Nonstrict, topology.Closed)
	sp := c.ScalarProduct(e(2, 3), numeric.OneZ())
	assert.Equal(t, "5", sp.String())

	c2, _ := NewCon(e(1, 1), numeric.ZeroZ(), Nonstrict, topology.Closed)
	assert.True(t, c.Equal(c2))
}
