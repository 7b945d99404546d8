package upoly

import (
	"testing"

	"github.com/polydd/polydd/linexpr"
	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/rowsys"
	"github.com/polydd/polydd/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUniverseLeavesEveryDimFree(t *testing.T) {
	u := NewUniverse(3, topology.Closed)
	assert.False(t, u.IsEmpty())
	for _, k := range u.Info() {
		assert.Equal(t, NotADim, k)
	}
	assert.Equal(t, 0, u.Kernel().SpaceDim())
}

func TestAddConKernelizesOnlyMentionedDims(t *testing.T) {
	u := NewUniverse(3, topology.Closed)
	e := linexpr.New(3)
	e.SetCoeff(1, numeric.OneZ())
	c, err := rowsys.NewCon(e, numeric.ZeroZ(), rowsys.Nonstrict, topology.Closed)
	require.NoError(t, err)
	require.NoError(t, u.AddCon(c))

	assert.Equal(t, NotADim, u.Info()[0])
	assert.NotEqual(t, NotADim, u.Info()[1])
	assert.Equal(t, NotADim, u.Info()[2])
	assert.Equal(t, 1, u.Kernel().SpaceDim())
}

func TestToPolyPreservesFreeDims(t *testing.T) {
	u := NewUniverse(2, topology.Closed)
	e := linexpr.New(2)
	e.SetCoeff(0, numeric.OneZ())
	c, err := rowsys.NewCon(e, numeric.ZeroZ(), rowsys.Nonstrict, topology.Closed)
	require.NoError(t, err)
	require.NoError(t, u.AddCon(c))

	p := u.ToPoly()
	assert.Equal(t, 2, p.SpaceDim())
	assert.False(t, p.IsEmpty())
}
