package fpoly

import (
	"testing"

	"github.com/polydd/polydd/shapes"
	"github.com/polydd/polydd/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPolyFactorsIndependentBoxDims(t *testing.T) {
	box, err := shapes.UnitBox(2, topology.Closed)
	require.NoError(t, err)
	f := FromPoly(box)
	assert.Equal(t, 2, f.SpaceDim())
	assert.False(t, f.IsEmpty())
	assert.Empty(t, f.Blocks(), "a box's axes have no cross-dim constraints, so every dim demotes to a plain interval")
	assert.Len(t, f.Intervals(), 2)
}

func TestFromPolyEmptyStaysEmpty(t *testing.T) {
	f := FromPoly(shapes.Empty(2, topology.Closed))
	assert.True(t, f.IsEmpty())
}

func TestToPolyRoundTripsContainment(t *testing.T) {
	simplex, err := shapes.Simplex(2, topology.Closed)
	require.NoError(t, err)
	f := FromPoly(simplex)
	back := f.ToPoly()
	equal, err := simplex.Equals(back)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestIntersectionAssignNarrowsBlocks(t *testing.T) {
	a := NewUniverse(2, topology.Closed)
	bBox, err := shapes.UnitBox(2, topology.Closed)
	require.NoError(t, err)
	b := FromPoly(bBox)

	require.NoError(t, a.IntersectionAssign(b))
	contains, err := a.Contains(b)
	require.NoError(t, err)
	assert.True(t, contains)
}
