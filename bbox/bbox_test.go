package bbox

import (
	"testing"

	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/shapes"
	"github.com/polydd/polydd/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func q(n int64) numeric.Q { return numeric.NewQFromZ(numeric.NewZ(n)) }

func TestFromPolyBoundsUnitBox(t *testing.T) {
	p, err := shapes.UnitBox(2, topology.Closed)
	require.NoError(t, err)
	box := FromPoly(p)
	assert.Equal(t, 2, box.SpaceDim())
	assert.Equal(t, 0, box.NumUnbounded())
	_, vol := box.PseudoVolume()
	assert.Equal(t, "1", vol.String())
}

func TestFromPolyReportsUnboundedAxes(t *testing.T) {
	u := shapes.Universe(2, topology.Closed)
	box := FromPoly(u)
	assert.Equal(t, 2, box.NumUnbounded())
}

func TestBPolyContainsShortCircuitsOnBBox(t *testing.T) {
	outer, err := shapes.UnitBox(1, topology.Closed)
	require.NoError(t, err)
	far, err := shapes.Box([]numeric.Q{q(10)}, []numeric.Q{q(20)}, topology.Closed)
	require.NoError(t, err)

	bpOuter := NewBPoly(outer)
	bpFar := NewBPoly(far)

	contains, err := bpOuter.Contains(bpFar)
	require.NoError(t, err)
	assert.False(t, contains)

	disjoint, err := bpOuter.IsDisjointFrom(bpFar)
	require.NoError(t, err)
	assert.True(t, disjoint)
}

func TestBPolyInvalidateRecomputesBox(t *testing.T) {
	p, err := shapes.UnitBox(1, topology.Closed)
	require.NoError(t, err)
	bp := NewBPoly(p)
	first := bp.EnsureBBox()
	bp.Invalidate()
	second := bp.EnsureBBox()
	assert.True(t, first.Equals(second))
}
