package poly

import (
	"testing"

	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// growingBox returns the box [0, hi] in one dimension.
func growingBox(t *testing.T, hi int64, topol topology.Topology) *Poly {
	t.Helper()
	p := NewUniverse(1, topol)
	require.NoError(t, p.AddCon(nonstrictCon(t, unitCoeff(1, 0, 1), numeric.ZeroZ(), topol)))
	require.NoError(t, p.AddCon(nonstrictCon(t, unitCoeff(1, 0, -1), numeric.NewZ(hi), topol)))
	return p
}

func TestH79WideningDropsBoundNotSatisfiedByY(t *testing.T) {
	x := growingBox(t, 1, topology.Closed)
	y := growingBox(t, 2, topology.Closed)

	w := H79Widening(x, y)
	// the upper bound x<=1 is not satisfied by y, so it must not survive;
	// the lower bound x>=0 is satisfied by both and must survive.
	hi := w.MaxBound(unitCoeff(1, 0, 1), numeric.ZeroZ())
	assert.True(t, hi.Unbounded)
	lo := w.MinBound(unitCoeff(1, 0, 1), numeric.ZeroZ())
	require.False(t, lo.Unbounded)
	assert.Equal(t, "0", lo.Value.String())
}

func TestRiskyWidenStabilizesOnEqualInputs(t *testing.T) {
	x := growingBox(t, 1, topology.Closed)
	y := x.Clone()
	w := RiskyWiden(x, y, H79)
	equal, err := w.Equals(x)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestSafeWidenFallsBackToJoinWhenAffineDimIncreases(t *testing.T) {
	x := NewUniverse(1, topology.Closed)
	require.NoError(t, x.AddCon(nonstrictCon(t, unitCoeff(1, 0, 1), numeric.ZeroZ(), topology.Closed)))
	require.NoError(t, x.AddCon(nonstrictCon(t, unitCoeff(1, 0, -1), numeric.ZeroZ(), topology.Closed)))
	// x is the single point {0}; y strictly grows its affine dimension.
	y := growingBox(t, 2, topology.Closed)

	join := x.Clone()
	require.NoError(t, join.JoinAssign(y.Clone()))

	w := SafeWiden(x.Clone(), y.Clone(), H79)
	equal, err := w.Equals(join)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestReaddUptoRestoresConstraintValidInX(t *testing.T) {
	x := growingBox(t, 1, topology.Closed)
	y := growingBox(t, 2, topology.Closed)
	upto := x.ConsSystem().Skeletal

	w := H79Widening(x.Clone(), y.Clone())
	require.NoError(t, ReaddUpto(w, x, upto))

	hi := w.MaxBound(unitCoeff(1, 0, 1), numeric.ZeroZ())
	require.False(t, hi.Unbounded)
	assert.Equal(t, "1", hi.Value.String())
}
