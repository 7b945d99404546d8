package shapes

import (
	"testing"

	"github.com/polydd/polydd/numeric"
	"github.com/polydd/polydd/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func q(num, den int64) numeric.Q {
	v, err := numeric.NewQ(num, den)
	if err != nil {
		panic(err)
	}
	return v
}

func TestBoxContainsItsCorners(t *testing.T) {
	lo := []numeric.Q{q(0, 1), q(0, 1)}
	hi := []numeric.Q{q(1, 1), q(1, 1)}
	box, err := Box(lo, hi, topology.Closed)
	require.NoError(t, err)
	assert.False(t, box.IsEmpty())

	corner, err := Box(lo, lo, topology.Closed)
	require.NoError(t, err)
	contains, err := box.Contains(corner)
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestBoxRejectsInvertedRange(t *testing.T) {
	lo := []numeric.Q{q(1, 1)}
	hi := []numeric.Q{q(0, 1)}
	_, err := Box(lo, hi, topology.Closed)
	assert.ErrorIs(t, err, ErrEmptyRange)
}

func TestBoxRejectsMismatchedLengths(t *testing.T) {
	_, err := Box([]numeric.Q{q(0, 1)}, []numeric.Q{q(0, 1), q(1, 1)}, topology.Closed)
	assert.ErrorIs(t, err, ErrDimMismatch)
}

func TestSimplexIsNonEmptyAndBounded(t *testing.T) {
	s, err := Simplex(2, topology.Closed)
	require.NoError(t, err)
	assert.False(t, s.IsEmpty())

	origin, err := Box([]numeric.Q{q(0, 1), q(0, 1)}, []numeric.Q{q(0, 1), q(0, 1)}, topology.Closed)
	require.NoError(t, err)
	contains, err := s.Contains(origin)
	require.NoError(t, err)
	assert.True(t, contains)

	outside, err := Box([]numeric.Q{q(2, 1), q(2, 1)}, []numeric.Q{q(2, 1), q(2, 1)}, topology.Closed)
	require.NoError(t, err)
	contains, err = s.Contains(outside)
	require.NoError(t, err)
	assert.False(t, contains)
}

func TestOrthantExcludesNegativePoint(t *testing.T) {
	o, err := Orthant(1, topology.Closed)
	require.NoError(t, err)
	neg, err := Box([]numeric.Q{q(-1, 1)}, []numeric.Q{q(-1, 1)}, topology.Closed)
	require.NoError(t, err)
	contains, err := o.Contains(neg)
	require.NoError(t, err)
	assert.False(t, contains)
}

func TestUniverseContainsEverything(t *testing.T) {
	u := Universe(2, topology.Closed)
	p, err := Box([]numeric.Q{q(-100, 1), q(-100, 1)}, []numeric.Q{q(100, 1), q(100, 1)}, topology.Closed)
	require.NoError(t, err)
	contains, err := u.Contains(p)
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestEmptyIsEmpty(t *testing.T) {
	assert.True(t, Empty(3, topology.NNC).IsEmpty())
}
