package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZArithmetic(t *testing.T) {
	a := NewZ(12)
	b := NewZ(18)

	assert.Equal(t, "6", a.GCD(b).String())
	assert.Equal(t, "36", a.LCM(b).String())
	assert.Equal(t, "30", a.Add(b).String())
	assert.Equal(t, "-6", a.Sub(b).String())
	assert.True(t, ZeroZ().IsZero())
	assert.Equal(t, 1, OneZ().Sign())
	assert.Equal(t, -1, NewZ(-4).Sign())
}

func TestZQuoExact(t *testing.T) {
	a := NewZ(36)
	b := NewZ(6)
	assert.Equal(t, "6", a.QuoExact(b).String())
}

func TestQArithmetic(t *testing.T) {
	a, err := NewQ(1, 2)
	require.NoError(t, err)
	b, err := NewQ(1, 3)
	require.NoError(t, err)

	assert.Equal(t, "5/6", a.Add(b).String())
	assert.Equal(t, "1/6", a.Sub(b).String())
	assert.Equal(t, "1/6", a.Mul(b).String())

	q, err := a.Quo(b)
	require.NoError(t, err)
	assert.Equal(t, "3/2", q.String())

	_, err = a.Quo(ZeroQ())
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestQMinMax(t *testing.T) {
	a, _ := NewQ(1, 2)
	b, _ := NewQ(2, 3)
	assert.Equal(t, b, Max(a, b))
	assert.Equal(t, a, Min(a, b))
}

func TestNewQDivByZero(t *testing.T) {
	_, err := NewQ(1, 0)
	assert.ErrorIs(t, err, ErrDivByZero)
}
