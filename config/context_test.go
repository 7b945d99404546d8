package config

import (
	"testing"

	"github.com/polydd/polydd/topology"
	"github.com/stretchr/testify/assert"
)

func TestNewAppliesSpecDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, topology.NNC, c.DefaultTopology)
	assert.Equal(t, PolyKind, c.DefaultKind)
	assert.Equal(t, WidenH79, c.WidenImpl)
	assert.Equal(t, WidenRisky, c.WidenSpec)
	assert.Equal(t, 30, c.RemoveSpaceDimsPercentage)
}

func TestOptionsOverrideDefaults(t *testing.T) {
	c := New(
		WithDefaultTopology(topology.Closed),
		WithDefaultKind(FPolyKind),
		WithWidenImpl(WidenBHRZ03),
		WithWidenSpec(WidenSafe),
	)
	assert.Equal(t, topology.Closed, c.DefaultTopology)
	assert.Equal(t, FPolyKind, c.DefaultKind)
	assert.Equal(t, WidenBHRZ03, c.WidenImpl)
	assert.Equal(t, WidenSafe, c.WidenSpec)
}

func TestRemoveSpaceDimsPercentageClamps(t *testing.T) {
	assert.Equal(t, 0, New(WithRemoveSpaceDimsPercentage(-5)).RemoveSpaceDimsPercentage)
	assert.Equal(t, 100, New(WithRemoveSpaceDimsPercentage(500)).RemoveSpaceDimsPercentage)
	assert.Equal(t, 42, New(WithRemoveSpaceDimsPercentage(42)).RemoveSpaceDimsPercentage)
}

func TestNameToKindIsCaseSensitiveAndExhaustive(t *testing.T) {
	k, ok := NameToKind("F_Poly")
	assert.True(t, ok)
	assert.Equal(t, FPolyKind, k)

	_, ok = NameToKind("f_poly")
	assert.False(t, ok)

	_, ok = NameToKind("NoSuchKind")
	assert.False(t, ok)
}

func TestDefaultSetDefaultRoundTrips(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	SetDefault(New(WithDefaultKind(BPolyKind)))
	assert.Equal(t, BPolyKind, Default().DefaultKind)
}
