package absdomain

import (
	"bytes"
	"testing"

	"github.com/polydd/polydd/config"
	"github.com/polydd/polydd/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDomainBuildsEachImplementedKind(t *testing.T) {
	kinds := []Kind{
		config.PolyKind, config.PolyStatsKind,
		config.FPolyKind, config.FPolyStatsKind,
		config.UPolyKind, config.UPolyStatsKind,
		config.BPolyKind, config.BPolyStatsKind,
	}
	for _, k := range kinds {
		dom, err := NewDomain(k, 2, topology.Closed)
		require.NoError(t, err, "kind %s", k)
		assert.Equal(t, 2, dom.SpaceDim())
		assert.False(t, dom.IsEmpty())
		assert.Equal(t, k, dom.Kind())
	}
}

func TestNewDomainRejectsUnimplementedCombinatorKinds(t *testing.T) {
	for _, k := range []Kind{config.UFPolyKind, config.PSetKind, config.FPSetKind} {
		_, err := NewDomain(k, 1, topology.Closed)
		assert.ErrorIs(t, err, ErrKindNotImplemented)
	}
}

func TestNewDomainRejectsUnknownKind(t *testing.T) {
	_, err := NewDomain(Kind("NotAKind"), 1, topology.Closed)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestAsciiDumpNonEmpty(t *testing.T) {
	dom, err := NewDomain(config.PolyKind, 2, topology.Closed)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, dom.AsciiDump(&buf))
	assert.NotEmpty(t, buf.String())
}

func TestStatsPolyRecordsCounters(t *testing.T) {
	dom, err := NewDomain(config.PolyStatsKind, 2, topology.Closed)
	require.NoError(t, err)
	stats, ok := dom.(*StatsPoly)
	require.True(t, ok)

	_ = stats.IsEmpty()
	_ = stats.IsEmpty()
	_ = stats.SpaceDim()

	counters := stats.Counters()
	require.Contains(t, counters, "IsEmpty")
	assert.Equal(t, 2, counters["IsEmpty"].Count)
	require.Contains(t, counters, "SpaceDim")
	assert.Equal(t, 1, counters["SpaceDim"].Count)
}
