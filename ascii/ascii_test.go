package ascii

import (
	"bytes"
	"testing"

	"github.com/polydd/polydd/shapes"
	"github.com/polydd/polydd/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	orig, err := shapes.Simplex(2, topology.Closed)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, orig))

	reloaded, ok := Load(bytes.NewReader(buf.Bytes()))
	require.True(t, ok)
	assert.Equal(t, orig.SpaceDim(), reloaded.SpaceDim())

	equal, err := orig.Equals(reloaded)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestDumpLoadEmptyPolyhedron(t *testing.T) {
	orig := shapes.Empty(3, topology.NNC)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, orig))

	reloaded, ok := Load(bytes.NewReader(buf.Bytes()))
	require.True(t, ok)
	assert.True(t, reloaded.IsEmpty())
	assert.Equal(t, 3, reloaded.SpaceDim())
}

func TestLoadRejectsMalformedHeader(t *testing.T) {
	_, ok := Load(bytes.NewReader([]byte("NOT A HEADER\n")))
	assert.False(t, ok)
}

func TestLoadRejectsTruncatedInput(t *testing.T) {
	_, ok := Load(bytes.NewReader([]byte("POLY 2 0 1\nCS_SINGULAR 1\n")))
	assert.False(t, ok)
}

func TestLoadRejectsEmptyInput(t *testing.T) {
	_, ok := Load(bytes.NewReader(nil))
	assert.False(t, ok)
}
