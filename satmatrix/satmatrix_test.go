package satmatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixBasics(t *testing.T) {
	m := New(2, 3)
	m.Set(0, 1)
	m.Set(1, 2)
	assert.True(t, m.Get(0, 1))
	assert.False(t, m.Get(0, 0))
	m.Clear(0, 1)
	assert.False(t, m.Get(0, 1))
}

func TestMatrixAppendRowCol(t *testing.T) {
	m := New(1, 1)
	m.Set(0, 0)
	ri := m.AppendRow()
	m.Set(ri, 0)
	ci := m.AppendCol()
	m.Set(0, ci)
	assert.Equal(t, 2, m.NumRows())
	assert.Equal(t, 2, m.NumCols())
	assert.True(t, m.Get(0, ci))
	assert.True(t, m.Get(ri, 0))
	assert.False(t, m.Get(ri, ci))
}

func TestMatrixTranspose(t *testing.T) {
	m := New(2, 3)
	m.Set(0, 2)
	m.Set(1, 0)
	tr := m.Transpose()
	assert.Equal(t, 3, tr.NumRows())
	assert.Equal(t, 2, tr.NumCols())
	assert.True(t, tr.Get(2, 0))
	assert.True(t, tr.Get(0, 1))
	assert.True(t, m.EqualsTranspose(tr))
}

func TestMatrixRemoveRowsCols(t *testing.T) {
	m := New(3, 3)
	m.Set(0, 0)
	m.Set(1, 1)
	m.Set(2, 2)
	m.RemoveRows(1)
	assert.Equal(t, 2, m.NumRows())
	assert.True(t, m.Get(0, 0))
	assert.True(t, m.Get(1, 2))

	m2 := New(2, 3)
	m2.Set(0, 0)
	m2.Set(1, 2)
	m2.RemoveCols(1)
	assert.Equal(t, 2, m2.NumCols())
	assert.True(t, m2.Get(0, 0))
	assert.True(t, m2.Get(1, 1))
}

func TestMatrixClone(t *testing.T) {
	m := New(1, 1)
	m.Set(0, 0)
	c := m.Clone()
	c.Clear(0, 0)
	assert.True(t, m.Get(0, 0))
	assert.False(t, c.Get(0, 0))
}
