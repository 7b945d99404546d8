package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetBasics(t *testing.T) {
	s := New(130)
	assert.True(t, s.IsEmpty())
	s.Set(0)
	s.Set(63)
	s.Set(64)
	s.Set(129)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 4, s.PopCount())
	assert.True(t, s.Test(63))
	assert.False(t, s.Test(62))

	s.Clear(63)
	assert.False(t, s.Test(63))
	assert.Equal(t, 3, s.PopCount())
}

func TestSetItemsAndNext(t *testing.T) {
	s := FromItems(10, 2, 5, 9)
	assert.Equal(t, []int{2, 5, 9}, s.Items())

	i, ok := s.Next(3)
	assert.True(t, ok)
	assert.Equal(t, 5, i)

	_, ok = s.Next(10)
	assert.False(t, ok)
}

func TestSetOrAndAndNot(t *testing.T) {
	a := FromItems(8, 0, 1, 2)
	b := FromItems(8, 1, 2, 3)

	u := Union(a, b)
	assert.Equal(t, []int{0, 1, 2, 3}, u.Items())

	i := Intersection(a, b)
	assert.Equal(t, []int{1, 2}, i.Items())

	c := a.Clone()
	c.AndNot(b)
	assert.Equal(t, []int{0}, c.Items())
}

func TestSetSubsetAndIntersects(t *testing.T) {
	a := FromItems(8, 1, 2)
	b := FromItems(8, 1, 2, 3)
	assert.True(t, a.SubsetOf(b))
	assert.False(t, b.SubsetOf(a))
	assert.True(t, a.Intersects(b))

	c := FromItems(8, 5, 6)
	assert.False(t, a.Intersects(c))
}

func TestSetGrow(t *testing.T) {
	s := FromItems(4, 1, 3)
	s.Grow(100)
	assert.Equal(t, 100, s.Len())
	assert.Equal(t, []int{1, 3}, s.Items())
	s.Set(90)
	assert.True(t, s.Test(90))
}

func TestSetEqual(t *testing.T) {
	a := FromItems(8, 1, 2)
	b := FromItems(8, 1, 2)
	c := FromItems(8, 1, 3)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
