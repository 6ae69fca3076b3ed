package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErase(t *testing.T) {
	a := FromValues(1, 2, 3, 4)
	require.NoError(t, a.Erase(1))
	assert.Equal(t, []int{1, 3, 4}, a.Data())
	assert.Equal(t, Shape{1, 3}, a.Shape())

	assert.ErrorIs(t, a.Erase(3), ErrIndexOutOfRange)

	m := mustFromSlice(t, seq(4), Shape{2, 2})
	assert.ErrorIs(t, m.Erase(0), ErrDimensionMismatch)

	one := FromValues(7)
	require.NoError(t, one.Erase(0))
	assert.True(t, one.IsEmpty())
}

func TestEraseRange(t *testing.T) {
	a := FromValues(1, 2, 3, 4, 5)
	require.NoError(t, a.EraseRange(1, 3))
	assert.Equal(t, []int{1, 4, 5}, a.Data())

	b := FromValues(1, 2, 3, 4, 5)
	require.NoError(t, b.EraseRange(2, -1))
	assert.Equal(t, []int{1, 2}, b.Data())

	assert.ErrorIs(t, b.EraseRange(0, 5), ErrIndexOutOfRange)
	assert.Equal(t, []int{1, 2}, b.Data())
}

func TestInsertValue(t *testing.T) {
	a := FromValues(1, 3)
	require.NoError(t, a.InsertValue(1, 2))
	require.NoError(t, a.InsertValue(3, 4))
	require.NoError(t, a.InsertValue(0, 0))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.Data())

	assert.ErrorIs(t, a.InsertValue(6, 9), ErrIndexOutOfRange)

	var empty Array[int]
	require.NoError(t, empty.InsertValue(0, 5))
	assert.Equal(t, Shape{1, 1}, empty.Shape())
}

func TestEraseWhere(t *testing.T) {
	a := mustFromSlice(t, []int{1, 2, 3, -1, 1, 4}, Shape{2, 3})
	a.EraseFunc(func(x int) bool { return x < 2 || x > 3 })
	assert.Equal(t, []int{2, 3}, a.Data())
	assert.Equal(t, Shape{1, 2}, a.Shape())

	b := mustFromSlice(t, seq(6), Shape{2, 3})
	require.NoError(t, b.EraseWhere(LeScalar(b, 4)))
	assert.Equal(t, []int{5, 6}, b.Data())

	assert.ErrorIs(t, b.EraseWhere(FromValues(true, false, true)), ErrDimensionMismatch)
	assert.Equal(t, []int{5, 6}, b.Data())

	c := FromValues(1, 2)
	c.EraseFunc(func(int) bool { return true })
	assert.True(t, c.IsEmpty())
}

func TestBlend(t *testing.T) {
	a := FromValues(1, 2, 3, 4)
	b := FromValues(10, 20, 30, 40)

	require.NoError(t, a.Blend(b, FromValues(true, false, false, true)))
	assert.Equal(t, []int{10, 2, 3, 40}, a.Data())

	require.NoError(t, a.BlendFunc(b, func(x int) bool { return x < 5 }))
	assert.Equal(t, []int{10, 20, 30, 40}, a.Data())

	assert.ErrorIs(t, a.Blend(FromValues(1), FromValues(true, true, true, true)), ErrDimensionMismatch)
	assert.ErrorIs(t, a.Blend(b, FromValues(true)), ErrDimensionMismatch)
	assert.ErrorIs(t, a.BlendFunc(FromValues(1), func(int) bool { return true }), ErrDimensionMismatch)
}

func TestReplaceFunc(t *testing.T) {
	a := mustFromSlice(t, []float64{-1, 2, -3, 4}, Shape{2, 2})
	a.ReplaceFunc(func(x float64) bool { return x < 0 }, 0)
	assert.Equal(t, []float64{0, 2, 0, 4}, a.Data())
}
