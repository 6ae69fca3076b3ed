// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package spatial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray"
)

func mustRect[T ndarray.Number](t *testing.T, a, b []T) *Rect[T] {
	t.Helper()
	r, err := NewRect(ndarray.FromValues(a...), ndarray.FromValues(b...))
	require.NoError(t, err)
	return r
}

func TestNewRect(t *testing.T) {
	r := mustRect(t, []float64{4, 0}, []float64{0, 2})
	assert.Equal(t, 2, r.Dim())
	assert.Equal(t, []float64{0, 0}, r.Low().Data())
	assert.Equal(t, []float64{4, 2}, r.High().Data())

	col, err := ndarray.FromSlice([]float64{1, 1}, ndarray.Shape{2, 1})
	require.NoError(t, err)
	fromColumn, err := NewRect(col, ndarray.FromValues(3.0, 5.0))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5}, fromColumn.High().Data())

	_, err = NewRect(ndarray.FromValues(1, 2), ndarray.FromValues(1, 2, 3))
	assert.True(t, errors.Is(err, ndarray.ErrDimensionMismatch))

	m, err := ndarray.Zeros[int](ndarray.Shape{2, 2})
	require.NoError(t, err)
	_, err = NewRect(m, m)
	assert.True(t, errors.Is(err, ndarray.ErrDimensionMismatch))
}

func TestRectContains(t *testing.T) {
	r := mustRect(t, []float64{0, 0}, []float64{10, 5})

	tests := []struct {
		point []float64
		want  bool
	}{
		{[]float64{0, 0}, true},
		{[]float64{9.9, 4.9}, true},
		{[]float64{10, 1}, false},
		{[]float64{5, 5}, false},
		{[]float64{-0.1, 1}, false},
	}
	for _, tt := range tests {
		got, err := r.Contains(ndarray.FromValues(tt.point...))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "point %v", tt.point)
	}

	_, err := r.Contains(ndarray.FromValues(1.0))
	assert.True(t, errors.Is(err, ndarray.ErrDimensionMismatch))
}

func TestRectOneDimension(t *testing.T) {
	r := mustRect(t, []int{2}, []int{6})
	assert.Equal(t, []int{4}, r.Center().Data())

	in, err := r.Contains(ndarray.FromValues(2))
	require.NoError(t, err)
	assert.True(t, in)

	children, err := r.Subdivide()
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, []int{2}, children[0].Low().Data())
	assert.Equal(t, []int{4}, children[0].High().Data())
	assert.Equal(t, []int{4}, children[1].Low().Data())
	assert.Equal(t, []int{6}, children[1].High().Data())
}

func TestRectOverlaps(t *testing.T) {
	a := mustRect(t, []int{0, 0}, []int{4, 4})

	tests := []struct {
		name     string
		low, top []int
		want     bool
	}{
		{"inside", []int{1, 1}, []int{2, 2}, true},
		{"covering", []int{-1, -1}, []int{5, 5}, true},
		{"corner", []int{3, 3}, []int{6, 6}, true},
		{"touching edge", []int{4, 0}, []int{6, 4}, false},
		{"apart", []int{5, 5}, []int{6, 6}, false},
		{"cross", []int{1, -2}, []int{2, 6}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Overlaps(mustRect(t, tt.low, tt.top))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := mustRect(t, []float64{0, 2, -4}, []float64{4, 4, 4})
	assert.Equal(t, []float64{2, 3, 0}, r.Center().Data())
	assert.Equal(t, ndarray.Shape{1, 3}, r.Center().Shape())
}

func TestRectSubdivide(t *testing.T) {
	r := mustRect(t, []float64{0, 0}, []float64{4, 2})
	children, err := r.Subdivide()
	require.NoError(t, err)
	require.Len(t, children, 4)

	want := [][2][]float64{
		{{0, 0}, {2, 1}},
		{{0, 1}, {2, 2}},
		{{2, 0}, {4, 1}},
		{{2, 1}, {4, 2}},
	}
	for i, child := range children {
		assert.Equal(t, want[i][0], child.Low().Data(), "child %d low", i)
		assert.Equal(t, want[i][1], child.High().Data(), "child %d high", i)
	}

	cube := mustRect(t, []float64{0, 0, 0}, []float64{1, 1, 1})
	octants, err := cube.Subdivide()
	require.NoError(t, err)
	assert.Len(t, octants, 8)
}

func TestBinaryTable(t *testing.T) {
	table, err := binaryTable(2)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{4, 2}, table.Shape())
	assert.Equal(t, []int{0, 0, 0, 1, 1, 0, 1, 1}, table.Data())
}
