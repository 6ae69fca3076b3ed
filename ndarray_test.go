// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray"
)

func TestPublicCreation(t *testing.T) {
	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, a.Rank())
	assert.Equal(t, ndarray.Float64, a.DType())

	_, err = ndarray.FromSlice([]int{1, 2, 3}, ndarray.Shape{2, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ndarray.ErrShapeMismatch))

	var e *ndarray.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "fromSlice", e.Op)
}

func TestPublicReducers(t *testing.T) {
	a, err := ndarray.FromSlice([]int{3, 5, 3, 6, 7, 5, 3, 4, 7}, ndarray.Shape{3, 3})
	require.NoError(t, err)

	sums, err := a.ReduceAlongAxis(1, 0, ndarray.Plus[int])
	require.NoError(t, err)
	assert.Equal(t, []int{11, 18, 14}, sums.Data())

	prods, err := a.ReduceAlongAxis(0, 1, ndarray.Times[int])
	require.NoError(t, err)
	assert.Equal(t, []int{54, 140, 105}, prods.Data())

	lo, err := a.ReduceAlongAxis(1, 100, ndarray.Lesser[int])
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 3}, lo.Data())

	hi, err := a.ReduceAlongAxis(1, -100, ndarray.Greater[int])
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7, 7}, hi.Data())
}

func TestPublicPipeline(t *testing.T) {
	a, err := ndarray.Arange(0, 12, 1)
	require.NoError(t, err)
	require.NoError(t, a.Reshape(ndarray.Shape{2, 2, 3}))
	require.NoError(t, a.Transpose(2, 0, 1))
	assert.Equal(t, ndarray.Shape{3, 2, 2}, a.Shape())

	mask := ndarray.GtScalar(a, 8)
	coords, err := a.Find(mask)
	require.NoError(t, err)
	assert.Len(t, coords, 3)

	_, err = ndarray.Div(a, a)
	assert.ErrorIs(t, err, ndarray.ErrDivisionByZero)

	doubled := ndarray.MulScalar(a, 2)
	total := ndarray.Sum(doubled)
	assert.Equal(t, 132, total)
}
