package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	data := []int{3, 1, 2, 9, 7, 8, 6, 5, 4}

	t.Run("along rows", func(t *testing.T) {
		a := mustFromSlice(t, data, Shape{3, 3})
		require.NoError(t, Sort(a, 1))
		assert.Equal(t, []int{1, 2, 3, 7, 8, 9, 4, 5, 6}, a.Data())
	})

	t.Run("along columns", func(t *testing.T) {
		a := mustFromSlice(t, data, Shape{3, 3})
		require.NoError(t, Sort(a, 0))
		assert.Equal(t, []int{3, 1, 2, 6, 5, 4, 9, 7, 8}, a.Data())
	})

	t.Run("idempotent", func(t *testing.T) {
		a := mustFromSlice(t, seq(24), Shape{2, 3, 4})
		require.NoError(t, a.Reverse(2))
		require.NoError(t, a.Roll(1, 1))
		for axis := 0; axis < 3; axis++ {
			require.NoError(t, Sort(a, axis))
			once := a.Clone()
			require.NoError(t, Sort(a, axis))
			assert.True(t, once.Equal(a), "axis %d", axis)
		}
	})

	t.Run("invalid axis leaves array unchanged", func(t *testing.T) {
		a := mustFromSlice(t, data, Shape{3, 3})
		assert.ErrorIs(t, Sort(a, 2), ErrIndexOutOfRange)
		assert.Equal(t, data, a.Data())
	})
}

func TestSortFunc(t *testing.T) {
	a := FromValues(1, 3, 2)
	require.NoError(t, a.SortFunc(0, func(x, y int) int { return y - x }))
	assert.Equal(t, []int{3, 2, 1}, a.Data())
}

func TestSortFlat(t *testing.T) {
	a := mustFromSlice(t, []float64{4, -1, 3, 0}, Shape{2, 2})
	SortFlat(a)
	assert.Equal(t, []float64{-1, 0, 3, 4}, a.Data())
	assert.Equal(t, Shape{2, 2}, a.Shape())
}

func TestArgSort(t *testing.T) {
	got, err := ArgSort(FromValues(3, 1, 2, 1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2, 0}, got.Data())

	m := mustFromSlice(t, []int{3, 1, 2, 9, 7, 8}, Shape{2, 3})
	got, err = ArgSort(m, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 1, 2, 0}, got.Data())
	assert.Equal(t, Shape{2, 3}, got.Shape())

	got, err = ArgSort(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, got.Data())
}

func TestArgSortMatchesSortedLanes(t *testing.T) {
	a := mustFromSlice(t, []int{5, 2, 9, 1, 5, 3, 8, 2, 7, 7, 0, 4}, Shape{2, 2, 3})

	for axis := 0; axis < 3; axis++ {
		order, err := ArgSort(a, axis)
		require.NoError(t, err)
		sorted := a.Clone()
		require.NoError(t, Sort(sorted, axis))

		dims := a.Dims()
		nonAxis := make([]int, len(dims)-1)
		for {
			lane, err := a.Lane(axis, nonAxis)
			require.NoError(t, err)
			idx, err := order.Lane(axis, nonAxis)
			require.NoError(t, err)
			want, err := sorted.Lane(axis, nonAxis)
			require.NoError(t, err)

			values := lane.Data()
			got := make([]int, 0, len(values))
			for _, i := range idx.Data() {
				got = append(got, values[i])
			}
			assert.Equal(t, want.Data(), got, "axis %d lane %v", axis, nonAxis)

			if !a.shape.AdvanceNonAxis(nonAxis, axis) {
				break
			}
		}
	}
}
