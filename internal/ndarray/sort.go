package ndarray

import (
	"cmp"
	"slices"
)

// SortFunc stably sorts every slice along axis using compare, which
// returns a negative number when x sorts before y.
func (a *Array[T]) SortFunc(axis int, compare func(x, y T) int) error {
	if err := a.checkAxis("sort", axis); err != nil {
		return err
	}
	a.apply(axis, func(s []T) []T {
		slices.SortStableFunc(s, compare)
		return s
	})
	return nil
}

// Sort sorts every slice along axis in ascending order.
func Sort[T Number](a *Array[T], axis int) error {
	return a.SortFunc(axis, cmp.Compare[T])
}

// SortFlat sorts the whole buffer ascending, ignoring the shape.
func SortFlat[T Number](a *Array[T]) {
	slices.SortStableFunc(a.data, cmp.Compare[T])
}

// ArgSort returns, for every slice along axis, the original positions of
// its elements in sorted order. Ties keep their original order. The result
// has the shape of a.
func ArgSort[T Number](a *Array[T], axis int) (*Array[int], error) {
	if err := a.checkAxis("argSort", axis); err != nil {
		return nil, err
	}
	size := a.shape.Dims()[axis]
	stride, _ := a.shape.Stride(axis)
	out := &Array[int]{data: make([]int, len(a.data)), shape: a.shape.Clone()}

	a.forEachSlice(axis, func(_, base int) {
		lane := a.gather(base, stride, size)
		order := make([]int, size)
		for i := range order {
			order[i] = i
		}
		slices.SortStableFunc(order, func(i, j int) int {
			return cmp.Compare(lane[i], lane[j])
		})
		out.scatter(base, stride, order)
	})
	return out, nil
}
