package ndarray

// Find returns the coordinates of every true element of mask, in row-major
// order. The mask must have the same shape as the array.
func (a *Array[T]) Find(mask *Array[bool]) ([][]int, error) {
	if err := checkOperand("find", "mask", a.shape, mask); err != nil {
		return nil, err
	}
	return a.coordsWhere(func(i int) bool { return mask.data[i] }), nil
}

// FindWhere returns the coordinates of every element satisfying pred, in
// row-major order.
func (a *Array[T]) FindWhere(pred func(T) bool) [][]int {
	return a.coordsWhere(func(i int) bool { return pred(a.data[i]) })
}

func (a *Array[T]) coordsWhere(match func(offset int) bool) [][]int {
	strides := a.shape.Dims().ComputeStrides()
	var coords [][]int
	for i := range a.data {
		if match(i) {
			coords = append(coords, unflatten(i, strides))
		}
	}
	return coords
}

// Min returns the smallest element.
func Min[T Number](a *Array[T]) (T, error) {
	i, err := ArgMin(a)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// Max returns the largest element.
func Max[T Number](a *Array[T]) (T, error) {
	i, err := ArgMax(a)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// ArgMin returns the offset of the first occurrence of the smallest element.
func ArgMin[T Number](a *Array[T]) (int, error) {
	return extremum("argMin", a, func(x, best T) bool { return x < best })
}

// ArgMax returns the offset of the first occurrence of the largest element.
func ArgMax[T Number](a *Array[T]) (int, error) {
	return extremum("argMax", a, func(x, best T) bool { return x > best })
}

func extremum[T Number](op string, a *Array[T], better func(x, best T) bool) (int, error) {
	if a.IsEmpty() {
		return 0, errorf(op, ErrEmptyArray, "no elements")
	}
	best := 0
	for i, v := range a.data {
		if better(v, a.data[best]) {
			best = i
		}
	}
	return best, nil
}
