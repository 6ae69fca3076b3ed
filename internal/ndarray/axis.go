package ndarray

// Axis operations run a 1-D algorithm over every axis-slice: the elements
// obtained by fixing all coordinates except the one along axis. Slices are
// visited in row-major order of their non-axis coordinates.

// checkAxis validates axis against the effective rank.
func (a *Array[T]) checkAxis(op string, axis int) error {
	if a.IsEmpty() {
		return errorf(op, ErrEmptyArray, "axis %d of an empty array", axis)
	}
	if axis < 0 || axis >= a.Rank() {
		return errorf(op, ErrIndexOutOfRange, "axis %d out of range for rank %d shape %v", axis, a.Rank(), a.shape)
	}
	return nil
}

// checkNonAxis validates a non-axis coordinate for axis.
func (a *Array[T]) checkNonAxis(op string, axis int, nonAxis []int) error {
	if err := a.checkAxis(op, axis); err != nil {
		return err
	}
	dims := a.shape.Dims()
	if len(nonAxis) != len(dims)-1 {
		return errorf(op, ErrDimensionMismatch,
			"non-axis coordinate %v has %d components, want %d for shape %v", nonAxis, len(nonAxis), len(dims)-1, a.shape)
	}
	for k, c := range nonAxis {
		j := k
		if k >= axis {
			j++
		}
		if c < 0 || c >= dims[j] {
			return errorf(op, ErrIndexOutOfRange,
				"non-axis coordinate %v: component %d is %d, axis %d has size %d", nonAxis, k, c, j, dims[j])
		}
	}
	return nil
}

// sliceBase returns the offset of the first element of the slice along
// axis selected by nonAxis.
func sliceBase(strides []int, axis int, nonAxis []int) int {
	base := 0
	for k, c := range nonAxis {
		j := k
		if k >= axis {
			j++
		}
		base += c * strides[j]
	}
	return base
}

// forEachSlice calls fn with the running index and the base offset of every
// slice along axis. Elements of a slice sit at base + i*stride.
func (a *Array[T]) forEachSlice(axis int, fn func(k, base int)) {
	dims := a.shape.Dims()
	strides := dims.ComputeStrides()
	nonAxis := make([]int, len(dims)-1)
	for k := 0; ; k++ {
		fn(k, sliceBase(strides, axis, nonAxis))
		if !a.shape.AdvanceNonAxis(nonAxis, axis) {
			return
		}
	}
}

// gather copies n elements starting at base, stride apart.
func (a *Array[T]) gather(base, stride, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = a.data[base+i*stride]
	}
	return out
}

// scatter writes values starting at base, stride apart.
func (a *Array[T]) scatter(base, stride int, values []T) {
	for i, v := range values {
		a.data[base+i*stride] = v
	}
}

// apply replaces every slice along axis with f(slice).
// f must return a slice of the same length.
func (a *Array[T]) apply(axis int, f func(slice []T) []T) {
	size := a.shape.Dims()[axis]
	stride, _ := a.shape.Stride(axis)
	a.forEachSlice(axis, func(_, base int) {
		a.scatter(base, stride, f(a.gather(base, stride, size)))
	})
}

// sliceBounds resolves [start, end) against size. A negative end counts
// from the back and is inclusive: -1 stops after the last element.
func sliceBounds(op string, start, end, size int) (int, int, error) {
	stop := end
	if end < 0 {
		stop = size + end + 1
	}
	if start < 0 || stop > size || start > stop {
		return 0, 0, errorf(op, ErrIndexOutOfRange, "range [%d, %d) invalid for size %d", start, end, size)
	}
	return start, stop, nil
}

// Extract returns the elements of the slice along axis selected by nonAxis,
// from start up to end, as a rank-1 array. A negative end counts from the
// back: end = -1 reaches the last element.
func (a *Array[T]) Extract(axis int, nonAxis []int, start, end int) (*Array[T], error) {
	return a.ExtractWhere(axis, nonAxis, nil, start, end)
}

// Lane returns the whole slice along axis selected by nonAxis.
func (a *Array[T]) Lane(axis int, nonAxis []int) (*Array[T], error) {
	return a.Extract(axis, nonAxis, 0, -1)
}

// ExtractWhere is Extract keeping only the elements for which keep returns
// true. A nil keep keeps everything.
func (a *Array[T]) ExtractWhere(axis int, nonAxis []int, keep func(T) bool, start, end int) (*Array[T], error) {
	if err := a.checkNonAxis("extract", axis, nonAxis); err != nil {
		return nil, err
	}
	size := a.shape.Dims()[axis]
	start, stop, err := sliceBounds("extract", start, end, size)
	if err != nil {
		return nil, err
	}
	strides := a.shape.Dims().ComputeStrides()
	base := sliceBase(strides, axis, nonAxis)
	out := make([]T, 0, stop-start)
	for i := start; i < stop; i++ {
		v := a.data[base+i*strides[axis]]
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return vector(out), nil
}

// ReplaceAlong writes values into the positions Lane(axis, nonAxis) reads.
func (a *Array[T]) ReplaceAlong(axis int, nonAxis []int, values []T) error {
	if err := a.checkNonAxis("replaceAlong", axis, nonAxis); err != nil {
		return err
	}
	strides := a.shape.Dims().ComputeStrides()
	if size := a.shape.Dims()[axis]; len(values) != size {
		return errorf("replaceAlong", ErrDimensionMismatch, "got %d values for axis %d of size %d", len(values), axis, size)
	}
	a.scatter(sliceBase(strides, axis, nonAxis), strides[axis], values)
	return nil
}

// ReduceAlongAxis folds op over every slice along axis, starting from init.
// The result has the shape of the array with axis collapsed to size 1.
//
// Example:
//
//	a, _ := FromSlice([]int{3, 5, 3, 6, 7, 5, 3, 4, 7}, Shape{3, 3})
//	sums, _ := a.ReduceAlongAxis(1, 0, func(acc, x int) int { return acc + x })
//	// sums: [11 18 14], shape (3, 1)
func (a *Array[T]) ReduceAlongAxis(axis int, init T, op func(acc, x T) T) (*Array[T], error) {
	if err := a.checkAxis("reduceAlongAxis", axis); err != nil {
		return nil, err
	}
	size := a.shape.Dims()[axis]
	stride, _ := a.shape.Stride(axis)

	outShape := a.shape.Clone()
	outShape[a.shape.positions()[axis]] = 1
	out := make([]T, outShape.NumElements())

	a.forEachSlice(axis, func(k, base int) {
		acc := init
		for i := 0; i < size; i++ {
			acc = op(acc, a.data[base+i*stride])
		}
		out[k] = acc
	})
	return &Array[T]{data: out, shape: outShape}, nil
}

// Reverse reverses every slice along axis.
func (a *Array[T]) Reverse(axis int) error {
	if err := a.checkAxis("reverse", axis); err != nil {
		return err
	}
	a.apply(axis, func(s []T) []T {
		for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
			s[i], s[j] = s[j], s[i]
		}
		return s
	})
	return nil
}

// Roll rotates every slice along axis by shift positions. A positive shift
// moves elements towards higher indices, wrapping at the end.
func (a *Array[T]) Roll(shift, axis int) error {
	if err := a.checkAxis("roll", axis); err != nil {
		return err
	}
	size := a.shape.Dims()[axis]
	shift = ((shift % size) + size) % size
	if shift == 0 {
		return nil
	}
	a.apply(axis, func(s []T) []T {
		out := make([]T, len(s))
		for i, v := range s {
			out[(i+shift)%len(s)] = v
		}
		return out
	})
	return nil
}

// AdjacentDifference returns the first difference of every slice along
// axis: a[i]-a[i-1] when forward, a[i-1]-a[i] otherwise. The result is one
// element shorter along axis.
func AdjacentDifference[T Number](a *Array[T], axis int, forward bool) (*Array[T], error) {
	if err := a.checkAxis("adjacentDifference", axis); err != nil {
		return nil, err
	}
	size := a.shape.Dims()[axis]
	if size < 2 {
		return nil, errorf("adjacentDifference", ErrDimensionMismatch, "axis %d has size %d, need at least 2", axis, size)
	}
	stride, _ := a.shape.Stride(axis)

	outShape := a.shape.Clone()
	outShape[a.shape.positions()[axis]] = size - 1
	out := make([]T, outShape.NumElements())

	// Slice k of the result starts at (k/stride)*(size-1)*stride + k%stride.
	a.forEachSlice(axis, func(k, base int) {
		outBase := (k/stride)*(size-1)*stride + k%stride
		for i := 1; i < size; i++ {
			prev, cur := a.data[base+(i-1)*stride], a.data[base+i*stride]
			d := cur - prev
			if !forward {
				d = prev - cur
			}
			out[outBase+(i-1)*stride] = d
		}
	})
	return &Array[T]{data: out, shape: outShape}, nil
}
