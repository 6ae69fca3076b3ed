package ndarray

// Reshape reinterprets the buffer with a new shape holding the same number
// of elements. Elements are not moved.
func (a *Array[T]) Reshape(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if shape.NumElements() != len(a.data) {
		return errorf("reshape", ErrShapeMismatch,
			"cannot reshape %v (%d elements) to %v (%d elements)", a.shape, len(a.data), shape, shape.NumElements())
	}
	a.shape = shape.Clone()
	return nil
}

// Flatten reshapes the array to the single row (1, n).
func (a *Array[T]) Flatten() {
	if a.IsEmpty() {
		return
	}
	a.shape = Shape{1, len(a.data)}
}

// Transpose permutes the axes: the new axis j is the old axis perm[j].
// Without perm the axis order is reversed. On a rank-1 array a call without
// perm swaps row and column form, e.g. (1, n) becomes (n, 1).
//
// Example:
//
//	a, _ := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, Shape{2, 2, 3})
//	_ = a.Transpose(0, 2, 1)
//	// a: [1 4 2 5 3 6 7 10 8 11 9 12], shape (2, 3, 2)
func (a *Array[T]) Transpose(perm ...int) error {
	rank := a.Rank()
	if len(perm) == 0 {
		if rank == 1 {
			shape := a.shape.Clone()
			for i, j := 0, len(shape)-1; i < j; i, j = i+1, j-1 {
				shape[i], shape[j] = shape[j], shape[i]
			}
			a.shape = shape
			return nil
		}
		perm = make([]int, rank)
		for j := range perm {
			perm[j] = rank - 1 - j
		}
	}
	return a.TransposeAxes(perm)
}

// TransposeAxes permutes the axes by perm, which must be a bijection of
// [0, rank). The array must have rank > 1.
func (a *Array[T]) TransposeAxes(perm []int) error {
	dims := a.shape.Dims()
	if len(dims) < 2 {
		return errorf("transpose", ErrDimensionMismatch, "transpose requires rank > 1, got shape %v", a.shape)
	}
	if err := checkPermutation(perm, len(dims)); err != nil {
		return err
	}

	newDims := make(Shape, len(dims))
	for j, p := range perm {
		newDims[j] = dims[p]
	}
	oldStrides := dims.ComputeStrides()
	newStrides := newDims.ComputeStrides()

	out := make([]T, len(a.data))
	for offset, v := range a.data {
		coord := unflatten(offset, oldStrides)
		target := 0
		for j, p := range perm {
			target += coord[p] * newStrides[j]
		}
		out[target] = v
	}
	a.data = out
	a.shape = a.shape.withDims(newDims)
	return nil
}

func checkPermutation(perm []int, rank int) error {
	if len(perm) != rank {
		return errorf("transpose", ErrInvalidPermutation, "permutation %v has %d entries, rank is %d", perm, len(perm), rank)
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return errorf("transpose", ErrInvalidPermutation, "%v is not a permutation of [0, %d)", perm, rank)
		}
		seen[p] = true
	}
	return nil
}

// Concatenate appends other to the end of the array along axis.
// Both must agree on every dimension except axis; an operand with one axis
// fewer is treated as a single slab along axis. Concatenating into the
// empty array copies other.
//
// Example:
//
//	a, _ := Zeros[int](Shape{3, 3})
//	_ = a.Concatenate(FromValues(1, 2, 3), 0)
//	// a: [0 0 0 0 0 0 0 0 0 1 2 3], shape (4, 3)
func (a *Array[T]) Concatenate(other *Array[T], axis int) error {
	return a.join("concatenate", other, axis, -1)
}

// Insert places other before position offset along axis.
// offset must lie in [0, SizeAlong(axis)].
func (a *Array[T]) Insert(other *Array[T], axis, offset int) error {
	if offset < 0 {
		return errorf("insert", ErrIndexOutOfRange, "offset %d is negative", offset)
	}
	return a.join("insert", other, axis, offset)
}

// join splices other into the array along axis at offset (-1 for the end).
// For every block of the leading axes before axis, the first offset
// sub-slabs of the receiver's block come first, then other's block, then
// the rest.
func (a *Array[T]) join(op string, other *Array[T], axis, offset int) error {
	if other.IsEmpty() {
		return nil
	}
	if a.IsEmpty() {
		a.data = other.Data()
		a.shape = other.shape.Clone()
		return nil
	}

	aDims, bDims := a.shape.Dims(), other.shape.Dims()
	layout := a.shape
	if axis < 0 || axis >= max(len(aDims), len(bDims)) {
		return errorf(op, ErrIndexOutOfRange, "axis %d out of range for shapes %v and %v", axis, a.shape, other.shape)
	}
	switch len(bDims) - len(aDims) {
	case 0:
	case -1:
		bDims = insertUnitDim(bDims, axis)
	case 1:
		aDims = insertUnitDim(aDims, axis)
		layout = other.shape
	default:
		return errorf(op, ErrDimensionMismatch, "cannot join shapes %v and %v", a.shape, other.shape)
	}
	for j := range aDims {
		if j != axis && aDims[j] != bDims[j] {
			return errorf(op, ErrDimensionMismatch,
				"shapes %v and %v differ on axis %d (joining along axis %d)", a.shape, other.shape, j, axis)
		}
	}

	size := aDims[axis]
	if offset == -1 {
		offset = size
	}
	if offset > size {
		return errorf(op, ErrIndexOutOfRange, "offset %d out of range for axis %d of size %d", offset, axis, size)
	}

	inner := 1
	for _, dim := range aDims[axis+1:] {
		inner *= dim
	}
	outer := 1
	for _, dim := range aDims[:axis] {
		outer *= dim
	}
	aBlock, bBlock := size*inner, bDims[axis]*inner
	split := offset * inner

	out := make([]T, 0, len(a.data)+len(other.data))
	for o := 0; o < outer; o++ {
		block := a.data[o*aBlock : (o+1)*aBlock]
		out = append(out, block[:split]...)
		out = append(out, other.data[o*bBlock:(o+1)*bBlock]...)
		out = append(out, block[split:]...)
	}

	newDims := aDims.Clone()
	newDims[axis] += bDims[axis]
	a.data = out
	a.shape = layout.withDims(newDims)
	return nil
}

func insertUnitDim(dims Shape, axis int) Shape {
	if axis > len(dims) {
		return dims
	}
	out := make(Shape, 0, len(dims)+1)
	out = append(out, dims[:axis]...)
	out = append(out, 1)
	return append(out, dims[axis:]...)
}
