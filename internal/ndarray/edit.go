package ndarray

// check1D rejects arrays of rank > 1 for element-wise editing.
func (a *Array[T]) check1D(op string) error {
	if !a.IsEmpty() && a.Rank() != 1 {
		return errorf(op, ErrDimensionMismatch, "%s requires rank 1, got shape %v", op, a.shape)
	}
	return nil
}

// resize1D commits a new buffer for a rank-1 array.
func (a *Array[T]) resize1D(data []T) {
	if len(data) == 0 {
		a.data, a.shape = nil, nil
		return
	}
	if a.shape == nil {
		a.shape = Shape{1, 1}
	}
	a.data = data
	a.shape = a.shape.withDims(Shape{len(data)})
}

// Erase removes the element at index i of a rank-1 array.
func (a *Array[T]) Erase(i int) error {
	if err := a.check1D("erase"); err != nil {
		return err
	}
	if i < 0 || i >= len(a.data) {
		return errorf("erase", ErrIndexOutOfRange, "index %d out of range for %d elements", i, len(a.data))
	}
	out := make([]T, 0, len(a.data)-1)
	out = append(out, a.data[:i]...)
	a.resize1D(append(out, a.data[i+1:]...))
	return nil
}

// EraseRange removes the elements [start, end) of a rank-1 array. A
// negative end counts from the back as in Extract.
func (a *Array[T]) EraseRange(start, end int) error {
	if err := a.check1D("eraseRange"); err != nil {
		return err
	}
	start, stop, err := sliceBounds("eraseRange", start, end, len(a.data))
	if err != nil {
		return err
	}
	out := make([]T, 0, len(a.data)-(stop-start))
	out = append(out, a.data[:start]...)
	a.resize1D(append(out, a.data[stop:]...))
	return nil
}

// InsertValue inserts value before index i of a rank-1 array.
// i == Len() appends.
func (a *Array[T]) InsertValue(i int, value T) error {
	if err := a.check1D("insertValue"); err != nil {
		return err
	}
	if i < 0 || i > len(a.data) {
		return errorf("insertValue", ErrIndexOutOfRange, "index %d out of range for %d elements", i, len(a.data))
	}
	out := make([]T, 0, len(a.data)+1)
	out = append(out, a.data[:i]...)
	out = append(out, value)
	a.resize1D(append(out, a.data[i:]...))
	return nil
}

// EraseWhere removes every element where mask is true. The remaining
// elements keep their order and form a rank-1 array.
func (a *Array[T]) EraseWhere(mask *Array[bool]) error {
	if err := checkOperand("eraseWhere", "mask", a.shape, mask); err != nil {
		return err
	}
	a.eraseMatching(func(i int) bool { return mask.data[i] })
	return nil
}

// EraseFunc removes every element satisfying pred, as EraseWhere.
func (a *Array[T]) EraseFunc(pred func(T) bool) {
	a.eraseMatching(func(i int) bool { return pred(a.data[i]) })
}

func (a *Array[T]) eraseMatching(drop func(offset int) bool) {
	var out []T
	for i, v := range a.data {
		if !drop(i) {
			out = append(out, v)
		}
	}
	kept := vector(out)
	a.data, a.shape = kept.data, kept.shape
}

// Blend replaces each element with the element of other at the same
// offset where mask is true.
func (a *Array[T]) Blend(other *Array[T], mask *Array[bool]) error {
	if err := checkOperand("blend", "other", a.shape, other); err != nil {
		return err
	}
	if err := checkOperand("blend", "mask", a.shape, mask); err != nil {
		return err
	}
	for i, take := range mask.data {
		if take {
			a.data[i] = other.data[i]
		}
	}
	return nil
}

// BlendFunc replaces each element x with the element of other at the same
// offset where pred(x) holds.
func (a *Array[T]) BlendFunc(other *Array[T], pred func(T) bool) error {
	if err := checkOperand("blendFunc", "other", a.shape, other); err != nil {
		return err
	}
	for i, v := range a.data {
		if pred(v) {
			a.data[i] = other.data[i]
		}
	}
	return nil
}

// ReplaceFunc sets every element satisfying pred to value.
func (a *Array[T]) ReplaceFunc(pred func(T) bool, value T) {
	for i, v := range a.data {
		if pred(v) {
			a.data[i] = value
		}
	}
}
