package ndarray

// Array is an N-dimensional array of T: a flat row-major buffer paired with
// a shape. The product of the shape always equals the buffer length.
//
// Arrays are values with exclusive ownership of their buffer. Clone makes a
// deep copy and Move transfers the buffer, so two Arrays never alias.
// Every mutating method validates its arguments first and leaves the
// receiver unchanged when it returns an error.
//
// The zero value is the empty array.
//
// Example:
//
//	a, _ := ndarray.FromSlice([]int{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
//	v, _ := a.At(1, 2) // 6
type Array[T Element] struct {
	data  []T
	shape Shape
}

// Shape returns a copy of the stored shape.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// Dims returns the effective dimensions (see Shape.Dims).
func (a *Array[T]) Dims() Shape {
	return a.shape.Dims()
}

// Rank returns the number of effective dimensions, at least 1.
func (a *Array[T]) Rank() int {
	return a.shape.Rank()
}

// DType returns the runtime data type of the elements.
func (a *Array[T]) DType() DataType {
	return DTypeOf[T]()
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return len(a.data) == 0
}

// Data returns a copy of the flat buffer in row-major order.
func (a *Array[T]) Data() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// Clone returns a deep copy.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{data: a.Data(), shape: a.shape.Clone()}
}

// Move transfers the buffer and shape into a new Array and leaves the
// receiver empty.
func (a *Array[T]) Move() *Array[T] {
	moved := &Array[T]{data: a.data, shape: a.shape}
	a.data = nil
	a.shape = nil
	return moved
}

// SizeAlong returns the size of the array along axis.
func (a *Array[T]) SizeAlong(axis int) (int, error) {
	return a.shape.SizeAlong(axis)
}

// Stride returns the buffer distance between neighbours along axis.
func (a *Array[T]) Stride(axis int) (int, error) {
	return a.shape.Stride(axis)
}

// FlattenIndex converts a coordinate into a buffer offset.
func (a *Array[T]) FlattenIndex(coord ...int) (int, error) {
	return FlattenIndex(coord, a.shape)
}

// ReconstructIndex converts a buffer offset into a coordinate.
func (a *Array[T]) ReconstructIndex(offset int) ([]int, error) {
	return ReconstructIndex(offset, a.shape)
}

// At returns the element at the given coordinate.
func (a *Array[T]) At(coord ...int) (T, error) {
	offset, err := FlattenIndex(coord, a.shape)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[offset], nil
}

// Set writes value at the given coordinate.
func (a *Array[T]) Set(value T, coord ...int) error {
	offset, err := FlattenIndex(coord, a.shape)
	if err != nil {
		return err
	}
	a.data[offset] = value
	return nil
}

// AtFlat returns the element at a buffer offset.
func (a *Array[T]) AtFlat(offset int) (T, error) {
	if err := a.checkOffset("atFlat", offset); err != nil {
		var zero T
		return zero, err
	}
	return a.data[offset], nil
}

// SetFlat writes value at a buffer offset.
func (a *Array[T]) SetFlat(offset int, value T) error {
	if err := a.checkOffset("setFlat", offset); err != nil {
		return err
	}
	a.data[offset] = value
	return nil
}

func (a *Array[T]) checkOffset(op string, offset int) error {
	if offset < 0 || offset >= len(a.data) {
		return errorf(op, ErrIndexOutOfRange, "offset %d out of range for %d elements", offset, len(a.data))
	}
	return nil
}

// Select returns the elements where mask is true, in row-major order,
// as a rank-1 array. The mask must have the same shape as the array.
func (a *Array[T]) Select(mask *Array[bool]) (*Array[T], error) {
	if err := checkOperand("select", "mask", a.shape, mask); err != nil {
		return nil, err
	}
	var out []T
	for i, keep := range mask.data {
		if keep {
			out = append(out, a.data[i])
		}
	}
	return vector(out), nil
}

// Append adds value to the end of a rank-1 array, growing its single
// axis. Appending to the empty array gives shape (1, 1).
func (a *Array[T]) Append(value T) error {
	if a.IsEmpty() {
		a.data = []T{value}
		a.shape = Shape{1, 1}
		return nil
	}
	if a.Rank() != 1 {
		return errorf("append", ErrDimensionMismatch, "append requires rank 1, got shape %v", a.shape)
	}
	a.data = append(a.data, value)
	a.shape = a.shape.withDims(Shape{len(a.data)})
	return nil
}

// AppendArray adds the elements of the rank-1 array other to the end of
// the rank-1 receiver.
func (a *Array[T]) AppendArray(other *Array[T]) error {
	if !a.IsEmpty() && a.Rank() != 1 {
		return errorf("appendArray", ErrDimensionMismatch, "receiver must have rank 1, got shape %v", a.shape)
	}
	if !other.IsEmpty() && other.Rank() != 1 {
		return errorf("appendArray", ErrDimensionMismatch, "argument must have rank 1, got shape %v", other.shape)
	}
	return a.join("appendArray", other, 0, -1)
}

// Equal reports whether both arrays have the same effective dimensions and
// the same element sequence.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if !a.shape.EqualDims(other.shape) || len(a.data) != len(other.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// IsPermutationOf reports whether both arrays hold the same multiset of
// elements, regardless of shape and order.
func (a *Array[T]) IsPermutationOf(other *Array[T]) bool {
	if len(a.data) != len(other.data) {
		return false
	}
	counts := make(map[T]int, len(a.data))
	for _, v := range a.data {
		counts[v]++
	}
	for _, v := range other.data {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// Reduce folds op over every element in row-major order, starting at init.
func (a *Array[T]) Reduce(init T, op func(acc, x T) T) T {
	acc := init
	for _, v := range a.data {
		acc = op(acc, v)
	}
	return acc
}

// vector wraps data in a rank-1 array of shape (1, n), or the empty array.
func vector[T Element](data []T) *Array[T] {
	if len(data) == 0 {
		return &Array[T]{}
	}
	return &Array[T]{data: data, shape: Shape{1, len(data)}}
}

// sameShape fails with ErrDimensionMismatch unless both shapes have equal
// effective dimensions.
// checkOperand is sameShape against other's shape, rejecting a nil other.
func checkOperand[U Element](op, name string, s Shape, other *Array[U]) error {
	if other == nil {
		return errorf(op, ErrDimensionMismatch, "%s is nil", name)
	}
	return sameShape(op, s, other.shape)
}

func sameShape(op string, a, b Shape) error {
	if !a.EqualDims(b) {
		return errorf(op, ErrDimensionMismatch, "shapes %v and %v differ", a, b)
	}
	return nil
}
