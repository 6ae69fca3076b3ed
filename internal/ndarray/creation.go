package ndarray

import "math"

// Full creates an array of the given shape with every element set to value.
func Full[T Element](shape Shape, value T) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]T, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return &Array[T]{data: data, shape: shape.Clone()}, nil
}

// Zeros creates an array of the given shape filled with the zero value of T.
func Zeros[T Element](shape Shape) (*Array[T], error) {
	var zero T
	return Full(shape, zero)
}

// Ones creates an array of the given shape filled with 1.
func Ones[T Number](shape Shape) (*Array[T], error) {
	return Full(shape, T(1))
}

// FromSlice creates an array from flat row-major content and a shape.
// The content is copied.
func FromSlice[T Element](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, errorf("fromSlice", ErrShapeMismatch,
			"shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	out := make([]T, len(data))
	copy(out, data)
	return &Array[T]{data: out, shape: shape.Clone()}, nil
}

// FromValues creates a rank-1 array of shape (1, n) from its arguments.
// Without arguments it returns the empty array.
func FromValues[T Element](values ...T) *Array[T] {
	data := make([]T, len(values))
	copy(data, values)
	return vector(data)
}

// Arange returns the values start, start+step, ... up to but excluding end.
// step must be non-zero and point from start towards end. All three must
// be finite.
func Arange[T Number](start, end, step T) (*Array[T], error) {
	fs, fe, fstep := float64(start), float64(end), float64(step)
	for _, v := range []float64{fs, fe, fstep} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errorf("arange", ErrInvalidShape, "non-finite bound or step in (%v, %v, %v)", start, end, step)
		}
	}
	if fstep == 0 || (fe-fs)*fstep < 0 {
		return nil, errorf("arange", ErrInvalidShape, "step %v does not lead from %v to %v", step, start, end)
	}
	count := math.Ceil((fe - fs) / fstep)
	if math.IsNaN(count) || math.IsInf(count, 0) || count > math.MaxInt32 {
		return nil, errorf("arange", ErrInvalidShape, "cannot count values from %v to %v by %v", start, end, step)
	}
	n := int(count)
	data := make([]T, n)
	for i := range data {
		data[i] = start + T(i)*step
	}
	return vector(data), nil
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace[T Float](start, end T, n int) (*Array[T], error) {
	if n < 2 {
		return nil, errorf("linspace", ErrInvalidShape, "need at least 2 points, got %d", n)
	}
	data := make([]T, n)
	step := (end - start) / T(n-1)
	for i := range data {
		data[i] = start + T(i)*step
	}
	data[n-1] = end
	return vector(data), nil
}
