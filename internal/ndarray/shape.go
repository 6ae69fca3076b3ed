package ndarray

import (
	"strconv"
	"strings"
)

// Shape represents the stored dimensions of an array, row-major
// (the last dimension varies fastest).
//
// Size-1 entries are kept in the stored shape but do not count as axes:
// every axis argument and every coordinate addresses the effective
// dimensions returned by Dims.
type Shape []int

// NumElements returns the number of elements described by the shape.
// The empty shape describes the empty array and holds no elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape is non-empty and every dimension is > 0.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return errorf("shape", ErrInvalidShape, "shape has no dimensions")
	}
	for i, dim := range s {
		if dim <= 0 {
			return errorf("shape", ErrInvalidShape, "dimension %d of %v is %d (must be > 0)", i, s, dim)
		}
	}
	return nil
}

// Equal checks if two stored shapes are identical.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides over the entries of s.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Rank returns the number of entries that are not 1, floored at 1.
func (s Shape) Rank() int {
	rank := 0
	for _, dim := range s {
		if dim != 1 {
			rank++
		}
	}
	return max(rank, 1)
}

// Dims returns the effective dimensions: the stored entries that are not 1.
// A fully-degenerate shape such as (1, 1) has the single dimension (1).
// The empty shape has no dimensions.
func (s Shape) Dims() Shape {
	if len(s) == 0 {
		return Shape{}
	}
	dims := make(Shape, 0, len(s))
	for _, dim := range s {
		if dim != 1 {
			dims = append(dims, dim)
		}
	}
	if len(dims) == 0 {
		dims = append(dims, 1)
	}
	return dims
}

// EqualDims reports whether two shapes have the same effective dimensions,
// e.g. (1, 3) and (3, 1) both describe a 3-element vector.
func (s Shape) EqualDims(other Shape) bool {
	return s.Dims().Equal(other.Dims())
}

// positions returns the stored index of every effective axis.
// For a fully-degenerate shape the single axis is the last stored entry.
func (s Shape) positions() []int {
	pos := make([]int, 0, len(s))
	for i, dim := range s {
		if dim != 1 {
			pos = append(pos, i)
		}
	}
	if len(pos) == 0 && len(s) > 0 {
		pos = append(pos, len(s)-1)
	}
	return pos
}

// withDims writes dims into the stored positions of the effective axes of s,
// keeping size-1 entries where they are. When dims does not line up with
// the axes of s, dims itself becomes the stored shape.
func (s Shape) withDims(dims Shape) Shape {
	pos := s.positions()
	if len(pos) != len(dims) {
		return dims.Clone()
	}
	out := s.Clone()
	for k, p := range pos {
		out[p] = dims[k]
	}
	return out
}

// SizeAlong returns the size of the effective axis.
func (s Shape) SizeAlong(axis int) (int, error) {
	dims := s.Dims()
	if axis < 0 || axis >= len(dims) {
		return 0, errorf("sizeAlong", ErrIndexOutOfRange, "axis %d out of range for rank %d shape %v", axis, s.Rank(), s)
	}
	return dims[axis], nil
}

// Stride returns the number of buffer positions between neighbours along axis:
// the product of the effective sizes of all axes after it.
func (s Shape) Stride(axis int) (int, error) {
	dims := s.Dims()
	if axis < 0 || axis >= len(dims) {
		return 0, errorf("strideOf", ErrIndexOutOfRange, "axis %d out of range for rank %d shape %v", axis, s.Rank(), s)
	}
	stride := 1
	for _, dim := range dims[axis+1:] {
		stride *= dim
	}
	return stride, nil
}

// String renders the shape as "(2, 3)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
