// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Type aliases for public API

// Element is a constraint for every type an Array can hold:
// integers, floats and bool.
type Element = ndarray.Element

// Number is a constraint for element types supporting arithmetic and ordering.
type Number = ndarray.Number

// Float is a constraint for floating-point element types.
type Float = ndarray.Float

// Integer is a constraint for integer element types.
type Integer = ndarray.Integer

// DataType represents the runtime element type of an array.
type DataType = ndarray.DataType

// Data type constants.
const (
	Invalid DataType = ndarray.Invalid
	Int     DataType = ndarray.Int
	Int8    DataType = ndarray.Int8
	Int16   DataType = ndarray.Int16
	Int32   DataType = ndarray.Int32
	Int64   DataType = ndarray.Int64
	Uint    DataType = ndarray.Uint
	Uint8   DataType = ndarray.Uint8
	Uint16  DataType = ndarray.Uint16
	Uint32  DataType = ndarray.Uint32
	Uint64  DataType = ndarray.Uint64
	Float32 DataType = ndarray.Float32
	Float64 DataType = ndarray.Float64
	Bool    DataType = ndarray.Bool
)

// Shape represents the stored dimensions of an array.
// Example: Shape{2, 3} is a matrix with 2 rows and 3 columns.
type Shape = ndarray.Shape

// Array is a generic N-dimensional array.
//
// Example:
//
//	a, _ := ndarray.Zeros[float64](ndarray.Shape{3, 3})
//	_ = a.Concatenate(ndarray.FromValues(1.0, 2.0, 3.0), 0) // (4, 3)
type Array[T Element] = ndarray.Array[T]

// Error describes a rejected operation: its name, the error kind and the
// conflicting shapes, axis or index.
type Error = ndarray.Error

// Error kinds, matched with errors.Is.
var (
	ErrDimensionMismatch  = ndarray.ErrDimensionMismatch
	ErrShapeMismatch      = ndarray.ErrShapeMismatch
	ErrIndexOutOfRange    = ndarray.ErrIndexOutOfRange
	ErrInvalidPermutation = ndarray.ErrInvalidPermutation
	ErrDivisionByZero     = ndarray.ErrDivisionByZero
	ErrInvalidShape       = ndarray.ErrInvalidShape
	ErrEmptyArray         = ndarray.ErrEmptyArray
)

// DTypeOf returns the DataType of T.
func DTypeOf[T Element]() DataType {
	return ndarray.DTypeOf[T]()
}

// ParseDataType returns the DataType named name, or Invalid.
func ParseDataType(name string) DataType {
	return ndarray.ParseDataType(name)
}

// FlattenIndex converts a coordinate into a buffer offset for shape.
func FlattenIndex(coord []int, shape Shape) (int, error) {
	return ndarray.FlattenIndex(coord, shape)
}

// ReconstructIndex converts a buffer offset into a coordinate for shape.
func ReconstructIndex(offset int, shape Shape) ([]int, error) {
	return ndarray.ReconstructIndex(offset, shape)
}

// Creation functions

// Full creates an array of the given shape filled with value.
func Full[T Element](shape Shape, value T) (*Array[T], error) {
	return ndarray.Full(shape, value)
}

// Zeros creates an array of the given shape filled with zero values.
func Zeros[T Element](shape Shape) (*Array[T], error) {
	return ndarray.Zeros[T](shape)
}

// Ones creates an array of the given shape filled with 1.
func Ones[T Number](shape Shape) (*Array[T], error) {
	return ndarray.Ones[T](shape)
}

// FromSlice creates an array from row-major content; len(data) must equal
// the product of shape.
//
// Example:
//
//	a, err := ndarray.FromSlice([]float32{1, 2, 3, 4}, ndarray.Shape{2, 2})
func FromSlice[T Element](data []T, shape Shape) (*Array[T], error) {
	return ndarray.FromSlice(data, shape)
}

// FromValues creates a (1, n) array from its arguments.
func FromValues[T Element](values ...T) *Array[T] {
	return ndarray.FromValues(values...)
}

// Arange returns start, start+step, ... excluding end.
func Arange[T Number](start, end, step T) (*Array[T], error) {
	return ndarray.Arange(start, end, step)
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace[T Float](start, end T, n int) (*Array[T], error) {
	return ndarray.Linspace(start, end, n)
}
