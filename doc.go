// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides generic N-dimensional arrays with strided
// indexing, axis-wise transformations, reductions, searching, sorting and
// reshaping.
//
// # Overview
//
// An Array[T] pairs a flat row-major buffer with a Shape. This package provides:
//   - Construction from a fill value, flat content or a range
//   - Bounds-checked coordinate and flat-offset access
//   - Elementwise arithmetic, comparison and logical operators
//   - Axis operations: Extract, ReduceAlongAxis, Sort, ArgSort, Reverse, Roll, AdjacentDifference
//   - Shape operations: Transpose, Reshape, Flatten, Concatenate, Insert
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray"
//
//	func main() {
//	    a, _ := ndarray.FromSlice([]int{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
//	    _ = a.Transpose()                         // (3, 2)
//	    sums, _ := a.ReduceAlongAxis(0, 0, ndarray.Plus[int])
//	    fmt.Println(sums)                         // [6, 15]
//	}
//
// # Rank
//
// Size-1 entries of a shape do not count as axes: (1, 3) and (3, 1) are both
// rank-1 vectors and (2, 1, 3) is a rank-2 matrix. Axis arguments and
// coordinates always address the dimensions that are not 1, in order.
// A shape made only of 1s still has rank 1.
//
// # Errors
//
// Operations return an error wrapping one of the Err* kinds and never
// panic on bad arguments. A mutating method that fails leaves its
// receiver unchanged.
//
//	if err := a.Reshape(ndarray.Shape{4, 4}); errors.Is(err, ndarray.ErrShapeMismatch) {
//	    // handle
//	}
//
// # Ownership
//
// Arrays never share buffers. Clone duplicates, Move transfers and leaves
// the source empty, and Data returns a copy.
package ndarray
