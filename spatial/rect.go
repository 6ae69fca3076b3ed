// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package spatial

import (
	"fmt"

	"github.com/born-ml/ndarray"
)

// Rect is an axis-aligned box spanned by two corner points. On every
// dimension it covers [min, max) of the two corner coordinates.
type Rect[T ndarray.Number] struct {
	corners *ndarray.Array[T] // (2, d): one corner per row
	dim     int
}

// NewRect creates the box spanned by two rank-1 points of equal length.
func NewRect[T ndarray.Number](a, b *ndarray.Array[T]) (*Rect[T], error) {
	if a.IsEmpty() || a.Rank() != 1 || b.Rank() != 1 || a.Len() != b.Len() {
		return nil, &ndarray.Error{
			Op:      "newRect",
			Kind:    ndarray.ErrDimensionMismatch,
			Details: fmt.Sprintf("corners %v and %v are not points of equal length", a.Shape(), b.Shape()),
		}
	}
	corners := a.Clone()
	corners.Flatten()
	second := b.Clone()
	second.Flatten()
	if err := corners.Concatenate(second, 0); err != nil {
		return nil, err
	}
	if err := corners.Reshape(ndarray.Shape{2, a.Len()}); err != nil {
		return nil, err
	}
	return &Rect[T]{corners: corners, dim: a.Len()}, nil
}

// Dim returns the number of dimensions.
func (r *Rect[T]) Dim() int {
	return r.dim
}

// interval returns the covered range on dimension j.
func (r *Rect[T]) interval(j int) (lo, hi T) {
	// A one-dimensional box is a (2, 1) vector with no non-axis coordinate.
	side, err := r.corners.Lane(0, []int{j}[:r.corners.Rank()-1])
	if err != nil {
		return lo, hi
	}
	lo, _ = ndarray.Min(side)
	hi, _ = ndarray.Max(side)
	return lo, hi
}

// Low returns the smallest corner as a (1, d) array.
func (r *Rect[T]) Low() *ndarray.Array[T] {
	var out ndarray.Array[T]
	for j := 0; j < r.dim; j++ {
		lo, _ := r.interval(j)
		_ = out.Append(lo)
	}
	return &out
}

// High returns the largest corner as a (1, d) array.
func (r *Rect[T]) High() *ndarray.Array[T] {
	var out ndarray.Array[T]
	for j := 0; j < r.dim; j++ {
		_, hi := r.interval(j)
		_ = out.Append(hi)
	}
	return &out
}

// Center returns the midpoint of the corners as a (1, d) array.
// Integer boxes round towards zero.
func (r *Rect[T]) Center() *ndarray.Array[T] {
	sum, err := r.corners.ReduceAlongAxis(0, 0, ndarray.Plus[T])
	if err != nil {
		return nil
	}
	center, _ := ndarray.DivScalar(sum, 2)
	center.Flatten()
	return center
}

// Contains reports whether point lies inside the box, with the low side
// inclusive and the high side exclusive.
func (r *Rect[T]) Contains(point *ndarray.Array[T]) (bool, error) {
	p := point.Clone()
	p.Flatten()
	above, err := ndarray.Ge(p, r.Low())
	if err != nil {
		return false, err
	}
	below, err := ndarray.Lt(p, r.High())
	if err != nil {
		return false, err
	}
	inside, err := ndarray.And(above, below)
	if err != nil {
		return false, err
	}
	return allTrue(inside), nil
}

// Overlaps reports whether the two boxes share any point.
func (r *Rect[T]) Overlaps(other *Rect[T]) (bool, error) {
	a, err := ndarray.Lt(r.Low(), other.High())
	if err != nil {
		return false, err
	}
	b, err := ndarray.Lt(other.Low(), r.High())
	if err != nil {
		return false, err
	}
	both, err := ndarray.And(a, b)
	if err != nil {
		return false, err
	}
	return allTrue(both), nil
}

// Subdivide splits the box at its center into 2^d children. Child k takes
// the upper half on dimension j when bit d-1-j of k is set.
func (r *Rect[T]) Subdivide() ([]*Rect[T], error) {
	d := r.dim
	levels := r.Low()
	for _, row := range []*ndarray.Array[T]{r.Center(), r.High()} {
		if err := levels.Concatenate(row, 0); err != nil {
			return nil, err
		}
	}
	if err := levels.Reshape(ndarray.Shape{3, d}); err != nil {
		return nil, err
	}

	table, err := binaryTable(d)
	if err != nil {
		return nil, err
	}
	children := make([]*Rect[T], 0, 1<<d)
	for k := 0; k < 1<<d; k++ {
		lows := make([]T, d)
		highs := make([]T, d)
		for j := 0; j < d; j++ {
			bit, _ := table.AtFlat(k*d + j)
			lows[j], _ = levels.AtFlat(bit*d + j)
			highs[j], _ = levels.AtFlat((bit+1)*d + j)
		}
		child, err := NewRect(ndarray.FromValues(lows...), ndarray.FromValues(highs...))
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// String renders the box as its low and high corners.
func (r *Rect[T]) String() string {
	return fmt.Sprintf("Rect(%v, %v)", r.Low(), r.High())
}

// binaryTable returns the (2^d, d) array whose row k holds the bits of k,
// most significant first.
func binaryTable(d int) (*ndarray.Array[int], error) {
	n := 1 << d
	bits := make([]int, 0, n*d)
	for k := 0; k < n; k++ {
		for j := d - 1; j >= 0; j-- {
			bits = append(bits, (k>>j)&1)
		}
	}
	return ndarray.FromSlice(bits, ndarray.Shape{n, d})
}

func allTrue(mask *ndarray.Array[bool]) bool {
	return len(mask.FindWhere(func(b bool) bool { return !b })) == 0
}
