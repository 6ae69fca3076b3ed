// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Reduction operators for ReduceAlongAxis and Array.Reduce.

// Plus returns acc + x.
func Plus[T Number](acc, x T) T { return acc + x }

// Times returns acc * x.
func Times[T Number](acc, x T) T { return acc * x }

// Lesser returns the smaller of acc and x.
func Lesser[T Number](acc, x T) T { return min(acc, x) }

// Greater returns the larger of acc and x.
func Greater[T Number](acc, x T) T { return max(acc, x) }

// Elementwise arithmetic. Operands must have the same shape.

// Add returns a + b.
func Add[T Number](a, b *Array[T]) (*Array[T], error) { return ndarray.Add(a, b) }

// Sub returns a - b.
func Sub[T Number](a, b *Array[T]) (*Array[T], error) { return ndarray.Sub(a, b) }

// Mul returns a * b.
func Mul[T Number](a, b *Array[T]) (*Array[T], error) { return ndarray.Mul(a, b) }

// Div returns a / b, or ErrDivisionByZero if b holds a zero.
func Div[T Number](a, b *Array[T]) (*Array[T], error) { return ndarray.Div(a, b) }

// AddScalar returns a + s.
func AddScalar[T Number](a *Array[T], s T) *Array[T] { return ndarray.AddScalar(a, s) }

// SubScalar returns a - s.
func SubScalar[T Number](a *Array[T], s T) *Array[T] { return ndarray.SubScalar(a, s) }

// MulScalar returns a * s.
func MulScalar[T Number](a *Array[T], s T) *Array[T] { return ndarray.MulScalar(a, s) }

// DivScalar returns a / s.
func DivScalar[T Number](a *Array[T], s T) (*Array[T], error) { return ndarray.DivScalar(a, s) }

// ScalarSub returns s - a.
func ScalarSub[T Number](s T, a *Array[T]) *Array[T] { return ndarray.ScalarSub(s, a) }

// ScalarDiv returns s / a.
func ScalarDiv[T Number](s T, a *Array[T]) (*Array[T], error) { return ndarray.ScalarDiv(s, a) }

// Comparison and logical operators. Results are bool masks.

// Eq returns the mask a == b.
func Eq[T Element](a, b *Array[T]) (*Array[bool], error) { return ndarray.Eq(a, b) }

// Ne returns the mask a != b.
func Ne[T Element](a, b *Array[T]) (*Array[bool], error) { return ndarray.Ne(a, b) }

// Lt returns the mask a < b.
func Lt[T Number](a, b *Array[T]) (*Array[bool], error) { return ndarray.Lt(a, b) }

// Gt returns the mask a > b.
func Gt[T Number](a, b *Array[T]) (*Array[bool], error) { return ndarray.Gt(a, b) }

// Le returns the mask a <= b.
func Le[T Number](a, b *Array[T]) (*Array[bool], error) { return ndarray.Le(a, b) }

// Ge returns the mask a >= b.
func Ge[T Number](a, b *Array[T]) (*Array[bool], error) { return ndarray.Ge(a, b) }

// EqScalar returns the mask a == s.
func EqScalar[T Element](a *Array[T], s T) *Array[bool] { return ndarray.EqScalar(a, s) }

// NeScalar returns the mask a != s.
func NeScalar[T Element](a *Array[T], s T) *Array[bool] { return ndarray.NeScalar(a, s) }

// LtScalar returns the mask a < s.
func LtScalar[T Number](a *Array[T], s T) *Array[bool] { return ndarray.LtScalar(a, s) }

// GtScalar returns the mask a > s.
func GtScalar[T Number](a *Array[T], s T) *Array[bool] { return ndarray.GtScalar(a, s) }

// LeScalar returns the mask a <= s.
func LeScalar[T Number](a *Array[T], s T) *Array[bool] { return ndarray.LeScalar(a, s) }

// GeScalar returns the mask a >= s.
func GeScalar[T Number](a *Array[T], s T) *Array[bool] { return ndarray.GeScalar(a, s) }

// And returns the mask a && b.
func And(a, b *Array[bool]) (*Array[bool], error) { return ndarray.And(a, b) }

// Or returns the mask a || b.
func Or(a, b *Array[bool]) (*Array[bool], error) { return ndarray.Or(a, b) }

// Not returns the negated mask.
func Not(a *Array[bool]) *Array[bool] { return ndarray.Not(a) }

// Map returns f applied to every element of a.
func Map[T, R Element](a *Array[T], f func(T) R) *Array[R] { return ndarray.Map(a, f) }

// Ordering, search and numeric operations.

// Sort sorts every slice along axis ascending (stable).
func Sort[T Number](a *Array[T], axis int) error { return ndarray.Sort(a, axis) }

// SortFlat sorts the whole buffer ascending, keeping the shape.
func SortFlat[T Number](a *Array[T]) { ndarray.SortFlat(a) }

// ArgSort returns the sorting permutation of every slice along axis.
func ArgSort[T Number](a *Array[T], axis int) (*Array[int], error) { return ndarray.ArgSort(a, axis) }

// AdjacentDifference returns the first difference of every slice along axis.
func AdjacentDifference[T Number](a *Array[T], axis int, forward bool) (*Array[T], error) {
	return ndarray.AdjacentDifference(a, axis, forward)
}

// Min returns the smallest element.
func Min[T Number](a *Array[T]) (T, error) { return ndarray.Min(a) }

// Max returns the largest element.
func Max[T Number](a *Array[T]) (T, error) { return ndarray.Max(a) }

// ArgMin returns the offset of the first smallest element.
func ArgMin[T Number](a *Array[T]) (int, error) { return ndarray.ArgMin(a) }

// ArgMax returns the offset of the first largest element.
func ArgMax[T Number](a *Array[T]) (int, error) { return ndarray.ArgMax(a) }

// Sum returns the sum of all elements.
func Sum[T Number](a *Array[T]) T { return ndarray.Sum(a) }

// Abs returns |x| for every element.
func Abs[T Number](a *Array[T]) *Array[T] { return ndarray.Abs(a) }

// Neg returns -x for every element.
func Neg[T Number](a *Array[T]) *Array[T] { return ndarray.Neg(a) }

// Pow raises every element to e.
func Pow[T Float](a *Array[T], e float64) *Array[T] { return ndarray.Pow(a, e) }

// Round rounds every element to decimals places.
func Round[T Float](a *Array[T], decimals int) *Array[T] { return ndarray.Round(a, decimals) }

// Minimum returns the elementwise minimum.
func Minimum[T Number](a, b *Array[T]) (*Array[T], error) { return ndarray.Minimum(a, b) }

// Maximum returns the elementwise maximum.
func Maximum[T Number](a, b *Array[T]) (*Array[T], error) { return ndarray.Maximum(a, b) }

// Dot returns the inner product of two rank-1 arrays.
func Dot[T Number](a, b *Array[T]) (T, error) { return ndarray.Dot(a, b) }

// MatMul multiplies two matrices.
func MatMul[T Number](a, b *Array[T]) (*Array[T], error) { return ndarray.MatMul(a, b) }

// Norm returns the Euclidean norm of a rank-1 array.
func Norm[T Float](a *Array[T]) (T, error) { return ndarray.Norm(a) }

// NormAlongAxis returns the Euclidean norm of every slice along axis.
func NormAlongAxis[T Float](a *Array[T], axis int) (*Array[T], error) {
	return ndarray.NormAlongAxis(a, axis)
}

// Normalize scales a rank-1 array to unit norm.
func Normalize[T Float](a *Array[T]) (*Array[T], error) { return ndarray.Normalize(a) }

// EqualWithin reports whether a and b match elementwise within tol.
func EqualWithin[T Number](a, b *Array[T], tol float64) bool { return ndarray.EqualWithin(a, b, tol) }
