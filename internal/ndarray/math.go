package ndarray

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Abs returns |x| for every element.
func Abs[T Number](a *Array[T]) *Array[T] {
	return mapWith(a, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Neg returns -x for every element.
func Neg[T Number](a *Array[T]) *Array[T] {
	return mapWith(a, func(x T) T { return -x })
}

// Pow raises every element to the power e.
func Pow[T Float](a *Array[T], e float64) *Array[T] {
	return mapWith(a, func(x T) T { return T(math.Pow(float64(x), e)) })
}

// Round rounds every element half away from zero to the given number of
// decimal places.
func Round[T Float](a *Array[T], decimals int) *Array[T] {
	return mapWith(a, func(x T) T { return T(scalar.Round(float64(x), decimals)) })
}

// Sum returns the sum of all elements.
func Sum[T Number](a *Array[T]) T {
	return a.Reduce(0, func(acc, x T) T { return acc + x })
}

// Minimum returns the elementwise minimum of a and b.
func Minimum[T Number](a, b *Array[T]) (*Array[T], error) {
	return zipWith("minimum", a, b, func(x, y T) T { return min(x, y) })
}

// Maximum returns the elementwise maximum of a and b.
func Maximum[T Number](a, b *Array[T]) (*Array[T], error) {
	return zipWith("maximum", a, b, func(x, y T) T { return max(x, y) })
}

// Dot returns the inner product of two rank-1 arrays of equal length.
func Dot[T Number](a, b *Array[T]) (T, error) {
	if a.Rank() != 1 || b.Rank() != 1 || len(a.data) != len(b.data) {
		return 0, errorf("dot", ErrDimensionMismatch, "need two rank-1 arrays of equal length, got %v and %v", a.shape, b.shape)
	}
	var sum T
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}
	return sum, nil
}

// MatMul multiplies an (n, k) matrix by a (k, m) matrix. Both operands
// must have a stored shape of exactly two entries.
func MatMul[T Number](a, b *Array[T]) (*Array[T], error) {
	if len(a.shape) != 2 || len(b.shape) != 2 || a.shape[1] != b.shape[0] {
		return nil, errorf("matMul", ErrDimensionMismatch, "cannot multiply %v by %v", a.shape, b.shape)
	}
	n, k, m := a.shape[0], a.shape[1], b.shape[1]
	out := make([]T, n*m)
	for i := 0; i < n; i++ {
		for p := 0; p < k; p++ {
			x := a.data[i*k+p]
			for j := 0; j < m; j++ {
				out[i*m+j] += x * b.data[p*m+j]
			}
		}
	}
	return &Array[T]{data: out, shape: Shape{n, m}}, nil
}

// Norm returns the Euclidean norm of a rank-1 array.
func Norm[T Float](a *Array[T]) (T, error) {
	if a.IsEmpty() || a.Rank() != 1 {
		return 0, errorf("norm", ErrDimensionMismatch, "norm requires a non-empty rank-1 array, got shape %v", a.shape)
	}
	return T(math.Sqrt(float64(a.Reduce(0, func(acc, x T) T { return acc + x*x })))), nil
}

// NormAlongAxis returns the Euclidean norm of every slice along axis,
// shaped like ReduceAlongAxis.
func NormAlongAxis[T Float](a *Array[T], axis int) (*Array[T], error) {
	sq, err := a.ReduceAlongAxis(axis, 0, func(acc, x T) T { return acc + x*x })
	if err != nil {
		return nil, err
	}
	for i, v := range sq.data {
		sq.data[i] = T(math.Sqrt(float64(v)))
	}
	return sq, nil
}

// Normalize returns a rank-1 array scaled to unit norm.
func Normalize[T Float](a *Array[T]) (*Array[T], error) {
	n, err := Norm(a)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errorf("normalize", ErrDivisionByZero, "zero vector")
	}
	return mapWith(a, func(x T) T { return x / n }), nil
}

// EqualWithin reports whether a and b have the same effective dimensions
// and every pair of elements differs by at most tol.
func EqualWithin[T Number](a, b *Array[T], tol float64) bool {
	if !a.shape.EqualDims(b.shape) || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if !scalar.EqualWithinAbs(float64(a.data[i]), float64(b.data[i]), tol) {
			return false
		}
	}
	return true
}
