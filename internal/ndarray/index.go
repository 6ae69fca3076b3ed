package ndarray

// FlattenIndex converts a coordinate over the effective dimensions of shape
// into a linear buffer offset:
//
//	offset = Σ coord[j] * Π(dims[k] for k > j)
func FlattenIndex(coord []int, shape Shape) (int, error) {
	dims := shape.Dims()
	if len(coord) != len(dims) {
		return 0, errorf("flattenIndex", ErrDimensionMismatch,
			"coordinate %v has %d components, shape %v has rank %d", coord, len(coord), shape, shape.Rank())
	}
	strides := dims.ComputeStrides()
	offset := 0
	for j, c := range coord {
		if c < 0 || c >= dims[j] {
			return 0, errorf("flattenIndex", ErrIndexOutOfRange,
				"coordinate %v: component %d is %d, axis size %d", coord, j, c, dims[j])
		}
		offset += c * strides[j]
	}
	return offset, nil
}

// ReconstructIndex is the inverse of FlattenIndex. For rank 1 the coordinate
// is the offset itself; otherwise each component is obtained by successive
// division by the stride of its axis.
func ReconstructIndex(offset int, shape Shape) ([]int, error) {
	n := shape.NumElements()
	if offset < 0 || offset >= n {
		return nil, errorf("reconstructIndex", ErrIndexOutOfRange,
			"offset %d out of range for %d elements of shape %v", offset, n, shape)
	}
	return unflatten(offset, shape.Dims().ComputeStrides()), nil
}

// unflatten decodes an in-range offset against precomputed strides.
func unflatten(offset int, strides []int) []int {
	coord := make([]int, len(strides))
	remaining := offset
	for j, stride := range strides {
		coord[j] = remaining / stride
		remaining %= stride
	}
	return coord
}

// AdvanceNonAxis increments a non-axis coordinate (a coordinate with the
// component of axis removed) to the next combination in row-major order.
// It returns false once the highest-order component wraps, leaving coord
// reset to all zeros.
func (s Shape) AdvanceNonAxis(coord []int, axis int) bool {
	dims := s.Dims()
	for k := len(coord) - 1; k >= 0; k-- {
		j := k
		if k >= axis {
			j = k + 1
		}
		coord[k]++
		if coord[k] < dims[j] {
			return true
		}
		coord[k] = 0
	}
	return false
}
