package ndarray

import (
	"fmt"
	"strings"
)

// String renders the array as nested brackets over its effective
// dimensions, one bracket level per axis:
//
//	[[1, 2, 3],
//	 [4, 5, 6]]
func (a *Array[T]) String() string {
	if a.IsEmpty() {
		return "[]"
	}
	dims := a.shape.Dims()
	strides := dims.ComputeStrides()
	rank := len(dims)

	// levels counts the axes whose block starts (or ends) at offset i.
	levels := func(i int) int {
		n := 0
		for j := range dims {
			if i%(dims[j]*strides[j]) == 0 {
				n++
			}
		}
		return n
	}

	var sb strings.Builder
	for i, v := range a.data {
		opens := levels(i)
		if i > 0 {
			if opens == 0 {
				sb.WriteString(", ")
			} else {
				sb.WriteString(",")
				sb.WriteString(strings.Repeat("\n", opens))
				sb.WriteString(strings.Repeat(" ", rank-opens))
			}
		}
		sb.WriteString(strings.Repeat("[", opens))
		sb.WriteString(fmt.Sprint(v))
		sb.WriteString(strings.Repeat("]", levels(i+1)))
	}
	return sb.String()
}
