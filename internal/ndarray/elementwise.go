package ndarray

// zipWith applies f to every pair of elements of two same-shaped arrays.
// The result takes the stored shape of a.
func zipWith[T, R Element](op string, a, b *Array[T], f func(x, y T) R) (*Array[R], error) {
	if a == nil {
		return nil, errorf(op, ErrDimensionMismatch, "left operand is nil")
	}
	if err := checkOperand(op, "right operand", a.shape, b); err != nil {
		return nil, err
	}
	out := make([]R, len(a.data))
	for i := range a.data {
		out[i] = f(a.data[i], b.data[i])
	}
	return &Array[R]{data: out, shape: a.shape.Clone()}, nil
}

// mapWith applies f to every element.
func mapWith[T, R Element](a *Array[T], f func(x T) R) *Array[R] {
	out := make([]R, len(a.data))
	for i, v := range a.data {
		out[i] = f(v)
	}
	return &Array[R]{data: out, shape: a.shape.Clone()}
}

// Add returns a + b elementwise.
func Add[T Number](a, b *Array[T]) (*Array[T], error) {
	return zipWith("add", a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise.
func Sub[T Number](a, b *Array[T]) (*Array[T], error) {
	return zipWith("sub", a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b elementwise.
func Mul[T Number](a, b *Array[T]) (*Array[T], error) {
	return zipWith("mul", a, b, func(x, y T) T { return x * y })
}

// Div returns a / b elementwise. Any zero in b is rejected with
// ErrDivisionByZero before anything is computed.
func Div[T Number](a, b *Array[T]) (*Array[T], error) {
	if a == nil {
		return nil, errorf("div", ErrDimensionMismatch, "left operand is nil")
	}
	if err := checkOperand("div", "right operand", a.shape, b); err != nil {
		return nil, err
	}
	for i, v := range b.data {
		if v == 0 {
			return nil, errorf("div", ErrDivisionByZero, "divisor is zero at offset %d", i)
		}
	}
	return zipWith("div", a, b, func(x, y T) T { return x / y })
}

// AddScalar returns a + s for every element.
func AddScalar[T Number](a *Array[T], s T) *Array[T] {
	return mapWith(a, func(x T) T { return x + s })
}

// SubScalar returns a - s for every element.
func SubScalar[T Number](a *Array[T], s T) *Array[T] {
	return mapWith(a, func(x T) T { return x - s })
}

// MulScalar returns a * s for every element.
func MulScalar[T Number](a *Array[T], s T) *Array[T] {
	return mapWith(a, func(x T) T { return x * s })
}

// DivScalar returns a / s for every element.
func DivScalar[T Number](a *Array[T], s T) (*Array[T], error) {
	if s == 0 {
		return nil, errorf("divScalar", ErrDivisionByZero, "scalar divisor is zero")
	}
	return mapWith(a, func(x T) T { return x / s }), nil
}

// ScalarSub returns s - a for every element.
func ScalarSub[T Number](s T, a *Array[T]) *Array[T] {
	return mapWith(a, func(x T) T { return s - x })
}

// ScalarDiv returns s / a for every element. Any zero in a is rejected with
// ErrDivisionByZero before anything is computed.
func ScalarDiv[T Number](s T, a *Array[T]) (*Array[T], error) {
	for i, v := range a.data {
		if v == 0 {
			return nil, errorf("scalarDiv", ErrDivisionByZero, "divisor is zero at offset %d", i)
		}
	}
	return mapWith(a, func(x T) T { return s / x }), nil
}

// Eq returns the mask a == b.
func Eq[T Element](a, b *Array[T]) (*Array[bool], error) {
	return zipWith("eq", a, b, func(x, y T) bool { return x == y })
}

// Ne returns the mask a != b.
func Ne[T Element](a, b *Array[T]) (*Array[bool], error) {
	return zipWith("ne", a, b, func(x, y T) bool { return x != y })
}

// Lt returns the mask a < b.
func Lt[T Number](a, b *Array[T]) (*Array[bool], error) {
	return zipWith("lt", a, b, func(x, y T) bool { return x < y })
}

// Gt returns the mask a > b.
func Gt[T Number](a, b *Array[T]) (*Array[bool], error) {
	return zipWith("gt", a, b, func(x, y T) bool { return x > y })
}

// Le returns the mask a <= b.
func Le[T Number](a, b *Array[T]) (*Array[bool], error) {
	return zipWith("le", a, b, func(x, y T) bool { return x <= y })
}

// Ge returns the mask a >= b.
func Ge[T Number](a, b *Array[T]) (*Array[bool], error) {
	return zipWith("ge", a, b, func(x, y T) bool { return x >= y })
}

// EqScalar returns the mask a == s.
func EqScalar[T Element](a *Array[T], s T) *Array[bool] {
	return mapWith(a, func(x T) bool { return x == s })
}

// NeScalar returns the mask a != s.
func NeScalar[T Element](a *Array[T], s T) *Array[bool] {
	return mapWith(a, func(x T) bool { return x != s })
}

// LtScalar returns the mask a < s.
func LtScalar[T Number](a *Array[T], s T) *Array[bool] {
	return mapWith(a, func(x T) bool { return x < s })
}

// GtScalar returns the mask a > s.
func GtScalar[T Number](a *Array[T], s T) *Array[bool] {
	return mapWith(a, func(x T) bool { return x > s })
}

// LeScalar returns the mask a <= s.
func LeScalar[T Number](a *Array[T], s T) *Array[bool] {
	return mapWith(a, func(x T) bool { return x <= s })
}

// GeScalar returns the mask a >= s.
func GeScalar[T Number](a *Array[T], s T) *Array[bool] {
	return mapWith(a, func(x T) bool { return x >= s })
}

// And returns the mask a && b.
func And(a, b *Array[bool]) (*Array[bool], error) {
	return zipWith("and", a, b, func(x, y bool) bool { return x && y })
}

// Or returns the mask a || b.
func Or(a, b *Array[bool]) (*Array[bool], error) {
	return zipWith("or", a, b, func(x, y bool) bool { return x || y })
}

// Not returns the negated mask.
func Not(a *Array[bool]) *Array[bool] {
	return mapWith(a, func(x bool) bool { return !x })
}

// Map returns a new array holding f applied to every element.
func Map[T, R Element](a *Array[T], f func(T) R) *Array[R] {
	return mapWith(a, f)
}
