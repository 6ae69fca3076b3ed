package ndarray

// Integer is a constraint for signed and unsigned integer element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is a constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is a constraint for element types supporting arithmetic and ordering.
type Number interface {
	Integer | Float
}

// Element is a constraint for every type an Array can hold.
// bool is included so that comparison results and masks are Arrays too.
type Element interface {
	Number | ~bool
}

// DataType represents runtime type information for an element type.
type DataType int

// Supported data types.
const (
	Invalid DataType = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Bool
)

var dataTypeNames = [...]string{
	Invalid: "invalid",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	Bool:    "bool",
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dataTypeNames) {
		return "unknown"
	}
	return dataTypeNames[dt]
}

// ParseDataType is the inverse of DataType.String.
// It returns Invalid for unknown names.
func ParseDataType(name string) DataType {
	for dt, n := range dataTypeNames {
		if n == name {
			return DataType(dt)
		}
	}
	return Invalid
}

// DTypeOf infers the DataType of T.
// Named types built on a supported kind (e.g. type Celsius float64) report Invalid.
func DTypeOf[T Element]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint:
		return Uint
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case bool:
		return Bool
	default:
		return Invalid
	}
}
