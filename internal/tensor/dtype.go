// Package tensor provides the shape and index-type primitives shared by
// the sparse coordinate kernels.
package tensor

// Index is a constraint for supported coordinate storage types.
// Coordinates are stored narrow; intermediate linear offsets are always
// computed in int64.
type Index interface {
	~int32 | ~int64
}

// DataType represents runtime type information for index matrices.
type DataType int

// Supported coordinate storage types.
const (
	Int32 DataType = iota
	Int64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int32:
		return 4
	case Int64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// DataTypeOf infers the runtime DataType for a generic index type T.
func DataTypeOf[T Index]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case int32:
		return Int32
	case int64:
		return Int64
	default:
		panic("unsupported index type")
	}
}
