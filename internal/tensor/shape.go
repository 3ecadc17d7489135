package tensor

import "fmt"

// Shape represents the dimensions of a dense tensor.
type Shape []int

// InferDim marks a dimension whose size is inferred during reshape so
// that the total element count is preserved. At most one entry of a
// target shape may carry it.
const InferDim = -1

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides64 calculates row-major strides for the shape in 64-bit
// arithmetic: stride[i] = product of all dimensions after i, with the
// last dimension's stride equal to 1. Linear offsets are always formed
// against these strides in int64, whatever width the coordinates are
// stored in.
func (s Shape) ComputeStrides64() []int64 {
	strides := make([]int64, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * int64(s[i+1])
	}
	return strides
}
