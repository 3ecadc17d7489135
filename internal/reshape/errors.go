// Package reshape implements the sparse COO coordinate-remapping
// kernel: given the non-zero coordinates of a tensor under one dense
// shape, compute the equivalent coordinates under another, exactly as a
// dense row-major reshape would reassign linear positions.
package reshape

import "errors"

// Kernel error classes. All are reported before any output buffer is
// written; returned errors wrap one of these so callers can branch with
// errors.Is.
var (
	// ErrShape reports an invalid shape argument: more than one
	// inferred dimension, a non-positive dimension, or an element-count
	// mismatch between source and target shapes.
	ErrShape = errors.New("invalid shape")

	// ErrDimensionMismatch reports a coordinate matrix whose row width
	// does not match the rank of the shape it is declared against.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrOverflow reports a tensor whose total element count does not
	// fit the intermediate offset width, or coordinates that cannot be
	// narrowed to the declared storage type.
	ErrOverflow = errors.New("element count overflows index width")
)
