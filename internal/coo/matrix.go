package coo

import (
	"fmt"
	"unsafe"

	"github.com/sparse-ml/sparse/internal/tensor"
)

// Matrix is a type-safe COO sparse tensor skeleton: the coordinates of
// the non-zero entries together with the dense shape they are defined
// against. Values are stored elsewhere and are untouched by reshape,
// which never reorders rows.
//
// T is the coordinate storage type (int32 or int64).
// B is the backend implementation (CPU, WebGPU).
type Matrix[T tensor.Index, B Backend] struct {
	raw     *RawIndices
	shape   tensor.Shape
	backend B
}

// New wraps a RawIndices and its dense shape into a typed Matrix.
// The coordinate width of raw must match the rank of shape.
func New[T tensor.Index, B Backend](raw *RawIndices, shape tensor.Shape, b B) (*Matrix[T, B], error) {
	if raw.DType() != tensor.DataTypeOf[T]() {
		return nil, fmt.Errorf("coo: storage type %s does not match matrix type", raw.DType())
	}
	if raw.Dims() != len(shape) {
		return nil, fmt.Errorf("coo: coordinate width %d does not match shape rank %d", raw.Dims(), len(shape))
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("coo: %w", err)
	}
	return &Matrix[T, B]{raw: raw, shape: shape.Clone(), backend: b}, nil
}

// FromRows builds a Matrix from per-entry coordinate rows. Every row
// must have exactly len(shape) coordinates. The rows are copied.
func FromRows[T tensor.Index, B Backend](rows [][]T, shape tensor.Shape, b B) (*Matrix[T, B], error) {
	raw, err := NewRaw(len(rows), len(shape), tensor.DataTypeOf[T](), b.Device())
	if err != nil {
		return nil, err
	}

	m, err := New[T, B](raw, shape, b)
	if err != nil {
		return nil, err
	}

	flat := m.Data()
	for i, row := range rows {
		if len(row) != len(shape) {
			return nil, fmt.Errorf("coo: row %d has %d coordinates, shape rank is %d", i, len(row), len(shape))
		}
		copy(flat[i*len(shape):(i+1)*len(shape)], row)
	}
	return m, nil
}

// Rows returns the number of non-zero entries.
func (m *Matrix[T, B]) Rows() int {
	return m.raw.Rows()
}

// Dims returns the dense rank.
func (m *Matrix[T, B]) Dims() int {
	return m.raw.Dims()
}

// Shape returns the dense shape the coordinates are defined against.
func (m *Matrix[T, B]) Shape() tensor.Shape {
	return m.shape
}

// Raw returns the underlying RawIndices.
// Used by backend implementations for low-level operations.
func (m *Matrix[T, B]) Raw() *RawIndices {
	return m.raw
}

// Backend returns the computation backend.
func (m *Matrix[T, B]) Backend() B {
	return m.backend
}

// Data returns the coordinates as a flat row-major []T view.
func (m *Matrix[T, B]) Data() []T {
	data := m.raw.Data()
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, T's size matches the dtype by construction
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), m.raw.Rows()*m.raw.Dims())
}

// Row returns the coordinates of entry i as a view into the matrix.
func (m *Matrix[T, B]) Row(i int) []T {
	d := m.raw.Dims()
	return m.Data()[i*d : (i+1)*d]
}

// At returns coordinate j of entry i.
func (m *Matrix[T, B]) At(i, j int) T {
	return m.Data()[i*m.raw.Dims()+j]
}

// Reshape remaps the matrix to newShape via the matrix's backend.
// newShape may contain one tensor.InferDim entry.
func Reshape[T tensor.Index, B Backend](m *Matrix[T, B], newShape tensor.Shape) (*Matrix[T, B], error) {
	raw, resolved, err := m.backend.ReshapeCOO(m.raw, m.shape, newShape)
	if err != nil {
		return nil, err
	}
	return &Matrix[T, B]{raw: raw, shape: resolved, backend: m.backend}, nil
}
