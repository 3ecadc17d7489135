// Package coo provides the coordinate-format (COO) index types and the
// backend contract for sparse coordinate kernels.
package coo

import (
	"fmt"
	"unsafe"

	"github.com/sparse-ml/sparse/internal/tensor"
)

// RawIndices is the low-level N×dims coordinate matrix: row i holds the
// multi-dimensional coordinate of the i-th non-zero entry. Row order is
// significant and preserved by every kernel. The buffer is owned by the
// RawIndices; kernels never retain references to caller memory.
type RawIndices struct {
	data   []byte
	rows   int
	dims   int
	dtype  tensor.DataType
	device tensor.Device
}

// NewRaw creates a zeroed RawIndices with the given row count and
// coordinate width.
func NewRaw(rows, dims int, dtype tensor.DataType, device tensor.Device) (*RawIndices, error) {
	if rows < 0 {
		return nil, fmt.Errorf("coo: negative row count %d", rows)
	}
	if dims < 1 {
		return nil, fmt.Errorf("coo: coordinate width must be >= 1, got %d", dims)
	}

	return &RawIndices{
		data:   make([]byte, rows*dims*dtype.Size()),
		rows:   rows,
		dims:   dims,
		dtype:  dtype,
		device: device,
	}, nil
}

// Rows returns the number of coordinate rows (non-zero entries).
func (r *RawIndices) Rows() int {
	return r.rows
}

// Dims returns the coordinate width (dense rank).
func (r *RawIndices) Dims() int {
	return r.dims
}

// DType returns the coordinate storage type.
func (r *RawIndices) DType() tensor.DataType {
	return r.dtype
}

// Device returns the compute device the matrix was produced on.
func (r *RawIndices) Device() tensor.Device {
	return r.device
}

// ByteSize returns the total buffer size in bytes.
func (r *RawIndices) ByteSize() int {
	return r.rows * r.dims * r.dtype.Size()
}

// Data returns the raw byte buffer.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawIndices) Data() []byte {
	return r.data
}

// AsInt32 interprets the buffer as a flat row-major []int32.
// Panics if the storage type is not Int32.
func (r *RawIndices) AsInt32() []int32 {
	if r.dtype != tensor.Int32 {
		panic(fmt.Sprintf("index dtype is %s, not int32", r.dtype))
	}
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the allocation
	return unsafe.Slice((*int32)(unsafe.Pointer(&r.data[0])), r.rows*r.dims)
}

// AsInt64 interprets the buffer as a flat row-major []int64.
// Panics if the storage type is not Int64.
func (r *RawIndices) AsInt64() []int64 {
	if r.dtype != tensor.Int64 {
		panic(fmt.Sprintf("index dtype is %s, not int64", r.dtype))
	}
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the allocation
	return unsafe.Slice((*int64)(unsafe.Pointer(&r.data[0])), r.rows*r.dims)
}

// Clone returns a deep copy of the matrix.
func (r *RawIndices) Clone() *RawIndices {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawIndices{
		data:   data,
		rows:   r.rows,
		dims:   r.dims,
		dtype:  r.dtype,
		device: r.device,
	}
}
