// Copyright 2026 Sparse ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package coo provides the public API for sparse COO coordinate
// operations.
//
// The package defines the types for working with coordinate-format
// sparse tensors and the reshape kernel that remaps coordinates between
// dense shapes:
//   - Matrix[T, B]: type-safe COO index matrix bound to a dense shape
//   - RawIndices: low-level N×dims index matrix for advanced use cases
//   - Backend: interface for device-specific kernel implementations
//   - Shape, DataType, Device: core type definitions
package coo

import (
	internalcoo "github.com/sparse-ml/sparse/internal/coo"
	"github.com/sparse-ml/sparse/internal/reshape"
	"github.com/sparse-ml/sparse/internal/tensor"
)

// Type aliases for public API

// Index is a constraint for coordinate storage types: int32 or int64.
type Index = tensor.Index

// DataType represents the runtime coordinate storage type.
type DataType = tensor.DataType

// Data type constants.
const (
	Int32 DataType = tensor.Int32
	Int64 DataType = tensor.Int64
)

// Device represents the device a backend computes on.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a dense tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// InferDim marks a reshape target dimension whose size is inferred so
// the total element count is preserved. At most one entry of a target
// shape may carry it.
const InferDim = tensor.InferDim

// RawIndices is the low-level N×dims coordinate matrix.
type RawIndices = internalcoo.RawIndices

// Backend is the contract a compute device implements for sparse
// coordinate kernels.
type Backend = internalcoo.Backend

// Matrix is a type-safe COO sparse tensor skeleton: the coordinates of
// the non-zero entries together with the dense shape they are defined
// against.
//
// T is the coordinate storage type (int32 or int64).
// B is the backend implementation (CPU, WebGPU).
type Matrix[T Index, B Backend] = internalcoo.Matrix[T, B]

// Kernel error classes. Returned errors wrap one of these; branch with
// errors.Is.
var (
	ErrShape             = reshape.ErrShape
	ErrDimensionMismatch = reshape.ErrDimensionMismatch
	ErrOverflow          = reshape.ErrOverflow
)

// New wraps a RawIndices and its dense shape into a typed Matrix.
func New[T Index, B Backend](raw *RawIndices, shape Shape, b B) (*Matrix[T, B], error) {
	return internalcoo.New[T, B](raw, shape, b)
}

// FromRows builds a Matrix from per-entry coordinate rows. Every row
// must have exactly len(shape) coordinates. The rows are copied.
//
// Example:
//
//	backend := cpu.New()
//	m, err := coo.FromRows[int32](
//	    [][]int32{{0, 0, 0}, {1, 2, 3}},
//	    coo.Shape{2, 3, 4}, backend)
func FromRows[T Index, B Backend](rows [][]T, shape Shape, b B) (*Matrix[T, B], error) {
	return internalcoo.FromRows[T, B](rows, shape, b)
}

// NewRaw creates a zeroed RawIndices with the given row count and
// coordinate width.
func NewRaw(rows, dims int, dtype DataType, device Device) (*RawIndices, error) {
	return internalcoo.NewRaw(rows, dims, dtype, device)
}

// Reshape remaps the matrix's coordinates to newShape, exactly as a
// dense row-major reshape would reassign linear positions. newShape may
// contain one InferDim entry. Row order is preserved; m is not
// modified.
//
// Example:
//
//	out, err := coo.Reshape(m, coo.Shape{9, coo.InferDim})
func Reshape[T Index, B Backend](m *Matrix[T, B], newShape Shape) (*Matrix[T, B], error) {
	return internalcoo.Reshape(m, newShape)
}
