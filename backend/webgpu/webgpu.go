// Copyright 2026 Sparse ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated sparse
// coordinate kernels.
//
// WebGPU compute runs the per-row transcode phase with one shader
// invocation per coordinate row. Shape resolution, validation, and the
// identity shortcut stay on CPU.
//
// Coordinates must be stored as int32 and the dense element count must
// fit in i32 (WGSL has no 64-bit integers); wider tensors belong on the
// CPU backend.
//
// Example:
//
//	import (
//	    "github.com/sparse-ml/sparse/backend/webgpu"
//	    "github.com/sparse-ml/sparse/coo"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    m, _ := coo.FromRows[int32](rows, coo.Shape{2, 3, 4}, gpu)
//	    out, _ := coo.Reshape(m, coo.Shape{9, coo.InferDim})
//	}
package webgpu

import (
	internalwebgpu "github.com/sparse-ml/sparse/internal/backend/webgpu"

	"github.com/sparse-ml/sparse/coo"
)

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements coo.Backend.
var _ coo.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
// Returns an error if WebGPU is not available on this platform or
// initialization fails.
func New() (*Backend, error) {
	return internalwebgpu.New()
}
