// Copyright 2026 Sparse ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for sparse coordinate
// kernels.
//
// # Overview
//
// This package implements the coo.Backend contract with:
//   - Pure Go implementation (no CGO)
//   - int32 and int64 coordinate storage
//   - 64-bit intermediate offset arithmetic regardless of storage width
//   - Chunked goroutine parallelism over coordinate rows
//
// # Basic Usage
//
//	import (
//	    "github.com/sparse-ml/sparse/backend/cpu"
//	    "github.com/sparse-ml/sparse/coo"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    m, _ := coo.FromRows[int32](rows, coo.Shape{2, 3, 4}, backend)
//	    out, _ := coo.Reshape(m, coo.Shape{9, coo.InferDim})
//	}
//
// # Parallelism
//
// Per-row conversion has no cross-row dependency, so rows are split
// into contiguous chunks across workers. Use NewWithConfig to pin the
// worker count or force sequential execution; results are identical
// either way.
package cpu
