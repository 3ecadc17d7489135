// Copyright 2026 Sparse ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package coo provides coordinate-format (COO) sparse tensor types and
// the coordinate-remapping reshape kernel.
//
// # Overview
//
// A COO sparse tensor stores the multi-dimensional coordinates of its
// non-zero entries explicitly, independent of the dense shape. This
// package provides:
//   - Type-safe index matrices (Matrix[T, B]) with int32/int64 storage
//   - Reshape between dense shapes with one inferred dimension
//   - Device abstraction (CPU, WebGPU)
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
//	    m, err := coo.FromRows[int32](
//	        [][]int32{{0, 0, 0}, {0, 0, 1}, {1, 2, 3}},
//	        coo.Shape{2, 3, 4}, backend)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := coo.Reshape(m, coo.Shape{9, coo.InferDim})
//	    // out.Shape() == coo.Shape{9, 4}
//	}
//
// # Semantics
//
// Reshape preserves each entry's row-major linear position: row i of
// the output is the coordinate whose offset under the resolved shape
// equals row i's offset under the source shape. Rows are never
// reordered, sorted, or deduplicated, and the associated values (stored
// by the caller) are untouched.
//
// The target shape may contain a single coo.InferDim (-1) entry, which
// is resolved so that the total element count is preserved; inference
// that would require a fractional dimension is an error.
//
// # Errors
//
// All validation happens before any output is produced. Failures wrap
// one of ErrShape, ErrDimensionMismatch, or ErrOverflow; use errors.Is
// to branch.
package coo
