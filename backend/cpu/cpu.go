// Copyright 2026 Sparse ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/sparse-ml/sparse/internal/backend/cpu"
	"github.com/sparse-ml/sparse/internal/parallel"

	"github.com/sparse-ml/sparse/coo"
)

// Backend represents the CPU backend implementation.
//
// The sequential kernel phases run inline; per-row phases are spread
// over a chunked goroutine pool.
type Backend = internalcpu.CPUBackend

// Config controls how per-row phases are spread across goroutines.
type Config = parallel.Config

// Compile-time check that Backend implements coo.Backend.
var _ coo.Backend = (*Backend)(nil)

// New creates a new CPU backend with default parallelism.
//
// Example:
//
//	import (
//	    "github.com/sparse-ml/sparse/backend/cpu"
//	    "github.com/sparse-ml/sparse/coo"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    m, _ := coo.FromRows[int32](rows, coo.Shape{2, 3, 4}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallelism
// settings.
//
// Example:
//
//	backend := cpu.NewWithConfig(cpu.Config{Enabled: false})
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns parallelism defaults based on CPU count.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}
