// Package cpu implements the CPU backend for sparse coordinate kernels.
//
// The sequential phase (validation, shape resolution, stride tables)
// runs inline; the per-row phase is driven through a chunked goroutine
// pool since no dependency crosses rows.
package cpu

import (
	"github.com/sparse-ml/sparse/internal/coo"
	"github.com/sparse-ml/sparse/internal/parallel"
	"github.com/sparse-ml/sparse/internal/reshape"
	"github.com/sparse-ml/sparse/internal/tensor"
)

// CPUBackend implements sparse coordinate kernels on CPU.
type CPUBackend struct {
	device tensor.Device
	cfg    parallel.Config
}

// New creates a CPU backend with default parallelism.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with explicit parallelism
// settings. Useful for pinning worker counts or forcing sequential
// execution.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		cfg:    cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// ReshapeCOO remaps COO coordinates from prevShape to newShape.
func (cpu *CPUBackend) ReshapeCOO(idx *coo.RawIndices, prevShape, newShape tensor.Shape) (*coo.RawIndices, tensor.Shape, error) {
	return reshape.Run(idx, prevShape, newShape, cpu.cfg)
}
