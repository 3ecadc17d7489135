//go:build !windows

// Package webgpu implements the WebGPU backend for sparse coordinate
// kernels. On platforms the wgpu_native bindings do not cover, New
// reports the backend as unavailable.
package webgpu

import (
	"fmt"

	"github.com/sparse-ml/sparse/internal/coo"
	"github.com/sparse-ml/sparse/internal/tensor"
)

// Backend stub for platforms without wgpu_native bindings.
type Backend struct{}

// New reports that WebGPU is unavailable on this platform.
func New() (*Backend, error) {
	return nil, fmt.Errorf("webgpu: not available on this platform")
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU"
}

// Device returns the compute device.
func (b *Backend) Device() tensor.Device {
	return tensor.WebGPU
}

// AdapterName reports no adapter.
func (b *Backend) AdapterName() string {
	return "unavailable"
}

// Release is a no-op.
func (b *Backend) Release() {}

// ReshapeCOO returns an error: no device is available.
func (b *Backend) ReshapeCOO(_ *coo.RawIndices, _, _ tensor.Shape) (*coo.RawIndices, tensor.Shape, error) {
	return nil, nil, fmt.Errorf("webgpu: not available on this platform")
}
