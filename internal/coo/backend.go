package coo

import "github.com/sparse-ml/sparse/internal/tensor"

// Backend is the contract a compute device implements for sparse
// coordinate kernels.
//
// Implementations:
//   - backend/cpu: stride tables plus a chunked parallel row loop
//   - backend/webgpu: WGSL compute shader, one invocation per row
type Backend interface {
	// Name returns the backend name.
	Name() string

	// Device returns the compute device.
	Device() tensor.Device

	// ReshapeCOO remaps the coordinates in idx, defined against
	// prevShape, to the equivalent coordinates under newShape, exactly
	// as a dense row-major reshape would reassign linear positions.
	// newShape may contain one tensor.InferDim entry; the resolved
	// shape is returned alongside the remapped coordinates. Row order
	// is preserved. Inputs are not modified.
	ReshapeCOO(idx *RawIndices, prevShape, newShape tensor.Shape) (*RawIndices, tensor.Shape, error)
}
