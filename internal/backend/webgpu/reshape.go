//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/sparse-ml/sparse/internal/coo"
	"github.com/sparse-ml/sparse/internal/reshape"
	"github.com/sparse-ml/sparse/internal/tensor"
)

// ReshapeCOO remaps COO coordinates from prevShape to newShape with one
// shader invocation per row. Shape resolution and the identity shortcut
// run on CPU; only the per-row transcode phase is dispatched.
//
// Coordinates must be stored as int32 and the total element count must
// fit in i32: WGSL has no 64-bit integer type. Wider tensors belong on
// the CPU backend.
func (b *Backend) ReshapeCOO(idx *coo.RawIndices, prevShape, newShape tensor.Shape) (*coo.RawIndices, tensor.Shape, error) {
	if idx == nil {
		return nil, nil, fmt.Errorf("webgpu: %w: nil index matrix", reshape.ErrDimensionMismatch)
	}
	if idx.Dims() != len(prevShape) {
		return nil, nil, fmt.Errorf("webgpu: %w: coordinate width %d, source shape rank %d",
			reshape.ErrDimensionMismatch, idx.Dims(), len(prevShape))
	}
	if idx.DType() != tensor.Int32 {
		return nil, nil, fmt.Errorf("webgpu: only int32 indices are supported, got %s", idx.DType())
	}

	resolved, err := reshape.Resolve(prevShape, newShape)
	if err != nil {
		return nil, nil, err
	}

	total := int64(1)
	for _, dim := range prevShape {
		total *= int64(dim)
	}
	if total > math.MaxInt32 {
		return nil, nil, fmt.Errorf("webgpu: %w: %d elements exceed i32 shader arithmetic",
			reshape.ErrOverflow, total)
	}

	out, err := coo.NewRaw(idx.Rows(), len(resolved), tensor.Int32, tensor.WebGPU)
	if err != nil {
		return nil, nil, err
	}

	// Identity reshape needs no dispatch.
	if prevShape.Equal(resolved) {
		copy(out.Data(), idx.Data())
		return out, resolved, nil
	}
	if idx.Rows() == 0 {
		return out, resolved, nil
	}

	if err := b.runSparseReshape(idx, out, prevShape, resolved); err != nil {
		return nil, nil, err
	}
	return out, resolved, nil
}

// runSparseReshape dispatches the transcode shader and reads the result
// back into out.
func (b *Backend) runSparseReshape(idx, out *coo.RawIndices, prevShape, resolved tensor.Shape) error {
	rows := idx.Rows()
	nDim := len(prevShape)
	mDim := len(resolved)

	shader := b.compileShader("sparseReshape", sparseReshapeShader)
	pipeline := b.getOrCreatePipeline("sparseReshape", shader)

	bufferIndices := b.createBuffer(idx.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferIndices.Release()

	bufferMultipliers := b.createBuffer(stridesToBytes(prevShape.ComputeStrides64()), wgpu.BufferUsageStorage)
	defer bufferMultipliers.Release()

	bufferDividers := b.createBuffer(stridesToBytes(resolved.ComputeStrides64()), wgpu.BufferUsageStorage)
	defer bufferDividers.Release()

	//nolint:gosec // G115: Safe conversion, ByteSize() returns non-negative int
	resultSize := uint64(out.ByteSize())
	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	// Params uniform: rows, n_dim, m_dim (16-byte aligned).
	params := make([]byte, 16)
	//nolint:gosec // G115: Safe conversions, all values are validated non-negative
	{
		binary.LittleEndian.PutUint32(params[0:4], uint32(rows))
		binary.LittleEndian.PutUint32(params[4:8], uint32(nDim))
		binary.LittleEndian.PutUint32(params[8:12], uint32(mDim))
	}
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferIndices, 0, uint64(idx.ByteSize())),
		wgpu.BufferBindingEntry(1, bufferMultipliers, 0, uint64(nDim*4)),
		wgpu.BufferBindingEntry(2, bufferDividers, 0, uint64(mDim*4)),
		wgpu.BufferBindingEntry(3, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(4, bufferParams, 0, 16),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)

	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	// One invocation per row: ceil(rows / workgroupSize) workgroups.
	//nolint:gosec // G115: Safe conversion, workgroup count is non-negative
	workgroups := uint32((rows + workgroupSize - 1) / workgroupSize)
	computePass.DispatchWorkgroups(workgroups, 1, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	resultData, err := b.readBuffer(bufferResult, resultSize)
	if err != nil {
		return err
	}
	copy(out.Data(), resultData)
	return nil
}

// stridesToBytes narrows an int64 stride table to the i32 little-endian
// layout the shader reads. Callers have already verified the element
// count fits in i32.
func stridesToBytes(strides []int64) []byte {
	buf := make([]byte, len(strides)*4)
	for i, s := range strides {
		//nolint:gosec // G115: host rejects element counts beyond i32 before dispatch
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], uint32(int32(s)))
	}
	return buf
}
