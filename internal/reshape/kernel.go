package reshape

import (
	"fmt"
	"math"

	"github.com/sparse-ml/sparse/internal/coo"
	"github.com/sparse-ml/sparse/internal/parallel"
	"github.com/sparse-ml/sparse/internal/tensor"
)

// Run remaps the coordinates in idx, defined against prevShape, to the
// equivalent coordinates under newShape. newShape may contain a single
// tensor.InferDim entry. Returns a freshly allocated coordinate matrix
// (row order preserved) and the resolved target shape; idx is never
// modified.
//
// The call is pure and reentrant. Validation and stride-table
// construction run sequentially; the per-row conversion runs under cfg
// with no cross-row dependency.
func Run(idx *coo.RawIndices, prevShape, newShape tensor.Shape, cfg parallel.Config) (*coo.RawIndices, tensor.Shape, error) {
	if idx == nil {
		return nil, nil, fmt.Errorf("reshape: %w: nil index matrix", ErrDimensionMismatch)
	}
	if idx.Dims() != len(prevShape) {
		return nil, nil, fmt.Errorf("reshape: %w: coordinate width %d, source shape rank %d",
			ErrDimensionMismatch, idx.Dims(), len(prevShape))
	}

	resolved, err := Resolve(prevShape, newShape)
	if err != nil {
		return nil, nil, err
	}

	if idx.DType() == tensor.Int32 {
		for _, dim := range resolved {
			if int64(dim) > math.MaxInt32 {
				return nil, nil, fmt.Errorf("reshape: %w: dimension %d in %v exceeds int32 storage",
					ErrOverflow, dim, resolved)
			}
		}
	}

	out, err := coo.NewRaw(idx.Rows(), len(resolved), idx.DType(), idx.Device())
	if err != nil {
		return nil, nil, err
	}

	// Identity reshape: the coordinates are already correct.
	if prevShape.Equal(resolved) {
		copy(out.Data(), idx.Data())
		return out, resolved, nil
	}

	switch idx.DType() {
	case tensor.Int32:
		transcode(out.AsInt32(), idx.AsInt32(), prevShape, resolved, idx.Rows(), cfg)
	case tensor.Int64:
		transcode(out.AsInt64(), idx.AsInt64(), prevShape, resolved, idx.Rows(), cfg)
	default:
		return nil, nil, fmt.Errorf("reshape: unsupported index dtype %s", idx.DType())
	}

	return out, resolved, nil
}

// transcode converts every coordinate row through its row-major linear
// offset. src and dst are flat row-major buffers of rows*len(prevShape)
// and rows*len(resolved) entries. Offsets are carried in int64 and
// narrowed to T only when stored.
func transcode[T tensor.Index](dst, src []T, prevShape, resolved tensor.Shape, rows int, cfg parallel.Config) {
	multipliers := prevShape.ComputeStrides64()
	dividers := resolved.ComputeStrides64()
	nDim := len(prevShape)
	mDim := len(resolved)

	parallel.For(rows, func(i int) {
		row := src[i*nDim : (i+1)*nDim]
		offset := int64(0)
		for j, c := range row {
			offset += int64(c) * multipliers[j]
		}

		// The remainder carry is the only sequential dependency and it
		// is local to this row.
		out := dst[i*mDim : (i+1)*mDim]
		for j := range out {
			out[j] = T(offset / dividers[j])
			offset %= dividers[j]
		}
	}, cfg)
}
