package reshape

import (
	"fmt"
	"math"

	"github.com/sparse-ml/sparse/internal/tensor"
)

// product64 multiplies positive dims in int64, reporting overflow
// instead of wrapping. The empty product is 1.
func product64(dims []int) (int64, error) {
	p := int64(1)
	for _, d := range dims {
		if p > math.MaxInt64/int64(d) {
			return 0, fmt.Errorf("reshape: %w: product of %v", ErrOverflow, dims)
		}
		p *= int64(d)
	}
	return p, nil
}

// Resolve computes the concrete target shape for a reshape from
// prevShape to newShape, substituting at most one tensor.InferDim entry
// so that the total element count is preserved.
//
// All validation happens here, before any output is produced: prevShape
// entries must be positive, newShape entries must be positive except at
// most one InferDim, and the element counts of both shapes must agree
// (for an inferred dimension this means exact divisibility).
func Resolve(prevShape, newShape tensor.Shape) (tensor.Shape, error) {
	if len(prevShape) == 0 {
		return nil, fmt.Errorf("reshape: %w: source shape has no dimensions", ErrShape)
	}
	if len(newShape) == 0 {
		return nil, fmt.Errorf("reshape: %w: target shape has no dimensions", ErrShape)
	}
	if err := prevShape.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w: source shape %v: %v", ErrShape, prevShape, err)
	}

	inferIdx := -1
	for i, dim := range newShape {
		switch {
		case dim == tensor.InferDim:
			if inferIdx >= 0 {
				return nil, fmt.Errorf("reshape: %w: more than one inferred dimension in %v", ErrShape, newShape)
			}
			inferIdx = i
		case dim <= 0:
			return nil, fmt.Errorf("reshape: %w: target dimension %d is %d (must be > 0 or %d)",
				ErrShape, i, dim, tensor.InferDim)
		}
	}

	total, err := product64(prevShape)
	if err != nil {
		return nil, err
	}

	resolved := newShape.Clone()
	if inferIdx >= 0 {
		known := int64(1)
		for i, dim := range newShape {
			if i == inferIdx {
				continue
			}
			if known > math.MaxInt64/int64(dim) {
				return nil, fmt.Errorf("reshape: %w: product of %v", ErrOverflow, newShape)
			}
			known *= int64(dim)
		}
		if total%known != 0 {
			return nil, fmt.Errorf("reshape: %w: cannot infer dimension for %v from %d elements",
				ErrShape, newShape, total)
		}
		resolved[inferIdx] = int(total / known)
	}

	newTotal, err := product64(resolved)
	if err != nil {
		return nil, err
	}
	if newTotal != total {
		return nil, fmt.Errorf("reshape: %w: shape %v has %d elements, source has %d",
			ErrShape, resolved, newTotal, total)
	}

	return resolved, nil
}
