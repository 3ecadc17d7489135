package reshape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparse-ml/sparse/internal/coo"
	"github.com/sparse-ml/sparse/internal/parallel"
	"github.com/sparse-ml/sparse/internal/tensor"
)

func seqCfg() parallel.Config {
	return parallel.Config{Enabled: false}
}

func parCfg() parallel.Config {
	return parallel.Config{Enabled: true, Workers: 4, MinRows: 1}
}

func rawFromRows32(t *testing.T, rows [][]int32, dims int) *coo.RawIndices {
	t.Helper()
	raw, err := coo.NewRaw(len(rows), dims, tensor.Int32, tensor.CPU)
	require.NoError(t, err)
	flat := raw.AsInt32()
	for i, row := range rows {
		require.Len(t, row, dims)
		copy(flat[i*dims:(i+1)*dims], row)
	}
	return raw
}

func rawFromRows64(t *testing.T, rows [][]int64, dims int) *coo.RawIndices {
	t.Helper()
	raw, err := coo.NewRaw(len(rows), dims, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	flat := raw.AsInt64()
	for i, row := range rows {
		require.Len(t, row, dims)
		copy(flat[i*dims:(i+1)*dims], row)
	}
	return raw
}

func rows32(raw *coo.RawIndices) [][]int32 {
	flat := raw.AsInt32()
	out := make([][]int32, raw.Rows())
	d := raw.Dims()
	for i := range out {
		out[i] = append([]int32(nil), flat[i*d:(i+1)*d]...)
	}
	return out
}

func TestResolveInference(t *testing.T) {
	tests := []struct {
		name string
		prev tensor.Shape
		next tensor.Shape
		want tensor.Shape
	}{
		{"infer last", tensor.Shape{2, 3, 4}, tensor.Shape{9, -1}, tensor.Shape{9, 4}},
		{"infer first", tensor.Shape{2, 3, 4}, tensor.Shape{-1, 6}, tensor.Shape{4, 6}},
		{"infer middle", tensor.Shape{2, 3, 4}, tensor.Shape{2, -1, 2}, tensor.Shape{2, 6, 2}},
		{"flatten", tensor.Shape{2, 3, 4}, tensor.Shape{-1}, tensor.Shape{24}},
		{"no sentinel", tensor.Shape{2, 3, 4}, tensor.Shape{4, 6}, tensor.Shape{4, 6}},
		{"identity", tensor.Shape{2, 3, 4}, tensor.Shape{2, 3, 4}, tensor.Shape{2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.prev, tt.next)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "Resolve(%v, %v) = %v, want %v", tt.prev, tt.next, got, tt.want)
			assert.Equal(t, tt.prev.NumElements(), got.NumElements(), "element count must be preserved")
		})
	}
}

func TestResolveDoesNotModifyInput(t *testing.T) {
	next := tensor.Shape{9, -1}
	_, err := Resolve(tensor.Shape{2, 3, 4}, next)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{9, -1}, next)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		prev tensor.Shape
		next tensor.Shape
		want error
	}{
		{"two sentinels", tensor.Shape{4, 5}, tensor.Shape{5, -1, -1}, ErrShape},
		{"zero target dim", tensor.Shape{4, 5}, tensor.Shape{0, 20}, ErrShape},
		{"negative target dim", tensor.Shape{4, 5}, tensor.Shape{-2, 10}, ErrShape},
		{"zero source dim", tensor.Shape{4, 0}, tensor.Shape{-1}, ErrShape},
		{"not divisible", tensor.Shape{2, 3}, tensor.Shape{5, -1}, ErrShape},
		{"count mismatch", tensor.Shape{2, 3}, tensor.Shape{7}, ErrShape},
		{"empty source", tensor.Shape{}, tensor.Shape{1}, ErrShape},
		{"empty target", tensor.Shape{2, 3}, tensor.Shape{}, ErrShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.prev, tt.next)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRunConcrete(t *testing.T) {
	// The canonical reshape: [2,3,4] -> [9,-1].
	in := [][]int32{
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{1, 2, 3},
	}
	want := [][]int32{
		{0, 0},
		{0, 1},
		{1, 2},
		{4, 2},
		{8, 1},
	}

	idx := rawFromRows32(t, in, 3)
	out, resolved, err := Run(idx, tensor.Shape{2, 3, 4}, tensor.Shape{9, -1}, seqCfg())
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{9, 4}, resolved)
	assert.Equal(t, want, rows32(out))

	// Input must be untouched.
	assert.Equal(t, in, rows32(idx))
}

func TestRunConcreteInt64(t *testing.T) {
	in := [][]int64{
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{1, 2, 3},
	}
	idx := rawFromRows64(t, in, 3)
	out, resolved, err := Run(idx, tensor.Shape{2, 3, 4}, tensor.Shape{9, -1}, seqCfg())
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{9, 4}, resolved)
	flat := out.AsInt64()
	assert.Equal(t, []int64{0, 0, 0, 1, 1, 2, 4, 2, 8, 1}, flat)
}

// unflatten64 converts a linear offset to coordinates, used to generate
// inputs independently of the kernel under test.
func unflatten64(offset int64, shape tensor.Shape) []int32 {
	strides := shape.ComputeStrides64()
	out := make([]int32, len(shape))
	for j := range out {
		out[j] = int32(offset / strides[j])
		offset %= strides[j]
	}
	return out
}

func linOffset32(row []int32, shape tensor.Shape) int64 {
	strides := shape.ComputeStrides64()
	off := int64(0)
	for j, c := range row {
		off += int64(c) * strides[j]
	}
	return off
}

func TestRunOrderPreservation(t *testing.T) {
	prev := tensor.Shape{3, 5, 7}
	next := tensor.Shape{7, -1}

	// Every third linear position is a non-zero entry.
	var in [][]int32
	for off := int64(0); off < int64(prev.NumElements()); off += 3 {
		in = append(in, unflatten64(off, prev))
	}

	idx := rawFromRows32(t, in, len(prev))
	out, resolved, err := Run(idx, prev, next, parCfg())
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{7, 15}, resolved)

	got := rows32(out)
	require.Len(t, got, len(in))
	for i := range in {
		assert.Equal(t, linOffset32(in[i], prev), linOffset32(got[i], resolved),
			"row %d changed linear position", i)
	}
}

func TestRunRoundTrip(t *testing.T) {
	shapes := []struct {
		prev, next tensor.Shape
	}{
		{tensor.Shape{2, 3, 4}, tensor.Shape{9, -1}},
		{tensor.Shape{6, 10}, tensor.Shape{2, 5, 6}},
		{tensor.Shape{64}, tensor.Shape{4, 4, 4}},
		{tensor.Shape{5, 5, 5}, tensor.Shape{-1}},
	}

	for _, tt := range shapes {
		var in [][]int32
		for off := int64(0); off < int64(tt.prev.NumElements()); off += 7 {
			in = append(in, unflatten64(off, tt.prev))
		}
		idx := rawFromRows32(t, in, len(tt.prev))

		mid, resolved, err := Run(idx, tt.prev, tt.next, seqCfg())
		require.NoError(t, err)

		back, backShape, err := Run(mid, resolved, tt.prev, seqCfg())
		require.NoError(t, err)

		assert.True(t, tt.prev.Equal(backShape))
		assert.Equal(t, in, rows32(back), "round trip %v -> %v -> %v", tt.prev, tt.next, tt.prev)
	}
}

func TestRunIdentityEquivalence(t *testing.T) {
	prev := tensor.Shape{4, 6}
	in := [][]int32{{0, 0}, {1, 3}, {3, 5}, {2, 2}}
	idx := rawFromRows32(t, in, 2)

	// Shortcut path.
	out, resolved, err := Run(idx, prev, tensor.Shape{4, 6}, seqCfg())
	require.NoError(t, err)
	assert.Equal(t, prev, resolved)
	assert.Equal(t, in, rows32(out))

	// General path forced through the transcoder must agree byte for
	// byte with the shortcut.
	forced, err := coo.NewRaw(idx.Rows(), len(prev), tensor.Int32, tensor.CPU)
	require.NoError(t, err)
	transcode(forced.AsInt32(), idx.AsInt32(), prev, prev, idx.Rows(), seqCfg())
	assert.Equal(t, out.Data(), forced.Data())
}

func TestRunParallelMatchesSequential(t *testing.T) {
	prev := tensor.Shape{16, 9, 11}
	next := tensor.Shape{4, -1, 3}

	var in [][]int32
	for off := int64(0); off < int64(prev.NumElements()); off += 2 {
		in = append(in, unflatten64(off, prev))
	}
	idx := rawFromRows32(t, in, len(prev))

	seq, seqShape, err := Run(idx, prev, next, seqCfg())
	require.NoError(t, err)
	par, parShape, err := Run(idx, prev, next, parCfg())
	require.NoError(t, err)

	assert.True(t, seqShape.Equal(parShape))
	assert.Equal(t, seq.Data(), par.Data())
}

func TestRunEmptyInput(t *testing.T) {
	idx, err := coo.NewRaw(0, 3, tensor.Int32, tensor.CPU)
	require.NoError(t, err)

	out, resolved, err := Run(idx, tensor.Shape{2, 3, 4}, tensor.Shape{9, -1}, seqCfg())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rows())
	assert.Equal(t, 2, out.Dims())
	assert.Equal(t, tensor.Shape{9, 4}, resolved)
}

func TestRunDimensionMismatch(t *testing.T) {
	idx := rawFromRows32(t, [][]int32{{0, 0}}, 2)

	_, _, err := Run(idx, tensor.Shape{2, 3, 4}, tensor.Shape{9, -1}, seqCfg())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, _, err = Run(nil, tensor.Shape{2}, tensor.Shape{2}, seqCfg())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestRunOverflow(t *testing.T) {
	// product(prevShape) exceeds int64.
	idx, err := coo.NewRaw(0, 3, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	huge := tensor.Shape{1 << 31, 1 << 31, 4}
	_, _, err = Run(idx, huge, tensor.Shape{-1}, seqCfg())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)

	// Resolved dimension does not fit int32 storage.
	idx32 := rawFromRows32(t, [][]int32{{0, 0}}, 2)
	_, _, err = Run(idx32, tensor.Shape{1 << 20, 1 << 20}, tensor.Shape{-1}, seqCfg())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)

	// Same reshape with int64 storage is fine.
	idx64 := rawFromRows64(t, [][]int64{{0, 0}}, 2)
	out, resolved, err := Run(idx64, tensor.Shape{1 << 20, 1 << 20}, tensor.Shape{-1}, seqCfg())
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1 << 40}, resolved)
	assert.Equal(t, []int64{0}, out.AsInt64())
}

func TestRunWideOffsets(t *testing.T) {
	// Offsets near the top of the int64-safe range for the last entry:
	// intermediate arithmetic must not wrap even though coordinates are
	// stored as int32.
	prev := tensor.Shape{math.MaxInt32, 2}
	next := tensor.Shape{2, -1}

	idx := rawFromRows32(t, [][]int32{{math.MaxInt32 - 1, 1}}, 2)
	out, resolved, err := Run(idx, prev, next, seqCfg())
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2, math.MaxInt32}, resolved)

	in := [][]int32{{math.MaxInt32 - 1, 1}}
	got := rows32(out)
	assert.Equal(t, linOffset32(in[0], prev), linOffset32(got[0], resolved))
}
