//go:build windows

package webgpu

// WGSL compute shaders for sparse coordinate kernels.
// Using string constants instead of embed for simplicity.

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// sparseReshapeShader remaps one coordinate row per invocation: the row
// is flattened against the source stride table, then unflattened through
// the target divider table. WGSL has no 64-bit integers, so offsets are
// carried in i32; the host rejects tensors whose element count does not
// fit before dispatching.
const sparseReshapeShader = `
@group(0) @binding(0) var<storage, read> indices: array<i32>;
@group(0) @binding(1) var<storage, read> multipliers: array<i32>;
@group(0) @binding(2) var<storage, read> dividers: array<i32>;
@group(0) @binding(3) var<storage, read_write> out_indices: array<i32>;

struct Params {
    rows: u32,
    n_dim: u32,
    m_dim: u32,
}
@group(0) @binding(4) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let row = global_id.x;
    if (row >= params.rows) {
        return;
    }

    var offset: i32 = 0;
    for (var j: u32 = 0u; j < params.n_dim; j = j + 1u) {
        offset = offset + indices[row * params.n_dim + j] * multipliers[j];
    }

    for (var j: u32 = 0u; j < params.m_dim; j = j + 1u) {
        out_indices[row * params.m_dim + j] = offset / dividers[j];
        offset = offset % dividers[j];
    }
}
`
