// Package webgpu implements the WebGPU backend: element-wise complex kernels
// written in WGSL and dispatched through go-webgpu (zero-CGO bindings).
//
// WGSL has no 64-bit floats, so only Complex64 tensors run on the GPU.
// Complex128 tensors are handed to the CPU backend. The backend is built on
// Windows only, where the native wgpu library is loaded at runtime.
//
// WGSL lets an implementation flush subnormal f32 values to zero. On such
// devices IsSubnormal reports false for inputs the CPU classifies as
// subnormal, and the rescaling paths of Div, Length and Normalize can lose
// results the CPU keeps.
package webgpu
