//go:build windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated complex
// tensor operations.
//
// Kernels are WGSL compute shaders. WGSL has no 64-bit floats, so
// Complex64 tensors run on the GPU and Complex128 tensors run on the CPU.
//
// Example:
//
//	import (
//	    "github.com/born-ml/numerics/backend/webgpu"
//	    "github.com/born-ml/numerics/cplx"
//	    "github.com/born-ml/numerics/tensor"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    z := tensor.Plane(cplx.New[float32](-1.5, 1.5), cplx.New[float32](1.5, -1.5), 2048, 2048, gpu)
//	    escape := z.Julia(complex(-0.8, 0.156), 2, 200)
//	}
package webgpu

import (
	internalwebgpu "github.com/born-ml/numerics/internal/backend/webgpu"
	"github.com/born-ml/numerics/tensor"
)

// Backend represents the WebGPU backend implementation for GPU-accelerated
// tensor operations.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
//
// This function initializes the WebGPU device and returns a backend
// ready for tensor operations. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// Example:
//
//	var backend tensor.Backend = cpu.New()
//	if webgpu.IsAvailable() {
//	    if gpu, err := webgpu.New(); err == nil {
//	        defer gpu.Release()
//	        backend = gpu
//	    }
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
