// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for complex tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Complex64 and Complex128 support
//   - Element-wise kernels split across goroutines
//   - NumPy-compatible broadcasting
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/numerics/backend/cpu"
//	    "github.com/born-ml/numerics/cplx"
//	    "github.com/born-ml/numerics/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    z := tensor.Plane(cplx.New(-1.5, 1.5), cplx.New(1.5, -1.5), 512, 512, backend)
//	    escape := z.Julia(complex(-0.8, 0.156), 2, 200)
//	}
//
// # Performance
//
// Kernels are generic over the element type and compiled per precision.
// Work is split into blocks of 1024 elements; tensors
// smaller than Config.MinChunkSize per worker run on the calling goroutine.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
