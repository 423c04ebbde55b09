// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe element-wise tensors of complex values.
//
// # Overview
//
// A Tensor[T, B] holds a dense row-major array of T computed by backend B.
// T is normally cplx.Complex64 or cplx.Complex128; real, int32 and bool
// tensors appear as results (norms, divergence maps, masks). Every
// operation applies the careful scalar algorithms of package cplx to each
// element, so a tensor quotient never overflows where the scalar quotient
// would not.
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
//	    z := tensor.Plane(cplx.New(-2.0, 2.0), cplx.New(2.0, -2.0), 4, 4, backend)
//	    w := z.Div(z.Conj())
//	    lengths := tensor.Length[float64](w)
//	}
//
// # Optional Results
//
// Normalize and Reciprocal return a values tensor and a Bool mask that is
// false where no result exists. Absent values are stored as zero:
//
//	recip, ok := z.Reciprocal()
//	fmt.Println(tensor.Count(ok), "of", z.NumElements(), "have a reciprocal")
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules:
//
//	col := tensor.Zeros[cplx.Complex128](tensor.Shape{3, 1}, backend) // (3, 1)
//	row := tensor.Zeros[cplx.Complex128](tensor.Shape{4}, backend)    // (4,)
//	sum := col.Add(row)                                                // (3, 4)
//
// # Devices
//
//   - CPU: Pure Go, parallel across cores
//   - WebGPU: WGSL compute shaders (Complex64, Windows)
//
// Programmer errors such as mismatched dtypes or incompatible shapes panic
// with an "op: reason" message. Construction from user data returns errors
// wrapping ErrInvalidShape, ErrSizeMismatch or ErrUnsupportedType.
package tensor
