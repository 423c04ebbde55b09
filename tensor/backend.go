// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/numerics/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go, parallel over goroutines
//   - backend/webgpu: WGSL compute shaders via WebGPU (Complex64, Windows)
//
// Example:
//
//	import (
//	    "github.com/born-ml/numerics/backend/cpu"
//	    "github.com/born-ml/numerics/cplx"
//	    "github.com/born-ml/numerics/tensor"
//	)
//
//	backend := cpu.New()
//	z := tensor.Full(tensor.Shape{2, 3}, cplx.New(1.0, 2.0), backend)
//	w := z.Div(z)  // Uses backend.Div under the hood
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor       // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor       // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor       // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor       // Careful division without spurious overflow.
	MulAdd(a, b, c *RawTensor) *RawTensor // a*b + c.

	// Unary operations.
	Neg(x *RawTensor) *RawTensor          // Negation.
	Conj(x *RawTensor) *RawTensor         // Complex conjugate.
	Canonicalize(x *RawTensor) *RawTensor // Canonical member of each equivalence class.

	// Scalar operations.
	Scale(x *RawTensor, factor float64) *RawTensor        // Multiply by a real scalar.
	DivideBy(x *RawTensor, divisor complex128) *RawTensor // Divide by one complex value.

	// Norms and polar form.
	Length(x *RawTensor) *RawTensor                // Euclidean norm.
	LengthSquared(x *RawTensor) *RawTensor         // re*re + im*im.
	Magnitude(x *RawTensor) *RawTensor             // max(|re|, |im|).
	Phase(x *RawTensor) *RawTensor                 // Angle in radians.
	FromPolar(length, phase *RawTensor) *RawTensor // Real tensors to complex.

	// Optional results with a Bool presence mask.
	Normalize(x *RawTensor) (values, ok *RawTensor)  // Unit-length values.
	Reciprocal(x *RawTensor) (values, ok *RawTensor) // 1/x.

	// Classification (return bool tensor).
	Equal(a, b *RawTensor) *RawTensor    // Equality on the Riemann sphere.
	IsFinite(x *RawTensor) *RawTensor    // No infinite or NaN component.
	IsZero(x *RawTensor) *RawTensor      // Both components zero.
	IsNormal(x *RawTensor) *RawTensor    // Finite with full precision.
	IsSubnormal(x *RawTensor) *RawTensor // Finite, non-zero, lost precision.

	// Julia returns the Int32 divergence map of z -> z*z + c.
	Julia(z *RawTensor, c complex128, tolerance float64, iterations int) *RawTensor

	// Metadata.
	Name() string   // Backend name (e.g., "CPU", "WebGPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
