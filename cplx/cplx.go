// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cplx

import (
	"github.com/born-ml/numerics/internal/cplx"
)

// Real is the constraint for the component type of a complex value.
// Supported types: float32, float64 and types derived from them.
type Real = cplx.Real

// Complex is a complex number with components of type R.
//
// Complex[float32] has the memory layout of complex64 and Complex[float64]
// the layout of complex128, so slices can be reinterpreted in place.
//
// The zero value is the complex zero. All non-finite values represent the
// single point at infinity; see Equal and Canonicalized.
type Complex[R Real] = cplx.Complex[R]

// Complex64 is a complex value with float32 components.
type Complex64 = cplx.Complex64

// Complex128 is a complex value with float64 components.
type Complex128 = cplx.Complex128

// Polar holds the polar coordinates of a complex value.
type Polar[R Real] = cplx.Polar[R]

// ErrPolarDomain is wrapped by the panic value of FromPolar when a finite,
// non-zero length is combined with a non-finite phase.
var ErrPolarDomain = cplx.ErrPolarDomain

// New returns re + im·i.
func New[R Real](re, im R) Complex[R] {
	return cplx.New(re, im)
}

// FromReal returns x + 0i.
func FromReal[R Real](x R) Complex[R] {
	return cplx.FromReal(x)
}

// FromPolar returns the value with the given length and phase.
//
// FromPolar(0, θ) is Zero and FromPolar(±inf, θ) is Infinity for any phase.
// A negative length reflects the result through the origin. A non-finite
// phase combined with any other length panics.
func FromPolar[R Real](length, phase R) Complex[R] {
	return cplx.FromPolar(length, phase)
}

// FromNative converts a native complex128 to Complex[R].
func FromNative[R Real](c complex128) Complex[R] {
	return cplx.FromNative[R](c)
}

// FromComplex64 converts a native complex64.
func FromComplex64(c complex64) Complex64 {
	return cplx.FromComplex64(c)
}

// FromComplex128 converts a native complex128.
func FromComplex128(c complex128) Complex128 {
	return cplx.FromComplex128(c)
}

// Zero returns 0 + 0i.
func Zero[R Real]() Complex[R] {
	return cplx.Zero[R]()
}

// One returns 1 + 0i.
func One[R Real]() Complex[R] {
	return cplx.One[R]()
}

// I returns the imaginary unit.
func I[R Real]() Complex[R] {
	return cplx.I[R]()
}

// Infinity returns the canonical point at infinity, +inf + 0i.
func Infinity[R Real]() Complex[R] {
	return cplx.Infinity[R]()
}

// IsNormalReal reports whether x is non-zero, finite and not subnormal.
func IsNormalReal[R Real](x R) bool {
	return cplx.IsNormalReal(x)
}

// Limits returns the smallest positive normal and the largest finite value of R.
func Limits[R Real]() (minNormal, maxFinite R) {
	return cplx.Limits[R]()
}
