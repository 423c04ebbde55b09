// Package cplx implements a complex number value type whose derived
// operations (length, division, normalization, reciprocal, polar conversion)
// stay correct across the full dynamic range of the component type.
//
// Naive formulas such as sqrt(x*x+y*y) or z*conj(w)/|w|^2 overflow or
// underflow for finite inputs far from unit magnitude. Each such operation
// here takes a cheap path when its intermediate result is a normal number and
// falls back to a rescaled algorithm otherwise.
//
// All values with an infinite or NaN component form a single equivalence
// class, the point at infinity. Equal and Canonicalized operate on these
// classes; Go's == on the struct still compares raw bits.
//
// Complex is a plain pair of R with no indirection, so a []Complex[float32]
// has the memory layout of []complex64 and can be reinterpreted from tensor
// buffers. Every method is a pure function of its receiver and arguments and
// is safe to call from any number of goroutines.
package cplx

// Complex is a complex number with components of type R.
type Complex[R Real] struct {
	x R // real part, raw storage
	y R // imaginary part, raw storage
}

// Complex64 and Complex128 are the two instantiations used by tensors.
type (
	Complex64  = Complex[float32]
	Complex128 = Complex[float64]
)

// New returns the complex number re + im·i.
func New[R Real](re, im R) Complex[R] {
	return Complex[R]{x: re, y: im}
}

// FromReal promotes re to a complex number with a +0 imaginary part.
func FromReal[R Real](re R) Complex[R] {
	return Complex[R]{x: re}
}

// Zero returns the additive identity (+0, +0).
func Zero[R Real]() Complex[R] {
	return Complex[R]{}
}

// One returns the multiplicative identity (1, +0).
func One[R Real]() Complex[R] {
	return Complex[R]{x: 1}
}

// I returns the imaginary unit (+0, 1).
func I[R Real]() Complex[R] {
	return Complex[R]{y: 1}
}

// Infinity returns the canonical representative of the point at infinity,
// (+inf, +0).
func Infinity[R Real]() Complex[R] {
	return Complex[R]{x: inf[R]()}
}

// FromNative converts a Go complex128 to a Complex[R], rounding each
// component to R.
func FromNative[R Real](c complex128) Complex[R] {
	return Complex[R]{x: R(real(c)), y: R(imag(c))}
}

// FromComplex64 converts a Go complex64.
func FromComplex64(c complex64) Complex64 {
	return Complex64{x: real(c), y: imag(c)}
}

// FromComplex128 converts a Go complex128.
func FromComplex128(c complex128) Complex128 {
	return Complex128{x: real(c), y: imag(c)}
}

// Complex128 returns z as a Go complex128. The conversion is exact.
func (z Complex[R]) Complex128() complex128 {
	return complex(float64(z.x), float64(z.y))
}

// Complex64 returns z as a Go complex64, rounding float64 components.
func (z Complex[R]) Complex64() complex64 {
	return complex(float32(z.x), float32(z.y))
}

// Components returns the raw stored components without any masking.
func (z Complex[R]) Components() (re, im R) {
	return z.x, z.y
}

// Real returns the real part of z, or NaN if z is not finite.
func (z Complex[R]) Real() R {
	if z.IsFinite() {
		return z.x
	}
	return nan[R]()
}

// Imag returns the imaginary part of z, or NaN if z is not finite.
func (z Complex[R]) Imag() R {
	if z.IsFinite() {
		return z.y
	}
	return nan[R]()
}
