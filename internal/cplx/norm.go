package cplx

import "fmt"

// Polar holds the polar coordinates of a complex value.
type Polar[R Real] struct {
	Length R
	Phase  R
}

// Magnitude returns the ∞-norm max(|re|, |im|), or +inf if z is not finite.
// It is always representable for finite z, which makes it the scaling pivot
// for the careful algorithms. Use Length for the Euclidean norm.
func (z Complex[R]) Magnitude() R {
	if !z.IsFinite() {
		return inf[R]()
	}
	return max(abs(z.x), abs(z.y))
}

// LengthSquared returns re*re + im*im.
//
// This is cheap but prone to overflow or underflow: for finite values that
// are not well scaled it is often zero or infinity even when Length is a
// finite, normal number.
func (z Complex[R]) LengthSquared() R {
	return z.x*z.x + z.y*z.y
}

// Length returns the Euclidean norm sqrt(re*re + im*im) without spurious
// overflow or underflow:
//
//	z := cplx.New[float32](3e20, 4e20)
//	naive := sqrt(3e20*3e20 + 4e20*4e20) // +Inf
//	careful := z.Length()                 // 5e20
//
// The result can still overflow when the true length exceeds the largest
// finite R, since it may be up to sqrt(2) times larger than either component.
// If z is not finite, Length is +inf.
func (z Complex[R]) Length() R {
	naive := z.LengthSquared()
	if IsNormalReal(naive) {
		return sqrt(naive)
	}
	return z.carefulLength()
}

// carefulLength is the slow path of Length.
func (z Complex[R]) carefulLength() R {
	if !z.IsFinite() {
		return inf[R]()
	}
	return hypot(z.x, z.y)
}

// Phase returns the angle above the real axis in radians, in [-π, π].
// The phase of zero and of the point at infinity is undefined and reported
// as NaN.
func (z Complex[R]) Phase() R {
	if !z.IsFinite() || z.IsZero() {
		return nan[R]()
	}
	return atan2(z.y, z.x)
}

// Polar returns the length and phase of z. Non-finite values give
// (+inf, NaN); zero gives (0, NaN).
func (z Complex[R]) Polar() Polar[R] {
	return Polar[R]{Length: z.Length(), Phase: z.Phase()}
}

// FromPolar returns the complex value with the given length and phase.
//
// A negative length reflects the point through the origin:
// FromPolar(-r, θ) equals FromPolar(r, θ).Neg(). For any phase, including
// NaN and ±inf, FromPolar(0, θ) is Zero and FromPolar(±inf, θ) is Infinity.
// Otherwise the phase must be finite; a non-finite phase with a finite,
// non-zero (or NaN) length panics with an error wrapping ErrPolarDomain.
func FromPolar[R Real](length, phase R) Complex[R] {
	if isFinite(phase) {
		sin, cos := sincos(phase)
		return New(cos, sin).MulReal(length)
	}
	switch {
	case length == 0:
		return Zero[R]()
	case isInf(length):
		return Infinity[R]()
	default:
		panic(fmt.Errorf("%w: length %v, phase %v", ErrPolarDomain, length, phase))
	}
}

// Complex returns the value described by p.
func (p Polar[R]) Complex() Complex[R] {
	return FromPolar(p.Length, p.Phase)
}
