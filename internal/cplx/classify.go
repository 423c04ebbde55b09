package cplx

// IsFinite reports whether neither component is infinite or NaN.
func (z Complex[R]) IsFinite() bool {
	return isFinite(z.x) && isFinite(z.y)
}

// IsZero reports whether both components are +0 or -0.
func (z Complex[R]) IsZero() bool {
	return z.x == 0 && z.y == 0
}

// IsNormal reports whether z is finite and at least one component is a
// normal number. One component may underflow to zero or a subnormal while the
// other still carries full precision.
func (z Complex[R]) IsNormal() bool {
	return z.IsFinite() && (IsNormalReal(z.x) || IsNormalReal(z.y))
}

// IsSubnormal reports whether z is finite, not normal and not zero. A
// subnormal result means underflow occurred and precision was lost.
func (z Complex[R]) IsSubnormal() bool {
	return z.IsFinite() && !z.IsNormal() && !z.IsZero()
}

// Equal reports whether z and w denote the same point of the extended
// complex plane. Any two non-finite values are equal (both are the point at
// infinity); finite values compare componentwise, so +0 and -0 are equal.
func (z Complex[R]) Equal(w Complex[R]) bool {
	if !z.IsFinite() && !w.IsFinite() {
		return true
	}
	// A finite value against a non-finite one falls through and fails here.
	return z.x == w.x && z.y == w.y
}

// Canonicalized returns the canonical representative of z's class: (+0, +0)
// for zeros, (+inf, +0) for every non-finite value and z itself otherwise.
func (z Complex[R]) Canonicalized() Complex[R] {
	switch {
	case z.IsZero():
		return Zero[R]()
	case z.IsFinite():
		return z
	default:
		return Infinity[R]()
	}
}
