package cplx

// Add returns z + w.
func (z Complex[R]) Add(w Complex[R]) Complex[R] {
	return Complex[R]{x: z.x + w.x, y: z.y + w.y}
}

// Sub returns z - w. Subtracting two infinities may leave NaN components;
// canonicalize first if the representation matters.
func (z Complex[R]) Sub(w Complex[R]) Complex[R] {
	return Complex[R]{x: z.x - w.x, y: z.y - w.y}
}

// Neg returns -z.
func (z Complex[R]) Neg() Complex[R] {
	return Complex[R]{x: -z.x, y: -z.y}
}

// Conj returns the complex conjugate of z.
func (z Complex[R]) Conj() Complex[R] {
	return Complex[R]{x: z.x, y: -z.y}
}

// MulReal scales both components by a.
func (z Complex[R]) MulReal(a R) Complex[R] {
	return Complex[R]{x: z.x * a, y: z.y * a}
}

// DivReal divides both components by a.
func (z Complex[R]) DivReal(a R) Complex[R] {
	return Complex[R]{x: z.x / a, y: z.y / a}
}

// Mul returns z·w using (ac-bd, ad+bc). Intermediate products are not
// rescaled; operands are expected in the range the caller computes in.
func (z Complex[R]) Mul(w Complex[R]) Complex[R] {
	return Complex[R]{
		x: z.x*w.x - z.y*w.y,
		y: z.x*w.y + z.y*w.x,
	}
}

// MulAdd returns z·w + c.
func (z Complex[R]) MulAdd(w, c Complex[R]) Complex[R] {
	return z.Mul(w).Add(c)
}

// Div returns z/w.
//
// When |w|² is a normal number the quotient is z·conj(w)/|w|², which is
// exact enough for well-scaled divisors. Otherwise both operands are
// rescaled by their ∞-norms before dividing, so the result only overflows or
// underflows when the true quotient does. Division by zero yields the point
// at infinity and any finite value divided by infinity is zero.
func (z Complex[R]) Div(w Complex[R]) Complex[R] {
	lenSq := w.LengthSquared()
	if IsNormalReal(lenSq) {
		return z.Mul(w.Conj().DivReal(lenSq))
	}
	return rescaledDivide(z, w)
}

// rescaledDivide is the slow path of Div.
func rescaledDivide[R Real](z, w Complex[R]) Complex[R] {
	if w.IsZero() {
		return Infinity[R]()
	}
	if z.IsZero() || !w.IsFinite() {
		return Zero[R]()
	}
	zScale := z.Magnitude()
	wScale := w.Magnitude()
	zNorm := z.DivReal(zScale)
	wNorm := w.DivReal(wScale)
	r := zNorm.Mul(wNorm.Conj()).DivReal(wNorm.LengthSquared())

	// The quotient is r·zScale/wScale with |r| close to one. For extreme
	// scale ratios only one evaluation order avoids an intermediate
	// overflow or underflow; try them in this order.
	if ratio := zScale / wScale; IsNormalReal(ratio) {
		return r.MulReal(ratio)
	}
	if IsNormalReal(r.Magnitude() * zScale) {
		return r.MulReal(zScale).DivReal(wScale)
	}
	return r.DivReal(wScale).MulReal(zScale)
}
