package cplx

// Normalized returns a value of length one with the same phase as z.
// ok is false for zero and for non-finite values, whose phase is undefined.
func (z Complex[R]) Normalized() (unit Complex[R], ok bool) {
	if length := z.Length(); IsNormalReal(length) {
		return z.DivReal(length), true
	}
	if z.IsZero() || !z.IsFinite() {
		return Complex[R]{}, false
	}
	// Length overflowed or underflowed. Dividing by the ∞-norm brings z to
	// a length in [1, √2], so this recursion is one level deep.
	return z.DivReal(z.Magnitude()).Normalized()
}

// Reciprocal returns 1/z if it can be computed without undue overflow or
// underflow. The reciprocal of zero (infinity) and of infinity (zero) are
// exact and reported with ok set.
//
// When many values are divided by the same denominator, multiplying by the
// reciprocal is much cheaper than dividing each time:
//
//	if recip, ok := divisor.Reciprocal(); ok {
//		for i := range data {
//			data[i] = data[i].Mul(recip)
//		}
//	} else {
//		for i := range data {
//			data[i] = data[i].Div(divisor)
//		}
//	}
//
// ok is false when 1/z would be subnormal; callers should then fall back on
// Div.
func (z Complex[R]) Reciprocal() (recip Complex[R], ok bool) {
	recip = One[R]().Div(z)
	if recip.IsNormal() || z.IsZero() || !z.IsFinite() {
		return recip, true
	}
	return Complex[R]{}, false
}
