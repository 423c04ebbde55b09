package tensor

import "fmt"

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Full(Shape{3, 1}, cplx.One[float32](), backend)
//	b := tensor.Full(Shape{3, 5}, cplx.I[float32](), backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Div performs element-wise division with broadcasting.
// Quotients only overflow or underflow when the true quotient does.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Div(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// MulAdd computes t*other + addend element-wise with broadcasting.
//
// Example (one step of a quadratic map):
//
//	z = z.MulAdd(z, c)
func (t *Tensor[T, B]) MulAdd(other, addend *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.MulAdd(t.raw, other.raw, addend.raw)
	return New[T, B](result, t.backend)
}

// Neg negates every element.
func (t *Tensor[T, B]) Neg() *Tensor[T, B] {
	return New[T, B](t.backend.Neg(t.raw), t.backend)
}

// Conj conjugates every element.
func (t *Tensor[T, B]) Conj() *Tensor[T, B] {
	return New[T, B](t.backend.Conj(t.raw), t.backend)
}

// Canonicalize maps every zero to +0+0i and every non-finite value to the
// canonical infinity.
func (t *Tensor[T, B]) Canonicalize() *Tensor[T, B] {
	return New[T, B](t.backend.Canonicalize(t.raw), t.backend)
}

// Scale multiplies every element by a real factor.
func (t *Tensor[T, B]) Scale(factor float64) *Tensor[T, B] {
	return New[T, B](t.backend.Scale(t.raw, factor), t.backend)
}

// DivideBy divides every element by a single complex divisor. When the
// divisor has a normal reciprocal the backend multiplies by it instead.
func (t *Tensor[T, B]) DivideBy(divisor complex128) *Tensor[T, B] {
	return New[T, B](t.backend.DivideBy(t.raw, divisor), t.backend)
}

// Normalize returns unit-length values with the phase of each element and a
// mask that is false where the element is zero or non-finite.
func (t *Tensor[T, B]) Normalize() (*Tensor[T, B], *Tensor[bool, B]) {
	values, ok := t.backend.Normalize(t.raw)
	return New[T, B](values, t.backend), New[bool, B](ok, t.backend)
}

// Reciprocal returns 1/t and a mask that is false where the reciprocal is
// subnormal.
func (t *Tensor[T, B]) Reciprocal() (*Tensor[T, B], *Tensor[bool, B]) {
	values, ok := t.backend.Reciprocal(t.raw)
	return New[T, B](values, t.backend), New[bool, B](ok, t.backend)
}

// Equal compares element-wise on the Riemann sphere: all non-finite values
// are equal to each other.
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) *Tensor[bool, B] {
	return New[bool, B](t.backend.Equal(t.raw, other.raw), t.backend)
}

// IsFinite reports element-wise whether both components are finite.
func (t *Tensor[T, B]) IsFinite() *Tensor[bool, B] {
	return New[bool, B](t.backend.IsFinite(t.raw), t.backend)
}

// IsZero reports element-wise whether both components are zero.
func (t *Tensor[T, B]) IsZero() *Tensor[bool, B] {
	return New[bool, B](t.backend.IsZero(t.raw), t.backend)
}

// IsNormal reports element-wise whether the value has full precision.
func (t *Tensor[T, B]) IsNormal() *Tensor[bool, B] {
	return New[bool, B](t.backend.IsNormal(t.raw), t.backend)
}

// IsSubnormal reports element-wise whether the value is finite, non-zero
// and not normal.
func (t *Tensor[T, B]) IsSubnormal() *Tensor[bool, B] {
	return New[bool, B](t.backend.IsSubnormal(t.raw), t.backend)
}

// Julia iterates z = z*z + c and returns the divergence map: per element,
// the first iteration at which |z| > tolerance, else iterations.
func (t *Tensor[T, B]) Julia(c complex128, tolerance float64, iterations int) *Tensor[int32, B] {
	return New[int32, B](t.backend.Julia(t.raw, c, tolerance, iterations), t.backend)
}

// Length returns the element-wise Euclidean norm as a real tensor of
// precision R.
//
// Example:
//
//	lengths := tensor.Length[float32](z) // z is Tensor[cplx.Complex64, B]
func Length[R float32 | float64, T DType, B Backend](t *Tensor[T, B]) *Tensor[R, B] {
	return realResult[R](t, "length", t.backend.Length(t.raw))
}

// LengthSquared returns re*re + im*im element-wise.
func LengthSquared[R float32 | float64, T DType, B Backend](t *Tensor[T, B]) *Tensor[R, B] {
	return realResult[R](t, "length squared", t.backend.LengthSquared(t.raw))
}

// Magnitude returns the element-wise ∞-norm, +inf for non-finite values.
func Magnitude[R float32 | float64, T DType, B Backend](t *Tensor[T, B]) *Tensor[R, B] {
	return realResult[R](t, "magnitude", t.backend.Magnitude(t.raw))
}

// Phase returns the element-wise phase in radians, NaN where undefined.
func Phase[R float32 | float64, T DType, B Backend](t *Tensor[T, B]) *Tensor[R, B] {
	return realResult[R](t, "phase", t.backend.Phase(t.raw))
}

// FromPolar builds a complex tensor of type T from length and phase tensors
// with broadcasting.
//
// Example:
//
//	z := tensor.FromPolar[cplx.Complex128](lengths, phases)
func FromPolar[T DType, R float32 | float64, B Backend](length, phase *Tensor[R, B]) *Tensor[T, B] {
	if want := DataTypeOf[R]().ComplexType(); want != DataTypeOf[T]() {
		panic(fmt.Sprintf("from polar: %s components cannot build %s", DataTypeOf[R](), DataTypeOf[T]()))
	}
	return New[T, B](length.backend.FromPolar(length.raw, phase.raw), length.backend)
}

// realResult wraps a real-valued backend result, checking that R is the
// component type of t.
func realResult[R float32 | float64, T DType, B Backend](t *Tensor[T, B], op string, raw *RawTensor) *Tensor[R, B] {
	if want := t.DType().RealType(); want != DataTypeOf[R]() {
		panic(fmt.Sprintf("%s: %s tensor has %s components, not %s", op, t.DType(), want, DataTypeOf[R]()))
	}
	return New[R, B](raw, t.backend)
}
