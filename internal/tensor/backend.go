package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// All operations are element-wise over complex tensors (Complex64 or
// Complex128) unless noted. Binary operations accept broadcast-compatible
// shapes. Results of real-valued operations have the component type of the
// input (Complex64 gives Float32). Programmer errors such as mismatched
// dtypes panic with an "op: reason" message.
//
// Implementations:
//   - CPU: Pure Go, parallel over goroutines
//   - WebGPU: WGSL compute shaders (Complex64 only)
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor // careful division, see cplx.Complex.Div
	MulAdd(a, b, c *RawTensor) *RawTensor

	// Unary operations
	Neg(x *RawTensor) *RawTensor
	Conj(x *RawTensor) *RawTensor
	Canonicalize(x *RawTensor) *RawTensor

	// Scalar operations
	Scale(x *RawTensor, factor float64) *RawTensor        // multiply by a real scalar
	DivideBy(x *RawTensor, divisor complex128) *RawTensor // divide by one complex value

	// Norms and polar form (complex -> real)
	Length(x *RawTensor) *RawTensor
	LengthSquared(x *RawTensor) *RawTensor
	Magnitude(x *RawTensor) *RawTensor
	Phase(x *RawTensor) *RawTensor
	FromPolar(length, phase *RawTensor) *RawTensor // real -> complex

	// Optional results: values plus a Bool mask that is false where the
	// result is absent. Absent values are zero.
	Normalize(x *RawTensor) (values, ok *RawTensor)
	Reciprocal(x *RawTensor) (values, ok *RawTensor)

	// Classification (complex -> bool)
	Equal(a, b *RawTensor) *RawTensor
	IsFinite(x *RawTensor) *RawTensor
	IsZero(x *RawTensor) *RawTensor
	IsNormal(x *RawTensor) *RawTensor
	IsSubnormal(x *RawTensor) *RawTensor

	// Julia iterates z = z*z + c for every element and returns an Int32
	// tensor holding the first iteration at which |z| exceeded tolerance,
	// or iterations if it never did.
	Julia(z *RawTensor, c complex128, tolerance float64, iterations int) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
