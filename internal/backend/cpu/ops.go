package cpu

import (
	"github.com/born-ml/numerics/internal/cplx"
	"github.com/born-ml/numerics/internal/tensor"
)

type (
	c64  = cplx.Complex64
	c128 = cplx.Complex128
)

// binaryOp dispatches a same-type binary complex operation on the dtype.
func (cpu *CPUBackend) binaryOp(op string, a, b *tensor.RawTensor, f64 func(x, y c64) c64, f128 func(x, y c128) c128) *tensor.RawTensor {
	if dtype := complexType(op, a, b); dtype == tensor.Complex64 {
		return binaryKernel(cpu, op, a, b, dtype, f64)
	}
	return binaryKernel(cpu, op, a, b, tensor.Complex128, f128)
}

// unaryOp dispatches a unary operation whose result has dtype outType(x).
func unaryOp[O64, O128 any](cpu *CPUBackend, op string, x *tensor.RawTensor, outType func(tensor.DataType) tensor.DataType, f64 func(c64) O64, f128 func(c128) O128) *tensor.RawTensor {
	dtype := complexType(op, x)
	if dtype == tensor.Complex64 {
		return unaryKernel(cpu, op, x, outType(dtype), f64)
	}
	return unaryKernel(cpu, op, x, outType(dtype), f128)
}

func same(dt tensor.DataType) tensor.DataType { return dt }
func component(dt tensor.DataType) tensor.DataType { return dt.RealType() }
func boolean(tensor.DataType) tensor.DataType { return tensor.Bool }
func divergence(tensor.DataType) tensor.DataType { return tensor.Int32 }

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b, c64.Add, c128.Add)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b, c64.Sub, c128.Sub)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b, c64.Mul, c128.Mul)
}

// Div performs element-wise careful division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("div", a, b, c64.Div, c128.Div)
}

// MulAdd computes a*b + c element-wise with broadcasting.
func (cpu *CPUBackend) MulAdd(a, b, c *tensor.RawTensor) *tensor.RawTensor {
	if complexType("mul add", a, b, c) == tensor.Complex64 {
		return ternaryKernel(cpu, "mul add", a, b, c, c64.MulAdd)
	}
	return ternaryKernel(cpu, "mul add", a, b, c, c128.MulAdd)
}

// Neg negates every element.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(cpu, "neg", x, same, c64.Neg, c128.Neg)
}

// Conj conjugates every element.
func (cpu *CPUBackend) Conj(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(cpu, "conj", x, same, c64.Conj, c128.Conj)
}

// Canonicalize maps every element to the canonical member of its class.
func (cpu *CPUBackend) Canonicalize(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(cpu, "canonicalize", x, same, c64.Canonicalized, c128.Canonicalized)
}

// Scale multiplies every element by a real factor.
func (cpu *CPUBackend) Scale(x *tensor.RawTensor, factor float64) *tensor.RawTensor {
	f32 := float32(factor)
	return unaryOp(cpu, "scale", x, same,
		func(z c64) c64 { return z.MulReal(f32) },
		func(z c128) c128 { return z.MulReal(factor) })
}

// DivideBy divides every element by one complex divisor.
//
// When the divisor has a normal reciprocal every element is multiplied by
// it, which is much cheaper than a division per element. Otherwise each
// element goes through careful division.
func (cpu *CPUBackend) DivideBy(x *tensor.RawTensor, divisor complex128) *tensor.RawTensor {
	if complexType("divide by", x) == tensor.Complex64 {
		return divideBy(cpu, x, cplx.FromNative[float32](divisor))
	}
	return divideBy(cpu, x, cplx.FromComplex128(divisor))
}

func divideBy[R cplx.Real](cpu *CPUBackend, x *tensor.RawTensor, divisor cplx.Complex[R]) *tensor.RawTensor {
	if recip, ok := divisor.Reciprocal(); ok && recip.IsNormal() {
		return unaryKernel(cpu, "divide by", x, x.DType(), func(z cplx.Complex[R]) cplx.Complex[R] {
			return z.Mul(recip)
		})
	}
	return unaryKernel(cpu, "divide by", x, x.DType(), func(z cplx.Complex[R]) cplx.Complex[R] {
		return z.Div(divisor)
	})
}

// Length returns the element-wise Euclidean norm.
func (cpu *CPUBackend) Length(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(cpu, "length", x, component, c64.Length, c128.Length)
}

// LengthSquared returns re*re + im*im element-wise.
func (cpu *CPUBackend) LengthSquared(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(cpu, "length squared", x, component, c64.LengthSquared, c128.LengthSquared)
}

// Magnitude returns the element-wise ∞-norm.
func (cpu *CPUBackend) Magnitude(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(cpu, "magnitude", x, component, c64.Magnitude, c128.Magnitude)
}

// Phase returns the element-wise phase in radians.
func (cpu *CPUBackend) Phase(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(cpu, "phase", x, component, c64.Phase, c128.Phase)
}

// FromPolar builds complex values from real length and phase tensors with
// broadcasting. Panics like cplx.FromPolar on a non-finite phase paired
// with a finite non-zero length.
func (cpu *CPUBackend) FromPolar(length, phase *tensor.RawTensor) *tensor.RawTensor {
	if realType("from polar", length, phase) == tensor.Float32 {
		checkPolarDomain[float32](length, phase)
		return binaryKernel(cpu, "from polar", length, phase, tensor.Complex64, cplx.FromPolar[float32])
	}
	checkPolarDomain[float64](length, phase)
	return binaryKernel(cpu, "from polar", length, phase, tensor.Complex128, cplx.FromPolar[float64])
}

// checkPolarDomain evaluates every pair with a non-finite phase on the
// calling goroutine, so an out-of-domain pair panics there and not inside a
// worker.
func checkPolarDomain[R float32 | float64](length, phase *tensor.RawTensor) {
	shape, _, err := tensor.BroadcastShapes(length.Shape(), phase.Shape())
	if err != nil {
		return // reported by the kernel
	}
	ls, ps := elements[R](length), elements[R](phase)
	lStrides := tensor.BroadcastStrides(shape, length.Shape())
	pStrides := tensor.BroadcastStrides(shape, phase.Shape())
	for i := 0; i < shape.NumElements(); i++ {
		p := ps[tensor.BroadcastIndex(i, shape, pStrides)]
		if !cplx.FromReal(p).IsFinite() {
			_ = cplx.FromPolar(ls[tensor.BroadcastIndex(i, shape, lStrides)], p)
		}
	}
}

// Normalize returns unit-length values and a presence mask.
func (cpu *CPUBackend) Normalize(x *tensor.RawTensor) (values, ok *tensor.RawTensor) {
	if complexType("normalize", x) == tensor.Complex64 {
		return optionalKernel(cpu, "normalize", x, c64.Normalized)
	}
	return optionalKernel(cpu, "normalize", x, c128.Normalized)
}

// Reciprocal returns reciprocals and a presence mask.
func (cpu *CPUBackend) Reciprocal(x *tensor.RawTensor) (values, ok *tensor.RawTensor) {
	if complexType("reciprocal", x) == tensor.Complex64 {
		return optionalKernel(cpu, "reciprocal", x, c64.Reciprocal)
	}
	return optionalKernel(cpu, "reciprocal", x, c128.Reciprocal)
}

// Equal compares element-wise on the Riemann sphere with broadcasting.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	if complexType("equal", a, b) == tensor.Complex64 {
		return binaryKernel(cpu, "equal", a, b, tensor.Bool, c64.Equal)
	}
	return binaryKernel(cpu, "equal", a, b, tensor.Bool, c128.Equal)
}

// IsFinite classifies every element.
func (cpu *CPUBackend) IsFinite(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(cpu, "is finite", x, boolean, c64.IsFinite, c128.IsFinite)
}

// IsZero classifies every element.
func (cpu *CPUBackend) IsZero(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(cpu, "is zero", x, boolean, c64.IsZero, c128.IsZero)
}

// IsNormal classifies every element.
func (cpu *CPUBackend) IsNormal(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(cpu, "is normal", x, boolean, c64.IsNormal, c128.IsNormal)
}

// IsSubnormal classifies every element.
func (cpu *CPUBackend) IsSubnormal(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp(cpu, "is subnormal", x, boolean, c64.IsSubnormal, c128.IsSubnormal)
}

// Julia iterates z = z*z + c for every element and returns the Int32
// divergence map.
func (cpu *CPUBackend) Julia(z *tensor.RawTensor, c complex128, tolerance float64, iterations int) *tensor.RawTensor {
	if iterations < 0 {
		panic("julia: iterations must be non-negative")
	}
	return unaryOp(cpu, "julia", z, divergence,
		juliaKernel(cplx.FromNative[float32](c), float32(tolerance), iterations),
		juliaKernel(cplx.FromComplex128(c), tolerance, iterations))
}

// juliaKernel returns the per-element divergence function: the first
// iteration at which |z| exceeds tolerance, or iterations.
func juliaKernel[R cplx.Real](c cplx.Complex[R], tolerance R, iterations int) func(cplx.Complex[R]) int32 {
	return func(z cplx.Complex[R]) int32 {
		for i := 0; i < iterations; i++ {
			z = z.MulAdd(z, c)
			if z.Length() > tolerance {
				return int32(i) //nolint:gosec // G115: i < iterations fits int32 in practice.
			}
		}
		return int32(iterations) //nolint:gosec // G115: iterations fits int32 in practice.
	}
}
