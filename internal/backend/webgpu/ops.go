//go:build windows

package webgpu

import (
	"fmt"

	"github.com/born-ml/numerics/internal/cplx"
	"github.com/born-ml/numerics/internal/tensor"
)

// onGPU reports whether every operand is Complex64. Anything else runs on
// the host backend, which also rejects invalid operand types.
func onGPU(operands ...*tensor.RawTensor) bool {
	for _, t := range operands {
		if t.DType() != tensor.Complex64 {
			return false
		}
	}
	return true
}

// gpuSize is the per-element byte size of dtype in a storage buffer. WGSL
// has no 8-bit type, so booleans travel as u32.
func gpuSize(dtype tensor.DataType) int {
	if dtype == tensor.Bool {
		return 4
	}
	return dtype.Size()
}

// broadcastShape returns the common shape of operands or panics.
func broadcastShape(op string, operands ...*tensor.RawTensor) tensor.Shape {
	shape := operands[0].Shape()
	for _, t := range operands[1:] {
		var err error
		if shape, _, err = tensor.BroadcastShapes(shape, t.Shape()); err != nil {
			panic(fmt.Sprintf("%s: %v", op, err))
		}
	}
	return shape
}

// expand returns the bytes of x broadcast to shape.
func expand(x *tensor.RawTensor, shape tensor.Shape) []byte {
	if x.Shape().Equal(shape) {
		return x.Data()
	}
	size := x.DType().Size()
	strides := tensor.BroadcastStrides(shape, x.Shape())
	src := x.Data()
	dst := make([]byte, shape.NumElements()*size)
	for i := 0; i < shape.NumElements(); i++ {
		j := tensor.BroadcastIndex(i, shape, strides)
		copy(dst[i*size:(i+1)*size], src[j*size:(j+1)*size])
	}
	return dst
}

// fromGPU builds a result tensor from a storage buffer's contents.
func fromGPU(op string, data []byte, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, tensor.WebGPU)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	if dtype != tensor.Bool {
		copy(result.Data(), data)
		return result
	}
	mask := result.AsBool()
	for i := range mask {
		mask[i] = data[4*i] != 0
	}
	return result
}

// exec runs k with operands broadcast to a common shape and returns one
// tensor per output dtype.
func (b *Backend) exec(k kernel, p params, operands []*tensor.RawTensor, outTypes ...tensor.DataType) []*tensor.RawTensor {
	shape := broadcastShape(k.name, operands...)
	n := shape.NumElements()

	inputs := make([][]byte, len(operands))
	for i, t := range operands {
		inputs[i] = expand(t, shape)
	}
	sizes := make([]uint64, len(outTypes))
	for i, dtype := range outTypes {
		sizes[i] = uint64(n * gpuSize(dtype)) //nolint:gosec // G115: non-negative size.
	}

	data, err := b.run(k, n, inputs, sizes, p)
	if err != nil {
		panic("webgpu: " + err.Error())
	}
	results := make([]*tensor.RawTensor, len(outTypes))
	for i, dtype := range outTypes {
		results[i] = fromGPU(k.name, data[i], shape, dtype)
	}
	return results
}

func (b *Backend) exec1(k kernel, p params, outType tensor.DataType, operands ...*tensor.RawTensor) *tensor.RawTensor {
	return b.exec(k, p, operands, outType)[0]
}

// Add performs element-wise addition with broadcasting.
func (b *Backend) Add(x, y *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x, y) {
		return b.host.Add(x, y)
	}
	return b.exec1(addKernel, params{}, tensor.Complex64, x, y)
}

// Sub performs element-wise subtraction with broadcasting.
func (b *Backend) Sub(x, y *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x, y) {
		return b.host.Sub(x, y)
	}
	return b.exec1(subKernel, params{}, tensor.Complex64, x, y)
}

// Mul performs element-wise multiplication with broadcasting.
func (b *Backend) Mul(x, y *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x, y) {
		return b.host.Mul(x, y)
	}
	return b.exec1(mulKernel, params{}, tensor.Complex64, x, y)
}

// Div performs element-wise careful division with broadcasting.
func (b *Backend) Div(x, y *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x, y) {
		return b.host.Div(x, y)
	}
	return b.exec1(divKernel, params{}, tensor.Complex64, x, y)
}

// MulAdd computes x*y + addend element-wise with broadcasting.
func (b *Backend) MulAdd(x, y, addend *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x, y, addend) {
		return b.host.MulAdd(x, y, addend)
	}
	return b.exec1(mulAddKernel, params{}, tensor.Complex64, x, y, addend)
}

// Neg negates every element.
func (b *Backend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.Neg(x)
	}
	return b.exec1(negKernel, params{}, tensor.Complex64, x)
}

// Conj conjugates every element.
func (b *Backend) Conj(x *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.Conj(x)
	}
	return b.exec1(conjKernel, params{}, tensor.Complex64, x)
}

// Canonicalize maps every element to the canonical member of its class.
func (b *Backend) Canonicalize(x *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.Canonicalize(x)
	}
	return b.exec1(canonicalizeKernel, params{}, tensor.Complex64, x)
}

// Scale multiplies every element by a real factor.
func (b *Backend) Scale(x *tensor.RawTensor, factor float64) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.Scale(x, factor)
	}
	return b.exec1(scaleKernel, params{factor: float32(factor)}, tensor.Complex64, x)
}

// DivideBy divides every element by one divisor, multiplying by its
// reciprocal when that is normal.
func (b *Backend) DivideBy(x *tensor.RawTensor, divisor complex128) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.DivideBy(x, divisor)
	}
	d := cplx.FromNative[float32](divisor)
	if recip, ok := d.Reciprocal(); ok && recip.IsNormal() {
		re, im := recip.Components()
		return b.exec1(mulByKernel, params{c: [2]float32{re, im}}, tensor.Complex64, x)
	}
	re, im := d.Components()
	return b.exec1(divByKernel, params{c: [2]float32{re, im}}, tensor.Complex64, x)
}

// Length returns the element-wise Euclidean norm.
func (b *Backend) Length(x *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.Length(x)
	}
	return b.exec1(lengthKernel, params{}, tensor.Float32, x)
}

// LengthSquared returns re*re + im*im element-wise.
func (b *Backend) LengthSquared(x *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.LengthSquared(x)
	}
	return b.exec1(lengthSqKernel, params{}, tensor.Float32, x)
}

// Magnitude returns the element-wise ∞-norm.
func (b *Backend) Magnitude(x *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.Magnitude(x)
	}
	return b.exec1(magnitudeKernel, params{}, tensor.Float32, x)
}

// Phase returns the element-wise phase in radians.
func (b *Backend) Phase(x *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.Phase(x)
	}
	return b.exec1(phaseKernel, params{}, tensor.Float32, x)
}

// FromPolar builds Complex64 values from Float32 length and phase tensors.
// The domain is checked on the host before dispatch, so an invalid pair
// panics exactly as on the CPU.
func (b *Backend) FromPolar(length, phase *tensor.RawTensor) *tensor.RawTensor {
	if length.DType() != tensor.Float32 || phase.DType() != tensor.Float32 {
		return b.host.FromPolar(length, phase)
	}
	shape := broadcastShape("from polar", length, phase)
	lStrides := tensor.BroadcastStrides(shape, length.Shape())
	pStrides := tensor.BroadcastStrides(shape, phase.Shape())
	ls, ps := length.AsFloat32(), phase.AsFloat32()
	for i := 0; i < shape.NumElements(); i++ {
		l := ls[tensor.BroadcastIndex(i, shape, lStrides)]
		p := ps[tensor.BroadcastIndex(i, shape, pStrides)]
		if !cplx.FromReal(p).IsFinite() {
			cplx.FromPolar(l, p) // panics outside the domain
		}
	}
	return b.exec1(fromPolarKernel, params{}, tensor.Complex64, length, phase)
}

// Normalize returns unit-length values and a presence mask.
func (b *Backend) Normalize(x *tensor.RawTensor) (values, ok *tensor.RawTensor) {
	if !onGPU(x) {
		return b.host.Normalize(x)
	}
	out := b.exec(normalizeKernel, params{}, []*tensor.RawTensor{x}, tensor.Complex64, tensor.Bool)
	return out[0], out[1]
}

// Reciprocal returns reciprocals and a presence mask.
func (b *Backend) Reciprocal(x *tensor.RawTensor) (values, ok *tensor.RawTensor) {
	if !onGPU(x) {
		return b.host.Reciprocal(x)
	}
	out := b.exec(reciprocalKernel, params{}, []*tensor.RawTensor{x}, tensor.Complex64, tensor.Bool)
	return out[0], out[1]
}

// Equal compares element-wise on the Riemann sphere with broadcasting.
func (b *Backend) Equal(x, y *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x, y) {
		return b.host.Equal(x, y)
	}
	return b.exec1(equalKernel, params{}, tensor.Bool, x, y)
}

// IsFinite classifies every element.
func (b *Backend) IsFinite(x *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.IsFinite(x)
	}
	return b.exec1(isFiniteKernel, params{}, tensor.Bool, x)
}

// IsZero classifies every element.
func (b *Backend) IsZero(x *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.IsZero(x)
	}
	return b.exec1(isZeroKernel, params{}, tensor.Bool, x)
}

// IsNormal classifies every element.
func (b *Backend) IsNormal(x *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.IsNormal(x)
	}
	return b.exec1(isNormalKernel, params{}, tensor.Bool, x)
}

// IsSubnormal classifies every element.
func (b *Backend) IsSubnormal(x *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(x) {
		return b.host.IsSubnormal(x)
	}
	return b.exec1(isSubnormalKernel, params{}, tensor.Bool, x)
}

// Julia iterates z = z*z + c for every element and returns the Int32
// divergence map.
func (b *Backend) Julia(z *tensor.RawTensor, c complex128, tolerance float64, iterations int) *tensor.RawTensor {
	if !onGPU(z) || iterations < 0 {
		return b.host.Julia(z, c, tolerance, iterations)
	}
	return b.exec1(juliaKernel, params{
		iterations: uint32(iterations), //nolint:gosec // G115: checked non-negative.
		tolerance:  float32(tolerance),
		c:          [2]float32{float32(real(c)), float32(imag(c))},
	}, tensor.Int32, z)
}
