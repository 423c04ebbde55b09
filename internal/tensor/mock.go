package tensor

import (
	"fmt"

	"github.com/born-ml/numerics/internal/cplx"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively for correctness verification: every
// element is widened to Complex128, computed sequentially and narrowed back.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, cplx.Complex128.Add)
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, cplx.Complex128.Sub)
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, cplx.Complex128.Mul)
}

// Div performs element-wise division with broadcasting.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, cplx.Complex128.Div)
}

// MulAdd computes a*b + c with broadcasting.
func (m *MockBackend) MulAdd(a, b, c *RawTensor) *RawTensor {
	return m.Add(m.Mul(a, b), c)
}

// Neg negates every element.
func (m *MockBackend) Neg(x *RawTensor) *RawTensor {
	return m.unary(x, x.DType(), func(z cplx.Complex128) cplx.Complex128 { return z.Neg() })
}

// Conj conjugates every element.
func (m *MockBackend) Conj(x *RawTensor) *RawTensor {
	return m.unary(x, x.DType(), func(z cplx.Complex128) cplx.Complex128 { return z.Conj() })
}

// Canonicalize canonicalizes every element.
func (m *MockBackend) Canonicalize(x *RawTensor) *RawTensor {
	return m.unary(x, x.DType(), func(z cplx.Complex128) cplx.Complex128 { return z.Canonicalized() })
}

// Scale multiplies every element by factor.
func (m *MockBackend) Scale(x *RawTensor, factor float64) *RawTensor {
	return m.unary(x, x.DType(), func(z cplx.Complex128) cplx.Complex128 { return z.MulReal(factor) })
}

// DivideBy divides every element by divisor.
func (m *MockBackend) DivideBy(x *RawTensor, divisor complex128) *RawTensor {
	d := cplx.FromComplex128(divisor)
	return m.unary(x, x.DType(), func(z cplx.Complex128) cplx.Complex128 { return z.Div(d) })
}

// Length returns the element-wise Euclidean norm.
func (m *MockBackend) Length(x *RawTensor) *RawTensor {
	return m.unary(x, x.DType().RealType(), func(z cplx.Complex128) cplx.Complex128 { return cplx.FromReal(z.Length()) })
}

// LengthSquared returns re*re + im*im element-wise.
func (m *MockBackend) LengthSquared(x *RawTensor) *RawTensor {
	return m.unary(x, x.DType().RealType(), func(z cplx.Complex128) cplx.Complex128 { return cplx.FromReal(z.LengthSquared()) })
}

// Magnitude returns the element-wise ∞-norm.
func (m *MockBackend) Magnitude(x *RawTensor) *RawTensor {
	return m.unary(x, x.DType().RealType(), func(z cplx.Complex128) cplx.Complex128 { return cplx.FromReal(z.Magnitude()) })
}

// Phase returns the element-wise phase.
func (m *MockBackend) Phase(x *RawTensor) *RawTensor {
	return m.unary(x, x.DType().RealType(), func(z cplx.Complex128) cplx.Complex128 { return cplx.FromReal(z.Phase()) })
}

// FromPolar builds complex values from length and phase tensors.
func (m *MockBackend) FromPolar(length, phase *RawTensor) *RawTensor {
	return m.binaryInto(length, phase, length.DType().ComplexType(), func(l, p cplx.Complex128) cplx.Complex128 {
		r, _ := l.Components()
		theta, _ := p.Components()
		return cplx.FromPolar(r, theta)
	})
}

// Normalize returns unit values and a presence mask.
func (m *MockBackend) Normalize(x *RawTensor) (values, ok *RawTensor) {
	return m.optional(x, cplx.Complex128.Normalized)
}

// Reciprocal returns reciprocals and a presence mask.
func (m *MockBackend) Reciprocal(x *RawTensor) (values, ok *RawTensor) {
	return m.optional(x, cplx.Complex128.Reciprocal)
}

// Equal compares on the Riemann sphere.
func (m *MockBackend) Equal(a, b *RawTensor) *RawTensor {
	return m.binaryInto(a, b, Bool, func(x, y cplx.Complex128) cplx.Complex128 { return boolValue(x.Equal(y)) })
}

// IsFinite classifies every element.
func (m *MockBackend) IsFinite(x *RawTensor) *RawTensor {
	return m.unary(x, Bool, func(z cplx.Complex128) cplx.Complex128 { return boolValue(z.IsFinite()) })
}

// IsZero classifies every element.
func (m *MockBackend) IsZero(x *RawTensor) *RawTensor {
	return m.unary(x, Bool, func(z cplx.Complex128) cplx.Complex128 { return boolValue(z.IsZero()) })
}

// IsNormal classifies every element.
func (m *MockBackend) IsNormal(x *RawTensor) *RawTensor {
	return m.unary(x, Bool, func(z cplx.Complex128) cplx.Complex128 { return boolValue(z.IsNormal()) })
}

// IsSubnormal classifies every element.
func (m *MockBackend) IsSubnormal(x *RawTensor) *RawTensor {
	return m.unary(x, Bool, func(z cplx.Complex128) cplx.Complex128 { return boolValue(z.IsSubnormal()) })
}

// Julia iterates z = z*z + c per element.
func (m *MockBackend) Julia(z *RawTensor, c complex128, tolerance float64, iterations int) *RawTensor {
	cc := cplx.FromComplex128(c)
	return m.unary(z, Int32, func(v cplx.Complex128) cplx.Complex128 {
		for i := 0; i < iterations; i++ {
			v = v.MulAdd(v, cc)
			if v.Length() > tolerance {
				return cplx.FromReal(float64(i))
			}
		}
		return cplx.FromReal(float64(iterations))
	})
}

func boolValue(b bool) cplx.Complex128 {
	if b {
		return cplx.One[float64]()
	}
	return cplx.Zero[float64]()
}

// elementWise performs element-wise operations with broadcasting.
func (m *MockBackend) elementWise(a, b *RawTensor, op func(x, y cplx.Complex128) cplx.Complex128) *RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("mock: dtype mismatch %s vs %s", a.DType(), b.DType()))
	}
	return m.binaryInto(a, b, a.DType(), op)
}

func (m *MockBackend) binaryInto(a, b *RawTensor, dtype DataType, op func(x, y cplx.Complex128) cplx.Complex128) *RawTensor {
	// Broadcast shapes
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	result, err := NewRaw(outShape, dtype, m.Device())
	if err != nil {
		panic(err)
	}

	aStrides := BroadcastStrides(outShape, a.Shape())
	bStrides := BroadcastStrides(outShape, b.Shape())
	for i := 0; i < outShape.NumElements(); i++ {
		x := m.get(a, BroadcastIndex(i, outShape, aStrides))
		y := m.get(b, BroadcastIndex(i, outShape, bStrides))
		m.set(result, i, op(x, y))
	}
	return result
}

func (m *MockBackend) unary(x *RawTensor, dtype DataType, op func(cplx.Complex128) cplx.Complex128) *RawTensor {
	result, err := NewRaw(x.Shape(), dtype, m.Device())
	if err != nil {
		panic(err)
	}
	for i := 0; i < x.NumElements(); i++ {
		m.set(result, i, op(m.get(x, i)))
	}
	return result
}

func (m *MockBackend) optional(x *RawTensor, op func(cplx.Complex128) (cplx.Complex128, bool)) (values, ok *RawTensor) {
	values, err := NewRaw(x.Shape(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	ok, err = NewRaw(x.Shape(), Bool, m.Device())
	if err != nil {
		panic(err)
	}
	mask := ok.AsBool()
	for i := 0; i < x.NumElements(); i++ {
		v, present := op(m.get(x, i))
		m.set(values, i, v)
		mask[i] = present
	}
	return values, ok
}

// get widens element i to Complex128.
func (m *MockBackend) get(t *RawTensor, i int) cplx.Complex128 {
	re, im := rawParts(t, i)
	return cplx.New(re, im)
}

// set narrows v into element i of t.
func (m *MockBackend) set(t *RawTensor, i int, v cplx.Complex128) {
	re, im := v.Components()
	switch t.DType() {
	case Bool:
		t.AsBool()[i] = re != 0
	case Int32:
		t.AsInt32()[i] = int32(re)
	default:
		setRawParts(t, i, re, im)
	}
}
