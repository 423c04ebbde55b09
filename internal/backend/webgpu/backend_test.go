//go:build windows

package webgpu

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/born-ml/numerics/internal/backend/cpu"
	"github.com/born-ml/numerics/internal/cplx"
	"github.com/born-ml/numerics/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ tensor.Backend = (*Backend)(nil)

func newBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := New()
	if err != nil {
		t.Skipf("WebGPU not available: %v", err)
	}
	t.Cleanup(backend.Release)
	return backend
}

func complex64Tensor(t *testing.T, shape tensor.Shape, values ...cplx.Complex64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Complex64, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsComplex64(), values)
	return raw
}

// grid returns n well-scaled values spread over a few orders of magnitude.
func grid(n int) []cplx.Complex64 {
	out := make([]cplx.Complex64, n)
	for i := range out {
		scale := float32(math.Pow(10, float64(i%7-3)))
		out[i] = cplx.New(float32(i%13-6)*scale+0.5, float32(i%11-5)*scale-0.25)
	}
	return out
}

// closeTo reports whether two Complex64 values agree to a few ULPs.
func closeTo(want, got cplx.Complex64) bool {
	if !want.IsFinite() {
		return !got.IsFinite()
	}
	tol := 8 * 1.2e-7 * max(want.Magnitude(), 1e-30)
	return float32(math.Abs(float64(want.Real()-got.Real()))) <= tol &&
		float32(math.Abs(float64(want.Imag()-got.Imag()))) <= tol
}

func TestIsAvailable(t *testing.T) {
	t.Logf("WebGPU available: %v", IsAvailable())
}

func TestNew(t *testing.T) {
	backend := newBackend(t)
	assert.Equal(t, "WebGPU", backend.Name())
	assert.Equal(t, tensor.WebGPU, backend.Device())
}

func TestParityWithCPU(t *testing.T) {
	backend := newBackend(t)
	host := cpu.New()

	values := grid(1000)
	a := complex64Tensor(t, tensor.Shape{len(values)}, values...)
	shifted := append(values[1:], values[0]) //nolint:gocritic // deliberate copy into new slice
	bt := complex64Tensor(t, tensor.Shape{len(values)}, shifted...)

	for name, op := range map[string]func(tensor.Backend) *tensor.RawTensor{
		"add":    func(be tensor.Backend) *tensor.RawTensor { return be.Add(a, bt) },
		"sub":    func(be tensor.Backend) *tensor.RawTensor { return be.Sub(a, bt) },
		"mul":    func(be tensor.Backend) *tensor.RawTensor { return be.Mul(a, bt) },
		"div":    func(be tensor.Backend) *tensor.RawTensor { return be.Div(a, bt) },
		"muladd": func(be tensor.Backend) *tensor.RawTensor { return be.MulAdd(a, bt, a) },
		"scale":  func(be tensor.Backend) *tensor.RawTensor { return be.Scale(a, 0.5) },
		"divby":  func(be tensor.Backend) *tensor.RawTensor { return be.DivideBy(a, complex(3, -4)) },
	} {
		want, got := op(host).AsComplex64(), op(backend).AsComplex64()
		for i := range want {
			if !closeTo(want[i], got[i]) {
				t.Errorf("%s[%d]: want %v, got %v", name, i, want[i], got[i])
				break
			}
		}
	}

	wantLen, gotLen := host.Length(a).AsFloat32(), backend.Length(a).AsFloat32()
	for i := range wantLen {
		assert.InEpsilon(t, wantLen[i], gotLen[i], 1e-6)
	}
}

func TestClassification(t *testing.T) {
	backend := newBackend(t)
	x := complex64Tensor(t, tensor.Shape{4},
		cplx.Zero[float32](), cplx.New[float32](1, 0),
		cplx.New(float32(math.Inf(1)), 0), cplx.New(float32(math.NaN()), 1))

	assert.Equal(t, []bool{true, true, false, false}, backend.IsFinite(x).AsBool())
	assert.Equal(t, []bool{true, false, false, false}, backend.IsZero(x).AsBool())
	assert.Equal(t, []bool{false, true, false, false}, backend.IsNormal(x).AsBool())
	assert.Equal(t, []bool{false, false, true, true}, backend.Equal(x, x.Copy()).AsBool()[2:])

	canon := backend.Canonicalize(x).AsComplex64()
	assert.Equal(t, cplx.Infinity[float32](), canon[3])
}

func TestCarefulKernels(t *testing.T) {
	backend := newBackend(t)
	x := complex64Tensor(t, tensor.Shape{3},
		cplx.New[float32](3e20, 4e20), cplx.New[float32](1e38, 1e38), cplx.New[float32](3, 4))

	length := backend.Length(x).AsFloat32()
	assert.InEpsilon(t, 5e20, length[0], 1e-6)

	q := backend.Div(x, x).AsComplex64()
	assert.InDelta(t, 1, q[1].Real(), 1e-6)

	recip, ok := backend.Reciprocal(x)
	assert.Equal(t, []bool{true, false, true}, ok.AsBool())
	assert.InDelta(t, 0.12, recip.AsComplex64()[2].Real(), 1e-6)

	unit, ok := backend.Normalize(x)
	assert.Equal(t, []bool{true, true, true}, ok.AsBool())
	assert.InDelta(t, 0.6, unit.AsComplex64()[0].Real(), 1e-6)
}

func TestBroadcastAndFallback(t *testing.T) {
	backend := newBackend(t)
	col := complex64Tensor(t, tensor.Shape{2, 1}, cplx.New[float32](1, 0), cplx.New[float32](2, 0))
	row := complex64Tensor(t, tensor.Shape{3}, cplx.New[float32](0, 1), cplx.New[float32](0, 2), cplx.New[float32](0, 3))

	sum := backend.Add(col, row)
	require.Equal(t, tensor.Shape{2, 3}, sum.Shape())
	assert.Equal(t, cplx.New[float32](2, 3), sum.AsComplex64()[5])

	wide, err := tensor.NewRaw(tensor.Shape{1}, tensor.Complex128, tensor.CPU)
	require.NoError(t, err)
	wide.AsComplex128()[0] = cplx.New(1e300, 0.0)
	assert.Equal(t, tensor.Complex128, backend.Neg(wide).DType(), "complex128 runs on the host")
}

func TestFromPolarDomain(t *testing.T) {
	backend := newBackend(t)
	length, err := tensor.NewRaw(tensor.Shape{1}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	phase, err := tensor.NewRaw(tensor.Shape{1}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	length.AsFloat32()[0] = 2
	phase.AsFloat32()[0] = float32(math.Inf(1))

	assert.Panics(t, func() { backend.FromPolar(length, phase) })
}

func TestJulia(t *testing.T) {
	backend := newBackend(t)
	x := complex64Tensor(t, tensor.Shape{3}, cplx.Zero[float32](), cplx.New[float32](2, 0), cplx.New[float32](0.5, 0))
	assert.Equal(t, []int32{10, 0, 10}, backend.Julia(x, 0, 2, 10).AsInt32())
}

func TestDispatchSize(t *testing.T) {
	x, y := dispatchSize(1)
	assert.Equal(t, [2]uint32{1, 1}, [2]uint32{x, y})
	x, y = dispatchSize(256*maxWorkgroupsPerDimension + 1)
	assert.Equal(t, [2]uint32{maxWorkgroupsPerDimension, 2}, [2]uint32{x, y})
}

func TestParamsEncode(t *testing.T) {
	buf := params{iterations: 7, tolerance: 2, c: [2]float32{-0.8, 0.156}}.encode()
	require.Len(t, buf, uniformSize)
	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(buf[4:8]))
	assert.Equal(t, float32(-0.8), math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])))
	assert.True(t, math.IsInf(float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[24:28]))), 1))
	assert.True(t, math.IsNaN(float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[28:32])))))
}

func TestKernelSourcesHaveNoConstantNonFinite(t *testing.T) {
	kernels := []kernel{
		addKernel, subKernel, mulKernel, divKernel, equalKernel, fromPolarKernel, mulAddKernel,
		negKernel, conjKernel, canonicalizeKernel, scaleKernel, mulByKernel, divByKernel,
		lengthKernel, lengthSqKernel, magnitudeKernel, phaseKernel, isFiniteKernel, isZeroKernel,
		isNormalKernel, isSubnormalKernel, juliaKernel, normalizeKernel, reciprocalKernel,
	}
	for _, k := range kernels {
		src := k.source()
		assert.NotContains(t, src, "bitcast<f32>(0x", k.name)
		assert.True(t, strings.Contains(src, "fn main("), k.name)
	}
}
