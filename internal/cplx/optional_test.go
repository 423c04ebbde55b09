package cplx

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalized(t *testing.T) {
	tests := []struct {
		name   string
		z      Complex128
		re, im float64
		delta  float64
	}{
		{"well scaled", New(3.0, 4.0), 0.6, 0.8, 1e-15},
		{"negative axis", New(-2.0, 0.0), -1, 0, 0},
		{"length overflows", New(1.5e308, 1.5e308), math.Sqrt2 / 2, math.Sqrt2 / 2, 1e-15},
		{"length underflows", New(3e-200, -4e-200), 0.6, -0.8, 1e-15},
		{"subnormal", New(3e-320, 4e-320), 0.6, 0.8, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, ok := tt.z.Normalized()
			require.True(t, ok)
			assert.InDelta(t, tt.re, unit.Real(), tt.delta)
			assert.InDelta(t, tt.im, unit.Imag(), tt.delta)
			assert.InDelta(t, 1.0, unit.Length(), 1e-3)
		})
	}
}

func TestNormalizedAbsent(t *testing.T) {
	for _, z := range []Complex128{Zero[float64](), New(math.Copysign(0, -1), 0), Infinity[float64](), New(nan64, 1), New(2, inf64)} {
		_, ok := z.Normalized()
		assert.False(t, ok, "%v", z)
	}
}

func TestReciprocal(t *testing.T) {
	recip, ok := New(2.0, 0.0).Reciprocal()
	require.True(t, ok)
	assert.Equal(t, New(0.5, 0.0), recip)

	recip, ok = I[float64]().Reciprocal()
	require.True(t, ok)
	assert.InDelta(t, -1.0, recip.Imag(), 1e-15)

	recip, ok = Zero[float64]().Reciprocal()
	require.True(t, ok)
	assert.True(t, recip.Equal(Infinity[float64]()))

	recip, ok = Infinity[float64]().Reciprocal()
	require.True(t, ok)
	assert.True(t, recip.Equal(Zero[float64]()))
}

func TestReciprocalSubnormalResult(t *testing.T) {
	_, ok := New(math.MaxFloat64/2, 0.0).Reciprocal()
	assert.False(t, ok)

	_, ok = New[float32](math.MaxFloat32/2, 0).Reciprocal()
	assert.False(t, ok)

	// The reciprocal of a large but not extreme value is still normal.
	recip, ok := New(1e300, 1e300).Reciprocal()
	require.True(t, ok)
	assert.InEpsilon(t, 0.5e-300, recip.Real(), 1e-14)
	assert.InEpsilon(t, -0.5e-300, recip.Imag(), 1e-14)
}

func TestReciprocalMatchesDivision(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		w := New(rng.NormFloat64()*1e3, rng.NormFloat64()*1e3)
		z := New(rng.NormFloat64(), rng.NormFloat64())

		recip, ok := w.Reciprocal()
		require.True(t, ok, "%v", w)
		want := z.Div(w)
		got := z.Mul(recip)
		assert.LessOrEqual(t, got.Sub(want).Length(), 1e-13*want.Length(), "z=%v w=%v", z, w)
	}
}

func TestReciprocalIsInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	one := One[float64]()
	for i := 0; i < 500; i++ {
		scale := math.Pow(10, float64(rng.Intn(301)-150))
		x := New(rng.NormFloat64()*scale, rng.NormFloat64()*scale)

		recip, ok := x.Reciprocal()
		require.True(t, ok, "%v", x)
		assert.LessOrEqual(t, x.Mul(recip).Sub(one).Length(), 1e-13, "x=%v", x)
	}

	one32 := One[float32]()
	for i := 0; i < 500; i++ {
		scale := float32(math.Pow(10, float64(rng.Intn(31)-15)))
		x := New(float32(rng.NormFloat64())*scale, float32(rng.NormFloat64())*scale)

		recip, ok := x.Reciprocal()
		require.True(t, ok, "%v", x)
		assert.LessOrEqual(t, x.Mul(recip).Sub(one32).Length(), float32(1e-5), "x=%v", x)
	}
}
