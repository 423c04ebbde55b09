package cplx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNormalReal(t *testing.T) {
	lo64, hi64 := Limits[float64]()

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"zero", 0, false},
		{"negative zero", math.Copysign(0, -1), false},
		{"one", 1, true},
		{"minus one", -1, true},
		{"smallest normal", lo64, true},
		{"negative smallest normal", -lo64, true},
		{"subnormal", lo64 / 2, false},
		{"smallest subnormal", math.SmallestNonzeroFloat64, false},
		{"largest finite", hi64, true},
		{"negative largest finite", -hi64, true},
		{"infinity", inf64, false},
		{"negative infinity", -inf64, false},
		{"nan", nan64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNormalReal(tt.x))
		})
	}

	lo32, _ := Limits[float32]()
	assert.True(t, IsNormalReal(lo32))
	assert.False(t, IsNormalReal(lo32/2))
	assert.False(t, IsNormalReal(float32(math.Inf(-1))))
}

func TestClassification(t *testing.T) {
	lo, _ := Limits[float64]()
	sub := lo / 4

	tests := []struct {
		name                            string
		z                               Complex128
		finite, zero, normal, subnormal bool
	}{
		{"zero", Zero[float64](), true, true, false, false},
		{"negative zeros", New(math.Copysign(0, -1), math.Copysign(0, -1)), true, true, false, false},
		{"one", One[float64](), true, false, true, false},
		{"imaginary unit", I[float64](), true, false, true, false},
		{"normal real, subnormal imaginary", New(1, sub), true, false, true, false},
		{"zero real, normal imaginary", New[float64](0, -3), true, false, true, false},
		{"both subnormal", New(sub, -sub), true, false, false, true},
		{"subnormal real only", New(sub, 0), true, false, false, true},
		{"infinite real", New(inf64, 0), false, false, false, false},
		{"infinite imaginary", New(0, -inf64), false, false, false, false},
		{"nan", New(nan64, 1), false, false, false, false},
		{"canonical infinity", Infinity[float64](), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.finite, tt.z.IsFinite(), "IsFinite")
			assert.Equal(t, tt.zero, tt.z.IsZero(), "IsZero")
			assert.Equal(t, tt.normal, tt.z.IsNormal(), "IsNormal")
			assert.Equal(t, tt.subnormal, tt.z.IsSubnormal(), "IsSubnormal")
			if tt.z.IsZero() {
				assert.False(t, tt.z.IsNormal(), "zero is never normal")
			}
		})
	}
}

// samples covers every equivalence class: zeros of both signs, ordinary
// finite values, subnormals and all shapes of non-finite values.
func samples() []Complex128 {
	negZero := math.Copysign(0, -1)
	return []Complex128{
		Zero[float64](),
		New(negZero, 0),
		New(0, negZero),
		New(negZero, negZero),
		One[float64](),
		I[float64](),
		New(-2.5, 7),
		New(1e-310, 0),
		New(math.MaxFloat64, -math.MaxFloat64),
		Infinity[float64](),
		New(-inf64, 0),
		New(0, inf64),
		New(nan64, 0),
		New(nan64, nan64),
		New(inf64, nan64),
		New(-inf64, -inf64),
	}
}

func TestEqualIsEquivalence(t *testing.T) {
	values := samples()

	for i, a := range values {
		assert.True(t, a.Equal(a), "reflexive: %v", a)
		for j, b := range values {
			assert.Equal(t, a.Equal(b), b.Equal(a), "symmetric: %v %v", a, b)
			if !a.Equal(b) {
				continue
			}
			for k, c := range values {
				if values[j].Equal(c) {
					assert.True(t, a.Equal(c), "transitive: %d %d %d", i, j, k)
				}
			}
		}
	}
}

func TestEqualPointAtInfinity(t *testing.T) {
	a := New(nan64, 0)
	b := New(0, inf64)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(Infinity[float64]()))
	assert.False(t, a.Equal(Zero[float64]()))
	assert.False(t, b.Equal(Zero[float64]()))
	assert.False(t, Zero[float64]().Equal(a))

	// Signed zeros are the same point.
	assert.True(t, New(math.Copysign(0, -1), 0).Equal(Zero[float64]()))

	// Finite values compare exactly.
	assert.False(t, New(1.0, 2.0).Equal(New(1.0, math.Nextafter(2, 3))))
}

func TestCanonicalized(t *testing.T) {
	for _, z := range samples() {
		c := z.Canonicalized()
		assert.True(t, c.Equal(z), "same class: %v", z)
		assert.Equal(t, c, c.Canonicalized(), "idempotent: %v", z)

		re, im := c.Components()
		switch {
		case !z.IsFinite():
			assert.True(t, math.IsInf(re, 1), "canonical infinity real part: %v", z)
			assert.Equal(t, 0.0, im)
			assert.False(t, math.Signbit(im))
		case z.IsZero():
			assert.False(t, math.Signbit(re), "canonical zero: %v", z)
			assert.False(t, math.Signbit(im), "canonical zero: %v", z)
		default:
			assert.Equal(t, z, c)
		}
	}

	// Finite non-zero values come back bit for bit, signed zero parts included.
	negZero := math.Copysign(0, -1)
	for _, z := range []Complex128{New(negZero, 1.0), New(1.0, negZero), New(math.SmallestNonzeroFloat64, negZero)} {
		re, im := z.Canonicalized().Components()
		wantRe, wantIm := z.Components()
		assert.Equal(t, math.Float64bits(wantRe), math.Float64bits(re), "real bits of %v", z)
		assert.Equal(t, math.Float64bits(wantIm), math.Float64bits(im), "imaginary bits of %v", z)
	}
}
