package cplx

import (
	"math"
	"unsafe"
)

// Real is the constraint for the component type of a Complex value.
// Both members are IEEE-754 binary floating point types with signed zero,
// infinities, NaN and a subnormal range below the smallest normal value.
type Real interface {
	~float32 | ~float64
}

// Normal ranges kept as float64 variables so the conversion to R is never a
// constant conversion (MaxFloat64 is not representable as float32).
var (
	minNormal32 = float64(0x1p-126)
	maxFinite32 = float64(math.MaxFloat32)
	minNormal64 = float64(0x1p-1022)
	maxFinite64 = float64(math.MaxFloat64)
)

// Limits returns the smallest positive normal value and the largest finite
// value of R.
func Limits[R Real]() (minNormal, maxFinite R) {
	if unsafe.Sizeof(minNormal) == 4 {
		return R(minNormal32), R(maxFinite32)
	}
	return R(minNormal64), R(maxFinite64)
}

// IsNormalReal reports whether x carries full working precision: x is not
// zero, not subnormal, not infinite and not NaN.
func IsNormalReal[R Real](x R) bool {
	lo, hi := Limits[R]()
	a := abs(x)
	return x != 0 && a >= lo && a <= hi
}

func isFinite[R Real](x R) bool {
	f := float64(x)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func isInf[R Real](x R) bool {
	return math.IsInf(float64(x), 0)
}

func abs[R Real](x R) R {
	return R(math.Abs(float64(x)))
}

func inf[R Real]() R {
	return R(math.Inf(1))
}

func nan[R Real]() R {
	return R(math.NaN())
}

// The real toolbox below is evaluated in float64 and rounded once to R.
// For float32 this is at least as accurate as a native float32 routine.

func sqrt[R Real](x R) R {
	return R(math.Sqrt(float64(x)))
}

func hypot[R Real](x, y R) R {
	return R(math.Hypot(float64(x), float64(y)))
}

func atan2[R Real](y, x R) R {
	return R(math.Atan2(float64(y), float64(x)))
}

func sincos[R Real](x R) (sin, cos R) {
	s, c := math.Sincos(float64(x))
	return R(s), R(c)
}
