package tensor

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/born-ml/numerics/internal/cplx"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[cplx.Complex64](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, cplx.New[float32](0, 1), backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a complex tensor whose components are independent samples
// of the normal distribution (mean=0, std=1).
// Uses Box-Muller transform for generating normal distribution.
// Note: Uses math/rand (not crypto/rand), which is fine for test data.
//
// Example:
//
//	t := tensor.Randn[cplx.Complex128](Shape{100, 100}, backend)
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	if !DataTypeOf[T]().IsComplex() {
		panic("Randn only supports complex types")
	}
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		u1 := 1 - rand.Float64() //nolint:gosec // G404: test data does not need crypto/rand
		u2 := rand.Float64()     //nolint:gosec // G404: test data does not need crypto/rand
		r := math.Sqrt(-2.0 * math.Log(u1))
		s, c := math.Sincos(2.0 * math.Pi * u2)
		data[i] = fromParts[T](r*c, r*s)
	}
	return t
}

// Linspace creates a tensor of the given shape holding evenly spaced values
// from first to last inclusive, in row-major order. Components are
// interpolated independently; the last element is exactly last.
//
// Example:
//
//	row := tensor.Linspace(cplx.New[float32](-1.7, 0), cplx.New[float32](1.7, 0), Shape{1, 1000}, backend)
func Linspace[T DType, B Backend](first, last T, shape Shape, b B) *Tensor[T, B] {
	dtype := DataTypeOf[T]()
	if !dtype.IsComplex() && !dtype.IsFloat() {
		panic(fmt.Sprintf("linspace: %v", fmt.Errorf("%w: %s", ErrUnsupportedType, dtype)))
	}

	t := Zeros[T, B](shape, b)
	data := t.Data()
	n := len(data)

	fRe, fIm := parts(first)
	lRe, lIm := parts(last)
	for i := 1; i < n-1; i++ {
		step := float64(i) / float64(n-1)
		data[i] = fromParts[T](fRe+(lRe-fRe)*step, fIm+(lIm-fIm)*step)
	}
	data[n-1] = last
	data[0] = first
	return t
}

// Repeat broadcasts t to shape, copying the data.
// t's shape must be broadcast-compatible with shape and no larger.
//
// Example:
//
//	row := tensor.Linspace(a, b, Shape{1, 4}, backend)
//	grid := tensor.Repeat(row, Shape{3, 4}) // three copies of the row
func Repeat[T DType, B Backend](t *Tensor[T, B], shape Shape) *Tensor[T, B] {
	out, _, err := BroadcastShapes(t.Shape(), shape)
	if err != nil {
		panic(fmt.Sprintf("repeat: %v", err))
	}
	if !out.Equal(shape) {
		panic(fmt.Sprintf("repeat: cannot repeat %v into %v", t.Shape(), shape))
	}

	result := Zeros[T, B](shape, t.backend)
	src := t.Data()
	dst := result.Data()
	strides := BroadcastStrides(shape, t.Shape())
	for i := range dst {
		dst[i] = src[BroadcastIndex(i, shape, strides)]
	}
	return result
}

// Plane samples a rectangle of the complex plane on a rows×cols grid.
// The real part runs from topLeft to bottomRight along columns, the
// imaginary part along rows, both endpoints included.
//
// Example:
//
//	z := tensor.Plane(cplx.New[float32](-1.7, 1.7), cplx.New[float32](1.7, -1.7), 1000, 1000, backend)
func Plane[T DType, B Backend](topLeft, bottomRight T, rows, cols int, b B) *Tensor[T, B] {
	if !DataTypeOf[T]().IsComplex() {
		panic("plane: complex element type required")
	}
	shape := Shape{rows, cols}
	fRe, fIm := parts(topLeft)
	lRe, lIm := parts(bottomRight)

	re := Linspace(fromParts[T](fRe, 0), fromParts[T](lRe, 0), Shape{1, cols}, b)
	im := Linspace(fromParts[T](0, fIm), fromParts[T](0, lIm), Shape{rows, 1}, b)
	return Repeat(re, shape).Add(Repeat(im, shape))
}

// parts returns the components of a complex or real element as float64.
func parts[T DType](v T) (re, im float64) {
	switch x := any(v).(type) {
	case cplx.Complex64:
		r, i := x.Components()
		return float64(r), float64(i)
	case cplx.Complex128:
		return x.Components()
	case float32:
		return float64(x), 0
	case float64:
		return x, 0
	default:
		panic("unsupported type")
	}
}

// fromParts builds an element from float64 components. The imaginary part
// is dropped for real types.
func fromParts[T DType](re, im float64) T {
	var dummy T
	switch any(dummy).(type) {
	case cplx.Complex64:
		return any(cplx.New(float32(re), float32(im))).(T)
	case cplx.Complex128:
		return any(cplx.New(re, im)).(T)
	case float32:
		return any(float32(re)).(T)
	case float64:
		return any(re).(T)
	default:
		panic("unsupported type")
	}
}
