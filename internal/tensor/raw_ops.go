package tensor

import (
	"fmt"

	"github.com/born-ml/numerics/internal/cplx"
)

// Cast converts x to dtype.
//
// Supported conversions: between Complex64 and Complex128, between Float32
// and Float64, and from a real float type to a complex type (imaginary part
// zero). Converting complex to real would drop information and is rejected
// with ErrUnsupportedType.
func Cast(x *RawTensor, dtype DataType) (*RawTensor, error) {
	if x.DType() == dtype {
		return x.Copy(), nil
	}
	from := x.DType()
	if !(from.IsComplex() || from.IsFloat()) || !(dtype.IsComplex() || dtype.IsFloat()) ||
		(from.IsComplex() && dtype.IsFloat()) {
		return nil, fmt.Errorf("%w: cannot cast %s to %s", ErrUnsupportedType, from, dtype)
	}

	out, err := NewRaw(x.Shape(), dtype, x.Device())
	if err != nil {
		return nil, err
	}

	n := x.NumElements()
	for i := 0; i < n; i++ {
		re, im := rawParts(x, i)
		setRawParts(out, i, re, im)
	}
	return out, nil
}

// rawParts reads element i of a complex or float tensor as float64 parts.
func rawParts(x *RawTensor, i int) (re, im float64) {
	switch x.DType() {
	case Complex64:
		r, m := x.AsComplex64()[i].Components()
		return float64(r), float64(m)
	case Complex128:
		return x.AsComplex128()[i].Components()
	case Float32:
		return float64(x.AsFloat32()[i]), 0
	case Float64:
		return x.AsFloat64()[i], 0
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", x.DType()))
	}
}

func setRawParts(x *RawTensor, i int, re, im float64) {
	switch x.DType() {
	case Complex64:
		x.AsComplex64()[i] = cplx.New(float32(re), float32(im))
	case Complex128:
		x.AsComplex128()[i] = cplx.New(re, im)
	case Float32:
		x.AsFloat32()[i] = float32(re)
	case Float64:
		x.AsFloat64()[i] = re
	default:
		panic(fmt.Sprintf("cast: unsupported dtype %s", x.DType()))
	}
}

// WhereRaw selects elements from x where condition is true and from y
// otherwise. x and y must share a dtype; all three shapes broadcast.
// Elements are copied as raw bytes, so non-finite values keep their
// representation.
func WhereRaw(condition, x, y *RawTensor) (*RawTensor, error) {
	if condition.DType() != Bool {
		return nil, fmt.Errorf("%w: condition must be bool, got %s", ErrUnsupportedType, condition.DType())
	}
	if x.DType() != y.DType() {
		return nil, fmt.Errorf("%w: where operands %s and %s differ", ErrUnsupportedType, x.DType(), y.DType())
	}

	shape, _, err := BroadcastShapes(x.Shape(), y.Shape())
	if err != nil {
		return nil, err
	}
	shape, _, err = BroadcastShapes(condition.Shape(), shape)
	if err != nil {
		return nil, err
	}

	out, err := NewRaw(shape, x.DType(), x.Device())
	if err != nil {
		return nil, err
	}

	size := x.DType().Size()
	cond := condition.AsBool()
	xData, yData, outData := x.Data(), y.Data(), out.Data()
	cStrides := BroadcastStrides(shape, condition.Shape())
	xStrides := BroadcastStrides(shape, x.Shape())
	yStrides := BroadcastStrides(shape, y.Shape())

	for i := 0; i < shape.NumElements(); i++ {
		src, idx := yData, BroadcastIndex(i, shape, yStrides)
		if cond[BroadcastIndex(i, shape, cStrides)] {
			src, idx = xData, BroadcastIndex(i, shape, xStrides)
		}
		copy(outData[i*size:(i+1)*size], src[idx*size:(idx+1)*size])
	}
	return out, nil
}

// CastTo converts t to element type U. Cast lists the supported
// conversions; others panic.
//
// Example:
//
//	wide := tensor.CastTo[cplx.Complex128](z) // z is Tensor[cplx.Complex64, B]
func CastTo[U DType, T DType, B Backend](t *Tensor[T, B]) *Tensor[U, B] {
	raw, err := Cast(t.raw, DataTypeOf[U]())
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}
	return New[U, B](raw, t.backend)
}

// Where selects elements from x where cond is true and from y otherwise.
//
// Example:
//
//	unit, ok := z.Normalize()
//	safe := tensor.Where(ok, unit, z) // keep z where no unit value exists
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	raw, err := WhereRaw(cond.raw, x.raw, y.raw)
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}
	return New[T, B](raw, x.backend)
}
