package cpu

import (
	"fmt"

	"github.com/born-ml/numerics/internal/cplx"
	"github.com/born-ml/numerics/internal/parallel"
	"github.com/born-ml/numerics/internal/tensor"
)

// elements returns the typed view of t for element type E.
func elements[E any](t *tensor.RawTensor) []E {
	var zero E
	switch any(zero).(type) {
	case cplx.Complex64:
		return any(t.AsComplex64()).([]E)
	case cplx.Complex128:
		return any(t.AsComplex128()).([]E)
	case float32:
		return any(t.AsFloat32()).([]E)
	case float64:
		return any(t.AsFloat64()).([]E)
	case int32:
		return any(t.AsInt32()).([]E)
	case bool:
		return any(t.AsBool()).([]E)
	default:
		panic(fmt.Sprintf("elements: unsupported element type %T", zero))
	}
}

// complexType checks that all operands share one complex dtype and returns it.
func complexType(op string, operands ...*tensor.RawTensor) tensor.DataType {
	dtype := operands[0].DType()
	if !dtype.IsComplex() {
		panic(fmt.Sprintf("%s: complex tensor required, got %s", op, dtype))
	}
	for _, t := range operands[1:] {
		if t.DType() != dtype {
			panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, dtype, t.DType()))
		}
	}
	return dtype
}

// realType checks that all operands share one real float dtype and returns it.
func realType(op string, operands ...*tensor.RawTensor) tensor.DataType {
	dtype := operands[0].DType()
	if !dtype.IsFloat() {
		panic(fmt.Sprintf("%s: real float tensor required, got %s", op, dtype))
	}
	for _, t := range operands[1:] {
		if t.DType() != dtype {
			panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, dtype, t.DType()))
		}
	}
	return dtype
}

// newResult allocates a result tensor or panics with an op-prefixed message.
func (cpu *CPUBackend) newResult(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

// unaryKernel applies f to every element of x in parallel.
func unaryKernel[In, Out any](cpu *CPUBackend, op string, x *tensor.RawTensor, outType tensor.DataType, f func(In) Out) *tensor.RawTensor {
	result := cpu.newResult(op, x.Shape(), outType)
	src, dst := elements[In](x), elements[Out](result)
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(src[i])
		}
	}, cpu.parallel)
	return result
}

// binaryKernel applies f element-wise with NumPy-style broadcasting.
func binaryKernel[In1, In2, Out any](cpu *CPUBackend, op string, a, b *tensor.RawTensor, outType tensor.DataType, f func(In1, In2) Out) *tensor.RawTensor {
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result := cpu.newResult(op, outShape, outType)
	x, y, dst := elements[In1](a), elements[In2](b), elements[Out](result)

	// Fast path: same shape, no index arithmetic.
	if a.Shape().Equal(outShape) && b.Shape().Equal(outShape) {
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(x[i], y[i])
			}
		}, cpu.parallel)
		return result
	}

	aStrides := tensor.BroadcastStrides(outShape, a.Shape())
	bStrides := tensor.BroadcastStrides(outShape, b.Shape())
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(x[tensor.BroadcastIndex(i, outShape, aStrides)], y[tensor.BroadcastIndex(i, outShape, bStrides)])
		}
	}, cpu.parallel)
	return result
}

// ternaryKernel applies f element-wise over three broadcast operands.
func ternaryKernel[E any](cpu *CPUBackend, op string, a, b, c *tensor.RawTensor, f func(x, y, z E) E) *tensor.RawTensor {
	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err == nil {
		outShape, _, err = tensor.BroadcastShapes(outShape, c.Shape())
	}
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result := cpu.newResult(op, outShape, a.DType())
	x, y, z, dst := elements[E](a), elements[E](b), elements[E](c), elements[E](result)
	aStrides := tensor.BroadcastStrides(outShape, a.Shape())
	bStrides := tensor.BroadcastStrides(outShape, b.Shape())
	cStrides := tensor.BroadcastStrides(outShape, c.Shape())

	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(
				x[tensor.BroadcastIndex(i, outShape, aStrides)],
				y[tensor.BroadcastIndex(i, outShape, bStrides)],
				z[tensor.BroadcastIndex(i, outShape, cStrides)],
			)
		}
	}, cpu.parallel)
	return result
}

// optionalKernel applies f to every element and records presence in a Bool
// mask. Absent values are stored as zero.
func optionalKernel[E any](cpu *CPUBackend, op string, x *tensor.RawTensor, f func(E) (E, bool)) (values, ok *tensor.RawTensor) {
	values = cpu.newResult(op, x.Shape(), x.DType())
	ok = cpu.newResult(op, x.Shape(), tensor.Bool)
	src, dst, mask := elements[E](x), elements[E](values), ok.AsBool()

	parallel.ForRange(len(dst), func(start, end int) {
		var zero E
		for i := start; i < end; i++ {
			v, present := f(src[i])
			if !present {
				v = zero
			}
			dst[i], mask[i] = v, present
		}
	}, cpu.parallel)
	return values, ok
}
