// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/numerics/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: cplx.Complex64, cplx.Complex128, float32, float64, int32, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Int32      DataType = tensor.Int32
	Bool       DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Sentinel errors.
var (
	ErrInvalidShape    = tensor.ErrInvalidShape
	ErrSizeMismatch    = tensor.ErrSizeMismatch
	ErrUnsupportedType = tensor.ErrUnsupportedType
)

// Tensor is a generic type-safe tensor.
//
// T is the element type (usually cplx.Complex64 or cplx.Complex128).
// B is the backend implementation (CPU, WebGPU).
//
// Every operation returns a new tensor; operands are never modified.
//
// Example:
//
//	backend := cpu.New()
//	z := tensor.Plane(cplx.New(-2.0, 2.0), cplx.New(2.0, -2.0), 480, 640, backend)
//	unit, ok := z.Normalize()
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// DataTypeOf returns the runtime DataType of T.
func DataTypeOf[T DType]() DataType {
	return tensor.DataTypeOf[T]()
}

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	z := tensor.Zeros[cplx.Complex128](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	z := tensor.Full(tensor.Shape{2, 3}, cplx.I[float64](), backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Randn creates a complex tensor whose components are drawn independently
// from the standard normal distribution N(0, 1).
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, b)
}

// Linspace creates a tensor of evenly spaced values from first to last
// inclusive, in row-major order.
//
// Example:
//
//	backend := cpu.New()
//	row := tensor.Linspace(cplx.New(-1.0, 0), cplx.New(1.0, 0), tensor.Shape{1, 5}, backend)
func Linspace[T DType, B Backend](first, last T, shape Shape, b B) *Tensor[T, B] {
	return tensor.Linspace[T, B](first, last, shape, b)
}

// Repeat broadcasts t to shape, copying the data.
func Repeat[T DType, B Backend](t *Tensor[T, B], shape Shape) *Tensor[T, B] {
	return tensor.Repeat(t, shape)
}

// Plane samples a rectangle of the complex plane on a rows×cols grid.
//
// Example:
//
//	backend := cpu.New()
//	z := tensor.Plane(cplx.New[float32](-1.7, 1.7), cplx.New[float32](1.7, -1.7), 1000, 1000, backend)
func Plane[T DType, B Backend](topLeft, bottomRight T, rows, cols int, b B) *Tensor[T, B] {
	return tensor.Plane[T, B](topLeft, bottomRight, rows, cols, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []cplx.Complex128{cplx.New(1.0, 2.0), cplx.New(3.0, 4.0)}
//	z, err := tensor.FromSlice(data, tensor.Shape{2}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Full, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// Complex to real operations. R selects the result component type and must
// match the precision of T.

// Length returns the element-wise Euclidean norm.
//
// Example:
//
//	lengths := tensor.Length[float64](z) // z is Tensor[cplx.Complex128, B]
func Length[R float32 | float64, T DType, B Backend](t *Tensor[T, B]) *Tensor[R, B] {
	return tensor.Length[R](t)
}

// LengthSquared returns re*re + im*im element-wise.
func LengthSquared[R float32 | float64, T DType, B Backend](t *Tensor[T, B]) *Tensor[R, B] {
	return tensor.LengthSquared[R](t)
}

// Magnitude returns the element-wise ∞-norm max(|re|, |im|).
func Magnitude[R float32 | float64, T DType, B Backend](t *Tensor[T, B]) *Tensor[R, B] {
	return tensor.Magnitude[R](t)
}

// Phase returns the element-wise phase in radians.
func Phase[R float32 | float64, T DType, B Backend](t *Tensor[T, B]) *Tensor[R, B] {
	return tensor.Phase[R](t)
}

// FromPolar builds complex values of type T from length and phase tensors.
func FromPolar[T DType, R float32 | float64, B Backend](length, phase *Tensor[R, B]) *Tensor[T, B] {
	return tensor.FromPolar[T](length, phase)
}

// Reductions

// Sum returns the sum of all elements.
func Sum[T DType, B Backend](t *Tensor[T, B]) T {
	return tensor.Sum(t)
}

// Mean returns the mean of all elements.
func Mean[T DType, B Backend](t *Tensor[T, B]) T {
	return tensor.Mean(t)
}

// All reports whether every element of a mask is true.
func All[B Backend](t *Tensor[bool, B]) bool {
	return tensor.All(t)
}

// Any reports whether some element of a mask is true.
func Any[B Backend](t *Tensor[bool, B]) bool {
	return tensor.Any(t)
}

// Count returns the number of true elements of a mask.
func Count[B Backend](t *Tensor[bool, B]) int {
	return tensor.Count(t)
}

// Conversion and selection

// CastTo converts t to element type U.
//
// Example:
//
//	narrow := tensor.CastTo[cplx.Complex64](z) // z is Tensor[cplx.Complex128, B]
func CastTo[U DType, T DType, B Backend](t *Tensor[T, B]) *Tensor[U, B] {
	return tensor.CastTo[U](t)
}

// Where selects elements from x or y based on condition.
//
// Example:
//
//	unit, ok := z.Normalize()
//	safe := tensor.Where(ok, unit, z) // keep z where no unit value exists
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	return tensor.Where(cond, x, y)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
//
// Example:
//
//	resultShape, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
