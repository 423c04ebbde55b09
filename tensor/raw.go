// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/numerics/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Typed data access via AsComplex64(), AsComplex128(), AsFloat64(), etc.
//   - Copy-on-Write semantics via Clone()
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Complex128, tensor.CPU)
//	data := raw.AsComplex128()  // Typed access
//	clone := raw.Clone()        // Shares buffer via reference counting
type RawTensor = tensor.RawTensor

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
//
// This is a low-level function. Most users should use high-level creation functions instead.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Cast converts a raw tensor to dtype. Complex to real conversion is
// rejected with an error wrapping ErrUnsupportedType.
func Cast(x *RawTensor, dtype DataType) (*RawTensor, error) {
	return tensor.Cast(x, dtype)
}
