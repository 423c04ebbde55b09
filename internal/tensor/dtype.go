// Package tensor provides the core tensor types and operations for element-wise
// complex arithmetic.
package tensor

import "github.com/born-ml/numerics/internal/cplx"

// DType is a constraint for supported tensor data types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	cplx.Complex64 | cplx.Complex128 | ~float32 | ~float64 | ~int32 | ~bool
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Complex64 DataType = iota
	Complex128
	Float32
	Float64
	Int32
	Bool
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Complex128:
		return 16
	case Complex64, Float64:
		return 8
	case Float32, Int32:
		return 4
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// IsComplex reports whether dt holds complex values.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// IsFloat reports whether dt holds real floating point values.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// RealType returns the component type of a complex data type, or dt itself
// for real floating point types. Other types panic.
func (dt DataType) RealType() DataType {
	switch dt {
	case Complex64, Float32:
		return Float32
	case Complex128, Float64:
		return Float64
	default:
		panic("real type: " + dt.String() + " has no real component type")
	}
}

// ComplexType returns the complex data type with components of type dt.
func (dt DataType) ComplexType() DataType {
	switch dt {
	case Float32, Complex64:
		return Complex64
	case Float64, Complex128:
		return Complex128
	default:
		panic("complex type: " + dt.String() + " has no complex counterpart")
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case cplx.Complex64:
		return Complex64
	case cplx.Complex128:
		return Complex128
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}

// DataTypeOf returns the DataType of T.
func DataTypeOf[T DType]() DataType {
	var dummy T
	return inferDataType(dummy)
}
