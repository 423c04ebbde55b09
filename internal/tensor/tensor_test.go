package tensor

import (
	"errors"
	"testing"

	"github.com/born-ml/numerics/internal/cplx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Complex64, 8},
		{Complex128, 16},
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Complex64, "complex64"},
		{Complex128, "complex128"},
		{Float32, "float32"},
		{Float64, "float64"},
		{Int32, "int32"},
		{Bool, "bool"},
		{DataType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
	}
}

func TestDataTypeRelations(t *testing.T) {
	assert.Equal(t, Float32, Complex64.RealType())
	assert.Equal(t, Float64, Complex128.RealType())
	assert.Equal(t, Complex64, Float32.ComplexType())
	assert.Equal(t, Complex128, Float64.ComplexType())
	assert.True(t, Complex64.IsComplex())
	assert.False(t, Float64.IsComplex())
	assert.True(t, Float64.IsFloat())
	assert.Panics(t, func() { Bool.RealType() })
	assert.Panics(t, func() { Int32.ComplexType() })
}

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Complex64, DataTypeOf[cplx.Complex64]())
	assert.Equal(t, Complex128, DataTypeOf[cplx.Complex128]())
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Int32, DataTypeOf[int32]())
	assert.Equal(t, Bool, DataTypeOf[bool]())
}

// Shape Tests

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 3}.Validate())
	require.NoError(t, Shape{}.Validate())

	err := Shape{2, 0}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestShapeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements())
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{Shape{5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}

	for _, tt := range tests {
		got, broadcast, err := BroadcastShapes(tt.a, tt.b)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.True(t, tt.want.Equal(got), "%v + %v = %v", tt.a, tt.b, got)
		assert.Equal(t, tt.broadcast, broadcast)
	}
}

func TestBroadcastIndex(t *testing.T) {
	out := Shape{2, 3}

	// Row vector: index follows the column.
	row := BroadcastStrides(out, Shape{1, 3})
	// Column vector: index follows the row.
	col := BroadcastStrides(out, Shape{2, 1})
	// Scalar: always element 0.
	scalar := BroadcastStrides(out, Shape{})

	for i := 0; i < out.NumElements(); i++ {
		assert.Equal(t, i%3, BroadcastIndex(i, out, row))
		assert.Equal(t, i/3, BroadcastIndex(i, out, col))
		assert.Equal(t, 0, BroadcastIndex(i, out, scalar))
	}
}

// RawTensor Tests

func TestRawTensorViews(t *testing.T) {
	raw, err := NewRaw(Shape{2, 2}, Complex64, CPU)
	require.NoError(t, err)
	assert.Equal(t, 32, raw.ByteSize())

	data := raw.AsComplex64()
	require.Len(t, data, 4)
	data[3] = cplx.New[float32](1, -1)
	assert.Equal(t, cplx.New[float32](1, -1), raw.AsComplex64()[3])

	assert.Panics(t, func() { raw.AsComplex128() })
	assert.Panics(t, func() { raw.AsFloat32() })
}

func TestRawTensorInvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{-1}, Complex128, CPU)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestRawTensorCloneAndCopy(t *testing.T) {
	raw, err := NewRaw(Shape{3}, Complex128, CPU)
	require.NoError(t, err)
	assert.True(t, raw.IsUnique())

	clone := raw.Clone()
	assert.False(t, raw.IsUnique())
	clone.AsComplex128()[0] = cplx.One[float64]()
	assert.Equal(t, cplx.One[float64](), raw.AsComplex128()[0], "clone shares the buffer")

	deep := raw.Copy()
	assert.True(t, deep.IsUnique())
	deep.AsComplex128()[0] = cplx.I[float64]()
	assert.Equal(t, cplx.One[float64](), raw.AsComplex128()[0], "copy has its own buffer")

	clone.Release()
	assert.True(t, raw.IsUnique())
}

func TestRawTensorReshape(t *testing.T) {
	raw, err := NewRaw(Shape{6}, Float32, CPU)
	require.NoError(t, err)

	view, err := raw.Reshape(Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, view.Strides())

	_, err = raw.Reshape(Shape{4})
	assert.True(t, errors.Is(err, ErrSizeMismatch))
}

// Tensor Tests

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()
	values := []cplx.Complex128{cplx.New(1.0, 2.0), cplx.New(3.0, 4.0)}

	x, err := FromSlice(values, Shape{2}, backend)
	require.NoError(t, err)
	assert.Equal(t, Complex128, x.DType())
	assert.Equal(t, values, x.Data())

	values[0] = cplx.Zero[float64]()
	assert.Equal(t, cplx.New(1.0, 2.0), x.At(0), "data is copied")

	_, err = FromSlice(values, Shape{3}, backend)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
}

func TestAtSet(t *testing.T) {
	x := Zeros[cplx.Complex64](Shape{3, 4}, NewMockBackend())
	x.Set(cplx.New[float32](5, 6), 1, 2)
	assert.Equal(t, cplx.New[float32](5, 6), x.At(1, 2))
	assert.Equal(t, cplx.New[float32](5, 6), x.Data()[6])

	assert.Panics(t, func() { x.At(3, 0) })
	assert.Panics(t, func() { x.At(0) })
}

func TestItem(t *testing.T) {
	x := Full(Shape{}, cplx.I[float64](), NewMockBackend())
	assert.Equal(t, cplx.I[float64](), x.Item())
	assert.Panics(t, func() { Zeros[bool](Shape{2}, NewMockBackend()).Item() })
}

func TestNewChecksDType(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32, CPU)
	require.NoError(t, err)
	assert.Panics(t, func() { New[cplx.Complex64](raw, NewMockBackend()) })
}

func TestTensorString(t *testing.T) {
	x := Zeros[cplx.Complex64](Shape{2, 3}, NewMockBackend())
	assert.Equal(t, "Tensor[complex64][2 3] on CPU", x.String())
}

func TestTensorReshape(t *testing.T) {
	x := Linspace(cplx.New(0.0, 0.0), cplx.New(11.0, 0.0), Shape{12}, NewMockBackend())
	y := x.Reshape(3, 4)
	assert.Equal(t, Shape{3, 4}, y.Shape())
	assert.Equal(t, x.At(6), y.At(1, 2))
	assert.Panics(t, func() { x.Reshape(5) })
}
