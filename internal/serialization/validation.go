package serialization

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/born-ml/numerics/internal/tensor"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 100 * 1024 * 1024 // maximum JSON header size
	MaxTensorCount   = 100_000           // maximum number of tensors in a file
	MaxTensorNameLen = 4096              // maximum tensor name length
	MaxDataSize      = 16 << 30          // maximum data section size
)

// ValidateTensorOffsets checks for overlapping tensor regions and
// out-of-bounds access.
func ValidateTensorOffsets(tensors []TensorMeta, dataSize int64) error {
	if len(tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(tensors), MaxTensorCount),
		}
	}

	sorted := make([]TensorMeta, len(tensors))
	copy(sorted, tensors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", t.Offset, t.Size),
			}
		}
		if t.Size > dataSize-t.Offset {
			return &ValidationError{
				Type:    "out_of_bounds",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, dataSize),
			}
		}
		if i < len(sorted)-1 {
			next := sorted[i+1]
			if t.Offset+t.Size > next.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Tensor:  t.Name,
					Tensor2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						t.Offset, t.Offset+t.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}
	return nil
}

// ValidateTensorName rejects empty, oversized and path-like names.
func ValidateTensorName(name string) error {
	switch {
	case name == "":
		return &ValidationError{Type: "invalid_name", Details: "empty tensor name"}
	case len(name) > MaxTensorNameLen:
		return &ValidationError{
			Type:    "name_too_long",
			Tensor:  name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen),
		}
	case strings.Contains(name, ".."):
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: "contains '..'"}
	case strings.ContainsAny(name, "/\\"):
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: "contains path separator (/ or \\)"}
	case strings.Contains(name, "\x00"):
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: "contains null byte"}
	}
	return nil
}

// validateMeta checks that a tensor's dtype, shape and size agree.
func validateMeta(t TensorMeta) (tensor.DataType, error) {
	dtype, ok := parseDType(t.DType)
	if !ok {
		return 0, &ValidationError{Type: "unsupported_dtype", Tensor: t.Name, Details: t.DType}
	}
	shape := tensor.Shape(t.Shape)
	if err := shape.Validate(); err != nil {
		return 0, &ValidationError{Type: "invalid_shape", Tensor: t.Name, Details: err.Error()}
	}
	want, ok := byteSize(shape, dtype)
	if !ok {
		return 0, &ValidationError{
			Type:    "size_overflow",
			Tensor:  t.Name,
			Details: fmt.Sprintf("%s%v does not fit in memory", dtype, shape),
		}
	}
	if t.Size != want {
		return 0, &ValidationError{
			Type:    "size_mismatch",
			Tensor:  t.Name,
			Details: fmt.Sprintf("size %d, want %d for %s%v", t.Size, want, dtype, shape),
		}
	}
	return dtype, nil
}

// byteSize returns the size in bytes of a tensor of the given shape and
// dtype, or false when the element count or byte size overflows int.
// shape must already be valid.
func byteSize(shape tensor.Shape, dtype tensor.DataType) (int64, bool) {
	const limit = int64(math.MaxInt)
	n := int64(1)
	for _, dim := range shape {
		if n > limit/int64(dim) {
			return 0, false
		}
		n *= int64(dim)
	}
	size := int64(dtype.Size())
	if n > limit/size {
		return 0, false
	}
	return n * size, true
}

// ValidateHeader checks every tensor description against a data section of
// dataSize bytes.
func ValidateHeader(h *Header, dataSize int64) error {
	if len(h.Tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(h.Tensors), MaxTensorCount),
		}
	}
	seen := make(map[string]bool, len(h.Tensors))
	for _, t := range h.Tensors {
		if err := ValidateTensorName(t.Name); err != nil {
			return err
		}
		if seen[t.Name] {
			return &ValidationError{Type: "duplicate_name", Tensor: t.Name, Details: "tensor appears twice"}
		}
		seen[t.Name] = true
		if _, err := validateMeta(t); err != nil {
			return err
		}
	}
	return ValidateTensorOffsets(h.Tensors, dataSize)
}
