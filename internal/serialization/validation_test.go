package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestValidateTensorOffsets checks overlap and bounds detection.
func TestValidateTensorOffsets(t *testing.T) {
	tests := []struct {
		name     string
		tensors  []TensorMeta
		dataSize int64
		wantType string
	}{
		{
			name: "adjacent",
			tensors: []TensorMeta{
				{Name: "a", Offset: 0, Size: 100},
				{Name: "b", Offset: 100, Size: 200},
			},
			dataSize: 300,
		},
		{
			name: "unsorted adjacent",
			tensors: []TensorMeta{
				{Name: "b", Offset: 100, Size: 200},
				{Name: "a", Offset: 0, Size: 100},
			},
			dataSize: 300,
		},
		{
			name: "overlap by one byte",
			tensors: []TensorMeta{
				{Name: "a", Offset: 0, Size: 100},
				{Name: "b", Offset: 99, Size: 100},
			},
			dataSize: 300,
			wantType: "offset_overlap",
		},
		{
			name:     "out of bounds",
			tensors:  []TensorMeta{{Name: "a", Offset: 10, Size: 100}},
			dataSize: 100,
			wantType: "out_of_bounds",
		},
		{
			name:     "offset overflows",
			tensors:  []TensorMeta{{Name: "a", Offset: math.MaxInt64, Size: 8}},
			dataSize: 100,
			wantType: "out_of_bounds",
		},
		{
			name:     "negative",
			tensors:  []TensorMeta{{Name: "a", Offset: -8, Size: 8}},
			dataSize: 100,
			wantType: "negative_offset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTensorOffsets(tt.tensors, tt.dataSize)
			if tt.wantType == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Type != tt.wantType {
				t.Errorf("error type = %q, want %q", verr.Type, tt.wantType)
			}
		})
	}
}

// TestValidateTensorName rejects path-like and empty names.
func TestValidateTensorName(t *testing.T) {
	valid := []string{"divergence", "plane.re", "z_0"}
	for _, name := range valid {
		if err := ValidateTensorName(name); err != nil {
			t.Errorf("ValidateTensorName(%q) = %v", name, err)
		}
	}

	invalid := []string{"", "../etc/passwd", "a/b", `a\b`, "a\x00b", strings.Repeat("x", MaxTensorNameLen+1)}
	for _, name := range invalid {
		if err := ValidateTensorName(name); err == nil {
			t.Errorf("ValidateTensorName(%q) accepted", name)
		}
	}
}

// TestValidateHeader checks dtype, size and duplicate detection.
func TestValidateHeader(t *testing.T) {
	good := TensorMeta{Name: "z", DType: "complex64", Shape: []int{2, 3}, Offset: 0, Size: 48}

	tests := []struct {
		name     string
		tensors  []TensorMeta
		wantType string
	}{
		{"valid", []TensorMeta{good}, ""},
		{"unknown dtype", []TensorMeta{{Name: "z", DType: "float16", Shape: []int{1}, Size: 2}}, "unsupported_dtype"},
		{"bad shape", []TensorMeta{{Name: "z", DType: "int32", Shape: []int{-1}, Size: 4}}, "invalid_shape"},
		{"size mismatch", []TensorMeta{{Name: "z", DType: "complex128", Shape: []int{2, 3}, Size: 48}}, "size_mismatch"},
		{"duplicate", []TensorMeta{good, good}, "duplicate_name"},
		{"element count overflow", []TensorMeta{{Name: "z", DType: "complex64", Shape: []int{math.MaxInt / 2, 3}, Size: 0}}, "size_overflow"},
		{"byte size overflow", []TensorMeta{{Name: "z", DType: "complex64", Shape: []int{math.MaxInt / 4}, Size: 8}}, "size_overflow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHeader(&Header{Tensors: tt.tensors}, 1024)
			if tt.wantType == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Type != tt.wantType {
				t.Fatalf("got %v, want %s", err, tt.wantType)
			}
		})
	}
}

// craftArchive returns the fixed header, JSON header and padding of an
// archive whose header claims dataSize bytes of data, with no data after it.
func craftArchive(t *testing.T, dataSize uint64, tensors []TensorMeta) []byte {
	t.Helper()
	headerJSON, err := json.Marshal(Header{FormatVersion: FormatVersion, Tensors: tensors})
	if err != nil {
		t.Fatal(err)
	}
	fixed := make([]byte, FixedHeaderSize)
	copy(fixed, MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], dataSize)

	out := append(fixed, headerJSON...)
	padding := alignedDataOffset(int64(len(headerJSON))) - int64(len(out))
	return append(out, make([]byte, padding)...)
}

// writeCrafted stores data in a temporary .cplx file.
func writeCrafted(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crafted.cplx")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestReadOversizedDataSection checks a header claiming more data than the
// limit is rejected before any allocation.
func TestReadOversizedDataSection(t *testing.T) {
	data := craftArchive(t, 1<<62, []TensorMeta{{Name: "z", DType: "complex64", Shape: []int{1}, Size: 8}})

	var verr *ValidationError
	if _, err := Read(bytes.NewReader(data), ReadOptions{}); !errors.As(err, &verr) || verr.Type != "data_too_large" {
		t.Errorf("Read: got %v, want data_too_large", err)
	}
	if _, err := ReadFile(writeCrafted(t, data), ReadOptions{}); !errors.As(err, &verr) || verr.Type != "data_too_large" {
		t.Errorf("ReadFile: got %v, want data_too_large", err)
	}
}

// TestReadTruncatedDataSection checks a data section within the limit but
// missing from the input fails with an error.
func TestReadTruncatedDataSection(t *testing.T) {
	const size = 1 << 30
	data := craftArchive(t, size, []TensorMeta{{Name: "z", DType: "complex64", Shape: []int{size / 8}, Size: size}})

	if _, err := Read(bytes.NewReader(data), ReadOptions{}); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Read: got %v, want io.ErrUnexpectedEOF", err)
	}

	var verr *ValidationError
	if _, err := ReadFile(writeCrafted(t, data), ReadOptions{}); !errors.As(err, &verr) || verr.Type != "truncated" {
		t.Errorf("ReadFile: got %v, want truncated", err)
	}
}

// TestValidateChecksum verifies checksum comparison.
func TestValidateChecksum(t *testing.T) {
	a := ComputeChecksum([]byte("test data"))
	if err := ValidateChecksum(a, ComputeChecksum([]byte("test data"))); err != nil {
		t.Errorf("matching checksums: %v", err)
	}
	b := ComputeChecksum([]byte("different data"))
	if err := ValidateChecksum(a, b); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("got %v, want ErrChecksumMismatch", err)
	}
}

// TestValidationErrorMessage checks the formatted message variants.
func TestValidationErrorMessage(t *testing.T) {
	cases := map[string]*ValidationError{
		`offset_overlap: tensors "a" and "b": x`: {Type: "offset_overlap", Tensor: "a", Tensor2: "b", Details: "x"},
		`invalid_name: tensor "a": x`:            {Type: "invalid_name", Tensor: "a", Details: "x"},
		`too_many_tensors: x`:                    {Type: "too_many_tensors", Details: "x"},
	}
	for want, err := range cases {
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	}
}
