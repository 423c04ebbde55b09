package serialization

import (
	"time"

	"github.com/born-ml/numerics/internal/tensor"
)

// Format constants.
const (
	MagicBytes      = "CPLX"
	FormatVersion   = 1
	HeaderAlignment = 64   // Align tensor data to 64 bytes
	FixedHeaderSize = 64   // Fixed header size (0x40 bytes)
	ChecksumSize    = 32   // SHA-256 checksum size
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header
)

// Flags for the .cplx format.
const (
	FlagHasMetadata  uint32 = 1 << 0 // custom metadata included
	FlagCanonicalize uint32 = 1 << 1 // complex tensors were canonicalized
)

// Header represents the JSON header in a .cplx file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	Producer      string            `json:"producer"` // Version of the tool that wrote the file
	CreatedAt     time.Time         `json:"created_at"`
	Tensors       []TensorMeta      `json:"tensors"`
	Metadata      map[string]string `json:"metadata"`
}

// TensorMeta describes a tensor in the .cplx file.
type TensorMeta struct {
	Name   string `json:"name"`   // Tensor name (e.g., "divergence")
	DType  string `json:"dtype"`  // Data type (e.g., "complex64", "int32")
	Shape  []int  `json:"shape"`  // Tensor shape
	Offset int64  `json:"offset"` // Offset in the data section
	Size   int64  `json:"size"`   // Size in bytes
}

var dtypes = []tensor.DataType{
	tensor.Complex64, tensor.Complex128, tensor.Float32, tensor.Float64, tensor.Int32, tensor.Bool,
}

// parseDType converts the string form of a data type back.
func parseDType(s string) (tensor.DataType, bool) {
	for _, dt := range dtypes {
		if dt.String() == s {
			return dt, true
		}
	}
	return 0, false
}

// alignedDataOffset returns the start of the data section for a JSON header
// of the given size.
func alignedDataOffset(headerSize int64) int64 {
	pos := FixedHeaderSize + headerSize
	return pos + (HeaderAlignment-pos%HeaderAlignment)%HeaderAlignment
}
