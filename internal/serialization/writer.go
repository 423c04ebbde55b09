package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/born-ml/numerics/internal/tensor"
)

// Producer is recorded in the header of every written file.
var Producer = "numerics"

// WriteOptions configures Write.
type WriteOptions struct {
	Metadata map[string]string
	// Canonicalize stores the canonical representative of every complex
	// element.
	Canonicalize bool
}

// Write writes tensors to w. Tensors are laid out in name order.
func Write(w io.Writer, tensors map[string]*tensor.RawTensor, opts WriteOptions) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{
		FormatVersion: FormatVersion,
		Producer:      Producer,
		CreatedAt:     time.Now().UTC(),
		Tensors:       make([]TensorMeta, 0, len(names)),
		Metadata:      opts.Metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	var data []byte
	for _, name := range names {
		raw := tensors[name]
		bytes := raw.Data()
		if opts.Canonicalize && raw.DType().IsComplex() {
			bytes = canonicalized(raw).Data()
		}
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   name,
			DType:  raw.DType().String(),
			Shape:  []int(raw.Shape()),
			Offset: int64(len(data)),
			Size:   int64(len(bytes)),
		})
		data = append(data, bytes...)
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	if opts.Canonicalize {
		flags |= FlagCanonicalize
	}

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(data)))
	checksum := ComputeChecksum(data)
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	padding := alignedDataOffset(int64(len(headerJSON))) - FixedHeaderSize - int64(len(headerJSON))
	for _, chunk := range [][]byte{fixed, headerJSON, make([]byte, padding), data} {
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("failed to write archive: %w", err)
		}
	}
	return nil
}

// WriteFile writes tensors to the file at path.
func WriteFile(path string, tensors map[string]*tensor.RawTensor, opts WriteOptions) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()
	return Write(file, tensors, opts)
}

// canonicalized returns a copy of a complex tensor holding canonical values.
func canonicalized(raw *tensor.RawTensor) *tensor.RawTensor {
	out := raw.Copy()
	switch raw.DType() {
	case tensor.Complex64:
		values := out.AsComplex64()
		for i, z := range values {
			values[i] = z.Canonicalized()
		}
	case tensor.Complex128:
		values := out.AsComplex128()
		for i, z := range values {
			values[i] = z.Canonicalized()
		}
	}
	return out
}
