package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/numerics/internal/tensor"
)

// ReadOptions configures Read.
type ReadOptions struct {
	SkipChecksumValidation bool
	Device                 tensor.Device // Device recorded on loaded tensors
}

// Archive is the decoded content of a .cplx file.
type Archive struct {
	Header   Header
	Flags    uint32
	Checksum [32]byte
	Tensors  map[string]*tensor.RawTensor
}

// Names returns the tensor names in file order.
func (a *Archive) Names() []string {
	names := make([]string, len(a.Header.Tensors))
	for i, meta := range a.Header.Tensors {
		names[i] = meta.Name
	}
	return names
}

// Tensor returns the named tensor.
func (a *Archive) Tensor(name string) (*tensor.RawTensor, error) {
	raw, ok := a.Tensors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTensorNotFound, name)
	}
	return raw, nil
}

// Read decodes an archive from r. The data section is buffered as it
// arrives, so a header claiming more data than r holds fails with an error.
func Read(r io.Reader, opts ReadOptions) (*Archive, error) {
	return read(r, opts, -1)
}

// read decodes an archive from r, which holds available bytes, or an
// unknown amount when available is negative.
func read(r io.Reader, opts ReadOptions, available int64) (*Archive, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(fixed[0:4]) != MagicBytes {
		return nil, fmt.Errorf("%w: got %q, expected %q", ErrInvalidMagic, fixed[0:4], MagicBytes)
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	archive := &Archive{Flags: binary.LittleEndian.Uint32(fixed[8:12])}
	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	copy(archive.Checksum[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}
	if dataSize > MaxDataSize {
		return nil, &ValidationError{
			Type:    "data_too_large",
			Details: fmt.Sprintf("data section is %d bytes, max %d", dataSize, uint64(MaxDataSize)),
		}
	}
	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize.
	dataOffset := alignedDataOffset(int64(headerSize))
	//nolint:gosec // G115: dataSize is bounded by MaxDataSize.
	if available >= 0 && int64(dataSize) > available-dataOffset {
		return nil, &ValidationError{
			Type:    "truncated",
			Details: fmt.Sprintf("data section is %d bytes, file holds %d", dataSize, max(available-dataOffset, 0)),
		}
	}
	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := json.Unmarshal(headerJSON, &archive.Header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize.
	padding := dataOffset - FixedHeaderSize - int64(headerSize)
	if _, err := io.CopyN(io.Discard, r, padding); err != nil {
		return nil, fmt.Errorf("failed to read padding: %w", err)
	}

	//nolint:gosec // G115: dataSize is bounded by MaxDataSize.
	if err := ValidateHeader(&archive.Header, int64(dataSize)); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	var described int64
	for _, meta := range archive.Header.Tensors {
		described += meta.Size
	}
	if uint64(described) != dataSize { //nolint:gosec // G115: sizes are validated non-negative.
		return nil, &ValidationError{
			Type:    "size_mismatch",
			Details: fmt.Sprintf("data section is %d bytes, tensors describe %d", dataSize, described),
		}
	}

	data, err := readData(r, int64(dataSize), available >= 0) //nolint:gosec // G115: bounded by MaxDataSize.
	if err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(data), archive.Checksum); err != nil {
			return nil, err
		}
	}

	archive.Tensors = make(map[string]*tensor.RawTensor, len(archive.Header.Tensors))
	for _, meta := range archive.Header.Tensors {
		dtype, err := validateMeta(meta)
		if err != nil {
			return nil, err
		}
		raw, err := tensor.NewRaw(tensor.Shape(meta.Shape), dtype, opts.Device)
		if err != nil {
			return nil, fmt.Errorf("failed to create tensor %s: %w", meta.Name, err)
		}
		copy(raw.Data(), data[meta.Offset:meta.Offset+meta.Size])
		archive.Tensors[meta.Name] = raw
	}
	return archive, nil
}

// readData reads n bytes from r. When the size of r is unknown the buffer
// grows with the bytes actually read.
func readData(r io.Reader, n int64, sized bool) ([]byte, error) {
	if sized {
		data := make([]byte, n)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}
		return data, nil
	}
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, n); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadFile decodes the archive stored at path. The data section size is
// checked against the file size before anything is allocated.
func ReadFile(path string, opts ReadOptions) (*Archive, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	return read(file, opts, fileInfo.Size())
}
