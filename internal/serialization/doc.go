// Package serialization stores named tensors in the .cplx archive format.
//
//	Format Structure:
//	  [0x00: Magic "CPLX"]
//	  [0x04: Version (uint32 LE)]
//	  [0x08: Flags (uint32 LE)]
//	  [0x0C: Reserved]
//	  [0x10: Header Size (uint64 LE)]
//	  [0x18: Data Size (uint64 LE)]
//	  [0x20: SHA-256 checksum of the data section]
//	  [0x40: Header: JSON metadata]
//	  [Tensor data: raw little-endian elements, 64-byte aligned]
//
// Complex elements are stored as (real, imaginary) component pairs, the
// memory layout of cplx.Complex. Writers may canonicalize complex tensors so
// that every zero is stored as +0 and every non-finite value as (+inf, 0),
// which lets readers in other languages compare values bitwise.
//
// Example usage:
//
//	err := serialization.WriteFile("julia.cplx", map[string]*tensor.RawTensor{
//	    "divergence": divergence.Raw(),
//	}, serialization.WriteOptions{Metadata: map[string]string{"c": "(-0.8+0.156i)"}})
//
//	archive, err := serialization.ReadFile("julia.cplx", serialization.ReadOptions{})
//	divergence := archive.Tensors["divergence"]
package serialization
