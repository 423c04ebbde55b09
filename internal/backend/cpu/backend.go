// Package cpu implements the CPU backend: element-wise complex kernels in pure
// Go, split across goroutines.
package cpu

import (
	"github.com/born-ml/numerics/internal/parallel"
	"github.com/born-ml/numerics/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
//
// Every operation allocates a fresh result; inputs are never modified.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
	features Features
}

// New creates a new CPU backend using all available cores.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with explicit parallel settings.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
		features: DetectFeatures(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Parallel returns the parallel execution settings.
func (cpu *CPUBackend) Parallel() parallel.Config {
	return cpu.parallel
}

// Features returns the CPU features detected at construction.
func (cpu *CPUBackend) Features() Features {
	return cpu.features
}
