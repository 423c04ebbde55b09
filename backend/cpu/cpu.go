// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/numerics/internal/backend/cpu"
	"github.com/born-ml/numerics/internal/parallel"
	"github.com/born-ml/numerics/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of all complex tensor
// operations, split across goroutines.
type Backend = internalcpu.CPUBackend

// Features describes the instruction set extensions of the host CPU.
type Features = internalcpu.Features

// Config controls how kernels are split across goroutines.
type Config = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend using all available cores.
//
// Example:
//
//	import (
//	    "github.com/born-ml/numerics/backend/cpu"
//	    "github.com/born-ml/numerics/cplx"
//	    "github.com/born-ml/numerics/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    z := tensor.Zeros[cplx.Complex128](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallel settings.
//
// Example:
//
//	backend := cpu.NewWithConfig(cpu.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 256})
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns parallel settings that use every core.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns parallel settings that run on the calling goroutine.
func Sequential() Config {
	return parallel.Sequential()
}

// DetectFeatures reports the CPU features of the current process.
func DetectFeatures() Features {
	return internalcpu.DetectFeatures()
}
