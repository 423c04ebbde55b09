//go:build !windows

package cmd

import (
	"errors"
	"runtime"

	"github.com/born-ml/numerics/internal/tensor"
)

func newWebGPU() (tensor.Backend, func(), error) {
	return nil, nil, errors.New("not supported on " + runtime.GOOS)
}

func webgpuAvailable() bool {
	return false
}
