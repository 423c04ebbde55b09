//go:build windows

package cmd

import (
	"github.com/born-ml/numerics/internal/backend/webgpu"
	"github.com/born-ml/numerics/internal/tensor"
)

func newWebGPU() (tensor.Backend, func(), error) {
	b, err := webgpu.New()
	if err != nil {
		return nil, nil, err
	}
	return b, b.Release, nil
}

func webgpuAvailable() bool {
	return webgpu.IsAvailable()
}
