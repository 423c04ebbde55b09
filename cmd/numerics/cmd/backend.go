package cmd

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/born-ml/numerics/internal/backend/cpu"
	"github.com/born-ml/numerics/internal/config"
	"github.com/born-ml/numerics/internal/parallel"
	"github.com/born-ml/numerics/internal/tensor"
)

// errNoWebGPU is returned when the WebGPU backend cannot be used.
var errNoWebGPU = errors.New("webgpu backend not available")

func newCPU(c *config.Config) *cpu.CPUBackend {
	return cpu.NewWithConfig(parallel.Config{
		Enabled:      c.Parallel.Enabled,
		NumWorkers:   c.Parallel.Workers,
		MinChunkSize: c.Parallel.MinChunkSize,
	})
}

// selectBackend opens the configured backend. The returned function
// releases it. With "auto", WebGPU is preferred and the CPU is the fallback.
func selectBackend(c *config.Config, log *zap.Logger) (tensor.Backend, func(), error) {
	switch c.Backend {
	case config.BackendCPU:
		return newCPU(c), func() {}, nil
	case config.BackendWebGPU:
		b, release, err := newWebGPU()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", errNoWebGPU, err)
		}
		return b, release, nil
	case config.BackendAuto:
		b, release, err := newWebGPU()
		if err == nil {
			return b, release, nil
		}
		log.Debug("falling back to CPU backend", zap.Error(err))
		return newCPU(c), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
}
