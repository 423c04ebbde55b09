// Package fractal renders Julia sets with the complex tensor backends.
//
// A rectangle of the complex plane is sampled on a Height×Width grid and
// every sample is iterated z = z*z + C. The divergence map records, per
// pixel, the first iteration at which |z| exceeded the tolerance, or the
// iteration limit when it never did.
package fractal

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/born-ml/numerics/internal/config"
	"github.com/born-ml/numerics/internal/cplx"
	"github.com/born-ml/numerics/internal/tensor"
)

// ErrInvalidParams is returned for parameters that cannot be rendered.
var ErrInvalidParams = errors.New("fractal: invalid parameters")

// Params describes one rendering.
type Params struct {
	C           complex128
	Tolerance   float64
	Iterations  int
	Width       int
	Height      int
	TopLeft     complex128
	BottomRight complex128
	Precision   string // config.PrecisionFloat32 or config.PrecisionFloat64
}

// ParamsFromConfig converts the julia section of the configuration.
func ParamsFromConfig(cfg *config.Config) Params {
	j := cfg.Julia
	return Params{
		C:           complex(j.CReal, j.CImag),
		Tolerance:   j.Tolerance,
		Iterations:  j.Iterations,
		Width:       j.Width,
		Height:      j.Height,
		TopLeft:     complex(j.MinReal, j.MaxImag),
		BottomRight: complex(j.MaxReal, j.MinImag),
		Precision:   cfg.Precision,
	}
}

func (p Params) validate() error {
	switch {
	case p.Width < 1 || p.Height < 1:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.Iterations < 0:
		return fmt.Errorf("%w: iterations %d", ErrInvalidParams, p.Iterations)
	case p.Iterations > 1<<31-1:
		return fmt.Errorf("%w: iterations %d overflow int32", ErrInvalidParams, p.Iterations)
	case !(p.Tolerance > 0):
		return fmt.Errorf("%w: tolerance %v", ErrInvalidParams, p.Tolerance)
	}
	return nil
}

// Result is a divergence map in row-major order, top row first.
type Result struct {
	Divergence []int32
	Width      int
	Height     int
	Iterations int
	Elapsed    time.Duration

	params     Params
	plane      *tensor.RawTensor
	divergence *tensor.RawTensor
}

// At returns the divergence of pixel (x, y).
func (r *Result) At(x, y int) int32 {
	return r.Divergence[y*r.Width+x]
}

// Bounded returns the number of samples that never escaped.
func (r *Result) Bounded() int {
	n := 0
	for _, d := range r.Divergence {
		if int(d) >= r.Iterations {
			n++
		}
	}
	return n
}

// Renderer runs Julia iterations on a backend.
type Renderer struct {
	backend tensor.Backend
	logger  *zap.Logger
}

// NewRenderer creates a renderer. A nil logger discards output.
func NewRenderer(backend tensor.Backend, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{backend: backend, logger: logger.Named("fractal")}
}

// Render computes the divergence map for p.
func (r *Renderer) Render(p Params) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	log := r.logger.With(
		zap.String("backend", r.backend.Name()),
		zap.String("precision", p.Precision),
		zap.Int("width", p.Width),
		zap.Int("height", p.Height),
		zap.Int("iterations", p.Iterations),
	)
	log.Debug("rendering julia set",
		zap.String("c", fmt.Sprint(p.C)),
		zap.Float64("tolerance", p.Tolerance),
	)

	start := time.Now()
	var plane, div *tensor.RawTensor
	switch p.Precision {
	case config.PrecisionFloat64:
		plane, div = divergence(r.backend, cplx.FromNative[float64](p.TopLeft), cplx.FromNative[float64](p.BottomRight), p)
	case config.PrecisionFloat32, "":
		plane, div = divergence(r.backend, cplx.FromNative[float32](p.TopLeft), cplx.FromNative[float32](p.BottomRight), p)
	default:
		return nil, fmt.Errorf("%w: precision %q", ErrInvalidParams, p.Precision)
	}

	result := &Result{
		Divergence: div.AsInt32(),
		Width:      p.Width,
		Height:     p.Height,
		Iterations: p.Iterations,
		Elapsed:    time.Since(start),
		params:     p,
		plane:      plane,
		divergence: div,
	}
	log.Info("rendered julia set",
		zap.Duration("elapsed", result.Elapsed),
		zap.Int("bounded", result.Bounded()),
	)
	return result, nil
}

// divergence samples the plane and iterates it, returning both tensors.
func divergence[T tensor.DType](b tensor.Backend, topLeft, bottomRight T, p Params) (plane, div *tensor.RawTensor) {
	z := tensor.Plane(topLeft, bottomRight, p.Height, p.Width, b)
	return z.Raw(), z.Julia(p.C, p.Tolerance, p.Iterations).Raw()
}
