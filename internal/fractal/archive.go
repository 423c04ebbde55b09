package fractal

import (
	"fmt"
	"strconv"

	"github.com/born-ml/numerics/internal/serialization"
	"github.com/born-ml/numerics/internal/tensor"
)

// Archive tensor names.
const (
	PlaneTensor      = "plane"
	DivergenceTensor = "divergence"
)

// Tensors returns the sampled plane and the divergence map.
func (r *Result) Tensors() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{
		PlaneTensor:      r.plane,
		DivergenceTensor: r.divergence,
	}
}

// metadata records the rendering parameters in archive form.
func (r *Result) metadata() map[string]string {
	p := r.params
	return map[string]string{
		"c":            strconv.FormatComplex(p.C, 'g', -1, 128),
		"tolerance":    strconv.FormatFloat(p.Tolerance, 'g', -1, 64),
		"iterations":   strconv.Itoa(p.Iterations),
		"top_left":     strconv.FormatComplex(p.TopLeft, 'g', -1, 128),
		"bottom_right": strconv.FormatComplex(p.BottomRight, 'g', -1, 128),
	}
}

// SaveArchive writes the plane and divergence map to a .cplx archive.
// Complex values are stored canonicalized.
func (r *Result) SaveArchive(path string) error {
	if err := serialization.WriteFile(path, r.Tensors(), serialization.WriteOptions{
		Metadata:     r.metadata(),
		Canonicalize: true,
	}); err != nil {
		return fmt.Errorf("fractal: %w", err)
	}
	return nil
}
