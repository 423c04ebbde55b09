package fractal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numerics/internal/backend/cpu"
	"github.com/born-ml/numerics/internal/config"
	"github.com/born-ml/numerics/internal/serialization"
	"github.com/born-ml/numerics/internal/tensor"
)

func TestSaveArchive(t *testing.T) {
	res, err := NewRenderer(cpu.New(), nil).Render(squareParams(config.PrecisionFloat64))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "julia.cplx")
	require.NoError(t, res.SaveArchive(path))

	archive, err := serialization.ReadFile(path, serialization.ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{DivergenceTensor, PlaneTensor}, archive.Names())
	assert.Equal(t, "10", archive.Header.Metadata["iterations"])
	assert.Equal(t, "(0+0i)", archive.Header.Metadata["c"])
	assert.Equal(t, "(-2+2i)", archive.Header.Metadata["top_left"])

	div, err := archive.Tensor(DivergenceTensor)
	require.NoError(t, err)
	assert.Equal(t, res.Divergence, div.AsInt32())

	plane, err := archive.Tensor(PlaneTensor)
	require.NoError(t, err)
	assert.Equal(t, tensor.Complex128, plane.DType())
	assert.Equal(t, tensor.Shape{5, 5}, plane.Shape())
	re, im := plane.AsComplex128()[0].Components()
	assert.Equal(t, -2.0, re)
	assert.Equal(t, 2.0, im)
}
