package fractal

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/born-ml/numerics/internal/backend/cpu"
	"github.com/born-ml/numerics/internal/config"
)

// squareParams samples the integer points of [-2, 2]×[-2, 2] under z = z*z.
func squareParams(precision string) Params {
	return Params{
		C:           0,
		Tolerance:   2,
		Iterations:  10,
		Width:       5,
		Height:      5,
		TopLeft:     complex(-2, 2),
		BottomRight: complex(2, -2),
		Precision:   precision,
	}
}

func TestRender(t *testing.T) {
	for _, precision := range []string{config.PrecisionFloat32, config.PrecisionFloat64} {
		t.Run(precision, func(t *testing.T) {
			r := NewRenderer(cpu.New(), nil)
			res, err := r.Render(squareParams(precision))
			require.NoError(t, err)
			require.Len(t, res.Divergence, 25)

			assert.Equal(t, int32(10), res.At(2, 2), "origin is fixed")
			assert.Equal(t, int32(10), res.At(3, 2), "1 is fixed")
			assert.Equal(t, int32(10), res.At(2, 1), "i cycles through -1 and 1")
			assert.Equal(t, int32(0), res.At(4, 2), "2 squares to 4")
			assert.Equal(t, int32(1), res.At(3, 1), "1+i squares to 2i, then -4")
			assert.Equal(t, int32(0), res.At(0, 0))
			assert.Equal(t, 5, res.Bounded())
		})
	}
}

func TestRenderZeroIterations(t *testing.T) {
	p := squareParams(config.PrecisionFloat32)
	p.Iterations = 0
	res, err := NewRenderer(cpu.New(), nil).Render(p)
	require.NoError(t, err)
	for _, d := range res.Divergence {
		assert.Equal(t, int32(0), d)
	}
	assert.Equal(t, 25, res.Bounded())
}

func TestRenderInvalid(t *testing.T) {
	r := NewRenderer(cpu.New(), nil)
	mutations := map[string]func(*Params){
		"width":      func(p *Params) { p.Width = 0 },
		"iterations": func(p *Params) { p.Iterations = -1 },
		"tolerance":  func(p *Params) { p.Tolerance = 0 },
		"precision":  func(p *Params) { p.Precision = "float16" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p := squareParams(config.PrecisionFloat32)
			mutate(&p)
			_, err := r.Render(p)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestRenderLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRenderer(cpu.New(), zap.New(core))
	_, err := r.Render(squareParams(config.PrecisionFloat32))
	require.NoError(t, err)

	done := logs.FilterMessage("rendered julia set").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	assert.Equal(t, "CPU", fields["backend"])
	assert.Equal(t, int64(5), fields["bounded"])
	assert.Equal(t, "fractal", done[0].LoggerName)
	assert.Equal(t, 1, logs.FilterMessage("rendering julia set").Len())
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.Default()
	p := ParamsFromConfig(&cfg)
	assert.Equal(t, complex(-0.8, 0.156), p.C)
	assert.Equal(t, complex(-1.7, 1.7), p.TopLeft)
	assert.Equal(t, complex(1.7, -1.7), p.BottomRight)
	assert.Equal(t, 2048, p.Iterations)
	assert.Equal(t, config.PrecisionFloat32, p.Precision)
}

func TestShade(t *testing.T) {
	assert.Equal(t, uint8(255), shade(0, 10))
	assert.Equal(t, uint8(0), shade(10, 10))
	assert.Equal(t, uint8(0), shade(0, 0))
	assert.Greater(t, shade(1, 10), shade(5, 10))
}

func TestImage(t *testing.T) {
	p := squareParams(config.PrecisionFloat32)
	p.C = complex(-0.8, 0.156)
	p.Width, p.Height = 64, 48
	res, err := NewRenderer(cpu.New(), nil).Render(p)
	require.NoError(t, err)

	img := res.Image()
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 48, img.Bounds().Dy())
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			require.Equal(t, shade(res.At(x, y), p.Iterations), img.GrayAt(x, y).Y, "pixel (%d, %d)", x, y)
		}
	}
}

func TestEncode(t *testing.T) {
	res, err := NewRenderer(cpu.New(), nil).Render(squareParams(config.PrecisionFloat64))
	require.NoError(t, err)
	img := res.Image()

	var pgm bytes.Buffer
	require.NoError(t, Encode(&pgm, img, config.FormatPGM))
	header := "P5\n5 5\n255\n"
	require.Equal(t, len(header)+25, pgm.Len())
	assert.Equal(t, header, pgm.String()[:len(header)])
	assert.Equal(t, byte(0), pgm.Bytes()[len(header)+12], "origin is bounded")
	assert.Equal(t, byte(255), pgm.Bytes()[len(header)], "corner escapes immediately")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, config.FormatPNG))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	assert.Error(t, Encode(&buf, img, "gif"))
}

func TestSave(t *testing.T) {
	res, err := NewRenderer(cpu.New(), nil).Render(squareParams(config.PrecisionFloat32))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "julia.pgm")
	require.NoError(t, res.Save(path, config.FormatPGM))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, len("P5\n5 5\n255\n")+25)

	assert.Error(t, res.Save(filepath.Join(t.TempDir(), "missing", "julia.png"), config.FormatPNG))
}

func BenchmarkRender(b *testing.B) {
	r := NewRenderer(cpu.New(), nil)
	cfg := config.Default()
	p := ParamsFromConfig(&cfg)
	p.Width, p.Height, p.Iterations = 200, 200, 256
	for b.Loop() {
		if _, err := r.Render(p); err != nil {
			b.Fatal(err)
		}
	}
}
