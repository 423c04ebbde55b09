package fractal

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/born-ml/numerics/internal/config"
	"github.com/born-ml/numerics/internal/parallel"
)

// Image maps the divergence map to grayscale on a logarithmic scale. Samples
// that escape immediately are white; bounded samples are black.
func (r *Result) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	parallel.ForRows(r.Height, r.Width, func(y, x int) {
		img.Pix[y*img.Stride+x] = shade(r.At(x, y), r.Iterations)
	}, parallel.DefaultConfig())
	return img
}

func shade(d int32, iterations int) uint8 {
	if int(d) >= iterations {
		return 0
	}
	v := 255 * (1 - math.Log1p(float64(d))/math.Log1p(float64(iterations)))
	return uint8(math.Round(v))
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img *image.Gray, format string) error {
	switch format {
	case config.FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("fractal: encode png: %w", err)
		}
		return nil
	case config.FormatPGM:
		return encodePGM(w, img)
	default:
		return fmt.Errorf("fractal: unknown image format %q", format)
	}
}

// encodePGM writes a binary (P5) portable graymap.
func encodePGM(w io.Writer, img *image.Gray) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("fractal: encode pgm: %w", err)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := img.PixOffset(bounds.Min.X, y)
		if _, err := bw.Write(img.Pix[i : i+bounds.Dx()]); err != nil {
			return fmt.Errorf("fractal: encode pgm: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("fractal: encode pgm: %w", err)
	}
	return nil
}

// Save writes the image of r to path.
func (r *Result) Save(path, format string) (err error) {
	f, err := os.Create(path) //nolint:gosec // G304: path is a user-chosen output file.
	if err != nil {
		return fmt.Errorf("fractal: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("fractal: %w", cerr)
		}
	}()
	return Encode(f, r.Image(), format)
}
