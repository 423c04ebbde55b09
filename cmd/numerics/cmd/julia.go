package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/numerics/internal/config"
	"github.com/born-ml/numerics/internal/fractal"
)

var juliaCmd = &cobra.Command{
	Use:   "julia",
	Short: "Render a Julia set",
	Long: `Render the Julia set of z*z + C over a rectangle of the complex plane.

Every pixel holds the first iteration at which |z| exceeded the tolerance.
The map is written as a grayscale PGM or PNG image; bounded points are black.`,
	Example: `  numerics julia --c-real -0.8 --c-imag 0.156 -o julia.png
  numerics julia --backend cpu --precision float64 --iterations 500 -o julia.pgm`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runJulia(cmd, cfg)
	},
}

func init() {
	config.AddJuliaFlags(juliaCmd.Flags())
	rootCmd.AddCommand(juliaCmd)
}

func runJulia(cmd *cobra.Command, c *config.Config) error {
	backend, release, err := selectBackend(c, logger)
	if err != nil {
		return err
	}
	defer release()

	result, err := fractal.NewRenderer(backend, logger).Render(fractal.ParamsFromConfig(c))
	if err != nil {
		return err
	}
	if err := result.Save(c.Julia.Output, c.Julia.Format); err != nil {
		return err
	}

	logger.Debug("image written", zap.String("path", c.Julia.Output), zap.String("format", c.Julia.Format))
	if c.Julia.Archive != "" {
		if err := result.SaveArchive(c.Julia.Archive); err != nil {
			return err
		}
		logger.Debug("archive written", zap.String("path", c.Julia.Archive))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, %d bounded, %s on %s\n",
		c.Julia.Output, result.Width, result.Height, result.Bounded(), result.Elapsed, backend.Name())
	return nil
}
