package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/numerics/internal/cplx"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show backends, CPU features and floating point limits",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		backend := newCPU(cfg)
		p := backend.Parallel()

		fmt.Fprintln(w, "Backends:")
		fmt.Fprintf(w, "  %-8s %s\n", backend.Name(), backend.Features())
		fmt.Fprintf(w, "  %-8s parallel=%t workers=%d min_chunk=%d\n", "", p.Enabled, p.NumWorkers, p.MinChunkSize)
		gpu := "unavailable"
		if webgpuAvailable() {
			gpu = "available (Complex64 on device, Complex128 on host)"
		}
		fmt.Fprintf(w, "  %-8s %s\n", "WebGPU", gpu)

		fmt.Fprintln(w, "Limits:")
		min32, max32 := cplx.Limits[float32]()
		min64, max64 := cplx.Limits[float64]()
		fmt.Fprintf(w, "  float32  min normal %g, max finite %g\n", min32, max32)
		fmt.Fprintf(w, "  float64  min normal %g, max finite %g\n", min64, max64)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
