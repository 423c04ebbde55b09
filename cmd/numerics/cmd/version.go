package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build information, set with -ldflags at release time.
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "numerics %s\n", Version)
		fmt.Fprintf(w, "  Commit:  %s\n", GitCommit)
		fmt.Fprintf(w, "  Built:   %s\n", BuildDate)
		fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
		fmt.Fprintf(w, "  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
