// Package cmd implements the numerics command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/born-ml/numerics/internal/config"
	"github.com/born-ml/numerics/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "numerics",
	Short: "Robust complex arithmetic on CPU and WebGPU",
	Long: `numerics evaluates complex values with careful overflow and underflow
handling, and renders Julia sets with the tensor backends.

Configuration is read from flags, NUMERICS_* environment variables and an
optional YAML or TOML file, in that order of precedence.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or TOML)")
	config.AddFlags(rootCmd.PersistentFlags())
}

// loadConfig resolves the effective configuration and builds the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	c, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	l, err := logging.New(c.Log.Level, c.Log.Format)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	logger.Debug("configuration loaded",
		zap.String("file", cfgFile),
		zap.String("backend", cfg.Backend),
		zap.String("precision", cfg.Precision),
	)
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
