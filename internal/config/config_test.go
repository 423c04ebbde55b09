package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), *cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "numerics.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
backend: cpu
precision: float64
julia:
  iterations: 100
  width: 64
  output: out.pgm
`), 0o600))

	t.Setenv("NUMERICS_JULIA_ITERATIONS", "200")
	t.Setenv("NUMERICS_LOG_FORMAT", "json")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	AddJuliaFlags(fs)
	require.NoError(t, fs.Parse([]string{"--width", "32", "--workers", "3"}))

	v := viper.New()
	require.NoError(t, BindFlags(v, fs))
	cfg, err := Load(v, file)
	require.NoError(t, err)

	want := Default()
	want.Backend = BackendCPU
	want.Precision = PrecisionFloat64
	want.Log.Format = "json"
	want.Parallel.Workers = 3
	want.Julia.Iterations = 200
	want.Julia.Width = 32
	want.Julia.Output = "out.pgm"
	want.Julia.Format = FormatPGM

	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("NUMERICS_BACKEND", "tpu")
	_, err := Load(viper.New(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `backend must be cpu, webgpu or auto, got "tpu"`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"precision", func(c *Config) { c.Precision = "float16" }, "precision"},
		{"workers", func(c *Config) { c.Parallel.Workers = -1 }, "parallel.workers"},
		{"min chunk", func(c *Config) { c.Parallel.MinChunkSize = 0 }, "parallel.min_chunk_size"},
		{"iterations", func(c *Config) { c.Julia.Iterations = -5 }, "julia.iterations"},
		{"zero iterations", func(c *Config) { c.Julia.Iterations = 0 }, ""},
		{"tolerance", func(c *Config) { c.Julia.Tolerance = 0 }, "julia.tolerance"},
		{"size", func(c *Config) { c.Julia.Height = 0 }, "at least 1x1"},
		{"real range", func(c *Config) { c.Julia.MinReal = c.Julia.MaxReal }, "julia.min_real"},
		{"imag range", func(c *Config) { c.Julia.MaxImag = -2 }, "julia.min_imag"},
		{"format", func(c *Config) { c.Julia.Format = "gif" }, "julia.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Backend = "tpu"
	cfg.Julia.Width = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend")
	assert.Contains(t, err.Error(), "at least 1x1")
}

func TestResolveFormat(t *testing.T) {
	assert.Equal(t, FormatPGM, resolveFormat("", "fractal.PGM"))
	assert.Equal(t, FormatPNG, resolveFormat("", "fractal.png"))
	assert.Equal(t, FormatPNG, resolveFormat("", "fractal"))
	assert.Equal(t, FormatPGM, resolveFormat("PGM", "fractal.png"))
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Julia.Iterations = 77

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "iterations: 77")

	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	if diff := cmp.Diff(cfg, back); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
}
