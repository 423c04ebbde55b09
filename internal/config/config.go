// Package config loads the numerics tool configuration from defaults, an
// optional YAML or TOML file, NUMERICS_* environment variables and command
// line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g.
// NUMERICS_JULIA_ITERATIONS=512.
const EnvPrefix = "NUMERICS"

// Backend names.
const (
	BackendCPU    = "cpu"
	BackendWebGPU = "webgpu"
	BackendAuto   = "auto"
)

// Precision names.
const (
	PrecisionFloat32 = "float32"
	PrecisionFloat64 = "float64"
)

// Image formats written by the julia renderer.
const (
	FormatPGM = "pgm"
	FormatPNG = "png"
)

// Config is the effective configuration.
type Config struct {
	Log       LogConfig      `mapstructure:"log" yaml:"log"`
	Backend   string         `mapstructure:"backend" yaml:"backend"`
	Precision string         `mapstructure:"precision" yaml:"precision"`
	Parallel  ParallelConfig `mapstructure:"parallel" yaml:"parallel"`
	Julia     JuliaConfig    `mapstructure:"julia" yaml:"julia"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ParallelConfig tunes the CPU backend worker pool. Zero workers means one
// per CPU.
type ParallelConfig struct {
	Enabled      bool `mapstructure:"enabled" yaml:"enabled"`
	Workers      int  `mapstructure:"workers" yaml:"workers"`
	MinChunkSize int  `mapstructure:"min_chunk_size" yaml:"min_chunk_size"`
}

// JuliaConfig holds the parameters of a Julia set rendering: the constant
// C, the escape tolerance, the iteration limit, the sampled rectangle of the
// complex plane, the output image and an optional .cplx archive of the
// sampled plane and divergence map.
type JuliaConfig struct {
	CReal      float64 `mapstructure:"c_real" yaml:"c_real"`
	CImag      float64 `mapstructure:"c_imag" yaml:"c_imag"`
	Tolerance  float64 `mapstructure:"tolerance" yaml:"tolerance"`
	Iterations int     `mapstructure:"iterations" yaml:"iterations"`
	Width      int     `mapstructure:"width" yaml:"width"`
	Height     int     `mapstructure:"height" yaml:"height"`
	MinReal    float64 `mapstructure:"min_real" yaml:"min_real"`
	MaxReal    float64 `mapstructure:"max_real" yaml:"max_real"`
	MinImag    float64 `mapstructure:"min_imag" yaml:"min_imag"`
	MaxImag    float64 `mapstructure:"max_imag" yaml:"max_imag"`
	Output     string  `mapstructure:"output" yaml:"output"`
	Format     string  `mapstructure:"format" yaml:"format"`
	Archive    string  `mapstructure:"archive" yaml:"archive"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:       LogConfig{Level: "info", Format: "console"},
		Backend:   BackendAuto,
		Precision: PrecisionFloat32,
		Parallel:  ParallelConfig{Enabled: true, Workers: 0, MinChunkSize: 1024},
		Julia: JuliaConfig{
			CReal:      -0.8,
			CImag:      0.156,
			Tolerance:  4,
			Iterations: 2048,
			Width:      1000,
			Height:     1000,
			MinReal:    -1.7,
			MaxReal:    1.7,
			MinImag:    -1.7,
			MaxImag:    1.7,
			Output:     "julia.png",
			Format:     FormatPNG,
		},
	}
}

// flag describes one command line flag and the key it overrides.
type flag struct {
	name  string
	key   string
	usage string
}

var globalFlags = []flag{
	{"log-level", "log.level", "log level (debug, info, warn, error)"},
	{"log-format", "log.format", "log format (console, json)"},
	{"backend", "backend", "compute backend (cpu, webgpu, auto)"},
	{"precision", "precision", "component precision (float32, float64)"},
	{"parallel", "parallel.enabled", "run CPU kernels on multiple goroutines"},
	{"workers", "parallel.workers", "CPU worker goroutines (0 = one per CPU)"},
	{"min-chunk", "parallel.min_chunk_size", "minimum elements per CPU worker"},
}

var juliaFlags = []flag{
	{"c-real", "julia.c_real", "real part of the constant C"},
	{"c-imag", "julia.c_imag", "imaginary part of the constant C"},
	{"tolerance", "julia.tolerance", "escape radius"},
	{"iterations", "julia.iterations", "iteration limit"},
	{"width", "julia.width", "image width in pixels"},
	{"height", "julia.height", "image height in pixels"},
	{"min-real", "julia.min_real", "left edge of the sampled plane"},
	{"max-real", "julia.max_real", "right edge of the sampled plane"},
	{"min-imag", "julia.min_imag", "bottom edge of the sampled plane"},
	{"max-imag", "julia.max_imag", "top edge of the sampled plane"},
	{"output", "julia.output", "output file"},
	{"format", "julia.format", "image format (pgm, png); empty infers it from the output extension"},
	{"archive", "julia.archive", "also save the plane and divergence map to this .cplx archive"},
}

// AddFlags registers the global flags on fs with the built-in defaults.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("log-level", d.Log.Level, lookup(globalFlags, "log-level").usage)
	fs.String("log-format", d.Log.Format, lookup(globalFlags, "log-format").usage)
	fs.String("backend", d.Backend, lookup(globalFlags, "backend").usage)
	fs.String("precision", d.Precision, lookup(globalFlags, "precision").usage)
	fs.Bool("parallel", d.Parallel.Enabled, lookup(globalFlags, "parallel").usage)
	fs.Int("workers", d.Parallel.Workers, lookup(globalFlags, "workers").usage)
	fs.Int("min-chunk", d.Parallel.MinChunkSize, lookup(globalFlags, "min-chunk").usage)
}

// AddJuliaFlags registers the julia rendering flags on fs.
func AddJuliaFlags(fs *pflag.FlagSet) {
	j := Default().Julia
	fs.Float64("c-real", j.CReal, lookup(juliaFlags, "c-real").usage)
	fs.Float64("c-imag", j.CImag, lookup(juliaFlags, "c-imag").usage)
	fs.Float64("tolerance", j.Tolerance, lookup(juliaFlags, "tolerance").usage)
	fs.Int("iterations", j.Iterations, lookup(juliaFlags, "iterations").usage)
	fs.Int("width", j.Width, lookup(juliaFlags, "width").usage)
	fs.Int("height", j.Height, lookup(juliaFlags, "height").usage)
	fs.Float64("min-real", j.MinReal, lookup(juliaFlags, "min-real").usage)
	fs.Float64("max-real", j.MaxReal, lookup(juliaFlags, "max-real").usage)
	fs.Float64("min-imag", j.MinImag, lookup(juliaFlags, "min-imag").usage)
	fs.Float64("max-imag", j.MaxImag, lookup(juliaFlags, "max-imag").usage)
	fs.StringP("output", "o", j.Output, lookup(juliaFlags, "output").usage)
	fs.String("format", "", lookup(juliaFlags, "format").usage)
	fs.String("archive", j.Archive, lookup(juliaFlags, "archive").usage)
}

func lookup(flags []flag, name string) flag {
	for _, f := range flags {
		if f.name == name {
			return f
		}
	}
	panic("config: unknown flag " + name)
}

// BindFlags binds every known flag present in fs to its configuration key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, table := range [][]flag{globalFlags, juliaFlags} {
		for _, f := range table {
			pf := fs.Lookup(f.name)
			if pf == nil {
				continue
			}
			if err := v.BindPFlag(f.key, pf); err != nil {
				return fmt.Errorf("config: bind flag %s: %w", f.name, err)
			}
		}
	}
	return nil
}

// SetDefaults installs the built-in defaults in v. Every key needs a
// default for environment overrides to apply during Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("backend", d.Backend)
	v.SetDefault("precision", d.Precision)
	v.SetDefault("parallel.enabled", d.Parallel.Enabled)
	v.SetDefault("parallel.workers", d.Parallel.Workers)
	v.SetDefault("parallel.min_chunk_size", d.Parallel.MinChunkSize)
	v.SetDefault("julia.c_real", d.Julia.CReal)
	v.SetDefault("julia.c_imag", d.Julia.CImag)
	v.SetDefault("julia.tolerance", d.Julia.Tolerance)
	v.SetDefault("julia.iterations", d.Julia.Iterations)
	v.SetDefault("julia.width", d.Julia.Width)
	v.SetDefault("julia.height", d.Julia.Height)
	v.SetDefault("julia.min_real", d.Julia.MinReal)
	v.SetDefault("julia.max_real", d.Julia.MaxReal)
	v.SetDefault("julia.min_imag", d.Julia.MinImag)
	v.SetDefault("julia.max_imag", d.Julia.MaxImag)
	v.SetDefault("julia.output", d.Julia.Output)
	v.SetDefault("julia.format", "")
	v.SetDefault("julia.archive", d.Julia.Archive)
}

// Load reads the configuration into a validated Config. file may be empty,
// in which case only defaults, environment and bound flags apply.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Julia.Format = resolveFormat(cfg.Julia.Format, cfg.Julia.Output)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveFormat infers the image format from the output extension when none
// is given.
func resolveFormat(format, output string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if strings.HasSuffix(strings.ToLower(output), ".pgm") {
		return FormatPGM
	}
	return FormatPNG
}

// Validate checks that all values are within their ranges.
func (c *Config) Validate() error {
	var errs []error

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	switch c.Backend {
	case BackendCPU, BackendWebGPU, BackendAuto:
	default:
		errs = append(errs, fmt.Errorf("backend must be cpu, webgpu or auto, got %q", c.Backend))
	}
	switch c.Precision {
	case PrecisionFloat32, PrecisionFloat64:
	default:
		errs = append(errs, fmt.Errorf("precision must be float32 or float64, got %q", c.Precision))
	}

	if c.Parallel.Workers < 0 {
		errs = append(errs, fmt.Errorf("parallel.workers must be >= 0, got %d", c.Parallel.Workers))
	}
	if c.Parallel.MinChunkSize < 1 {
		errs = append(errs, fmt.Errorf("parallel.min_chunk_size must be >= 1, got %d", c.Parallel.MinChunkSize))
	}

	j := c.Julia
	if j.Iterations < 0 {
		errs = append(errs, fmt.Errorf("julia.iterations must be >= 0, got %d", j.Iterations))
	}
	if !(j.Tolerance > 0) {
		errs = append(errs, fmt.Errorf("julia.tolerance must be > 0, got %v", j.Tolerance))
	}
	if j.Width < 1 || j.Height < 1 {
		errs = append(errs, fmt.Errorf("julia image must be at least 1x1, got %dx%d", j.Width, j.Height))
	}
	if !(j.MinReal < j.MaxReal) {
		errs = append(errs, fmt.Errorf("julia.min_real (%v) must be less than julia.max_real (%v)", j.MinReal, j.MaxReal))
	}
	if !(j.MinImag < j.MaxImag) {
		errs = append(errs, fmt.Errorf("julia.min_imag (%v) must be less than julia.max_imag (%v)", j.MinImag, j.MaxImag))
	}
	switch j.Format {
	case FormatPGM, FormatPNG:
	default:
		errs = append(errs, fmt.Errorf("julia.format must be pgm or png, got %q", j.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// YAML returns the configuration encoded as YAML.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return out, nil
}
