// Package config loads the settings of the fractal command from flags, the
// environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/willbeason/fractals/pkg/viewport"
)

// EnvPrefix prefixes environment overrides, e.g. FRACTAL_ITERATIONS.
const EnvPrefix = "FRACTAL"

// Keys shared by flags, the environment and config files.
const (
	KeyIterations  = "iterations"
	KeyJuliaAngle  = "julia-angle"
	KeySize        = "size"
	KeyMode        = "mode"
	KeyFormat      = "format"
	KeyOut         = "out"
	KeyPrefix      = "prefix"
	KeyWorkers     = "workers"
	KeySeed        = "seed"
	KeyFrames      = "frames"
	KeyZoom        = "zoom"
	KeySupersample = "supersample"
	KeyCaption     = "caption"
	KeyRegion      = "region"
	KeyVerbose     = "verbose"
)

// Config is everything the command line tools need for a session.
type Config struct {
	Iterations  int     `mapstructure:"iterations"`
	JuliaAngle  float64 `mapstructure:"julia-angle"`
	Size        int     `mapstructure:"size"`
	Mode        string  `mapstructure:"mode"`
	Format      string  `mapstructure:"format"`
	Out         string  `mapstructure:"out"`
	Prefix      string  `mapstructure:"prefix"`
	Workers     int     `mapstructure:"workers"`
	Seed        int64   `mapstructure:"seed"`
	Frames      int     `mapstructure:"frames"`
	Zoom        float64 `mapstructure:"zoom"`
	Supersample int     `mapstructure:"supersample"`
	Caption     bool    `mapstructure:"caption"`
	Region      string  `mapstructure:"region"`
	Verbose     bool    `mapstructure:"verbose"`

	// Viewport overrides the region when set in a config file.
	Viewport *viewport.Viewport `mapstructure:"viewport"`
}

// SetDefaults installs the defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyIterations, 40)
	v.SetDefault(KeyJuliaAngle, math.Pi/2)
	v.SetDefault(KeySize, 800)
	v.SetDefault(KeyMode, "colormap")
	v.SetDefault(KeyFormat, "png")
	v.SetDefault(KeyOut, "out")
	v.SetDefault(KeyPrefix, "Screenshot")
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyFrames, 1)
	v.SetDefault(KeyZoom, 1.0)
	v.SetDefault(KeySupersample, 1)
	v.SetDefault(KeyCaption, false)
	v.SetDefault(KeyRegion, "")
	v.SetDefault(KeyVerbose, false)
}

// New returns a viper instance with defaults and environment overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, binds flags and decodes the result.
//
// An explicit file must exist. Without one, fractal.yaml (or .json, .toml)
// in the working directory is read when present.
func Load(v *viper.Viper, file string, flags *pflag.FlagSet) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("fractal")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("binding flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings no frame could be rendered with.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", c.Iterations)
	}
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", c.Frames)
	}
	if !(c.Zoom > 0) {
		return fmt.Errorf("zoom must be positive, got %g", c.Zoom)
	}
	if c.Supersample < 1 {
		return fmt.Errorf("supersample must be at least 1, got %d", c.Supersample)
	}
	if c.Viewport != nil {
		if err := c.Viewport.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ViewportFor picks the viewport: an explicit one from the config file, then
// the named region, then fallback.
func (c Config) ViewportFor(fallback viewport.Viewport) (viewport.Viewport, error) {
	if c.Viewport != nil {
		return *c.Viewport, nil
	}
	if c.Region != "" {
		return viewport.Region(c.Region)
	}
	return fallback, nil
}
