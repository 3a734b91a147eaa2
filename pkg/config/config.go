package config

import (
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/xerrors"

	"github.com/neudoerf/raytracing/pkg/renderer"
)

// Config holds the environment defaults for a render run. Command-line flags
// override these values.
type Config struct {
	Workers   int    `envconfig:"RAYTRACER_WORKERS" default:"4"`
	Seed      uint64 `envconfig:"RAYTRACER_SEED" default:"42"`
	ImageDir  string `envconfig:"RTW_IMAGES"`
	OutputDir string `envconfig:"RAYTRACER_OUTPUT_DIR" default:"output"`
	Format    string `envconfig:"RAYTRACER_FORMAT" default:"ppm"`
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, xerrors.Errorf("while reading environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that envconfig cannot constrain by type
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return xerrors.Errorf("worker count must be positive, got %d", c.Workers)
	}
	switch c.Format {
	case renderer.FormatPPM, renderer.FormatPNG:
	default:
		return xerrors.Errorf("unsupported output format %q (want %q or %q)", c.Format, renderer.FormatPPM, renderer.FormatPNG)
	}
	return nil
}
