// Package config loads the colorflow TOML configuration.
//
//	workers = 4
//	log_level = "info"
//
//	[tonemap]
//	operator = "lottes"
//	exposure = 0.5
//
//	[tonemap.lottes]
//	max_luminance = 64.0
//
//	[[swatch]]
//	name = "accent"
//	raw = [0.4, 0.2, 0.6]
//	space = "encoded_srgb"
//	state = "display"
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"colorflow/dynamic"
	"colorflow/tonemap"
)

const (
	OperatorLottes     = "lottes"
	OperatorPerceptual = "perceptual"
)

// Tonemap selects and parameterizes the operator used to bring graded
// images back to the display.
type Tonemap struct {
	Operator   string                   `toml:"operator"`
	Exposure   float64                  `toml:"exposure"`
	Lottes     tonemap.LottesParams     `toml:"lottes"`
	Perceptual tonemap.PerceptualParams `toml:"perceptual"`
}

// New returns the configured operator.
func (t Tonemap) New() (tonemap.Operator, error) {
	switch t.Operator {
	case OperatorLottes:
		return tonemap.NewLottes(t.Lottes)
	case OperatorPerceptual:
		return tonemap.NewPerceptual(t.Perceptual)
	default:
		return nil, fmt.Errorf("unknown tonemap operator %q, want %s or %s", t.Operator, OperatorLottes, OperatorPerceptual)
	}
}

// Swatch is a named color in the dynamic wire shape.
type Swatch struct {
	Name string `toml:"name"`
	dynamic.Wire
}

// Color validates the swatch tags.
func (s Swatch) Color() (dynamic.Color, error) {
	c, err := dynamic.FromWire(s.Wire)
	if err != nil {
		return dynamic.Color{}, fmt.Errorf("swatch %q: %w", s.Name, err)
	}
	return c, nil
}

type Config struct {
	Workers  int        `toml:"workers"`
	LogLevel slog.Level `toml:"log_level"`
	Tonemap  Tonemap    `toml:"tonemap"`
	Swatches []Swatch   `toml:"swatch"`
}

func Default() Config {
	return Config{
		LogLevel: slog.LevelInfo,
		Tonemap: Tonemap{
			Operator:   OperatorLottes,
			Lottes:     tonemap.DefaultLottesParams(),
			Perceptual: tonemap.DefaultPerceptualParams(),
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %q: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if math.IsNaN(c.Tonemap.Exposure) || math.IsInf(c.Tonemap.Exposure, 0) {
		errs = append(errs, fmt.Errorf("exposure must be finite, got %g", c.Tonemap.Exposure))
	}
	if _, err := c.Tonemap.New(); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]bool, len(c.Swatches))
	for i, s := range c.Swatches {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("swatch #%d has no name", i))
		} else if seen[s.Name] {
			errs = append(errs, fmt.Errorf("duplicate swatch %q", s.Name))
		}
		seen[s.Name] = true

		if _, err := s.Color(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Swatch returns the color of the named swatch.
func (c Config) Swatch(name string) (dynamic.Color, error) {
	for _, s := range c.Swatches {
		if s.Name == name {
			return s.Color()
		}
	}
	return dynamic.Color{}, fmt.Errorf("no swatch named %q", name)
}
