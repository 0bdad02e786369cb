// Package swatch implements the single color commands: converting a color
// between spaces, blending perceptual gradients and listing the configured
// swatches.
package swatch

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"colorflow/alpha"
	"colorflow/config"
	"colorflow/dynamic"
	"colorflow/palette"
	"colorflow/space"
	"colorflow/typed"
)

// Resolve reads a color given as #hex, as a dynamic color in its JSON wire
// shape, or as the name of a configured swatch.
func Resolve(s string, cfg config.Config) (dynamic.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := typed.ParseHex(s)
		if err != nil {
			return dynamic.Color{}, err
		}
		if len(s) == 4 || len(s) == 7 {
			return dynamic.FromTyped(typed.SrgbU8{c[0], c[1], c[2]}), nil
		}
		return dynamic.FromTyped(c), nil
	case strings.HasPrefix(s, "{"):
		var c dynamic.Color
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return dynamic.Color{}, fmt.Errorf("could not read color %q: %w", s, err)
		}
		return c, nil
	default:
		return cfg.Swatch(s)
	}
}

// Hex returns c as an encoded sRGB hex string. Scene-referred colors have
// no display appearance and are rejected.
func Hex(c dynamic.Color) (string, error) {
	if c.HasAlpha() {
		enc, err := c.ConvertWith(space.EncodedSrgb, alpha.Separate)
		if err != nil {
			return "", err
		}
		f, err := dynamic.Downcast[typed.SrgbAF32](enc)
		if err != nil {
			return "", err
		}
		return typed.Convert[typed.SrgbAU8](f).Hex(), nil
	}

	enc, err := c.Convert(space.EncodedSrgb)
	if err != nil {
		return "", err
	}
	f, err := dynamic.Downcast[typed.SrgbF32](enc)
	if err != nil {
		return "", err
	}
	return typed.Convert[typed.SrgbU8](f).Hex(), nil
}

func printColor(w io.Writer, name string, c dynamic.Color) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}

	if hex, err := Hex(c); err == nil {
		_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", name, hex, b)
		return err
	}
	_, err = fmt.Fprintf(w, "%s\t-\t%s\n", name, b)
	return err
}

type ConvertCmd struct {
	Color   string `arg:"" help:"Color as #hex, JSON wire form or configured swatch name"`
	To      string `help:"Target color space" default:"oklab"`
	Alpha   string `help:"Target alpha state for colors with alpha" enum:"same,separate,premultiplied" default:"same"`
	Tonemap bool   `help:"Tonemap scene-referred colors with the configured operator before converting"`

	target space.ID
}

func (c *ConvertCmd) Validate(kctx *kong.Context) error {
	var err error
	if c.target, err = space.Parse(c.To); err != nil {
		return err
	}
	return nil
}

func (c *ConvertCmd) Run(kctx *kong.Context, cfg config.Config, logger *slog.Logger) error {
	col, err := Resolve(c.Color, cfg)
	if err != nil {
		return err
	}

	if c.Tonemap && col.State() == dynamic.Scene {
		op, err := cfg.Tonemap.New()
		if err != nil {
			return err
		}
		if col, err = col.Tonemap(op); err != nil {
			return fmt.Errorf("could not tonemap %s: %w", c.Color, err)
		}
	}

	as := col.AlphaState()
	if c.Alpha != "same" {
		if err := as.UnmarshalText([]byte(c.Alpha)); err != nil {
			return err
		}
	}

	out, err := col.ConvertWith(c.target, as)
	if err != nil {
		return fmt.Errorf("could not convert %s: %w", c.Color, err)
	}
	logger.Debug("converted", "from", col, "to", out)

	return printColor(kctx.Stdout, c.Color, out)
}

type BlendCmd struct {
	From   string `arg:"" help:"First color"`
	To     string `arg:"" help:"Last color"`
	Steps  int    `help:"Number of colors, both ends included" default:"5"`
	Output string `help:"Also write the gradient to this PAL file" type:"path"`
}

func (c *BlendCmd) Run(kctx *kong.Context, cfg config.Config, logger *slog.Logger) error {
	ends := [2]typed.SrgbU8{}
	for i, s := range []string{c.From, c.To} {
		col, err := Resolve(s, cfg)
		if err != nil {
			return err
		}
		enc, err := col.ConvertWith(space.EncodedSrgb, alpha.Separate)
		if err != nil {
			return fmt.Errorf("could not blend %s: %w", s, err)
		}
		v := enc.Raw()
		ends[i] = typed.Convert[typed.SrgbU8](typed.SrgbF32{v[0], v[1], v[2]})
	}

	grad, err := palette.Gradient(ends[0], ends[1], c.Steps)
	if err != nil {
		return err
	}

	for i, g := range grad {
		if err := printColor(kctx.Stdout, fmt.Sprint(i), dynamic.FromTyped(g)); err != nil {
			return err
		}
	}

	if c.Output == "" {
		return nil
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("could not create palette file %q: %w", c.Output, err)
	}
	defer f.Close()

	if _, err := palette.New(grad...).WriteRIFF(f); err != nil {
		return err
	}
	logger.Info("saved gradient", "file", c.Output, "colors", len(grad))
	return f.Sync()
}

type ListCmd struct {
	Spaces bool `help:"List the known color spaces instead of the configured swatches"`
}

func (c *ListCmd) Run(kctx *kong.Context, cfg config.Config) error {
	w := kctx.Stdout
	if c.Spaces {
		for _, id := range space.All() {
			d := id.Descriptor()
			kind := "encoded"
			switch {
			case d.Linear():
				kind = "linear"
			case d.Perceptual:
				kind = "perceptual"
			case !d.Encoded():
				kind = "nonlinear"
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", id, d.Name, kind); err != nil {
				return err
			}
		}
		return nil
	}

	op, err := cfg.Tonemap.New()
	if err != nil {
		return err
	}
	for _, s := range cfg.Swatches {
		col, err := s.Color()
		if err != nil {
			return err
		}
		if col.State() == dynamic.Scene {
			if col, err = col.Tonemap(op); err != nil {
				return fmt.Errorf("swatch %q: %w", s.Name, err)
			}
		}
		if err := printColor(w, s.Name, col); err != nil {
			return err
		}
	}
	return nil
}
