// Package palette holds indexed color palettes, matched in Oklab so the
// nearest entry is the perceptually closest one.
package palette

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"colorflow/typed"
)

// Palette is an ordered list of opaque sRGB colors. The zero value is an
// empty palette.
type Palette struct {
	colors []typed.SrgbU8
	lab    []typed.Oklab
}

func New(colors ...typed.SrgbU8) *Palette {
	p := &Palette{}
	p.Add(colors...)
	return p
}

// Add appends colors to p.
func (p *Palette) Add(colors ...typed.SrgbU8) {
	for _, c := range colors {
		p.colors = append(p.colors, c)
		p.lab = append(p.lab, typed.Convert[typed.Oklab](c))
	}
}

func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns a copy of the palette entries.
func (p *Palette) Colors() []typed.SrgbU8 {
	return append([]typed.SrgbU8(nil), p.colors...)
}

// Index returns the index of the entry closest to lc, 0 for an empty
// palette.
func (p *Palette) Index(lc typed.Oklab) int {
	ret, bestSum := 0, math.MaxFloat64
	for i, v := range p.lab {
		dL := float64(lc[0] - v[0])
		da := float64(lc[1] - v[1])
		db := float64(lc[2] - v[2])
		sum := dL*dL + da*da + db*db
		if sum < bestSum {
			if sum == 0 {
				return i
			}
			ret, bestSum = i, sum
		}
	}
	return ret
}

// Convert returns the entry closest to lc in Oklab, or black for an empty
// palette.
func (p *Palette) Convert(lc typed.Oklab) typed.SrgbU8 {
	if len(p.colors) == 0 {
		return typed.SrgbU8{}
	}
	return p.colors[p.Index(lc)]
}

// Color returns p as a color.Palette for image.Paletted.
func (p *Palette) Color() color.Palette {
	pal := make(color.Palette, len(p.colors))
	for i, c := range p.colors {
		pal[i] = color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xFF}
	}
	return pal
}

// ReadRIFF appends every color of a RIFF PAL document to p.
func (p *Palette) ReadRIFF(r io.Reader) (int64, error) {
	pals, err := ReadFrom(r)
	if err != nil {
		return 0, fmt.Errorf("could not load palettes: %w", err)
	}

	var n int64
	for _, pal := range pals {
		p.Add(pal...)
		n += int64(len(pal))
	}

	return n, nil
}

// WriteRIFF stores p as a single-chunk RIFF PAL document.
func (p *Palette) WriteRIFF(w io.Writer) (int64, error) {
	n, err := WriteTo(w, p.colors)
	if err != nil {
		return n, fmt.Errorf("could not save palette: %w", err)
	}
	return n, nil
}

func grays(n int) []typed.SrgbU8 {
	res := make([]typed.SrgbU8, n)
	for i := range res {
		v := uint8(i * 255 / (n - 1))
		res[i] = typed.SrgbU8{v, v, v}
	}
	return res
}

func builtin(name string) []typed.SrgbU8 {
	switch name {
	case "bw":
		return grays(2)
	case "gray16":
		return grays(16)
	case "spectra6":
		return []typed.SrgbU8{
			{0x00, 0x00, 0x00}, {0xFF, 0xFF, 0xFF}, {0xFF, 0xFF, 0x00},
			{0xFF, 0x00, 0x00}, {0x00, 0x00, 0xFF}, {0x00, 0xFF, 0x00},
		}
	case "vga16":
		return []typed.SrgbU8{
			{0x00, 0x00, 0x00}, {0x00, 0x00, 0xAA}, {0x00, 0xAA, 0x00}, {0x00, 0xAA, 0xAA},
			{0xAA, 0x00, 0x00}, {0xAA, 0x00, 0xAA}, {0xAA, 0x55, 0x00}, {0xAA, 0xAA, 0xAA},
			{0x55, 0x55, 0x55}, {0x55, 0x55, 0xFF}, {0x55, 0xFF, 0x55}, {0x55, 0xFF, 0xFF},
			{0xFF, 0x55, 0x55}, {0xFF, 0x55, 0xFF}, {0xFF, 0xFF, 0x55}, {0xFF, 0xFF, 0xFF},
		}
	default:
		return nil
	}
}

// Names lists the built-in palettes.
func Names() []string {
	return []string{"bw", "gray16", "spectra6", "vga16"}
}

// LoadPalette returns a built-in palette by name, or reads a RIFF PAL file
// when name is a path.
func LoadPalette(name string) (*Palette, error) {
	if colors := builtin(strings.ToLower(name)); colors != nil {
		return New(colors...), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unknown palette %q, not one of %s: %w", name, strings.Join(Names(), ", "), err)
	}
	defer f.Close()

	p := &Palette{}
	if _, err := p.ReadRIFF(f); err != nil {
		return nil, fmt.Errorf("could not read palette file %q: %w", name, err)
	} else if p.Len() == 0 {
		return nil, fmt.Errorf("palette file %q has no colors", name)
	}
	return p, nil
}

// Gradient returns n colors evenly spaced in Oklab between from and to,
// both included.
func Gradient(from, to typed.SrgbU8, n int) ([]typed.SrgbU8, error) {
	if n < 2 {
		return nil, fmt.Errorf("gradient needs at least 2 steps, got %d", n)
	}

	a, b := typed.Convert[typed.Oklab](from), typed.Convert[typed.Oklab](to)
	res := make([]typed.SrgbU8, n)
	res[0], res[n-1] = from, to
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		res[i] = typed.Convert[typed.SrgbU8](typed.PerceptualBlend(a, b, t))
	}
	return res, nil
}
