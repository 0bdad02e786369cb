package typed

import (
	"fmt"
	"image/color"
	"strings"
)

// rgba implements color.Color: components are encoded sRGB, premultiplied
// by alpha in 16 bits as image/color expects.
func rgba[E Value[E]](c E) (r, g, b, a uint32) {
	p := convertPayload(c.payload(), c.Encoding(), encSrgbAF32)
	al := clamp01(p[3])

	return uint32(clamp01(p[0])*al*0xffff + 0.5),
		uint32(clamp01(p[1])*al*0xffff + 0.5),
		uint32(clamp01(p[2])*al*0xffff + 0.5),
		uint32(al*0xffff + 0.5)
}

// Model returns the color.Model converting any color.Color into E.
func Model[E Value[E]]() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		if e, ok := c.(E); ok {
			return e
		}

		var p [4]float64
		switch n := c.(type) {
		case color.NRGBA:
			p = u4([4]uint8{n.R, n.G, n.B, n.A})
		default:
			// going through premultiplied 16 bits loses precision at low
			// alpha, straight colors are read directly above
			n64 := color.NRGBA64Model.Convert(c).(color.NRGBA64)
			p = [4]float64{
				float64(n64.R) / 0xffff,
				float64(n64.G) / 0xffff,
				float64(n64.B) / 0xffff,
				float64(n64.A) / 0xffff,
			}
		}

		var zero E
		return zero.withPayload(convertPayload(p, encSrgbAF32, zero.Encoding()))
	})
}

func FromEncodedSrgb8(r, g, b uint8) SrgbU8 {
	return SrgbU8{r, g, b}
}

func FromEncodedSrgbF32(r, g, b float32) SrgbF32 {
	return SrgbF32{r, g, b}
}

func FromEncodedSrgba8(r, g, b, a uint8) SrgbAU8 {
	return SrgbAU8{r, g, b, a}
}

func FromEncodedSrgbaF32(r, g, b, a float32) SrgbAF32 {
	return SrgbAF32{r, g, b, a}
}

// FromEncodedSrgba8Premultiplied takes components already premultiplied
// in linear light.
func FromEncodedSrgba8Premultiplied(r, g, b, a uint8) SrgbAU8Premultiplied {
	return SrgbAU8Premultiplied{r, g, b, a}
}

func FromLinearSrgbF32(r, g, b float32) LinearSrgb {
	return LinearSrgb{r, g, b}
}

func FromLinearSrgbaF32(r, g, b, a float32) LinearSrgbA {
	return LinearSrgbA{r, g, b, a}
}

func FromLinearSrgbaF32Premultiplied(r, g, b, a float32) LinearSrgbAPremultiplied {
	return LinearSrgbAPremultiplied{r, g, b, a}
}

func FromOklab(l, a, b float32) Oklab {
	return Oklab{l, a, b}
}

// ParseHex reads #RGB, #RGBA, #RRGGBB or #RRGGBBAA. Missing alpha is
// opaque.
func ParseHex(s string) (SrgbAU8, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return SrgbAU8{}, fmt.Errorf("color %q does not start with #", s)
	}

	c := SrgbAU8{0, 0, 0, 0xff}
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &c[0], &c[1], &c[2])
	case 4:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x%1x", &c[0], &c[1], &c[2], &c[3])
	case 6:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x", &c[0], &c[1], &c[2])
	case 8:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x%2x", &c[0], &c[1], &c[2], &c[3])
	default:
		return SrgbAU8{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	if err != nil {
		return SrgbAU8{}, fmt.Errorf("could not read color %q: %w", s, err)
	}

	if len(hex) <= 4 {
		for i := range c {
			c[i] |= c[i] << 4
		}
	}
	return c, nil
}

// Hex formats c as #rrggbb.
func (c SrgbU8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// Hex formats c as #rrggbbaa.
func (c SrgbAU8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c[0], c[1], c[2], c[3])
}
