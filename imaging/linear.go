// Package imaging applies the color engine to whole images. Pixels are kept
// as premultiplied linear sRGB floats, so compositing and filtering happen
// in linear light.
package imaging

import (
	"fmt"
	"image"
	"image/color"

	"colorflow/alpha"
	"colorflow/colorsci"
	"colorflow/parallel"
	"colorflow/space"
	"colorflow/typed"
)

// Linear is an in-memory image of premultiplied linear sRGB pixels. Values
// above 1 are allowed for scene-referred content.
type Linear struct {
	// Pix holds the image's pixels, in R, G, B, A order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*4].
	Pix []float32
	// Stride is the Pix stride (in floats) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

func NewLinear(r image.Rectangle) *Linear {
	return &Linear{
		Pix:    make([]float32, 4*r.Dx()*r.Dy()),
		Stride: 4 * r.Dx(),
		Rect:   r,
	}
}

func (p *Linear) ColorModel() color.Model {
	return typed.Model[typed.LinearSrgbAPremultiplied]()
}

func (p *Linear) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Linear) At(x, y int) color.Color {
	return p.LinearAt(x, y)
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (p *Linear) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *Linear) LinearAt(x, y int) typed.LinearSrgbAPremultiplied {
	if !(image.Point{x, y}.In(p.Rect)) {
		return typed.LinearSrgbAPremultiplied{}
	}
	i := p.PixOffset(x, y)
	return typed.LinearSrgbAPremultiplied(p.Pix[i : i+4 : i+4])
}

func (p *Linear) Set(x, y int, c color.Color) {
	p.SetLinear(x, y, p.ColorModel().Convert(c).(typed.LinearSrgbAPremultiplied))
}

func (p *Linear) SetLinear(x, y int, c typed.LinearSrgbAPremultiplied) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	copy(p.Pix[i:i+4], c[:])
}

// rows calls f for every row of r on pool.
func rows(pool *parallel.Pool, r image.Rectangle, f func(y int)) {
	pool.Batch(r.Dy(), func(i int) {
		f(r.Min.Y + i)
	})
}

// FromImage decodes img into linear light.
func FromImage(img image.Image, pool *parallel.Pool) *Linear {
	if l, ok := img.(*Linear); ok {
		out := NewLinear(l.Rect)
		copy(out.Pix, l.Pix)
		return out
	}

	b := img.Bounds()
	out := NewLinear(b)
	model := out.ColorModel()
	rows(pool, b, func(y int) {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetLinear(x, y, model.Convert(img.At(x, y)).(typed.LinearSrgbAPremultiplied))
		}
	})
	return out
}

// Encode returns img as 8-bit straight alpha pixels in the encoded RGB
// space target.
func Encode(img *Linear, target space.ID, pool *parallel.Pool) (*image.NRGBA, error) {
	if !target.Valid() || !target.Descriptor().Encoded() {
		return nil, fmt.Errorf("cannot encode images in %s, want an encoded RGB space", target)
	}

	conv := space.Lookup(space.LinearSrgb, target)
	out := image.NewNRGBA(img.Rect)
	rows(pool, img.Rect, func(y int) {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			c := img.LinearAt(x, y)
			a := float64(c[3])

			v := colorsci.Vec3{float64(c[0]), float64(c[1]), float64(c[2])}
			v = alpha.Convert(v, a, alpha.Premultiplied, alpha.Separate)
			v = conv.DstTransform(conv.LinearPart(v))

			i := out.PixOffset(x, y)
			out.Pix[i+0] = typed.Quantize(v[0])
			out.Pix[i+1] = typed.Quantize(v[1])
			out.Pix[i+2] = typed.Quantize(v[2])
			out.Pix[i+3] = typed.Quantize(a)
		}
	})
	return out, nil
}
