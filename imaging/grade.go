package imaging

import (
	"image"

	"colorflow/parallel"
	"colorflow/tonemap"
	"colorflow/typed"
)

// Tonemap treats img as display-referred light, exposes it by stops into
// the scene and brings it back to the display through op.
func Tonemap(img *Linear, stops float64, op tonemap.Operator, pool *parallel.Pool) {
	expose := typed.Exposure(stops)
	rows(pool, img.Rect, func(y int) {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			scene := typed.ToScene(img.LinearAt(x, y), expose)
			img.SetLinear(x, y, typed.Tonemap(scene, op))
		}
	})
}

// Composite places over on top of under, in linear light. Pixels of under
// outside of over are left as they are.
func Composite(over, under *Linear, pool *parallel.Pool) {
	r := over.Rect.Intersect(under.Rect)
	if r.Empty() {
		return
	}

	rows(pool, r, func(y int) {
		for x := r.Min.X; x < r.Max.X; x++ {
			under.SetLinear(x, y, typed.Over(over.LinearAt(x, y), under.LinearAt(x, y)))
		}
	})
}

// Matte composites img over an opaque background color, leaving every
// pixel opaque.
func Matte(img *Linear, bg typed.SrgbU8, pool *parallel.Pool) *Linear {
	back := Fill(img.Rect, typed.Convert[typed.LinearSrgbAPremultiplied](bg))
	Composite(img, back, pool)
	return back
}

// Fill returns an image of bounds r painted with c.
func Fill(r image.Rectangle, c typed.LinearSrgbAPremultiplied) *Linear {
	out := NewLinear(r)
	for i := 0; i < len(out.Pix); i += 4 {
		copy(out.Pix[i:i+4], c[:])
	}
	return out
}
