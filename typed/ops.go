package typed

import (
	"colorflow/alpha"
	"colorflow/colorsci"
)

func zipWith[E Value[E]](a, b E, f func(x, y float64) float64) E {
	pa, pb := a.payload(), b.payload()
	var out [4]float64
	for i := range out {
		out[i] = f(pa[i], pb[i])
	}
	return a.withPayload(out)
}

// Lerp interpolates component-wise between a and b, alpha included. t is
// not clamped.
func Lerp[E Working[E]](a, b E, t float64) E {
	return zipWith(a, b, func(x, y float64) float64 {
		return x + (y-x)*t
	})
}

// PerceptualBlend interpolates in a perceptually uniform encoding, so equal
// steps of t look like equal steps of color.
func PerceptualBlend[E Perceptual[E]](a, b E, t float64) E {
	return Lerp(a, b, t)
}

func Add[E Working[E]](a, b E) E {
	return zipWith(a, b, func(x, y float64) float64 { return x + y })
}

func Sub[E Working[E]](a, b E) E {
	return zipWith(a, b, func(x, y float64) float64 { return x - y })
}

// Scale multiplies the color components of c by k. Alpha is kept.
func Scale[E Working[E]](c E, k float64) E {
	p := c.payload()
	return c.withPayload([4]float64{p[0] * k, p[1] * k, p[2] * k, p[3]})
}

func saturate(p [4]float64) [4]float64 {
	return [4]float64{clamp01(p[0]), clamp01(p[1]), clamp01(p[2]), clamp01(p[3])}
}

// Saturate clamps every component into [0, 1].
func (c SrgbF32) Saturate() SrgbF32 { return c.withPayload(saturate(c.payload())) }

// Saturate clamps every component into [0, 1].
func (c SrgbAF32) Saturate() SrgbAF32 { return c.withPayload(saturate(c.payload())) }

// Saturate clamps every component into [0, 1].
func (c LinearSrgb) Saturate() LinearSrgb { return c.withPayload(saturate(c.payload())) }

// Saturate clamps every component into [0, 1].
func (c LinearSrgbA) Saturate() LinearSrgbA { return c.withPayload(saturate(c.payload())) }

// Saturate clamps alpha into [0, 1] and the color components into
// [0, alpha].
func (c LinearSrgbAPremultiplied) Saturate() LinearSrgbAPremultiplied {
	p := c.payload()
	a := clamp01(p[3])
	return c.withPayload([4]float64{min(clamp01(p[0]), a), min(clamp01(p[1]), a), min(clamp01(p[2]), a), a})
}

// Over composites over onto under with the Porter-Duff over operator in
// premultiplied linear sRGB. Other encodings are converted there and back.
func Over[E Alpha[E]](over, under E) E {
	if o, ok := any(over).(LinearSrgbAPremultiplied); ok {
		return any(overPremultiplied(o, any(under).(LinearSrgbAPremultiplied))).(E)
	}

	o := Convert[LinearSrgbAPremultiplied](over)
	u := Convert[LinearSrgbAPremultiplied](under)
	return Convert[E](overPremultiplied(o, u))
}

func overPremultiplied(over, under LinearSrgbAPremultiplied) LinearSrgbAPremultiplied {
	po, pu := over.payload(), under.payload()
	v, a := alpha.Over(colorsci.Vec3{po[0], po[1], po[2]}, po[3], colorsci.Vec3{pu[0], pu[1], pu[2]}, pu[3])
	return toF4([4]float64{v[0], v[1], v[2], a})
}
