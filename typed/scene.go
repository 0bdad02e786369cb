package typed

import (
	"fmt"
	"math"

	"colorflow/alpha"
	"colorflow/colorsci"
	"colorflow/space"
	"colorflow/tonemap"
)

// Scene is a scene-referred color: linear values proportional to light in
// the scene, unbounded above. Display-referred colors are the plain
// encodings. Scene only exists for linear encodings and leaves through
// Tonemap or ToDisplay.
type Scene[E Linear[E]] struct {
	color E
}

// AsScene reinterprets a display-referred color as scene-referred without
// changing its values.
func AsScene[E Linear[E]](c E) Scene[E] {
	return Scene[E]{color: c}
}

// AsDisplay reinterprets s as display-referred without changing its values.
func (s Scene[E]) AsDisplay() E {
	return s.color
}

func (s Scene[E]) String() string {
	return fmt.Sprintf("Scene(%s%v)", s.color.Encoding(), s.color.payload())
}

// StateFunc maps the color components of a linear color between states.
type StateFunc func(colorsci.Vec3) colorsci.Vec3

// Exposure returns a StateFunc scaling light by 2^stops.
func Exposure(stops float64) StateFunc {
	k := math.Exp2(stops)
	return func(v colorsci.Vec3) colorsci.Vec3 {
		return v.Scale(k)
	}
}

func applyState[E Value[E]](c E, f StateFunc) E {
	p := c.payload()
	v := f(colorsci.Vec3{p[0], p[1], p[2]})
	return c.withPayload([4]float64{v[0], v[1], v[2], p[3]})
}

// ToScene moves a display-referred color into the scene through f.
func ToScene[E Linear[E]](c E, f StateFunc) Scene[E] {
	return Scene[E]{color: applyState(c, f)}
}

// ToDisplay moves a scene-referred color to the display through f, which
// acts as an ad hoc tonemapper.
func ToDisplay[E Linear[E]](s Scene[E], f StateFunc) E {
	return applyState(s.color, f)
}

// ConvertScene changes the basis of a scene-referred color. Only linear
// encodings can be scene-referred, so no transfer function is involved.
func ConvertScene[D Linear[D], S Linear[S]](s Scene[S]) Scene[D] {
	return Scene[D]{color: Convert[D](s.color)}
}

// Tonemap brings s to the display with op. The color is moved into op's
// linear space and back. Premultiplied colors are separated around the
// operator.
func Tonemap[E Linear[E]](s Scene[E], op tonemap.Operator) E {
	enc := s.color.Encoding()
	p := s.color.payload()
	v, a := colorsci.Vec3{p[0], p[1], p[2]}, p[3]

	v = alpha.Convert(v, a, enc.Alpha, alpha.Separate)
	v = space.Convert(v, enc.Space, op.Space())
	v = op.Tonemap(v)
	v = space.Convert(v, op.Space(), enc.Space)
	v = alpha.Convert(v, a, alpha.Separate, enc.Alpha)

	return s.color.withPayload([4]float64{v[0], v[1], v[2], a})
}
