// Package typed provides color values whose Go type carries their color
// space and alpha state, so mixing representations does not compile.
//
// Every encoding is a defined array type holding its exact payload layout:
//
//	c := typed.SrgbU8{102, 51, 153}
//	lin := typed.Convert[typed.LinearSrgb](c)
//
// Reinterpreting a payload under another encoding with the same layout is a
// plain Go conversion, e.g. typed.AcesCg(lin). It is unchecked and changes
// no numbers.
package typed

import (
	"math"

	"colorflow/alpha"
	"colorflow/space"
)

// Encoding is the static description of a typed color value.
type Encoding struct {
	Name     string
	Space    space.ID
	Alpha    alpha.State
	Channels int
	// Bytes is set for 8-bit payloads, which hold values quantized from
	// [0, 1].
	Bytes bool
}

func (e Encoding) HasAlpha() bool {
	return e.Channels == 4
}

func (e Encoding) Linear() bool {
	return e.Space.IsLinear()
}

func (e Encoding) String() string {
	return e.Name
}

// Value is satisfied by every typed color encoding. The set is closed.
type Value[E any] interface {
	Encoding() Encoding
	RGBA() (r, g, b, a uint32)

	// payload returns the components as floats, 8-bit components scaled
	// to [0, 1]. Encodings without alpha report alpha 1.
	payload() [4]float64
	withPayload(p [4]float64) E
}

// Linear is satisfied by encodings of a linear color space. Only these may
// be scene-referred.
type Linear[E any] interface {
	Value[E]
	linear()
}

// Working is satisfied by encodings on which component arithmetic is
// meaningful.
type Working[E any] interface {
	Value[E]
	working()
}

// Perceptual is satisfied by working encodings where straight lines are
// perceptually uniform.
type Perceptual[E any] interface {
	Working[E]
	perceptual()
}

// Alpha is satisfied by encodings carrying an alpha channel.
type Alpha[E any] interface {
	Value[E]
	hasAlpha()
}

// Components returns the payload of c as floats in encoding order plus its
// alpha, 8-bit components scaled to [0, 1].
func Components[E Value[E]](c E) ([3]float64, float64) {
	p := c.payload()
	return [3]float64{p[0], p[1], p[2]}, p[3]
}

// FromComponents builds an E from float components, quantizing 8-bit
// encodings. a is ignored by encodings without alpha.
func FromComponents[E Value[E]](v [3]float64, a float64) E {
	var zero E
	return zero.withPayload([4]float64{v[0], v[1], v[2], a})
}

// quantTolerance absorbs float error so values that decode from an 8-bit
// code convert back to the same code.
const quantTolerance = 1e-3

// Quantize maps a normalized component to the code an 8-bit encoding
// stores, clamping to [0, 1]. It truncates rather than rounds, so 0.5
// stores 127; the small tolerance keeps exact codes stable across a float
// round trip.
func Quantize(x float64) uint8 {
	if !(x > 0) {
		return 0
	} else if x >= 1 {
		return 255
	}
	return uint8(math.Floor(x*255 + quantTolerance))
}

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	} else if x > 1 {
		return 1
	}
	return x
}

func u3(c [3]uint8) [4]float64 {
	return [4]float64{float64(c[0]) / 255, float64(c[1]) / 255, float64(c[2]) / 255, 1}
}

func u4(c [4]uint8) [4]float64 {
	return [4]float64{float64(c[0]) / 255, float64(c[1]) / 255, float64(c[2]) / 255, float64(c[3]) / 255}
}

func f3(c [3]float32) [4]float64 {
	return [4]float64{float64(c[0]), float64(c[1]), float64(c[2]), 1}
}

func f4(c [4]float32) [4]float64 {
	return [4]float64{float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3])}
}

func toU3(p [4]float64) [3]uint8 {
	return [3]uint8{Quantize(p[0]), Quantize(p[1]), Quantize(p[2])}
}

func toU4(p [4]float64) [4]uint8 {
	return [4]uint8{Quantize(p[0]), Quantize(p[1]), Quantize(p[2]), Quantize(p[3])}
}

func toF3(p [4]float64) [3]float32 {
	return [3]float32{float32(p[0]), float32(p[1]), float32(p[2])}
}

func toF4(p [4]float64) [4]float32 {
	return [4]float32{float32(p[0]), float32(p[1]), float32(p[2]), float32(p[3])}
}
