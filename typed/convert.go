package typed

import (
	"fmt"

	"colorflow/alpha"
	"colorflow/colorsci"
	"colorflow/space"
)

// Convert returns c expressed in encoding D. Converting to the same
// encoding returns c unchanged. Converting between encodings that have no
// declared conversion is a programming error and panics; Convertible
// reports whether a pair is declared.
func Convert[D Value[D], S Value[S]](c S) D {
	if d, ok := any(c).(D); ok {
		return d
	}

	var zero D
	src, dst := c.Encoding(), zero.Encoding()
	if !isDeclared(src, dst) {
		panic(fmt.Sprintf("typed: no conversion declared from %s to %s", src, dst))
	}

	return zero.withPayload(convertPayload(c.payload(), src, dst))
}

// convertPayload runs the pipeline: decode, separate alpha, change basis,
// restore the destination alpha state, encode. Alpha itself passes through.
func convertPayload(p [4]float64, src, dst Encoding) [4]float64 {
	if src.Space == dst.Space && src.Alpha == dst.Alpha {
		return p
	}

	conv := space.Lookup(src.Space, dst.Space)
	v, a := colorsci.Vec3{p[0], p[1], p[2]}, p[3]

	v = conv.SrcTransform(v)
	v = alpha.Convert(v, a, src.Alpha, alpha.Separate)
	v = conv.LinearPart(v)
	v = alpha.Convert(v, a, alpha.Separate, dst.Alpha)
	v = conv.DstTransform(v)

	return [4]float64{v[0], v[1], v[2], a}
}

// Decode removes the sRGB curve.
func (c SrgbU8) Decode() LinearSrgb { return Convert[LinearSrgb](c) }

// Decode removes the sRGB curve.
func (c SrgbF32) Decode() LinearSrgb { return Convert[LinearSrgb](c) }

// Decode removes the sRGB curve, alpha is unchanged.
func (c SrgbAU8) Decode() LinearSrgbA { return Convert[LinearSrgbA](c) }

// Decode removes the sRGB curve, alpha is unchanged.
func (c SrgbAF32) Decode() LinearSrgbA { return Convert[LinearSrgbA](c) }

// Decode removes the sRGB curve. The result stays premultiplied.
func (c SrgbAU8Premultiplied) Decode() LinearSrgbAPremultiplied {
	return Convert[LinearSrgbAPremultiplied](c)
}

// Encode applies the sRGB curve.
func (c LinearSrgb) Encode() SrgbF32 { return Convert[SrgbF32](c) }

// Encode applies the sRGB curve, alpha is unchanged.
func (c LinearSrgbA) Encode() SrgbAF32 { return Convert[SrgbAF32](c) }

// Encode applies the sRGB curve to the separated color and premultiplies
// again in linear light before quantizing.
func (c LinearSrgbAPremultiplied) Encode() SrgbAU8Premultiplied {
	return Convert[SrgbAU8Premultiplied](c)
}

func (c EncodedDisplayP3) Decode() DisplayP3 { return Convert[DisplayP3](c) }
func (c DisplayP3) Encode() EncodedDisplayP3 { return Convert[EncodedDisplayP3](c) }

func (c EncodedBt2100PQ) Decode() Bt2020 { return Convert[Bt2020](c) }
func (c Bt2020) Encode() EncodedBt2100PQ { return Convert[EncodedBt2100PQ](c) }

// Linearize returns the linear color c is defined over.
func (c Oklab) Linearize() CieXyz { return Convert[CieXyz](c) }

// Linearize returns the linear color c is defined over.
func (c Oklch) Linearize() CieXyz { return Convert[CieXyz](c) }

// Linearize returns the linear color c is defined over.
func (c ICtCpPQ) Linearize() Bt2020 { return Convert[Bt2020](c) }
