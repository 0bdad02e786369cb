// based on:
// https://bottosson.github.io/posts/oklab/

package colorsci

import "math"

var (
	// XYZ (D65) to approximate cone responses
	oklabM1 = Mat3{
		{0.8189330101, 0.3618667424, -0.1288597137},
		{0.0329845436, 0.9293118715, 0.0361456387},
		{0.0482003018, 0.2643662691, 0.6338517070},
	}
	// nonlinear cone responses to Lab
	oklabM2 = Mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	oklabM1Inv = oklabM1.Inverse()
	oklabM2Inv = oklabM2.Inverse()
)

// XYZToOklab converts XYZ relative to w into Oklab. Oklab is defined over
// D65, other whites are adapted first.
func XYZToOklab(v Vec3, w WhitePoint) Vec3 {
	if w != D65 {
		v = ChromaticAdaptation(w, D65).MulVec(v)
	}

	lms := oklabM1.MulVec(v)
	lms = Vec3{math.Cbrt(lms[0]), math.Cbrt(lms[1]), math.Cbrt(lms[2])}

	return oklabM2.MulVec(lms)
}

func OklabToXYZ(lab Vec3, w WhitePoint) Vec3 {
	lms := oklabM2Inv.MulVec(lab)
	lms = Vec3{lms[0] * lms[0] * lms[0], lms[1] * lms[1] * lms[1], lms[2] * lms[2] * lms[2]}

	v := oklabM1Inv.MulVec(lms)
	if w != D65 {
		v = ChromaticAdaptation(D65, w).MulVec(v)
	}
	return v
}

// OklabToOklch returns lightness, chroma and hue in radians.
func OklabToOklch(lab Vec3) Vec3 {
	return Vec3{
		lab[0],
		math.Sqrt(lab[1]*lab[1] + lab[2]*lab[2]),
		math.Atan2(lab[2], lab[1]),
	}
}

func OklchToOklab(lch Vec3) Vec3 {
	return Vec3{
		lch[0],
		lch[1] * math.Cos(lch[2]),
		lch[1] * math.Sin(lch[2]),
	}
}

func XYZToOklch(v Vec3, w WhitePoint) Vec3 {
	return OklabToOklch(XYZToOklab(v, w))
}

func OklchToXYZ(lch Vec3, w WhitePoint) Vec3 {
	return OklabToXYZ(OklchToOklab(lch), w)
}
