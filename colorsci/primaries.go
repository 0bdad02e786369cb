package colorsci

import "fmt"

// Primaries names a set of RGB primaries. CieXYZ is the identity basis.
type Primaries uint8

const (
	CieXYZ Primaries = iota
	BT709
	BT2020
	AP0
	AP1
	P3
	numPrimaries
)

var primariesNames = [numPrimaries]string{"CIE XYZ", "BT.709", "BT.2020", "ACES AP0", "ACES AP1", "P3"}

func (p Primaries) String() string {
	if p >= numPrimaries {
		return fmt.Sprintf("Primaries(%d)", uint8(p))
	}
	return primariesNames[p]
}

// WhitePoint names a reference white.
type WhitePoint uint8

const (
	D65 WhitePoint = iota
	D60
	D50
	E
	numWhitePoints
)

var whitePointNames = [numWhitePoints]string{"D65", "D60", "D50", "E"}

func (w WhitePoint) String() string {
	if w >= numWhitePoints {
		return fmt.Sprintf("WhitePoint(%d)", uint8(w))
	}
	return whitePointNames[w]
}

type xy struct{ x, y float64 }

// rgb chromaticities, red then green then blue
var primariesXY = [numPrimaries][3]xy{
	BT709:  {{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}},
	BT2020: {{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}},
	AP0:    {{0.7347, 0.2653}, {0.0, 1.0}, {0.0001, -0.0770}},
	AP1:    {{0.713, 0.293}, {0.165, 0.830}, {0.128, 0.044}},
	P3:     {{0.680, 0.320}, {0.265, 0.690}, {0.150, 0.060}},
}

var whitePointXY = [numWhitePoints]xy{
	D65: {0.3127, 0.3290},
	D60: {0.32168, 0.33767},
	D50: {0.3457, 0.3585},
	E:   {1.0 / 3, 1.0 / 3},
}

func (c xy) xyz() Vec3 {
	return Vec3{c.x / c.y, 1, (1 - c.x - c.y) / c.y}
}

// WhiteXYZ returns the tristimulus values of w normalized to Y = 1.
func WhiteXYZ(w WhitePoint) Vec3 {
	return whitePointXY[w].xyz()
}

// Bradford cone response matrix.
var (
	bradford = Mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	invBradford = bradford.Inverse()
)

// ChromaticAdaptation returns the Bradford matrix adapting XYZ values
// from src to dst.
func ChromaticAdaptation(src, dst WhitePoint) Mat3 {
	if src == dst {
		return Identity
	}

	s := bradford.MulVec(WhiteXYZ(src))
	d := bradford.MulVec(WhiteXYZ(dst))

	return invBradford.Mul(diag(Vec3{d[0] / s[0], d[1] / s[1], d[2] / s[2]}).Mul(bradford))
}

// RGBToXYZ derives the matrix taking linear RGB with primaries p relative
// to white w into CIE XYZ relative to the same white.
func RGBToXYZ(p Primaries, w WhitePoint) Mat3 {
	if p == CieXYZ {
		return Identity
	}

	r, g, b := primariesXY[p][0].xyz(), primariesXY[p][1].xyz(), primariesXY[p][2].xyz()
	prim := Mat3{
		{r[0], g[0], b[0]},
		{r[1], g[1], b[1]},
		{r[2], g[2], b[2]},
	}
	s := prim.Inverse().MulVec(WhiteXYZ(w))

	return prim.Mul(diag(s))
}

type basisKey struct {
	srcP Primaries
	srcW WhitePoint
	dstP Primaries
	dstW WhitePoint
}

// basisTable is filled once in init and only read afterwards.
var basisTable = map[basisKey]Mat3{}

func init() {
	for sp := range numPrimaries {
		for sw := range numWhitePoints {
			for dp := range numPrimaries {
				for dw := range numWhitePoints {
					basisTable[basisKey{sp, sw, dp, dw}] = deriveBasis(sp, sw, dp, dw)
				}
			}
		}
	}
}

func deriveBasis(srcP Primaries, srcW WhitePoint, dstP Primaries, dstW WhitePoint) Mat3 {
	if srcP == dstP && srcW == dstW {
		return Identity
	}

	toXYZ := RGBToXYZ(srcP, srcW)
	fromXYZ := RGBToXYZ(dstP, dstW).Inverse()

	return fromXYZ.Mul(ChromaticAdaptation(srcW, dstW).Mul(toXYZ))
}

// BasisMatrix returns the matrix taking linear values in the (srcP, srcW)
// basis into the (dstP, dstW) basis, white points adapted with Bradford.
func BasisMatrix(srcP Primaries, srcW WhitePoint, dstP Primaries, dstW WhitePoint) Mat3 {
	if m, ok := basisTable[basisKey{srcP, srcW, dstP, dstW}]; ok {
		return m
	}
	return deriveBasis(srcP, srcW, dstP, dstW)
}
