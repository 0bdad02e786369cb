package colorsci

import (
	"fmt"
	"math"
)

// TransferFn names the nonlinear step between a space and its linear space.
type TransferFn uint8

const (
	None TransferFn = iota
	SRGB
	BT601
	PQ
	Oklab
	Oklch
	ICtCpPQ
	numTransferFns
)

var transferNames = [numTransferFns]string{"none", "sRGB", "BT.601", "PQ", "Oklab", "Oklch", "ICtCp PQ"}

func (t TransferFn) String() string {
	if t >= numTransferFns {
		return fmt.Sprintf("TransferFn(%d)", uint8(t))
	}
	return transferNames[t]
}

// TransferFunc maps a triple through a transfer function. w is the white
// point of the linear side.
type TransferFunc func(v Vec3, w WhitePoint) Vec3

func identity(v Vec3, _ WhitePoint) Vec3 {
	return v
}

// Transfer returns the encode (linear to nonlinear) and decode (nonlinear
// to linear) functions of fn. None yields identities.
func Transfer(fn TransferFn) (encode, decode TransferFunc) {
	switch fn {
	case SRGB:
		return perComponent(SRGBOETF), perComponent(SRGBEOTF)
	case BT601:
		return perComponent(BT601OETF), perComponent(BT601InverseOETF)
	case PQ:
		return perComponent(PQInverseEOTF), perComponent(PQEOTF)
	case Oklab:
		return XYZToOklab, OklabToXYZ
	case Oklch:
		return XYZToOklch, OklchToXYZ
	case ICtCpPQ:
		return BT2020ToICtCpPQ, ICtCpPQToBT2020
	default:
		return identity, identity
	}
}

func perComponent(f func(float64) float64) TransferFunc {
	return func(v Vec3, _ WhitePoint) Vec3 {
		return Vec3{f(v[0]), f(v[1]), f(v[2])}
	}
}

const srgbPow float64 = 1.0 / 2.4

// SRGBEOTF decodes an sRGB encoded component.
func SRGBEOTF(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

// SRGBOETF encodes a linear component with the sRGB curve.
func SRGBOETF(x float64) float64 {
	if x >= 0.0031308 {
		return math.Pow(x, srgbPow)*1.055 - 0.055
	}
	return x * 12.92
}

// BT601OETF is the camera curve shared by BT.601, BT.709 and BT.2020.
func BT601OETF(x float64) float64 {
	if x >= 0.018 {
		return 1.099*math.Pow(x, 0.45) - 0.099
	}
	return x * 4.5
}

func BT601InverseOETF(x float64) float64 {
	if x >= 0.081 {
		return math.Pow((x+0.099)/1.099, 1/0.45)
	}
	return x / 4.5
}

// PQ constants from SMPTE ST 2084.
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32
)

// PQReferenceWhite is the luminance in cd/m² that linear 1.0 maps to.
const PQReferenceWhite = 100.0

const pqPeak = 10000.0

// PQEOTF decodes a PQ code value into linear light where 1.0 is
// PQReferenceWhite.
func PQEOTF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	p := math.Pow(x, 1/pqM2)
	y := math.Pow(max(p-pqC1, 0)/(pqC2-pqC3*p), 1/pqM1)
	return y * pqPeak / PQReferenceWhite
}

// PQInverseEOTF encodes linear light (1.0 is PQReferenceWhite) into a PQ
// code value.
func PQInverseEOTF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	y := math.Pow(x*PQReferenceWhite/pqPeak, pqM1)
	return math.Pow((pqC1+pqC2*y)/(1+pqC3*y), pqM2)
}
