package colorsci

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func requireVec(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		require.InDeltaf(t, want[i], got[i], delta, "component %d: want %v, got %v", i, want, got)
	}
}

func requireIdentity(t *testing.T, m Mat3, delta float64) {
	t.Helper()
	for i := range 3 {
		for j := range 3 {
			require.InDelta(t, Identity[i][j], m[i][j], delta, "m[%d][%d]", i, j)
		}
	}
}

func TestSRGBToXYZMatrix(t *testing.T) {
	m := RGBToXYZ(BT709, D65)
	want := Mat3{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	for i := range 3 {
		requireVec(t, want[i], m[i], 1e-4)
	}

	// the Y row sums to the luminance of white
	require.InDelta(t, 1.0, m[1][0]+m[1][1]+m[1][2], eps)
}

func TestBasisMatrixSameBasisIsIdentity(t *testing.T) {
	for p := range numPrimaries {
		for w := range numWhitePoints {
			require.Equal(t, Identity, BasisMatrix(p, w, p, w), "%s/%s", p, w)
		}
	}
}

func TestBasisMatrixRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		srcP   Primaries
		srcW   WhitePoint
		dstP   Primaries
		dstW   WhitePoint
	}{
		{"srgb to xyz", BT709, D65, CieXYZ, D65},
		{"srgb to bt2020", BT709, D65, BT2020, D65},
		{"srgb to acescg", BT709, D65, AP1, D60},
		{"acescg to aces2065", AP1, D60, AP0, D60},
		{"p3 to xyz d50", P3, D65, CieXYZ, D50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			there := BasisMatrix(tc.srcP, tc.srcW, tc.dstP, tc.dstW)
			back := BasisMatrix(tc.dstP, tc.dstW, tc.srcP, tc.srcW)
			requireIdentity(t, back.Mul(there), 1e-9)
		})
	}
}

func TestBasisMatrixPreservesWhite(t *testing.T) {
	// adapted white maps to white in every RGB basis
	m := BasisMatrix(BT709, D65, AP1, D60)
	requireVec(t, Vec3{1, 1, 1}, m.MulVec(Vec3{1, 1, 1}), 1e-6)

	m = BasisMatrix(P3, D65, BT2020, D65)
	requireVec(t, Vec3{1, 1, 1}, m.MulVec(Vec3{1, 1, 1}), 1e-9)
}

func TestChromaticAdaptation(t *testing.T) {
	m := ChromaticAdaptation(D65, D50)
	requireVec(t, WhiteXYZ(D50), m.MulVec(WhiteXYZ(D65)), 1e-9)
	require.Equal(t, Identity, ChromaticAdaptation(D65, D65))
}

func TestInverse(t *testing.T) {
	m := Mat3{
		{2, 0, 1},
		{1, 3, 2},
		{1, 1, 2},
	}
	requireIdentity(t, m.Mul(m.Inverse()), 1e-12)
	requireIdentity(t, m.Inverse().Mul(m), 1e-12)

	singular := Mat3{
		{2, 0, 1},
		{1, 3, 2},
		{1, 1, 1},
	}
	require.Zero(t, singular.Det())
	require.Equal(t, Mat3{}, singular.Inverse())
	require.Equal(t, Mat3{}, Mat3{}.Inverse())
}

func TestTransferRoundTrip(t *testing.T) {
	samples := []Vec3{
		{0, 0, 0},
		{0.001, 0.002, 0.003},
		{0.18, 0.18, 0.18},
		{0.5, 0.25, 0.75},
		{1, 1, 1},
		{4, 2, 0.5},
	}

	for fn := range numTransferFns {
		t.Run(fn.String(), func(t *testing.T) {
			encode, decode := Transfer(fn)
			for _, v := range samples {
				requireVec(t, v, decode(encode(v, D65), D65), 1e-7)
			}
		})
	}
}

func TestSRGBCurveKnots(t *testing.T) {
	require.InDelta(t, 0.5, SRGBOETF(SRGBEOTF(0.5)), eps)
	require.InDelta(t, 0.214041, SRGBEOTF(0.5), 1e-6)
	require.Equal(t, 0.0, SRGBOETF(0))
	require.InDelta(t, 1.0, SRGBOETF(1), eps)
}

func TestPQNormalization(t *testing.T) {
	require.InDelta(t, 1.0, PQInverseEOTF(pqPeak/PQReferenceWhite), 1e-9)
	require.InDelta(t, pqPeak/PQReferenceWhite, PQEOTF(1), 1e-9)
	require.Equal(t, 0.0, PQInverseEOTF(-1))
	// reference white lands around code value 0.508
	require.InDelta(t, 0.508, PQInverseEOTF(1), 1e-3)
}

func TestOklabWhiteIsAchromatic(t *testing.T) {
	lab := XYZToOklab(WhiteXYZ(D65), D65)
	requireVec(t, Vec3{1, 0, 0}, lab, 1e-3)

	// adapting from another white lands on the same point
	lab50 := XYZToOklab(WhiteXYZ(D50), D50)
	requireVec(t, lab, lab50, 1e-9)
}

func TestOklchHue(t *testing.T) {
	lch := OklabToOklch(Vec3{0.5, 0, 0.1})
	require.InDelta(t, 0.1, lch[1], eps)
	require.InDelta(t, 1.5707963267948966, lch[2], eps)
	requireVec(t, Vec3{0.5, 0, 0.1}, OklchToOklab(lch), eps)
}

func TestICtCpWhiteIsAchromatic(t *testing.T) {
	v := BT2020ToICtCpPQ(Vec3{1, 1, 1}, D65)
	require.InDelta(t, PQInverseEOTF(1), v[0], 1e-12)
	require.InDelta(t, 0.0, v[1], 1e-12)
	require.InDelta(t, 0.0, v[2], 1e-12)
}
