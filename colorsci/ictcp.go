package colorsci

// ITU-R BT.2100 ICtCp with the PQ curve. The linear side is BT.2020.
var (
	ictcpLMS = Mat3{
		{1688.0 / 4096, 2146.0 / 4096, 262.0 / 4096},
		{683.0 / 4096, 2951.0 / 4096, 462.0 / 4096},
		{99.0 / 4096, 309.0 / 4096, 3688.0 / 4096},
	}
	ictcpFromLMS = Mat3{
		{2048.0 / 4096, 2048.0 / 4096, 0},
		{6610.0 / 4096, -13613.0 / 4096, 7003.0 / 4096},
		{17933.0 / 4096, -17390.0 / 4096, -543.0 / 4096},
	}
	ictcpLMSInv     = ictcpLMS.Inverse()
	ictcpFromLMSInv = ictcpFromLMS.Inverse()
)

// BT2020ToICtCpPQ converts linear BT.2020 (1.0 is PQReferenceWhite) into
// ICtCp. w is ignored, BT.2100 fixes the white to D65.
func BT2020ToICtCpPQ(rgb Vec3, _ WhitePoint) Vec3 {
	lms := ictcpLMS.MulVec(rgb)
	lms = Vec3{PQInverseEOTF(lms[0]), PQInverseEOTF(lms[1]), PQInverseEOTF(lms[2])}
	return ictcpFromLMS.MulVec(lms)
}

func ICtCpPQToBT2020(ictcp Vec3, _ WhitePoint) Vec3 {
	lms := ictcpFromLMSInv.MulVec(ictcp)
	lms = Vec3{PQEOTF(lms[0]), PQEOTF(lms[1]), PQEOTF(lms[2])}
	return ictcpLMSInv.MulVec(lms)
}
