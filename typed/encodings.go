package typed

import (
	"colorflow/alpha"
	"colorflow/space"
)

var (
	encSrgbU8                   = Encoding{Name: "SrgbU8", Space: space.EncodedSrgb, Channels: 3, Bytes: true}
	encSrgbF32                  = Encoding{Name: "SrgbF32", Space: space.EncodedSrgb, Channels: 3}
	encSrgbAU8                  = Encoding{Name: "SrgbAU8", Space: space.EncodedSrgb, Channels: 4, Bytes: true}
	encSrgbAF32                 = Encoding{Name: "SrgbAF32", Space: space.EncodedSrgb, Channels: 4}
	encSrgbAU8Premultiplied     = Encoding{Name: "SrgbAU8Premultiplied", Space: space.EncodedSrgb, Channels: 4, Alpha: alpha.Premultiplied, Bytes: true}
	encLinearSrgb               = Encoding{Name: "LinearSrgb", Space: space.LinearSrgb, Channels: 3}
	encLinearSrgbA              = Encoding{Name: "LinearSrgbA", Space: space.LinearSrgb, Channels: 4}
	encLinearSrgbAPremultiplied = Encoding{Name: "LinearSrgbAPremultiplied", Space: space.LinearSrgb, Channels: 4, Alpha: alpha.Premultiplied}
	encOklab                    = Encoding{Name: "Oklab", Space: space.Oklab, Channels: 3}
	encOklch                    = Encoding{Name: "Oklch", Space: space.Oklch, Channels: 3}
	encCieXyz                   = Encoding{Name: "CieXyz", Space: space.CieXyz, Channels: 3}
	encBt2020                   = Encoding{Name: "Bt2020", Space: space.Bt2020, Channels: 3}
	encAcesCg                   = Encoding{Name: "AcesCg", Space: space.AcesCg, Channels: 3}
	encAces2065                 = Encoding{Name: "Aces2065", Space: space.Aces2065, Channels: 3}
	encDisplayP3                = Encoding{Name: "DisplayP3", Space: space.DisplayP3, Channels: 3}
	encEncodedDisplayP3         = Encoding{Name: "EncodedDisplayP3", Space: space.EncodedDisplayP3, Channels: 3}
	encEncodedBt2100PQ          = Encoding{Name: "EncodedBt2100PQ", Space: space.EncodedBt2100PQ, Channels: 3}
	encICtCpPQ                  = Encoding{Name: "ICtCpPQ", Space: space.ICtCpPQ, Channels: 3}
)

// SrgbU8 is 8-bit encoded sRGB, the usual format of image files and hex codes.
type SrgbU8 [3]uint8

func (SrgbU8) Encoding() Encoding { return encSrgbU8 }
func (c SrgbU8) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c SrgbU8) payload() [4]float64 { return u3(c) }
func (SrgbU8) withPayload(p [4]float64) SrgbU8 { return toU3(p) }

// SrgbF32 is encoded sRGB in [0, 1].
type SrgbF32 [3]float32

func (SrgbF32) Encoding() Encoding { return encSrgbF32 }
func (c SrgbF32) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c SrgbF32) payload() [4]float64 { return f3(c) }
func (SrgbF32) withPayload(p [4]float64) SrgbF32 { return toF3(p) }

// SrgbAU8 is 8-bit encoded sRGB with separate alpha.
type SrgbAU8 [4]uint8

func (SrgbAU8) Encoding() Encoding { return encSrgbAU8 }
func (c SrgbAU8) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c SrgbAU8) payload() [4]float64 { return u4(c) }
func (SrgbAU8) withPayload(p [4]float64) SrgbAU8 { return toU4(p) }
func (SrgbAU8) hasAlpha() {}

// SrgbAF32 is encoded sRGB in [0, 1] with separate alpha.
type SrgbAF32 [4]float32

func (SrgbAF32) Encoding() Encoding { return encSrgbAF32 }
func (c SrgbAF32) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c SrgbAF32) payload() [4]float64 { return f4(c) }
func (SrgbAF32) withPayload(p [4]float64) SrgbAF32 { return toF4(p) }
func (SrgbAF32) hasAlpha() {}

// SrgbAU8Premultiplied is 8-bit encoded sRGB whose components were
// multiplied by alpha in linear light before encoding.
type SrgbAU8Premultiplied [4]uint8

func (SrgbAU8Premultiplied) Encoding() Encoding { return encSrgbAU8Premultiplied }
func (c SrgbAU8Premultiplied) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c SrgbAU8Premultiplied) payload() [4]float64 { return u4(c) }
func (SrgbAU8Premultiplied) withPayload(p [4]float64) SrgbAU8Premultiplied { return toU4(p) }
func (SrgbAU8Premultiplied) hasAlpha() {}

// LinearSrgb is linear light with BT.709 primaries and a D65 white.
type LinearSrgb [3]float32

func (LinearSrgb) Encoding() Encoding { return encLinearSrgb }
func (c LinearSrgb) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c LinearSrgb) payload() [4]float64 { return f3(c) }
func (LinearSrgb) withPayload(p [4]float64) LinearSrgb { return toF3(p) }
func (LinearSrgb) linear() {}
func (LinearSrgb) working() {}

// LinearSrgbA is LinearSrgb with separate alpha.
type LinearSrgbA [4]float32

func (LinearSrgbA) Encoding() Encoding { return encLinearSrgbA }
func (c LinearSrgbA) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c LinearSrgbA) payload() [4]float64 { return f4(c) }
func (LinearSrgbA) withPayload(p [4]float64) LinearSrgbA { return toF4(p) }
func (LinearSrgbA) linear() {}
func (LinearSrgbA) working() {}
func (LinearSrgbA) hasAlpha() {}

// LinearSrgbAPremultiplied is LinearSrgb with premultiplied alpha, the
// format compositing happens in.
type LinearSrgbAPremultiplied [4]float32

func (LinearSrgbAPremultiplied) Encoding() Encoding { return encLinearSrgbAPremultiplied }
func (c LinearSrgbAPremultiplied) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c LinearSrgbAPremultiplied) payload() [4]float64 { return f4(c) }
func (LinearSrgbAPremultiplied) withPayload(p [4]float64) LinearSrgbAPremultiplied { return toF4(p) }
func (LinearSrgbAPremultiplied) linear() {}
func (LinearSrgbAPremultiplied) working() {}
func (LinearSrgbAPremultiplied) hasAlpha() {}

// Oklab is Björn Ottosson's perceptual L, a, b space.
type Oklab [3]float32

func (Oklab) Encoding() Encoding { return encOklab }
func (c Oklab) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c Oklab) payload() [4]float64 { return f3(c) }
func (Oklab) withPayload(p [4]float64) Oklab { return toF3(p) }
func (Oklab) working() {}
func (Oklab) perceptual() {}

// Oklch is the cylindrical form of Oklab: lightness, chroma and hue in
// radians.
type Oklch [3]float32

func (Oklch) Encoding() Encoding { return encOklch }
func (c Oklch) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c Oklch) payload() [4]float64 { return f3(c) }
func (Oklch) withPayload(p [4]float64) Oklch { return toF3(p) }

// CieXyz is CIE 1931 XYZ relative to D65.
type CieXyz [3]float32

func (CieXyz) Encoding() Encoding { return encCieXyz }
func (c CieXyz) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c CieXyz) payload() [4]float64 { return f3(c) }
func (CieXyz) withPayload(p [4]float64) CieXyz { return toF3(p) }
func (CieXyz) linear() {}
func (CieXyz) working() {}

// Bt2020 is linear light with BT.2020 primaries.
type Bt2020 [3]float32

func (Bt2020) Encoding() Encoding { return encBt2020 }
func (c Bt2020) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c Bt2020) payload() [4]float64 { return f3(c) }
func (Bt2020) withPayload(p [4]float64) Bt2020 { return toF3(p) }
func (Bt2020) linear() {}
func (Bt2020) working() {}

// AcesCg is linear light with ACES AP1 primaries, the usual rendering
// space of ACES pipelines.
type AcesCg [3]float32

func (AcesCg) Encoding() Encoding { return encAcesCg }
func (c AcesCg) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c AcesCg) payload() [4]float64 { return f3(c) }
func (AcesCg) withPayload(p [4]float64) AcesCg { return toF3(p) }
func (AcesCg) linear() {}
func (AcesCg) working() {}

// Aces2065 is linear light with ACES AP0 primaries, the ACES interchange
// space.
type Aces2065 [3]float32

func (Aces2065) Encoding() Encoding { return encAces2065 }
func (c Aces2065) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c Aces2065) payload() [4]float64 { return f3(c) }
func (Aces2065) withPayload(p [4]float64) Aces2065 { return toF3(p) }
func (Aces2065) linear() {}
func (Aces2065) working() {}

// DisplayP3 is linear light with P3 primaries and a D65 white.
type DisplayP3 [3]float32

func (DisplayP3) Encoding() Encoding { return encDisplayP3 }
func (c DisplayP3) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c DisplayP3) payload() [4]float64 { return f3(c) }
func (DisplayP3) withPayload(p [4]float64) DisplayP3 { return toF3(p) }
func (DisplayP3) linear() {}
func (DisplayP3) working() {}

// EncodedDisplayP3 is Display P3 with the sRGB curve applied.
type EncodedDisplayP3 [3]float32

func (EncodedDisplayP3) Encoding() Encoding { return encEncodedDisplayP3 }
func (c EncodedDisplayP3) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c EncodedDisplayP3) payload() [4]float64 { return f3(c) }
func (EncodedDisplayP3) withPayload(p [4]float64) EncodedDisplayP3 { return toF3(p) }

// EncodedBt2100PQ is BT.2020 encoded with the PQ curve, linear 1.0
// mapping to 100 cd/m².
type EncodedBt2100PQ [3]float32

func (EncodedBt2100PQ) Encoding() Encoding { return encEncodedBt2100PQ }
func (c EncodedBt2100PQ) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c EncodedBt2100PQ) payload() [4]float64 { return f3(c) }
func (EncodedBt2100PQ) withPayload(p [4]float64) EncodedBt2100PQ { return toF3(p) }

// ICtCpPQ is BT.2100 ICtCp over PQ encoded LMS.
type ICtCpPQ [3]float32

func (ICtCpPQ) Encoding() Encoding { return encICtCpPQ }
func (c ICtCpPQ) RGBA() (r, g, b, a uint32) { return rgba(c) }
func (c ICtCpPQ) payload() [4]float64 { return f3(c) }
func (ICtCpPQ) withPayload(p [4]float64) ICtCpPQ { return toF3(p) }
