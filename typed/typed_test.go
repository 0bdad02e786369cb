package typed_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"colorflow/colorsci"
	"colorflow/tonemap"
	"colorflow/typed"
)

func requireF32(t *testing.T, want, got []float32, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], delta, "component %d: want %v, got %v", i, want, got)
	}
}

func TestScenarioLinearRebeccaPurple(t *testing.T) {
	lin := typed.Convert[typed.LinearSrgb](typed.FromEncodedSrgb8(102, 51, 153))
	requireF32(t, []float32{0.1329, 0.0331, 0.3186}, lin[:], 1e-4)
}

func TestScenarioMidGray(t *testing.T) {
	got := typed.Convert[typed.SrgbU8](typed.FromEncodedSrgbF32(0.5, 0.5, 0.5))
	require.Equal(t, typed.SrgbU8{127, 127, 127}, got)
}

func TestScenarioOklabBlend(t *testing.T) {
	a := typed.Convert[typed.Oklab](typed.SrgbU8{105, 220, 58})
	b := typed.Convert[typed.Oklab](typed.SrgbU8{10, 20, 100})

	mid := typed.PerceptualBlend(a, b, 0.5)
	require.Equal(t, typed.SrgbU8{35, 123, 105}, typed.Convert[typed.SrgbU8](mid))
}

func TestIdentityConversion(t *testing.T) {
	c := typed.LinearSrgb{0.25, -0.5, 3}
	require.Equal(t, c, typed.Convert[typed.LinearSrgb](c))

	o := typed.Oklab{0.5, 0.1, -0.1}
	require.Equal(t, o, typed.Convert[typed.Oklab](o))
	require.True(t, typed.Convertible[typed.ICtCpPQ, typed.ICtCpPQ]())
}

func TestByteRoundTrip(t *testing.T) {
	for i := range 256 {
		v := uint8(i)
		c := typed.SrgbU8{v, uint8(i * 7), uint8(i * 13)}

		lin := typed.Convert[typed.LinearSrgb](c)
		require.Equal(t, c, typed.Convert[typed.SrgbU8](lin), "via linear")

		lab := typed.Convert[typed.Oklab](c)
		require.Equal(t, c, typed.Convert[typed.SrgbU8](lab), "via oklab")

		ca := typed.SrgbAU8{v, 255 - v, v / 2, 255 - v/3}
		la := typed.Convert[typed.LinearSrgbA](ca)
		require.Equal(t, ca, typed.Convert[typed.SrgbAU8](la), "via linear alpha")
	}
}

func TestFloatRoundTrip(t *testing.T) {
	c := typed.LinearSrgb{0.2, 0.5, 0.8}

	cases := []struct {
		name string
		back func() typed.LinearSrgb
	}{
		{"srgb", func() typed.LinearSrgb {
			return typed.Convert[typed.LinearSrgb](typed.Convert[typed.SrgbF32](c))
		}},
		{"xyz", func() typed.LinearSrgb {
			return typed.Convert[typed.LinearSrgb](typed.Convert[typed.CieXyz](c))
		}},
		{"acescg", func() typed.LinearSrgb {
			return typed.Convert[typed.LinearSrgb](typed.Convert[typed.AcesCg](c))
		}},
		{"aces2065", func() typed.LinearSrgb {
			return typed.Convert[typed.LinearSrgb](typed.Convert[typed.Aces2065](c))
		}},
		{"display p3", func() typed.LinearSrgb {
			return typed.Convert[typed.LinearSrgb](typed.Convert[typed.EncodedDisplayP3](c))
		}},
		{"pq", func() typed.LinearSrgb {
			return typed.Convert[typed.LinearSrgb](typed.Convert[typed.EncodedBt2100PQ](c))
		}},
		{"ictcp", func() typed.LinearSrgb {
			return typed.Convert[typed.LinearSrgb](typed.Convert[typed.ICtCpPQ](c))
		}},
		{"oklch", func() typed.LinearSrgb {
			return typed.Convert[typed.LinearSrgb](typed.Convert[typed.Oklch](c))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			back := tc.back()
			requireF32(t, c[:], back[:], 1e-5)
		})
	}
}

func TestUndeclaredConversion(t *testing.T) {
	require.False(t, typed.Convertible[typed.ICtCpPQ, typed.SrgbAU8]())
	require.True(t, typed.Convertible[typed.SrgbAU8, typed.Oklab]())
	require.True(t, typed.Convertible[typed.Bt2020, typed.EncodedBt2100PQ]())

	require.PanicsWithValue(t, "typed: no conversion declared from SrgbAU8 to ICtCpPQ", func() {
		typed.Convert[typed.ICtCpPQ](typed.SrgbAU8{1, 2, 3, 4})
	})
}

func TestAlphaPassesThrough(t *testing.T) {
	c := typed.SrgbAF32{0.5, 0.25, 0.75, 0.3}

	lin := typed.Convert[typed.LinearSrgbA](c)
	require.Equal(t, float32(0.3), lin[3])

	pre := typed.Convert[typed.LinearSrgbAPremultiplied](c)
	require.Equal(t, float32(0.3), pre[3])
	require.InDelta(t, float64(lin[0])*0.3, float64(pre[0]), 1e-7)

	// alpha is dropped without touching the separated color
	rgb := typed.Convert[typed.SrgbF32](pre)
	requireF32(t, c[:3], rgb[:], 1e-6)

	// and is opaque when there was none
	opaque := typed.Convert[typed.SrgbAU8](typed.SrgbU8{1, 2, 3})
	require.Equal(t, typed.SrgbAU8{1, 2, 3, 255}, opaque)
}

func TestPremultipliedBytes(t *testing.T) {
	c := typed.SrgbAU8{200, 100, 50, 128}
	pre := typed.Convert[typed.SrgbAU8Premultiplied](c)
	require.Equal(t, uint8(128), pre[3])

	// premultiplied in linear light, then encoded
	lin := typed.Convert[typed.LinearSrgbA](c)
	want := colorsci.SRGBOETF(float64(lin[0]) * 128 / 255)
	require.InDelta(t, want*255, float64(pre[0]), 1)

	require.Equal(t, pre, pre.Decode().Encode())
}

func TestPremultipliedBytesRoundTrip(t *testing.T) {
	c := typed.SrgbAU8{200, 100, 50, 128}

	pre := typed.Convert[typed.SrgbAU8Premultiplied](c)
	via := typed.Convert[typed.SrgbAU8Premultiplied](typed.Convert[typed.LinearSrgbAPremultiplied](c))
	require.Equal(t, via, pre)
	require.Equal(t, typed.SrgbAU8Premultiplied{146, 71, 34, 128}, pre)

	back := typed.Convert[typed.SrgbAU8](pre)
	require.Equal(t, uint8(128), back[3])
	for i := range 3 {
		require.InDelta(t, float64(c[i]), float64(back[i]), 1, "channel %d", i)
	}
}

func TestCast(t *testing.T) {
	lin := typed.LinearSrgb{0.1, 0.2, 0.3}
	aces := typed.AcesCg(lin)
	require.Equal(t, [3]float32{0.1, 0.2, 0.3}, [3]float32(aces))

	pre := typed.LinearSrgbAPremultiplied(typed.LinearSrgbA{0.5, 0.5, 0.5, 0.5})
	require.Equal(t, typed.LinearSrgbAPremultiplied{0.5, 0.5, 0.5, 0.5}, pre)
}

func TestLerp(t *testing.T) {
	a := typed.LinearSrgbA{0, 0.2, 1, 1}
	b := typed.LinearSrgbA{1, 0.4, 0, 0}

	require.Equal(t, a, typed.Lerp(a, b, 0))
	requireF32(t, b[:], func() []float32 { c := typed.Lerp(a, b, 1); return c[:] }(), 1e-7)

	mid := typed.Lerp(a, b, 0.5)
	requireF32(t, []float32{0.5, 0.3, 0.5, 0.5}, mid[:], 1e-7)
}

func TestArithmetic(t *testing.T) {
	a := typed.LinearSrgb{0.25, 0.5, 1}
	b := typed.LinearSrgb{0.25, 0.25, 0.5}

	require.Equal(t, typed.LinearSrgb{0.5, 0.75, 1.5}, typed.Add(a, b))
	require.Equal(t, typed.LinearSrgb{0, 0.25, 0.5}, typed.Sub(a, b))
	require.Equal(t, typed.LinearSrgb{0.5, 1, 2}, typed.Scale(a, 2))

	// scale keeps alpha
	require.Equal(t, typed.LinearSrgbA{0.5, 0.5, 0.5, 0.5}, typed.Scale(typed.LinearSrgbA{0.25, 0.25, 0.25, 0.5}, 2))
}

func TestSaturate(t *testing.T) {
	require.Equal(t, typed.LinearSrgb{0, 0.5, 1}, typed.LinearSrgb{-1, 0.5, 3}.Saturate())
	require.Equal(t, typed.SrgbAF32{1, 0, 0.25, 1}, typed.SrgbAF32{2, -2, 0.25, 1.5}.Saturate())
	require.Equal(t, typed.LinearSrgbAPremultiplied{0.5, 0.25, 0, 0.5},
		typed.LinearSrgbAPremultiplied{0.75, 0.25, -1, 0.5}.Saturate())
}

func TestOver(t *testing.T) {
	under := typed.LinearSrgbAPremultiplied{0.1, 0.2, 0.3, 0.6}

	t.Run("opaque over", func(t *testing.T) {
		over := typed.LinearSrgbAPremultiplied{0.9, 0.8, 0.7, 1}
		require.Equal(t, over, typed.Over(over, under))
	})

	t.Run("transparent over", func(t *testing.T) {
		require.Equal(t, under, typed.Over(typed.LinearSrgbAPremultiplied{}, under))
	})

	t.Run("bytes opaque over", func(t *testing.T) {
		over := typed.SrgbAU8{12, 34, 56, 255}
		require.Equal(t, over, typed.Over(over, typed.SrgbAU8{200, 100, 50, 255}))
	})

	t.Run("bytes transparent over", func(t *testing.T) {
		u := typed.SrgbAU8{10, 200, 30, 200}
		require.Equal(t, u, typed.Over(typed.SrgbAU8{255, 0, 0, 0}, u))
	})

	t.Run("half over", func(t *testing.T) {
		got := typed.Over(typed.LinearSrgbA{1, 0, 0, 0.5}, typed.LinearSrgbA{0, 0, 1, 1})
		requireF32(t, []float32{0.5, 0, 0.5, 1}, got[:], 1e-7)
	})
}

func TestSceneTonemap(t *testing.T) {
	gray := typed.AsScene(typed.LinearSrgb{0.18, 0.18, 0.18})
	out := typed.Tonemap(gray, tonemap.DefaultLottes())
	requireF32(t, []float32{0.18, 0.18, 0.18}, out[:], 1e-6)

	// premultiplied colors are separated around the operator
	pre := typed.AsScene(typed.LinearSrgbAPremultiplied{0.09, 0.09, 0.09, 0.5})
	got := typed.Tonemap(pre, tonemap.DefaultLottes())
	requireF32(t, []float32{0.09, 0.09, 0.09, 0.5}, got[:], 1e-6)

	// the operator's own space is used
	white := typed.AsScene(typed.LinearSrgb{1, 1, 1})
	pw := typed.Tonemap(white, tonemap.DefaultPerceptual())
	requireF32(t, []float32{2.5 / 3.5, 2.5 / 3.5, 2.5 / 3.5}, pw[:], 1e-5)

	bright := typed.AsScene(typed.AcesCg{40, 12, 3})
	require.Equal(t, typed.Tonemap(bright, tonemap.DefaultLottes()), typed.Tonemap(bright, tonemap.DefaultLottes()))
}

func TestStateTransitions(t *testing.T) {
	c := typed.LinearSrgb{0.1, 0.2, 0.4}

	s := typed.ToScene(c, typed.Exposure(1))
	require.Equal(t, typed.LinearSrgb{0.2, 0.4, 0.8}, s.AsDisplay())

	back := typed.ToDisplay(s, typed.Exposure(-1))
	require.Equal(t, c, back)

	require.Equal(t, c, typed.AsScene(c).AsDisplay())

	aces := typed.ConvertScene[typed.AcesCg](typed.AsScene(typed.LinearSrgb{1, 1, 1}))
	v := aces.AsDisplay()
	requireF32(t, []float32{1, 1, 1}, v[:], 1e-5)
}

func TestDecodeEncode(t *testing.T) {
	c := typed.SrgbF32{0.5, 0.5, 0.5}
	lin := c.Decode()
	require.InDelta(t, colorsci.SRGBEOTF(0.5), float64(lin[0]), 1e-7)
	requireF32(t, c[:], func() []float32 { e := lin.Encode(); return e[:] }(), 1e-6)

	p3 := typed.DisplayP3{0.25, 0.5, 0.75}
	requireF32(t, p3[:], func() []float32 { d := p3.Encode().Decode(); return d[:] }(), 1e-6)

	xyz := typed.Oklab{1, 0, 0}.Linearize()
	require.InDelta(t, 1.0, float64(xyz[1]), 1e-3)

	bt := typed.ICtCpPQ{0.5, 0, 0}.Linearize()
	require.InDelta(t, float64(bt[0]), float64(bt[1]), 1e-6)
}

func TestColorInterop(t *testing.T) {
	r, g, b, a := typed.SrgbU8{255, 0, 0}.RGBA()
	require.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})

	// every encoding is a color.Color
	var cs []color.Color = []color.Color{
		typed.SrgbU8{102, 51, 153},
		typed.Convert[typed.LinearSrgb](typed.SrgbU8{102, 51, 153}),
		typed.Convert[typed.Oklab](typed.SrgbU8{102, 51, 153}),
	}
	want := color.NRGBA{102, 51, 153, 255}
	for _, c := range cs {
		require.Equal(t, want, color.NRGBAModel.Convert(c))
	}

	m := typed.Model[typed.SrgbU8]()
	require.Equal(t, typed.SrgbU8{102, 51, 153}, m.Convert(color.RGBA{102, 51, 153, 255}))
	require.Equal(t, typed.SrgbU8{1, 2, 3}, m.Convert(typed.SrgbU8{1, 2, 3}))

	ma := typed.Model[typed.SrgbAU8]()
	require.Equal(t, typed.SrgbAU8{10, 20, 30, 40}, ma.Convert(color.NRGBA{10, 20, 30, 40}))
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want typed.SrgbAU8
		err  string
	}{
		{in: "#663399", want: typed.SrgbAU8{0x66, 0x33, 0x99, 0xff}},
		{in: "#66339980", want: typed.SrgbAU8{0x66, 0x33, 0x99, 0x80}},
		{in: "#fa0", want: typed.SrgbAU8{0xff, 0xaa, 0x00, 0xff}},
		{in: "#fa08", want: typed.SrgbAU8{0xff, 0xaa, 0x00, 0x88}},
		{in: "663399", err: "does not start with #"},
		{in: "#12345", err: "should be #RGB"},
		{in: "#gg0000", err: "could not read color"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := typed.ParseHex(tc.in)
			if tc.err != "" {
				require.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	require.Equal(t, "#663399", typed.SrgbU8{0x66, 0x33, 0x99}.Hex())
	require.Equal(t, "#66339980", typed.SrgbAU8{0x66, 0x33, 0x99, 0x80}.Hex())
}
