package alpha_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"colorflow/alpha"
	"colorflow/colorsci"
)

func TestConvert(t *testing.T) {
	raw := colorsci.Vec3{0.5, 0.25, 1}

	cases := []struct {
		name     string
		raw      colorsci.Vec3
		a        float64
		src, dst alpha.State
		want     colorsci.Vec3
	}{
		{"identity separate", raw, 0.5, alpha.Separate, alpha.Separate, raw},
		{"identity premultiplied", raw, 0.5, alpha.Premultiplied, alpha.Premultiplied, raw},
		{"premultiply", raw, 0.5, alpha.Separate, alpha.Premultiplied, colorsci.Vec3{0.25, 0.125, 0.5}},
		{"separate", colorsci.Vec3{0.25, 0.125, 0.5}, 0.5, alpha.Premultiplied, alpha.Separate, raw},
		{"separate zero alpha", raw, 0, alpha.Premultiplied, alpha.Separate, raw},
		{"premultiply zero alpha", raw, 0, alpha.Separate, alpha.Premultiplied, colorsci.Vec3{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, alpha.Convert(tc.raw, tc.a, tc.src, tc.dst))
		})
	}
}

func TestConvertIdempotent(t *testing.T) {
	raw := colorsci.Vec3{0.3, 0.6, 0.9}
	for _, st := range []alpha.State{alpha.Separate, alpha.Premultiplied} {
		once := alpha.Convert(raw, 0.4, alpha.Separate, st)
		twice := alpha.Convert(once, 0.4, st, st)
		require.Equal(t, once, twice)
	}
}

func TestPremultiplyRoundTrip(t *testing.T) {
	raw := colorsci.Vec3{0.3, 0.6, 0.9}
	for _, a := range []float64{1, 0.75, 0.5, 0.01} {
		p := alpha.Convert(raw, a, alpha.Separate, alpha.Premultiplied)
		got := alpha.Convert(p, a, alpha.Premultiplied, alpha.Separate)
		for i := range 3 {
			require.InDelta(t, raw[i], got[i], 1e-12)
		}
	}
}

func TestOver(t *testing.T) {
	under := colorsci.Vec3{0.2, 0.4, 0.6}

	t.Run("opaque over", func(t *testing.T) {
		over := colorsci.Vec3{0.9, 0.8, 0.7}
		c, a := alpha.Over(over, 1, under, 1)
		require.Equal(t, over, c)
		require.Equal(t, 1.0, a)
	})

	t.Run("transparent over", func(t *testing.T) {
		c, a := alpha.Over(colorsci.Vec3{}, 0, under, 0.5)
		require.Equal(t, under, c)
		require.Equal(t, 0.5, a)
	})

	t.Run("half over", func(t *testing.T) {
		c, a := alpha.Over(colorsci.Vec3{0.5, 0, 0}, 0.5, colorsci.Vec3{0, 1, 0}, 1)
		require.Equal(t, colorsci.Vec3{0.5, 0.5, 0}, c)
		require.Equal(t, 1.0, a)
	})
}

func TestText(t *testing.T) {
	for _, st := range []alpha.State{alpha.Separate, alpha.Premultiplied} {
		b, err := st.MarshalText()
		require.NoError(t, err)

		var got alpha.State
		require.NoError(t, got.UnmarshalText(b))
		require.Equal(t, st, got)
	}

	var st alpha.State
	require.Error(t, st.UnmarshalText([]byte("straight")))
	_, err := alpha.State(7).MarshalText()
	require.Error(t, err)
}
