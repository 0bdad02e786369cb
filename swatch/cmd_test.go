package swatch_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"colorflow/config"
	"colorflow/dynamic"
	"colorflow/palette"
	"colorflow/space"
	"colorflow/swatch"
	"colorflow/typed"
)

type cli struct {
	Convert swatch.ConvertCmd `cmd:""`
	Blend   swatch.BlendCmd   `cmd:""`
	List    swatch.ListCmd    `cmd:""`
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Swatches = []config.Swatch{
		{Name: "accent", Wire: dynamic.Wire{Raw: []float32{0.4, 0.2, 0.6}, Space: space.EncodedSrgb}},
		{Name: "gray", Wire: dynamic.Wire{Raw: []float32{0.18, 0.18, 0.18}, Space: space.LinearSrgb, State: dynamic.Scene}},
	}
	return cfg
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	parser, err := kong.New(&cli{}, kong.Writers(&out, &out), kong.Exit(func(int) { t.Fatal("exit") }))
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	err = kctx.Run(testConfig(), slog.New(slog.DiscardHandler))
	return out.String(), err
}

func TestResolve(t *testing.T) {
	cfg := testConfig()

	c, err := swatch.Resolve("#663399", cfg)
	require.NoError(t, err)
	require.False(t, c.HasAlpha())
	got, err := dynamic.Downcast[typed.SrgbU8](c)
	require.NoError(t, err)
	require.Equal(t, typed.SrgbU8{0x66, 0x33, 0x99}, got)

	c, err = swatch.Resolve("#66339980", cfg)
	require.NoError(t, err)
	require.True(t, c.HasAlpha())

	c, err = swatch.Resolve(`{"raw":[0.5,0.5,0.5],"space":"linear_srgb","state":"scene"}`, cfg)
	require.NoError(t, err)
	require.Equal(t, dynamic.Scene, c.State())

	c, err = swatch.Resolve("accent", cfg)
	require.NoError(t, err)
	require.Equal(t, space.EncodedSrgb, c.Space())

	for _, bad := range []string{"#zz", `{"raw":[1]}`, "nope"} {
		_, err := swatch.Resolve(bad, cfg)
		require.Error(t, err, bad)
	}
}

func TestHex(t *testing.T) {
	lin := typed.Convert[typed.LinearSrgb](typed.SrgbU8{0x66, 0x33, 0x99})
	hex, err := swatch.Hex(dynamic.FromTyped(lin))
	require.NoError(t, err)
	require.Equal(t, "#663399", hex)

	hex, err = swatch.Hex(dynamic.FromTyped(typed.SrgbAU8{1, 2, 3, 4}))
	require.NoError(t, err)
	require.Equal(t, "#01020304", hex)

	pre := typed.LinearSrgbAPremultiplied{0.1, 0.2, 0.3, 0.5}
	hex, err = swatch.Hex(dynamic.FromTyped(pre))
	require.NoError(t, err)
	require.Equal(t, typed.Convert[typed.SrgbAU8](pre).Hex(), hex)

	scene := dynamic.FromScene(typed.AsScene(lin))
	_, err = swatch.Hex(scene)
	require.ErrorIs(t, err, dynamic.ErrNonlinearConversionInSceneState)
}

func TestConvertCmd(t *testing.T) {
	out, err := run(t, "convert", "#663399", "--to", "linear_srgb")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "#663399\t#663399\t"), out)
	require.Contains(t, out, `"space":"linear_srgb"`)

	out, err = run(t, "convert", "#66339980", "--to", "linear_srgb", "--alpha", "premultiplied")
	require.NoError(t, err)
	require.Contains(t, out, `"alpha_state":"premultiplied"`)

	_, err = run(t, "convert", "gray", "--to", "encoded_srgb")
	require.ErrorIs(t, err, dynamic.ErrNonlinearConversionInSceneState)

	out, err = run(t, "convert", "gray", "--to", "encoded_srgb", "--tonemap")
	require.NoError(t, err)
	require.Contains(t, out, `"state":"display"`)

	_, err = run(t, "convert", "#fff", "--to", "hsv")
	require.Error(t, err)
}

func TestBlendCmd(t *testing.T) {
	name := filepath.Join(t.TempDir(), "grad.pal")
	out, err := run(t, "blend", "#69dc3a", "#0a1464", "--steps", "3", "--output", name)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[1], "1\t#237b69\t"), lines[1])

	p, err := palette.LoadPalette(name)
	require.NoError(t, err)
	require.Equal(t, []typed.SrgbU8{{105, 220, 58}, {35, 123, 105}, {10, 20, 100}}, p.Colors())

	_, err = run(t, "blend", "#000", "#fff", "--steps", "1")
	require.Error(t, err)
}

func TestListCmd(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "accent\t#663399\t")
	require.Contains(t, out, "gray\t")

	out, err = run(t, "list", "--spaces")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(space.All()))
	require.Contains(t, out, "oklab\t")
}
