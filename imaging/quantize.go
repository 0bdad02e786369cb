package imaging

import (
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/draw"

	"colorflow/palette"
	"colorflow/parallel"
	"colorflow/space"
	"colorflow/typed"
)

// Quantize maps every pixel of img to the closest palette entry. Without
// dithering the match is made in Oklab; with dithering the error is
// diffused by Floyd-Steinberg over the encoded sRGB image.
func Quantize(logger *slog.Logger, img *Linear, pal *palette.Palette, dither bool, pool *parallel.Pool) (*image.Paletted, error) {
	if n := pal.Len(); n == 0 || n > 256 {
		return nil, fmt.Errorf("palette has %d colors, want 1 to 256", n)
	}

	logger.Info("applying palette", "colors", pal.Len(), "dither", dither)
	r := img.Rect
	dest := image.NewPaletted(r, pal.Color())

	if dither {
		src, err := Encode(img, space.EncodedSrgb, pool)
		if err != nil {
			return nil, err
		}
		draw.FloydSteinberg.Draw(dest, r, src, r.Min)
		return dest, nil
	}

	rows(pool, r, func(y int) {
		for x := r.Min.X; x < r.Max.X; x++ {
			lab := typed.Convert[typed.Oklab](img.LinearAt(x, y))
			dest.SetColorIndex(x, y, uint8(pal.Index(lab)))
		}
	})
	return dest, nil
}
