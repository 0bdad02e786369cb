package imaging

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"

	"colorflow/parallel"
	"colorflow/typed"
)

// ResizeOptions describes a target size. A zero Width or Height keeps the
// source dimension. Without Crop the aspect ratio is kept by shrinking the
// output, or by padding it with Fill when Fill is set.
type ResizeOptions struct {
	Width  int
	Height int
	Crop   bool
	Fill   *typed.SrgbAU8
}

func (o ResizeOptions) Validate() error {
	switch {
	case o.Width < 0:
		return fmt.Errorf("invalid resize width: %d", o.Width)
	case o.Height < 0:
		return fmt.Errorf("invalid resize height: %d", o.Height)
	case o.Width == 0 && o.Height == 0:
		return fmt.Errorf("no resize dimensions given")
	}
	return nil
}

// toRGBA64 packs the linear values of img into 16 bits so x/image/draw
// filters them in linear light. Values are clamped to [0, 1].
func toRGBA64(img *Linear, pool *parallel.Pool) *image.RGBA64 {
	out := image.NewRGBA64(img.Rect)
	rows(pool, img.Rect, func(y int) {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			c := img.LinearAt(x, y)
			i := out.PixOffset(x, y)
			for k := range 4 {
				v := uint16(math.Round(math.Min(math.Max(float64(c[k]), 0), 1) * 0xffff))
				out.Pix[i+2*k] = uint8(v >> 8)
				out.Pix[i+2*k+1] = uint8(v)
			}
		}
	})
	return out
}

func fromRGBA64(img *image.RGBA64, pool *parallel.Pool) *Linear {
	out := NewLinear(img.Rect)
	rows(pool, img.Rect, func(y int) {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			i := img.PixOffset(x, y)
			var c typed.LinearSrgbAPremultiplied
			for k := range 4 {
				c[k] = float32(uint16(img.Pix[i+2*k])<<8|uint16(img.Pix[i+2*k+1])) / 0xffff
			}
			out.SetLinear(x, y, c)
		}
	})
	return out
}

// Resize scales img with a Catmull-Rom filter in linear light.
func Resize(logger *slog.Logger, img *Linear, opts ResizeOptions, pool *parallel.Pool) (*Linear, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())
	if srcWidth == 0 || srcHeight == 0 {
		return nil, fmt.Errorf("cannot resize empty image %v", srcBounds)
	}

	destWidth := float64(opts.Width)
	if destWidth == 0 {
		destWidth = srcWidth
	}

	destHeight := float64(opts.Height)
	if destHeight == 0 {
		destHeight = srcHeight
	}

	if (srcWidth == destWidth) && (srcHeight == destHeight) {
		return img, nil
	}

	destSize := image.Rect(0, 0, int(destWidth), int(destHeight))
	destBounds := destSize

	srcAR := srcWidth / srcHeight
	destAR := destWidth / destHeight
	var fill bool
	if opts.Crop {
		if srcAR < destAR {
			dh := int(math.Round((srcHeight - srcWidth/destAR) / 2))
			srcBounds.Min.Y += dh
			srcBounds.Max.Y -= dh
		} else if srcAR > destAR {
			dw := int(math.Round((srcWidth - srcHeight*destAR) / 2))
			srcBounds.Min.X += dw
			srcBounds.Max.X -= dw
		}
	} else {
		if srcAR < destAR {
			dw := destHeight * srcAR
			if opts.Fill == nil {
				destSize.Max.X = int(math.Round(dw))
				destBounds.Max.X = destSize.Max.X
			} else if fill = destWidth > dw; fill {
				idw := int(math.Round((destWidth - dw) / 2))
				destBounds.Min.X += idw
				destBounds.Max.X -= idw
			}
		} else if srcAR > destAR {
			dh := destWidth / srcAR
			if opts.Fill == nil {
				destSize.Max.Y = int(math.Round(dh))
				destBounds.Max.Y = destSize.Max.Y
			} else if fill = destHeight > dh; fill {
				idh := int(math.Round((destHeight - dh) / 2))
				destBounds.Min.Y += idh
				destBounds.Max.Y -= idh
			}
		}
	}

	logger.Info("resizing", "width", destBounds.Dx(), "height", destBounds.Dy())
	dest := image.NewRGBA64(destSize)
	if fill {
		bg := toRGBA64(Fill(image.Rect(0, 0, 1, 1), typed.Convert[typed.LinearSrgbAPremultiplied](*opts.Fill)), nil)
		draw.Draw(dest, destSize, image.NewUniform(bg.RGBA64At(0, 0)), destSize.Min, draw.Src)
	}
	draw.CatmullRom.Scale(dest, destBounds, toRGBA64(img, pool), srcBounds, draw.Over, nil)

	return fromRGBA64(dest, pool), nil
}
