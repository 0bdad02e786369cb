// Package grade implements the batch image grading command: every image of
// a folder is decoded into linear light, optionally resized, exposed and
// tonemapped, matted, reduced to a palette, and encoded in an output space.
package grade

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"colorflow/config"
	"colorflow/imaging"
	"colorflow/palette"
	"colorflow/parallel"
	"colorflow/space"
	"colorflow/tonemap"
	"colorflow/typed"
)

type CLICmd struct {
	Scan     string  `help:"Source folder to scan" default:"."`
	Dest     string  `help:"Destination folder for graded pictures. Relative to scan dir if not absolute." default:"graded"`
	Resize   bool    `help:"Resize image" default:"false" group:"resize"`
	Width    int     `help:"Max width" group:"resize"`
	Height   int     `help:"Max height" group:"resize"`
	Crop     bool    `help:"Crop image to maintain requested aspect ratio" default:"false" group:"resize"`
	Fill     string  `help:"If given and not cropping, will fill background with this color to maintain destination aspect ratio" group:"resize"`
	Tonemap  bool    `help:"Expose the image into the scene and tonemap it back" default:"false" group:"tone"`
	Exposure float64 `help:"Exposure in stops, added to the configured exposure" group:"tone"`
	Operator string  `help:"Tonemap operator (lottes, perceptual), overrides the configured one" group:"tone"`
	Matte    string  `help:"Composite over this background color, leaving the image opaque" group:"output"`
	Palette  string  `help:"Palette name (bw, gray16, spectra6, vga16) or PAL file in RIFF format to apply" group:"output"`
	Dither   bool    `help:"Apply dithering" default:"false" group:"output"`
	Space    string  `help:"Encoding of the output pixels" enum:"encoded_srgb,encoded_display_p3,encoded_bt2020,encoded_aces_cg_srgb" default:"encoded_srgb" group:"output"`
	Format   string  `help:"Output format of graded image. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png" group:"output"`

	resizeOpts imaging.ResizeOptions
	matte      *typed.SrgbU8
	palette    *palette.Palette
	outSpace   space.ID
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.Resize {
		c.resizeOpts = imaging.ResizeOptions{Width: c.Width, Height: c.Height, Crop: c.Crop}
		if (!c.Crop) && (c.Fill != "") {
			fill, err := typed.ParseHex(c.Fill)
			if err != nil {
				return fmt.Errorf("invalid fill color: %w", err)
			}
			c.resizeOpts.Fill = &fill
		}
		if err := c.resizeOpts.Validate(); err != nil {
			return err
		}
	}

	if c.Matte != "" {
		m, err := typed.ParseHex(c.Matte)
		if err != nil {
			return fmt.Errorf("invalid matte color: %w", err)
		}
		c.matte = &typed.SrgbU8{m[0], m[1], m[2]}
	}

	if c.Palette != "" {
		if c.palette, err = palette.LoadPalette(c.Palette); err != nil {
			return err
		}
	}

	if c.outSpace, err = space.Parse(c.Space); err != nil {
		return err
	}

	return nil
}

// operator returns the tonemapper for this run, nil when tonemapping is
// off.
func (c *CLICmd) operator(cfg config.Tonemap) (tonemap.Operator, float64, error) {
	if !c.Tonemap {
		return nil, 0, nil
	}
	if c.Operator != "" {
		cfg.Operator = c.Operator
	}
	op, err := cfg.New()
	if err != nil {
		return nil, 0, err
	}
	return op, cfg.Exposure + c.Exposure, nil
}

func (c *CLICmd) Run(pool *parallel.Pool, cfg config.Config, logger *slog.Logger) error {
	op, stops, err := c.operator(cfg.Tonemap)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var (
		processedCount, errCount atomic.Uint64
		jobs                     sync.WaitGroup
	)
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		jobs.Add(1)
		pool.Do(func() {
			defer jobs.Done()

			filePath := filepath.Join(c.Scan, file.Name())
			fileLog := logger.With("file", filePath)
			if err := c.grade(fileLog, pool, op, stops, filePath, file.Name()); err != nil {
				errCount.Add(1)
				fileLog.Error("could not grade image", "error", err)
				return
			}
			processedCount.Add(1)
		})
	}

	jobs.Wait()
	pool.Wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	logger.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) grade(logger *slog.Logger, pool *parallel.Pool, op tonemap.Operator, stops float64, filePath, fileName string) error {
	imgFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open image: %w", err)
	}
	defer imgFile.Close()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	lin := imaging.FromImage(img, pool)

	if c.Resize {
		if lin, err = imaging.Resize(logger, lin, c.resizeOpts, pool); err != nil {
			return fmt.Errorf("could not resize image: %w", err)
		}
	}

	if op != nil {
		logger.Info("tonemapping", "stops", stops, "space", op.Space())
		imaging.Tonemap(lin, stops, op, pool)
	}

	if c.matte != nil {
		lin = imaging.Matte(lin, *c.matte, pool)
	}

	var out image.Image
	if c.palette != nil {
		palLog := logger.With("palette", c.Palette)
		if out, err = imaging.Quantize(palLog, lin, c.palette, c.Dither, pool); err != nil {
			return fmt.Errorf("could not change image palette: %w", err)
		}
	} else if out, err = imaging.Encode(lin, c.outSpace, pool); err != nil {
		return fmt.Errorf("could not encode image: %w", err)
	}

	if err = save(out, imgType, c.Format, c.Dest, fileName); err != nil {
		return fmt.Errorf("could not save image in %q: %w", c.Dest, err)
	}
	return nil
}
