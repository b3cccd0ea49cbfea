package swatch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"colorkit/colorspace"
	"colorkit/factory"
	"colorkit/palette"
)

type CLICmd struct {
	Colors  []string           `arg:"" optional:"" help:"Colors to render"`
	Palette string             `help:"Render the entries of a palette (${builtin_palettes}) or a PAL file in RIFF format after the colors"`
	Out     string             `short:"o" help:"Destination file. The extension is set from the format" default:"swatch"`
	Format  string             `help:"Output format" enum:"png,gif,jpeg,bmp,tiff" default:"png"`
	Size    int                `help:"Edge length of a tile in pixels" default:"64"`
	Reduce  string             `help:"Palette name or PAL file to reduce the image to" group:"palette"`
	Dither  bool               `help:"Apply dithering when reducing" default:"false" group:"palette"`
	Parsed  []colorspace.Color `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	c.Parsed = c.Parsed[:0]
	for _, text := range c.Colors {
		col, err := factory.FromString(text)
		if err != nil {
			return err
		}
		c.Parsed = append(c.Parsed, col)
	}

	if c.Palette != "" {
		pal, err := palette.Load(c.Palette)
		if err != nil {
			return err
		}
		for _, col := range pal {
			c.Parsed = append(c.Parsed, col)
		}
	}

	if len(c.Parsed) == 0 {
		return fmt.Errorf("no colors given")
	}

	if c.Size < 4 {
		return fmt.Errorf("invalid tile size: %d", c.Size)
	}

	if c.Reduce != "" {
		if _, err := palette.Load(c.Reduce); err != nil {
			return err
		}
	}

	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid destination %q: %w", c.Out, err)
	}
	c.Out = strings.TrimSuffix(out, filepath.Ext(out)) + "." + c.Format

	return nil
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("file", c.Out)

	img := Render(c.Parsed, c.Size)

	if c.Reduce != "" {
		pal, err := palette.Load(c.Reduce)
		if err != nil {
			return err
		}
		logger.Info("applying palette", "palette", c.Reduce, "colors", len(pal))
		if err := save(Paletted(img, pal.ColorPalette(), c.Dither), c.Format, c.Out); err != nil {
			return err
		}
	} else if err := save(img, c.Format, c.Out); err != nil {
		return err
	}

	logger.Info("saved swatch", "colors", len(c.Parsed), "format", c.Format)
	return nil
}
