package swatch

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"colorkit/colorspace"
	"colorkit/contrast"
)

// Render draws one size x size tile per color, left to right. The bottom
// quarter of each tile shows the more readable of black and white text on
// it. Translucent colors are composed over white.
func Render(colors []colorspace.Color, size int) *image.NRGBA {
	if size < 4 {
		size = 4
	}

	// one pixel column per color, three rows of color and one of foreground
	src := image.NewNRGBA(image.Rect(0, 0, len(colors), 4))
	draw.Draw(src, src.Bounds(), image.White, image.Point{}, draw.Src)
	for i, c := range colors {
		col := image.Rect(i, 0, i+1, 3)
		draw.Draw(src, col, image.NewUniform(c), image.Point{}, draw.Over)
		src.Set(i, 3, contrast.Foreground(c))
	}

	dst := image.NewNRGBA(image.Rect(0, 0, len(colors)*size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Paletted converts img to the colors of pal, optionally with Floyd-Steinberg
// error diffusion.
func Paletted(img image.Image, pal color.Palette, dither bool) *image.Paletted {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())
	dest := image.NewPaletted(dr, pal)

	if dither {
		draw.FloydSteinberg.Draw(dest, dr, img, sr.Min)
	} else {
		draw.Draw(dest, dr, img, sr.Min, draw.Src)
	}
	return dest
}
