// Package palette holds ordered color lists, reads and writes them as RIFF
// PAL files and finds the closest entry for a color.
package palette

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"colorkit/colorspace"
	"colorkit/named"
)

type Palette []colorspace.RGB

// Builtin lists the names accepted by Load besides file paths.
var Builtin = []string{"bw", "gray16", "vga16", "web", "named"}

// Load returns a built-in palette, or reads every palette of a RIFF PAL file
// and concatenates them.
func Load(name string) (Palette, error) {
	switch strings.ToLower(name) {
	case "bw":
		return Palette{rgb(0x000000), rgb(0xffffff)}, nil
	case "gray16":
		return Gray(16), nil
	case "vga16":
		return VGA16(), nil
	case "web":
		return Web(), nil
	case "named":
		return FromNamed(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open palette %q: %w", name, err)
	}
	defer f.Close()

	pals, err := ReadRIFF(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", name, err)
	}

	var res Palette
	for _, pal := range pals {
		res = append(res, pal...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", name)
	}
	return res, nil
}

// FromNamed returns the CSS named colors in lexical order of their names.
func FromNamed() Palette {
	names := named.Names()
	res := make(Palette, len(names))
	for i, name := range names {
		res[i], _ = named.Lookup(name)
	}
	return res
}

// Gray returns n evenly spaced grays from black to white.
func Gray(n int) Palette {
	if n < 2 {
		n = 2
	}
	res := make(Palette, n)
	for i := range res {
		v := uint32(i * 255 / (n - 1))
		res[i] = rgb(v<<16 | v<<8 | v)
	}
	return res
}

// Web returns the 216 colors of the 6x6x6 web safe cube.
func Web() Palette {
	res := make(Palette, 0, 216)
	for r := uint32(0); r < 6; r++ {
		for g := uint32(0); g < 6; g++ {
			for b := uint32(0); b < 6; b++ {
				res = append(res, rgb(r*0x33<<16|g*0x33<<8|b*0x33))
			}
		}
	}
	return res
}

func VGA16() Palette {
	return Palette{
		rgb(0x000000), rgb(0x0000aa), rgb(0x00aa00), rgb(0x00aaaa),
		rgb(0xaa0000), rgb(0xaa00aa), rgb(0xaa5500), rgb(0xaaaaaa),
		rgb(0x555555), rgb(0x5555ff), rgb(0x55ff55), rgb(0x55ffff),
		rgb(0xff5555), rgb(0xff55ff), rgb(0xffff55), rgb(0xffffff),
	}
}

// ColorPalette returns p for use with image.Paletted.
func (p Palette) ColorPalette() color.Palette {
	res := make(color.Palette, len(p))
	for i, c := range p {
		res[i] = c
	}
	return res
}

func rgb(v uint32) colorspace.RGB {
	c, err := colorspace.NewRGB(int(v>>16&0xff), int(v>>8&0xff), int(v&0xff))
	if err != nil {
		panic(err)
	}
	return c
}
