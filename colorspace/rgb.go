package colorspace

import (
	"fmt"
	"image/color"
)

// RGB is an opaque sRGB color with 8-bit integer channels.
type RGB struct {
	red, green, blue int
}

func NewRGB(red, green, blue int) (RGB, error) {
	if err := ValidateRGBChannel(red, "red"); err != nil {
		return RGB{}, err
	}
	if err := ValidateRGBChannel(green, "green"); err != nil {
		return RGB{}, err
	}
	if err := ValidateRGBChannel(blue, "blue"); err != nil {
		return RGB{}, err
	}
	return RGB{red, green, blue}, nil
}

// rgb builds an RGB from channels the conversion engine guarantees to be in
// range.
func rgb(red, green, blue int) RGB {
	return RGB{red, green, blue}
}

func (c RGB) Red() int   { return c.red }
func (c RGB) Green() int { return c.green }
func (c RGB) Blue() int  { return c.blue }

func (RGB) Space() Space { return SpaceRGB }
func (RGB) sealed()      {}

func (c RGB) RGBA() (uint32, uint32, uint32, uint32) {
	return color.NRGBA{R: uint8(c.red), G: uint8(c.green), B: uint8(c.blue), A: 0xff}.RGBA()
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.red, c.green, c.blue)
}

func (c RGB) ToRGB() RGB { return c }

func (c RGB) ToRGBA() RGBA {
	return RGBA{c, 1}
}

func (c RGB) ToHex() Hex {
	return Hex{rgbToHex(c.red), rgbToHex(c.green), rgbToHex(c.blue), "ff"}
}

func (c RGB) ToHSL() HSL {
	h, s, l := rgbToHSL(c.red, c.green, c.blue)
	return HSL{h, s, l}
}

func (c RGB) ToHSLA() HSLA {
	return HSLA{c.ToHSL(), 1}
}

func (c RGB) ToHSB() HSB {
	h, s, b := rgbToHSB(c.red, c.green, c.blue)
	return HSB{h, s, b}
}

func (c RGB) ToCMYK() CMYK {
	cy, m, y, k := rgbToCMYK(c.red, c.green, c.blue)
	return CMYK{cy, m, y, k}
}

func (c RGB) ToLab() Lab {
	return c.ToXYZ().ToLab()
}

func (c RGB) ToXYZ() XYZ {
	x, y, z := rgbToXYZ(c.red, c.green, c.blue)
	return XYZ{x, y, z}
}

// Mix blends c with other, weight is the share of c in [0,1]. Channels are
// rounded to the nearest integer.
func (c RGB) Mix(other Color, weight float64) RGB {
	o := other.ToRGB()
	weight = clamp(weight, 0, 1)
	mix := func(a, b int) int {
		return int(round(weight*float64(a)+(1-weight)*float64(b), 0))
	}
	return rgb(mix(c.red, o.red), mix(c.green, o.green), mix(c.blue, o.blue))
}

// RGBA is an sRGB color with 8-bit integer channels and a straight alpha in
// [0,1].
type RGBA struct {
	rgb   RGB
	alpha float64
}

func NewRGBA(red, green, blue int, alpha float64) (RGBA, error) {
	c, err := NewRGB(red, green, blue)
	if err != nil {
		return RGBA{}, err
	}
	if err := ValidateAlpha(alpha); err != nil {
		return RGBA{}, err
	}
	return RGBA{c, alpha}, nil
}

func (c RGBA) Red() int       { return c.rgb.red }
func (c RGBA) Green() int     { return c.rgb.green }
func (c RGBA) Blue() int      { return c.rgb.blue }
func (c RGBA) Alpha() float64 { return c.alpha }

// WithAlpha returns a copy of c with a different alpha.
func (c RGBA) WithAlpha(alpha float64) (RGBA, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return RGBA{}, err
	}
	return RGBA{c.rgb, alpha}, nil
}

func (RGBA) Space() Space { return SpaceRGBA }
func (RGBA) sealed()      {}

func (c RGBA) RGBA() (uint32, uint32, uint32, uint32) {
	return color.NRGBA{
		R: uint8(c.rgb.red),
		G: uint8(c.rgb.green),
		B: uint8(c.rgb.blue),
		A: uint8(round(c.alpha*255, 0)),
	}.RGBA()
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.rgb.red, c.rgb.green, c.rgb.blue, round(c.alpha, 2))
}

func (c RGBA) ToRGB() RGB   { return c.rgb }
func (c RGBA) ToRGBA() RGBA { return c }

func (c RGBA) ToHex() Hex {
	h := c.rgb.ToHex()
	h.alpha = alphaToHex(c.alpha)
	return h
}

func (c RGBA) ToHSL() HSL { return c.rgb.ToHSL() }

func (c RGBA) ToHSLA() HSLA {
	return HSLA{c.rgb.ToHSL(), c.alpha}
}

func (c RGBA) ToHSB() HSB   { return c.rgb.ToHSB() }
func (c RGBA) ToCMYK() CMYK { return c.rgb.ToCMYK() }
func (c RGBA) ToLab() Lab   { return c.rgb.ToLab() }
func (c RGBA) ToXYZ() XYZ   { return c.rgb.ToXYZ() }
