package colorspace

import (
	"image/color"
	"strings"
)

// Hex is an sRGB color stored as lowercase two-digit hex strings per
// channel. The alpha channel defaults to "ff".
type Hex struct {
	red, green, blue, alpha string
}

func NewHex(red, green, blue string) (Hex, error) {
	return NewHexAlpha(red, green, blue, "ff")
}

func NewHexAlpha(red, green, blue, alpha string) (Hex, error) {
	for _, ch := range []struct{ name, value string }{
		{"red", red},
		{"green", green},
		{"blue", blue},
		{"alpha", alpha},
	} {
		if err := ValidateHexChannel(ch.value, ch.name); err != nil {
			return Hex{}, err
		}
	}
	return Hex{
		red:   strings.ToLower(red),
		green: strings.ToLower(green),
		blue:  strings.ToLower(blue),
		alpha: strings.ToLower(alpha),
	}, nil
}

func (c Hex) Red() string   { return c.red }
func (c Hex) Green() string { return c.green }
func (c Hex) Blue() string  { return c.blue }
func (c Hex) Alpha() string { return c.alpha }

// WithAlpha returns a copy of c with a different alpha channel.
func (c Hex) WithAlpha(alpha string) (Hex, error) {
	return NewHexAlpha(c.red, c.green, c.blue, alpha)
}

func (Hex) Space() Space { return SpaceHex }
func (Hex) sealed()      {}

func (c Hex) RGBA() (uint32, uint32, uint32, uint32) {
	return color.NRGBA{
		R: uint8(hexToRGB(c.red)),
		G: uint8(hexToRGB(c.green)),
		B: uint8(hexToRGB(c.blue)),
		A: uint8(hexToRGB(c.alpha)),
	}.RGBA()
}

// String renders #rrggbb, or #rrggbbaa when the color is not opaque.
func (c Hex) String() string {
	if c.alpha == "ff" {
		return "#" + c.red + c.green + c.blue
	}
	return "#" + c.red + c.green + c.blue + c.alpha
}

func (c Hex) ToRGB() RGB {
	return rgb(hexToRGB(c.red), hexToRGB(c.green), hexToRGB(c.blue))
}

func (c Hex) ToRGBA() RGBA {
	return RGBA{c.ToRGB(), hexToAlpha(c.alpha)}
}

func (c Hex) ToHex() Hex { return c }

func (c Hex) ToHSL() HSL { return c.ToRGB().ToHSL() }

func (c Hex) ToHSLA() HSLA {
	return HSLA{c.ToHSL(), hexToAlpha(c.alpha)}
}

func (c Hex) ToHSB() HSB   { return c.ToRGB().ToHSB() }
func (c Hex) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }
func (c Hex) ToLab() Lab   { return c.ToRGB().ToLab() }
func (c Hex) ToXYZ() XYZ   { return c.ToRGB().ToXYZ() }
