package colorspace

import (
	"fmt"
	"strconv"
)

// HSL is a hue, saturation, lightness color. The hue is stored as given and
// only wrapped into [0,360) when converting, saturation and lightness are
// percentages.
type HSL struct {
	hue, saturation, lightness float64
}

func NewHSL(hue, saturation, lightness float64) (HSL, error) {
	if err := ValidateHSLChannel(hue, "hue"); err != nil {
		return HSL{}, err
	}
	if err := ValidateHSLChannel(saturation, "saturation"); err != nil {
		return HSL{}, err
	}
	if err := ValidateHSLChannel(lightness, "lightness"); err != nil {
		return HSL{}, err
	}
	return HSL{hue, saturation, lightness}, nil
}

func (c HSL) Hue() float64        { return c.hue }
func (c HSL) Saturation() float64 { return c.saturation }
func (c HSL) Lightness() float64  { return c.lightness }

func (HSL) Space() Space { return SpaceHSL }
func (HSL) sealed()      {}

func (c HSL) RGBA() (uint32, uint32, uint32, uint32) {
	return c.ToRGB().RGBA()
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s,%s%%,%s%%)", formatInt(c.hue), formatInt(c.saturation), formatInt(c.lightness))
}

func (c HSL) ToRGB() RGB {
	return rgb(hslToRGB(c.hue, c.saturation, c.lightness))
}

func (c HSL) ToRGBA() RGBA { return c.ToRGB().ToRGBA() }
func (c HSL) ToHex() Hex   { return c.ToRGB().ToHex() }
func (c HSL) ToHSL() HSL   { return c }
func (c HSL) ToHSLA() HSLA { return HSLA{c, 1} }
func (c HSL) ToHSB() HSB   { return c.ToRGB().ToHSB() }
func (c HSL) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }
func (c HSL) ToLab() Lab   { return c.ToRGB().ToLab() }
func (c HSL) ToXYZ() XYZ   { return c.ToRGB().ToXYZ() }

// HSLA is an HSL color with a straight alpha in [0,1].
type HSLA struct {
	hsl   HSL
	alpha float64
}

func NewHSLA(hue, saturation, lightness, alpha float64) (HSLA, error) {
	c, err := NewHSL(hue, saturation, lightness)
	if err != nil {
		return HSLA{}, err
	}
	if err := ValidateAlpha(alpha); err != nil {
		return HSLA{}, err
	}
	return HSLA{c, alpha}, nil
}

func (c HSLA) Hue() float64        { return c.hsl.hue }
func (c HSLA) Saturation() float64 { return c.hsl.saturation }
func (c HSLA) Lightness() float64  { return c.hsl.lightness }
func (c HSLA) Alpha() float64      { return c.alpha }

// WithAlpha returns a copy of c with a different alpha.
func (c HSLA) WithAlpha(alpha float64) (HSLA, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return HSLA{}, err
	}
	return HSLA{c.hsl, alpha}, nil
}

func (HSLA) Space() Space { return SpaceHSLA }
func (HSLA) sealed()      {}

func (c HSLA) RGBA() (uint32, uint32, uint32, uint32) {
	return c.ToRGBA().RGBA()
}

func (c HSLA) String() string {
	return fmt.Sprintf("hsla(%s,%s%%,%s%%,%s)", formatInt(c.hsl.hue), formatInt(c.hsl.saturation),
		formatInt(c.hsl.lightness), strconv.FormatFloat(round(c.alpha, 2), 'f', -1, 64))
}

func (c HSLA) ToRGB() RGB { return c.hsl.ToRGB() }

func (c HSLA) ToRGBA() RGBA {
	return RGBA{c.hsl.ToRGB(), c.alpha}
}

func (c HSLA) ToHex() Hex   { return c.ToRGBA().ToHex() }
func (c HSLA) ToHSL() HSL   { return c.hsl }
func (c HSLA) ToHSLA() HSLA { return c }
func (c HSLA) ToHSB() HSB   { return c.hsl.ToHSB() }
func (c HSLA) ToCMYK() CMYK { return c.hsl.ToCMYK() }
func (c HSLA) ToLab() Lab   { return c.hsl.ToLab() }
func (c HSLA) ToXYZ() XYZ   { return c.hsl.ToXYZ() }

// formatInt renders v rounded to a whole number, never as "-0".
func formatInt(v float64) string {
	r := round(v, 0)
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}
