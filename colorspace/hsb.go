package colorspace

import "fmt"

// HSB is a hue, saturation, brightness color, also known as HSV.
type HSB struct {
	hue, saturation, brightness float64
}

func NewHSB(hue, saturation, brightness float64) (HSB, error) {
	if err := ValidateHSBChannel(hue, "hue"); err != nil {
		return HSB{}, err
	}
	if err := ValidateHSBChannel(saturation, "saturation"); err != nil {
		return HSB{}, err
	}
	if err := ValidateHSBChannel(brightness, "brightness"); err != nil {
		return HSB{}, err
	}
	return HSB{hue, saturation, brightness}, nil
}

func (c HSB) Hue() float64        { return c.hue }
func (c HSB) Saturation() float64 { return c.saturation }
func (c HSB) Brightness() float64 { return c.brightness }

func (HSB) Space() Space { return SpaceHSB }
func (HSB) sealed()      {}

func (c HSB) RGBA() (uint32, uint32, uint32, uint32) {
	return c.ToRGB().RGBA()
}

func (c HSB) String() string {
	return fmt.Sprintf("hsb(%s,%s%%,%s%%)", formatInt(c.hue), formatInt(c.saturation), formatInt(c.brightness))
}

func (c HSB) ToRGB() RGB {
	return rgb(hsbToRGB(c.hue, c.saturation, c.brightness))
}

func (c HSB) ToRGBA() RGBA { return c.ToRGB().ToRGBA() }
func (c HSB) ToHex() Hex   { return c.ToRGB().ToHex() }
func (c HSB) ToHSL() HSL   { return c.ToRGB().ToHSL() }
func (c HSB) ToHSLA() HSLA { return c.ToRGB().ToHSLA() }
func (c HSB) ToHSB() HSB   { return c }
func (c HSB) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }
func (c HSB) ToLab() Lab   { return c.ToRGB().ToLab() }
func (c HSB) ToXYZ() XYZ   { return c.ToRGB().ToXYZ() }
