package colorspace

import "fmt"

// XYZ is a CIE 1931 tristimulus color scaled so that the D65 white has
// Y = 100.
type XYZ struct {
	x, y, z float64
}

func NewXYZ(x, y, z float64) (XYZ, error) {
	if err := ValidateXYZChannel(x, "x"); err != nil {
		return XYZ{}, err
	}
	if err := ValidateXYZChannel(y, "y"); err != nil {
		return XYZ{}, err
	}
	if err := ValidateXYZChannel(z, "z"); err != nil {
		return XYZ{}, err
	}
	return XYZ{x, y, z}, nil
}

func (c XYZ) X() float64 { return c.x }
func (c XYZ) Y() float64 { return c.y }
func (c XYZ) Z() float64 { return c.z }

func (XYZ) Space() Space { return SpaceXYZ }
func (XYZ) sealed()      {}

func (c XYZ) RGBA() (uint32, uint32, uint32, uint32) {
	return c.ToRGB().RGBA()
}

func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%s,%s,%s)", formatFloat(c.x), formatFloat(c.y), formatFloat(c.z))
}

func (c XYZ) ToRGB() RGB {
	return rgb(xyzToRGB(c.x, c.y, c.z))
}

func (c XYZ) ToRGBA() RGBA { return c.ToRGB().ToRGBA() }
func (c XYZ) ToHex() Hex   { return c.ToRGB().ToHex() }
func (c XYZ) ToHSL() HSL   { return c.ToRGB().ToHSL() }
func (c XYZ) ToHSLA() HSLA { return c.ToRGB().ToHSLA() }
func (c XYZ) ToHSB() HSB   { return c.ToRGB().ToHSB() }
func (c XYZ) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }

func (c XYZ) ToLab() Lab {
	l, a, b := xyzToLab(c.x, c.y, c.z)
	return Lab{l, a, b}
}

func (c XYZ) ToXYZ() XYZ { return c }
