package colorspace

import "fmt"

// Lab is a CIE 1976 L*a*b* color relative to the D65 white point.
type Lab struct {
	l, a, b float64
}

func NewLab(l, a, b float64) (Lab, error) {
	if err := ValidateLabChannel(l, "l"); err != nil {
		return Lab{}, err
	}
	if err := ValidateLabChannel(a, "a"); err != nil {
		return Lab{}, err
	}
	if err := ValidateLabChannel(b, "b"); err != nil {
		return Lab{}, err
	}
	return Lab{l, a, b}, nil
}

func (c Lab) L() float64 { return c.l }
func (c Lab) A() float64 { return c.a }
func (c Lab) B() float64 { return c.b }

func (Lab) Space() Space { return SpaceLab }
func (Lab) sealed()      {}

func (c Lab) RGBA() (uint32, uint32, uint32, uint32) {
	return c.ToRGB().RGBA()
}

func (c Lab) String() string {
	return fmt.Sprintf("CIELab(%s,%s,%s)", formatFloat(c.l), formatFloat(c.a), formatFloat(c.b))
}

func (c Lab) ToRGB() RGB { return c.ToXYZ().ToRGB() }

func (c Lab) ToRGBA() RGBA { return c.ToRGB().ToRGBA() }
func (c Lab) ToHex() Hex   { return c.ToRGB().ToHex() }
func (c Lab) ToHSL() HSL   { return c.ToRGB().ToHSL() }
func (c Lab) ToHSLA() HSLA { return c.ToRGB().ToHSLA() }
func (c Lab) ToHSB() HSB   { return c.ToRGB().ToHSB() }
func (c Lab) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }
func (c Lab) ToLab() Lab   { return c }

func (c Lab) ToXYZ() XYZ {
	x, y, z := labToXYZ(c.l, c.a, c.b)
	return XYZ{x, y, z}
}

// formatFloat renders v in its shortest exact form, never as "-0".
func formatFloat(v float64) string {
	if v == 0 {
		v = 0
	}
	return formatNumber(v)
}
