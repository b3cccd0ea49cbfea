package colorspace

import "fmt"

// CMYK is a subtractive color with every channel in [0,1].
type CMYK struct {
	cyan, magenta, yellow, key float64
}

func NewCMYK(cyan, magenta, yellow, key float64) (CMYK, error) {
	for _, ch := range []struct {
		name  string
		value float64
	}{
		{"cyan", cyan},
		{"magenta", magenta},
		{"yellow", yellow},
		{"key", key},
	} {
		if err := ValidateCMYKChannel(ch.value, ch.name); err != nil {
			return CMYK{}, err
		}
	}
	return CMYK{cyan, magenta, yellow, key}, nil
}

func (c CMYK) Cyan() float64    { return c.cyan }
func (c CMYK) Magenta() float64 { return c.magenta }
func (c CMYK) Yellow() float64  { return c.yellow }
func (c CMYK) Key() float64     { return c.key }

// Black is an alias for Key.
func (c CMYK) Black() float64 { return c.key }

func (CMYK) Space() Space { return SpaceCMYK }
func (CMYK) sealed()      {}

func (c CMYK) RGBA() (uint32, uint32, uint32, uint32) {
	return c.ToRGB().RGBA()
}

func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%s%%,%s%%,%s%%,%s%%)", formatInt(c.cyan*100), formatInt(c.magenta*100),
		formatInt(c.yellow*100), formatInt(c.key*100))
}

func (c CMYK) ToRGB() RGB {
	return rgb(cmykToRGB(c.cyan, c.magenta, c.yellow, c.key))
}

func (c CMYK) ToRGBA() RGBA { return c.ToRGB().ToRGBA() }
func (c CMYK) ToHex() Hex   { return c.ToRGB().ToHex() }
func (c CMYK) ToHSL() HSL   { return c.ToRGB().ToHSL() }
func (c CMYK) ToHSLA() HSLA { return c.ToRGB().ToHSLA() }
func (c CMYK) ToHSB() HSB   { return c.ToRGB().ToHSB() }
func (c CMYK) ToCMYK() CMYK { return c }
func (c CMYK) ToLab() Lab   { return c.ToRGB().ToLab() }
func (c CMYK) ToXYZ() XYZ   { return c.ToRGB().ToXYZ() }
