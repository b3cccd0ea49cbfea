// Package contrast computes WCAG 2 relative luminance and contrast ratios.
package contrast

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"colorkit/colorspace"
	"colorkit/factory"
)

var (
	black = mustHex("00")
	white = mustHex("ff")
)

// Luminance returns the relative luminance of c in [0,1]. Alpha is ignored.
func Luminance(c colorspace.Color) float64 {
	rgb := c.ToRGB()
	return 0.2126*linear(rgb.Red()) + 0.7152*linear(rgb.Green()) + 0.0722*linear(rgb.Blue())
}

func linear(v int) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Ratio returns the contrast ratio of a and b rounded to two decimals. It is
// at least 1 and at most 21, the order of the arguments does not matter.
func Ratio(a, b colorspace.Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	lighter, darker := max(la, lb), min(la, lb)
	return scalar.Round((lighter+0.05)/(darker+0.05), 2)
}

// RatioStrings parses both colors with factory.FromString first.
func RatioStrings(a, b string) (float64, error) {
	ca, err := factory.FromString(a)
	if err != nil {
		return 0, err
	}
	cb, err := factory.FromString(b)
	if err != nil {
		return 0, err
	}
	return Ratio(ca, cb), nil
}

// Foreground returns black or white, whichever is more readable on c. Ties
// go to black.
func Foreground(c colorspace.Color) colorspace.Hex {
	if Ratio(c, white) > Ratio(c, black) {
		return white
	}
	return black
}

func mustHex(v string) colorspace.Hex {
	c, err := colorspace.NewHex(v, v, v)
	if err != nil {
		panic(err)
	}
	return c
}
