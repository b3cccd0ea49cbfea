// Package colorspace implements the supported color encodings, the numeric
// conversions between them and their textual notations.
package colorspace

import (
	"fmt"
	"image/color"
	"strings"
)

type Space int

const (
	SpaceRGB Space = iota
	SpaceRGBA
	SpaceHex
	SpaceHSL
	SpaceHSLA
	SpaceHSB
	SpaceCMYK
	SpaceLab
	SpaceXYZ
)

var spaceNames = [...]string{
	SpaceRGB:  "rgb",
	SpaceRGBA: "rgba",
	SpaceHex:  "hex",
	SpaceHSL:  "hsl",
	SpaceHSLA: "hsla",
	SpaceHSB:  "hsb",
	SpaceCMYK: "cmyk",
	SpaceLab:  "CIELab",
	SpaceXYZ:  "xyz",
}

// Spaces lists every space in parsing priority order.
var Spaces = []Space{SpaceHex, SpaceRGB, SpaceRGBA, SpaceHSL, SpaceHSLA, SpaceHSB, SpaceCMYK, SpaceLab, SpaceXYZ}

func (s Space) String() string {
	if s < 0 || int(s) >= len(spaceNames) {
		return fmt.Sprintf("Space(%d)", int(s))
	}
	return spaceNames[s]
}

// ParseSpace resolves a space name case-insensitively. "hsv" and "lab" are
// accepted as aliases.
func ParseSpace(name string) (Space, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "hsv":
		return SpaceHSB, nil
	case "lab", "cielab":
		return SpaceLab, nil
	}
	for i, n := range spaceNames {
		if strings.EqualFold(n, name) {
			return Space(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color space %q", name)
}

// Color is one of the value types of this package: RGB, RGBA, Hex, HSL,
// HSLA, HSB, CMYK, Lab or XYZ. The set is closed.
type Color interface {
	color.Color
	fmt.Stringer

	Space() Space

	ToRGB() RGB
	ToRGBA() RGBA
	ToHex() Hex
	ToHSL() HSL
	ToHSLA() HSLA
	ToHSB() HSB
	ToCMYK() CMYK
	ToLab() Lab
	ToXYZ() XYZ

	sealed()
}

var (
	_ Color = RGB{}
	_ Color = RGBA{}
	_ Color = Hex{}
	_ Color = HSL{}
	_ Color = HSLA{}
	_ Color = HSB{}
	_ Color = CMYK{}
	_ Color = Lab{}
	_ Color = XYZ{}
)

// Convert returns c expressed in the given space. Converting into the space
// c already is in returns an equal value.
func Convert(c Color, to Space) Color {
	switch to {
	case SpaceRGB:
		return c.ToRGB()
	case SpaceRGBA:
		return c.ToRGBA()
	case SpaceHex:
		return c.ToHex()
	case SpaceHSL:
		return c.ToHSL()
	case SpaceHSLA:
		return c.ToHSLA()
	case SpaceHSB:
		return c.ToHSB()
	case SpaceCMYK:
		return c.ToCMYK()
	case SpaceLab:
		return c.ToLab()
	case SpaceXYZ:
		return c.ToXYZ()
	}
	panic(fmt.Sprintf("colorspace: unknown target space %d", int(to)))
}
