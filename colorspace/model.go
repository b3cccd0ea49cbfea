package colorspace

import "image/color"

// Models for use with the image and image/draw packages. Colors that are
// not already in the target space go through non-premultiplied 8-bit sRGB.
var (
	RGBModel  = Model(SpaceRGB)
	RGBAModel = Model(SpaceRGBA)
	HexModel  = Model(SpaceHex)
	HSLModel  = Model(SpaceHSL)
	HSLAModel = Model(SpaceHSLA)
	HSBModel  = Model(SpaceHSB)
	CMYKModel = Model(SpaceCMYK)
	LabModel  = Model(SpaceLab)
	XYZModel  = Model(SpaceXYZ)
)

func Model(s Space) color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return Convert(FromColor(c), s)
	})
}

// FromColor converts an arbitrary color.Color. Colors of this package are
// returned unchanged.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}

	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		rgb:   rgb(int(nc.R), int(nc.G), int(nc.B)),
		alpha: float64(nc.A) / 255,
	}
}
