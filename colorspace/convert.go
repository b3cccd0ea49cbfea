package colorspace

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// The functions in this file are the numeric core of the package. They work
// on plain channel values, the typed wrappers in the other files only add
// validation and dispatch. Rounding is always half away from zero.

func round(x float64, prec int) float64 {
	return scalar.Round(x, prec)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}

// normalizeHue maps any finite hue into [0, 360).
func normalizeHue(h float64) float64 {
	return math.Mod(math.Mod(h, 360)+360, 360)
}

// hslToRGB takes saturation and lightness in percent.
func hslToRGB(hue, saturation, lightness float64) (int, int, int) {
	h := normalizeHue(hue)
	s := saturation / 100
	l := lightness / 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h <= 60:
		r, g, b = c, x, 0
	case h <= 120:
		r, g, b = x, c, 0
	case h <= 180:
		r, g, b = 0, c, x
	case h <= 240:
		r, g, b = 0, x, c
	case h <= 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return int(round((r+m)*255, 0)), int(round((g+m)*255, 0)), int(round((b+m)*255, 0))
}

func rgbToHSL(red, green, blue int) (float64, float64, float64) {
	r := float64(red) / 255
	g := float64(green) / 255
	b := float64(blue) / 255

	cmax := max(r, g, b)
	cmin := min(r, g, b)
	delta := cmax - cmin

	var hue float64
	if delta != 0 {
		// later branches win when several channels share the maximum
		if r == cmax {
			hue = 60 * math.Mod((g-b)/delta, 6)
		}
		if g == cmax {
			hue = 60 * ((b-r)/delta + 2)
		}
		if b == cmax {
			hue = 60 * ((r-g)/delta + 4)
		}
		if hue < 0 {
			hue += 360
		}
	}

	lightness := (cmax + cmin) / 2

	var saturation float64
	if lightness > 0 && lightness < 1 {
		saturation = delta / (1 - math.Abs(2*lightness-1))
	}

	return hue, min(saturation, 1) * 100, min(lightness, 1) * 100
}

// hsbToRGB takes saturation and brightness in percent.
func hsbToRGB(hue, saturation, brightness float64) (int, int, int) {
	h := normalizeHue(hue) / 360
	s := saturation / 100
	v := brightness / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = v, v, v
	} else {
		h6 := h * 6
		i := math.Floor(h6)
		v1 := v * (1 - s)
		v2 := v * (1 - s*(h6-i))
		v3 := v * (1 - s*(1-(h6-i)))

		switch int(i) % 6 {
		case 0:
			r, g, b = v, v3, v1
		case 1:
			r, g, b = v2, v, v1
		case 2:
			r, g, b = v1, v, v3
		case 3:
			r, g, b = v1, v2, v
		case 4:
			r, g, b = v3, v1, v
		default:
			r, g, b = v, v1, v2
		}
	}

	return int(round(r*255, 0)), int(round(g*255, 0)), int(round(b*255, 0))
}

// rgbToHSB rounds hue, saturation and brightness to two decimals before
// scaling them, so its results are coarser than rgbToHSL.
func rgbToHSB(red, green, blue int) (float64, float64, float64) {
	r := float64(red) / 255
	g := float64(green) / 255
	b := float64(blue) / 255

	cmin := min(r, g, b)
	cmax := max(r, g, b)
	delta := cmax - cmin

	brightness := cmax
	var hue, saturation float64

	if delta != 0 {
		saturation = delta / cmax

		dR := ((cmax-r)/6 + delta/2) / delta
		dG := ((cmax-g)/6 + delta/2) / delta
		dB := ((cmax-b)/6 + delta/2) / delta

		switch cmax {
		case r:
			hue = dB - dG
		case g:
			hue = 1.0/3 + dR - dB
		default:
			hue = 2.0/3 + dG - dR
		}

		if hue < 0 {
			hue++
		}
		if hue > 1 {
			hue--
		}
	}

	return round(hue, 2) * 360, round(saturation, 2) * 100, round(brightness, 2) * 100
}

// cmykToRGB truncates towards zero, each channel is 255*(1-c)*(1-k).
func cmykToRGB(cyan, magenta, yellow, key float64) (int, int, int) {
	return int(255 * (1 - cyan) * (1 - key)),
		int(255 * (1 - magenta) * (1 - key)),
		int(255 * (1 - yellow) * (1 - key))
}

func rgbToCMYK(red, green, blue int) (float64, float64, float64, float64) {
	r := float64(red) / 255
	g := float64(green) / 255
	b := float64(blue) / 255

	key := 1 - max(r, g, b)
	if key == 1 {
		return 0, 0, 0, 1
	}
	keyNeg := 1 - key

	return (keyNeg - r) / keyNeg, (keyNeg - g) / keyNeg, (keyNeg - b) / keyNeg, key
}

func hexToRGB(hex string) int {
	return int(unhex(hex[0])<<4 | unhex(hex[1]))
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

const hexDigits = "0123456789abcdef"

func rgbToHex(v int) string {
	return string([]byte{hexDigits[v>>4&0xf], hexDigits[v&0xf]})
}

func alphaToHex(alpha float64) string {
	return rgbToHex(int(round(alpha*255, 0)))
}

func hexToAlpha(hex string) float64 {
	return float64(hexToRGB(hex)) / 255
}

// gammaDecode converts an sRGB channel in [0,1] to linear light.
func gammaDecode(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

func gammaEncode(c float64) float64 {
	if c > 0.0031308 {
		return 1.055*math.Pow(c, 1/2.4) - 0.055
	}
	return 12.92 * c
}

func rgbToXYZ(red, green, blue int) (float64, float64, float64) {
	r := gammaDecode(float64(red)/255) * 100
	g := gammaDecode(float64(green)/255) * 100
	b := gammaDecode(float64(blue)/255) * 100

	x := round(r*0.4124+g*0.3576+b*0.1805, 4)
	y := round(r*0.2126+g*0.7152+b*0.0722, 4)
	z := round(r*0.0193+g*0.1192+b*0.9505, 4)

	return min(x, whiteX), min(y, whiteY), min(z, whiteZ)
}

// xyzToRGB clamps to [0,255] and truncates towards zero.
func xyzToRGB(x, y, z float64) (int, int, int) {
	x /= 100
	y /= 100
	z /= 100

	r := x*3.2406 + y*-1.5372 + z*-0.4986
	g := x*-0.9689 + y*1.8758 + z*0.0415
	b := x*0.0557 + y*-0.2040 + z*1.0570

	return int(clamp(gammaEncode(r)*255, 0, 255)),
		int(clamp(gammaEncode(g)*255, 0, 255)),
		int(clamp(gammaEncode(b)*255, 0, 255))
}

const labEpsilon = 0.008856

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Pow(t, 1.0/3)
	}
	return 7.787*t + 16.0/116
}

func labFInv(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (t - 16.0/116) / 7.787
}

// xyzToLab clamps its result into the CIELab domain, which only matters for
// XYZ triples far outside of the sRGB gamut.
func xyzToLab(x, y, z float64) (float64, float64, float64) {
	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	var l float64
	if fy > labEpsilon {
		l = 116*fy - 16
	} else {
		l = 903.3 * fy
	}

	l = round(l, 2)
	a := round(500*(fx-fy), 2)
	b := round(200*(fy-fz), 2)

	return clamp(l, 0, 100), clamp(a, -110, 110), clamp(b, -110, 110)
}

// labToXYZ clamps to the XYZ domain on both ends. The lower bound is only
// reached for Lab values outside of the sRGB gamut.
func labToXYZ(l, a, b float64) (float64, float64, float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	x := round(whiteX*labFInv(fx), 4)
	y := round(whiteY*labFInv(fy), 4)
	z := round(whiteZ*labFInv(fz), 4)

	return clamp(x, 0, whiteX), clamp(y, 0, whiteY), clamp(z, 0, whiteZ)
}
