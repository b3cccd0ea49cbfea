package colorspace

import "math"

// D65 reference white, also the upper bounds of the XYZ domain.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

func inRange(v, lo, hi float64) bool {
	// false for NaN
	return v >= lo && v <= hi
}

func ValidateRGBChannel(v int, channel string) error {
	if v < 0 || v > 255 {
		return &RangeError{Kind: ErrRGBChannelOutOfRange, Channel: channel, Value: float64(v), Min: 0, Max: 255}
	}
	return nil
}

func ValidateAlpha(v float64) error {
	if !inRange(v, 0, 1) {
		return &RangeError{Kind: ErrAlphaOutOfRange, Channel: "alpha", Value: v, Min: 0, Max: 1}
	}
	return nil
}

// ValidateHexChannel checks the length first, then the characters.
func ValidateHexChannel(v, channel string) error {
	if len(v) != 2 {
		return &HexError{Kind: ErrHexInvalidLength, Channel: channel, Value: v}
	}
	if !isHexDigit(v[0]) || !isHexDigit(v[1]) {
		return &HexError{Kind: ErrHexInvalidCharacters, Channel: channel, Value: v}
	}
	return nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// ValidateHSLChannel checks saturation and lightness against [0,100]. The
// hue is not range checked since it wraps, it only has to be finite.
func ValidateHSLChannel(v float64, channel string) error {
	if channel == "hue" {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &RangeError{Kind: ErrHSLOutOfRange, Channel: channel, Value: v,
				Min: math.Inf(-1), Max: math.Inf(1)}
		}
		return nil
	}
	if !inRange(v, 0, 100) {
		return &RangeError{Kind: ErrHSLOutOfRange, Channel: channel, Value: v, Min: 0, Max: 100}
	}
	return nil
}

func ValidateHSBChannel(v float64, channel string) error {
	hi := 100.0
	if channel == "hue" {
		hi = 360
	}
	if !inRange(v, 0, hi) {
		return &RangeError{Kind: ErrHSBOutOfRange, Channel: channel, Value: v, Min: 0, Max: hi}
	}
	return nil
}

func ValidateCMYKChannel(v float64, channel string) error {
	if !inRange(v, 0, 1) {
		return &RangeError{Kind: ErrCMYKOutOfRange, Channel: channel, Value: v, Min: 0, Max: 1}
	}
	return nil
}

// ValidateLabChannel checks l against [0,100] and a, b against [-110,110].
func ValidateLabChannel(v float64, channel string) error {
	lo, hi := -110.0, 110.0
	if channel == "l" {
		lo, hi = 0, 100
	}
	if !inRange(v, lo, hi) {
		return &RangeError{Kind: ErrLabOutOfRange, Channel: channel, Value: v, Min: lo, Max: hi}
	}
	return nil
}

// ValidateXYZChannel checks x, y and z against the D65 white point bounds.
func ValidateXYZChannel(v float64, channel string) error {
	var hi float64
	switch channel {
	case "x":
		hi = whiteX
	case "y":
		hi = whiteY
	default:
		hi = whiteZ
	}
	if !inRange(v, 0, hi) {
		return &RangeError{Kind: ErrXYZOutOfRange, Channel: channel, Value: v, Min: 0, Max: hi}
	}
	return nil
}
