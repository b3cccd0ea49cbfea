package colorspace

import (
	"errors"
	"fmt"
	"strconv"
)

// Error kinds. Every error returned by this package unwraps to exactly one
// of them.
var (
	ErrRGBChannelOutOfRange = errors.New("rgb channel out of range")
	ErrAlphaOutOfRange      = errors.New("alpha out of range")
	ErrHexInvalidLength     = errors.New("hex channel has invalid length")
	ErrHexInvalidCharacters = errors.New("hex channel contains invalid characters")
	ErrHSLOutOfRange        = errors.New("hsl value out of range")
	ErrHSBOutOfRange        = errors.New("hsb value out of range")
	ErrCMYKOutOfRange       = errors.New("cmyk value out of range")
	ErrLabOutOfRange        = errors.New("CIELab value out of range")
	ErrXYZOutOfRange        = errors.New("xyz value out of range")
	ErrMalformed            = errors.New("malformed color string")
	ErrUnrecognized         = errors.New("unrecognized color string")
)

// RangeError reports a numeric channel outside of its domain.
type RangeError struct {
	Kind     error
	Channel  string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s must be between %s and %s, got %s", e.Kind, e.Channel,
		formatNumber(e.Min), formatNumber(e.Max), formatNumber(e.Value))
}

func (e *RangeError) Unwrap() error {
	return e.Kind
}

// HexError reports a hex channel that is not exactly two hex digits.
type HexError struct {
	Kind    error
	Channel string
	Value   string
}

func (e *HexError) Error() string {
	if e.Kind == ErrHexInvalidLength {
		return fmt.Sprintf("%v: %s channel %q must contain exactly 2 characters, has %d", e.Kind, e.Channel,
			e.Value, len(e.Value))
	}
	return fmt.Sprintf("%v: %s channel %q may only contain 0-9 and a-f", e.Kind, e.Channel, e.Value)
}

func (e *HexError) Unwrap() error {
	return e.Kind
}

// MalformedError reports text that does not match the grammar of Space.
type MalformedError struct {
	Space Space
	Text  string
}

var examples = map[Space]string{
	SpaceRGB:  "rgb(0,0,255)",
	SpaceRGBA: "rgba(0,0,255,0.5)",
	SpaceHex:  "#aabbcc",
	SpaceHSL:  "hsl(300,10%,50%)",
	SpaceHSLA: "hsla(300,10%,50%,0.25)",
	SpaceHSB:  "hsb(300,10%,50%)",
	SpaceCMYK: "cmyk(100%,100%,100%,100%)",
	SpaceLab:  "CIELab(62.91,5.34,-57.73)",
	SpaceXYZ:  "xyz(31.3469,31.4749,99.0308)",
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s color string %q is malformed, expected something like %s", e.Space, e.Text,
		examples[e.Space])
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

// UnrecognizedError reports text that matches none of the known notations.
type UnrecognizedError struct {
	Text string
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("color string %q does not match any of the available notations", e.Text)
}

func (e *UnrecognizedError) Unwrap() error {
	return ErrUnrecognized
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
