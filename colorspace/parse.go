package colorspace

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	intField     = `(\d{1,3})`
	alphaField   = `(\d(?:\.\d{1,3})?|\.\d{1,3})`
	hueField     = `([-+]?\d{1,9})`
	percentField = `(\d{1,3}(?:\.\d+)?)%?`
	decimalField = `([-+]?(?:\d+(?:\.\d*)?|\.\d+))`
)

// grammar builds a case-insensitive pattern for keyword(field,...) that may
// be surrounded by whitespace but nothing else.
func grammar(keyword string, fields ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\s*` + keyword + `\s*\(\s*` + strings.Join(fields, `\s*,\s*`) + `\s*\)\s*$`)
}

var (
	rgbGrammar  = grammar("rgb", intField, intField, intField)
	rgbaGrammar = grammar("rgba", intField, intField, intField, alphaField)
	hexGrammar  = regexp.MustCompile(`(?i)^\s*#([0-9a-f]{3}|[0-9a-f]{4}|[0-9a-f]{6}|[0-9a-f]{8})\s*$`)
	hslGrammar  = grammar("hsl", hueField, percentField, percentField)
	hslaGrammar = grammar("hsla", hueField, percentField, percentField, alphaField)
	hsbGrammar  = grammar("hs[bv]", hueField, percentField, percentField)
	cmykGrammar = grammar("cmyk", percentField, percentField, percentField, percentField)
	labGrammar  = grammar("cielab", decimalField, decimalField, decimalField)
	xyzGrammar  = grammar("xyz", decimalField, decimalField, decimalField)
)

// Parse reads text in the notation of the given space.
func Parse(text string, s Space) (Color, error) {
	switch s {
	case SpaceRGB:
		return wrap(ParseRGB(text))
	case SpaceRGBA:
		return wrap(ParseRGBA(text))
	case SpaceHex:
		return wrap(ParseHex(text))
	case SpaceHSL:
		return wrap(ParseHSL(text))
	case SpaceHSLA:
		return wrap(ParseHSLA(text))
	case SpaceHSB:
		return wrap(ParseHSB(text))
	case SpaceCMYK:
		return wrap(ParseCMYK(text))
	case SpaceLab:
		return wrap(ParseLab(text))
	case SpaceXYZ:
		return wrap(ParseXYZ(text))
	}
	return nil, &MalformedError{Space: s, Text: text}
}

// wrap keeps a failed parse from turning into a non-nil Color holding a zero
// value.
func wrap[T Color](c T, err error) (Color, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

// match returns the captured fields of text, or nil.
func match(re *regexp.Regexp, text string) []string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return m[1:]
}

func parseFloats(fields []string) ([]float64, bool) {
	res := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		res[i] = v
	}
	return res, true
}

func ParseRGB(text string) (RGB, error) {
	m := match(rgbGrammar, text)
	if m == nil {
		return RGB{}, &MalformedError{Space: SpaceRGB, Text: text}
	}
	r, _ := strconv.Atoi(m[0])
	g, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	return NewRGB(r, g, b)
}

func ParseRGBA(text string) (RGBA, error) {
	m := match(rgbaGrammar, text)
	if m == nil {
		return RGBA{}, &MalformedError{Space: SpaceRGBA, Text: text}
	}
	r, _ := strconv.Atoi(m[0])
	g, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	alpha, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return RGBA{}, &MalformedError{Space: SpaceRGBA, Text: text}
	}
	return NewRGBA(r, g, b, alpha)
}

// ParseHex reads #rgb, #rgba, #rrggbb and #rrggbbaa. Short forms repeat each
// digit, forms without alpha are opaque.
func ParseHex(text string) (Hex, error) {
	m := match(hexGrammar, text)
	if m == nil {
		return Hex{}, &MalformedError{Space: SpaceHex, Text: text}
	}

	digits := m[0]
	if len(digits) <= 4 {
		var sb strings.Builder
		for i := range len(digits) {
			sb.WriteByte(digits[i])
			sb.WriteByte(digits[i])
		}
		digits = sb.String()
	}
	if len(digits) == 6 {
		digits += "ff"
	}

	return NewHexAlpha(digits[0:2], digits[2:4], digits[4:6], digits[6:8])
}

func ParseHSL(text string) (HSL, error) {
	v, ok := parseFloats(match(hslGrammar, text))
	if !ok || len(v) != 3 {
		return HSL{}, &MalformedError{Space: SpaceHSL, Text: text}
	}
	return NewHSL(v[0], v[1], v[2])
}

func ParseHSLA(text string) (HSLA, error) {
	v, ok := parseFloats(match(hslaGrammar, text))
	if !ok || len(v) != 4 {
		return HSLA{}, &MalformedError{Space: SpaceHSLA, Text: text}
	}
	return NewHSLA(v[0], v[1], v[2], v[3])
}

// ParseHSB accepts both the hsb and the hsv keyword.
func ParseHSB(text string) (HSB, error) {
	v, ok := parseFloats(match(hsbGrammar, text))
	if !ok || len(v) != 3 {
		return HSB{}, &MalformedError{Space: SpaceHSB, Text: text}
	}
	return NewHSB(v[0], v[1], v[2])
}

// ParseCMYK reads percentages, the stored channels are fractions.
func ParseCMYK(text string) (CMYK, error) {
	v, ok := parseFloats(match(cmykGrammar, text))
	if !ok || len(v) != 4 {
		return CMYK{}, &MalformedError{Space: SpaceCMYK, Text: text}
	}
	return NewCMYK(v[0]/100, v[1]/100, v[2]/100, v[3]/100)
}

func ParseLab(text string) (Lab, error) {
	v, ok := parseFloats(match(labGrammar, text))
	if !ok || len(v) != 3 {
		return Lab{}, &MalformedError{Space: SpaceLab, Text: text}
	}
	return NewLab(v[0], v[1], v[2])
}

func ParseXYZ(text string) (XYZ, error) {
	v, ok := parseFloats(match(xyzGrammar, text))
	if !ok || len(v) != 3 {
		return XYZ{}, &MalformedError{Space: SpaceXYZ, Text: text}
	}
	return NewXYZ(v[0], v[1], v[2])
}
