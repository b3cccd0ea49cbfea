// Package factory parses color strings of any supported notation.
package factory

import (
	"context"
	"log/slog"

	"colorkit/colorspace"
	"colorkit/named"
)

type parser struct {
	name  string
	parse func(string) (colorspace.Color, error)
}

func spaceParser(s colorspace.Space) parser {
	return parser{
		name: s.String(),
		parse: func(text string) (colorspace.Color, error) {
			return colorspace.Parse(text, s)
		},
	}
}

// parsers in priority order, the first one to succeed wins.
var parsers = []parser{
	spaceParser(colorspace.SpaceHex),
	spaceParser(colorspace.SpaceRGB),
	spaceParser(colorspace.SpaceRGBA),
	spaceParser(colorspace.SpaceHSL),
	spaceParser(colorspace.SpaceHSLA),
	spaceParser(colorspace.SpaceHSB),
	spaceParser(colorspace.SpaceCMYK),
	spaceParser(colorspace.SpaceLab),
	spaceParser(colorspace.SpaceXYZ),
	{
		name: "named",
		parse: func(text string) (colorspace.Color, error) {
			c, err := named.Parse(text)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	},
}

// FromString returns the color of the first notation that accepts text.
// Named colors are returned as RGB. If no notation matches the error is a
// *colorspace.UnrecognizedError.
func FromString(text string) (colorspace.Color, error) {
	logger := Logger()
	debug := logger.Enabled(context.Background(), slog.LevelDebug)

	for _, p := range parsers {
		c, err := p.parse(text)
		if err == nil {
			return c, nil
		}
		if debug {
			logger.Debug("notation rejected", "notation", p.name, "text", text, "err", err)
		}
	}
	return nil, &colorspace.UnrecognizedError{Text: text}
}

// MustFromString is like FromString but panics on error.
func MustFromString(text string) colorspace.Color {
	c, err := FromString(text)
	if err != nil {
		panic(err)
	}
	return c
}
