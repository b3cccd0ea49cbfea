package factory

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"colorkit/colorspace"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		text  string
		space colorspace.Space
	}{
		{"#aabbcc", colorspace.SpaceHex},
		{"#abc", colorspace.SpaceHex},
		{"rgb(55,155,255)", colorspace.SpaceRGB},
		{"rgba(55,155,255,0.5)", colorspace.SpaceRGBA},
		{"hsl(127, 45%, 71%)", colorspace.SpaceHSL},
		{"hsla(127, 45%, 71%, 0.33)", colorspace.SpaceHSLA},
		{"hsb(205,35%,17%)", colorspace.SpaceHSB},
		{"hsv(205,35%,17%)", colorspace.SpaceHSB},
		{"cmyk(100%,50%,10%,25%)", colorspace.SpaceCMYK},
		{"CIELab(62.91,5.34,-57.73)", colorspace.SpaceLab},
		{"xyz(31.3469,31.4749,99.0308)", colorspace.SpaceXYZ},
		{"peru", colorspace.SpaceRGB},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c, err := FromString(tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if c.Space() != tt.space {
				t.Errorf("got %v, want %v", c.Space(), tt.space)
			}
		})
	}
}

func TestFromStringUnrecognized(t *testing.T) {
	for _, text := range []string{"abcd", "", "rgb(256,0,0)", "hsl(55,55%)", "pe ru"} {
		c, err := FromString(text)
		if c != nil {
			t.Errorf("FromString(%q) = %v", text, c)
		}
		if !errors.Is(err, colorspace.ErrUnrecognized) {
			t.Errorf("FromString(%q) error = %v", text, err)
		}
		var uerr *colorspace.UnrecognizedError
		if !errors.As(err, &uerr) || uerr.Text != text {
			t.Errorf("FromString(%q) error = %#v", text, err)
		}
		if errors.Is(err, colorspace.ErrMalformed) {
			t.Errorf("FromString(%q) leaked a per-notation error", text)
		}
	}
}

func TestFromStringFormats(t *testing.T) {
	tests := []struct {
		hex, rgb, hsla string
	}{
		{"#dc3545", "rgb(220,53,69)", "hsla(354,70%,54%,1)"},
		{"#532952", "rgb(83,41,82)", "hsla(301,34%,24%,1)"},
		{"#512952", "rgb(81,41,82)", "hsla(299,33%,24%,1)"},
		{"#faffff", "rgb(250,255,255)", "hsla(180,100%,99%,1)"},
		{"#feffff", "rgb(254,255,255)", "hsla(180,100%,100%,1)"},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			hex := MustFromString(tt.hex)
			rgb := MustFromString(tt.rgb)

			if got := hex.ToRGB().String(); got != tt.rgb {
				t.Errorf("hex to rgb = %s, want %s", got, tt.rgb)
			}
			if got := rgb.ToHex().String(); got != tt.hex {
				t.Errorf("rgb to hex = %s, want %s", got, tt.hex)
			}
			if got := hex.ToHSLA().String(); got != tt.hsla {
				t.Errorf("hex to hsla = %s, want %s", got, tt.hsla)
			}
			if got := rgb.ToHSLA().String(); got != tt.hsla {
				t.Errorf("rgb to hsla = %s, want %s", got, tt.hsla)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if _, err := FromString("rgb(55,155,255)"); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "notation=hex") {
		t.Errorf("missing hex rejection in %q", out)
	}
	if strings.Contains(out, "notation=rgb ") {
		t.Errorf("accepted notation was logged: %q", out)
	}

	SetLogger(nil)
	buf.Reset()
	_, _ = FromString("abcd")
	if buf.Len() != 0 {
		t.Errorf("discard logger wrote %q", buf.String())
	}
}
