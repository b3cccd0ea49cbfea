package contrast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"colorkit/colorspace"
	"colorkit/factory"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"#ffffff", "#ffffff", 1},
		{"#ffffff", "#000000", 21},
		{"#000000", "#000000", 1},
		{"#faebd7", "#8a2be2", 5.09},
		{"#ff1493", "#cd5c5c", 1.09},
		{"#f0fff0", "#191970", 14.33},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			a := factory.MustFromString(tt.a)
			b := factory.MustFromString(tt.b)

			if got := Ratio(a, b); got != tt.want {
				t.Errorf("Ratio = %v, want %v", got, tt.want)
			}
			if got := Ratio(b, a); got != tt.want {
				t.Errorf("reversed Ratio = %v, want %v", got, tt.want)
			}
			if got := Ratio(a.ToRGBA(), b.ToHSL()); got != tt.want {
				t.Errorf("Ratio from other notations = %v, want %v", got, tt.want)
			}

			got, err := RatioStrings(tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("RatioStrings = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRatioBounds(t *testing.T) {
	colors := []string{"#000", "#fff", "peru", "hsl(200,65%,75%)", "cmyk(10%,20%,30%,40%)", "CIELab(30,20,-10)"}
	for _, a := range colors {
		for _, b := range colors {
			got, err := RatioStrings(a, b)
			if err != nil {
				t.Fatal(err)
			}
			if got < 1 || got > 21 {
				t.Errorf("RatioStrings(%s, %s) = %v", a, b, got)
			}
			if a == b && got != 1 {
				t.Errorf("RatioStrings(%s, %s) = %v, want 1", a, b, got)
			}
		}
	}

	if _, err := RatioStrings("#fff", "#ggg"); !errors.Is(err, colorspace.ErrUnrecognized) {
		t.Errorf("got %v", err)
	}
}

func TestLuminance(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-12)
	tests := []struct {
		text string
		want float64
	}{
		{"#000000", 0},
		{"#ffffff", 1},
		{"rgb(55,155,255)", 0.3147491451312096},
	}
	for _, tt := range tests {
		if d := cmp.Diff(tt.want, Luminance(factory.MustFromString(tt.text)), opt); d != "" {
			t.Errorf("Luminance(%s) mismatch (-want +got):\n%s", tt.text, d)
		}
	}
}

func TestForeground(t *testing.T) {
	tests := []struct {
		bg, want string
	}{
		{"#faebd7", "#000000"},
		{"#8a2be2", "#ffffff"},
		{"#191970", "#ffffff"},
		{"#ffff00", "#000000"},
		{"#808080", "#000000"},
		{"#767676", "#000000"},
		{"black", "#ffffff"},
	}
	for _, tt := range tests {
		if got := Foreground(factory.MustFromString(tt.bg)).String(); got != tt.want {
			t.Errorf("Foreground(%s) = %s, want %s", tt.bg, got, tt.want)
		}
	}
}
