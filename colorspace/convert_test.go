package colorspace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var allowUnexported = cmp.AllowUnexported(RGB{}, RGBA{}, Hex{}, HSL{}, HSLA{}, HSB{}, CMYK{}, Lab{}, XYZ{})

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestConvertLiterals(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"rgb to hex", must(NewRGB(55, 155, 255)).ToHex(), must(NewHex("37", "9b", "ff"))},
		{"rgb to lab", must(NewRGB(55, 155, 255)).ToLab(), must(NewLab(62.91, 5.34, -57.73))},
		{"rgb to xyz", must(NewRGB(55, 155, 255)).ToXYZ(), must(NewXYZ(31.3469, 31.4749, 99.0308))},
		{"hex to lab", must(NewHex("2d", "78", "c8")).ToLab(), must(NewLab(49.69, 5.17, -48.11))},
		{"hex aabbcc to lab", must(NewHex("aa", "bb", "cc")).ToLab(), must(NewLab(75.11, -2.29, -10.54))},
		{"hsl to rgb", must(NewHSL(55, 55, 67)).ToRGB(), must(NewRGB(217, 209, 125))},
		{"hsl to hex", must(NewHSL(55, 55, 67)).ToHex(), must(NewHex("d9", "d1", "7d"))},
		{"hsb to rgb", must(NewHSB(50, 50, 50)).ToRGB(), must(NewRGB(128, 117, 64))},
		{"hsb to hex", must(NewHSB(50, 50, 50)).ToHex(), must(NewHex("80", "75", "40"))},
		{"hsb to lab", must(NewHSB(50, 50, 50)).ToLab(), must(NewLab(49.11, -3.48, 30.6))},
		{"cmyk to hex", must(NewCMYK(0.17, 0.08, 0, 0.2)).ToHex(), must(NewHex("a9", "bb", "cc"))},
		{"cmyk to lab", must(NewCMYK(0.17, 0.08, 0, 0.2)).ToLab(), must(NewLab(75.04, -2.61, -10.65))},
		{"lab to xyz", must(NewLab(62.91, 5.34, -57.73)).ToXYZ(), must(NewXYZ(31.3514, 31.4791, 99.0395))},
		{"lab to rgb", must(NewLab(62.91, 5.34, -57.73)).ToRGB(), must(NewRGB(55, 155, 255))},
		{"xyz to lab", must(NewXYZ(31.3469, 31.4749, 99.0308)).ToLab(), must(NewLab(62.91, 5.34, -57.73))},
		{"xyz to rgb", must(NewXYZ(31.3469, 31.4749, 99.0308)).ToRGB(), must(NewRGB(55, 155, 255))},
		{"black to cmyk", must(NewRGB(0, 0, 0)).ToCMYK(), must(NewCMYK(0, 0, 0, 1))},
		{"white to cmyk", must(NewRGB(255, 255, 255)).ToCMYK(), must(NewCMYK(0, 0, 0, 0))},
		{"rgb to hsb", must(NewRGB(128, 117, 64)).ToHSB(), HSB{round(0.14, 2) * 360, 50, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := cmp.Diff(tt.want, tt.got, allowUnexported); d != "" {
				t.Errorf("conversion mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    [3]int
	}{
		{0, 20, 50, [3]int{153, 102, 102}},
		{360, 20, 50, [3]int{153, 102, 102}},
		{55, 0, 50, [3]int{128, 128, 128}},
		{55, 100, 50, [3]int{255, 234, 0}},
		{55, 50, 0, [3]int{0, 0, 0}},
		{55, 50, 100, [3]int{255, 255, 255}},
		{55, 15, 25, [3]int{73, 72, 54}},
		{95, 65, 25, [3]int{57, 105, 22}},
		{127, 35, 75, [3]int{169, 214, 174}},
		{200, 65, 75, [3]int{150, 205, 233}},
		{242, 35, 25, [3]int{43, 41, 86}},
		{319, 65, 25, [3]int{105, 22, 79}},
		{-1, 50, 50, [3]int{191, 64, 66}},
		{359, 50, 50, [3]int{191, 64, 66}},
	}

	for _, tt := range tests {
		c := must(NewHSL(tt.h, tt.s, tt.l))
		t.Run(c.String(), func(t *testing.T) {
			rgb := c.ToRGB()
			got := [3]int{rgb.Red(), rgb.Green(), rgb.Blue()}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHueWraparound(t *testing.T) {
	want := must(NewHSL(1, 50, 50)).ToRGB()
	for _, h := range []float64{361, -359, 721} {
		if got := must(NewHSL(h, 50, 50)).ToRGB(); got != want {
			t.Errorf("hsl(%v,50%%,50%%) = %v, want %v", h, got, want)
		}
	}

	// the stored hue is never normalized
	if got := must(NewHSL(-359, 50, 50)).Hue(); got != -359 {
		t.Errorf("hue = %v, want -359", got)
	}
}

func TestHexEdgeCases(t *testing.T) {
	tests := []struct {
		hex  string
		hsla string
	}{
		{"#ffc107", "hsla(45,100%,51%,1)"},
		{"#dc3545", "hsla(354,70%,54%,1)"},
		{"#532952", "hsla(301,34%,24%,1)"},
		{"#512952", "hsla(299,33%,24%,1)"},
		{"#faffff", "hsla(180,100%,99%,1)"},
		{"#feffff", "hsla(180,100%,100%,1)"},
		{"#fefeff", "hsla(240,100%,100%,1)"},
		{"#fefefd", "hsla(60,33%,99%,1)"},
		{"#040504", "hsla(120,11%,2%,1)"},
		{"#000000", "hsla(0,0%,0%,1)"},
		{"#808080", "hsla(0,0%,50%,1)"},
		{"#ffffff", "hsla(0,0%,100%,1)"},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			hex := must(ParseHex(tt.hex))
			if got := hex.ToHSLA().String(); got != tt.hsla {
				t.Errorf("ToHSLA() = %s, want %s", got, tt.hsla)
			}
			if got := hex.ToRGB().ToHex().String(); got != tt.hex {
				t.Errorf("round trip = %s, want %s", got, tt.hex)
			}
		})
	}

	if got := must(ParseHex("#ffc107")).ToRGB().String(); got != "rgb(255,193,7)" {
		t.Errorf("ToRGB() = %s", got)
	}
}

func TestRGBToHSL(t *testing.T) {
	got := must(NewRGB(217, 209, 125)).ToHSL()
	want := []float64{54.78260869565217, 54.76190476190476, 67.05882352941177}
	opt := cmpopts.EquateApprox(0, 1e-9)
	if d := cmp.Diff(want, []float64{got.Hue(), got.Saturation(), got.Lightness()}, opt); d != "" {
		t.Errorf("ToHSL() mismatch (-want +got):\n%s", d)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for v := range 256 {
		c := must(NewRGB(v, 255-v, v*7%256))
		if got := c.ToHex().ToRGB(); got != c {
			t.Fatalf("%v -> %v -> %v", c, c.ToHex(), got)
		}
	}
}

func TestConvertSameSpace(t *testing.T) {
	colors := []Color{
		must(NewRGB(55, 155, 255)),
		must(NewRGBA(55, 155, 255, 0.5)),
		must(NewHexAlpha("37", "9b", "ff", "80")),
		must(NewHSL(-1, 50, 50)),
		must(NewHSLA(55, 15, 25, 0.4)),
		must(NewHSB(55, 55, 67)),
		must(NewCMYK(0.5, 0.3, 0.2, 0.1)),
		must(NewLab(62.91, 5.34, -57.73)),
		must(NewXYZ(31.3469, 31.4749, 99.0308)),
	}

	for _, c := range colors {
		t.Run(c.Space().String(), func(t *testing.T) {
			if got := Convert(c, c.Space()); got != c {
				t.Errorf("Convert(%v, %v) = %v", c, c.Space(), got)
			}
			for _, s := range Spaces {
				if got := Convert(c, s).Space(); got != s {
					t.Errorf("Convert(%v, %v).Space() = %v", c, s, got)
				}
			}
		})
	}
}

func TestAlphaPropagation(t *testing.T) {
	rgba := must(NewRGBA(55, 155, 255, 0.5))

	hex := rgba.ToHex()
	if hex.Alpha() != "80" {
		t.Errorf("ToHex().Alpha() = %q, want 80", hex.Alpha())
	}
	if got := rgba.ToHSLA().Alpha(); got != 0.5 {
		t.Errorf("ToHSLA().Alpha() = %v, want 0.5", got)
	}
	if got := hex.ToRGBA().Alpha(); got != 128.0/255 {
		t.Errorf("hex ToRGBA().Alpha() = %v", got)
	}
	if got := must(NewHSLA(55, 15, 25, 0.25)).ToRGBA().Alpha(); got != 0.25 {
		t.Errorf("hsla ToRGBA().Alpha() = %v", got)
	}

	// opaque sources
	if got := must(NewLab(50, 0, 0)).ToRGBA().Alpha(); got != 1 {
		t.Errorf("lab ToRGBA().Alpha() = %v", got)
	}
	if got := must(NewCMYK(0, 0, 0, 0)).ToHex().Alpha(); got != "ff" {
		t.Errorf("cmyk ToHex().Alpha() = %q", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{must(NewRGB(55, 155, 255)), "rgb(55,155,255)"},
		{must(NewRGBA(55, 155, 255, 0.5)), "rgba(55,155,255,0.50)"},
		{must(NewRGBA(55, 155, 255, 0.125)), "rgba(55,155,255,0.13)"},
		{must(NewHex("37", "9B", "FF")), "#379bff"},
		{must(NewHexAlpha("37", "9b", "ff", "80")), "#379bff80"},
		{must(NewHSL(55, 15, 25)), "hsl(55,15%,25%)"},
		{must(NewHSL(54.5, 15.4, 25.6)), "hsl(55,15%,26%)"},
		{must(NewHSLA(55, 15, 25, 0.4)), "hsla(55,15%,25%,0.4)"},
		{must(NewHSLA(55, 15, 25, 1)), "hsla(55,15%,25%,1)"},
		{must(NewHSB(55, 15, 25)), "hsb(55,15%,25%)"},
		{must(NewCMYK(0.5, 0.3, 0.2, 0.1)), "cmyk(50%,30%,20%,10%)"},
		{must(NewLab(62.91, 5.34, -57.73)), "CIELab(62.91,5.34,-57.73)"},
		{must(NewXYZ(31.3469, 31.4749, 99.0308)), "xyz(31.3469,31.4749,99.0308)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMix(t *testing.T) {
	black := must(NewRGB(0, 0, 0))
	white := must(NewHex("ff", "ff", "ff"))

	tests := []struct {
		weight float64
		want   RGB
	}{
		{0, must(NewRGB(255, 255, 255))},
		{0.5, must(NewRGB(128, 128, 128))},
		{1, black},
		{2, black},
	}

	for _, tt := range tests {
		if got := black.Mix(white, tt.weight); got != tt.want {
			t.Errorf("Mix(%v) = %v, want %v", tt.weight, got, tt.want)
		}
	}
}
