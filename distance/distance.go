// Package distance measures perceptual color differences in CIELab.
package distance

import (
	"fmt"
	"math"
	"strings"

	"colorkit/colorspace"
	"colorkit/factory"
)

type Metric int

const (
	MetricCIE76 Metric = iota
	MetricCIE94
	MetricCIE94Textiles
	MetricCIEDE2000
)

var metricNames = [...]string{
	MetricCIE76:         "cie76",
	MetricCIE94:         "cie94",
	MetricCIE94Textiles: "cie94-textiles",
	MetricCIEDE2000:     "ciede2000",
}

// Metrics lists every metric.
var Metrics = []Metric{MetricCIE76, MetricCIE94, MetricCIE94Textiles, MetricCIEDE2000}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

func ParseMetric(name string) (Metric, error) {
	for i, n := range metricNames {
		if strings.EqualFold(n, name) {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("unknown distance metric %q", name)
}

// Between returns the distance of a and b under m.
func Between(a, b colorspace.Color, m Metric) float64 {
	return BetweenLab(a.ToLab(), b.ToLab(), m)
}

func BetweenLab(a, b colorspace.Lab, m Metric) float64 {
	switch m {
	case MetricCIE94:
		return CIE94Lab(a, b, false)
	case MetricCIE94Textiles:
		return CIE94Lab(a, b, true)
	case MetricCIEDE2000:
		return CIEDE2000Lab(a, b)
	}
	return CIE76Lab(a, b)
}

// BetweenStrings parses both colors with factory.FromString first.
func BetweenStrings(a, b string, m Metric) (float64, error) {
	ca, err := factory.FromString(a)
	if err != nil {
		return 0, err
	}
	cb, err := factory.FromString(b)
	if err != nil {
		return 0, err
	}
	return Between(ca, cb, m), nil
}

func CIE76(a, b colorspace.Color) float64 {
	return CIE76Lab(a.ToLab(), b.ToLab())
}

func CIE94(a, b colorspace.Color, textiles bool) float64 {
	return CIE94Lab(a.ToLab(), b.ToLab(), textiles)
}

func CIEDE2000(a, b colorspace.Color) float64 {
	return CIEDE2000Lab(a.ToLab(), b.ToLab())
}

// CIE76Lab is the euclidean distance clamped to [0,100]. Colors with the same
// textual form are exactly 0 apart.
func CIE76Lab(a, b colorspace.Lab) float64 {
	if a.String() == b.String() {
		return 0
	}

	dl := a.L() - b.L()
	da := a.A() - b.A()
	db := a.B() - b.B()

	return max(min(math.Sqrt(dl*dl+da*da+db*db), 100), 0)
}

// CIE94Lab weighs chroma and hue differences by the chroma of a, so it is
// not symmetric for colors of different chroma.
func CIE94Lab(a, b colorspace.Lab, textiles bool) float64 {
	kl, k1, k2 := 1.0, 0.045, 0.015
	if textiles {
		kl, k1, k2 = 2.0, 0.048, 0.014
	}

	dl := a.L() - b.L()
	da := a.A() - b.A()
	db := a.B() - b.B()

	c1 := math.Hypot(a.A(), a.B())
	c2 := math.Hypot(b.A(), b.B())
	dc := c1 - c2

	dh := da*da + db*db - dc*dc
	if dh < 0 {
		dh = 0
	} else {
		dh = math.Sqrt(dh)
	}

	sc := 1 + k1*c1
	sh := 1 + k2*c1

	i := sq(dl/kl) + sq(dc/sc) + sq(dh/sh)
	if i < 0 {
		return 0
	}
	return math.Sqrt(i)
}

// CIEDE2000Lab implements the CIE 2000 color difference with kL = kC = kH = 1.
func CIEDE2000Lab(a, b colorspace.Lab) float64 {
	l1, a1, b1 := a.L(), a.A(), a.B()
	l2, a2, b2 := b.L(), b.A(), b.B()

	avgLp := (l1 + l2) / 2
	c1 := math.Sqrt(a1*a1 + b1*b1)
	c2 := math.Sqrt(a2*a2 + b2*b2)
	avgC := (c1 + c2) / 2

	g := (1 - math.Sqrt(math.Pow(avgC, 7)/(math.Pow(avgC, 7)+pow25to7))) / 2
	a1p := a1 * (1 + g)
	a2p := a2 * (1 + g)
	c1p := math.Sqrt(a1p*a1p + b1*b1)
	c2p := math.Sqrt(a2p*a2p + b2*b2)
	avgCp := (c1p + c2p) / 2

	h1p := hueAngle(b1, a1p)
	h2p := hueAngle(b2, a2p)

	avgHp := (h1p + h2p) / 2
	if math.Abs(h1p-h2p) > 180 {
		avgHp = (h1p + h2p + 360) / 2
	}

	t := 1 - 0.17*math.Cos(deg2rad(avgHp-30)) + 0.24*math.Cos(deg2rad(2*avgHp)) +
		0.32*math.Cos(deg2rad(3*avgHp+6)) - 0.2*math.Cos(deg2rad(4*avgHp-63))

	dhp := h2p - h1p
	if math.Abs(dhp) > 180 {
		if h2p <= h1p {
			dhp += 360
		} else {
			dhp -= 360
		}
	}

	dLp := l2 - l1
	dCp := c2p - c1p
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(deg2rad(dhp)/2)

	sl := 1 + (0.015*sq(avgLp-50))/math.Sqrt(20+sq(avgLp-50))
	sc := 1 + 0.045*avgCp
	sh := 1 + 0.015*avgCp*t

	dro := 30 * math.Exp(-sq((avgHp-275)/25))
	rc := 2 * math.Sqrt(math.Pow(avgCp, 7)/(math.Pow(avgCp, 7)+pow25to7))
	rt := -rc * math.Sin(2*deg2rad(dro))

	return math.Sqrt(sq(dLp/sl) + sq(dCp/sc) + sq(dHp/sh) + rt*(dCp/sc)*(dHp/sh))
}

const pow25to7 = 6103515625 // 25^7

// hueAngle returns atan2(y, x) in degrees in [0,360).
func hueAngle(y, x float64) float64 {
	h := math.Atan2(y, x) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

func sq(x float64) float64 {
	return x * x
}
