package palette

import (
	"math"

	"colorkit/colorspace"
	"colorkit/distance"
)

// Lab is a palette converted to CIELab once, for repeated nearest color
// lookups.
type Lab struct {
	metric distance.Metric
	colors []colorspace.Lab
}

func NewLab(p Palette, m distance.Metric) *Lab {
	pal := &Lab{metric: m}
	pal.From(p)
	return pal
}

// From appends the entries of pal.
func (p *Lab) From(pal Palette) {
	for _, c := range pal {
		p.colors = append(p.colors, c.ToLab())
	}
}

func (p *Lab) Len() int {
	return len(p.colors)
}

// Index returns the position of the entry closest to c, the first one on
// ties. It returns -1 for an empty palette.
func (p *Lab) Index(c colorspace.Color) int {
	lc := c.ToLab()
	ret, best := -1, math.MaxFloat64
	for i, v := range p.colors {
		d := distance.BetweenLab(lc, v, p.metric)
		if d < best {
			if d == 0 {
				return i
			}
			ret, best = i, d
		}
	}
	return ret
}

// Index returns the position of the entry of p closest to c under m.
func (p Palette) Index(c colorspace.Color, m distance.Metric) int {
	return NewLab(p, m).Index(c)
}

// Nearest returns the entry of p closest to c under m.
func (p Palette) Nearest(c colorspace.Color, m distance.Metric) (colorspace.RGB, bool) {
	i := p.Index(c, m)
	if i < 0 {
		return colorspace.RGB{}, false
	}
	return p[i], true
}
