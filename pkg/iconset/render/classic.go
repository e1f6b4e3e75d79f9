package render

import (
	"image"
	"image/color"
	"math"
)

func init() {
	Register(NewClassicGlyph())
}

// ClassicGlyph is the master-icon design: three downward broadcast arcs
// above a ringed dot, drawn on a transparent background so launcher
// tooling can layer it over its own backdrop.
type ClassicGlyph struct {
	BaseGlyph
}

// NewClassicGlyph creates the classic glyph
func NewClassicGlyph() *ClassicGlyph {
	return &ClassicGlyph{
		BaseGlyph: BaseGlyph{
			GlyphName: GlyphClassic,
			GlyphDesc: "broadcast arcs over a ringed dot, transparent background",
		},
	}
}

// Palette returns the classic feed orange for light mode and white for
// dark mode. The background stays transparent in both.
func (g *ClassicGlyph) Palette(scheme Scheme) Palette {
	if scheme == SchemeDark {
		return Palette{Icon: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	}
	return Palette{Icon: color.RGBA{R: 255, G: 126, B: 0, A: 255}}
}

// Draw renders the glyph. Radii divide the edge length by 2.5, 3.5 and
// 5 for the arcs, 12 for the dot and 8 for its ring; divisions floor so
// results line up across even and odd sizes.
func (g *ClassicGlyph) Draw(size int, pal Palette) (*image.RGBA, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	c := NewCanvas(size)
	if pal.Opaque() {
		c.Fill(pal.Background)
	}

	s := float64(size)
	center := float64(size / 2)

	arcWidth := float64(size / 30)
	for _, r := range []float64{math.Floor(s / 2.5), math.Floor(s / 3.5), float64(size / 5)} {
		c.StrokeArc(center, center, r, arcWidth, 45, 135, pal.Icon)
	}

	c.FillCircle(center, center, float64(size/12), pal.Icon)
	c.StrokeCircle(center, center, float64(size/8), float64(size/60), pal.Icon)

	return c.Image(), nil
}
