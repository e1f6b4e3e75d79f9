package render

import (
	"image"
	"image/color"
	"math"
)

func init() {
	Register(NewFeedGlyph())
}

// FeedGlyph is the launcher icon: a source dot with three broadcast
// arcs sweeping from upper right around to upper left, on a solid
// background.
type FeedGlyph struct {
	BaseGlyph
}

// NewFeedGlyph creates the feed glyph
func NewFeedGlyph() *FeedGlyph {
	return &FeedGlyph{
		BaseGlyph: BaseGlyph{
			GlyphName: GlyphFeed,
			GlyphDesc: "feed dot with three broadcast arcs on a solid background",
		},
	}
}

// Palette returns material blue on white for light mode and white on
// near-black for dark mode
func (g *FeedGlyph) Palette(scheme Scheme) Palette {
	if scheme == SchemeDark {
		return Palette{
			Icon:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Background: color.RGBA{R: 30, G: 30, B: 30, A: 255},
		}
	}
	return Palette{
		Icon:       color.RGBA{R: 33, G: 150, B: 243, A: 255},
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Draw renders the glyph. Dot and arc radii scale at 8%, 15%, 25% and
// 35% of the edge length; the stroke is 6% with a 2px floor.
func (g *FeedGlyph) Draw(size int, pal Palette) (*image.RGBA, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	c := NewCanvas(size)
	if pal.Opaque() {
		c.Fill(pal.Background)
	}

	s := float64(size)
	cx, cy := s/2, s/2

	c.FillCircle(cx, cy, s*0.08, pal.Icon)

	width := math.Max(2, math.Trunc(s*0.06))
	for _, r := range []float64{s * 0.35, s * 0.25, s * 0.15} {
		c.StrokeArc(cx, cy, r, width, -45, 225, pal.Icon)
	}

	return c.Image(), nil
}
