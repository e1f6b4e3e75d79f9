package render

import (
	"image"
	"image/color"
)

func init() {
	Register(NewBookGlyph())
}

// BookGlyph draws an open book: two page panels with curved edges
// meeting at a center spine gap, resting on a baseline bar.
type BookGlyph struct {
	BaseGlyph
}

// NewBookGlyph creates the book glyph
func NewBookGlyph() *BookGlyph {
	return &BookGlyph{
		BaseGlyph: BaseGlyph{
			GlyphName: GlyphBook,
			GlyphDesc: "open book with curved pages on a solid background",
		},
	}
}

// Palette matches the feed glyph so the two designs swap cleanly
func (g *BookGlyph) Palette(scheme Scheme) Palette {
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

// Draw renders the glyph. Pages span 32% of the edge length each side
// of center with a 1.5% spine gap; the baseline bar sits 30% below
// center.
func (g *BookGlyph) Draw(size int, pal Palette) (*image.RGBA, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	c := NewCanvas(size)
	if pal.Opaque() {
		c.Fill(pal.Background)
	}

	s := float64(size)
	cx, cy := s/2, s/2
	gap := s * 0.015

	// Left page, outer top corner pulled down for the opened-page curve
	left := &Path{}
	left.MoveTo(cx-gap, cy-s*0.22)
	left.QuadTo(cx-s*0.18, cy-s*0.30, cx-s*0.32, cy-s*0.24)
	left.LineTo(cx-s*0.32, cy+s*0.20)
	left.QuadTo(cx-s*0.16, cy+s*0.14, cx-gap, cy+s*0.24)
	left.Close()
	c.FillPath(left, pal.Icon)

	// Right page mirrored
	right := &Path{}
	right.MoveTo(cx+gap, cy-s*0.22)
	right.QuadTo(cx+s*0.18, cy-s*0.30, cx+s*0.32, cy-s*0.24)
	right.LineTo(cx+s*0.32, cy+s*0.20)
	right.QuadTo(cx+s*0.16, cy+s*0.14, cx+gap, cy+s*0.24)
	right.Close()
	c.FillPath(right, pal.Icon)

	c.FillRect(cx-s*0.36, cy+s*0.30, cx+s*0.36, cy+s*0.34, pal.Icon)

	return c.Image(), nil
}
