package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Canvas is a square RGBA pixel buffer with anti-aliased fill
// primitives layered over golang.org/x/image/vector.
//
// Angles are degrees measured from 3 o'clock, increasing clockwise in
// raster coordinates (y grows downward). Stroked arcs and rings thicken
// inward from the given radius.
type Canvas struct {
	img  *image.RGBA
	size int
}

// NewCanvas allocates a transparent size x size canvas
func NewCanvas(size int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, size, size)),
		size: size,
	}
}

// Image returns the backing pixel buffer
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Fill paints the whole canvas with a single color
func (c *Canvas) Fill(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect fills the axis-aligned rectangle spanning (x0,y0)-(x1,y1)
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col color.RGBA) {
	p := &Path{}
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
	c.FillPath(p, col)
}

// FillCircle fills a disc centered at (cx,cy)
func (c *Canvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	n := arcSteps(r, 2*math.Pi)
	p := &Path{}
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x := cx + r*math.Cos(theta)
		y := cy + r*math.Sin(theta)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	c.FillPath(p, col)
}

// StrokeArc draws the arc of radius r from startDeg to endDeg with the
// stroke extending width pixels inward. Sweeps wrap forward when endDeg
// is behind startDeg. A width at or beyond r degenerates to a filled
// sector instead of panicking.
func (c *Canvas) StrokeArc(cx, cy, r, width, startDeg, endDeg float64, col color.RGBA) {
	if r <= 0 || width <= 0 {
		return
	}
	if endDeg < startDeg {
		endDeg += 360
	}

	inner := r - width
	if inner < 0 {
		inner = 0
	}

	a0 := startDeg * math.Pi / 180
	a1 := endDeg * math.Pi / 180
	n := arcSteps(r, a1-a0)

	p := &Path{}
	for i := 0; i <= n; i++ {
		theta := a0 + (a1-a0)*float64(i)/float64(n)
		x := cx + r*math.Cos(theta)
		y := cy + r*math.Sin(theta)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	for i := n; i >= 0; i-- {
		theta := a0 + (a1-a0)*float64(i)/float64(n)
		p.LineTo(cx+inner*math.Cos(theta), cy+inner*math.Sin(theta))
	}
	p.Close()
	c.FillPath(p, col)
}

// StrokeCircle draws a full ring, stroke extending inward from r
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.RGBA) {
	c.StrokeArc(cx, cy, r, width, 0, 360, col)
}

// FillPath rasterizes a closed path onto the canvas
func (c *Canvas) FillPath(p *Path, col color.RGBA) {
	if col.A == 0 || len(p.segs) == 0 {
		return
	}
	z := vector.NewRasterizer(c.size, c.size)
	for _, s := range p.segs {
		switch s.op {
		case segMove:
			z.MoveTo(s.args[0], s.args[1])
		case segLine:
			z.LineTo(s.args[0], s.args[1])
		case segQuad:
			z.QuadTo(s.args[0], s.args[1], s.args[2], s.args[3])
		case segClose:
			z.ClosePath()
		}
	}
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// arcSteps picks a segment count giving roughly 2px chords, floored so
// tiny radii still produce a recognizable polygon
func arcSteps(r, sweepRad float64) int {
	steps := int(math.Ceil(r * sweepRad / 2))
	if steps < 8 {
		steps = 8
	}
	return steps
}

// Path accumulates straight and quadratic segments for FillPath
type Path struct {
	segs []pathSeg
}

type pathSeg struct {
	op   uint8
	args [4]float32
}

const (
	segMove uint8 = iota
	segLine
	segQuad
	segClose
)

func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, pathSeg{op: segMove, args: [4]float32{float32(x), float32(y)}})
}

func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, pathSeg{op: segLine, args: [4]float32{float32(x), float32(y)}})
}

// QuadTo adds a quadratic Bezier through control point (cx,cy) to (x,y)
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.segs = append(p.segs, pathSeg{op: segQuad, args: [4]float32{float32(cx), float32(cy), float32(x), float32(y)}})
}

func (p *Path) Close() {
	p.segs = append(p.segs, pathSeg{op: segClose})
}
