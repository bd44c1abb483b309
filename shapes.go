package isoviz

import (
	"math"

	"github.com/gogpu/gg"
)

// DefaultDotRadius is the standard marked-point radius in scene units.
const DefaultDotRadius = 0.08

// Dot marks a point, drawn as a small filled disc.
type Dot struct {
	visual
	pos    gg.Point
	radius float64
}

// NewDot creates a dot at p in the given color with the default radius.
func NewDot(p gg.Point, c gg.RGBA) *Dot {
	v := newVisual(c)
	v.fillOpacity = 1
	return &Dot{visual: v, pos: p, radius: DefaultDotRadius}
}

func (d *Dot) Radius() float64     { return d.radius }
func (d *Dot) SetRadius(r float64) { d.radius = math.Max(r, 0) }
func (d *Dot) Pos() gg.Point       { return d.pos }

func (d *Dot) Bounds() Rect {
	return RectAround(d.pos, 2*d.radius, 2*d.radius)
}

func (d *Dot) Shift(delta gg.Point) { d.pos = d.pos.Add(delta) }

func (d *Dot) Draw(dc *gg.Context, cam Camera) {
	if d.opacity == 0 || d.radius == 0 {
		return
	}
	x, y := cam.ToPixel(d.pos)
	dc.SetColor(d.fillColor())
	dc.DrawCircle(x, y, cam.Length(d.radius))
	_ = dc.Fill()
}

// Polygon is a stroked and optionally filled point chain. Closed polygons
// join the last point back to the first; open ones are plain polylines.
type Polygon struct {
	visual
	pts    []gg.Point
	closed bool
}

// NewPolygon creates a closed polygon through the given points.
func NewPolygon(pts []gg.Point, c gg.RGBA, strokeWidth float64) *Polygon {
	v := newVisual(c)
	v.stroke = strokeWidth
	return &Polygon{visual: v, pts: pts, closed: true}
}

// NewLine creates an open two-point polyline, used for graph edges.
func NewLine(from, to gg.Point, c gg.RGBA, strokeWidth float64) *Polygon {
	v := newVisual(c)
	v.stroke = strokeWidth
	return &Polygon{visual: v, pts: []gg.Point{from, to}}
}

// NewCircle approximates a circle as a closed 64-gon so it can morph into
// other polygons point-for-point.
func NewCircle(center gg.Point, r float64, c gg.RGBA, strokeWidth float64) *Polygon {
	return NewRegularPolygon(center, r, 64, -math.Pi/2, c, strokeWidth)
}

// NewSquare creates an axis-aligned square with the given side length.
func NewSquare(center gg.Point, side float64, c gg.RGBA, strokeWidth float64) *Polygon {
	h := side / 2
	pts := []gg.Point{
		center.Add(gg.Pt(-h, h)),
		center.Add(gg.Pt(h, h)),
		center.Add(gg.Pt(h, -h)),
		center.Add(gg.Pt(-h, -h)),
	}
	return NewPolygon(pts, c, strokeWidth)
}

// NewRegularPolygon creates a regular n-gon of circumradius r, with the
// first vertex at the given start angle.
func NewRegularPolygon(center gg.Point, r float64, n int, startAngle float64, c gg.RGBA, strokeWidth float64) *Polygon {
	pts := make([]gg.Point, n)
	for i := range pts {
		a := startAngle + float64(i)*2*math.Pi/float64(n)
		pts[i] = center.Add(gg.Pt(r*math.Cos(a), r*math.Sin(a)))
	}
	return NewPolygon(pts, c, strokeWidth)
}

// SetFillOpacity enables filling at the given alpha relative to the color.
func (p *Polygon) SetFillOpacity(o float64) { p.fillOpacity = clamp01(o) }

func (p *Polygon) Points() []gg.Point { return p.pts }

func (p *Polygon) SetPoints(pts []gg.Point) { p.pts = pts }

func (p *Polygon) Bounds() Rect { return BoundsOf(p.pts) }

func (p *Polygon) Shift(delta gg.Point) {
	for i := range p.pts {
		p.pts[i] = p.pts[i].Add(delta)
	}
}

func (p *Polygon) Draw(dc *gg.Context, cam Camera) {
	if p.opacity == 0 || len(p.pts) < 2 {
		return
	}
	pts := p.pts
	if p.closed && p.fraction >= 1 {
		pts = append(append([]gg.Point{}, pts...), pts[0])
	}
	if p.fillOpacity > 0 && p.fraction >= 1 {
		tracePath(dc, cam, pts)
		dc.ClosePath()
		dc.SetColor(p.fillColor())
		_ = dc.FillPreserve()
		dc.ClearPath()
	}
	strokePolyline(dc, cam, pts, p.fraction, p.strokeColor(), p.stroke)
}

// tracePath appends pts to the context's current path in pixel space.
func tracePath(dc *gg.Context, cam Camera, pts []gg.Point) {
	for i, p := range pts {
		x, y := cam.ToPixel(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
}

// strokePolyline strokes the leading fraction of a polyline. Fractional
// progress cuts mid-segment so Create animations advance smoothly.
func strokePolyline(dc *gg.Context, cam Camera, pts []gg.Point, fraction float64, col gg.RGBA, width float64) {
	if width <= 0 || col.A == 0 || len(pts) < 2 || fraction <= 0 {
		return
	}
	pts = partialPolyline(pts, fraction)
	if len(pts) < 2 {
		return
	}
	tracePath(dc, cam, pts)
	dc.SetColor(col)
	dc.SetLineWidth(cam.StrokePixels(width))
	_ = dc.Stroke()
	dc.ClearPath()
}

// partialPolyline returns the leading fraction of the polyline by arc
// length, interpolating the final point within its segment.
func partialPolyline(pts []gg.Point, fraction float64) []gg.Point {
	if fraction >= 1 {
		return pts
	}
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i].Distance(pts[i-1])
	}
	if total == 0 {
		return pts[:1]
	}
	remaining := total * clamp01(fraction)
	out := []gg.Point{pts[0]}
	for i := 1; i < len(pts); i++ {
		seg := pts[i].Distance(pts[i-1])
		if seg <= remaining {
			out = append(out, pts[i])
			remaining -= seg
			if remaining <= 1e-12 {
				break
			}
			continue
		}
		if seg > 0 {
			t := remaining / seg
			out = append(out, pts[i-1].Lerp(pts[i], t))
		}
		break
	}
	return out
}
