package isoviz

import (
	"math"

	"github.com/gogpu/gg"
)

// Arrowhead proportions in scene units.
const (
	headLength = 0.3
	headWidth  = 0.22
)

// Arrow is a straight arrow between two points, trimmed back from both by
// a buff gap so it does not touch the objects it connects.
type Arrow struct {
	visual
	from, to gg.Point
	buff     float64
}

// NewArrow creates an arrow from one point to another with the default
// stroke width and a standard gap at both ends.
func NewArrow(from, to gg.Point, c gg.RGBA, strokeWidth float64) *Arrow {
	v := newVisual(c)
	v.stroke = strokeWidth
	return &Arrow{visual: v, from: from, to: to, buff: BuffLoose * 0.6}
}

// SetBuff sets the gap left at both ends, in scene units.
func (a *Arrow) SetBuff(buff float64) { a.buff = math.Max(buff, 0) }

// Start and End return the trimmed endpoints after applying the buff.
func (a *Arrow) Start() gg.Point { s, _ := a.trimmed(); return s }
func (a *Arrow) End() gg.Point   { _, e := a.trimmed(); return e }

func (a *Arrow) trimmed() (gg.Point, gg.Point) {
	dir := a.to.Sub(a.from)
	length := dir.Length()
	if length <= 2*a.buff {
		mid := a.from.Lerp(a.to, 0.5)
		return mid, mid
	}
	unit := dir.Normalize()
	return a.from.Add(unit.Mul(a.buff)), a.to.Sub(unit.Mul(a.buff))
}

func (a *Arrow) Bounds() Rect {
	s, e := a.trimmed()
	return BoundsOf([]gg.Point{s, e})
}

func (a *Arrow) Shift(delta gg.Point) {
	a.from = a.from.Add(delta)
	a.to = a.to.Add(delta)
}

func (a *Arrow) Draw(dc *gg.Context, cam Camera) {
	s, e := a.trimmed()
	drawArrowPolyline(dc, cam, []gg.Point{s, e}, a.fraction, a.strokeColor(), a.stroke)
}

// CurvedArrow bends between its endpoints. Bend is the perpendicular
// offset of the control point in scene units; positive bends left of the
// travel direction. A bend of 0 degenerates to a straight arrow.
type CurvedArrow struct {
	visual
	from, to gg.Point
	bend     float64
	samples  int
}

// NewCurvedArrow creates a quadratic-arc arrow, used for self-maps and for
// edges that must dodge other objects.
func NewCurvedArrow(from, to gg.Point, bend float64, c gg.RGBA, strokeWidth float64) *CurvedArrow {
	v := newVisual(c)
	v.stroke = strokeWidth
	return &CurvedArrow{visual: v, from: from, to: to, bend: bend, samples: 48}
}

func (a *CurvedArrow) control() gg.Point {
	dir := a.to.Sub(a.from)
	perp := gg.Pt(-dir.Y, dir.X).Normalize()
	return a.from.Lerp(a.to, 0.5).Add(perp.Mul(a.bend))
}

// points samples the quadratic Bézier as a polyline.
func (a *CurvedArrow) points() []gg.Point {
	ctrl := a.control()
	pts := make([]gg.Point, a.samples+1)
	for i := range pts {
		t := float64(i) / float64(a.samples)
		p01 := a.from.Lerp(ctrl, t)
		p12 := ctrl.Lerp(a.to, t)
		pts[i] = p01.Lerp(p12, t)
	}
	return pts
}

func (a *CurvedArrow) Bounds() Rect { return BoundsOf(a.points()) }

func (a *CurvedArrow) Shift(delta gg.Point) {
	a.from = a.from.Add(delta)
	a.to = a.to.Add(delta)
}

func (a *CurvedArrow) Draw(dc *gg.Context, cam Camera) {
	drawArrowPolyline(dc, cam, a.points(), a.fraction, a.strokeColor(), a.stroke)
}

// drawArrowPolyline strokes the leading fraction of the polyline and caps
// it with a filled triangular head oriented along the final segment.
func drawArrowPolyline(dc *gg.Context, cam Camera, pts []gg.Point, fraction float64, col gg.RGBA, width float64) {
	if col.A == 0 || width <= 0 || len(pts) < 2 || fraction <= 0 {
		return
	}
	pts = partialPolyline(pts, fraction)
	if len(pts) < 2 {
		return
	}

	tip := pts[len(pts)-1]
	dir := tip.Sub(pts[len(pts)-2]).Normalize()
	if dir.Length() == 0 {
		dir = Right
	}
	// Shorten the shaft so it does not poke through the head.
	base := tip.Sub(dir.Mul(headLength))
	shaft := append(append([]gg.Point{}, pts[:len(pts)-1]...), base)
	strokePolyline(dc, cam, shaft, 1, col, width)

	perp := gg.Pt(-dir.Y, dir.X).Mul(headWidth / 2)
	for i, p := range []gg.Point{tip, base.Add(perp), base.Sub(perp)} {
		x, y := cam.ToPixel(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetColor(col)
	_ = dc.Fill()
	dc.ClearPath()
}
