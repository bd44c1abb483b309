package isoviz

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz/style"
)

// The visible frame in scene units. The origin is at the center, X grows
// right, Y grows up.
const (
	FrameWidth  = 14.0
	FrameHeight = 8.0
)

// Direction vectors for layout helpers.
var (
	Origin    = gg.Pt(0, 0)
	Up        = gg.Pt(0, 1)
	Down      = gg.Pt(0, -1)
	Left      = gg.Pt(-1, 0)
	Right     = gg.Pt(1, 0)
	UpLeft    = gg.Pt(-1, 1)
	UpRight   = gg.Pt(1, 1)
	DownLeft  = gg.Pt(-1, -1)
	DownRight = gg.Pt(1, -1)
)

// Standard gaps between objects, in scene units.
const (
	BuffTight   = 0.1
	BuffDefault = 0.25
	BuffLoose   = 0.5
	EdgeBuff    = 0.5 // gap between an object and the frame edge
)

// Rect is an axis-aligned box in scene units.
type Rect struct {
	Min, Max gg.Point
}

// RectAround returns the rect of the given width and height centered at c.
func RectAround(c gg.Point, w, h float64) Rect {
	half := gg.Pt(w/2, h/2)
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// BoundsOf returns the bounding box of a point slice. An empty slice yields
// the zero Rect.
func BoundsOf(pts []gg.Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

func (r Rect) Width() float64   { return r.Max.X - r.Min.X }
func (r Rect) Height() float64  { return r.Max.Y - r.Min.Y }
func (r Rect) Center() gg.Point { return r.Min.Add(r.Max).Mul(0.5) }

// Union returns the smallest rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: gg.Pt(math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)),
		Max: gg.Pt(math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)),
	}
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.Min.X >= r.Min.X && o.Min.Y >= r.Min.Y &&
		o.Max.X <= r.Max.X && o.Max.Y <= r.Max.Y
}

// Edge returns the point on the rect border in direction dir from the
// center: Edge(Up) is the top-center point, Edge(UpRight) the corner.
func (r Rect) Edge(dir gg.Point) gg.Point {
	c := r.Center()
	return gg.Pt(c.X+dir.X*r.Width()/2, c.Y+dir.Y*r.Height()/2)
}

// Frame returns the visible frame as a Rect.
func Frame() Rect {
	return RectAround(Origin, FrameWidth, FrameHeight)
}

// MoveTo places o so its bounding-box center is at p.
func MoveTo(o Object, p gg.Point) {
	o.Shift(p.Sub(o.Bounds().Center()))
}

// NextTo places o adjacent to ref in direction dir with the given gap.
// Diagonal directions offset on both axes, matching corner placement.
func NextTo(o Object, ref Object, dir gg.Point, buff float64) {
	rb := ref.Bounds()
	ob := o.Bounds()
	target := rb.Edge(dir)
	target.X += dir.X * (ob.Width()/2 + buff)
	target.Y += dir.Y * (ob.Height()/2 + buff)
	MoveTo(o, target)
}

// ToEdge moves o to the frame edge in direction dir, keeping its coordinate
// on the perpendicular axis.
func ToEdge(o Object, dir gg.Point, buff float64) {
	ob := o.Bounds()
	c := ob.Center()
	f := Frame()
	if dir.X != 0 {
		c.X = f.Edge(dir).X - dir.X*(ob.Width()/2+buff)
	}
	if dir.Y != 0 {
		c.Y = f.Edge(dir).Y - dir.Y*(ob.Height()/2+buff)
	}
	MoveTo(o, c)
}

// ToCorner moves o to the frame corner in direction dir (e.g. UpLeft).
func ToCorner(o Object, dir gg.Point, buff float64) {
	ToEdge(o, gg.Pt(dir.X, 0), buff)
	ToEdge(o, gg.Pt(0, dir.Y), buff)
}

// Camera maps scene units to pixels. The frame is centered and scaled
// uniformly; Width/Height should keep the frame's 14:8 aspect to avoid
// cropping or letterboxing.
type Camera struct {
	Width, Height int
}

// PixelsPerUnit returns the uniform scene-to-pixel scale.
func (c Camera) PixelsPerUnit() float64 {
	sx := float64(c.Width) / FrameWidth
	sy := float64(c.Height) / FrameHeight
	return math.Min(sx, sy)
}

// ToPixel converts a scene point to pixel coordinates (Y down).
func (c Camera) ToPixel(p gg.Point) (x, y float64) {
	s := c.PixelsPerUnit()
	return float64(c.Width)/2 + p.X*s, float64(c.Height)/2 - p.Y*s
}

// Length converts a scene-unit length to pixels.
func (c Camera) Length(units float64) float64 {
	return units * c.PixelsPerUnit()
}

// FontPixels converts a style font size to pixels at this camera's scale.
func (c Camera) FontPixels(size float64) float64 {
	return size * c.PixelsPerUnit() / style.BasePixelsPerUnit
}

// StrokePixels converts a nominal stroke width to pixels at this camera's
// scale. Stroke conventions are stated at the nominal 60 px-per-unit frame.
func (c Camera) StrokePixels(w float64) float64 {
	return w * c.PixelsPerUnit() / style.BasePixelsPerUnit
}
