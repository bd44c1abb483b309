package isoviz

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Object is anything a scene can place and animate. Coordinates are scene
// units (see Camera); drawing happens in pixel space through the camera.
type Object interface {
	// Draw renders the object into dc using cam for unit conversion.
	Draw(dc *gg.Context, cam Camera)

	// Bounds returns the object's bounding box in scene units.
	Bounds() Rect

	// Shift translates the object by d scene units.
	Shift(d gg.Point)

	// Opacity returns the object's opacity multiplier in [0, 1].
	Opacity() float64

	// SetOpacity sets the opacity multiplier. It scales alpha at draw
	// time and never alters the object's palette color.
	SetOpacity(o float64)
}

// PointSet is implemented by objects whose geometry is a mutable point
// slice. Morph and GrowFromCenter operate on these.
type PointSet interface {
	Object
	Points() []gg.Point
	SetPoints(pts []gg.Point)
}

// Colored is implemented by objects with a single primary color.
type Colored interface {
	Object
	Color() gg.RGBA
	SetColor(c gg.RGBA)
}

// Stroked is implemented by objects drawn with a stroke width, stated in
// pixels at the nominal frame scale.
type Stroked interface {
	Object
	StrokeWidth() float64
	SetStrokeWidth(w float64)
}

// Partial is implemented by objects that can draw a fraction of
// themselves, for Create and Write animations. The fraction is clamped to
// [0, 1]; 1 means fully drawn.
type Partial interface {
	Object
	SetDrawFraction(f float64)
}

// visual carries the state shared by every concrete object.
type visual struct {
	color       gg.RGBA
	opacity     float64 // multiplier in [0,1]
	fillOpacity float64 // fill alpha relative to color, 0 = no fill
	stroke      float64 // nominal stroke width in px, 0 = no stroke
	fraction    float64 // draw fraction for Partial, 1 = full
}

func newVisual(c gg.RGBA) visual {
	return visual{color: c, opacity: 1, fraction: 1}
}

func (v *visual) Opacity() float64 { return v.opacity }

func (v *visual) SetOpacity(o float64) { v.opacity = clamp01(o) }

func (v *visual) Color() gg.RGBA { return v.color }

func (v *visual) SetColor(c gg.RGBA) { v.color = c }

func (v *visual) StrokeWidth() float64 { return v.stroke }

func (v *visual) SetStrokeWidth(w float64) { v.stroke = w }

func (v *visual) SetDrawFraction(f float64) { v.fraction = clamp01(f) }

// strokeColor returns the stroke color with opacity applied.
func (v *visual) strokeColor() gg.RGBA {
	c := v.color
	c.A *= v.opacity
	return c
}

// fillColor returns the fill color with fill opacity and opacity applied.
func (v *visual) fillColor() gg.RGBA {
	c := v.color
	c.A *= v.fillOpacity * v.opacity
	return c
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// Walk visits o and, for groups, all descendants depth-first. The path
// identifies each object by type and child index, e.g. "group[2]/label".
func Walk(o Object, fn func(path string, o Object)) {
	walk(typeName(o), o, fn)
}

func walk(path string, o Object, fn func(path string, o Object)) {
	fn(path, o)
	if g, ok := o.(*Group); ok {
		for i, child := range g.children {
			walk(fmt.Sprintf("%s[%d]/%s", path, i, typeName(child)), child, fn)
		}
	}
}

func typeName(o Object) string {
	switch o.(type) {
	case *Group:
		return "group"
	case *Label:
		return "label"
	case *Arrow:
		return "arrow"
	case *CurvedArrow:
		return "curved-arrow"
	case *Dot:
		return "dot"
	case *Polygon:
		return "polygon"
	case *CurveShape:
		return "curve"
	default:
		return fmt.Sprintf("%T", o)
	}
}
