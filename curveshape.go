package isoviz

import (
	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz/curve"
	"github.com/isoviz/isoviz/style"
)

// CurveShape draws an elliptic-curve icon generated by the curve package.
// Stroked branches come from curve.Trace; filled icons additionally carry
// the closed outline of the largest component.
type CurveShape struct {
	visual
	branches [][]gg.Point // upper/lower polylines, in draw order
	outline  []gg.Point   // closed fill loop, nil for stroke-only icons
}

// NewCurve creates a stroke-only curve icon in the house curve color.
func NewCurve(p curve.Params) (*CurveShape, error) {
	branches, err := curve.Trace(p)
	if err != nil {
		return nil, err
	}
	v := newVisual(style.Curve)
	v.stroke = style.StrokeCurve
	cs := &CurveShape{visual: v}
	for _, b := range branches {
		cs.branches = append(cs.branches, b.Upper, b.Lower)
	}
	return cs, nil
}

// NewCurveIcon creates a filled curve icon: the largest component's outline
// filled at low opacity under the stroked branches.
func NewCurveIcon(p curve.Params) (*CurveShape, error) {
	cs, err := NewCurve(p)
	if err != nil {
		return nil, err
	}
	outline, err := curve.Outline(p)
	if err != nil {
		return nil, err
	}
	cs.outline = outline
	cs.fillOpacity = 0.3
	return cs, nil
}

// MustCurve is NewCurve for declarative scene code with known-good presets.
// It panics on invalid parameters.
func MustCurve(p curve.Params) *CurveShape {
	cs, err := NewCurve(p)
	if err != nil {
		panic(err)
	}
	return cs
}

// MustCurveIcon is NewCurveIcon for declarative scene code.
func MustCurveIcon(p curve.Params) *CurveShape {
	cs, err := NewCurveIcon(p)
	if err != nil {
		panic(err)
	}
	return cs
}

// SetFillOpacity adjusts the outline fill alpha.
func (cs *CurveShape) SetFillOpacity(o float64) { cs.fillOpacity = clamp01(o) }

// Points flattens all branch and outline points. SetPoints restores them
// in the same order; the pair exists so morph and grow animations can
// treat the icon as one point set.
func (cs *CurveShape) Points() []gg.Point {
	var pts []gg.Point
	for _, b := range cs.branches {
		pts = append(pts, b...)
	}
	return append(pts, cs.outline...)
}

func (cs *CurveShape) SetPoints(pts []gg.Point) {
	for _, b := range cs.branches {
		n := copy(b, pts)
		pts = pts[n:]
	}
	copy(cs.outline, pts)
}

func (cs *CurveShape) Bounds() Rect { return BoundsOf(cs.Points()) }

func (cs *CurveShape) Shift(delta gg.Point) {
	for _, b := range cs.branches {
		for i := range b {
			b[i] = b[i].Add(delta)
		}
	}
	for i := range cs.outline {
		cs.outline[i] = cs.outline[i].Add(delta)
	}
}

func (cs *CurveShape) Draw(dc *gg.Context, cam Camera) {
	if cs.opacity == 0 {
		return
	}
	if cs.outline != nil && cs.fillOpacity > 0 && cs.fraction >= 1 {
		tracePath(dc, cam, cs.outline)
		dc.ClosePath()
		dc.SetColor(cs.fillColor())
		_ = dc.Fill()
		dc.ClearPath()
	}
	for _, b := range cs.branches {
		strokePolyline(dc, cam, b, cs.fraction, cs.strokeColor(), cs.stroke)
	}
}

// ScaleBy scales o about its own center. Point-set geometry scales its
// points, dots scale their radius, labels their font size, and groups
// recurse into children about the shared group center.
func ScaleBy(o Object, f float64) {
	scaleAbout(o, o.Bounds().Center(), f)
}

func scaleAbout(o Object, c gg.Point, f float64) {
	switch v := o.(type) {
	case *Group:
		for _, child := range v.children {
			scaleAbout(child, c, f)
		}
	case PointSet:
		pts := v.Points()
		for i := range pts {
			pts[i] = c.Add(pts[i].Sub(c).Mul(f))
		}
		v.SetPoints(pts)
	case *Dot:
		v.pos = c.Add(v.pos.Sub(c).Mul(f))
		v.radius *= f
	case *Label:
		MoveTo(v, c.Add(v.Bounds().Center().Sub(c).Mul(f)))
		v.size *= f
	case *Arrow:
		v.from = c.Add(v.from.Sub(c).Mul(f))
		v.to = c.Add(v.to.Sub(c).Mul(f))
	case *CurvedArrow:
		v.from = c.Add(v.from.Sub(c).Mul(f))
		v.to = c.Add(v.to.Sub(c).Mul(f))
		v.bend *= f
	}
}
