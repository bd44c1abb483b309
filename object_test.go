package isoviz

import (
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz/curve"
	"github.com/isoviz/isoviz/style"
)

// Compile-time checks that every primitive satisfies the interfaces the
// animation system dispatches on.
var (
	_ Object = (*Group)(nil)
	_ Object = (*Label)(nil)
	_ Object = (*Arrow)(nil)
	_ Object = (*CurvedArrow)(nil)
	_ Object = (*Dot)(nil)
	_ Object = (*Polygon)(nil)
	_ Object = (*CurveShape)(nil)

	_ PointSet = (*Polygon)(nil)
	_ PointSet = (*CurveShape)(nil)

	_ Colored = (*Label)(nil)
	_ Colored = (*Dot)(nil)
	_ Colored = (*Polygon)(nil)

	_ Partial = (*Polygon)(nil)
	_ Partial = (*Label)(nil)
	_ Partial = (*Arrow)(nil)
)

func TestOpacity_Clamped(t *testing.T) {
	d := NewDot(Origin, style.Curve)
	d.SetOpacity(2)
	if d.Opacity() != 1 {
		t.Errorf("opacity = %g, want clamped to 1", d.Opacity())
	}
	d.SetOpacity(-1)
	if d.Opacity() != 0 {
		t.Errorf("opacity = %g, want clamped to 0", d.Opacity())
	}
}

func TestGroup_ShiftAndBounds(t *testing.T) {
	a := NewDot(gg.Pt(-1, 0), style.Curve)
	b := NewDot(gg.Pt(1, 0), style.Curve)
	g := NewGroup(a, b)

	before := g.Bounds()
	g.Shift(gg.Pt(0, 2))
	after := g.Bounds()

	if after.Width() != before.Width() {
		t.Errorf("width changed: %g -> %g", before.Width(), after.Width())
	}
	if after.Center().Y != before.Center().Y+2 {
		t.Errorf("center y = %g", after.Center().Y)
	}
	if a.Pos().Y != 2 || b.Pos().Y != 2 {
		t.Error("children did not move with the group")
	}
}

func TestGroup_OpacityPropagates(t *testing.T) {
	a := NewDot(Origin, style.Curve)
	g := NewGroup(a)
	g.SetOpacity(0.5)
	if a.Opacity() != 0.5 {
		t.Errorf("child opacity = %g, want 0.5", a.Opacity())
	}
}

func TestWalk_PathsAndOrder(t *testing.T) {
	inner := NewGroup(NewDot(Origin, style.Curve))
	root := NewGroup(NewLabel("x", style.SizeBody, style.Ink), inner)

	var paths []string
	Walk(root, func(path string, _ Object) {
		paths = append(paths, path)
	})

	want := []string{
		"group",
		"group[0]/label",
		"group[1]/group",
		"group[1]/group[0]/dot",
	}
	if len(paths) != len(want) {
		t.Fatalf("visited %d objects, want %d: %v", len(paths), len(want), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestGroup_Contains(t *testing.T) {
	d := NewDot(Origin, style.Curve)
	inner := NewGroup(d)
	root := NewGroup(inner)
	if !root.Contains(d) {
		t.Error("deep child not found")
	}
	if root.Contains(NewDot(Origin, style.Curve)) {
		t.Error("found an object that was never added")
	}
}

func TestCurveShape_PointsRoundTrip(t *testing.T) {
	cs := MustCurveIcon(curve.Smooth)
	pts := cs.Points()
	if len(pts) == 0 {
		t.Fatal("no points")
	}

	shifted := make([]gg.Point, len(pts))
	for i, p := range pts {
		shifted[i] = p.Add(gg.Pt(1, 0))
	}
	cs.SetPoints(shifted)

	got := cs.Points()
	for i := range got {
		if got[i] != shifted[i] {
			t.Fatalf("point %d = %v, want %v", i, got[i], shifted[i])
		}
	}
}

func TestScaleBy_Dot(t *testing.T) {
	d := NewDot(gg.Pt(2, 0), style.Curve)
	ScaleBy(d, 2)
	if d.Radius() != 2*DefaultDotRadius {
		t.Errorf("radius = %g", d.Radius())
	}
	// Scaling about its own center leaves the position alone.
	if d.Pos() != gg.Pt(2, 0) {
		t.Errorf("pos = %v", d.Pos())
	}
}

func TestScaleBy_CurveShape(t *testing.T) {
	cs := MustCurve(curve.Smooth)
	before := cs.Bounds()
	ScaleBy(cs, 0.5)
	after := cs.Bounds()
	if diff := after.Width() - before.Width()/2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("width = %g, want %g", after.Width(), before.Width()/2)
	}
	c := after.Center()
	if c.Sub(before.Center()).Length() > 1e-9 {
		t.Errorf("center moved to %v", c)
	}
}

func TestLabel_Bounds(t *testing.T) {
	short := NewLabel("E", style.SizeBody, style.Ink)
	long := NewLabel("a much longer label", style.SizeBody, style.Ink)
	if short.Bounds().Width() >= long.Bounds().Width() {
		t.Error("longer text did not measure wider")
	}
	if short.Bounds().Height() <= 0 {
		t.Error("label has no height")
	}

	big := NewLabel("E", style.SizeTitle, style.Ink)
	if big.Bounds().Height() <= short.Bounds().Height() {
		t.Error("larger font did not measure taller")
	}
}

func TestArrow_Trim(t *testing.T) {
	a := NewArrow(gg.Pt(-2, 0), gg.Pt(2, 0), style.Isogeny, style.StrokeCurve)
	a.SetBuff(0.5)
	if s := a.Start(); s.X != -1.5 || s.Y != 0 {
		t.Errorf("start = %v", s)
	}
	if e := a.End(); e.X != 1.5 || e.Y != 0 {
		t.Errorf("end = %v", e)
	}

	// Endpoints closer than twice the buff collapse to the midpoint.
	b := NewArrow(Origin, gg.Pt(0.1, 0), style.Isogeny, style.StrokeCurve)
	b.SetBuff(0.5)
	if s, e := b.Start(), b.End(); s != e {
		t.Errorf("degenerate arrow: start %v != end %v", s, e)
	}
}

func TestPartialPolyline(t *testing.T) {
	pts := []gg.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	tests := []struct {
		fraction float64
		wantLast gg.Point
		wantLen  int
	}{
		{1, gg.Pt(2, 0), 3},
		{0.5, gg.Pt(1, 0), 2},
		{0.25, gg.Pt(0.5, 0), 2},
		{0.75, gg.Pt(1.5, 0), 3},
	}
	for _, tt := range tests {
		got := partialPolyline(pts, tt.fraction)
		if len(got) != tt.wantLen {
			t.Errorf("fraction %g: len = %d, want %d", tt.fraction, len(got), tt.wantLen)
			continue
		}
		last := got[len(got)-1]
		if last.Distance(tt.wantLast) > 1e-9 {
			t.Errorf("fraction %g: last = %v, want %v", tt.fraction, last, tt.wantLast)
		}
	}
}

func TestTypeName_Unknown(t *testing.T) {
	// Foreign Object implementations fall back to their Go type.
	name := typeName(fakeObject{})
	if !strings.Contains(name, "fakeObject") {
		t.Errorf("typeName = %q", name)
	}
}

type fakeObject struct{}

func (fakeObject) Draw(*gg.Context, Camera) {}
func (fakeObject) Bounds() Rect             { return Rect{} }
func (fakeObject) Shift(gg.Point)           {}
func (fakeObject) Opacity() float64         { return 1 }
func (fakeObject) SetOpacity(float64)       {}
