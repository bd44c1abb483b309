package check

import (
	"fmt"

	"github.com/isoviz/isoviz"
	"github.com/isoviz/isoviz/style"
)

// Default returns the standard rule set every shipped scene must pass.
func Default() []Rule {
	return []Rule{
		MinFontSize{Min: style.MinFontSize},
		PaletteOnly{Tolerance: 0.01},
		StrokeWidthRange{Min: style.StrokeMin, Max: style.StrokeMax},
		InFrame{Margin: 0.1},
		NonEmpty{},
	}
}

// MinFontSize rejects labels below the readable floor.
type MinFontSize struct {
	Min float64
}

func (MinFontSize) ID() string { return "min-font-size" }

func (r MinFontSize) Check(path string, o isoviz.Object) []Violation {
	l, ok := o.(*isoviz.Label)
	if !ok || l.Size() >= r.Min {
		return nil
	}
	return []Violation{{
		Rule: r.ID(), Path: path,
		Message: fmt.Sprintf("font size %.1f below minimum %.1f (%q)", l.Size(), r.Min, l.Text()),
	}}
}

// PaletteOnly rejects colors that are not in the approved palette.
type PaletteOnly struct {
	Tolerance float64
}

func (PaletteOnly) ID() string { return "palette-only" }

func (r PaletteOnly) Check(path string, o isoviz.Object) []Violation {
	c, ok := o.(isoviz.Colored)
	if !ok {
		return nil
	}
	col := c.Color()
	if style.InPalette(col, r.Tolerance) {
		return nil
	}
	return []Violation{{
		Rule: r.ID(), Path: path,
		Message: fmt.Sprintf("color (%.2f, %.2f, %.2f) is not in the style palette", col.R, col.G, col.B),
	}}
}

// StrokeWidthRange rejects strokes outside the conventional range.
type StrokeWidthRange struct {
	Min, Max float64
}

func (StrokeWidthRange) ID() string { return "stroke-width" }

func (r StrokeWidthRange) Check(path string, o isoviz.Object) []Violation {
	s, ok := o.(isoviz.Stroked)
	if !ok {
		return nil
	}
	w := s.StrokeWidth()
	if w == 0 {
		return nil // unstroked object (dot, label, fill-only shape)
	}
	if w >= r.Min && w <= r.Max {
		return nil
	}
	return []Violation{{
		Rule: r.ID(), Path: path,
		Message: fmt.Sprintf("stroke width %.1f outside [%.1f, %.1f]", w, r.Min, r.Max),
	}}
}

// InFrame rejects objects whose final position escapes the visible frame.
type InFrame struct {
	Margin float64 // tolerated overhang in scene units
}

func (InFrame) ID() string { return "in-frame" }

func (r InFrame) Check(path string, o isoviz.Object) []Violation {
	if _, ok := o.(*isoviz.Group); ok {
		return nil // judged through the children
	}
	// Invisible objects may legitimately be parked off-frame.
	if o.Opacity() == 0 {
		return nil
	}
	frame := isoviz.Frame()
	frame.Min = frame.Min.Sub(isoviz.UpRight.Mul(r.Margin))
	frame.Max = frame.Max.Add(isoviz.UpRight.Mul(r.Margin))
	if frame.Contains(o.Bounds()) {
		return nil
	}
	b := o.Bounds()
	return []Violation{{
		Rule: r.ID(), Path: path,
		Message: fmt.Sprintf("bounds (%.2f, %.2f)-(%.2f, %.2f) escape the frame",
			b.Min.X, b.Min.Y, b.Max.X, b.Max.Y),
	}}
}

// NonEmpty rejects a scene whose final frame has nothing in it.
type NonEmpty struct{}

func (NonEmpty) ID() string { return "non-empty" }

func (r NonEmpty) Check(path string, o isoviz.Object) []Violation {
	g, ok := o.(*isoviz.Group)
	if !ok || path != "group" {
		return nil // only the root group is judged
	}
	if len(g.Children()) > 0 {
		return nil
	}
	return []Violation{{
		Rule: r.ID(), Path: path, Message: "scene has no objects",
	}}
}
