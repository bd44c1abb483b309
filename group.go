package isoviz

import "github.com/gogpu/gg"

// Group draws its children in order and forwards layout and opacity
// operations to them. Children keep absolute scene coordinates; grouping is
// about moving and fading things together, not nested coordinate frames.
type Group struct {
	children []Object
	opacity  float64
}

// NewGroup creates a group over the given objects.
func NewGroup(objs ...Object) *Group {
	return &Group{children: objs, opacity: 1}
}

// Add appends objects to the group.
func (g *Group) Add(objs ...Object) {
	g.children = append(g.children, objs...)
}

// Children returns the group's direct children.
func (g *Group) Children() []Object { return g.children }

// Contains reports whether o is g, a child, or a deeper descendant.
func (g *Group) Contains(o Object) bool {
	found := false
	Walk(g, func(_ string, candidate Object) {
		if candidate == o {
			found = true
		}
	})
	return found
}

func (g *Group) Bounds() Rect {
	var r Rect
	for i, c := range g.children {
		if i == 0 {
			r = c.Bounds()
		} else {
			r = r.Union(c.Bounds())
		}
	}
	return r
}

func (g *Group) Shift(delta gg.Point) {
	for _, c := range g.children {
		c.Shift(delta)
	}
}

func (g *Group) Opacity() float64 { return g.opacity }

// SetOpacity sets the opacity on the group and all children. Relative
// child opacities are not preserved; fades in this codebase apply to
// uniformly opaque groups.
func (g *Group) SetOpacity(o float64) {
	g.opacity = clamp01(o)
	for _, c := range g.children {
		c.SetOpacity(g.opacity)
	}
}

func (g *Group) Draw(dc *gg.Context, cam Camera) {
	for _, c := range g.children {
		c.Draw(dc, cam)
	}
}
