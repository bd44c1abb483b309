package isoviz

import (
	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz/style"
)

// Animation mutates its targets over the course of one timeline step.
//
// Init is called once, when the step containing the animation starts; it
// captures whatever start state the animation needs. Update is then called
// with raw progress in [0, 1]; each animation applies its own easing.
// Update(1) must leave the targets in their final state, and updates are
// only ever made with non-decreasing progress.
type Animation interface {
	Targets() []Object
	Duration() float64 // seconds
	Init()
	Update(t float64)
}

// AnimOption adjusts an animation's run time or easing.
type AnimOption func(*baseAnim)

// WithRunTime overrides the default one-second run time.
func WithRunTime(seconds float64) AnimOption {
	return func(b *baseAnim) {
		if seconds > 0 {
			b.dur = seconds
		}
	}
}

// WithEase overrides the default Smooth easing.
func WithEase(e EaseFunc) AnimOption {
	return func(b *baseAnim) {
		if e != nil {
			b.ease = e
		}
	}
}

type baseAnim struct {
	target Object
	dur    float64
	ease   EaseFunc
}

func newBase(target Object, opts []AnimOption) baseAnim {
	b := baseAnim{target: target, dur: style.RunTimeDefault, ease: Smooth}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *baseAnim) Targets() []Object { return []Object{b.target} }
func (b *baseAnim) Duration() float64 { return b.dur }
func (b *baseAnim) at(t float64) float64 {
	return b.ease(clamp01(t))
}

// FadeIn fades an object from fully transparent to the opacity it was
// constructed with.
func FadeIn(o Object, opts ...AnimOption) Animation {
	return &fadeAnim{baseAnim: newBase(o, opts), toConstructed: true}
}

// FadeOut fades an object to fully transparent.
func FadeOut(o Object, opts ...AnimOption) Animation {
	return &fadeAnim{baseAnim: newBase(o, opts), to: 0}
}

// FadeTo fades an object to the given opacity, typically
// style.DimOpacity when pulling focus away from it.
func FadeTo(o Object, to float64, opts ...AnimOption) Animation {
	return &fadeAnim{baseAnim: newBase(o, opts), to: clamp01(to)}
}

type fadeAnim struct {
	baseAnim
	toConstructed bool
	from, to      float64
}

func (a *fadeAnim) Init() {
	if a.toConstructed {
		a.to = a.target.Opacity()
		a.from = 0
		a.target.SetOpacity(0)
		return
	}
	a.from = a.target.Opacity()
}

func (a *fadeAnim) Update(t float64) {
	e := a.at(t)
	a.target.SetOpacity(a.from + (a.to-a.from)*e)
}

// Create draws an object progressively along its stroke, like tracing it
// with a pen. Objects that cannot draw partially simply fade in.
func Create(o Object, opts ...AnimOption) Animation {
	return &createAnim{baseAnim: newBase(o, opts)}
}

// Write is Create for labels: text appears left to right.
func Write(o Object, opts ...AnimOption) Animation {
	return &createAnim{baseAnim: newBase(o, opts)}
}

// GrowArrow grows an arrow from its start point to its tip.
func GrowArrow(o Object, opts ...AnimOption) Animation {
	return &createAnim{baseAnim: newBase(o, opts)}
}

type createAnim struct {
	baseAnim
}

func (a *createAnim) Init() {
	if p, ok := a.target.(Partial); ok {
		p.SetDrawFraction(0)
	} else {
		a.target.SetOpacity(0)
	}
}

func (a *createAnim) Update(t float64) {
	e := a.at(t)
	if p, ok := a.target.(Partial); ok {
		p.SetDrawFraction(e)
	} else {
		a.target.SetOpacity(e)
	}
}

// GrowFromCenter scales an object up from a point at its center.
func GrowFromCenter(o Object, opts ...AnimOption) Animation {
	return &growAnim{baseAnim: newBase(o, opts)}
}

type growAnim struct {
	baseAnim
	center gg.Point
	pts    map[PointSet][]gg.Point
	radii  map[*Dot]float64
}

func (a *growAnim) Init() {
	a.center = a.target.Bounds().Center()
	a.pts = map[PointSet][]gg.Point{}
	a.radii = map[*Dot]float64{}
	Walk(a.target, func(_ string, o Object) {
		switch v := o.(type) {
		case PointSet:
			a.pts[v] = append([]gg.Point{}, v.Points()...)
		case *Dot:
			a.radii[v] = v.radius
		}
	})
	a.Update(0)
}

func (a *growAnim) Update(t float64) {
	e := a.at(t)
	for ps, base := range a.pts {
		scaled := make([]gg.Point, len(base))
		for i, p := range base {
			scaled[i] = a.center.Add(p.Sub(a.center).Mul(e))
		}
		ps.SetPoints(scaled)
	}
	for d, r := range a.radii {
		d.radius = r * e
	}
}

// MoveBy slides an object by a scene-unit delta.
func MoveBy(o Object, delta gg.Point, opts ...AnimOption) Animation {
	return &moveAnim{baseAnim: newBase(o, opts), delta: delta}
}

type moveAnim struct {
	baseAnim
	delta gg.Point
	done  float64 // portion of delta already applied
}

func (a *moveAnim) Init() { a.done = 0 }

func (a *moveAnim) Update(t float64) {
	e := a.at(t)
	a.target.Shift(a.delta.Mul(e - a.done))
	a.done = e
}

// Recolor transitions an object's primary color to the given palette color.
func Recolor(o Colored, to gg.RGBA, opts ...AnimOption) Animation {
	return &recolorAnim{baseAnim: newBase(o, opts), obj: o, to: to}
}

type recolorAnim struct {
	baseAnim
	obj  Colored
	from gg.RGBA
	to   gg.RGBA
}

func (a *recolorAnim) Init() { a.from = a.obj.Color() }

func (a *recolorAnim) Update(t float64) {
	e := a.at(t)
	a.obj.SetColor(gg.RGBA{
		R: a.from.R + (a.to.R-a.from.R)*e,
		G: a.from.G + (a.to.G-a.from.G)*e,
		B: a.from.B + (a.to.B-a.from.B)*e,
		A: a.from.A + (a.to.A-a.from.A)*e,
	})
}

// Morph reshapes one point-set object into the outline of another, also
// blending its color toward the target's. The animated object keeps its
// identity; the target only supplies geometry and color.
func Morph(o, target PointSet, opts ...AnimOption) Animation {
	return &morphAnim{baseAnim: newBase(o, opts), obj: o, shape: target}
}

type morphAnim struct {
	baseAnim
	obj        PointSet
	shape      PointSet
	from, to   []gg.Point
	color      Animation // nil when either side is uncolored
}

func (a *morphAnim) Init() {
	src := a.obj.Points()
	dst := a.shape.Points()
	n := max(len(src), len(dst))
	a.from = resample(src, n)
	a.to = resample(dst, n)
	a.obj.SetPoints(append([]gg.Point{}, a.from...))

	co, okObj := a.obj.(Colored)
	ct, okShape := a.shape.(Colored)
	if okObj && okShape {
		a.color = Recolor(co, ct.Color())
		a.color.Init()
	}
}

func (a *morphAnim) Update(t float64) {
	e := a.at(t)
	pts := make([]gg.Point, len(a.from))
	for i := range pts {
		pts[i] = a.from[i].Lerp(a.to[i], e)
	}
	a.obj.SetPoints(pts)
	if a.color != nil {
		a.color.Update(t)
	}
}

// resample redistributes a polyline onto n points, evenly spaced by arc
// length, so two shapes can interpolate point-for-point.
func resample(pts []gg.Point, n int) []gg.Point {
	if len(pts) == 0 || n <= 0 {
		return nil
	}
	if len(pts) == 1 {
		out := make([]gg.Point, n)
		for i := range out {
			out[i] = pts[0]
		}
		return out
	}

	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i].Distance(pts[i-1])
	}

	out := make([]gg.Point, n)
	out[0] = pts[0]
	seg := 1
	walked := 0.0
	for i := 1; i < n; i++ {
		want := total * float64(i) / float64(n-1)
		for seg < len(pts)-1 && walked+pts[seg].Distance(pts[seg-1]) < want {
			walked += pts[seg].Distance(pts[seg-1])
			seg++
		}
		segLen := pts[seg].Distance(pts[seg-1])
		if segLen == 0 {
			out[i] = pts[seg]
			continue
		}
		t := clamp01((want - walked) / segLen)
		out[i] = pts[seg-1].Lerp(pts[seg], t)
	}
	out[n-1] = pts[len(pts)-1]
	return out
}

// Lagged staggers its sub-animations: each starts lagRatio of the previous
// animation's duration after the previous one starts. A ratio of 0 plays
// everything together, 1 plays them back to back.
func Lagged(lagRatio float64, anims ...Animation) Animation {
	if lagRatio < 0 {
		lagRatio = 0
	}
	l := &laggedAnim{ratio: lagRatio, anims: anims}
	start := 0.0
	for _, a := range anims {
		l.starts = append(l.starts, start)
		if end := start + a.Duration(); end > l.total {
			l.total = end
		}
		start += lagRatio * a.Duration()
	}
	if l.total == 0 {
		l.total = style.RunTimeDefault
	}
	return l
}

type laggedAnim struct {
	ratio  float64
	anims  []Animation
	starts []float64
	total  float64
}

func (l *laggedAnim) Targets() []Object {
	var targets []Object
	for _, a := range l.anims {
		targets = append(targets, a.Targets()...)
	}
	return targets
}

func (l *laggedAnim) Duration() float64 { return l.total }

func (l *laggedAnim) Init() {
	for _, a := range l.anims {
		a.Init()
	}
}

func (l *laggedAnim) Update(t float64) {
	elapsed := clamp01(t) * l.total
	for i, a := range l.anims {
		local := (elapsed - l.starts[i]) / a.Duration()
		a.Update(clamp01(local))
	}
}
