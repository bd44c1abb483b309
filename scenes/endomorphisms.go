package scenes

import (
	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz"
	"github.com/isoviz/isoviz/curve"
	"github.com/isoviz/isoviz/style"
)

func init() { isoviz.Register(Endomorphisms{}) }

// Endomorphisms shows a curve mapping to itself and why the collection of
// such self-maps is the object that matters.
type Endomorphisms struct{}

func (Endomorphisms) Name() string { return "endomorphisms" }

func (Endomorphisms) Construct(tl *isoviz.Timeline) {
	step1 := isoviz.NewLabel("Endomorphisms: Self-Maps", style.SizeStepMarker, style.Isogeny)
	isoviz.ToCorner(step1, isoviz.UpLeft, isoviz.EdgeBuff)
	tl.Play(isoviz.FadeIn(step1))

	p := curve.Smooth
	p.B = 0.6
	icon := isoviz.MustCurve(p)
	icon.SetStrokeWidth(4)
	isoviz.ScaleBy(icon, 0.5)
	isoviz.MoveTo(icon, isoviz.Origin)

	tl.Play(isoviz.GrowFromCenter(icon))
	tl.Wait(style.PauseShort)

	// A looping arrow out of the curve's right edge and back in.
	right := icon.Bounds().Edge(isoviz.Right).Add(gg.Pt(0.8, 0))
	loop := isoviz.NewCurvedArrow(
		right.Add(gg.Pt(0, 0.3)),
		right.Add(gg.Pt(0, -0.3)),
		1.4,
		style.Endo, 4,
	)

	phiLabel := isoviz.NewMathLabel("φ: E → E", style.SizeHeading, style.Endo)
	isoviz.NextTo(phiLabel, loop, isoviz.Right, isoviz.BuffDefault)

	tl.Play(isoviz.Create(loop), isoviz.Write(phiLabel))
	tl.Wait(style.PauseShort)

	explanation := isoviz.NewLabel("An endomorphism maps a curve to itself", style.SizeBody, style.Faint)
	isoviz.ToEdge(explanation, isoviz.Down, isoviz.EdgeBuff)
	tl.Play(isoviz.FadeIn(explanation))
	tl.Wait(style.PauseMedium)

	// The simplest example: multiplication by an integer.
	mulNote := isoviz.NewMathLabel("[2]: P → P + P", style.SizeHeading, style.Ink)
	isoviz.MoveTo(mulNote, gg.Pt(-4, 2.5))
	tl.Play(isoviz.Write(mulNote))
	tl.Wait(style.PauseMedium)

	// For supersingular curves there are more, and together they form
	// a rank-4 ring: the bridge to quaternion algebras.
	ringNote := isoviz.NewLabel("All self-maps together form a ring: End(E)", style.SizeBody, style.Result)
	isoviz.ToEdge(ringNote, isoviz.Down, isoviz.EdgeBuff)
	tl.Play(isoviz.FadeOut(explanation), isoviz.FadeIn(ringNote))
	tl.Wait(style.PauseFinal)
}
