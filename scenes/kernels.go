package scenes

import (
	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz"
	"github.com/isoviz/isoviz/curve"
	"github.com/isoviz/isoviz/style"
)

func init() { isoviz.Register(Kernels{}) }

// Kernels visualizes an isogeny as the map that collapses its kernel:
// marked points on the domain curve fall into the identity of the
// codomain.
type Kernels struct{}

func (Kernels) Name() string { return "kernels" }

func (Kernels) Construct(tl *isoviz.Timeline) {
	title := isoviz.NewTitle("Kernels of Isogenies")
	tl.Play(isoviz.Write(title))
	tl.Wait(style.PauseShort)

	e := isoviz.MustCurve(curve.Simple)
	isoviz.ScaleBy(e, 0.35)
	isoviz.MoveTo(e, gg.Pt(-3.5, -0.3))

	target := curve.Smooth
	target.B = 0.9
	ePrime := isoviz.MustCurve(target)
	isoviz.ScaleBy(ePrime, 0.35)
	isoviz.MoveTo(ePrime, gg.Pt(3.5, -0.3))

	eLabel := isoviz.NewMathLabel("E", style.SizeHeading, style.Curve)
	isoviz.NextTo(eLabel, e, isoviz.Down, isoviz.BuffDefault)
	ePrimeLabel := isoviz.NewMathLabel("E' = E/ker φ", style.SizeHeading, style.Curve)
	isoviz.NextTo(ePrimeLabel, ePrime, isoviz.Down, isoviz.BuffDefault)

	tl.Play(
		isoviz.GrowFromCenter(e), isoviz.Write(eLabel),
		isoviz.GrowFromCenter(ePrime), isoviz.Write(ePrimeLabel),
	)
	tl.Wait(style.PauseShort)

	phi := isoviz.NewArrow(e.Bounds().Center(), ePrime.Bounds().Center(), style.Isogeny, style.StrokeCurve)
	phi.SetBuff(1.6)
	phiLabel := isoviz.NewMathLabel("φ", style.SizeHeading, style.Isogeny)
	isoviz.NextTo(phiLabel, phi, isoviz.Up, isoviz.BuffTight)
	tl.Play(isoviz.GrowArrow(phi), isoviz.Write(phiLabel))
	tl.Wait(style.PauseShort)

	// Mark the kernel on E.
	eCenter := e.Bounds().Center()
	offsets := []gg.Point{{X: 0, Y: 0.9}, {X: 0.5, Y: 0}, {X: 0, Y: -0.9}, {X: -0.5, Y: 0}}
	kernelDots := make([]*isoviz.Dot, len(offsets))
	var appear []isoviz.Animation
	for i, off := range offsets {
		dot := isoviz.NewDot(eCenter.Add(off), style.Secret)
		dot.SetRadius(0.1)
		kernelDots[i] = dot
		appear = append(appear, isoviz.FadeIn(dot, isoviz.WithRunTime(style.RunTimeFast)))
	}
	kerLabel := isoviz.NewMathLabel("ker φ", style.SizeBody, style.Secret)
	isoviz.NextTo(kerLabel, e, isoviz.Up, isoviz.BuffDefault)
	tl.Play(isoviz.Lagged(0.2, appear...))
	tl.Play(isoviz.Write(kerLabel))
	tl.Wait(style.PauseMedium)

	// The kernel collapses: every marked point slides to the identity
	// on E', then vanishes into a single point.
	identity := isoviz.NewDot(ePrime.Bounds().Center().Add(gg.Pt(0, 0.9)), style.Highlight)
	identity.SetRadius(0.12)

	var collapse []isoviz.Animation
	for _, dot := range kernelDots {
		collapse = append(collapse, isoviz.MoveBy(dot, identity.Pos().Sub(dot.Pos()), isoviz.WithRunTime(style.RunTimeSlow)))
	}
	tl.Play(collapse...)
	tl.Play(isoviz.FadeIn(identity))

	var vanish []isoviz.Animation
	for _, dot := range kernelDots {
		vanish = append(vanish, isoviz.FadeOut(dot, isoviz.WithRunTime(style.RunTimeFast)))
	}
	oLabel := isoviz.NewMathLabel("O", style.SizeBody, style.Highlight)
	isoviz.NextTo(oLabel, identity, isoviz.UpRight, isoviz.BuffTight)
	tl.Play(vanish...)
	tl.Play(isoviz.Write(oLabel))

	note := isoviz.NewLabel("The kernel determines the isogeny, up to isomorphism", style.SizeBody, style.Faint)
	isoviz.ToEdge(note, isoviz.Down, isoviz.EdgeBuff)
	tl.Play(isoviz.FadeIn(note))
	tl.Wait(style.PauseFinal)
}
