package scenes

import (
	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz"
	"github.com/isoviz/isoviz/curve"
	"github.com/isoviz/isoviz/style"
)

func init() { isoviz.Register(Protocol{}) }

// Protocol is the high-level sigma-protocol overview: commitment,
// challenge, response, and the final signature highlight.
type Protocol struct{}

func (Protocol) Name() string { return "protocol" }

func (Protocol) Construct(tl *isoviz.Timeline) {
	// The four curves of the protocol, one per quadrant.
	iconScale := 0.28
	newIcon := func(b float64, c gg.RGBA, at gg.Point) *isoviz.CurveShape {
		p := curve.Smooth
		p.B = b
		icon := isoviz.MustCurve(p)
		icon.SetColor(c)
		isoviz.ScaleBy(icon, iconScale)
		isoviz.MoveTo(icon, at)
		return icon
	}
	e0 := newIcon(0.5, style.Public, gg.Pt(-3, 1.5))
	ea := newIcon(0.8, style.Secret, gg.Pt(3, 1.5))
	ecom := newIcon(0.7, style.Curve, gg.Pt(-3, -1.5))
	echl := newIcon(0.6, style.Curve, gg.Pt(3, -1.5))

	e0Label := isoviz.NewMathLabel("E0", style.SizeHeading, style.Ink)
	isoviz.NextTo(e0Label, e0, isoviz.Up, isoviz.BuffDefault)
	eaLabel := isoviz.NewMathLabel("EA", style.SizeHeading, style.Secret)
	isoviz.NextTo(eaLabel, ea, isoviz.Up, isoviz.BuffDefault)
	ecomLabel := isoviz.NewMathLabel("Ecom", style.SizeHeading, style.Ink)
	isoviz.NextTo(ecomLabel, ecom, isoviz.Down, isoviz.BuffDefault)
	echlLabel := isoviz.NewMathLabel("Echl", style.SizeHeading, style.Ink)
	isoviz.NextTo(echlLabel, echl, isoviz.Down, isoviz.BuffDefault)

	publicNote := isoviz.NewLabel("(public key)", style.SizeAnnotation, style.Public)
	isoviz.NextTo(publicNote, eaLabel, isoviz.Right, isoviz.BuffTight)

	// The two starting curves and the secret isogeny between them.
	tl.Play(
		isoviz.GrowFromCenter(e0),
		isoviz.Write(e0Label),
		isoviz.GrowFromCenter(ea),
		isoviz.Write(eaLabel),
		isoviz.FadeIn(publicNote),
	)
	tl.Wait(style.PauseMedium)

	tau := isoviz.NewArrow(e0.Bounds().Center(), ea.Bounds().Center(), style.Secret, style.StrokeCurve)
	tauLabel := isoviz.NewMathLabel("τ", style.SizeHeading, style.Secret)
	isoviz.NextTo(tauLabel, tau, isoviz.Up, isoviz.BuffTight)
	secretNote := isoviz.NewLabel("secret key", style.SizeStepMarker, style.Secret)
	isoviz.NextTo(secretNote, tau, isoviz.Down, isoviz.BuffDefault)

	tl.Play(isoviz.GrowArrow(tau), isoviz.Write(tauLabel), isoviz.FadeIn(secretNote))
	tl.Wait(style.PauseLong)

	// Commitment: a fresh random walk away from E0.
	step1 := isoviz.NewLabel("1. COMMIT", style.SizeStepMarker, style.Isogeny)
	isoviz.ToCorner(step1, isoviz.UpLeft, isoviz.EdgeBuff)
	tl.Play(isoviz.Write(step1))

	tl.Play(isoviz.GrowFromCenter(ecom), isoviz.Write(ecomLabel))

	psi := isoviz.NewArrow(e0.Bounds().Center(), ecom.Bounds().Center(), style.Isogeny, style.StrokeCurve)
	psiLabel := isoviz.NewMathLabel("ψ", style.SizeHeading, style.Isogeny)
	isoviz.NextTo(psiLabel, psi, isoviz.Left, isoviz.BuffTight)
	tl.Play(isoviz.GrowArrow(psi), isoviz.Write(psiLabel))

	commitNote := isoviz.NewLabel("random secret", style.SizeAnnotation, style.Isogeny)
	isoviz.NextTo(commitNote, psi, isoviz.Left, isoviz.BuffLoose)
	tl.Play(isoviz.FadeIn(commitNote))
	tl.Wait(style.PauseLong)

	// Challenge: derived from a hash, so the verifier can recompute it.
	step2 := isoviz.NewLabel("2. CHALLENGE", style.SizeStepMarker, style.Endo)
	isoviz.NextTo(step2, step1, isoviz.Down, isoviz.BuffLoose)
	tl.Play(isoviz.Write(step2), isoviz.FadeOut(commitNote))

	tl.Play(isoviz.GrowFromCenter(echl), isoviz.Write(echlLabel))

	phi := isoviz.NewArrow(ecom.Bounds().Center(), echl.Bounds().Center(), style.Endo, style.StrokeCurve)
	phiLabel := isoviz.NewMathLabel("φ", style.SizeHeading, style.Endo)
	isoviz.NextTo(phiLabel, phi, isoviz.Down, isoviz.BuffTight)
	tl.Play(isoviz.GrowArrow(phi), isoviz.Write(phiLabel))

	hashNote := isoviz.NewMathLabel("φ = Hash(EA, Ecom, message)", style.SizeBody, style.Endo)
	isoviz.ToEdge(hashNote, isoviz.Down, isoviz.EdgeBuff)
	tl.Play(isoviz.Write(hashNote))
	tl.Wait(style.PauseLong)

	// Response: the prover closes the square with σ.
	step3 := isoviz.NewLabel("3. RESPONSE", style.SizeStepMarker, style.Highlight)
	isoviz.NextTo(step3, step2, isoviz.Down, isoviz.BuffLoose)
	tl.Play(isoviz.Write(step3), isoviz.FadeOut(hashNote))

	sigma := isoviz.NewArrow(ea.Bounds().Center(), echl.Bounds().Center(), style.Highlight, style.StrokeEmphasis)
	sigmaLabel := isoviz.NewMathLabel("σ: EA → Echl", style.SizeHeading, style.Highlight)
	isoviz.NextTo(sigmaLabel, sigma, isoviz.Right, isoviz.BuffDefault)
	tl.Play(isoviz.GrowArrow(sigma), isoviz.Write(sigmaLabel))
	tl.Wait(style.PauseLong)

	// Pull focus: dim everything that is not part of the signature.
	dimmed := []isoviz.Object{
		step1, step2, step3,
		e0, e0Label, ea, eaLabel, publicNote,
		tau, tauLabel, secretNote,
		psi, psiLabel, phi, phiLabel,
		echl, echlLabel,
	}
	var anims []isoviz.Animation
	for _, o := range dimmed {
		anims = append(anims, isoviz.FadeTo(o, style.DimOpacity))
	}
	anims = append(anims,
		isoviz.Recolor(ecom, style.Accent),
		isoviz.Recolor(ecomLabel, style.Accent),
		isoviz.Recolor(sigmaLabel, style.Accent),
		isoviz.Recolor(sigma, style.Accent),
	)
	tl.Play(anims...)

	sigText := isoviz.NewMathLabel("Signature = (Ecom, σ)", style.SizeHeading, style.Accent)
	isoviz.MoveTo(sigText, gg.Pt(0, 2.8))
	tl.Play(isoviz.Write(sigText))
	tl.Wait(style.PauseFinal)
}
