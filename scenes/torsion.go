package scenes

import (
	"github.com/isoviz/isoviz"
	"github.com/isoviz/isoviz/curve"
	"github.com/isoviz/isoviz/style"
)

func init() { isoviz.Register(Torsion{}) }

// Torsion marks torsion points on a curve and highlights the subgroup
// structure isogeny kernels are chosen from.
type Torsion struct{}

func (Torsion) Name() string { return "torsion" }

func (Torsion) Construct(tl *isoviz.Timeline) {
	title := isoviz.NewTitle("Torsion Points")
	tl.Play(isoviz.Write(title))
	tl.Wait(style.PauseShort)

	icon := isoviz.MustCurve(curve.Wide)
	isoviz.ScaleBy(icon, 0.7)
	isoviz.MoveTo(icon, isoviz.Origin.Add(isoviz.Down.Mul(0.3)))
	tl.Play(isoviz.Create(icon, isoviz.WithRunTime(style.RunTimeSlow)))
	tl.Wait(style.PauseShort)

	// Mark eight points spread along the outline. Positions are sampled
	// from the drawn shape, so they sit exactly on the stroke.
	outline, err := curve.Outline(curve.Wide)
	if err != nil {
		panic(err)
	}
	center := icon.Bounds().Center()
	dots := make([]*isoviz.Dot, 0, 8)
	var appear []isoviz.Animation
	for i := 0; i < 8; i++ {
		p := outline[i*len(outline)/8]
		pos := center.Add(p.Mul(0.7))
		dot := isoviz.NewDot(pos, style.Result)
		dot.SetRadius(0.1)
		dots = append(dots, dot)
		appear = append(appear, isoviz.FadeIn(dot, isoviz.WithRunTime(style.RunTimeFast)))
	}
	tl.Play(isoviz.Lagged(0.15, appear...))

	note := isoviz.NewMathLabel("E[N]: points P with N·P = O", style.SizeBody, style.Ink)
	isoviz.ToEdge(note, isoviz.Down, isoviz.EdgeBuff)
	tl.Play(isoviz.Write(note))
	tl.Wait(style.PauseMedium)

	// Highlight a 2-torsion subgroup inside the eight marked points.
	var highlight []isoviz.Animation
	for i, dot := range dots {
		if i%2 == 0 {
			highlight = append(highlight, isoviz.Recolor(dot, style.Highlight))
		} else {
			highlight = append(highlight, isoviz.FadeTo(dot, style.DimOpacity))
		}
	}
	subNote := isoviz.NewMathLabel("E[2] is a subgroup of order 4", style.SizeBody, style.Highlight)
	isoviz.ToEdge(subNote, isoviz.Down, isoviz.EdgeBuff)
	tl.Play(isoviz.Lagged(0.1, highlight...))
	tl.Play(isoviz.FadeOut(note), isoviz.FadeIn(subNote))
	tl.Wait(style.PauseMedium)

	kernelNote := isoviz.NewLabel("Isogeny kernels are chosen from torsion subgroups", style.SizeBody, style.Faint)
	isoviz.ToEdge(kernelNote, isoviz.Down, isoviz.EdgeBuff)
	tl.Play(isoviz.FadeOut(subNote), isoviz.FadeIn(kernelNote))
	tl.Wait(style.PauseFinal)
}
