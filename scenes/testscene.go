package scenes

import (
	"github.com/isoviz/isoviz"
	"github.com/isoviz/isoviz/style"
)

func init() { isoviz.Register(TestScene{}) }

// TestScene is the smoke-test scene: if this renders, the pipeline works.
type TestScene struct{}

func (TestScene) Name() string { return "testscene" }

func (TestScene) Construct(tl *isoviz.Timeline) {
	circle := isoviz.NewCircle(isoviz.Origin, 1, style.Curve, style.StrokeCurve)
	circle.SetFillOpacity(0.5)

	square := isoviz.NewSquare(isoviz.Origin, 2, style.Secret, style.StrokeCurve)

	tl.Play(isoviz.Create(circle))
	tl.Play(isoviz.Morph(circle, square))
	tl.Play(isoviz.MoveBy(circle, isoviz.Right.Mul(2)))
	tl.Wait(style.PauseShort)
}
