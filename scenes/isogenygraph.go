package scenes

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz"
	"github.com/isoviz/isoviz/curve"
	"github.com/isoviz/isoviz/style"
)

func init() { isoviz.Register(IsogenyGraph{}) }

// IsogenyGraph introduces the supersingular isogeny graph: curves as
// nodes, isogenies as edges, and the random walk that hides a secret.
type IsogenyGraph struct{}

func (IsogenyGraph) Name() string { return "isogenygraph" }

const graphNodes = 12

func (IsogenyGraph) Construct(tl *isoviz.Timeline) {
	title := isoviz.NewTitle("The Supersingular Isogeny Graph")
	tl.Play(isoviz.Write(title))
	tl.Wait(style.PauseShort)

	// Ring layout with seeded jitter so the graph looks organic but
	// renders identically every time.
	rng := rand.New(rand.NewSource(42))
	nodes := make([]*isoviz.CurveShape, graphNodes)
	labels := make([]*isoviz.Label, graphNodes)
	centers := make([]gg.Point, graphNodes)
	for i := 0; i < graphNodes; i++ {
		angle := float64(i)*2*math.Pi/graphNodes + rng.Float64()*0.4 - 0.2
		radius := 2.4 + rng.Float64()*0.4 - 0.2
		ring := gg.Pt(radius*math.Cos(angle), radius*math.Sin(angle))
		// The whole graph sits 0.4 below center to clear the title.
		pos := ring.Add(gg.Pt(0, -0.4))
		centers[i] = pos

		p := curve.Smooth
		p.A = -1 - float64(i%4)
		p.B = 1 + float64(i%3)
		node := isoviz.MustCurveIcon(p)
		node.SetStrokeWidth(style.StrokeEdge)
		isoviz.ScaleBy(node, 0.16)
		isoviz.MoveTo(node, pos)
		nodes[i] = node

		label := isoviz.NewMathLabel(fmt.Sprintf("E%d", i), style.SizeAnnotation, style.Ink)
		isoviz.MoveTo(label, ring.Mul(1.25).Add(gg.Pt(0, -0.4)))
		labels[i] = label
	}

	var grows, fades []isoviz.Animation
	for i := range nodes {
		grows = append(grows, isoviz.GrowFromCenter(nodes[i]))
		fades = append(fades, isoviz.FadeIn(labels[i]))
	}
	tl.Play(isoviz.Lagged(0.1, grows...))
	tl.Play(isoviz.Lagged(0.05, fades...))

	explanation := isoviz.NewLabel("Each node is a supersingular elliptic curve", style.SizeBody, style.Faint)
	isoviz.ToEdge(explanation, isoviz.Down, isoviz.EdgeBuff)
	tl.Play(isoviz.FadeIn(explanation))
	tl.Wait(style.PauseShort)

	// Every node gets degree about 3, like the 2-isogeny graph.
	edgePairs := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6},
		{6, 7}, {7, 8}, {8, 9}, {9, 10}, {10, 11}, {11, 0},
		{0, 5}, {2, 8}, {3, 10}, {1, 7}, {4, 9}, {6, 11},
	}
	edges := make([]*isoviz.Polygon, len(edgePairs))
	var creates []isoviz.Animation
	for i, pair := range edgePairs {
		from, to := centers[pair[0]], centers[pair[1]]
		dir := to.Sub(from).Normalize()
		edge := isoviz.NewLine(from.Add(dir.Mul(0.5)), to.Sub(dir.Mul(0.5)), style.Isogeny, style.StrokeEdge)
		edge.SetOpacity(0.6)
		edges[i] = edge
		creates = append(creates, isoviz.Create(edge, isoviz.WithRunTime(style.RunTimeFast)))
	}
	tl.Play(isoviz.Lagged(0.1, creates...))

	edgeNote := isoviz.NewLabel("Edges are isogenies between them", style.SizeBody, style.Faint)
	isoviz.ToEdge(edgeNote, isoviz.Down, isoviz.EdgeBuff)
	tl.Play(isoviz.FadeOut(explanation), isoviz.FadeIn(edgeNote))
	tl.Wait(style.PauseMedium)

	// Walk a short path to foreshadow the secret isogeny: a composition
	// of small steps nobody can reverse-engineer from the endpoints.
	walk := []int{0, 1, 13, 8} // E0→E1→E2→E8→E9 through edgePairs
	walkNote := isoviz.NewLabel("A secret key is a random walk", style.SizeBody, style.Secret)
	isoviz.ToEdge(walkNote, isoviz.Down, isoviz.EdgeBuff)
	tl.Play(isoviz.FadeOut(edgeNote), isoviz.FadeIn(walkNote))

	for _, e := range walk {
		tl.Play(
			isoviz.Recolor(edges[e], style.Secret, isoviz.WithRunTime(style.RunTimeFast)),
			isoviz.FadeTo(edges[e], 1, isoviz.WithRunTime(style.RunTimeFast)),
		)
	}
	tl.Wait(style.PauseFinal)
}
