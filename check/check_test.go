package check_test

import (
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz"
	"github.com/isoviz/isoviz/check"
	"github.com/isoviz/isoviz/style"
)

// buildScene wraps a construct function so each test can describe its
// scene inline.
type buildScene struct {
	name  string
	build func(tl *isoviz.Timeline)
}

func (s buildScene) Name() string                  { return s.name }
func (s buildScene) Construct(tl *isoviz.Timeline) { s.build(tl) }

func hasRule(report check.Report, id string) bool {
	for _, v := range report.Violations {
		if v.Rule == id {
			return true
		}
	}
	return false
}

func TestRun_ConformingScene(t *testing.T) {
	s := buildScene{name: "conforming", build: func(tl *isoviz.Timeline) {
		tl.Add(
			isoviz.NewDot(isoviz.Origin, style.Curve),
			isoviz.NewLabel("E0", style.SizeBody, style.Ink),
			isoviz.NewLine(gg.Pt(-2, 0), gg.Pt(2, 0), style.Isogeny, style.StrokeEdge),
		)
		tl.Wait(1)
	}}
	report := check.Run(s, check.Default()...)
	if !report.OK() {
		t.Fatalf("conforming scene flagged:\n%s", report)
	}
	if !strings.Contains(report.String(), "ok") {
		t.Errorf("report string = %q", report.String())
	}
}

func TestRun_Violations(t *testing.T) {
	tests := []struct {
		rule  string
		build func(tl *isoviz.Timeline)
	}{
		{
			rule: "min-font-size",
			build: func(tl *isoviz.Timeline) {
				tl.Add(isoviz.NewLabel("tiny", 12, style.Ink))
			},
		},
		{
			rule: "palette-only",
			build: func(tl *isoviz.Timeline) {
				tl.Add(isoviz.NewDot(isoviz.Origin, gg.RGBA{R: 0.5, G: 0.2, B: 0.9, A: 1}))
			},
		},
		{
			rule: "stroke-width",
			build: func(tl *isoviz.Timeline) {
				tl.Add(isoviz.NewLine(gg.Pt(-1, 0), gg.Pt(1, 0), style.Curve, 10))
			},
		},
		{
			rule: "in-frame",
			build: func(tl *isoviz.Timeline) {
				tl.Add(isoviz.NewDot(gg.Pt(20, 0), style.Curve))
			},
		},
		{
			rule:  "non-empty",
			build: func(tl *isoviz.Timeline) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			report := check.Run(buildScene{name: tt.rule, build: tt.build}, check.Default()...)
			if report.OK() {
				t.Fatal("scene passed")
			}
			if !hasRule(report, tt.rule) {
				t.Errorf("report missing rule %q:\n%s", tt.rule, report)
			}
		})
	}
}

func TestInFrame_SkipsInvisible(t *testing.T) {
	s := buildScene{name: "parked", build: func(tl *isoviz.Timeline) {
		off := isoviz.NewDot(gg.Pt(20, 0), style.Curve)
		off.SetOpacity(0)
		tl.Add(off, isoviz.NewDot(isoviz.Origin, style.Curve))
		tl.Wait(1)
	}}
	report := check.Run(s, check.InFrame{Margin: 0.1})
	if !report.OK() {
		t.Fatalf("invisible object flagged:\n%s", report)
	}
}

func TestStrokeWidthRange_SkipsUnstroked(t *testing.T) {
	s := buildScene{name: "unstroked", build: func(tl *isoviz.Timeline) {
		tl.Add(isoviz.NewDot(isoviz.Origin, style.Curve))
		tl.Wait(1)
	}}
	report := check.Run(s, check.StrokeWidthRange{Min: style.StrokeMin, Max: style.StrokeMax})
	if !report.OK() {
		t.Fatalf("unstroked dot flagged:\n%s", report)
	}
}

func TestRun_ChecksFinalState(t *testing.T) {
	// The dot starts off-frame but animates into it; only the end state is
	// judged.
	s := buildScene{name: "fly-in", build: func(tl *isoviz.Timeline) {
		d := isoviz.NewDot(gg.Pt(20, 0), style.Curve)
		tl.Play(isoviz.MoveBy(d, isoviz.Left.Mul(20)))
	}}
	report := check.Run(s, check.Default()...)
	if !report.OK() {
		t.Fatalf("final state flagged:\n%s", report)
	}
}
