package curve

import (
	"errors"
	"math"
	"testing"
)

func TestTrace_InvalidParams(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"nan coefficient", Params{A: math.NaN(), B: 1, XMin: -1, XMax: 1, Samples: 10}},
		{"inf coefficient", Params{A: 0, B: math.Inf(1), XMin: -1, XMax: 1, Samples: 10}},
		{"empty range", Params{A: -1, B: 1, XMin: 2, XMax: -2, Samples: 10}},
		{"degenerate range", Params{A: -1, B: 1, XMin: 1, XMax: 1, Samples: 10}},
		{"one sample", Params{A: -1, B: 1, XMin: -1, XMax: 1, Samples: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Trace(tt.p); err == nil {
				t.Errorf("Trace(%+v) succeeded, want error", tt.p)
			}
		})
	}
}

func TestTrace_NoRealPoints(t *testing.T) {
	// x³ - 100 is negative everywhere on [-2, 2].
	p := Params{A: 0, B: -100, XMin: -2, XMax: 2, Samples: 50}
	_, err := Trace(p)
	if !errors.Is(err, ErrNoRealPoints) {
		t.Fatalf("Trace = %v, want ErrNoRealPoints", err)
	}
}

func TestTrace_BranchSymmetry(t *testing.T) {
	branches, err := Trace(Default())
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if len(branches) == 0 {
		t.Fatal("no branches")
	}
	for bi, b := range branches {
		if len(b.Upper) != len(b.Lower) {
			t.Fatalf("branch %d: %d upper vs %d lower points", bi, len(b.Upper), len(b.Lower))
		}
		for i := range b.Upper {
			if b.Upper[i].X != b.Lower[i].X {
				t.Errorf("branch %d point %d: x mismatch %g vs %g", bi, i, b.Upper[i].X, b.Lower[i].X)
			}
		}
	}
}

func TestTrace_SplitsComponents(t *testing.T) {
	// y² = x³ - 3x is real on [-√3, 0] and [√3, ∞): two components
	// inside the default range.
	p := Params{A: -3, B: 0, XMin: -2.5, XMax: 2.5, Samples: 400}
	branches, err := Trace(p)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if len(branches) != 2 {
		t.Fatalf("got %d branches, want 2", len(branches))
	}
}

func TestTrace_Centered(t *testing.T) {
	branches, err := Trace(Default())
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, b := range branches {
		for _, pt := range b.Upper {
			minX = math.Min(minX, pt.X)
			maxX = math.Max(maxX, pt.X)
		}
	}
	if mid := (minX + maxX) / 2; math.Abs(mid) > 1e-9 {
		t.Errorf("x center = %g, want 0", mid)
	}
}

func TestOutline_Closed(t *testing.T) {
	pts, err := Outline(Default())
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if len(pts) < 4 {
		t.Fatalf("outline has %d points", len(pts))
	}
	if pts[0] != pts[len(pts)-1] {
		t.Errorf("outline not closed: %v vs %v", pts[0], pts[len(pts)-1])
	}
}

func TestOutline_UsesLargestComponent(t *testing.T) {
	// y² = x³ - 3x has an oval over [-√3, 0] and an unbounded arc from
	// √3 on. The oval collects more samples in [-2.5, 2.5], so the
	// outline must trace it: width ≈ √3 rather than 2.5 - √3 ≈ 0.77.
	p := Params{A: -3, B: 0, XMin: -2.5, XMax: 2.5, Samples: 400}
	pts, err := Outline(p)
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, pt := range pts {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
	}
	if width := maxX - minX; width < 1.0 {
		t.Errorf("outline width = %g, looks like the smaller component", width)
	}
}

func TestPresets_AllTrace(t *testing.T) {
	presets := map[string]Params{
		"smooth": Smooth, "simple": Simple, "wide": Wide, "tall": Tall,
	}
	for name, p := range presets {
		t.Run(name, func(t *testing.T) {
			branches, err := Trace(p)
			if err != nil {
				t.Fatalf("Trace: %v", err)
			}
			if len(branches) == 0 {
				t.Fatal("no branches")
			}
		})
	}
}

func TestNormalized_Defaults(t *testing.T) {
	p := Params{A: -1, B: 1}.normalized()
	if p.XMin != DefaultXMin || p.XMax != DefaultXMax || p.Samples != DefaultSamples {
		t.Errorf("normalized = %+v", p)
	}
}
