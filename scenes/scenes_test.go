package scenes_test

import (
	"testing"

	"github.com/isoviz/isoviz"
	"github.com/isoviz/isoviz/check"
	_ "github.com/isoviz/isoviz/scenes"
)

var wantScenes = []string{
	"endomorphisms", "isogenygraph", "kernels", "protocol", "testscene", "torsion",
}

func TestAllScenesRegistered(t *testing.T) {
	for _, name := range wantScenes {
		if _, ok := isoviz.Lookup(name); !ok {
			t.Errorf("scene %q not registered", name)
		}
	}
}

// TestScenesConform builds every registered scene and lints it against the
// default rule set. A failure here means a scene drifted from the style
// guide; fix the scene, not the rules.
func TestScenesConform(t *testing.T) {
	for _, s := range isoviz.Scenes() {
		t.Run(s.Name(), func(t *testing.T) {
			report := check.Run(s, check.Default()...)
			if !report.OK() {
				t.Errorf("%s", report)
			}
		})
	}
}

func TestScenesHaveContent(t *testing.T) {
	for _, s := range isoviz.Scenes() {
		t.Run(s.Name(), func(t *testing.T) {
			tl := isoviz.Build(s)
			if tl.Steps() == 0 {
				t.Error("scene has no steps")
			}
			if tl.Duration() <= 0 {
				t.Error("scene has no duration")
			}
		})
	}
}

func TestScenesAreRebuildable(t *testing.T) {
	// Construct must produce fresh objects each call; a timeline consumed
	// once cannot be reused because seeking is forward-only.
	s, ok := isoviz.Lookup("testscene")
	if !ok {
		t.Fatal("testscene not registered")
	}
	a, b := isoviz.Build(s), isoviz.Build(s)
	if err := a.Seek(a.Duration()); err != nil {
		t.Fatal(err)
	}
	if err := b.Seek(0); err != nil {
		t.Fatalf("second build was not independent: %v", err)
	}
}
