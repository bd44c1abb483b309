package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
output: out/gifs
fps: 20
scenes:
  - name: protocol
  - name: torsion
    output: torsion-demo.gif
`)
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Output != "out/gifs" || m.FPS != 20 {
		t.Errorf("overrides = %q, %d", m.Output, m.FPS)
	}
	if m.Width != 0 || m.Height != 0 {
		t.Errorf("unset size = %dx%d, want zero", m.Width, m.Height)
	}
	if len(m.Scenes) != 2 {
		t.Fatalf("scenes = %d, want 2", len(m.Scenes))
	}
	if m.Scenes[0].Name != "protocol" || m.Scenes[0].Output != "" {
		t.Errorf("scene 0 = %+v", m.Scenes[0])
	}
	if m.Scenes[1].Output != "torsion-demo.gif" {
		t.Errorf("scene 1 output = %q", m.Scenes[1].Output)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"no scenes", "fps: 20\n"},
		{"empty scene list", "scenes: []\n"},
		{"unnamed scene", "scenes:\n  - output: a.gif\n"},
		{"malformed yaml", "scenes: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeManifest(t, tt.contents)); err == nil {
				t.Error("load succeeded")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("load succeeded")
	}
}
