// Package manifest loads the optional YAML render manifest the batch
// renderer accepts instead of rendering every registered scene.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest selects scenes to render and optionally overrides output
// settings. Zero fields defer to the renderer's flags and defaults.
type Manifest struct {
	Output string  `yaml:"output,omitempty"` // output directory
	FPS    int     `yaml:"fps,omitempty"`
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	Scenes []Entry `yaml:"scenes"`
}

// Entry names one scene and, optionally, a non-default output file.
type Entry struct {
	Name   string `yaml:"name"`
	Output string `yaml:"output,omitempty"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	if len(m.Scenes) == 0 {
		return nil, fmt.Errorf("manifest %s: no scenes listed", path)
	}
	for i, e := range m.Scenes {
		if e.Name == "" {
			return nil, fmt.Errorf("manifest %s: scene %d has no name", path, i)
		}
	}
	return &m, nil
}
