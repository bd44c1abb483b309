// Package style is the house style guide as code: the color palette, font
// roles and sizes, stroke widths, frame geometry, and timing conventions
// every scene in this repository follows. The check package lints scenes
// against these values.
package style

import "github.com/gogpu/gg"

// Background is near-black; GIF dithering behaves better than on pure black.
var Background = gg.Hex("#0B0B0F")

// Semantic colors. Scene code should use these names, not raw hex values:
// a curve is always Curve blue, a secret always Secret red, and so on.
var (
	Curve     = gg.Hex("#29ABCA") // elliptic curve strokes and fills
	Public    = gg.Hex("#9CDCEB") // public keys and published curves
	Secret    = gg.Hex("#FC6255") // secret keys and hidden isogenies
	Isogeny   = gg.Hex("#F7C797") // isogeny arrows and step markers
	Highlight = gg.Hex("#83C167") // responses, successful checks
	Endo      = gg.Hex("#5CD0B3") // endomorphisms, challenge data
	Result    = gg.Hex("#CAA3E8") // derived objects
	Accent    = gg.Hex("#FFFF00") // final emphasis only
	Ink       = gg.Hex("#FFFFFF") // primary text
	Faint     = gg.Hex("#888888") // secondary text and hints
)

// Palette returns the full set of approved colors, Background included.
func Palette() []gg.RGBA {
	return []gg.RGBA{
		Background, Curve, Public, Secret, Isogeny,
		Highlight, Endo, Result, Accent, Ink, Faint,
	}
}

// InPalette reports whether c matches an approved color within tol per
// channel, ignoring alpha. Faded or dimmed objects keep their palette hue,
// so opacity never takes a color off-palette.
func InPalette(c gg.RGBA, tol float64) bool {
	for _, p := range Palette() {
		if abs(c.R-p.R) <= tol && abs(c.G-p.G) <= tol && abs(c.B-p.B) <= tol {
			return true
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
