package isoviz

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz/style"
)

// gifEncoder accumulates frames and writes a looping GIF. Quantization
// uses a fixed palette built from the style guide rather than a per-frame
// adaptive one: every approved color blended toward the background at
// several levels covers exactly the colors scenes are allowed to produce,
// and a stable palette avoids flicker between frames.
type gifEncoder struct {
	palette color.Palette
	delay   int // centiseconds per frame
	frames  []*image.Paletted
}

const fadeLevels = 20

func newGIFEncoder(fps int, background gg.RGBA) *gifEncoder {
	delay := 100 / fps
	if delay < 2 {
		delay = 2 // 50 fps is the fastest delay GIF can express reliably
	}
	return &gifEncoder{palette: stylePalette(background), delay: delay}
}

// stylePalette builds the quantization palette: the background, then each
// style color ramped from the background up to full strength. Capped well
// under the 256-entry GIF limit.
func stylePalette(background gg.RGBA) color.Palette {
	p := color.Palette{background.Color()}
	for _, c := range style.Palette() {
		for level := 1; level <= fadeLevels; level++ {
			t := float64(level) / fadeLevels
			p = append(p, blend(background, c, t).Color())
		}
	}
	return p
}

// blend mixes a toward b by t in straight alpha.
func blend(a, b gg.RGBA, t float64) gg.RGBA {
	return gg.RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: 1,
	}
}

// add quantizes a frame onto the style palette with error diffusion.
func (e *gifEncoder) add(img image.Image) {
	bounds := img.Bounds()
	frame := image.NewPaletted(bounds, e.palette)
	draw.FloydSteinberg.Draw(frame, bounds, img, bounds.Min)
	e.frames = append(e.frames, frame)
}

// encode writes all frames as an endlessly looping GIF.
func (e *gifEncoder) encode(w io.Writer) error {
	delays := make([]int, len(e.frames))
	for i := range delays {
		delays[i] = e.delay
	}
	return gif.EncodeAll(w, &gif.GIF{
		Image:     e.frames,
		Delay:     delays,
		LoopCount: 0,
	})
}
