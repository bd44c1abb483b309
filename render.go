package isoviz

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz/style"
)

// Render defaults: a 14:8 frame at the nominal 60 px-per-unit scale.
const (
	DefaultWidth  = 840
	DefaultHeight = 480
	DefaultFPS    = 15
)

// Option configures a Renderer.
type Option func(*renderOptions)

type renderOptions struct {
	width, height int
	fps           int
	background    gg.RGBA
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		width:      DefaultWidth,
		height:     DefaultHeight,
		fps:        DefaultFPS,
		background: style.Background,
	}
}

// WithSize sets the output size in pixels. Sizes should keep the frame's
// 14:8 aspect; other aspects render with the uniform scale of the smaller
// axis.
func WithSize(width, height int) Option {
	return func(o *renderOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithFPS sets the sampling rate. GIF delays are in centiseconds, so rates
// above 50 are clamped by the format; 10-20 is the useful range.
func WithFPS(fps int) Option {
	return func(o *renderOptions) {
		if fps > 0 {
			o.fps = fps
		}
	}
}

// WithBackground overrides the background color, for one-off diagrams on
// light backgrounds.
func WithBackground(c gg.RGBA) Option {
	return func(o *renderOptions) { o.background = c }
}

// Renderer samples scene timelines into frames and encodes them.
// A Renderer is immutable after creation and may render many scenes.
type Renderer struct {
	opts renderOptions
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Camera returns the camera this renderer draws through.
func (r *Renderer) Camera() Camera {
	return Camera{Width: r.opts.width, Height: r.opts.height}
}

// FrameCount returns the number of frames a timeline of the given duration
// produces, endpoints included.
func (r *Renderer) FrameCount(duration float64) int {
	if duration <= 0 {
		return 1
	}
	return int(math.Ceil(duration*float64(r.opts.fps))) + 1
}

// Frames renders the scene frame by frame, invoking fn for each. Each
// image is an independent copy, so fn may retain it. Rendering stops on
// context cancellation or the first fn error.
func (r *Renderer) Frames(ctx context.Context, s Scene, fn func(index int, img image.Image) error) error {
	tl := Build(s)
	cam := r.Camera()
	total := tl.Duration()
	n := r.FrameCount(total)

	Logger().Info("rendering scene",
		"scene", s.Name(), "frames", n, "duration", total, "fps", r.opts.fps)

	dc := gg.NewContext(r.opts.width, r.opts.height)
	defer dc.Close()

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("render %s: %w", s.Name(), err)
		}
		t := math.Min(float64(i)/float64(r.opts.fps), total)
		if err := tl.Seek(t); err != nil {
			return fmt.Errorf("render %s: %w", s.Name(), err)
		}

		dc.ClearWithColor(r.opts.background)
		tl.Root().Draw(dc, cam)

		if err := fn(i, dc.Image()); err != nil {
			return err
		}
		Logger().Debug("frame rendered", "scene", s.Name(), "frame", i, "time", t)
	}
	return nil
}

// Snapshot renders the single frame at time t, for thumbnails and tests.
func (r *Renderer) Snapshot(s Scene, t float64) (image.Image, error) {
	tl := Build(s)
	if err := tl.Seek(math.Min(math.Max(t, 0), tl.Duration())); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", s.Name(), err)
	}

	dc := gg.NewContext(r.opts.width, r.opts.height)
	defer dc.Close()
	dc.ClearWithColor(r.opts.background)
	tl.Root().Draw(dc, r.Camera())
	return dc.Image(), nil
}

// RenderGIF renders the scene and encodes it as an animated GIF.
func (r *Renderer) RenderGIF(ctx context.Context, s Scene, w io.Writer) error {
	enc := newGIFEncoder(r.opts.fps, r.opts.background)
	err := r.Frames(ctx, s, func(_ int, img image.Image) error {
		enc.add(img)
		return nil
	})
	if err != nil {
		return err
	}
	if err := enc.encode(w); err != nil {
		return fmt.Errorf("encode %s: %w", s.Name(), err)
	}
	return nil
}

// SaveGIF renders the scene to a GIF file.
func (r *Renderer) SaveGIF(ctx context.Context, s Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", s.Name(), err)
	}
	defer f.Close()

	if err := r.RenderGIF(ctx, s, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", s.Name(), err)
	}
	Logger().Info("scene saved", "scene", s.Name(), "path", path)
	return nil
}
