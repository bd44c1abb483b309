package isoviz

import (
	"bytes"
	"context"
	"image"
	"image/gif"
	"testing"

	"github.com/isoviz/isoviz/style"
)

// blinkScene is a minimal one-second scene for renderer tests: a dot
// fades in and holds.
type blinkScene struct{}

func (blinkScene) Name() string { return "blink" }

func (blinkScene) Construct(tl *Timeline) {
	d := NewDot(Origin, style.Highlight)
	d.SetRadius(0.5)
	tl.Play(FadeIn(d, WithRunTime(0.5)))
	tl.Wait(0.5)
}

func TestRenderer_FrameCount(t *testing.T) {
	r := NewRenderer(WithFPS(10))
	tests := []struct {
		duration float64
		want     int
	}{
		{0, 1},
		{1, 11},
		{0.95, 11}, // partial trailing frame rounds up
		{2, 21},
	}
	for _, tt := range tests {
		if got := r.FrameCount(tt.duration); got != tt.want {
			t.Errorf("FrameCount(%g) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestRenderer_Frames(t *testing.T) {
	r := NewRenderer(WithFPS(10), WithSize(140, 80))
	var frames []image.Image
	err := r.Frames(context.Background(), blinkScene{}, func(i int, img image.Image) error {
		if i != len(frames) {
			t.Errorf("frame index %d out of order", i)
		}
		frames = append(frames, img)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := r.FrameCount(1); len(frames) != want {
		t.Fatalf("got %d frames, want %d", len(frames), want)
	}
	b := frames[0].Bounds()
	if b.Dx() != 140 || b.Dy() != 80 {
		t.Errorf("frame size = %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderer_FramesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRenderer(WithFPS(10), WithSize(140, 80))
	err := r.Frames(ctx, blinkScene{}, func(int, image.Image) error {
		t.Fatal("frame rendered despite cancellation")
		return nil
	})
	if err == nil {
		t.Fatal("cancelled render succeeded")
	}
}

func TestRenderer_Snapshot(t *testing.T) {
	r := NewRenderer(WithSize(140, 80))
	img, err := r.Snapshot(blinkScene{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 140 || b.Dy() != 80 {
		t.Errorf("snapshot size = %dx%d", b.Dx(), b.Dy())
	}

	// Out-of-range times clamp instead of failing.
	if _, err := r.Snapshot(blinkScene{}, 99); err != nil {
		t.Errorf("late snapshot: %v", err)
	}
	if _, err := r.Snapshot(blinkScene{}, -1); err != nil {
		t.Errorf("early snapshot: %v", err)
	}
}

func TestRenderer_GIFRoundTrip(t *testing.T) {
	r := NewRenderer(WithFPS(5), WithSize(140, 80))
	var buf bytes.Buffer
	if err := r.RenderGIF(context.Background(), blinkScene{}, &buf); err != nil {
		t.Fatal(err)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if want := r.FrameCount(1); len(decoded.Image) != want {
		t.Errorf("decoded %d frames, want %d", len(decoded.Image), want)
	}
	if decoded.LoopCount != 0 {
		t.Errorf("loop count = %d, want 0 (loop forever)", decoded.LoopCount)
	}
	for i, d := range decoded.Delay {
		if d != 20 { // 100 / 5 fps
			t.Errorf("frame %d delay = %d, want 20", i, d)
		}
	}
}

func TestOptions_IgnoreInvalid(t *testing.T) {
	r := NewRenderer(WithFPS(-1), WithSize(0, 0))
	if r.opts.fps != DefaultFPS {
		t.Errorf("fps = %d, want default", r.opts.fps)
	}
	if r.opts.width != DefaultWidth || r.opts.height != DefaultHeight {
		t.Errorf("size = %dx%d, want defaults", r.opts.width, r.opts.height)
	}
}
