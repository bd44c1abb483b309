// Package isoviz builds short explainer animations about isogeny-based
// signature protocols and renders them to GIF.
//
// # Overview
//
// isoviz is a thin, declarative layer on top of the gg 2D canvas library
// (github.com/gogpu/gg). A scene describes visual objects (curve icons,
// labels, arrows) and a timeline of animations over them; the renderer
// samples the timeline at a fixed frame rate, draws each frame through gg,
// and encodes the result as an animated GIF.
//
// # Quick Start
//
//	type hello struct{}
//
//	func (hello) Name() string { return "hello" }
//
//	func (hello) Construct(tl *isoviz.Timeline) {
//		dot := isoviz.NewDot(isoviz.Origin, style.Highlight)
//		tl.Play(isoviz.FadeIn(dot))
//		tl.Wait(style.PauseShort)
//	}
//
//	r := isoviz.NewRenderer()
//	err := r.SaveGIF(context.Background(), hello{}, "hello.gif")
//
// # Coordinate System
//
// Scenes use a camera-independent coordinate system:
//   - Origin (0,0) at the frame center
//   - X increases right, Y increases up
//   - The visible frame is FrameWidth x FrameHeight scene units
//
// The Camera maps scene units to pixels at render time; scene code never
// deals in pixels directly.
//
// # Style Guide
//
// Color, font-size, stroke-width and timing conventions live in the style
// subpackage. The check subpackage lints a constructed scene against those
// conventions (minimum font size, palette membership, frame bounds).
//
// # Architecture
//
// The library is organized into:
//   - Root package: objects, animations, timeline, renderer
//   - curve: parametric elliptic-curve shape generation
//   - style: palette, fonts, sizes, timing conventions
//   - check: scene convention checker
//   - scenes: the explainer scenes shipped with the repo
//   - cmd/isoviz: batch GIF renderer
package isoviz
