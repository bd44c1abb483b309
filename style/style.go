package style

// Font sizes in display points, designed for the nominal 60 px-per-unit
// frame. MinFontSize is a hard floor: anything smaller is unreadable once
// GIF compression has had its way.
const (
	SizeTitle      = 42 // one per scene, top edge
	SizeHeading    = 36 // curve and map labels
	SizeBody       = 28 // explanatory sentences
	SizeStepMarker = 22 // numbered protocol steps in a corner
	SizeAnnotation = 20 // parenthetical notes next to objects

	MinFontSize = 20
)

// Stroke widths in pixels at the nominal frame size.
const (
	StrokeEdge     = 2 // graph edges, secondary lines
	StrokeCurve    = 3 // default curve and arrow stroke
	StrokeEmphasis = 5 // highlighted strokes
	StrokeMax      = 6 // absolute ceiling

	StrokeMin = 1
)

// Pause durations in seconds. Scenes wait with these rather than ad-hoc
// numbers so the pacing feels uniform across the series.
const (
	PauseShort  = 1.0 // beat after a minor reveal
	PauseMedium = 2.5 // let a new object register
	PauseLong   = 3.5 // let a full protocol step sink in
	PauseFinal  = 8.0 // closing frame, long enough to screenshot
)

// Default animation run times in seconds.
const (
	RunTimeFast    = 0.5
	RunTimeDefault = 1.0
	RunTimeSlow    = 2.0
)

// DimOpacity is the opacity backgrounded objects are faded to when the
// scene pulls focus to a conclusion.
const DimOpacity = 0.15
