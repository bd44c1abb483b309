package isoviz

import (
	"github.com/gogpu/gg"

	"github.com/isoviz/isoviz/style"
)

// Label is a single line of text placed by its center. Size is a style
// font size in display points; Role picks the embedded font.
type Label struct {
	visual
	text string
	role style.Role
	size float64
	pos  gg.Point
}

// NewLabel creates a regular-weight label centered at the origin.
func NewLabel(text string, size float64, c gg.RGBA) *Label {
	return NewStyledLabel(text, style.Regular, size, c)
}

// NewMathLabel creates an italic label for symbol-heavy text like "E0" or
// "τ: E0 → EA".
func NewMathLabel(text string, size float64, c gg.RGBA) *Label {
	return NewStyledLabel(text, style.Italic, size, c)
}

// NewTitle creates a bold title-sized label at the top edge of the frame.
func NewTitle(text string) *Label {
	l := NewStyledLabel(text, style.Bold, style.SizeTitle, style.Ink)
	ToEdge(l, Up, EdgeBuff)
	return l
}

// NewStyledLabel creates a label with an explicit font role.
func NewStyledLabel(text string, role style.Role, size float64, c gg.RGBA) *Label {
	return &Label{visual: newVisual(c), text: text, role: role, size: size}
}

func (l *Label) Text() string     { return l.text }
func (l *Label) Size() float64    { return l.size }
func (l *Label) Role() style.Role { return l.role }

// SetSize changes the font size. The label stays centered in place.
func (l *Label) SetSize(size float64) { l.size = size }

func (l *Label) Bounds() Rect {
	w, h := style.MeasureUnits(l.text, l.role, l.size)
	return RectAround(l.pos, w, h)
}

func (l *Label) Shift(delta gg.Point) { l.pos = l.pos.Add(delta) }

func (l *Label) Draw(dc *gg.Context, cam Camera) {
	if l.opacity == 0 || l.text == "" {
		return
	}
	// Write reveals the text rune by rune rather than clipping glyph
	// outlines; gg draws text straight to the pixmap, outside the clip
	// stack.
	text := l.text
	if l.fraction < 1 {
		runes := []rune(text)
		n := int(l.fraction * float64(len(runes)))
		text = string(runes[:n])
	}
	if text == "" {
		return
	}

	dc.SetFont(style.Face(l.role, cam.FontPixels(l.size)))
	dc.SetColor(l.strokeColor())

	// Anchor the revealed prefix at the full label's left edge so the
	// text writes out left to right instead of re-centering every frame.
	b := l.Bounds()
	x, y := cam.ToPixel(gg.Pt(b.Min.X, l.pos.Y))
	dc.DrawStringAnchored(text, x, y, 0, 0.5)
}
