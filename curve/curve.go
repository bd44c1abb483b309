// Package curve generates drawable shapes for short Weierstrass curves.
//
// The curves produced here are cosmetic. Trace samples y² = x³ + ax + b over
// a real interval and returns polylines suitable for stroking or filling;
// it performs no group law, point counting, or any other arithmetic a
// cryptographic library would. Shapes are centered on the origin in scene
// units so callers can place and scale them freely.
package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Default sampling parameters, matching the house style for curve icons.
const (
	DefaultXMin    = -2.5
	DefaultXMax    = 2.5
	DefaultSamples = 200
)

// Errors returned by Trace and Outline.
var (
	// ErrNoRealPoints means x³ + ax + b < 0 over the whole sampled range,
	// so the curve has no drawable branch there.
	ErrNoRealPoints = errors.New("curve: no real points in x range")
)

// Params defines the curve y² = x³ + ax + b and how it is sampled.
// The zero value is not useful; use Default or a preset and override fields.
type Params struct {
	A, B       float64 // Weierstrass coefficients
	XMin, XMax float64 // sampled x interval
	Samples    int     // number of sample points, at least 2
}

// Default returns the house-style default parameters: y² = x³ - x + 1
// sampled with 200 points over [-2.5, 2.5].
func Default() Params {
	return Params{A: -1, B: 1, XMin: DefaultXMin, XMax: DefaultXMax, Samples: DefaultSamples}
}

// normalized fills zero sampling fields with defaults. Coefficients are
// taken as given: a = b = 0 is a legitimate (singular) curve.
func (p Params) normalized() Params {
	if p.XMin == 0 && p.XMax == 0 {
		p.XMin, p.XMax = DefaultXMin, DefaultXMax
	}
	if p.Samples == 0 {
		p.Samples = DefaultSamples
	}
	return p
}

// validate rejects the only failure modes a shape generator has:
// non-finite numbers and a degenerate sampling range.
func (p Params) validate() error {
	for _, v := range []float64{p.A, p.B, p.XMin, p.XMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("curve: non-finite parameter in %+v", p)
		}
	}
	if p.XMax <= p.XMin {
		return fmt.Errorf("curve: empty x range [%g, %g]", p.XMin, p.XMax)
	}
	if p.Samples < 2 {
		return fmt.Errorf("curve: need at least 2 samples, got %d", p.Samples)
	}
	return nil
}

// rhs evaluates x³ + ax + b.
func (p Params) rhs(x float64) float64 {
	return x*x*x + p.A*x + p.B
}

// Branch holds one connected component of the traced curve. Upper and Lower
// share x coordinates; Lower is the mirror of Upper across the x axis.
// Both run left to right.
type Branch struct {
	Upper []gg.Point
	Lower []gg.Point
}

// Trace samples the curve and splits it into connected components where
// x³ + ax + b ≥ 0. Each component yields an upper and a lower polyline.
// The union of all points is re-centered so its bounding box is centered
// on the origin.
func Trace(p Params) ([]Branch, error) {
	p = p.normalized()
	if err := p.validate(); err != nil {
		return nil, err
	}

	var branches []Branch
	var cur Branch
	flush := func() {
		if len(cur.Upper) > 1 {
			branches = append(branches, cur)
		}
		cur = Branch{}
	}

	step := (p.XMax - p.XMin) / float64(p.Samples-1)
	for i := 0; i < p.Samples; i++ {
		x := p.XMin + float64(i)*step
		y2 := p.rhs(x)
		if y2 < 0 {
			flush()
			continue
		}
		y := math.Sqrt(y2)
		cur.Upper = append(cur.Upper, gg.Pt(x, y))
		cur.Lower = append(cur.Lower, gg.Pt(x, -y))
	}
	flush()

	if len(branches) == 0 {
		return nil, ErrNoRealPoints
	}
	center(branches)
	return branches, nil
}

// Outline returns a single closed polyline around the largest connected
// component: the upper branch left to right, then the lower branch right to
// left. The first and last points coincide. Useful for filled curve icons.
func Outline(p Params) ([]gg.Point, error) {
	branches, err := Trace(p)
	if err != nil {
		return nil, err
	}

	largest := branches[0]
	for _, b := range branches[1:] {
		if len(b.Upper) > len(largest.Upper) {
			largest = b
		}
	}

	out := make([]gg.Point, 0, 2*len(largest.Upper)+1)
	out = append(out, largest.Upper...)
	for i := len(largest.Lower) - 1; i >= 0; i-- {
		out = append(out, largest.Lower[i])
	}
	out = append(out, out[0])
	return out, nil
}

// center shifts all branches so the joint bounding box is centered on the
// origin. Curve icons are placed by their centers in scene code.
func center(branches []Branch) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range branches {
		for _, pt := range b.Upper {
			minX = math.Min(minX, pt.X)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
		for _, pt := range b.Lower {
			minY = math.Min(minY, pt.Y)
		}
	}
	off := gg.Pt(-(minX+maxX)/2, -(minY+maxY)/2)
	for _, b := range branches {
		shift(b.Upper, off)
		shift(b.Lower, off)
	}
}

func shift(pts []gg.Point, off gg.Point) {
	for i := range pts {
		pts[i] = pts[i].Add(off)
	}
}
