package style

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Role selects one of the embedded Go fonts. Math-flavored labels (E_0, τ,
// σ) use Italic, titles use Bold, everything else Regular.
type Role int

const (
	Regular Role = iota
	Italic
	Bold
)

func (r Role) String() string {
	switch r {
	case Regular:
		return "regular"
	case Italic:
		return "italic"
	case Bold:
		return "bold"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

var (
	sourceOnce sync.Once
	sources    [3]*text.FontSource
	sourceErr  error

	faceMu sync.Mutex
	faces  = map[faceKey]text.Face{}
)

type faceKey struct {
	role Role
	size float64
}

func loadSources() {
	for i, ttf := range [3][]byte{goregular.TTF, goitalic.TTF, gobold.TTF} {
		src, err := text.NewFontSource(ttf)
		if err != nil {
			sourceErr = fmt.Errorf("style: parse embedded font %v: %w", Role(i), err)
			return
		}
		sources[i] = src
	}
}

// Face returns a cached font face for the role at the given size in points.
// The embedded Go fonts always parse; an error here means the binary is
// corrupt, so Face panics rather than making every caller thread an error
// through declarative scene code.
func Face(role Role, size float64) text.Face {
	sourceOnce.Do(loadSources)
	if sourceErr != nil {
		panic(sourceErr)
	}
	if role < Regular || role > Bold {
		role = Regular
	}

	faceMu.Lock()
	defer faceMu.Unlock()
	key := faceKey{role: role, size: size}
	if f, ok := faces[key]; ok {
		return f
	}
	f := sources[role].Face(size)
	faces[key] = f
	return f
}

// BasePixelsPerUnit is the nominal scene-unit to pixel scale the font sizes
// above are designed against. Cameras at other resolutions scale faces
// proportionally.
const BasePixelsPerUnit = 60

// MeasureUnits returns the extent of s in scene units at the nominal scale,
// independent of the render resolution. Layout code uses this for label
// bounds before any camera exists.
func MeasureUnits(s string, role Role, size float64) (w, h float64) {
	f := Face(role, size)
	pw, ph := text.Measure(s, f)
	return pw / BasePixelsPerUnit, ph / BasePixelsPerUnit
}
