package isoviz

// EaseFunc maps raw animation progress in [0, 1] to eased progress.
// Implementations must be monotonic with f(0) = 0 and f(1) = 1.
type EaseFunc func(t float64) float64

// Smooth is the default easing: a quintic smoothstep with zero first and
// second derivatives at both ends.
func Smooth(t float64) float64 {
	t = clamp01(t)
	return t * t * t * (10 + t*(-15+6*t))
}

// Linear applies no easing.
func Linear(t float64) float64 { return clamp01(t) }

// RushInto eases out of the start and arrives at full speed.
func RushInto(t float64) float64 {
	t = clamp01(t)
	return 2 * Smooth(t/2)
}

// RushFrom leaves at full speed and decelerates into the end.
func RushFrom(t float64) float64 {
	t = clamp01(t)
	return 2*Smooth(t/2+0.5) - 1
}
