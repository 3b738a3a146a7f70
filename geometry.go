package parallax

import "math"

// Distance returns the Euclidean distance between p1 and p2. NaN inputs
// propagate.
func Distance(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Falloff maps a distance to a proximity factor in [0, 1]: 1 at d = 0,
// decreasing linearly to 0 at d = cutoff and clamped to 0 beyond. cutoff must
// be positive; the engine validates it at construction.
func Falloff(d, cutoff float64) float64 {
	if d < 0 {
		d = 0
	}
	if d < cutoff {
		return 1 - d/cutoff
	}
	return 0
}

// scaledSize grows a base dimension by the proximity factor, up to 2× at f = 1.
func scaledSize(base, f float64) float64 {
	return base * (1 + f)
}
