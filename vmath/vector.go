package vmath

import "math"

// Normalize2D returns the unit vector, zero-safe: inputs shorter than
// Epsilon return (0, 0)
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := math.Hypot(x, y)
	if mag < Epsilon {
		return 0, 0
	}
	return x / mag, y / mag
}

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := math.Hypot(x, y)
	if mag <= maxMag || mag < Epsilon {
		return x, y
	}
	scale := maxMag / mag
	return x * scale, y * scale
}
