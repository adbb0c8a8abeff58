package core

// Point is a physics particle: canvas-pixel position, velocity in pixels
// per second, display color. Points live in a flat arena owned by
// blob.Collection; rings and swarm operations address them by index.
type Point struct {
	X, Y   float64
	VX, VY float64
	Color  Color
	Mass   float64
	Fixed  bool
}

// EffectiveMass returns Mass with a floor of 1 for zero-valued points,
// so force application never divides by zero
func (p *Point) EffectiveMass() float64 {
	if p.Mass <= 0 {
		return 1.0
	}
	return p.Mass
}

// Sample is one color probe taken from a source image. The transition
// controller turns source samples into live points and target samples
// into morph destinations.
type Sample struct {
	X, Y  float64
	Color Color
}

// Vertex is a renderer-facing output element, emitted in triangle-fan
// order for blob interiors and as a flat list for the point cloud
type Vertex struct {
	X, Y  float64
	Color Color
}

// Bounds is the reflective collision box in canvas pixels
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Contains reports whether (x, y) lies inside the box, edges inclusive
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}
