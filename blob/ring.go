// Package blob implements the elastic boundary model. Each blob is a
// closed ring of arena points held in shape by edge springs, skip-one
// diagonal struts, surface tension toward the centroid, and an
// area-preserving pressure term.
package blob

import (
	"math"
	"sort"

	"github.com/lixenwraith/blob-morph/core"
	"github.com/lixenwraith/blob-morph/vmath"
)

// Fixed structural factors of the boundary model. The configurable
// coefficients live in RingParams; these ratios are part of the model
// itself.
const (
	diagonalTargetFactor    = 1.5
	diagonalStiffnessFactor = 0.3
	tensionRadiusFactor     = 0.8
	pressureNormalScale     = 0.5
)

// RingParams are the per-ring elastic coefficients, copied from config
// at formation time so later config changes leave live rings alone.
type RingParams struct {
	// SpringStiffness scales edge spring force per pixel of stretch
	SpringStiffness float64 `toml:"spring_stiffness"`
	// Damping is an exponential velocity decay rate per second
	Damping float64 `toml:"damping"`
	// SurfaceTension scales the centroid-directed restoring force
	SurfaceTension float64 `toml:"surface_tension"`
	// PressureStrength scales the area-preserving normal force
	PressureStrength float64 `toml:"pressure_strength"`
}

// DefaultRingParams returns the tuning used by the stock transitions
func DefaultRingParams() RingParams {
	return RingParams{
		SpringStiffness:  5.0,
		Damping:          6.0,
		SurfaceTension:   90.0,
		PressureStrength: 600.0,
	}
}

// Ring is one blob boundary: a cycle of arena indices in angular order
// around the centroid, with rest geometry captured at adoption time.
// Rings never hold point pointers; all operations borrow the arena.
type Ring struct {
	ID        int64
	Color     core.Color
	Target    core.Color
	HasTarget bool

	// Indices is the cyclic boundary order. It is re-sorted whenever
	// membership changes; every arena index belongs to exactly one
	// ring at any instant.
	Indices     []int
	RestLengths []float64
	RestArea    float64

	// Derived each tick after integration; the single source of truth
	// for mitosis, merge, and render queries.
	CenterX, CenterY float64
	Radius           float64

	Params RingParams
}

// Adopt takes ownership of the given arena indices: sorts them
// angularly around their centroid and snapshots rest lengths and rest
// area. Under 3 points the ring adopts silently and stays physically
// inert.
func (r *Ring) Adopt(points []core.Point, indices []int) {
	r.Indices = append(r.Indices[:0], indices...)
	r.recomputeCenter(points)
	r.sortAngular(points)
	r.captureRest(points)
}

// Inert reports whether the ring is too small for boundary physics
func (r *Ring) Inert() bool {
	return len(r.Indices) < 3
}

// Integrate advances the ring one step: edge springs, diagonal struts,
// surface tension, pressure, damping, then position update. Forces are
// accelerations applied to velocities over dt; derived center and
// radius are refreshed at the end.
func (r *Ring) Integrate(points []core.Point, dt float64) {
	if dt <= 0 {
		return
	}
	if !r.Inert() {
		r.applyEdgeSprings(points, dt)
		r.applyDiagonalSprings(points, dt)
		r.applySurfaceTension(points, dt)
		r.applyPressure(points, dt)
	}
	r.applyDamping(points, dt)
	r.advance(points, dt)
	r.recomputeCenter(points)
}

// Refresh recomputes the derived center and radius from the current
// member positions without touching rest geometry. Call after moving
// points outside Integrate, which refreshes on its own.
func (r *Ring) Refresh(points []core.Point) {
	r.recomputeCenter(points)
}

// UpdateColor eases the ring color toward its morph target; no-op
// without a target
func (r *Ring) UpdateColor(factor float64) {
	if !r.HasTarget {
		return
	}
	r.Color = r.Color.Toward(r.Target, factor)
}

// Area returns the boundary polygon area via the shoelace formula,
// independent of winding direction
func (r *Ring) Area(points []core.Point) float64 {
	n := len(r.Indices)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := &points[r.Indices[i]]
		b := &points[r.Indices[(i+1)%n]]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Fan returns the ring as triangle-fan vertex data: centroid first,
// boundary points in cyclic order, first boundary point repeated to
// close the fan. Nil for inert rings.
func (r *Ring) Fan(points []core.Point) []core.Vertex {
	n := len(r.Indices)
	if n < 3 {
		return nil
	}
	out := make([]core.Vertex, 0, n+2)
	out = append(out, core.Vertex{X: r.CenterX, Y: r.CenterY, Color: r.Color})
	for _, idx := range r.Indices {
		p := &points[idx]
		out = append(out, core.Vertex{X: p.X, Y: p.Y, Color: p.Color})
	}
	first := &points[r.Indices[0]]
	out = append(out, core.Vertex{X: first.X, Y: first.Y, Color: first.Color})
	return out
}

func (r *Ring) applyEdgeSprings(points []core.Point, dt float64) {
	n := len(r.Indices)
	for i := 0; i < n; i++ {
		a := &points[r.Indices[i]]
		b := &points[r.Indices[(i+1)%n]]
		dx := b.X - a.X
		dy := b.Y - a.Y
		length := math.Hypot(dx, dy)
		if length < vmath.Epsilon {
			continue
		}
		// Stretched edges pull the endpoints together, compressed
		// edges push them apart, half the force each
		f := r.Params.SpringStiffness * (length - r.RestLengths[i])
		ux := dx / length
		uy := dy / length
		half := f / 2 * dt
		a.VX += ux * half / a.EffectiveMass()
		a.VY += uy * half / a.EffectiveMass()
		b.VX -= ux * half / b.EffectiveMass()
		b.VY -= uy * half / b.EffectiveMass()
	}
}

func (r *Ring) applyDiagonalSprings(points []core.Point, dt float64) {
	n := len(r.Indices)
	target := r.Radius * diagonalTargetFactor
	stiffness := r.Params.SpringStiffness * diagonalStiffnessFactor
	for i := 0; i < n; i++ {
		a := &points[r.Indices[i]]
		b := &points[r.Indices[(i+2)%n]]
		dx := b.X - a.X
		dy := b.Y - a.Y
		length := math.Hypot(dx, dy)
		if length < vmath.Epsilon {
			continue
		}
		f := stiffness * (length - target)
		ux := dx / length
		uy := dy / length
		half := f / 2 * dt
		a.VX += ux * half / a.EffectiveMass()
		a.VY += uy * half / a.EffectiveMass()
		b.VX -= ux * half / b.EffectiveMass()
		b.VY -= uy * half / b.EffectiveMass()
	}
}

func (r *Ring) applySurfaceTension(points []core.Point, dt float64) {
	anchor := r.Radius * tensionRadiusFactor
	for _, idx := range r.Indices {
		p := &points[idx]
		dx := r.CenterX - p.X
		dy := r.CenterY - p.Y
		dist := math.Hypot(dx, dy)
		if dist < vmath.Epsilon {
			continue
		}
		// Signed spring anchored at 0.8·radius: outside pulls in,
		// inside pushes out
		f := r.Params.SurfaceTension * (dist - anchor) / dist * dt / p.EffectiveMass()
		p.VX += dx / dist * f
		p.VY += dy / dist * f
	}
}

func (r *Ring) applyPressure(points []core.Point, dt float64) {
	if r.RestArea < vmath.Epsilon {
		return
	}
	pressure := r.Params.PressureStrength * (r.RestArea - r.Area(points)) / r.RestArea
	if pressure == 0 {
		return
	}
	n := len(r.Indices)
	for i := 0; i < n; i++ {
		prev := &points[r.Indices[(i-1+n)%n]]
		cur := &points[r.Indices[i]]
		next := &points[r.Indices[(i+1)%n]]

		// Outward normal: average of the two adjacent edge normals,
		// flipped away from the centroid if the winding disagrees
		avgNX := ((cur.Y - prev.Y) + (next.Y - cur.Y)) / 2
		avgNY := -((cur.X - prev.X) + (next.X - cur.X)) / 2
		mag := math.Hypot(avgNX, avgNY)
		if mag < vmath.Epsilon {
			continue
		}
		avgNX /= mag
		avgNY /= mag
		if avgNX*(cur.X-r.CenterX)+avgNY*(cur.Y-r.CenterY) < 0 {
			avgNX = -avgNX
			avgNY = -avgNY
		}
		f := pressure * pressureNormalScale * dt / cur.EffectiveMass()
		cur.VX += avgNX * f
		cur.VY += avgNY * f
	}
}

func (r *Ring) applyDamping(points []core.Point, dt float64) {
	factor := 1 - r.Params.Damping*dt
	if factor < 0 {
		factor = 0
	}
	for _, idx := range r.Indices {
		p := &points[idx]
		p.VX *= factor
		p.VY *= factor
	}
}

func (r *Ring) advance(points []core.Point, dt float64) {
	for _, idx := range r.Indices {
		p := &points[idx]
		if p.Fixed {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
	}
}

func (r *Ring) recomputeCenter(points []core.Point) {
	n := len(r.Indices)
	if n == 0 {
		return
	}
	sx, sy := 0.0, 0.0
	for _, idx := range r.Indices {
		sx += points[idx].X
		sy += points[idx].Y
	}
	r.CenterX = sx / float64(n)
	r.CenterY = sy / float64(n)

	sum := 0.0
	for _, idx := range r.Indices {
		sum += vmath.Dist(points[idx].X, points[idx].Y, r.CenterX, r.CenterY)
	}
	r.Radius = sum / float64(n)
}

func (r *Ring) sortAngular(points []core.Point) {
	sort.SliceStable(r.Indices, func(i, j int) bool {
		a := &points[r.Indices[i]]
		b := &points[r.Indices[j]]
		return math.Atan2(a.Y-r.CenterY, a.X-r.CenterX) < math.Atan2(b.Y-r.CenterY, b.X-r.CenterX)
	})
}

func (r *Ring) captureRest(points []core.Point) {
	n := len(r.Indices)
	if n < 3 {
		r.RestLengths = r.RestLengths[:0]
		r.RestArea = 0
		return
	}
	r.RestLengths = r.RestLengths[:0]
	for i := 0; i < n; i++ {
		a := &points[r.Indices[i]]
		b := &points[r.Indices[(i+1)%n]]
		r.RestLengths = append(r.RestLengths, math.Hypot(b.X-a.X, b.Y-a.Y))
	}
	r.RestArea = r.Area(points)
}
