// Package swarm implements the forces that act across blob boundaries
// on the flat point arena: pairwise surface tension, cohesion toward
// the center of mass, boundary elasticity, explosion scatter, the
// recombination pull, and the mitosis and merge decisions.
package swarm

import (
	"math"

	"github.com/lixenwraith/blob-morph/core"
	"github.com/lixenwraith/blob-morph/vmath"
)

// Fixed factors of the swarm model
const (
	cohesionScale      = 0.1
	explosionKickScale = 0.5
	recombinationPull  = 0.05
)

// Params are the swarm-level coefficients
type Params struct {
	// TensionRadius is the pairwise interaction cutoff in pixels
	TensionRadius float64 `toml:"tension_radius"`
	// SurfaceTension scales the pairwise attraction
	SurfaceTension float64 `toml:"surface_tension"`
	// CohesionStrength scales the pull toward the center of mass
	CohesionStrength float64 `toml:"cohesion_strength"`
	// CohesionRadius is the participation cutoff around the center of mass
	CohesionRadius float64 `toml:"cohesion_radius"`
	// Damping is a per-tick velocity multiplier, not a rate
	Damping float64 `toml:"damping"`
	// Elasticity scales reflected velocity on boundary collision
	Elasticity float64 `toml:"elasticity"`
	// SplitThreshold is the dispersion above which a blob divides
	SplitThreshold float64 `toml:"split_threshold"`
	// MergeThreshold is the centroid distance below which blobs fuse
	MergeThreshold float64 `toml:"merge_threshold"`
	// MitosisFactor scales both the split gate and the explosion kick
	MitosisFactor float64 `toml:"mitosis_factor"`
	// MinBlobSize is the smallest viable ring membership
	MinBlobSize int `toml:"min_blob_size"`
	// MaxSpeed caps point speed in pixels per second; the explosion
	// kick plus pairwise forces must not fling points off the canvas
	// in one tick
	MaxSpeed float64 `toml:"max_speed"`
}

// DefaultParams returns the tuning used by the stock transitions
func DefaultParams() Params {
	return Params{
		TensionRadius:    60.0,
		SurfaceTension:   30.0,
		CohesionStrength: 40.0,
		CohesionRadius:   400.0,
		Damping:          0.985,
		Elasticity:       0.8,
		SplitThreshold:   55.0,
		MergeThreshold:   40.0,
		MitosisFactor:    1.0,
		MinBlobSize:      12,
		MaxSpeed:         900.0,
	}
}

// Physics applies swarm-level forces to the point arena. Operations
// borrow the slice for the duration of one call; nothing is retained.
type Physics struct {
	Params Params

	rng *vmath.FastRand
}

// New builds a swarm engine. A nil rng falls back to a fixed seed so
// behavior stays reproducible unless the caller injects entropy.
func New(params Params, rng *vmath.FastRand) *Physics {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &Physics{Params: params, rng: rng}
}

// ApplySurfaceTension attracts each point toward its neighbors inside
// TensionRadius. Contributions are averaged, not summed, so the force
// scale is independent of neighbor density. O(n²).
func (s *Physics) ApplySurfaceTension(points []core.Point, dt float64) {
	radius := s.Params.TensionRadius
	if radius < vmath.Epsilon {
		return
	}
	for i := range points {
		p := &points[i]
		var fx, fy float64
		count := 0
		for j := range points {
			if j == i {
				continue
			}
			q := &points[j]
			d := vmath.Dist(p.X, p.Y, q.X, q.Y)
			if d < vmath.Epsilon || d >= radius {
				continue
			}
			strength := s.Params.SurfaceTension * (1 - d/radius)
			fx += (q.X - p.X) / d * strength
			fy += (q.Y - p.Y) / d * strength
			count++
		}
		if count == 0 {
			continue
		}
		scale := dt / (float64(count) * p.EffectiveMass())
		p.VX += fx * scale
		p.VY += fy * scale
	}
}

// ApplyCohesion pulls points toward the swarm's center of mass. Only
// points inside CohesionRadius participate; the pull grows linearly
// with distance.
func (s *Physics) ApplyCohesion(points []core.Point, dt float64) {
	if s.Params.CohesionRadius < vmath.Epsilon {
		return
	}
	cx, cy, ok := CenterOfMass(points)
	if !ok {
		return
	}
	for i := range points {
		p := &points[i]
		dx := cx - p.X
		dy := cy - p.Y
		d := vmath.Magnitude(dx, dy)
		if d < vmath.Epsilon || d > s.Params.CohesionRadius {
			continue
		}
		f := s.Params.CohesionStrength * (d / s.Params.CohesionRadius) * cohesionScale * dt / p.EffectiveMass()
		p.VX += dx / d * f
		p.VY += dy / d * f
	}
}

// ApplyElasticity damps velocities and reflects points off the bounds.
// Velocity flips only when it still points outward, so a point already
// heading back in is left alone.
func (s *Physics) ApplyElasticity(points []core.Point, bounds core.Bounds) {
	e := s.Params.Elasticity
	for i := range points {
		p := &points[i]
		p.VX *= s.Params.Damping
		p.VY *= s.Params.Damping

		if p.X < bounds.MinX {
			p.X = bounds.MinX
			if p.VX < 0 {
				p.VX = -p.VX * e
			}
		} else if p.X > bounds.MaxX {
			p.X = bounds.MaxX
			if p.VX > 0 {
				p.VX = -p.VX * e
			}
		}
		if p.Y < bounds.MinY {
			p.Y = bounds.MinY
			if p.VY < 0 {
				p.VY = -p.VY * e
			}
		} else if p.Y > bounds.MaxY {
			p.Y = bounds.MaxY
			if p.VY > 0 {
				p.VY = -p.VY * e
			}
		}
	}
}

// Update runs one swarm tick in fixed order: tension, cohesion,
// elasticity, speed cap, then position integration
func (s *Physics) Update(points []core.Point, dt float64, bounds core.Bounds) {
	if dt <= 0 {
		return
	}
	s.ApplySurfaceTension(points, dt)
	s.ApplyCohesion(points, dt)
	s.ApplyElasticity(points, bounds)
	for i := range points {
		p := &points[i]
		if p.Fixed {
			continue
		}
		p.VX, p.VY = vmath.ClampMagnitude(p.VX, p.VY, s.Params.MaxSpeed)
		p.X += p.VX * dt
		p.Y += p.VY * dt
	}
}

// ApplyExplosion kicks every point directly away from (cx, cy): a
// one-shot impulse in pixels per second. A point sitting exactly on the
// epicenter is thrown in a random direction.
func (s *Physics) ApplyExplosion(points []core.Point, cx, cy, intensity float64) {
	kick := intensity * s.Params.MitosisFactor * explosionKickScale
	for i := range points {
		p := &points[i]
		nx, ny := vmath.Normalize2D(p.X-cx, p.Y-cy)
		if nx == 0 && ny == 0 {
			angle := s.rng.Range(0, 2*math.Pi)
			nx, ny = math.Cos(angle), math.Sin(angle)
		}
		p.VX += nx * kick
		p.VY += ny * kick
	}
}

// ApplyRecombination layers a gentle per-tick pull from each point
// toward its paired target position. Targets align with the arena by
// index; extra entries on either side are ignored.
func (s *Physics) ApplyRecombination(points []core.Point, targets []core.Sample) {
	n := len(points)
	if len(targets) < n {
		n = len(targets)
	}
	for i := 0; i < n; i++ {
		p := &points[i]
		p.VX += (targets[i].X - p.X) * recombinationPull
		p.VY += (targets[i].Y - p.Y) * recombinationPull
	}
}

// CenterOfMass returns the mass-weighted mean position, or ok=false for
// an empty or massless arena
func CenterOfMass(points []core.Point) (cx, cy float64, ok bool) {
	var sx, sy, total float64
	for i := range points {
		m := points[i].EffectiveMass()
		sx += points[i].X * m
		sy += points[i].Y * m
		total += m
	}
	if total < vmath.Epsilon {
		return 0, 0, false
	}
	return sx / total, sy / total, true
}

// Centroid returns the unweighted mean position of the indexed points
func Centroid(points []core.Point, indices []int) (cx, cy float64) {
	if len(indices) == 0 {
		return 0, 0
	}
	var sx, sy float64
	for _, idx := range indices {
		sx += points[idx].X
		sy += points[idx].Y
	}
	n := float64(len(indices))
	return sx / n, sy / n
}

// Dispersion returns the mean distance of the indexed points from
// their centroid, the quantity gating mitosis
func Dispersion(points []core.Point, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	cx, cy := Centroid(points, indices)
	var sum float64
	for _, idx := range indices {
		sum += vmath.Dist(points[idx].X, points[idx].Y, cx, cy)
	}
	return sum / float64(len(indices))
}
