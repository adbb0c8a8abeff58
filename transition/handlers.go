package transition

import (
	"github.com/lixenwraith/blob-morph/blob"
	"github.com/lixenwraith/blob-morph/core"
	"github.com/lixenwraith/blob-morph/swarm"
	"github.com/lixenwraith/blob-morph/vmath"
)

// phaseHandler bundles the strategy for one phase: enter runs once on
// arrival, update on every tick spent inside it. Idle and complete
// phases are inert.
type phaseHandler struct {
	enter  func(*Controller)
	update func(*Controller, float64)
}

var phaseHandlers = [phaseCount]phaseHandler{
	PhaseStatic:    {update: updateStatic},
	PhaseExplosion: {enter: enterExplosion, update: updateExplosion},
	PhaseMorph:     {enter: enterMorph, update: updateMorph},
	PhaseBlend:     {enter: enterBlend, update: updateBlend},
	PhaseComplete:  {enter: enterComplete},
}

// Static shows the source image at rest; rings relax toward their
// captured geometry so sampling noise settles out.
func updateStatic(c *Controller, dt float64) {
	c.collection.Integrate(dt)
}

// Explosion kicks every point radially away from the swarm's center
// of mass
func enterExplosion(c *Controller) {
	points := c.collection.Points
	if cx, cy, ok := swarm.CenterOfMass(points); ok {
		c.physics.ApplyExplosion(points, cx, cy, c.cfg.ExplosionIntensity)
	}
}

func updateExplosion(c *Controller, dt float64) {
	c.physics.Update(c.collection.Points, dt, c.bounds)
	c.collection.RefreshRings()

	// Scatter stretches blobs; the dispersed ones divide
	rings := append([]*blob.Ring(nil), c.collection.Rings...)
	for _, r := range rings {
		if a, b, ok := c.physics.DetectMitosis(c.collection.Points, r.Indices); ok {
			c.collection.SplitRing(r, a, b)
		}
	}
}

// Morph pulls every point toward its paired target while colors blend
// linearly from the snapshot taken here
func enterMorph(c *Controller) {
	points := c.collection.Points
	c.sourceColors = c.sourceColors[:0]
	for i := range points {
		c.sourceColors = append(c.sourceColors, points[i].Color)
	}
	for _, r := range c.collection.Rings {
		var sum core.Color
		for _, idx := range r.Indices {
			t := c.targets[idx].Color
			sum.R += t.R
			sum.G += t.G
			sum.B += t.B
			sum.A += t.A
		}
		if n := float64(len(r.Indices)); n > 0 {
			r.Target = core.Color{R: sum.R / n, G: sum.G / n, B: sum.B / n, A: sum.A / n}
			r.HasTarget = true
		}
	}
}

func updateMorph(c *Controller, dt float64) {
	points := c.collection.Points
	c.physics.ApplyRecombination(points, c.targets)
	c.physics.Update(points, dt, c.bounds)
	c.collection.RefreshRings()

	// Include this tick in the progress so the final morph tick lands
	// the colors exactly on target
	progress := vmath.Clamp01((c.phaseElapsed.Seconds() + dt) / c.cfg.MorphDuration.Seconds())
	for i := range points {
		points[i].Color = c.sourceColors[i].Lerp(c.targets[i].Color, progress)
	}
	for _, r := range c.collection.Rings {
		r.UpdateColor(vmath.Clamp01(ringColorRate * dt))
	}

	c.mergeScan()
}

// Blend recaptures ring geometry at the arrived positions and lets the
// membrane settle while the renderer crossfades to the real target
func enterBlend(c *Controller) {
	c.collection.Reform()
}

func updateBlend(c *Controller, dt float64) {
	c.collection.Integrate(dt)
}

func enterComplete(c *Controller) {
	if c.onComplete != nil && !c.fired {
		c.fired = true
		c.onComplete()
	}
}

// mergeScan fuses rings whose centroids drifted within the merge
// threshold. Group indices come back against the pre-merge snapshot,
// and groups are disjoint, so fusing in order is safe. The snapshot
// must be a real copy: MergeRings compacts Collection.Rings in place,
// which would shift indices under a shared backing array.
func (c *Controller) mergeScan() {
	rings := append([]*blob.Ring(nil), c.collection.Rings...)
	if len(rings) < 2 {
		return
	}
	candidates := make([]swarm.MergeCandidate, len(rings))
	for i, r := range rings {
		candidates[i] = swarm.MergeCandidate{X: r.CenterX, Y: r.CenterY, Count: len(r.Indices)}
	}
	for _, group := range c.physics.MergeGroups(candidates) {
		if len(group) < 2 {
			continue
		}
		dst := rings[group[0]]
		srcs := make([]*blob.Ring, 0, len(group)-1)
		for _, gi := range group[1:] {
			srcs = append(srcs, rings[gi])
		}
		c.collection.MergeRings(dst, srcs...)
	}
}
