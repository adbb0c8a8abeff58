package blob

import (
	"github.com/lixenwraith/blob-morph/core"
	"github.com/lixenwraith/blob-morph/vmath"
)

// Collection owns the flat point arena and the ring partition over it.
// Rings address points by arena index only, so splits and merges move
// membership without copying point state. The simulation is
// single-threaded; Collection does no locking.
type Collection struct {
	Points []core.Point
	Rings  []*Ring

	params RingParams
	nextID int64
}

func NewCollection(params RingParams) *Collection {
	return &Collection{params: params}
}

// Reset rebuilds the arena from image samples: one resting point per
// sample, unit mass, sample color. All rings are discarded.
func (c *Collection) Reset(samples []core.Sample) {
	c.Points = c.Points[:0]
	for _, s := range samples {
		c.Points = append(c.Points, core.Point{
			X:     s.X,
			Y:     s.Y,
			Color: s.Color,
			Mass:  1.0,
		})
	}
	c.Rings = c.Rings[:0]
}

// AddRing forms a new ring over the given arena indices. Ring color is
// the mean color of its members.
func (c *Collection) AddRing(indices []int) *Ring {
	c.nextID++
	r := &Ring{
		ID:     c.nextID,
		Params: c.params,
	}
	r.Adopt(c.Points, indices)
	r.Color = c.meanColor(r.Indices)
	c.Rings = append(c.Rings, r)
	return r
}

// SplitRing replaces one ring with the two mitosis halves. The parent
// keeps its identity and adopts the first half; the second half gets a
// fresh ring inheriting the parent's color and morph target.
func (c *Collection) SplitRing(parent *Ring, half1, half2 []int) (*Ring, *Ring) {
	parent.Adopt(c.Points, half1)

	c.nextID++
	sibling := &Ring{
		ID:        c.nextID,
		Color:     parent.Color,
		Target:    parent.Target,
		HasTarget: parent.HasTarget,
		Params:    parent.Params,
	}
	sibling.Adopt(c.Points, half2)
	c.Rings = append(c.Rings, sibling)
	return parent, sibling
}

// MergeRings absorbs the source rings into dst: the union of indices is
// re-adopted (fresh rest geometry at the merged layout) and the sources
// are removed. The merged color is the point-count weighted mean.
func (c *Collection) MergeRings(dst *Ring, srcs ...*Ring) *Ring {
	if len(srcs) == 0 {
		return dst
	}
	union := append([]int(nil), dst.Indices...)
	w := float64(len(dst.Indices))
	total := w
	blended := core.Color{R: dst.Color.R * w, G: dst.Color.G * w, B: dst.Color.B * w, A: dst.Color.A * w}
	for _, src := range srcs {
		union = append(union, src.Indices...)
		w = float64(len(src.Indices))
		blended.R += src.Color.R * w
		blended.G += src.Color.G * w
		blended.B += src.Color.B * w
		blended.A += src.Color.A * w
		total += w
	}
	if total > 0 {
		dst.Color = core.Color{R: blended.R / total, G: blended.G / total, B: blended.B / total, A: blended.A / total}
	}
	dst.Adopt(c.Points, union)
	c.removeRings(srcs)
	return dst
}

// Reform re-adopts every ring at the current point layout, recapturing
// rest lengths and rest area. Used when a converged arrangement should
// become the new equilibrium.
func (c *Collection) Reform() {
	for _, r := range c.Rings {
		r.Adopt(c.Points, r.Indices)
	}
}

// Integrate steps the boundary physics of every ring
func (c *Collection) Integrate(dt float64) {
	for _, r := range c.Rings {
		r.Integrate(c.Points, dt)
	}
}

// RefreshRings recomputes every ring's derived center and radius.
// Called after swarm forces move points behind the rings' backs.
func (c *Collection) RefreshRings() {
	for _, r := range c.Rings {
		r.Refresh(c.Points)
	}
}

// EnforceMinSize folds rings smaller than minSize into their nearest
// neighbor by centroid distance, preserving the exact partition of the
// arena. A lone undersized ring has no neighbor and is kept as-is.
func (c *Collection) EnforceMinSize(minSize int) {
	for i := 0; i < len(c.Rings); {
		r := c.Rings[i]
		if len(r.Indices) >= minSize {
			i++
			continue
		}
		nearest := c.nearestRing(r)
		if nearest == nil {
			i++
			continue
		}
		c.MergeRings(nearest, r)
		// restart the scan, the merge moved centroids
		i = 0
	}
}

// nearestRing returns the ring whose centroid is closest to r, or nil
// when r is the only ring
func (c *Collection) nearestRing(r *Ring) *Ring {
	var best *Ring
	bestDist := 0.0
	for _, other := range c.Rings {
		if other == r {
			continue
		}
		d := vmath.Dist(r.CenterX, r.CenterY, other.CenterX, other.CenterY)
		if best == nil || d < bestDist {
			best = other
			bestDist = d
		}
	}
	return best
}

func (c *Collection) removeRings(gone []*Ring) {
	kept := c.Rings[:0]
	for _, r := range c.Rings {
		dead := false
		for _, g := range gone {
			if r == g {
				dead = true
				break
			}
		}
		if !dead {
			kept = append(kept, r)
		}
	}
	c.Rings = kept
}

func (c *Collection) meanColor(indices []int) core.Color {
	if len(indices) == 0 {
		return core.ColorClear
	}
	var sum core.Color
	for _, idx := range indices {
		col := c.Points[idx].Color
		sum.R += col.R
		sum.G += col.G
		sum.B += col.B
		sum.A += col.A
	}
	n := float64(len(indices))
	return core.Color{R: sum.R / n, G: sum.G / n, B: sum.B / n, A: sum.A / n}
}
