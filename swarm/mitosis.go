package swarm

import (
	"github.com/lixenwraith/blob-morph/core"
	"github.com/lixenwraith/blob-morph/vmath"
)

// kMeansRounds is the fixed iteration count of the 2-means split. There
// is no convergence check; ten rounds settle any blob this model
// produces and keep the cost bounded.
const kMeansRounds = 10

// DetectMitosis decides whether a blob should divide. It returns the
// two halves when the blob is both large enough (at least twice
// MinBlobSize) and dispersed beyond SplitThreshold·MitosisFactor, and
// both halves clear MinBlobSize. Otherwise ok is false and the blob
// stays whole.
func (s *Physics) DetectMitosis(points []core.Point, indices []int) (a, b []int, ok bool) {
	if len(indices) < 2*s.Params.MinBlobSize {
		return nil, nil, false
	}
	if Dispersion(points, indices) <= s.Params.SplitThreshold*s.Params.MitosisFactor {
		return nil, nil, false
	}
	a, b = s.KMeans2(points, indices)
	if len(a) < s.Params.MinBlobSize || len(b) < s.Params.MinBlobSize {
		return nil, nil, false
	}
	return a, b, true
}

// KMeans2 partitions the indexed points into two clusters: centroids
// seeded from two distinct random members, then exactly kMeansRounds
// assignment/update rounds. An empty cluster keeps its previous
// centroid for the next round. Distance ties assign to the first
// cluster, so the partition is deterministic for a given RNG state.
func (s *Physics) KMeans2(points []core.Point, indices []int) (a, b []int) {
	n := len(indices)
	if n < 2 {
		return append([]int(nil), indices...), nil
	}

	i1 := s.rng.Intn(n)
	i2 := s.rng.Intn(n)
	for i2 == i1 {
		i2 = s.rng.Intn(n)
	}
	c1x, c1y := points[indices[i1]].X, points[indices[i1]].Y
	c2x, c2y := points[indices[i2]].X, points[indices[i2]].Y

	for round := 0; round < kMeansRounds; round++ {
		a = a[:0]
		b = b[:0]
		for _, idx := range indices {
			p := &points[idx]
			if vmath.DistSq(p.X, p.Y, c1x, c1y) <= vmath.DistSq(p.X, p.Y, c2x, c2y) {
				a = append(a, idx)
			} else {
				b = append(b, idx)
			}
		}
		if len(a) > 0 {
			c1x, c1y = Centroid(points, a)
		}
		if len(b) > 0 {
			c2x, c2y = Centroid(points, b)
		}
	}
	return a, b
}

// KMeans partitions the indexed points into k clusters with the same
// fixed-round scheme as KMeans2. Used to seed the initial blob layout
// from image samples. Empty clusters are dropped from the result.
func (s *Physics) KMeans(points []core.Point, indices []int, k int) [][]int {
	n := len(indices)
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}
	if k == 1 {
		return [][]int{append([]int(nil), indices...)}
	}

	// Seed centroids from distinct random members
	chosen := make(map[int]bool, k)
	cx := make([]float64, k)
	cy := make([]float64, k)
	for c := 0; c < k; c++ {
		pick := s.rng.Intn(n)
		for chosen[pick] {
			pick = s.rng.Intn(n)
		}
		chosen[pick] = true
		cx[c] = points[indices[pick]].X
		cy[c] = points[indices[pick]].Y
	}

	clusters := make([][]int, k)
	for round := 0; round < kMeansRounds; round++ {
		for c := range clusters {
			clusters[c] = clusters[c][:0]
		}
		for _, idx := range indices {
			p := &points[idx]
			best := 0
			bestD := vmath.DistSq(p.X, p.Y, cx[0], cy[0])
			for c := 1; c < k; c++ {
				if d := vmath.DistSq(p.X, p.Y, cx[c], cy[c]); d < bestD {
					best = c
					bestD = d
				}
			}
			clusters[best] = append(clusters[best], idx)
		}
		for c := range clusters {
			if len(clusters[c]) > 0 {
				cx[c], cy[c] = Centroid(points, clusters[c])
			}
		}
	}

	out := make([][]int, 0, k)
	for _, cluster := range clusters {
		if len(cluster) > 0 {
			out = append(out, append([]int(nil), cluster...))
		}
	}
	return out
}
