package swarm

import "github.com/lixenwraith/blob-morph/vmath"

// MergeCandidate is a blob centroid and its member count, the inputs
// to the merge grouping scan
type MergeCandidate struct {
	X, Y  float64
	Count int
}

// ShouldMerge reports whether two blob centroids are close enough to
// fuse
func (s *Physics) ShouldMerge(ax, ay, bx, by float64) bool {
	return vmath.Dist(ax, ay, bx, by) < s.Params.MergeThreshold
}

// MergeGroups partitions blobs into merge groups by greedy transitive
// closure: each unvisited blob repeatedly absorbs any remaining blob
// within MergeThreshold of the group's running centroid until none
// qualifies, then the group is final. The group centroid tracks the
// count-weighted mean of its members as it grows. Finalized groups are
// never revisited inside one scan; a blob drifting into range of an
// earlier group is picked up by the next tick's scan. Singleton groups
// appear in the result and mean "no merge".
func (s *Physics) MergeGroups(blobs []MergeCandidate) [][]int {
	merged := make([]bool, len(blobs))
	groups := make([][]int, 0, len(blobs))

	for i := range blobs {
		if merged[i] {
			continue
		}
		merged[i] = true
		group := []int{i}
		gx, gy := blobs[i].X, blobs[i].Y
		gcount := blobs[i].Count

		for changed := true; changed; {
			changed = false
			for j := range blobs {
				if merged[j] {
					continue
				}
				if !s.ShouldMerge(gx, gy, blobs[j].X, blobs[j].Y) {
					continue
				}
				merged[j] = true
				group = append(group, j)
				w := float64(blobs[j].Count)
				total := float64(gcount) + w
				if total > 0 {
					gx = (gx*float64(gcount) + blobs[j].X*w) / total
					gy = (gy*float64(gcount) + blobs[j].Y*w) / total
				}
				gcount += blobs[j].Count
				changed = true
			}
		}
		groups = append(groups, group)
	}
	return groups
}
