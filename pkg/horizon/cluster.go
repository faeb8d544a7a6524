package horizon

import (
	"math"

	"github.com/foxnetlabs/go-horizon/pkg/geometry"
)

// Cluster is a non-empty group of segments judged similar in one scalar
// property (angle or offset) within a tolerance.
type Cluster struct {
	Segments    []geometry.Segment
	TotalLength float64

	// Value is the length-weighted mean of the grouping property.
	Value float64
}

// Count returns the number of segments in the cluster.
func (c Cluster) Count() int {
	return len(c.Segments)
}

// clusterBy groups segments whose property differs from the cluster
// seed's by strictly less than tol. Single pass in input order: each
// unassigned segment seeds a new cluster, then claims every remaining
// unassigned segment within tolerance of the seed.
//
// This is deliberately seed-anchored rather than a transitive
// connected-components merge: a chain of segments whose pairwise
// differences drift beyond tol across the chain splits at the seed
// boundary. Changing this would change which cluster wins on borderline
// frames.
func clusterBy(segs []geometry.Segment, prop func(geometry.Segment) float64, tol float64, minSize int) []Cluster {
	var clusters []Cluster
	assigned := make([]bool, len(segs))

	for i := range segs {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		seed := prop(segs[i])
		members := []geometry.Segment{segs[i]}

		for j := i + 1; j < len(segs); j++ {
			if assigned[j] {
				continue
			}
			if math.Abs(prop(segs[j])-seed) < tol {
				assigned[j] = true
				members = append(members, segs[j])
			}
		}

		if len(members) < minSize {
			continue
		}
		clusters = append(clusters, newCluster(members, prop))
	}

	return clusters
}

func newCluster(members []geometry.Segment, prop func(geometry.Segment) float64) Cluster {
	c := Cluster{Segments: members}
	weighted := 0.0
	for _, s := range members {
		c.TotalLength += s.Length
		weighted += prop(s) * s.Length
	}
	if c.TotalLength > 0 {
		c.Value = weighted / c.TotalLength
	}
	return c
}

// Property accessors for the two clustering passes.

func segmentAngle(s geometry.Segment) float64  { return s.Angle }
func segmentOffset(s geometry.Segment) float64 { return s.Offset }
