package horizon

import (
	"math"
	"sort"

	"github.com/foxnetlabs/go-horizon/pkg/geometry"
)

// cosEpsilon guards the line inversion against near-vertical medians.
// Cannot occur for candidates under the default 45° cap, but the guard
// stays regardless.
const cosEpsilon = 1e-6

// excellentScoreFactor calibrates confidence: a cluster scoring 0.8× the
// frame diagonal is treated as a perfect horizon.
const excellentScoreFactor = 0.8

// fitLine computes the robust line for the selected cluster and inverts
// it to a screen-space y at the horizontal frame center. Both the angle
// and the offset are lower weighted medians with segment length as the
// weight, so one spurious long segment cannot drag the fit the way a
// weighted mean would.
func fitLine(c Cluster, p AdaptiveParams, clusterScore float64) (y, angle, offset, confidence float64) {
	angle = weightedMedian(c.Segments, segmentAngle)
	offset = weightedMedian(c.Segments, segmentOffset)

	theta := angle * math.Pi / 180
	x := float64(p.Width) / 2
	if cos := math.Cos(theta); math.Abs(cos) > cosEpsilon {
		y = (x*math.Sin(theta) - offset) / cos
	} else {
		// Degenerate near-vertical fit: fall back to mid-frame.
		y = float64(p.Height) / 2
	}

	confidence = math.Min(clusterScore/(p.Diagonal*excellentScoreFactor), 1)
	return y, angle, offset, confidence
}

// weightedMedian returns the lower weighted median of prop over the
// segments, weighted by length: sort ascending, accumulate weight, take
// the first value whose cumulative weight reaches half the total. No
// interpolation.
func weightedMedian(segs []geometry.Segment, prop func(geometry.Segment) float64) float64 {
	if len(segs) == 0 {
		return 0
	}

	type entry struct {
		value  float64
		weight float64
	}
	entries := make([]entry, len(segs))
	total := 0.0
	for i, s := range segs {
		entries[i] = entry{value: prop(s), weight: s.Length}
		total += s.Length
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].value < entries[j].value
	})

	half := total / 2
	cumulative := 0.0
	for _, e := range entries {
		cumulative += e.weight
		if cumulative >= half {
			return e.value
		}
	}
	return entries[len(entries)-1].value
}
