package horizon

import "math"

// angleBonusRange is the tilt (degrees) at which the horizontality bonus
// bottoms out. Matches the default candidate cap, but stays fixed when
// MaxHorizonAngle is widened.
const angleBonusRange = 45.0

// score ranks a collinear cluster. Total length is the primary signal;
// sqrt(count) rewards corroboration by independent detections without
// letting many short fragments beat one long run; the 0.7/0.3 mix keeps
// proximity to true horizontal a secondary signal, so a long run with
// mild tilt still wins.
func score(c Cluster) float64 {
	bonus := 1 - math.Abs(avgAngle(c))/angleBonusRange
	bonus = clamp(bonus, 0, 1)
	return c.TotalLength * math.Sqrt(float64(c.Count())) * (0.7 + 0.3*bonus)
}

// avgAngle is the length-weighted mean angle of the cluster's segments.
func avgAngle(c Cluster) float64 {
	if c.TotalLength == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range c.Segments {
		sum += s.Angle * s.Length
	}
	return sum / c.TotalLength
}

// selectBest picks the highest-scoring cluster. Returns false when there
// is nothing to pick, a normal per-frame outcome, not a fault.
func selectBest(clusters []Cluster) (Cluster, float64, bool) {
	var best Cluster
	bestScore := -1.0
	for _, c := range clusters {
		if s := score(c); s > bestScore {
			best = c
			bestScore = s
		}
	}
	if bestScore < 0 {
		return Cluster{}, 0, false
	}
	return best, bestScore, true
}

// clamp limits a value to a range
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
