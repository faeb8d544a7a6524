// Package geometry provides the line segment value type shared by the
// detector and the horizon estimator.
package geometry

import "math"

// Point is a position in frame pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a detected straight edge fragment. Derived properties are
// computed once at construction and never mutated afterwards.
type Segment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`

	// Angle is the segment direction in degrees, normalized to [-90, 90].
	Angle float64 `json:"angle"`

	// Length is the Euclidean endpoint distance in pixels.
	Length float64 `json:"length"`

	// Mid is the segment midpoint.
	Mid Point `json:"mid"`

	// Offset is the signed perpendicular distance from the origin to the
	// infinite line through the segment: d = mx·sinθ − my·cosθ.
	Offset float64 `json:"offset"`
}

// NewSegment builds a segment from its endpoints and computes the
// derived angle, length, midpoint and signed offset.
func NewSegment(x1, y1, x2, y2 float64) Segment {
	s := Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}

	dx := x2 - x1
	dy := y2 - y1
	s.Length = math.Hypot(dx, dy)
	s.Mid = Point{X: (x1 + x2) / 2, Y: (y1 + y2) / 2}
	s.Angle = NormalizeAngle(math.Atan2(dy, dx) * 180 / math.Pi)

	theta := s.Angle * math.Pi / 180
	s.Offset = s.Mid.X*math.Sin(theta) - s.Mid.Y*math.Cos(theta)

	return s
}

// NormalizeAngle folds a direction in degrees into [-90, 90]. A segment
// has no orientation, so angles that differ by 180° are the same line.
func NormalizeAngle(deg float64) float64 {
	for deg > 90 {
		deg -= 180
	}
	for deg < -90 {
		deg += 180
	}
	return deg
}

// Valid reports whether the segment can participate in any statistic:
// all coordinates finite and a nonzero length. Malformed detector output
// is skipped, never treated as a frame-level failure.
func (s Segment) Valid() bool {
	for _, v := range [...]float64{s.X1, s.Y1, s.X2, s.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return s.Length > 0
}
