package horizon

import (
	"math"
	"testing"

	"github.com/foxnetlabs/go-horizon/pkg/geometry"
)

func TestWeightedMedian_LowerMedian(t *testing.T) {
	// (length, angle): (1,10°), (2,20°), (3,30°). Cumulative weights
	// 1, 3, 6; half-total 3 ⇒ the median is 20°, the first value whose
	// cumulative weight reaches the half-point.
	segs := []geometry.Segment{
		{Angle: 10, Length: 1},
		{Angle: 20, Length: 2},
		{Angle: 30, Length: 3},
	}
	if got := weightedMedian(segs, segmentAngle); got != 20 {
		t.Errorf("weighted median: got %v, want 20", got)
	}
}

func TestWeightedMedian_OrderIndependent(t *testing.T) {
	segs := []geometry.Segment{
		{Angle: 30, Length: 3},
		{Angle: 10, Length: 1},
		{Angle: 20, Length: 2},
	}
	if got := weightedMedian(segs, segmentAngle); got != 20 {
		t.Errorf("weighted median: got %v, want 20", got)
	}
}

func TestWeightedMedian_DominantWeight(t *testing.T) {
	// One segment carrying more than half the weight is the median.
	segs := []geometry.Segment{
		{Angle: 5, Length: 1},
		{Angle: 40, Length: 1},
		{Angle: 8, Length: 10},
	}
	if got := weightedMedian(segs, segmentAngle); got != 8 {
		t.Errorf("weighted median: got %v, want 8", got)
	}
}

func TestWeightedMedian_Empty(t *testing.T) {
	if got := weightedMedian(nil, segmentAngle); got != 0 {
		t.Errorf("weighted median of nothing: got %v, want 0", got)
	}
}

func TestFitLine_HorizontalInversion(t *testing.T) {
	// A flat horizon at y=240 in a 640x480 frame: θ=0 and offset −240,
	// so y = (x·sin0 − (−240)) / cos0 = 240 regardless of x.
	p := AdaptParams(DefaultConfig(), 640, 480)
	c := newCluster([]geometry.Segment{
		geometry.NewSegment(100, 240, 540, 240),
	}, segmentAngle)

	y, angle, offset, _ := fitLine(c, p, 100)
	if math.Abs(y-240) > 1e-6 {
		t.Errorf("y: got %v, want 240", y)
	}
	if math.Abs(angle) > 1e-6 {
		t.Errorf("angle: got %v, want 0", angle)
	}
	if math.Abs(offset-(-240)) > 1e-6 {
		t.Errorf("offset: got %v, want -240", offset)
	}
}

func TestFitLine_TiltedInversion(t *testing.T) {
	// The fitted line must pass back through the source segment's
	// midpoint when evaluated at that x.
	p := AdaptParams(DefaultConfig(), 640, 480)
	seg := geometry.NewSegment(120, 200, 520, 280) // ≈11.3° tilt through (320, 240)
	c := newCluster([]geometry.Segment{seg}, segmentAngle)

	y, _, _, _ := fitLine(c, p, 100)
	// x = width/2 = 320 happens to be the midpoint x.
	if math.Abs(y-seg.Mid.Y) > 1e-6 {
		t.Errorf("y at frame center: got %v, want %v", y, seg.Mid.Y)
	}
}

func TestFitLine_NearVerticalFallback(t *testing.T) {
	p := AdaptParams(DefaultConfig(), 640, 480)
	// Force the degenerate branch with a synthetic 90° cluster; the
	// classifier never lets one through, but the guard must hold.
	c := Cluster{
		Segments:    []geometry.Segment{{Angle: 90, Length: 50}},
		TotalLength: 50,
	}

	y, _, _, _ := fitLine(c, p, 10)
	if math.Abs(y-240) > 1e-6 {
		t.Errorf("fallback y: got %v, want height/2 = 240", y)
	}
}

func TestFitLine_ConfidenceRange(t *testing.T) {
	p := AdaptParams(DefaultConfig(), 640, 480)
	c := newCluster([]geometry.Segment{
		geometry.NewSegment(0, 240, 640, 240),
	}, segmentAngle)

	tests := []struct {
		name  string
		score float64
	}{
		{"tiny score", 1},
		{"exactly the excellent reference", p.Diagonal * 0.8},
		{"far beyond the reference", p.Diagonal * 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, confidence := fitLine(c, p, tc.score)
			if confidence < 0 || confidence > 1 {
				t.Errorf("confidence %v outside [0, 1]", confidence)
			}
		})
	}

	// Confidence saturates at 1 once the score reaches 0.8×diagonal.
	_, _, _, confidence := fitLine(c, p, p.Diagonal*0.8)
	if math.Abs(confidence-1) > 1e-9 {
		t.Errorf("confidence at reference score: got %v, want 1", confidence)
	}
}
