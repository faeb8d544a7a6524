package horizon

import (
	"math"
	"testing"

	"github.com/foxnetlabs/go-horizon/pkg/geometry"
)

func TestClassify_Partition(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		angle      float64
		isHorizon  bool
		isWall     bool
	}{
		{"flat", 0, true, false},
		{"mild tilt", 20, true, false},
		{"just under the cap", 44.9, true, false},
		{"at the cap is neither", 45, false, false},
		{"steep but not vertical", 60, false, false},
		{"near vertical", 80, false, true},
		{"vertical", 90, false, true},
		{"negative near vertical", -85, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seg := geometry.Segment{Angle: tc.angle, Length: 50}
			candidates, walls := classify(cfg, []geometry.Segment{seg})

			if got := len(candidates) == 1; got != tc.isHorizon {
				t.Errorf("horizon candidate: got %v, want %v", got, tc.isHorizon)
			}
			if got := len(walls) == 1; got != tc.isWall {
				t.Errorf("wall candidate: got %v, want %v", got, tc.isWall)
			}
		})
	}
}

func TestClassify_SkipsMalformed(t *testing.T) {
	cfg := DefaultConfig()
	segs := []geometry.Segment{
		geometry.NewSegment(0, 100, 200, 100),
		geometry.NewSegment(5, 5, 5, 5),                  // zero length
		geometry.NewSegment(math.NaN(), 0, 10, 0),        // non-finite
		geometry.NewSegment(0, 0, math.Inf(1), 0),        // non-finite
	}

	candidates, walls := classify(cfg, segs)
	if len(candidates) != 1 {
		t.Errorf("candidates: got %d, want 1 (malformed skipped)", len(candidates))
	}
	if len(walls) != 0 {
		t.Errorf("walls: got %d, want 0", len(walls))
	}
}

func TestClassify_WallsSortedAndCapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxWallCandidates = 2

	segs := []geometry.Segment{
		{Angle: 90, Length: 30},
		{Angle: 88, Length: 90},
		{Angle: -89, Length: 60},
	}

	_, walls := classify(cfg, segs)
	if len(walls) != 2 {
		t.Fatalf("walls: got %d, want 2", len(walls))
	}
	if walls[0].Length != 90 || walls[1].Length != 60 {
		t.Errorf("walls not sorted by descending length: %v, %v",
			walls[0].Length, walls[1].Length)
	}
}

func TestClassify_NeverBoth(t *testing.T) {
	// Overlapping thresholds: with a wide horizon cap a 50° segment is
	// a horizon candidate and must not also be reported as a wall.
	cfg := DefaultConfig()
	cfg.MaxHorizonAngle = 85
	cfg.WallAngleTolerance = 45

	candidates, walls := classify(cfg, []geometry.Segment{{Angle: 50, Length: 50}})
	if len(candidates) != 1 || len(walls) != 0 {
		t.Errorf("got %d candidates and %d walls, want 1 and 0", len(candidates), len(walls))
	}
}
