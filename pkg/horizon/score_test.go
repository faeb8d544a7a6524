package horizon

import (
	"math"
	"testing"

	"github.com/foxnetlabs/go-horizon/pkg/geometry"
)

func clusterOf(segs ...geometry.Segment) Cluster {
	return newCluster(segs, segmentAngle)
}

func TestScore_Formula(t *testing.T) {
	// Single horizontal segment of length 100:
	// bonus = 1, score = 100 · √1 · (0.7 + 0.3) = 100.
	c := clusterOf(geometry.Segment{Angle: 0, Length: 100})
	if got := score(c); math.Abs(got-100) > 0.01 {
		t.Errorf("score: got %.2f, want 100", got)
	}

	// Tilted 22.5°: bonus = 0.5, score = 100 · (0.7 + 0.15) = 85.
	c = clusterOf(geometry.Segment{Angle: 22.5, Length: 100})
	if got := score(c); math.Abs(got-85) > 0.01 {
		t.Errorf("score: got %.2f, want 85", got)
	}
}

func TestScore_BonusClampedAtZero(t *testing.T) {
	// Average angle beyond the bonus range must not push the mix below
	// 0.7, possible when MaxHorizonAngle is widened past 45°.
	c := clusterOf(geometry.Segment{Angle: 60, Length: 100})
	if got := score(c); math.Abs(got-70) > 0.01 {
		t.Errorf("score: got %.2f, want 70", got)
	}
}

func TestScore_MonotonicInSegments(t *testing.T) {
	// Adding a non-zero-length segment never decreases the score.
	base := []geometry.Segment{
		{Angle: 2, Length: 80},
		{Angle: 3, Length: 60},
	}
	before := score(clusterOf(base...))

	for _, extra := range []geometry.Segment{
		{Angle: 1, Length: 5},
		{Angle: 0, Length: 120},
		{Angle: 4, Length: 0.5},
	} {
		after := score(clusterOf(append(append([]geometry.Segment{}, base...), extra)...))
		if after < before {
			t.Errorf("adding segment (angle=%v len=%v) decreased score: %.2f -> %.2f",
				extra.Angle, extra.Length, before, after)
		}
	}
}

func TestSelectBest_CorroborationWins(t *testing.T) {
	// Two clusters with equal total length: four short segments beat
	// one long one through the √count term.
	many := clusterOf(
		geometry.Segment{Angle: 0, Length: 50},
		geometry.Segment{Angle: 1, Length: 50},
		geometry.Segment{Angle: 0, Length: 50},
		geometry.Segment{Angle: 1, Length: 50},
	)
	single := clusterOf(geometry.Segment{Angle: 0, Length: 200})

	best, _, ok := selectBest([]Cluster{single, many})
	if !ok {
		t.Fatal("expected a selection")
	}
	if best.Count() != 4 {
		t.Errorf("got cluster with %d segments, want the 4-segment cluster", best.Count())
	}
}

func TestSelectBest_Empty(t *testing.T) {
	if _, _, ok := selectBest(nil); ok {
		t.Error("expected no selection from empty cluster list")
	}
}

func TestAvgAngle_LengthWeighted(t *testing.T) {
	c := clusterOf(
		geometry.Segment{Angle: 10, Length: 1},
		geometry.Segment{Angle: 20, Length: 3},
	)
	want := (10.0*1 + 20.0*3) / 4
	if got := avgAngle(c); math.Abs(got-want) > 1e-9 {
		t.Errorf("avgAngle: got %v, want %v", got, want)
	}
}
