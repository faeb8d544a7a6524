package horizon

import (
	"math"
	"sort"

	"github.com/foxnetlabs/go-horizon/pkg/geometry"
)

// classify partitions raw detector output into horizon candidates and
// wall candidates. A segment can be neither (steep but not vertical); it
// is never both. Malformed segments are skipped before they can reach
// any statistic.
func classify(cfg Config, segs []geometry.Segment) (candidates, walls []geometry.Segment) {
	for _, s := range segs {
		if !s.Valid() {
			continue
		}
		abs := math.Abs(s.Angle)
		switch {
		case abs < cfg.MaxHorizonAngle:
			candidates = append(candidates, s)
		case abs >= 90-cfg.WallAngleTolerance:
			walls = append(walls, s)
		}
	}

	// Walls are reported unmodified, longest first, capped.
	sort.SliceStable(walls, func(i, j int) bool {
		return walls[i].Length > walls[j].Length
	})
	if cfg.MaxWallCandidates >= 0 && len(walls) > cfg.MaxWallCandidates {
		walls = walls[:cfg.MaxWallCandidates]
	}

	return candidates, walls
}
