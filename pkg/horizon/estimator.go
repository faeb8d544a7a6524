// Package horizon estimates a stable horizon line from noisy per-frame
// line segments.
//
// Each frame the estimator classifies segments by angle, clusters the
// near-horizontal candidates first by angle and then by perpendicular
// offset, scores the collinear clusters, fits the winner with a weighted
// median, and median-smooths the result over recent frames. Everything
// except the smoothing buffers is recomputed from scratch per call.
package horizon

import (
	"github.com/foxnetlabs/go-horizon/pkg/geometry"
)

// Estimate describes the dominant near-horizontal structure of one
// frame. Immutable once returned.
type Estimate struct {
	// Y is the smoothed horizon height at the horizontal frame center.
	Y float64 `json:"y"`

	// Angle is the smoothed horizon tilt in degrees, in [-90, 90].
	Angle float64 `json:"angle"`

	// Offset is the fitted signed perpendicular distance of the horizon
	// line from the origin.
	Offset float64 `json:"offset"`

	// RawY and RawAngle are the per-frame fit before temporal smoothing.
	RawY     float64 `json:"raw_y"`
	RawAngle float64 `json:"raw_angle"`

	// Segments are the members of the winning cluster.
	Segments []geometry.Segment `json:"segments"`

	Confidence   float64 `json:"confidence"` // 0-1
	SegmentCount int     `json:"segment_count"`
	TotalLength  float64 `json:"total_length"`
}

// Result is the outcome of one frame. The empty outcome (no horizon-like
// structure visible) is a normal branch callers must handle, not an
// error: Found is false and Horizon is the zero value, while Walls may
// still be populated.
type Result struct {
	Horizon Estimate           `json:"horizon"`
	Found   bool               `json:"found"`
	Walls   []geometry.Segment `json:"walls"`
}

// Estimator runs the per-frame pipeline and owns the only long-lived
// state: the smoothing buffers for the y and angle channels. Not safe
// for concurrent use; give each camera its own instance or serialize
// calls.
type Estimator struct {
	cfg Config

	ySmooth     *smoothBuffer
	angleSmooth *smoothBuffer
}

// New creates an estimator. The configuration is validated once here and
// treated as immutable afterwards.
func New(cfg Config) (*Estimator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{
		cfg:         cfg,
		ySmooth:     newSmoothBuffer(cfg.SmoothFrames),
		angleSmooth: newSmoothBuffer(cfg.SmoothFrames),
	}, nil
}

// Config returns the estimator's configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Reset clears the smoothing buffers, e.g. after a scene cut or when the
// camera is repositioned.
func (e *Estimator) Reset() {
	e.ySmooth.reset()
	e.angleSmooth.reset()
}

// HistoryLen returns the number of buffered smoothing samples.
func (e *Estimator) HistoryLen() int {
	return e.ySmooth.len()
}

// Estimate processes one frame's segments. width and height are the
// dimensions of the frame the segments were detected in.
//
// Frames with no surviving cluster return Found=false and leave the
// smoothing buffers untouched, so the history only ever reflects frames
// where a horizon was actually observed.
func (e *Estimator) Estimate(segs []geometry.Segment, width, height int) Result {
	params := AdaptParams(e.cfg, width, height)

	candidates, walls := classify(e.cfg, segs)
	res := Result{Walls: walls}
	if len(candidates) == 0 {
		return res
	}

	// First pass groups parallel segments, second pass splits each
	// angle group into collinear runs.
	var collinear []Cluster
	for _, ac := range clusterBy(candidates, segmentAngle, params.ClusterToleranceAngle, e.cfg.MinClusterSegments) {
		collinear = append(collinear,
			clusterBy(ac.Segments, segmentOffset, params.ClusterToleranceOffset, e.cfg.MinClusterSegments)...)
	}

	best, bestScore, ok := selectBest(collinear)
	if !ok {
		return res
	}

	y, angle, offset, confidence := fitLine(best, params, bestScore)

	res.Found = true
	res.Horizon = Estimate{
		Y:            e.ySmooth.push(y),
		Angle:        e.angleSmooth.push(angle),
		Offset:       offset,
		RawY:         y,
		RawAngle:     angle,
		Segments:     best.Segments,
		Confidence:   confidence,
		SegmentCount: best.Count(),
		TotalLength:  best.TotalLength,
	}
	return res
}
