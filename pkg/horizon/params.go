package horizon

import "math"

// Reference resolution the tolerances were tuned at.
const (
	refWidth  = 640.0
	refHeight = 480.0

	// minScale keeps thresholds usable on very small frames.
	minScale = 0.5

	// minOffsetTolerance is the floor for the collinearity tolerance in
	// pixels; 3% of the diagonal drops below it around 330px frames.
	minOffsetTolerance = 10.0
)

// AdaptiveParams are the resolution-derived thresholds for one frame.
// The clustering tolerances are consumed by the estimator itself; the
// detector fields are passed through to the upstream line detector,
// which produces the segments this package consumes.
type AdaptiveParams struct {
	Width    int
	Height   int
	Scale    float64 // min(w/640, h/480), clamped to minScale
	Diagonal float64 // sqrt(w² + h²)

	// Clustering
	ClusterToleranceAngle  float64 // degrees
	ClusterToleranceOffset float64 // pixels, max(10, 3% of diagonal)

	// Detector pass-through, all scaled by Scale
	CannyLow      float64
	CannyHigh     float64
	HoughVotes    int
	MinLineLength float64
	MaxLineGap    float64
}

// AdaptParams derives detection and clustering thresholds from the frame
// dimensions. Pure and deterministic; computed once per frame.
func AdaptParams(cfg Config, width, height int) AdaptiveParams {
	w := float64(width)
	h := float64(height)

	scale := math.Min(w/refWidth, h/refHeight)
	if scale < minScale {
		scale = minScale
	}
	diagonal := math.Sqrt(w*w + h*h)

	return AdaptiveParams{
		Width:    width,
		Height:   height,
		Scale:    scale,
		Diagonal: diagonal,

		ClusterToleranceAngle:  cfg.ClusterAngleTolerance,
		ClusterToleranceOffset: math.Max(minOffsetTolerance, diagonal*0.03),

		CannyLow:      50 * scale,
		CannyHigh:     150 * scale,
		HoughVotes:    int(math.Round(30 * scale)),
		MinLineLength: 30 * scale,
		MaxLineGap:    10 * scale,
	}
}
