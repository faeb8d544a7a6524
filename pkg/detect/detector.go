// Package detect provides line segment detection from camera frames.
package detect

import (
	"github.com/foxnetlabs/go-horizon/pkg/geometry"
	"github.com/foxnetlabs/go-horizon/pkg/horizon"
)

// Frame is one frame's worth of detector output: the processing-space
// dimensions and the segments found in it. May carry zero segments.
type Frame struct {
	Width    int                `json:"width"`
	Height   int                `json:"height"`
	Segments []geometry.Segment `json:"segments"`
}

// Detector is the interface for line detection backends.
type Detector interface {
	// Detect finds line segments in the JPEG image.
	Detect(jpeg []byte) (Frame, error)

	// Close releases resources.
	Close() error
}

// Config holds detector configuration. The per-frame thresholds (Canny,
// Hough votes, minimum length, maximum gap) are not set here. They are
// derived from the frame resolution via horizon.AdaptParams.
type Config struct {
	BlurKernel  int            // Gaussian blur kernel size, must be odd
	MaxSegments int            // Cap on segments returned per frame
	Tuning      horizon.Config // Source of the resolution-scaled thresholds
}

// DefaultConfig returns production defaults for the Hough detector.
func DefaultConfig() Config {
	return Config{
		BlurKernel:  5,
		MaxSegments: 200,
		Tuning:      horizon.DefaultConfig(),
	}
}
