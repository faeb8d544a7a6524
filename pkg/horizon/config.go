package horizon

import "fmt"

// Config holds all tunable parameters for horizon estimation.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// Classification
	MaxHorizonAngle    float64 // Segments steeper than this (degrees) are not horizon candidates
	WallAngleTolerance float64 // Degrees from vertical still counted as a wall candidate
	MaxWallCandidates  int     // Wall candidates reported per frame, longest first

	// Clustering
	ClusterAngleTolerance float64 // Degrees between a segment and the cluster seed
	MinClusterSegments    int     // Clusters smaller than this are discarded

	// Temporal smoothing
	SmoothFrames int // Median window (frames) for the y and angle channels
}

// DefaultConfig returns the recommended configuration for a downscaled
// camera frame at roughly 10 Hz.
func DefaultConfig() Config {
	return Config{
		MaxHorizonAngle:    45, // Reject anything steeper than 45° outright
		WallAngleTolerance: 15,
		MaxWallCandidates:  10,

		ClusterAngleTolerance: 8,
		MinClusterSegments:    1,

		SmoothFrames: 5,
	}
}

// StableConfig trades responsiveness for a calmer overlay: longer median
// window and corroboration required before a cluster counts.
func StableConfig() Config {
	cfg := DefaultConfig()
	cfg.SmoothFrames = 9
	cfg.MinClusterSegments = 2
	return cfg
}

// ResponsiveConfig reacts faster at the cost of more frame-to-frame
// jitter. Useful when the camera pans quickly.
func ResponsiveConfig() Config {
	cfg := DefaultConfig()
	cfg.SmoothFrames = 3
	cfg.ClusterAngleTolerance = 10
	return cfg
}

// Validate checks the configuration for values the pipeline cannot work
// with. Called once at construction; the estimator never re-validates.
func (c Config) Validate() error {
	if c.MaxHorizonAngle <= 0 || c.MaxHorizonAngle > 90 {
		return fmt.Errorf("max horizon angle must be in (0, 90], got %v", c.MaxHorizonAngle)
	}
	if c.WallAngleTolerance < 0 || c.WallAngleTolerance > 90 {
		return fmt.Errorf("wall angle tolerance must be in [0, 90], got %v", c.WallAngleTolerance)
	}
	if c.MaxWallCandidates < 0 {
		return fmt.Errorf("max wall candidates must be >= 0, got %d", c.MaxWallCandidates)
	}
	if c.ClusterAngleTolerance <= 0 {
		return fmt.Errorf("cluster angle tolerance must be > 0, got %v", c.ClusterAngleTolerance)
	}
	if c.MinClusterSegments < 1 {
		return fmt.Errorf("min cluster segments must be >= 1, got %d", c.MinClusterSegments)
	}
	if c.SmoothFrames < 1 {
		return fmt.Errorf("smooth frames must be >= 1, got %d", c.SmoothFrames)
	}
	return nil
}
