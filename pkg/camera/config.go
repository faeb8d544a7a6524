// Package camera provides frame sources and runtime-configurable
// capture settings for the rover camera.
package camera

// Config holds all camera configuration parameters.
// These can be modified via the camera API at runtime.
type Config struct {
	// === Resolution ===
	Width     int `json:"width"`     // Frame width in pixels
	Height    int `json:"height"`    // Frame height in pixels
	Framerate int `json:"framerate"` // Target FPS
	Quality   int `json:"quality"`   // JPEG quality 1-100

	// === Orientation ===
	// The rover camera is mounted upside down on some chassis builds.
	VFlip   bool `json:"vflip"`   // Vertical flip
	HMirror bool `json:"hmirror"` // Horizontal mirror

	// === Illumination ===
	// IRLight toggles the onboard IR illuminator for night driving.
	IRLight bool `json:"ir_light"`

	// DeviceID selects the local capture device (webcam source only).
	DeviceID int `json:"device_id"`
}

// Sensor capabilities for the OV2640 rover camera.
const (
	SensorMaxWidth  = 1600
	SensorMaxHeight = 1200
	SensorMaxFPS    = 60
)

// DefaultConfig returns the VGA configuration the estimation pipeline
// was tuned at. Higher resolutions cost more than the horizon overlay
// gains from them.
func DefaultConfig() Config {
	return Config{
		Width:     640,
		Height:    480,
		Framerate: 10,
		Quality:   80,
	}
}

// LowLatencyConfig returns a quarter-resolution configuration for slow
// links; the estimator's tolerances adapt to the smaller frame.
func LowLatencyConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 320
	cfg.Height = 240
	cfg.Quality = 60
	return cfg
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.Width < 160 || c.Width > SensorMaxWidth {
		errors = append(errors, "width must be between 160 and 1600")
	}
	if c.Height < 120 || c.Height > SensorMaxHeight {
		errors = append(errors, "height must be between 120 and 1200")
	}
	if c.Framerate < 1 || c.Framerate > SensorMaxFPS {
		errors = append(errors, "framerate must be between 1 and 60")
	}
	if c.Quality < 1 || c.Quality > 100 {
		errors = append(errors, "quality must be between 1 and 100")
	}
	if c.DeviceID < 0 {
		errors = append(errors, "device_id must be >= 0")
	}

	return errors
}

// Capabilities returns the camera sensor capabilities.
func Capabilities() map[string]interface{} {
	return map[string]interface{}{
		"sensor":     "ov2640",
		"max_width":  SensorMaxWidth,
		"max_height": SensorMaxHeight,
		"max_fps":    SensorMaxFPS,
	}
}
