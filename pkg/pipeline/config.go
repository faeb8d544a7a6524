package pipeline

import (
	"fmt"
	"time"

	"github.com/foxnetlabs/go-horizon/internal/config"
	"github.com/foxnetlabs/go-horizon/pkg/camera"
	"github.com/foxnetlabs/go-horizon/pkg/detect"
)

// Frame sources.
const (
	SourceWebcam = "webcam" // local camera via OpenCV
	SourceRover  = "rover"  // rover /photo endpoint over HTTP
	SourceFeed   = "feed"   // pre-detected segments over websocket
)

// Config holds the pipeline configuration.
type Config struct {
	Source   string        // webcam, rover or feed
	RoverIP  string        // rover address for the rover source
	FeedURL  string        // websocket URL for the feed source
	Port     string        // dashboard port
	Interval time.Duration // time between frames

	Debug       bool // verbose logging
	DebugFrames bool // log per-frame detection detail

	Camera camera.Config
	Detect detect.Config
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Source:   SourceWebcam,
		Port:     config.DefaultServePort,
		Interval: 100 * time.Millisecond,
		Camera:   camera.DefaultConfig(),
		Detect:   detect.DefaultConfig(),
	}
}

// LoadEnvConfig applies environment variable overrides.
func (c *Config) LoadEnvConfig() {
	c.RoverIP = config.RoverIP(c.RoverIP)
	c.Port = config.ServePort(c.Port)
	c.FeedURL = config.FeedURL(c.FeedURL)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceWebcam, SourceRover, SourceFeed:
	default:
		return &ConfigError{Field: "source", Message: fmt.Sprintf("unknown source %q", c.Source)}
	}
	if c.Source == SourceRover && c.RoverIP == "" {
		return &ConfigError{Field: "rover-ip", Message: "rover source needs an IP (flag or ROVER_IP)"}
	}
	if c.Source == SourceFeed && c.FeedURL == "" {
		return &ConfigError{Field: "feed-url", Message: "feed source needs a URL (flag or FEED_URL)"}
	}
	if c.Interval <= 0 {
		return &ConfigError{Field: "interval", Message: "interval must be positive"}
	}
	return nil
}

// ConfigError describes an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error (" + e.Field + "): " + e.Message
}
