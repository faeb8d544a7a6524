// Horizond - horizon line estimation service
// Captures frames, detects line segments and serves a live dashboard
// with the estimated horizon overlay.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/foxnetlabs/go-horizon/pkg/camera"
	"github.com/foxnetlabs/go-horizon/pkg/pipeline"
)

func main() {
	cfg := parseFlags()

	app, err := pipeline.New(cfg)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	if err := app.Init(); err != nil {
		log.Fatalf("❌ Initialization failed: %v", err)
	}
	defer app.Shutdown()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("❌ Runtime error: %v", err)
	}
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() pipeline.Config {
	cfg := pipeline.DefaultConfig()

	source := flag.String("source", cfg.Source, "Frame source: webcam, rover or feed")
	roverIP := flag.String("rover-ip", "", "Rover IP address (or ROVER_IP env var)")
	feedURL := flag.String("feed-url", "", "Segment feed websocket URL (or FEED_URL env var)")
	interval := flag.Duration("interval", cfg.Interval, "Time between frames")
	port := flag.String("port", cfg.Port, "Dashboard port (or HORIZON_PORT env var)")
	deviceID := flag.Int("device", cfg.Camera.DeviceID, "Webcam device ID")
	preset := flag.String("preset", "", "Camera preset: default, lowlatency, svga, uxga, night")
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	debugFrames := flag.Bool("debug-frames", false, "Log per-frame detection detail")

	flag.Parse()

	cfg.Source = *source
	cfg.Interval = *interval
	cfg.Port = *port
	cfg.Camera.DeviceID = *deviceID
	cfg.Debug = *debug
	cfg.DebugFrames = *debugFrames
	if *roverIP != "" {
		cfg.RoverIP = *roverIP
	}
	if *feedURL != "" {
		cfg.FeedURL = *feedURL
	}
	if *preset != "" {
		p := camera.GetPreset(*preset)
		if p == nil {
			log.Fatalf("❌ Unknown camera preset %q (have: %v)", *preset, camera.PresetNames())
		}
		p.DeviceID = *deviceID
		cfg.Camera = *p
	}

	if cfg.Interval < 10*time.Millisecond {
		log.Fatalf("❌ Interval too small: %v", cfg.Interval)
	}
	return cfg
}
