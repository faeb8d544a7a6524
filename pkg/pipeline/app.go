// Package pipeline wires a frame source, segment detector and horizon
// estimator together and publishes results to the dashboard.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/foxnetlabs/go-horizon/internal/log"
	"github.com/foxnetlabs/go-horizon/pkg/camera"
	"github.com/foxnetlabs/go-horizon/pkg/debug"
	"github.com/foxnetlabs/go-horizon/pkg/detect"
	"github.com/foxnetlabs/go-horizon/pkg/feed"
	"github.com/foxnetlabs/go-horizon/pkg/horizon"
	"github.com/foxnetlabs/go-horizon/pkg/web"
)

// App is the horizon estimation service.
type App struct {
	config Config

	// Frame acquisition. sourceMu guards source: the dashboard can
	// swap the webcam while the capture loop is running.
	source     camera.FrameSource
	sourceMu   sync.Mutex
	feedClient *feed.Client

	// Processing
	detector  detect.Detector
	estimator *horizon.Estimator

	// Web dashboard
	webServer *web.Server
}

// New creates a new pipeline application with the given configuration.
func New(cfg Config) (*App, error) {
	// Apply environment overrides
	cfg.LoadEnvConfig()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	debug.Enabled = cfg.Debug
	debug.Detection = cfg.DebugFrames
	if cfg.Debug {
		log.Init("debug")
	} else {
		log.Init("info")
	}

	return &App{config: cfg}, nil
}

// Init initializes all components.
// Call this after New() and before Run().
func (a *App) Init() error {
	fmt.Println("🌅 Horizon - line estimation service")
	fmt.Println("====================================")
	if debug.Enabled {
		fmt.Println("🐛 Debug mode enabled")
	}

	est, err := horizon.New(a.config.Detect.Tuning)
	if err != nil {
		return fmt.Errorf("estimator init: %w", err)
	}
	a.estimator = est

	a.webServer = web.NewServer(a.config.Port)
	if err := a.webServer.Camera.SetConfig(a.config.Camera); err != nil {
		return fmt.Errorf("camera config: %w", err)
	}

	switch a.config.Source {
	case SourceFeed:
		fmt.Printf("📡 Segment feed: %s\n", a.config.FeedURL)
		a.feedClient = feed.NewClient(a.config.FeedURL)
		a.feedClient.OnFrame = a.processDetected
		return nil

	case SourceRover:
		fmt.Printf("🤖 Rover camera: %s\n", a.config.RoverIP)
		a.source = camera.NewRemote(a.config.RoverIP)

	case SourceWebcam:
		fmt.Print("📷 Opening webcam... ")
		cam, err := camera.OpenWebcam(a.config.Camera)
		if err != nil {
			return fmt.Errorf("webcam: %w", err)
		}
		fmt.Println("✅")
		a.source = cam

		// Reopen the webcam when settings change from the dashboard
		a.webServer.Camera.OnConfigChange = func(cfg camera.Config) error {
			if err := a.reopenWebcam(cfg); err != nil {
				a.webServer.AddLog("error", "Camera reopen failed: "+err.Error())
				return err
			}
			return nil
		}
	}

	// A detector is only needed when we receive raw frames
	det, err := detect.NewHough(a.config.Detect)
	if err != nil {
		return fmt.Errorf("detector init: %w", err)
	}
	a.detector = det

	return nil
}

// Run starts the main processing loop.
// Blocks until the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.webServer.StartAsync()
	a.webServer.AddLog("info", "Pipeline started ("+a.config.Source+")")

	if a.feedClient != nil {
		a.webServer.UpdateState(func(s *web.State) { s.SourceConnected = true })
		return a.feedClient.Run(ctx)
	}

	ticker := time.NewTicker(a.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			a.processFrame()
		}
	}
}

// processFrame captures one frame, detects segments and publishes the
// resulting estimate.
func (a *App) processFrame() {
	a.sourceMu.Lock()
	source := a.source
	a.sourceMu.Unlock()

	jpeg, err := source.CaptureJPEG()
	if err != nil {
		a.webServer.UpdateState(func(s *web.State) { s.SourceConnected = false })
		debug.Log("capture: %v\n", err)
		return
	}

	frame, err := a.detector.Detect(jpeg)
	if err != nil {
		debug.Log("detect: %v\n", err)
		return
	}

	res := a.estimator.Estimate(frame.Segments, frame.Width, frame.Height)

	a.webServer.UpdateState(func(s *web.State) { s.SourceConnected = true })
	a.webServer.PublishResult(res)
	a.webServer.SendCameraFrame(jpeg)

	if res.Found {
		debug.DetectLog("horizon y=%.1f angle=%.1f conf=%.2f (%d segments)\n",
			res.Horizon.Y, res.Horizon.Angle, res.Horizon.Confidence, res.Horizon.SegmentCount)
	}
}

// processDetected handles pre-detected segment frames from the feed.
func (a *App) processDetected(frame detect.Frame) {
	res := a.estimator.Estimate(frame.Segments, frame.Width, frame.Height)
	a.webServer.PublishResult(res)
}

// reopenWebcam swaps the webcam for one with the new settings.
// Smoothing history is kept: the scene does not change with the lens.
func (a *App) reopenWebcam(cfg camera.Config) error {
	cam, err := camera.OpenWebcam(cfg)
	if err != nil {
		return err
	}

	a.sourceMu.Lock()
	old := a.source
	a.source = cam
	a.sourceMu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

// Shutdown gracefully shuts down all components.
func (a *App) Shutdown() {
	fmt.Println("\n👋 Shutting down")

	a.sourceMu.Lock()
	if a.source != nil {
		a.source.Close()
	}
	a.sourceMu.Unlock()
	if a.detector != nil {
		a.detector.Close()
	}
	if a.webServer != nil {
		a.webServer.Shutdown()
	}
}
