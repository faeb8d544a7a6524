// Package web provides the real-time horizon overlay dashboard.
package web

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/foxnetlabs/go-horizon/internal/log"
	"github.com/foxnetlabs/go-horizon/pkg/camera"
	"github.com/foxnetlabs/go-horizon/pkg/horizon"
	"github.com/foxnetlabs/go-horizon/pkg/hub"
)

// State is the current pipeline state for the dashboard.
type State struct {
	RunID           string  `json:"run_id"`
	SourceConnected bool    `json:"source_connected"`
	HorizonFound    bool    `json:"horizon_found"`
	Y               float64 `json:"y"`
	Angle           float64 `json:"angle"`
	Confidence      float64 `json:"confidence"`
	SegmentCount    int     `json:"segment_count"`
	WallCount       int     `json:"wall_count"`
	FramesProcessed int     `json:"frames_processed"`
	FramesEmpty     int     `json:"frames_empty"`
}

// LogEntry represents a log line for the dashboard
type LogEntry struct {
	Time    string `json:"time"`
	Type    string `json:"type"` // info, frame, horizon, error
	Message string `json:"message"`
}

// Server is the dashboard server. It holds the latest estimation result
// and fans out updates over websockets.
type Server struct {
	app  *fiber.App
	port string

	// State
	state   State
	stateMu sync.RWMutex

	// Latest estimation result
	latest   horizon.Result
	latestMu sync.RWMutex

	// Log buffer (last 500 entries)
	logs   []LogEntry
	logsMu sync.RWMutex

	// Camera settings, editable from the dashboard
	Camera *camera.Manager

	// Hubs for websocket broadcast
	statusHub  *hub.Hub
	horizonHub *hub.Hub
	cameraHub  *hub.Hub
	logHub     *hub.Hub
}

// NewServer creates a new dashboard server.
func NewServer(port string) *Server {
	s := &Server{
		port:       port,
		logs:       make([]LogEntry, 0, 500),
		Camera:     camera.NewManager(),
		statusHub:  hub.New("status"),
		horizonHub: hub.New("horizon"),
		cameraHub:  hub.New("camera"),
		logHub:     hub.New("logs"),
	}
	s.state.RunID = uuid.NewString()

	app := fiber.New(fiber.Config{
		AppName:               "Horizon Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// Static files (overlay client)
	app.Static("/", "./web")

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/horizon", s.handleHorizon)
	api.Get("/walls", s.handleWalls)
	api.Get("/logs", s.handleGetLogs)
	api.Get("/camera", s.handleGetCamera)
	api.Post("/camera", s.handleSetCamera)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/status", websocket.New(s.handleStatusWS))
	app.Get("/ws/horizon", websocket.New(s.handleHorizonWS))
	app.Get("/ws/camera", websocket.New(s.handleCameraWS))
	app.Get("/ws/logs", websocket.New(s.handleLogsWS))

	s.app = app
	return s
}

// Start starts the dashboard server.
func (s *Server) Start() error {
	log.Info("dashboard listening", "addr", "http://localhost:"+s.port, "run_id", s.state.RunID)

	// Start all hubs
	go s.statusHub.Run()
	go s.horizonHub.Run()
	go s.cameraHub.Run()
	go s.logHub.Run()

	return s.app.Listen(":" + s.port)
}

// StartAsync starts the dashboard server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("dashboard server", "error", err)
		}
	}()
}

// UpdateState updates the pipeline state and broadcasts it.
func (s *Server) UpdateState(update func(*State)) {
	s.stateMu.Lock()
	update(&s.state)
	state := s.state // Copy for broadcast
	s.stateMu.Unlock()

	s.statusHub.BroadcastJSON(state)
}

// PublishResult stores the latest estimation result, updates the state
// and broadcasts the result to overlay clients.
func (s *Server) PublishResult(res horizon.Result) {
	s.latestMu.Lock()
	s.latest = res
	s.latestMu.Unlock()

	s.UpdateState(func(st *State) {
		st.FramesProcessed++
		st.HorizonFound = res.Found
		st.WallCount = len(res.Walls)
		if res.Found {
			st.Y = res.Horizon.Y
			st.Angle = res.Horizon.Angle
			st.Confidence = res.Horizon.Confidence
			st.SegmentCount = res.Horizon.SegmentCount
		} else {
			st.FramesEmpty++
			st.Confidence = 0
			st.SegmentCount = 0
		}
	})

	s.horizonHub.BroadcastJSON(res)
}

// Latest returns the most recent estimation result.
func (s *Server) Latest() horizon.Result {
	s.latestMu.RLock()
	defer s.latestMu.RUnlock()
	return s.latest
}

// AddLog adds a log entry and broadcasts to clients
func (s *Server) AddLog(logType, message string) {
	entry := LogEntry{
		Time:    time.Now().Format("15:04:05"),
		Type:    logType,
		Message: message,
	}

	s.logsMu.Lock()
	s.logs = append(s.logs, entry)
	if len(s.logs) > 500 {
		s.logs = s.logs[1:]
	}
	s.logsMu.Unlock()

	s.logHub.BroadcastJSON(entry)
}

// SendCameraFrame sends a camera frame to all connected clients
func (s *Server) SendCameraFrame(jpegData []byte) {
	s.cameraHub.BroadcastBinary(jpegData)
}

// Shutdown gracefully stops the dashboard server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
