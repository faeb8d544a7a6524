package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/foxnetlabs/go-horizon/pkg/hub"
)

// handleStatus returns the current pipeline state
func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return c.JSON(s.state)
}

// handleHorizon returns the latest estimation result
func (s *Server) handleHorizon(c *fiber.Ctx) error {
	s.latestMu.RLock()
	defer s.latestMu.RUnlock()
	return c.JSON(s.latest)
}

// handleWalls returns the wall candidates from the latest frame
func (s *Server) handleWalls(c *fiber.Ctx) error {
	s.latestMu.RLock()
	defer s.latestMu.RUnlock()
	return c.JSON(fiber.Map{
		"count": len(s.latest.Walls),
		"walls": s.latest.Walls,
	})
}

// handleGetLogs returns recent log entries
func (s *Server) handleGetLogs(c *fiber.Ctx) error {
	s.logsMu.RLock()
	defer s.logsMu.RUnlock()
	return c.JSON(s.logs)
}

// handleGetCamera returns the current camera configuration
func (s *Server) handleGetCamera(c *fiber.Ctx) error {
	return c.JSON(s.Camera.GetConfig())
}

// handleSetCamera applies camera settings from the dashboard.
// Accepts a partial update, e.g. {"preset": "lowlatency"} or
// {"quality": 60, "vflip": true}.
func (s *Server) handleSetCamera(c *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "invalid body: " + err.Error(),
		})
	}

	if err := s.Camera.UpdateConfig(updates); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	s.AddLog("info", "Camera settings updated")
	return c.JSON(s.Camera.GetConfig())
}

// handleStatusWS streams state updates. Sends the current state on
// connect, then live updates via the status hub.
func (s *Server) handleStatusWS(c *websocket.Conn) {
	s.stateMu.RLock()
	c.WriteJSON(s.state)
	s.stateMu.RUnlock()

	hub.NewClient(s.statusHub, c).Run()
}

// handleHorizonWS streams estimation results to overlay clients.
func (s *Server) handleHorizonWS(c *websocket.Conn) {
	s.latestMu.RLock()
	c.WriteJSON(s.latest)
	s.latestMu.RUnlock()

	hub.NewClient(s.horizonHub, c).Run()
}

// handleCameraWS streams JPEG frames as binary messages.
func (s *Server) handleCameraWS(c *websocket.Conn) {
	hub.NewClient(s.cameraHub, c).Run()
}

// handleLogsWS streams log entries. Sends the buffered history on
// connect, then live entries via the log hub.
func (s *Server) handleLogsWS(c *websocket.Conn) {
	s.logsMu.RLock()
	for _, entry := range s.logs {
		c.WriteJSON(entry)
	}
	s.logsMu.RUnlock()

	hub.NewClient(s.logHub, c).Run()
}
