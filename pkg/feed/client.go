// Package feed provides a websocket client for remote segment streams.
//
// An off-board detector (or a recorded session replayer) pushes one JSON
// message per frame; the client converts them to detector frames and
// hands them to a callback. This lets the estimator run without any
// local OpenCV dependency on the capture host.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/foxnetlabs/go-horizon/internal/log"
	"github.com/foxnetlabs/go-horizon/pkg/detect"
	"github.com/foxnetlabs/go-horizon/pkg/geometry"
)

// reconnectDelay is the pause before redialing a dropped feed.
const reconnectDelay = 2 * time.Second

// wireFrame is the on-the-wire frame format: endpoints only, derived
// segment properties are recomputed locally.
type wireFrame struct {
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Segments [][4]float64 `json:"segments"`
}

// Client subscribes to a remote segment feed.
type Client struct {
	url string

	// OnFrame is called for every received frame. Must be set before
	// Run. Called from the read loop; keep it fast or hand off.
	OnFrame func(detect.Frame)

	mu     sync.Mutex
	conn   *websocket.Conn
	frames int
}

// NewClient creates a feed client for the given websocket URL, e.g.
// ws://host:9000/segments.
func NewClient(url string) *Client {
	return &Client{url: url}
}

// Run connects and consumes frames until the context is cancelled,
// redialing dropped connections. Returns the context error on exit.
func (c *Client) Run(ctx context.Context) error {
	if c.OnFrame == nil {
		return fmt.Errorf("feed: OnFrame callback not set")
	}

	for {
		if err := c.consume(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn("feed connection lost, retrying", "url", c.url, "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

// consume dials once and reads frames until error or cancellation.
func (c *Client) consume(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	log.Info("feed connected", "url", c.url)

	// Unblock ReadMessage when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}

		frame, err := DecodeFrame(data)
		if err != nil {
			// A malformed frame is skipped, not fatal to the feed.
			log.Warn("skipping malformed feed frame", "error", err)
			continue
		}

		c.mu.Lock()
		c.frames++
		c.mu.Unlock()

		c.OnFrame(frame)
	}
}

// FrameCount returns the number of frames received since creation.
func (c *Client) FrameCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// DecodeFrame parses a wire frame and rebuilds segment geometry.
func DecodeFrame(data []byte) (detect.Frame, error) {
	var wf wireFrame
	if err := json.Unmarshal(data, &wf); err != nil {
		return detect.Frame{}, fmt.Errorf("decode: %w", err)
	}
	if wf.Width <= 0 || wf.Height <= 0 {
		return detect.Frame{}, fmt.Errorf("bad frame dimensions %dx%d", wf.Width, wf.Height)
	}

	frame := detect.Frame{Width: wf.Width, Height: wf.Height}
	for _, s := range wf.Segments {
		frame.Segments = append(frame.Segments, geometry.NewSegment(s[0], s[1], s[2], s[3]))
	}
	return frame, nil
}
