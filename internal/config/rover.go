// Package config provides configuration helpers for go-horizon commands.
package config

import (
	"fmt"
	"os"
)

// Default rover configuration.
const (
	DefaultRoverPort = "80"
	DefaultServePort = "8090"
)

// RoverIP returns the rover IP from ROVER_IP env var.
// Falls back to the provided default if not set.
func RoverIP(defaultIP string) string {
	if ip := os.Getenv("ROVER_IP"); ip != "" {
		return ip
	}
	return defaultIP
}

// RoverPhotoURL returns the rover's still capture URL.
func RoverPhotoURL(roverIP string) string {
	return fmt.Sprintf("http://%s:%s/photo", roverIP, DefaultRoverPort)
}

// ServePort returns the dashboard port from HORIZON_PORT env var.
// Falls back to the provided default if not set.
func ServePort(defaultPort string) string {
	if port := os.Getenv("HORIZON_PORT"); port != "" {
		return port
	}
	return defaultPort
}

// FeedURL returns the remote segment feed URL from FEED_URL env var.
// Falls back to the provided default if not set.
func FeedURL(defaultURL string) string {
	if url := os.Getenv("FEED_URL"); url != "" {
		return url
	}
	return defaultURL
}
