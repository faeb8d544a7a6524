package pipeline

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Source != SourceWebcam {
		t.Errorf("got source %q, want webcam", cfg.Source)
	}
	if cfg.Interval != 100*time.Millisecond {
		t.Errorf("got interval %v, want 100ms", cfg.Interval)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown source", func(c *Config) { c.Source = "satellite" }, "source"},
		{"rover without ip", func(c *Config) { c.Source = SourceRover }, "rover-ip"},
		{"feed without url", func(c *Config) { c.Source = SourceFeed }, "feed-url"},
		{"zero interval", func(c *Config) { c.Interval = 0 }, "interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			cerr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("got %T, want *ConfigError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("got field %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}

func TestConfigValidateSourcesWithEndpoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source = SourceRover
	cfg.RoverIP = "192.168.4.1"
	if err := cfg.Validate(); err != nil {
		t.Errorf("rover with IP: %v", err)
	}

	cfg = DefaultConfig()
	cfg.Source = SourceFeed
	cfg.FeedURL = "ws://localhost:9000/segments"
	if err := cfg.Validate(); err != nil {
		t.Errorf("feed with URL: %v", err)
	}
}
