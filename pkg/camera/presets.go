package camera

// Preset names for common configurations
const (
	PresetDefault    = "default"
	PresetLowLatency = "lowlatency"
	PresetSVGA       = "svga"
	PresetUXGA       = "uxga"
	PresetNight      = "night"
)

// Presets returns all available preset configurations.
func Presets() map[string]Config {
	return map[string]Config{
		PresetDefault:    DefaultConfig(),
		PresetLowLatency: LowLatencyConfig(),
		PresetSVGA:       SVGAConfig(),
		PresetUXGA:       UXGAConfig(),
		PresetNight:      NightModeConfig(),
	}
}

// PresetNames returns the list of available preset names.
func PresetNames() []string {
	return []string{
		PresetDefault,
		PresetLowLatency,
		PresetSVGA,
		PresetUXGA,
		PresetNight,
	}
}

// GetPreset returns a preset config by name, or nil if not found.
func GetPreset(name string) *Config {
	presets := Presets()
	if cfg, ok := presets[name]; ok {
		return &cfg
	}
	return nil
}

// SVGAConfig returns the 800x600 configuration.
func SVGAConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 800
	cfg.Height = 600
	return cfg
}

// UXGAConfig returns the sensor's full 1600x1200 resolution.
// Much heavier to detect lines in; use for stills, not the overlay loop.
func UXGAConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = SensorMaxWidth
	cfg.Height = SensorMaxHeight
	cfg.Framerate = 5
	return cfg
}

// NightModeConfig returns configuration for night driving: IR light on
// and a smaller frame so the longer sensor integration keeps up.
func NightModeConfig() Config {
	cfg := LowLatencyConfig()
	cfg.IRLight = true
	return cfg
}
