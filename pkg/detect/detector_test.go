package detect

import "testing"

func TestNewHough_KernelValidation(t *testing.T) {
	tests := []struct {
		name   string
		kernel int
		valid  bool
	}{
		{"default kernel", 5, true},
		{"minimal kernel", 1, true},
		{"even kernel rejected", 4, false},
		{"zero kernel rejected", 0, false},
		{"negative kernel rejected", -3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.BlurKernel = tc.kernel
			_, err := NewHough(cfg)
			if tc.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDefaultConfig_Sane(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BlurKernel%2 == 0 {
		t.Errorf("BlurKernel must be odd, got %d", cfg.BlurKernel)
	}
	if cfg.MaxSegments <= 0 {
		t.Errorf("MaxSegments must be positive, got %d", cfg.MaxSegments)
	}
	if err := cfg.Tuning.Validate(); err != nil {
		t.Errorf("tuning config invalid: %v", err)
	}
}
