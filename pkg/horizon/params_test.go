package horizon

import (
	"math"
	"testing"
)

func TestAdaptParams_ReferenceResolution(t *testing.T) {
	p := AdaptParams(DefaultConfig(), 640, 480)

	if p.Scale != 1 {
		t.Errorf("Scale: got %v, want 1", p.Scale)
	}
	if math.Abs(p.Diagonal-800) > 1e-9 {
		t.Errorf("Diagonal: got %v, want 800", p.Diagonal)
	}
	// 3% of 800 = 24px collinearity tolerance.
	if math.Abs(p.ClusterToleranceOffset-24) > 1e-9 {
		t.Errorf("ClusterToleranceOffset: got %v, want 24", p.ClusterToleranceOffset)
	}
	if p.ClusterToleranceAngle != DefaultConfig().ClusterAngleTolerance {
		t.Errorf("ClusterToleranceAngle: got %v, want config value", p.ClusterToleranceAngle)
	}
}

func TestAdaptParams_Floors(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expectScale   float64
		expectOffset  float64
	}{
		{
			name:  "tiny frame hits both floors",
			width: 160, height: 120,
			expectScale:  0.5, // raw 0.25, clamped
			expectOffset: 10,  // 3% of 200 = 6, clamped
		},
		{
			name:  "portrait frame scales by the tighter axis",
			width: 480, height: 640,
			expectScale:  0.75, // min(480/640, 640/480)
			expectOffset: 24,
		},
		{
			name:  "large frame scales up",
			width: 1280, height: 960,
			expectScale:  2,
			expectOffset: 48,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := AdaptParams(DefaultConfig(), tc.width, tc.height)
			if math.Abs(p.Scale-tc.expectScale) > 1e-9 {
				t.Errorf("Scale: got %v, want %v", p.Scale, tc.expectScale)
			}
			if math.Abs(p.ClusterToleranceOffset-tc.expectOffset) > 1e-9 {
				t.Errorf("ClusterToleranceOffset: got %v, want %v",
					p.ClusterToleranceOffset, tc.expectOffset)
			}
		})
	}
}

func TestAdaptParams_DetectorPassThrough(t *testing.T) {
	p := AdaptParams(DefaultConfig(), 1280, 960)

	if p.MinLineLength != 60 {
		t.Errorf("MinLineLength: got %v, want 60", p.MinLineLength)
	}
	if p.MaxLineGap != 20 {
		t.Errorf("MaxLineGap: got %v, want 20", p.MaxLineGap)
	}
	if p.HoughVotes != 60 {
		t.Errorf("HoughVotes: got %v, want 60", p.HoughVotes)
	}
	if p.CannyLow != 100 || p.CannyHigh != 300 {
		t.Errorf("Canny thresholds: got %v/%v, want 100/300", p.CannyLow, p.CannyHigh)
	}
}

func TestAdaptParams_Deterministic(t *testing.T) {
	a := AdaptParams(DefaultConfig(), 800, 600)
	b := AdaptParams(DefaultConfig(), 800, 600)
	if a != b {
		t.Errorf("same input produced different params: %+v vs %+v", a, b)
	}
}
