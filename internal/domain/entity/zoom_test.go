package entity

import (
	"math"
	"testing"
)

func TestNewZoomLevel_Clamps(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   float64
	}{
		{"in range", 1.5, 1.5},
		{"below min", 0.1, ZoomMin},
		{"above max", 9.0, ZoomMax},
		{"exactly min", ZoomMin, ZoomMin},
		{"exactly max", ZoomMax, ZoomMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := NewZoomLevel("example.com", tt.factor)
			if z.ZoomFactor != tt.want {
				t.Errorf("NewZoomLevel factor = %v, want %v", z.ZoomFactor, tt.want)
			}
		})
	}
}

func TestZoomLevel_Steps(t *testing.T) {
	z := NewZoomLevel("example.com", 1.0)

	z.ZoomIn()
	if math.Abs(z.ZoomFactor-1.1) > 1e-9 {
		t.Errorf("after ZoomIn factor = %v, want 1.1", z.ZoomFactor)
	}

	z.ZoomOut()
	z.ZoomOut()
	if math.Abs(z.ZoomFactor-0.9) > 1e-9 {
		t.Errorf("after two ZoomOut factor = %v, want 0.9", z.ZoomFactor)
	}
}

func TestZoomLevel_StepsStopAtBounds(t *testing.T) {
	z := NewZoomLevel("example.com", ZoomMax)
	z.ZoomIn()
	if z.ZoomFactor != ZoomMax {
		t.Errorf("ZoomIn at max = %v, want %v", z.ZoomFactor, ZoomMax)
	}

	z = NewZoomLevel("example.com", ZoomMin)
	z.ZoomOut()
	if z.ZoomFactor != ZoomMin {
		t.Errorf("ZoomOut at min = %v, want %v", z.ZoomFactor, ZoomMin)
	}
}

func TestZoomLevel_Reset(t *testing.T) {
	z := NewZoomLevel("example.com", 2.0)
	if z.IsDefault() {
		t.Fatal("2.0 should not be default")
	}

	z.Reset()
	if !z.IsDefault() {
		t.Errorf("after Reset factor = %v, want %v", z.ZoomFactor, ZoomDefault)
	}
}

func TestZoomLevel_Percentage(t *testing.T) {
	z := NewZoomLevel("example.com", 1.5)
	if z.Percentage() != 150 {
		t.Errorf("Percentage() = %d, want 150", z.Percentage())
	}
}
