package config

import (
	"math"
	"testing"

	"github.com/decker502/deadshelf/pkg/utils"
)

func TestNewMapLayout(t *testing.T) {
	bounds := Bounds{
		Min: utils.Vec3{X: -10, Z: -5},
		Max: utils.Vec3{X: 10, Z: 5},
	}

	tests := []struct {
		name          string
		width, height float64
		wantScale     float64
	}{
		{"宽度受限", 232, 1000, 10},
		{"高度受限", 1000, 132, 10},
		{"不超过最大缩放", 2000, 2000, MaxPixelsPerMeter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapLayout(bounds, tt.width, tt.height)
			if math.Abs(m.Scale-tt.wantScale) > 1e-9 {
				t.Errorf("scale: got %v, want %v", m.Scale, tt.wantScale)
			}
		})
	}
}

func TestMapLayoutToScreen(t *testing.T) {
	bounds := Bounds{
		Min: utils.Vec3{X: -10, Z: -5},
		Max: utils.Vec3{X: 10, Z: 5},
	}
	m := NewMapLayout(bounds, 232, 132)

	x, y := m.ToScreen(utils.Vec3{X: -10, Z: 5})
	if x != MapMargin || y != MapMargin {
		t.Errorf("top-left corner: got (%v, %v), want (%d, %d)", x, y, MapMargin, MapMargin)
	}

	// +Z 朝上
	_, yNear := m.ToScreen(utils.Vec3{Z: -5})
	_, yFar := m.ToScreen(utils.Vec3{Z: 5})
	if yFar >= yNear {
		t.Errorf("+Z should be drawn above -Z: far %v near %v", yFar, yNear)
	}

	cx, cy := m.ToScreen(utils.Zero)
	if cx != 116 || cy != 66 {
		t.Errorf("center: got (%v, %v), want (116, 66)", cx, cy)
	}

	if m.Length(2) != 20 {
		t.Errorf("Length(2): got %v, want 20", m.Length(2))
	}
}
