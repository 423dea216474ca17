package utils

import (
	"math"
	"testing"
)

func TestAxis(t *testing.T) {
	tests := []struct {
		name     string
		neg, pos bool
		want     float64
	}{
		{"都没按", false, false, 0},
		{"只按正向", false, true, 1},
		{"只按反向", true, false, -1},
		{"同时按下相互抵消", true, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Axis(tt.neg, tt.pos); got != tt.want {
				t.Errorf("Axis(%v, %v) = %v, want %v", tt.neg, tt.pos, got, tt.want)
			}
		})
	}
}

func TestTurnFromCursor(t *testing.T) {
	tests := []struct {
		name        string
		dx          int
		sensitivity float64
		invert      bool
		want        float64
	}{
		{"静止", 0, 1, false, 0},
		{"向右", 100, 1, false, 0.3},
		{"灵敏度加倍", 100, 2, false, 0.6},
		{"反转", 100, 1, true, -0.3},
		{"向左", -50, 1, false, -0.15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TurnFromCursor(tt.dx, tt.sensitivity, tt.invert)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointerTracker(t *testing.T) {
	var p PointerTracker

	if d := p.Delta(400); d != 0 {
		t.Errorf("first frame delta: got %d, want 0", d)
	}
	if d := p.Delta(410); d != 10 {
		t.Errorf("delta: got %d, want 10", d)
	}
	if d := p.Delta(390); d != -20 {
		t.Errorf("delta: got %d, want -20", d)
	}

	p.Reset()
	if d := p.Delta(0); d != 0 {
		t.Errorf("delta after reset: got %d, want 0", d)
	}
}
