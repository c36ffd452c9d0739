package ui

import (
	"strings"
	"testing"

	"github.com/1siamBot/particle-gesture/engine/gesture"
	"github.com/1siamBot/particle-gesture/engine/input"
	"github.com/1siamBot/particle-gesture/engine/shape"
)

func TestLines(t *testing.T) {
	s := Status{
		Shape:         shape.Torus,
		Particles:     10000,
		Drawn:         9876,
		TargetScale:   1.5,
		Fill:          true,
		Trail:         true,
		TrailStrength: 0.9,
		Gesture:       gesture.Open,
		GestureSource: "synthetic",
		Size:          0.33,
		ZoomSpeed:     10,
		Speed:         12,
		Color1:        "#ff6ec7",
		Color2:        "#7873f5",
	}
	lines := Lines(s)
	if len(lines) != 4 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "torus") || !strings.Contains(lines[0], "10000 particles") || !strings.Contains(lines[0], "scale 1.50") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "fill on | trail 0.90 | gradient off" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lines[2] != "gesture: open (synthetic)" {
		t.Errorf("line 2 = %q", lines[2])
	}
	if lines[3] != "size 0.33 | zoom 10 | speed 12 | colors #ff6ec7 #7873f5" {
		t.Errorf("line 3 = %q", lines[3])
	}

	s.Trail = false
	s.Music = "music: none"
	s.Message = "image: no image"
	lines = Lines(s)
	if len(lines) != 6 || !strings.Contains(lines[1], "trail off") {
		t.Errorf("unexpected lines %q", lines)
	}
}

func TestHandleClick(t *testing.T) {
	h := NewHUD(1280, 720)
	for i, want := range shape.All() {
		x, y, w, bh := h.buttonRect(i)
		got, ok, consumed := h.HandleClick(x+w/2, y+bh/2)
		if !ok || !consumed || got != want {
			t.Errorf("button %d picked %v ok=%v, want %v", i, got, ok, want)
		}
	}

	if _, ok, consumed := h.HandleClick(h.ScreenW-5, h.ScreenH-5); ok || !consumed {
		t.Error("empty sidebar area should be consumed without a pick")
	}
	if _, _, consumed := h.HandleClick(100, 100); consumed {
		t.Error("clicks on the scene must not be consumed")
	}

	h.Visible = false
	if _, _, consumed := h.HandleClick(h.ScreenW-5, 100); consumed {
		t.Error("hidden HUD must not consume clicks")
	}
}

func TestGestureColor(t *testing.T) {
	if GestureColor(gesture.Fist) == GestureColor(gesture.Open) {
		t.Error("fist and open should be distinguishable")
	}
	if GestureColor(gesture.Unknown).A != 255 {
		t.Error("indicator colours are opaque")
	}
}

func TestInputStateDrag(t *testing.T) {
	s := NewInputState()
	if _, ok := s.Drag(); ok {
		t.Error("idle input should not rotate")
	}
	s.Rotating = true
	s.MouseDX, s.MouseDY = 10, -20
	r, ok := s.Drag()
	if !ok || r != input.FromDrag(10, -20) {
		t.Errorf("drag = %+v %v", r, ok)
	}
	s.CancelDrag()
	if _, ok := s.Drag(); ok {
		t.Error("cancelled drag still rotates")
	}

	s.ScrollY = 1
	if adj, ok := s.Wheel(10); !ok || adj.Direction != input.Grow {
		t.Errorf("wheel up = %+v %v", adj, ok)
	}
}
