package trail

import (
	"image/color"
	"math"
	"testing"
)

func TestDecideDisabledIsOpaque(t *testing.T) {
	for _, s := range []float32{0, 0.5, 1, 7} {
		c := Decide(false, s)
		if c.Mode != Full || c.Alpha != 1 {
			t.Errorf("Decide(false, %f) = %+v, want full opaque", s, c)
		}
	}
}

func TestDecideAlphaRange(t *testing.T) {
	for i := 0; i <= 100; i++ {
		s := float32(i) / 100
		c := Decide(true, s)
		if c.Mode != Partial {
			t.Fatalf("expected partial clear for strength %f", s)
		}
		if c.Alpha < 0.1-1e-6 || c.Alpha > 1 {
			t.Fatalf("strength %f gave alpha %f outside [0.1, 1]", s, c.Alpha)
		}
		if want := 1 - s*0.9; math.Abs(float64(c.Alpha-want)) > 1e-6 {
			t.Fatalf("strength %f gave alpha %f, want %f", s, c.Alpha, want)
		}
	}
}

func TestDecideClampsStrength(t *testing.T) {
	tests := []struct {
		strength float32
		want     float32
	}{
		{-1, 1},
		{2, MinAlpha},
		{float32(math.NaN()), 1},
		{float32(math.Inf(1)), MinAlpha},
	}
	for _, tt := range tests {
		c := Decide(true, tt.strength)
		if math.Abs(float64(c.Alpha-tt.want)) > 1e-6 {
			t.Errorf("Decide(true, %f).Alpha = %f, want %f", tt.strength, c.Alpha, tt.want)
		}
	}
}

func TestOverlay(t *testing.T) {
	bg := color.RGBA{12, 12, 12, 255}
	if got := Decide(false, 0).Overlay(bg); got != bg {
		t.Errorf("full clear should paint the background, got %v", got)
	}
	got := Decide(true, 1).Overlay(color.RGBA{100, 200, 0, 255})
	want := color.RGBA{10, 20, 0, 26}
	if got != want {
		t.Errorf("overlay = %v, want %v", got, want)
	}
	if got.R > got.A || got.G > got.A || got.B > got.A {
		t.Errorf("overlay %v is not premultiplied", got)
	}
}
