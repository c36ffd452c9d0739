package input

import (
	"math"
	"math/rand"
	"testing"

	"github.com/1siamBot/particle-gesture/engine/gesture"
	"github.com/1siamBot/particle-gesture/engine/particles"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-6 }

func TestShrinkScenario(t *testing.T) {
	a := ScaleAdjust{Direction: Shrink, Magnitude: DefaultMagnitude}
	if got := a.Apply(1.0); !near(got, 0.9) {
		t.Errorf("shrink from 1.0 = %f, want 0.9", got)
	}
}

func TestFactorBounds(t *testing.T) {
	tests := []struct {
		adj  ScaleAdjust
		want float32
	}{
		{ScaleAdjust{Shrink, 0.1}, 0.9},
		{ScaleAdjust{Shrink, 1}, MinFactor},
		{ScaleAdjust{Grow, 0.1}, 1.1},
		{ScaleAdjust{Grow, 1}, MaxFactor},
		{ScaleAdjust{Grow, -3}, 1},
		{ScaleAdjust{Shrink, float32(math.NaN())}, 1},
	}
	for _, tt := range tests {
		if got := tt.adj.Factor(); !near(got, tt.want) {
			t.Errorf("%v %f: factor %f, want %f", tt.adj.Direction, tt.adj.Magnitude, got, tt.want)
		}
	}
}

func TestTargetStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	target := float32(1)
	for i := 0; i < 10000; i++ {
		a := ScaleAdjust{Direction: Direction(rng.Intn(2)), Magnitude: float32(rng.Float64() * 3)}
		target = a.Apply(target)
		if target < particles.MinTargetScale || target > particles.MaxTargetScale {
			t.Fatalf("step %d: target %f escaped bounds", i, target)
		}
	}
}

func TestFromGesture(t *testing.T) {
	if a, ok := FromGesture(gesture.Fist, 10); !ok || a.Direction != Shrink || a.Factor() != MinFactor {
		t.Errorf("fist at speed 10 = %+v, %v", a, ok)
	}
	if a, ok := FromGesture(gesture.Open, 1); !ok || a.Direction != Grow || !near(a.Factor(), 1.1) {
		t.Errorf("open at speed 1 = %+v, %v", a, ok)
	}
	if _, ok := FromGesture(gesture.Unknown, 10); ok {
		t.Error("unknown gesture should not adjust the scale")
	}
}

func TestFromWheel(t *testing.T) {
	if a, ok := FromWheel(1, 10); !ok || a.Direction != Grow {
		t.Errorf("scroll up should grow, got %+v", a)
	}
	if a, ok := FromWheel(-0.5, 10); !ok || a.Direction != Shrink {
		t.Errorf("scroll down should shrink, got %+v", a)
	}
	if _, ok := FromWheel(0, 10); ok {
		t.Error("no wheel movement should not adjust")
	}
}

func TestFromDrag(t *testing.T) {
	r := FromDrag(100, -20)
	if !near(r.Y, 0.5) || !near(r.X, -0.1) {
		t.Errorf("FromDrag(100,-20) = %+v", r)
	}
}
