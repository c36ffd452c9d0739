package particles

import (
	"math"
	"sync/atomic"
)

// Bounds of the shared target scale.
const (
	MinTargetScale = 0.2
	MaxTargetScale = 5.0
)

// ClampTarget limits v to [MinTargetScale, MaxTargetScale]. NaN maps to 1.
func ClampTarget(v float32) float32 {
	switch {
	case v != v:
		return 1
	case v < MinTargetScale:
		return MinTargetScale
	case v > MaxTargetScale:
		return MaxTargetScale
	}
	return v
}

// TargetScale is the goal every particle's scale converges toward. It is
// stored atomically so the HUD or a producer goroutine may read it while
// the tick runs. The zero value reads as 1.
type TargetScale struct {
	bits atomic.Uint32 // float32 bits; 0 means never stored
}

func decode(bits uint32) float32 {
	if bits == 0 {
		return 1
	}
	return math.Float32frombits(bits)
}

// Load returns the current target.
func (t *TargetScale) Load() float32 {
	return decode(t.bits.Load())
}

// Store sets the target, clamped to its bounds.
func (t *TargetScale) Store(v float32) {
	t.bits.Store(math.Float32bits(ClampTarget(v)))
}

// Multiply scales the target by factor and returns the clamped result.
func (t *TargetScale) Multiply(factor float32) float32 {
	for {
		old := t.bits.Load()
		next := ClampTarget(decode(old) * factor)
		if t.bits.CompareAndSwap(old, math.Float32bits(next)) {
			return next
		}
	}
}
