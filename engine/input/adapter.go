package input

import (
	"github.com/1siamBot/particle-gesture/engine/gesture"
	"github.com/1siamBot/particle-gesture/engine/particles"
)

// Direction of a scale adjustment.
type Direction int8

const (
	Grow Direction = iota
	Shrink
)

func (d Direction) String() string {
	if d == Shrink {
		return "shrink"
	}
	return "grow"
}

const (
	// DefaultMagnitude is the adjustment of one step at speed 1.
	DefaultMagnitude = 0.1
	// MinFactor and MaxFactor bound a single multiplicative step.
	MinFactor = 0.5
	MaxFactor = 1.5
	// RotationSpeed converts drag pixels to radians.
	RotationSpeed = 0.005
)

// ScaleAdjust asks for the target scale to grow or shrink by Magnitude.
type ScaleAdjust struct {
	Direction Direction
	Magnitude float32
}

// RotateBy turns the rendered cloud directly, bypassing the integrator.
// X and Y are rotations about those axes in radians.
type RotateBy struct {
	X, Y float32
}

// Factor is the bounded multiplier this adjustment applies.
func (a ScaleAdjust) Factor() float32 {
	m := a.Magnitude
	if m != m || m < 0 {
		m = 0
	}
	if a.Direction == Shrink {
		f := 1 - m
		if f < MinFactor {
			f = MinFactor
		}
		return f
	}
	f := 1 + m
	if f > MaxFactor {
		f = MaxFactor
	}
	return f
}

// Apply returns target after this adjustment, clamped to the target bounds.
func (a ScaleAdjust) Apply(target float32) float32 {
	return particles.ClampTarget(target * a.Factor())
}

// Magnitude converts a user speed setting into a step size.
func Magnitude(speed float32) float32 {
	return speed * DefaultMagnitude
}

// FromGesture maps a classified gesture onto a scale adjustment: a fist
// shrinks and an open palm grows. Unknown gestures produce nothing.
func FromGesture(l gesture.Label, speed float32) (ScaleAdjust, bool) {
	switch l {
	case gesture.Fist:
		return ScaleAdjust{Direction: Shrink, Magnitude: Magnitude(speed)}, true
	case gesture.Open:
		return ScaleAdjust{Direction: Grow, Magnitude: Magnitude(speed)}, true
	}
	return ScaleAdjust{}, false
}

// FromWheel maps a wheel offset (positive when scrolling up, away from
// the user) onto a scale adjustment. Scrolling up grows the cloud.
func FromWheel(dy float64, zoomSpeed float32) (ScaleAdjust, bool) {
	switch {
	case dy > 0:
		return ScaleAdjust{Direction: Grow, Magnitude: Magnitude(zoomSpeed)}, true
	case dy < 0:
		return ScaleAdjust{Direction: Shrink, Magnitude: Magnitude(zoomSpeed)}, true
	}
	return ScaleAdjust{}, false
}

// FromDrag converts a pointer movement in pixels into a rotation: moving
// vertically turns about X, horizontally about Y.
func FromDrag(dx, dy int) RotateBy {
	return RotateBy{X: float32(dy) * RotationSpeed, Y: float32(dx) * RotationSpeed}
}
