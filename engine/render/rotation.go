package render

import (
	"github.com/1siamBot/particle-gesture/engine/input"
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

// Idle spin per tick, in radians.
const (
	AutoRotateX = 0.005
	AutoRotateY = 0.008
)

// Rotation is the model rotation of the particle system. It spins on its
// own while idle, stops while the user drags, and eases back into the
// spin after release.
type Rotation struct {
	X, Y float32

	dragging bool
	weight   float64 // share of the idle spin applied per tick, 0..1
	velocity float64
	spring   harmonica.Spring
}

// NewRotation returns a spinning rotation updated tps times per second.
func NewRotation(tps int) *Rotation {
	if tps <= 0 {
		tps = 60
	}
	return &Rotation{
		weight: 1,
		spring: harmonica.NewSpring(harmonica.FPS(tps), 4.0, 1.0),
	}
}

// BeginDrag stops the idle spin.
func (r *Rotation) BeginDrag() {
	r.dragging = true
	r.weight, r.velocity = 0, 0
}

// EndDrag lets the idle spin ease back in.
func (r *Rotation) EndDrag() { r.dragging = false }

func (r *Rotation) Dragging() bool { return r.dragging }

// Apply turns the model directly by a drag rotation.
func (r *Rotation) Apply(d input.RotateBy) {
	r.X += d.X
	r.Y += d.Y
}

// Step advances the idle spin by one tick.
func (r *Rotation) Step() {
	if r.dragging {
		return
	}
	if r.weight < 1 {
		r.weight, r.velocity = r.spring.Update(r.weight, r.velocity, 1)
		if r.weight > 0.999 {
			r.weight, r.velocity = 1, 0
		}
	}
	r.X += AutoRotateX * float32(r.weight)
	r.Y += AutoRotateY * float32(r.weight)
}

// Weight is the current share of the idle spin.
func (r *Rotation) Weight() float64 { return r.weight }

// Matrix is the model matrix: rotate about X, then Y, after a uniform scale.
func (r *Rotation) Matrix(scale float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(r.X).
		Mul4(mgl32.HomogRotate3DY(r.Y)).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}
