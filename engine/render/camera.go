package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera defaults
const (
	DefaultFOV  = 75 // vertical, degrees
	DefaultNear = 0.1
	DefaultFar  = 1000
	DefaultEyeZ = 30
)

// Camera is a perspective camera looking down -Z at the origin
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	FOV    float32 // vertical field of view in degrees
	Near   float32
	Far    float32

	// Screen dimensions
	ScreenW, ScreenH int

	// Computed matrices
	view     mgl32.Mat4
	proj     mgl32.Mat4
	viewProj mgl32.Mat4
	dirty    bool
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Eye:     mgl32.Vec3{0, 0, DefaultEyeZ},
		FOV:     DefaultFOV,
		Near:    DefaultNear,
		Far:     DefaultFar,
		ScreenW: screenW,
		ScreenH: screenH,
		dirty:   true,
	}
}

// SetSize updates the viewport after a window resize
func (c *Camera) SetSize(w, h int) {
	if w == c.ScreenW && h == c.ScreenH {
		return
	}
	c.ScreenW, c.ScreenH = w, h
	c.dirty = true
}

func (c *Camera) update() {
	if !c.dirty {
		return
	}
	c.dirty = false

	c.view = mgl32.LookAtV(c.Eye, c.Target, mgl32.Vec3{0, 1, 0})
	aspect := float32(1)
	if c.ScreenH > 0 {
		aspect = float32(c.ScreenW) / float32(c.ScreenH)
	}
	c.proj = mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
	c.viewProj = c.proj.Mul4(c.view)
}

// ViewProj returns the combined view-projection matrix
func (c *Camera) ViewProj() mgl32.Mat4 {
	c.update()
	return c.viewProj
}

// Project converts a world point to screen pixels. depth is the distance
// in front of the eye; ok is false for points outside the view volume.
func (c *Camera) Project(p mgl32.Vec3) (sx, sy, depth float32, ok bool) {
	return c.projectClip(c.ViewProj().Mul4x1(p.Vec4(1)))
}

func (c *Camera) projectClip(clip mgl32.Vec4) (sx, sy, depth float32, ok bool) {
	w := clip.W()
	if w < c.Near || w > c.Far {
		return 0, 0, w, false
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	sx = (ndcX*0.5 + 0.5) * float32(c.ScreenW)
	sy = (1 - (ndcY*0.5 + 0.5)) * float32(c.ScreenH)
	return sx, sy, w, true
}

// PointSize is the on-screen diameter in pixels of a point of world size
// at the given depth, attenuated the way a perspective point sprite is.
func (c *Camera) PointSize(size, depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	return size * float32(c.ScreenH) / 2 / depth
}

// HalfHeightAt is half the visible world height at distance d.
func (c *Camera) HalfHeightAt(d float32) float32 {
	return d * float32(math.Tan(float64(mgl32.DegToRad(c.FOV))/2))
}
