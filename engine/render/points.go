package render

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// DefaultOpacity scales every point's colour.
	DefaultOpacity = 0.8
	spriteSize     = 32
	// maxVertices keeps batch indices inside uint16.
	maxVertices = 65000
	// Points smaller than this are drawn at this size.
	minPointPixels = 1
)

// PointRenderer draws the particle buffers as additive circular sprites.
type PointRenderer struct {
	Camera  *Camera
	Size    float32 // world-space point size
	Opacity float32

	sprite   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	drawn    int
}

// NewPointRenderer creates a renderer with a radial-gradient sprite
func NewPointRenderer(cam *Camera, size float32) *PointRenderer {
	return &PointRenderer{
		Camera:  cam,
		Size:    size,
		Opacity: DefaultOpacity,
		sprite:  ebiten.NewImageFromImage(CircleSprite(spriteSize)),
	}
}

// spriteAlpha is the sprite opacity at normalised distance d from its
// centre: solid in the middle, 0.8 at 70% and clear at the edge.
func spriteAlpha(d float64) float64 {
	switch {
	case d <= 0:
		return 1
	case d < 0.7:
		return 1 - 0.2*d/0.7
	case d < 1:
		return 0.8 * (1 - (d-0.7)/0.3)
	}
	return 0
}

// CircleSprite builds a white premultiplied radial-gradient disc.
func CircleSprite(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			a := uint8(math.Round(spriteAlpha(math.Hypot(dx, dy)) * 255))
			img.SetRGBA(x, y, color.RGBA{a, a, a, a})
		}
	}
	return img
}

// Drawn is the number of points emitted by the last Draw.
func (r *PointRenderer) Drawn() int { return r.drawn }

// Draw renders every particle. positions and colors are interleaved
// triples; model is applied before the camera.
func (r *PointRenderer) Draw(screen *ebiten.Image, positions, colors []float32, model mgl32.Mat4) {
	r.drawn = 0
	n := len(positions) / 3
	if n == 0 {
		return
	}
	mvp := r.Camera.ViewProj().Mul4(model)
	sw := float32(r.Camera.ScreenW)
	sh := float32(r.Camera.ScreenH)
	src := float32(spriteSize)

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for i := 0; i < n; i++ {
		p := mgl32.Vec4{positions[3*i], positions[3*i+1], positions[3*i+2], 1}
		sx, sy, depth, ok := r.Camera.projectClip(mvp.Mul4x1(p))
		if !ok {
			continue
		}
		half := r.Camera.PointSize(r.Size, depth) / 2
		if half < minPointPixels/2.0 {
			half = minPointPixels / 2.0
		}
		if sx+half < 0 || sx-half > sw || sy+half < 0 || sy-half > sh {
			continue
		}

		var cr, cg, cb float32 = 1, 1, 1
		if len(colors) >= 3*i+3 {
			cr, cg, cb = colors[3*i], colors[3*i+1], colors[3*i+2]
		}
		a := r.Opacity
		r.vertices, r.indices = appendQuad(r.vertices, r.indices, sx, sy, half, src, cr*a, cg*a, cb*a, a)
		r.drawn++

		// Flush if approaching uint16 limit
		if len(r.vertices) >= maxVertices {
			r.flush(screen)
		}
	}
	r.flush(screen)
}

func (r *PointRenderer) flush(screen *ebiten.Image) {
	if len(r.vertices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		Blend:          ebiten.BlendLighter,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		Filter:         ebiten.FilterLinear,
	}
	screen.DrawTriangles(r.vertices, r.indices, r.sprite, op)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

// appendQuad adds a sprite quad centred on (sx, sy). Colours are
// premultiplied.
func appendQuad(vs []ebiten.Vertex, is []uint16, sx, sy, half, src, cr, cg, cb, ca float32) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(vs))
	corner := func(dx, dy float32) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   sx + dx*half,
			DstY:   sy + dy*half,
			SrcX:   (dx + 1) / 2 * src,
			SrcY:   (dy + 1) / 2 * src,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
	vs = append(vs, corner(-1, -1), corner(1, -1), corner(1, 1), corner(-1, 1))
	is = append(is, base, base+1, base+2, base, base+2, base+3)
	return vs, is
}
