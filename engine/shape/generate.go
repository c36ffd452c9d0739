package shape

import (
	"math"
	"math/rand"

	"github.com/1siamBot/particle-gesture/engine/imagecloud"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	heartScale       = 15.0
	sphereRadius     = 10.0
	saturnBody       = 8.0
	saturnRing       = 12.0
	saturnBodyTenths = 7 // share of particles on the body when filled
	ringRadius       = 10.0
	ringFillRadius   = 12.0
	cubeHalf         = 10.0
	torusMajor       = 10.0
	torusMinor       = 3.0
	scatterHalf      = 10.0
)

// Generator produces base positions for a shape. All randomness comes
// from the injected source so layouts are reproducible under a fixed seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns exactly count base positions for s. fillInterior
// selects volumetric sampling instead of the outline/surface. cloud is
// consulted only for CustomImage; a nil or empty cloud yields a random
// planar scatter. Non-positive counts produce an empty slice.
func (g *Generator) Generate(s Shape, count int, fillInterior bool, cloud *imagecloud.Cloud) []mgl32.Vec3 {
	if count <= 0 {
		return []mgl32.Vec3{}
	}
	out := make([]mgl32.Vec3, count)
	switch s {
	case Heart:
		g.heart(out, fillInterior)
	case Flower:
		g.flower(out, fillInterior)
	case Saturn:
		g.saturn(out, fillInterior)
	case Star:
		g.star(out, fillInterior)
	case Ring:
		g.ring(out, fillInterior)
	case Cube:
		g.cube(out, fillInterior)
	case Spiral:
		g.spiral(out, fillInterior)
	case Snowflake:
		g.snowflake(out, fillInterior)
	case Torus:
		g.torus(out, fillInterior)
	case CustomImage:
		g.image(out, cloud)
	default:
		g.sphere(out, fillInterior)
	}
	for i, p := range out {
		if !finite(p) {
			out[i] = mgl32.Vec3{}
		}
	}
	return out
}

// Scatter fills a uniform random square of side 20 on the z=0 plane.
// It is the fallback layout when no usable image is available.
func (g *Generator) Scatter(count int) []mgl32.Vec3 {
	if count <= 0 {
		return []mgl32.Vec3{}
	}
	out := make([]mgl32.Vec3, count)
	g.scatter(out)
	return out
}

// param returns t = (i/n)*period; callers guarantee n > 0.
func param(i, n int, period float64) float64 {
	return float64(i) / float64(n) * period
}

// extent scales an outline radius down to a random point inside it when
// the interior is filled.
func (g *Generator) extent(r float64, fill bool) float64 {
	if fill {
		return r * g.rng.Float64()
	}
	return r
}

// centered returns a uniform draw in [-width/2, width/2).
func (g *Generator) centered(width float64) float64 {
	return (g.rng.Float64() - 0.5) * width
}

func (g *Generator) heart(out []mgl32.Vec3, fill bool) {
	n := len(out)
	for i := range out {
		t := param(i, n, 2*math.Pi)
		x := 16 * math.Pow(math.Sin(t), 3)
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		z := g.centered(5)
		sf := g.extent(heartScale, fill)
		out[i] = vec(x/10*sf, -y/10*sf, z)
	}
}

func (g *Generator) flower(out []mgl32.Vec3, fill bool) {
	n := len(out)
	for i := range out {
		t := param(i, n, 8*math.Pi)
		r := g.extent(5+3*math.Cos(7*t), fill)
		out[i] = vec(r*math.Cos(t), r*math.Sin(t), g.centered(8))
	}
}

func (g *Generator) saturn(out []mgl32.Vec3, fill bool) {
	body := 0
	if fill {
		body = (len(out)*saturnBodyTenths + 9) / 10
	}
	for i := range out {
		if i < body {
			out[i] = g.onSphere(saturnBody)
			continue
		}
		angle := g.rng.Float64() * 2 * math.Pi
		r := saturnRing + g.centered(2)
		h := g.centered(1.5)
		out[i] = vec(r*math.Cos(angle), h, r*math.Sin(angle))
	}
}

func (g *Generator) star(out []mgl32.Vec3, fill bool) {
	n := len(out)
	for i := range out {
		t := param(i, n, 2*math.Pi)
		r := g.extent(10*math.Abs(math.Sin(5*t))*math.Abs(math.Cos(5*t)), fill)
		out[i] = vec(r*math.Cos(t), r*math.Sin(t), g.centered(5))
	}
}

func (g *Generator) ring(out []mgl32.Vec3, fill bool) {
	for i := range out {
		angle := g.rng.Float64() * 2 * math.Pi
		var r float64
		if fill {
			r = g.rng.Float64() * ringFillRadius
		} else {
			r = ringRadius + g.centered(2)
		}
		out[i] = vec(r*math.Cos(angle), g.centered(2), r*math.Sin(angle))
	}
}

func (g *Generator) cube(out []mgl32.Vec3, fill bool) {
	for i := range out {
		p := [3]float64{g.centered(2 * cubeHalf), g.centered(2 * cubeHalf), g.centered(2 * cubeHalf)}
		if !fill {
			face := g.rng.Intn(6)
			side := cubeHalf
			if face%2 == 1 {
				side = -cubeHalf
			}
			p[face/2] = side
		}
		out[i] = vec(p[0], p[1], p[2])
	}
}

func (g *Generator) spiral(out []mgl32.Vec3, fill bool) {
	n := len(out)
	for i := range out {
		t := param(i, n, 10*math.Pi)
		r := g.extent(2+t*0.8, fill)
		z := (float64(i)/float64(n) - 0.5) * 20
		out[i] = vec(r*math.Cos(t), r*math.Sin(t), z)
	}
}

func (g *Generator) snowflake(out []mgl32.Vec3, fill bool) {
	n := len(out)
	for i := range out {
		t := param(i, n, 2*math.Pi)
		r := g.extent(10*(math.Abs(math.Sin(3*t))+math.Abs(math.Cos(3*t))), fill)
		out[i] = vec(r*math.Cos(t), r*math.Sin(t), g.centered(3))
	}
}

func (g *Generator) torus(out []mgl32.Vec3, fill bool) {
	for i := range out {
		u := g.rng.Float64() * 2 * math.Pi
		v := g.rng.Float64() * 2 * math.Pi
		r := g.extent(torusMinor, fill)
		out[i] = vec(
			(torusMajor+r*math.Cos(v))*math.Cos(u),
			(torusMajor+r*math.Cos(v))*math.Sin(u),
			r*math.Sin(v),
		)
	}
}

func (g *Generator) sphere(out []mgl32.Vec3, fill bool) {
	for i := range out {
		out[i] = g.onSphere(g.extent(sphereRadius, fill))
	}
}

func (g *Generator) onSphere(radius float64) mgl32.Vec3 {
	phi := g.rng.Float64() * 2 * math.Pi
	theta := g.rng.Float64() * math.Pi
	return vec(
		radius*math.Sin(theta)*math.Cos(phi),
		radius*math.Cos(theta),
		radius*math.Sin(theta)*math.Sin(phi),
	)
}

func (g *Generator) image(out []mgl32.Vec3, cloud *imagecloud.Cloud) {
	if cloud.Empty() {
		g.scatter(out)
		return
	}
	for i := range out {
		p := cloud.At(i).Pos
		out[i] = mgl32.Vec3{p[0], p[1], 0}
	}
}

func (g *Generator) scatter(out []mgl32.Vec3) {
	for i := range out {
		out[i] = vec(g.centered(2*scatterHalf), g.centered(2*scatterHalf), 0)
	}
}

func vec(x, y, z float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

func finite(p mgl32.Vec3) bool {
	for _, c := range p {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
