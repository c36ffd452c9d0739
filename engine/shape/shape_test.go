package shape

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/1siamBot/particle-gesture/engine/imagecloud"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-3

func newGen() *Generator { return NewGenerator(rand.New(rand.NewSource(42))) }

func TestParseShape(t *testing.T) {
	for _, s := range All() {
		got, err := ParseShape(s.String())
		if err != nil || got != s {
			t.Errorf("ParseShape(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, err := ParseShape("  Custom-Image "); err != nil || got != CustomImage {
		t.Errorf("expected case-insensitive match, got %v, %v", got, err)
	}
	if _, err := ParseShape("dodecahedron"); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("expected ErrUnknownShape, got %v", err)
	}
	if len(All()) != 11 {
		t.Errorf("expected 11 shapes, got %d", len(All()))
	}
}

func TestGenerateCountAndFinite(t *testing.T) {
	cloud := &imagecloud.Cloud{Points: []imagecloud.Point{{Pos: mgl32.Vec2{1, 2}}}}
	for _, s := range All() {
		for _, fill := range []bool{true, false} {
			for _, n := range []int{0, 1, 7, 1000} {
				pts := newGen().Generate(s, n, fill, cloud)
				if len(pts) != n {
					t.Fatalf("%s fill=%v: expected %d points, got %d", s, fill, n, len(pts))
				}
				for i, p := range pts {
					if !finite(p) {
						t.Fatalf("%s fill=%v: point %d not finite: %v", s, fill, i, p)
					}
				}
			}
		}
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	if pts := newGen().Generate(Sphere, -3, false, nil); len(pts) != 0 {
		t.Errorf("expected empty result, got %d points", len(pts))
	}
}

func TestSphereScenario(t *testing.T) {
	pts := newGen().Generate(Sphere, 3, false, nil)
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	for _, p := range pts {
		if math.Abs(float64(p.Len())-10) > eps {
			t.Errorf("point %v at distance %f, want 10", p, p.Len())
		}
	}
}

func radial(p mgl32.Vec3) float64 {
	return math.Hypot(float64(p[0]), float64(p[1]))
}

// Surface-only layouts must sit on each shape's defining curve or surface.
func TestSurfaceEquations(t *testing.T) {
	const n = 2000
	tests := []struct {
		shape Shape
		check func(i int, p mgl32.Vec3) bool
	}{
		{Sphere, func(_ int, p mgl32.Vec3) bool { return math.Abs(float64(p.Len())-10) < eps }},
		{Torus, func(_ int, p mgl32.Vec3) bool {
			d := radial(p) - 10
			return math.Abs(d*d+float64(p[2]*p[2])-9) < 1e-2
		}},
		{Cube, func(_ int, p mgl32.Vec3) bool {
			m := math.Max(math.Abs(float64(p[0])), math.Max(math.Abs(float64(p[1])), math.Abs(float64(p[2]))))
			return math.Abs(m-10) < eps
		}},
		{Ring, func(_ int, p mgl32.Vec3) bool {
			r := math.Hypot(float64(p[0]), float64(p[2]))
			return r >= 9-eps && r <= 11+eps && math.Abs(float64(p[1])) <= 1
		}},
		{Saturn, func(_ int, p mgl32.Vec3) bool {
			r := math.Hypot(float64(p[0]), float64(p[2]))
			return r >= 11-eps && r <= 13+eps && math.Abs(float64(p[1])) <= 0.75
		}},
		{Heart, func(i int, p mgl32.Vec3) bool {
			tt := float64(i) / n * 2 * math.Pi
			x := 16 * math.Pow(math.Sin(tt), 3) * 1.5
			y := -(13*math.Cos(tt) - 5*math.Cos(2*tt) - 2*math.Cos(3*tt) - math.Cos(4*tt)) * 1.5
			return math.Abs(float64(p[0])-x) < eps && math.Abs(float64(p[1])-y) < eps && math.Abs(float64(p[2])) <= 2.5
		}},
		{Flower, func(i int, p mgl32.Vec3) bool {
			tt := float64(i) / n * 8 * math.Pi
			return math.Abs(radial(p)-(5+3*math.Cos(7*tt))) < eps
		}},
		{Star, func(i int, p mgl32.Vec3) bool {
			tt := float64(i) / n * 2 * math.Pi
			return math.Abs(radial(p)-10*math.Abs(math.Sin(5*tt))*math.Abs(math.Cos(5*tt))) < eps
		}},
		{Snowflake, func(i int, p mgl32.Vec3) bool {
			tt := float64(i) / n * 2 * math.Pi
			return math.Abs(radial(p)-10*(math.Abs(math.Sin(3*tt))+math.Abs(math.Cos(3*tt)))) < eps
		}},
		{Spiral, func(i int, p mgl32.Vec3) bool {
			tt := float64(i) / n * 10 * math.Pi
			z := (float64(i)/n - 0.5) * 20
			return math.Abs(radial(p)-(2+tt*0.8)) < 1e-2 && math.Abs(float64(p[2])-z) < eps
		}},
	}
	for _, tt := range tests {
		pts := newGen().Generate(tt.shape, n, false, nil)
		for i, p := range pts {
			if !tt.check(i, p) {
				t.Errorf("%s: point %d = %v is off the surface", tt.shape, i, p)
				break
			}
		}
	}
}

func TestFillInteriorStaysInsideOutline(t *testing.T) {
	pts := newGen().Generate(Sphere, 5000, true, nil)
	inside := 0
	for _, p := range pts {
		l := float64(p.Len())
		if l > 10+eps {
			t.Fatalf("filled sphere point %v outside radius", p)
		}
		if l < 9 {
			inside++
		}
	}
	if inside == 0 {
		t.Error("filled sphere produced no interior points")
	}
}

func TestSaturnPartition(t *testing.T) {
	const n = 1000
	pts := newGen().Generate(Saturn, n, true, nil)
	body := 0
	for _, p := range pts {
		if math.Abs(float64(p.Len())-8) < eps {
			body++
		}
	}
	if body != 700 {
		t.Errorf("expected 700 body particles, got %d", body)
	}
	for i, p := range newGen().Generate(Saturn, n, false, nil) {
		if math.Hypot(float64(p[0]), float64(p[2])) < 11-eps {
			t.Fatalf("ring-only saturn has body particle %d: %v", i, p)
		}
	}
}

func TestCubeFacesCovered(t *testing.T) {
	faces := map[[2]int]bool{}
	for _, p := range newGen().Generate(Cube, 600, false, nil) {
		for axis := 0; axis < 3; axis++ {
			if math.Abs(float64(p[axis])) == 10 {
				faces[[2]int{axis, int(math.Copysign(1, float64(p[axis])))}] = true
			}
		}
	}
	if len(faces) != 6 {
		t.Errorf("expected all 6 faces, saw %d", len(faces))
	}
}

func TestCustomImageWraparound(t *testing.T) {
	cloud := &imagecloud.Cloud{Points: []imagecloud.Point{
		{Pos: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec2{2, 2}},
		{Pos: mgl32.Vec2{3, 3}},
	}}
	pts := newGen().Generate(CustomImage, 8, true, cloud)
	for i, p := range pts {
		want := cloud.Points[i%3].Pos
		if p[0] != want[0] || p[1] != want[1] || p[2] != 0 {
			t.Errorf("particle %d = %v, want %v on z=0", i, p, want)
		}
	}
}

func TestCustomImageFallsBackToScatter(t *testing.T) {
	for _, cloud := range []*imagecloud.Cloud{nil, {}} {
		pts := newGen().Generate(CustomImage, 500, false, cloud)
		spread := false
		for _, p := range pts {
			if p[2] != 0 || math.Abs(float64(p[0])) > 10 || math.Abs(float64(p[1])) > 10 {
				t.Fatalf("scatter point %v outside the z=0 square", p)
			}
			if p[0] != 0 || p[1] != 0 {
				spread = true
			}
		}
		if !spread {
			t.Error("scatter collapsed to the origin")
		}
	}
}

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	a := newGen().Generate(Torus, 100, true, nil)
	b := newGen().Generate(Torus, 100, true, nil)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs across equal seeds", i)
		}
	}
}
