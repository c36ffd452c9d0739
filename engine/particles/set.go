package particles

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Per-particle random ranges assigned at creation.
const (
	MinVelocity = 0.01
	MaxVelocity = 0.08
	MinInertia  = 0.9
	MaxInertia  = 0.98
)

// Set holds the state of every particle in structure-of-arrays form.
// Base positions, velocities and inertias are fixed when the set is
// built; a new shape or particle count means a new Set. Only scales and
// the live position buffer change per tick.
type Set struct {
	base       []float32 // 3*n interleaved x,y,z
	positions  []float32 // 3*n live buffer handed to the renderer
	colors     []float32 // 3*n rgb
	scales     []float32
	velocities []float32
	inertias   []float32
}

// NewSet builds a set around the given base positions. Every particle
// starts at scale 1 with velocity and inertia drawn from rng. Non-finite
// base components are stored as zero.
func NewSet(base []mgl32.Vec3, rng *rand.Rand) *Set {
	n := len(base)
	s := &Set{
		base:       make([]float32, 3*n),
		positions:  make([]float32, 3*n),
		colors:     make([]float32, 3*n),
		scales:     make([]float32, n),
		velocities: make([]float32, n),
		inertias:   make([]float32, n),
	}
	for i, p := range base {
		for k := 0; k < 3; k++ {
			v := p[k]
			if !isFinite(v) {
				v = 0
			}
			s.base[3*i+k] = v
			s.positions[3*i+k] = v
		}
		s.scales[i] = 1
		s.velocities[i] = MinVelocity + float32(rng.Float64())*(MaxVelocity-MinVelocity)
		s.inertias[i] = MinInertia + float32(rng.Float64())*(MaxInertia-MinInertia)
	}
	return s
}

// Len returns the number of particles.
func (s *Set) Len() int { return len(s.scales) }

// Base returns the base position of particle i.
func (s *Set) Base(i int) mgl32.Vec3 {
	return mgl32.Vec3{s.base[3*i], s.base[3*i+1], s.base[3*i+2]}
}

// Position returns the live position of particle i.
func (s *Set) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{s.positions[3*i], s.positions[3*i+1], s.positions[3*i+2]}
}

func (s *Set) Scale(i int) float32    { return s.scales[i] }
func (s *Set) Velocity(i int) float32 { return s.velocities[i] }
func (s *Set) Inertia(i int) float32  { return s.inertias[i] }

// Positions returns the interleaved live position buffer (length 3*Len).
// The slice is owned by the set and rewritten every tick.
func (s *Set) Positions() []float32 { return s.positions }

// Colors returns the interleaved colour buffer (length 3*Len).
func (s *Set) Colors() []float32 { return s.colors }

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
