package particles

import "math"

// DefaultSpeed is the default global speed multiplier.
const DefaultSpeed = 10

// Integrator advances every particle's scale toward the target once per
// tick and rewrites the live buffer as base*scale.
type Integrator struct {
	// Speed is the global multiplier applied on top of each particle's
	// velocity*(1-inertia) rate.
	Speed float32
}

// Rate is the per-tick smoothing coefficient of particle i, capped at 1
// so a large Speed settles in one tick instead of overshooting.
func (in Integrator) Rate(s *Set, i int) float32 {
	k := s.velocities[i] * (1 - s.inertias[i]) * in.Speed
	switch {
	case k < 0 || k != k:
		return 0
	case k > 1:
		return 1
	}
	return k
}

// Step runs one tick. Particles whose scale or position would become
// non-finite keep their previous live position.
func (in Integrator) Step(s *Set, target float32) {
	for i := range s.scales {
		next := s.scales[i] + (target-s.scales[i])*in.Rate(s, i)
		if !isFinite(next) {
			continue
		}
		s.scales[i] = next
		j := 3 * i
		x, y, z := s.base[j]*next, s.base[j+1]*next, s.base[j+2]*next
		if !isFinite(x) || !isFinite(y) || !isFinite(z) {
			continue
		}
		s.positions[j], s.positions[j+1], s.positions[j+2] = x, y, z
	}
}

// TicksToConverge bounds the number of ticks a particle with rate k needs
// to get within tolerance (relative to the starting gap) of the target.
// It returns -1 when k cannot converge.
func TicksToConverge(k, tolerance float64) int {
	if k <= 0 || tolerance <= 0 {
		return -1
	}
	if k >= 1 || tolerance >= 1 {
		return 1
	}
	return int(math.Ceil(math.Log(tolerance) / math.Log(1-k)))
}

// SystemScale is the whole-system pulsation applied on top of the
// per-particle scales.
func SystemScale(elapsedSeconds float64) float32 {
	return float32(1 + 0.05*math.Sin(elapsedSeconds))
}
