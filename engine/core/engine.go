package core

import (
	"log"
	"math/rand"
	"sync/atomic"

	"github.com/1siamBot/particle-gesture/engine/config"
	"github.com/1siamBot/particle-gesture/engine/gesture"
	"github.com/1siamBot/particle-gesture/engine/imagecloud"
	"github.com/1siamBot/particle-gesture/engine/input"
	"github.com/1siamBot/particle-gesture/engine/particles"
	"github.com/1siamBot/particle-gesture/engine/shape"
	"github.com/1siamBot/particle-gesture/engine/trail"
)

// AnimationEngine owns the particle system and everything that drives
// it. All methods except PublishCloud and Bus().Emit must be called from
// the update goroutine.
type AnimationEngine struct {
	cfg    config.Config
	shape  shape.Shape
	rng    *rand.Rand
	gen    *shape.Generator
	set    *particles.Set
	colors particles.ColorModel
	integ  particles.Integrator
	target particles.TargetScale
	cloud  atomic.Pointer[imagecloud.Cloud]
	bus    *EventBus

	elapsed     float64
	tick        uint64
	lastGesture gesture.Label
	lastError   error
	rotate      func(input.RotateBy)
}

// NewEngine validates cfg and builds the initial particle set. The rng
// drives every random draw the engine makes.
func NewEngine(cfg config.Config, rng *rand.Rand) (*AnimationEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	colors, err := cfg.ColorModel()
	if err != nil {
		return nil, err
	}
	e := &AnimationEngine{
		cfg:    cfg,
		shape:  cfg.ShapeValue(),
		rng:    rng,
		gen:    shape.NewGenerator(rng),
		colors: colors,
		integ:  particles.Integrator{Speed: cfg.ParticleSpeed},
		bus:    NewEventBus(),
	}
	e.target.Store(1)
	e.registerHandlers()
	e.Rebuild()
	return e, nil
}

func (e *AnimationEngine) registerHandlers() {
	e.bus.On(EvtScaleAdjust, func(ev Event) {
		if adj, ok := ev.Payload.(input.ScaleAdjust); ok {
			e.AdjustScale(adj)
		}
	})
	e.bus.On(EvtGesture, func(ev Event) {
		l, ok := ev.Payload.(gesture.Label)
		if !ok {
			return
		}
		e.lastGesture = l
		if adj, ok := input.FromGesture(l, e.cfg.ParticleSpeed); ok {
			e.AdjustScale(adj)
		}
	})
	e.bus.On(EvtRotate, func(ev Event) {
		if r, ok := ev.Payload.(input.RotateBy); ok && e.rotate != nil {
			e.rotate(r)
		}
	})
	e.bus.On(EvtShapeSelect, func(ev Event) {
		if s, ok := ev.Payload.(shape.Shape); ok {
			e.SelectShape(s)
		}
	})
	e.bus.On(EvtImageLoaded, func(ev Event) {
		e.lastError = nil
		e.SelectShape(shape.CustomImage)
	})
	e.bus.On(EvtImageFailed, func(ev Event) {
		if err, ok := ev.Payload.(error); ok {
			e.lastError = err
			log.Printf("image upload: %v", err)
		}
	})
	e.bus.On(EvtRebuild, func(Event) { e.Rebuild() })
}

// Bus returns the engine's event bus.
func (e *AnimationEngine) Bus() *EventBus { return e.bus }

// OnRotate sets the receiver of RotateBy events.
func (e *AnimationEngine) OnRotate(f func(input.RotateBy)) { e.rotate = f }

// Emit queues an event stamped with the current tick. Other goroutines
// use Bus().Emit directly.
func (e *AnimationEngine) Emit(t EventType, payload interface{}) {
	e.bus.Emit(Event{Type: t, Tick: e.tick, Payload: payload})
}

// HandleEvents runs the handlers for every queued event and returns how
// many ran. It is called once per frame, paused or not.
func (e *AnimationEngine) HandleEvents() int {
	return e.bus.Dispatch()
}

// Tick advances every particle one step.
func (e *AnimationEngine) Tick(dt float64) {
	e.elapsed += dt
	e.tick++
	e.integ.Step(e.set, e.target.Load())
}

// Rebuild replaces the particle set for the current shape, count and
// fill mode. Scales restart at 1; the target scale is kept.
func (e *AnimationEngine) Rebuild() {
	cloud := e.cloud.Load()
	base := e.gen.Generate(e.shape, e.cfg.ParticleCount, e.cfg.UseInnerParticles, cloud)
	e.set = particles.NewSet(base, e.rng)
	e.recolor(cloud)
}

// recolor paints the set from cloud when showing an image, otherwise from
// the colour model.
func (e *AnimationEngine) recolor(cloud *imagecloud.Cloud) {
	if e.shape == shape.CustomImage && particles.FillFromCloud(e.set.Colors(), cloud) {
		return
	}
	e.colors.Fill(e.set.Colors())
}

// SelectShape switches layout and rebuilds.
func (e *AnimationEngine) SelectShape(s shape.Shape) {
	if !s.Valid() {
		return
	}
	e.shape = s
	e.cfg.Shape = s.String()
	e.Rebuild()
}

// SetParticleCount rebuilds with n particles, clamped to the config range.
func (e *AnimationEngine) SetParticleCount(n int) {
	if n < 0 {
		n = 0
	}
	if n > config.MaxParticles {
		n = config.MaxParticles
	}
	e.cfg.ParticleCount = n
	e.Rebuild()
}

// SetFillInterior switches between surface and volume sampling.
func (e *AnimationEngine) SetFillInterior(fill bool) {
	e.cfg.UseInnerParticles = fill
	e.Rebuild()
}

// SetColors replaces the colour model without moving particles.
func (e *AnimationEngine) SetColors(color1, color2 string, gradient bool) error {
	m, err := particles.ParseColorModel(color1, color2, gradient)
	if err != nil {
		return err
	}
	e.cfg.Color1, e.cfg.Color2, e.cfg.UseGradient = color1, color2, gradient
	e.colors = m
	e.recolor(e.cloud.Load())
	return nil
}

// SetGradient toggles the two-colour gradient.
func (e *AnimationEngine) SetGradient(on bool) {
	e.cfg.UseGradient = on
	e.colors.Gradient = on
	e.recolor(e.cloud.Load())
}

// SetTrail updates the trail settings.
func (e *AnimationEngine) SetTrail(on bool, strength float32) {
	e.cfg.UseTrailEffect = on
	e.cfg.TrailStrength = trail.ClampStrength(strength)
}

// SetParticleSize changes the rendered point size. Non-positive sizes are
// ignored.
func (e *AnimationEngine) SetParticleSize(v float32) {
	if v > 0 {
		e.cfg.ParticleSize = v
	}
}

// SetParticleSpeed changes the global integration speed.
func (e *AnimationEngine) SetParticleSpeed(v float32) {
	if v > 0 {
		e.cfg.ParticleSpeed = v
		e.integ.Speed = v
	}
}

// SetZoomSpeed changes the wheel step size.
func (e *AnimationEngine) SetZoomSpeed(v float32) {
	if v > 0 {
		e.cfg.ZoomSpeed = v
	}
}

// AdjustScale applies adj to the target scale and returns the result.
func (e *AnimationEngine) AdjustScale(adj input.ScaleAdjust) float32 {
	return e.target.Multiply(adj.Factor())
}

// PublishCloud installs cloud as the custom-image layout and asks the
// update goroutine to switch to it. Safe from any goroutine.
func (e *AnimationEngine) PublishCloud(cloud *imagecloud.Cloud) {
	e.cloud.Store(cloud)
	e.bus.Emit(Event{Type: EvtImageLoaded, Payload: cloud})
}

// ClearError forgets the last upload failure.
func (e *AnimationEngine) ClearError() { e.lastError = nil }

// Cloud returns the published image cloud, or nil.
func (e *AnimationEngine) Cloud() *imagecloud.Cloud { return e.cloud.Load() }

// ClearMode is this frame's background clear.
func (e *AnimationEngine) ClearMode() trail.ClearMode {
	return trail.Decide(e.cfg.UseTrailEffect, e.cfg.TrailStrength)
}

// SystemScale is the uniform pulsation applied on top of particle scales.
func (e *AnimationEngine) SystemScale() float32 {
	return particles.SystemScale(e.elapsed)
}

// Positions is the live interleaved x,y,z buffer.
func (e *AnimationEngine) Positions() []float32 { return e.set.Positions() }

// Colors is the interleaved rgb buffer parallel to Positions.
func (e *AnimationEngine) Colors() []float32 { return e.set.Colors() }

func (e *AnimationEngine) Set() *particles.Set        { return e.set }
func (e *AnimationEngine) Shape() shape.Shape         { return e.shape }
func (e *AnimationEngine) Config() config.Config      { return e.cfg }
func (e *AnimationEngine) TargetScale() float32       { return e.target.Load() }
func (e *AnimationEngine) Elapsed() float64           { return e.elapsed }
func (e *AnimationEngine) LastGesture() gesture.Label { return e.lastGesture }
func (e *AnimationEngine) LastError() error           { return e.lastError }
