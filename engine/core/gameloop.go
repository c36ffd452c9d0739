package core

import "time"

// LoopState is the run state of the animation loop.
type LoopState uint8

const (
	StatePlaying LoopState = iota
	StatePaused
)

// Ticker advances a simulation by one fixed step.
type Ticker interface {
	Tick(dt float64)
}

// GameLoop runs a Ticker at a fixed rate regardless of frame rate.
type GameLoop struct {
	Sim       Ticker
	State     LoopState
	TickRate  float64 // fixed ticks per second
	TickCount uint64

	now         func() time.Time
	accumulator float64
	lastTime    time.Time
}

// maxFrame caps the time consumed by one Update call.
const maxFrame = 0.25

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(sim Ticker, tickRate float64) *GameLoop {
	return newGameLoop(sim, tickRate, time.Now)
}

func newGameLoop(sim Ticker, tickRate float64, now func() time.Time) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		Sim:      sim,
		TickRate: tickRate,
		now:      now,
		lastTime: now(),
	}
}

// Update should be called every frame. It runs as many whole ticks as
// the elapsed time covers and returns how many ran.
func (gl *GameLoop) Update() int {
	now := gl.now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	// Cap frame time to avoid spiral of death
	if frameTime > maxFrame {
		frameTime = maxFrame
	}
	if frameTime < 0 {
		frameTime = 0
	}

	dt := 1.0 / gl.TickRate
	gl.accumulator += frameTime

	ticks := 0
	for gl.accumulator >= dt {
		if gl.State == StatePlaying {
			gl.Sim.Tick(dt)
			gl.TickCount++
			ticks++
		}
		gl.accumulator -= dt
	}
	return ticks
}

// Play starts or resumes the loop
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = gl.now()
}

// Pause pauses the loop
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}
