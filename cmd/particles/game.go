package main

import (
	"context"
	"log"
	"math/rand"
	"sync/atomic"

	"github.com/1siamBot/particle-gesture/engine/audio"
	"github.com/1siamBot/particle-gesture/engine/config"
	"github.com/1siamBot/particle-gesture/engine/core"
	"github.com/1siamBot/particle-gesture/engine/gesture"
	"github.com/1siamBot/particle-gesture/engine/imagecloud"
	"github.com/1siamBot/particle-gesture/engine/render"
	"github.com/1siamBot/particle-gesture/engine/ui"
	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// TickRate matches the display refresh the animation constants assume.
const TickRate = 60

// Game implements ebiten.Game interface
type Game struct {
	engine   *core.AnimationEngine
	gameLoop *core.GameLoop
	input    *ui.InputState
	rotation *render.Rotation
	camera   *render.Camera
	points   *render.PointRenderer
	hud      *ui.HUD
	music    *audio.MusicPlayer

	// Off-screen frame that keeps trails between frames
	scene         *ebiten.Image
	width, height int

	cancel      context.CancelFunc
	gestureDone chan struct{}
	sourceName  atomic.Value // string
	message     string
	pending     bool
	prevCloud   *imagecloud.Cloud
}

func NewGame(cfg config.Config, rng *rand.Rand) (*Game, error) {
	eng, err := core.NewEngine(cfg, rng)
	if err != nil {
		return nil, err
	}
	cam := render.NewCamera(cfg.ScreenWidth, cfg.ScreenHeight)
	g := &Game{
		engine:   eng,
		input:    ui.NewInputState(),
		rotation: render.NewRotation(TickRate),
		camera:   cam,
		points:   render.NewPointRenderer(cam, cfg.ParticleSize),
		hud:      ui.NewHUD(cfg.ScreenWidth, cfg.ScreenHeight),
		width:    cfg.ScreenWidth,
		height:   cfg.ScreenHeight,
	}
	g.gameLoop = core.NewGameLoop(g, TickRate)
	eng.OnRotate(g.rotation.Apply)

	g.music = newMusic(cfg.MusicDir)
	g.startGestures(cfg.GestureSource)
	if cfg.ImagePath != "" {
		path := cfg.ImagePath
		sampleAsync(eng, path, func() (*imagecloud.Cloud, error) {
			return imagecloud.Load(path, imagecloud.DefaultOptions())
		})
	}

	g.gameLoop.Play()
	return g, nil
}

func newMusic(dir string) *audio.MusicPlayer {
	tracks, err := audio.ScanTracks(dir)
	if err != nil || len(tracks) == 0 {
		if err != nil {
			log.Printf("Music disabled: %v", err)
		}
		return audio.NewMusicPlayer(nil, nil)
	}
	mp := audio.NewMusicPlayer(ebaudio.NewContext(audio.SampleRate), tracks)
	audio.Report("play", mp.Play())
	return mp
}

// fallbackSource marks when the synthetic generator takes over.
type fallbackSource struct {
	gesture.Source
	onStart func()
}

func (f fallbackSource) Run(ctx context.Context, emit gesture.Sink) error {
	f.onStart()
	return f.Source.Run(ctx, emit)
}

func (g *Game) startGestures(path string) {
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.gestureDone = make(chan struct{})

	var primary gesture.Source
	if path != "" {
		primary = gesture.FileSource{Path: path}
		g.sourceName.Store(path)
	}
	fallback := fallbackSource{
		Source:  gesture.NewSynthetic(),
		onStart: func() { g.sourceName.Store("synthetic") },
	}
	bus := g.engine.Bus()
	go func() {
		defer close(g.gestureDone)
		err := gesture.RunWithFallback(ctx, primary, fallback, func(l gesture.Label) {
			bus.Emit(core.Event{Type: core.EvtGesture, Payload: l})
		})
		if err != nil {
			log.Printf("Gesture input stopped: %v", err)
		}
	}()
}

// Close stops background work
func (g *Game) Close() {
	g.cancel()
	<-g.gestureDone
	g.music.Close()
}

// Tick advances the simulation by one fixed step
func (g *Game) Tick(dt float64) {
	g.engine.Tick(dt)
	g.rotation.Step()
}

func (g *Game) Update() error {
	g.input.Update()
	g.handleKeys()
	g.handlePointer()
	g.pollDropped()

	// Handled whether or not the loop is paused.
	g.engine.HandleEvents()
	if err := g.engine.LastError(); err != nil {
		g.message = "image: " + err.Error()
		g.pending = false
	} else if g.pending && g.engine.Cloud() != g.prevCloud {
		g.message = ""
		g.pending = false
	}

	g.gameLoop.Update()
	return nil
}

func (g *Game) handleKeys() {
	cfg := g.engine.Config()
	for k, s := range shapeKeys {
		if g.input.IsKeyJustPressed(k) {
			g.engine.Emit(core.EvtShapeSelect, s)
		}
	}
	pressed := g.input.IsKeyJustPressed
	if v, ok := sizeKeys.apply(cfg.ParticleSize, pressed); ok {
		g.engine.SetParticleSize(v)
	}
	if v, ok := zoomKeys.apply(cfg.ZoomSpeed, pressed); ok {
		g.engine.SetZoomSpeed(v)
	}
	if v, ok := speedKeys.apply(cfg.ParticleSpeed, pressed); ok {
		g.engine.SetParticleSpeed(v)
	}
	switch {
	case g.input.IsKeyJustPressed(ebiten.KeyI):
		g.engine.SetFillInterior(!cfg.UseInnerParticles)
	case g.input.IsKeyJustPressed(ebiten.KeyT):
		g.engine.SetTrail(!cfg.UseTrailEffect, cfg.TrailStrength)
	case g.input.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.engine.SetTrail(cfg.UseTrailEffect, cfg.TrailStrength-strengthStep)
	case g.input.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.engine.SetTrail(cfg.UseTrailEffect, cfg.TrailStrength+strengthStep)
	case g.input.IsKeyJustPressed(ebiten.KeyG):
		g.engine.SetGradient(!cfg.UseGradient)
	case g.input.IsKeyJustPressed(ebiten.KeyP):
		p := nextPreset(cfg.Color1, cfg.Color2)
		if err := g.engine.SetColors(p.color1, p.color2, cfg.UseGradient); err != nil {
			log.Printf("colors: %v", err)
		}
	case g.input.IsKeyJustPressed(ebiten.KeyR):
		g.engine.Emit(core.EvtRebuild, nil)
	case g.input.IsKeyJustPressed(ebiten.KeyEqual), g.input.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.engine.SetParticleCount(cfg.ParticleCount + countStep)
	case g.input.IsKeyJustPressed(ebiten.KeyMinus), g.input.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.engine.SetParticleCount(cfg.ParticleCount - countStep)
	case g.input.IsKeyJustPressed(ebiten.KeyQ):
		audio.Report("reset", g.music.Reset())
	case g.input.IsKeyJustPressed(ebiten.KeyW):
		audio.Report("toggle", g.music.Toggle())
	case g.input.IsKeyJustPressed(ebiten.KeyN):
		audio.Report("next", g.music.Next())
	case g.input.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.music.SetVolume(g.music.MasterVolume + volumeStep)
	case g.input.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.music.SetVolume(g.music.MasterVolume - volumeStep)
	case g.input.IsKeyJustPressed(ebiten.KeyF):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case g.input.IsKeyJustPressed(ebiten.KeyH):
		g.hud.Visible = !g.hud.Visible
	case g.input.IsKeyJustPressed(ebiten.KeySpace):
		if g.gameLoop.State == core.StatePlaying {
			g.gameLoop.Pause()
		} else {
			g.gameLoop.Play()
		}
	}
}

func (g *Game) handlePointer() {
	if g.input.LeftJustPressed {
		if picked, ok, consumed := g.hud.HandleClick(g.input.MouseX, g.input.MouseY); consumed {
			g.input.CancelDrag()
			if ok {
				g.engine.Emit(core.EvtShapeSelect, picked)
			}
		} else {
			g.rotation.BeginDrag()
		}
	}
	if g.input.LeftJustReleased && g.rotation.Dragging() {
		g.rotation.EndDrag()
	}
	if r, ok := g.input.Drag(); ok {
		g.engine.Emit(core.EvtRotate, r)
	}
	if adj, ok := g.input.Wheel(g.engine.Config().ZoomSpeed); ok {
		g.engine.Emit(core.EvtScaleAdjust, adj)
	}
}

func (g *Game) pollDropped() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	name, data, err := firstFile(files)
	if err != nil {
		g.engine.Emit(core.EvtImageFailed, err)
		return
	}
	g.message = "sampling " + name
	g.pending, g.prevCloud = true, g.engine.Cloud()
	g.engine.ClearError()
	sampleAsync(g.engine, name, func() (*imagecloud.Cloud, error) {
		return imagecloud.FromBytes(data, name, imagecloud.DefaultOptions())
	})
}

func (g *Game) status() ui.Status {
	cfg := g.engine.Config()
	src, _ := g.sourceName.Load().(string)
	return ui.Status{
		Shape:         g.engine.Shape(),
		Particles:     g.engine.Set().Len(),
		Drawn:         g.points.Drawn(),
		TargetScale:   g.engine.TargetScale(),
		Fill:          cfg.UseInnerParticles,
		Trail:         cfg.UseTrailEffect,
		TrailStrength: cfg.TrailStrength,
		Gradient:      cfg.UseGradient,
		Size:          cfg.ParticleSize,
		ZoomSpeed:     cfg.ZoomSpeed,
		Speed:         cfg.ParticleSpeed,
		Color1:        cfg.Color1,
		Color2:        cfg.Color2,
		Gesture:       g.engine.LastGesture(),
		GestureSource: src,
		Music:         g.music.Status(),
		Message:       g.message,
		TPS:           ebiten.ActualTPS(),
		FPS:           ebiten.ActualFPS(),
	}
}

func (g *Game) ensureScene() {
	if g.scene != nil {
		b := g.scene.Bounds()
		if b.Dx() == g.width && b.Dy() == g.height {
			return
		}
		g.scene.Deallocate()
	}
	g.scene = ebiten.NewImage(g.width, g.height)
	g.scene.Fill(render.Background)
	g.camera.SetSize(g.width, g.height)
	g.hud.Resize(g.width, g.height)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ensureScene()

	render.ApplyClear(g.scene, g.engine.ClearMode(), render.Background)
	g.points.Size = g.engine.Config().ParticleSize
	model := g.rotation.Matrix(g.engine.SystemScale())
	g.points.Draw(g.scene, g.engine.Positions(), g.engine.Colors(), model)

	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendCopy}
	screen.DrawImage(g.scene, op)
	g.hud.Draw(screen, g.status())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
