package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := NewGame(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Particle Gesture")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TickRate)
	// Each frame copies the whole trail buffer over the screen.
	ebiten.SetScreenClearedEveryFrame(false)

	log.Printf("Particle Gesture: %d particles, shape %s, seed %d", cfg.ParticleCount, cfg.Shape, seed)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
