package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/1siamBot/particle-gesture/engine/config"
)

// loadConfig builds the runtime config: defaults, then the optional JSON
// file, then any flags given explicitly on the command line.
func loadConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("particles", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var flags config.Config
	d := config.Default()
	configPath := fs.String("config", "", "JSON config file")
	fs.IntVar(&flags.ParticleCount, "count", d.ParticleCount, "Number of particles")
	sizeFlag := fs.Float64("size", float64(d.ParticleSize), "Particle size")
	fs.StringVar(&flags.Color1, "color1", d.Color1, "First colour (#rrggbb)")
	fs.StringVar(&flags.Color2, "color2", d.Color2, "Second colour (#rrggbb)")
	fs.BoolVar(&flags.UseGradient, "gradient", d.UseGradient, "Blend color1 into color2")
	fs.BoolVar(&flags.UseTrailEffect, "trail", d.UseTrailEffect, "Leave fading trails")
	trailFlag := fs.Float64("trail-strength", float64(d.TrailStrength), "Trail strength 0-1")
	fs.BoolVar(&flags.UseInnerParticles, "fill", d.UseInnerParticles, "Fill shape interiors")
	zoomFlag := fs.Float64("zoom-speed", float64(d.ZoomSpeed), "Wheel zoom speed")
	speedFlag := fs.Float64("speed", float64(d.ParticleSpeed), "Particle animation speed")
	fs.StringVar(&flags.Shape, "shape", d.Shape, "Initial shape")
	fs.StringVar(&flags.ImagePath, "image", d.ImagePath, "Image to sample at startup")
	fs.StringVar(&flags.MusicDir, "music", d.MusicDir, "Directory of background tracks")
	fs.StringVar(&flags.GestureSource, "gestures", d.GestureSource, "JSON-lines hand keypoint file (empty = synthetic)")
	fs.Int64Var(&flags.Seed, "seed", d.Seed, "Random seed (0 = time based)")
	fs.IntVar(&flags.ScreenWidth, "width", d.ScreenWidth, "Window width")
	fs.IntVar(&flags.ScreenHeight, "height", d.ScreenHeight, "Window height")

	if err := fs.Parse(args); err != nil {
		return d, err
	}
	if fs.NArg() > 0 {
		return d, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	flags.ParticleSize = float32(*sizeFlag)
	flags.TrailStrength = float32(*trailFlag)
	flags.ZoomSpeed = float32(*zoomFlag)
	flags.ParticleSpeed = float32(*speedFlag)

	cfg := d
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadJSON(*configPath); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(f *flag.Flag) { applyFlag(&cfg, flags, f.Name) })
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyFlag(dst *config.Config, src config.Config, name string) {
	switch name {
	case "count":
		dst.ParticleCount = src.ParticleCount
	case "size":
		dst.ParticleSize = src.ParticleSize
	case "color1":
		dst.Color1 = src.Color1
	case "color2":
		dst.Color2 = src.Color2
	case "gradient":
		dst.UseGradient = src.UseGradient
	case "trail":
		dst.UseTrailEffect = src.UseTrailEffect
	case "trail-strength":
		dst.TrailStrength = src.TrailStrength
	case "fill":
		dst.UseInnerParticles = src.UseInnerParticles
	case "zoom-speed":
		dst.ZoomSpeed = src.ZoomSpeed
	case "speed":
		dst.ParticleSpeed = src.ParticleSpeed
	case "shape":
		dst.Shape = src.Shape
	case "image":
		dst.ImagePath = src.ImagePath
	case "music":
		dst.MusicDir = src.MusicDir
	case "gestures":
		dst.GestureSource = src.GestureSource
	case "seed":
		dst.Seed = src.Seed
	case "width":
		dst.ScreenWidth = src.ScreenWidth
	case "height":
		dst.ScreenHeight = src.ScreenHeight
	}
}
