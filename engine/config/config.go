package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/1siamBot/particle-gesture/engine/particles"
	"github.com/1siamBot/particle-gesture/engine/shape"
	"github.com/1siamBot/particle-gesture/engine/trail"
)

// MaxParticles bounds ParticleCount.
const MaxParticles = 50000

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the runtime-adjustable configuration surface.
type Config struct {
	ParticleCount     int     `json:"particle_count"`
	ParticleSize      float32 `json:"particle_size"`
	Color1            string  `json:"color1"`
	Color2            string  `json:"color2"`
	UseGradient       bool    `json:"use_gradient"`
	UseTrailEffect    bool    `json:"use_trail_effect"`
	TrailStrength     float32 `json:"trail_strength"`
	UseInnerParticles bool    `json:"use_inner_particles"`
	ZoomSpeed         float32 `json:"zoom_speed"`
	ParticleSpeed     float32 `json:"particle_speed"`
	Shape             string  `json:"shape"`

	// Startup inputs
	ImagePath     string `json:"image_path"`     // sampled into the custom-image layout
	MusicDir      string `json:"music_dir"`      // directory scanned for background tracks
	GestureSource string `json:"gesture_source"` // JSON-lines hand tracker output; empty = synthetic
	Seed          int64  `json:"seed"`           // 0 = time based

	// Window
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		ParticleCount:     10000,
		ParticleSize:      0.33,
		Color1:            "#ff6ec7",
		Color2:            "#7873f5",
		UseGradient:       true,
		UseTrailEffect:    true,
		TrailStrength:     trail.DefaultStrength,
		UseInnerParticles: true,
		ZoomSpeed:         10,
		ParticleSpeed:     particles.DefaultSpeed,
		Shape:             shape.Heart.String(),
		MusicDir:          "music",
		ScreenWidth:       1280,
		ScreenHeight:      720,
	}
}

// LoadJSON overlays the JSON file at path on the defaults. Fields absent
// from the file keep their default values.
func LoadJSON(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate clamps numeric settings into range and rejects settings that
// cannot be repaired.
func (c *Config) Validate() error {
	if c.ParticleCount < 0 {
		c.ParticleCount = 0
	}
	if c.ParticleCount > MaxParticles {
		c.ParticleCount = MaxParticles
	}
	if c.TrailStrength < 0 {
		c.TrailStrength = 0
	}
	if c.TrailStrength > 1 {
		c.TrailStrength = 1
	}
	if c.ParticleSize <= 0 {
		c.ParticleSize = Default().ParticleSize
	}
	if c.ZoomSpeed <= 0 {
		c.ZoomSpeed = Default().ZoomSpeed
	}
	if c.ParticleSpeed <= 0 {
		c.ParticleSpeed = Default().ParticleSpeed
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		d := Default()
		c.ScreenWidth, c.ScreenHeight = d.ScreenWidth, d.ScreenHeight
	}
	if _, err := shape.ParseShape(c.Shape); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.ColorModel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ShapeValue returns the configured shape, or the default on a bad key.
func (c Config) ShapeValue() shape.Shape {
	s, err := shape.ParseShape(c.Shape)
	if err != nil {
		return shape.Heart
	}
	return s
}

// ColorModel parses the configured colours.
func (c Config) ColorModel() (particles.ColorModel, error) {
	return particles.ParseColorModel(c.Color1, c.Color2, c.UseGradient)
}
