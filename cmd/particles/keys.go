package main

import (
	"strings"

	"github.com/1siamBot/particle-gesture/engine/shape"
	"github.com/hajimehoshi/ebiten/v2"
)

// shapeKeys selects a layout directly.
var shapeKeys = map[ebiten.Key]shape.Shape{
	ebiten.KeyDigit1: shape.Heart,
	ebiten.KeyDigit2: shape.Flower,
	ebiten.KeyDigit3: shape.Saturn,
	ebiten.KeyDigit4: shape.Star,
	ebiten.KeyDigit5: shape.Ring,
	ebiten.KeyDigit6: shape.Cube,
	ebiten.KeyDigit7: shape.Spiral,
	ebiten.KeyDigit8: shape.Snowflake,
	ebiten.KeyDigit9: shape.Torus,
	ebiten.KeyDigit0: shape.Sphere,
	ebiten.KeyC:      shape.CustomImage,
}

const (
	countStep    = 1000
	strengthStep = 0.05
	volumeStep   = 0.1
)

// tuning is a setting nudged up and down by a key pair.
type tuning struct {
	dec, inc     ebiten.Key
	step, lo, hi float32
}

var (
	sizeKeys  = tuning{ebiten.KeyComma, ebiten.KeyPeriod, 0.05, 0.05, 2}
	zoomKeys  = tuning{ebiten.KeyZ, ebiten.KeyX, 1, 1, 50}
	speedKeys = tuning{ebiten.KeyS, ebiten.KeyD, 1, 1, 50}
)

// apply returns v moved one step per pressed key, kept within [lo, hi].
func (t tuning) apply(v float32, pressed func(ebiten.Key) bool) (float32, bool) {
	switch {
	case pressed(t.dec):
		v -= t.step
	case pressed(t.inc):
		v += t.step
	default:
		return v, false
	}
	if v < t.lo {
		v = t.lo
	}
	if v > t.hi {
		v = t.hi
	}
	return v, true
}

type colorPreset struct {
	color1, color2 string
}

// colorPresets is cycled by P. The first entry matches the default config.
var colorPresets = []colorPreset{
	{"#ff6ec7", "#7873f5"},
	{"#00f5ff", "#ff00e4"},
	{"#ffd700", "#ff4500"},
	{"#39ff14", "#00bfff"},
	{"#ffffff", "#8a2be2"},
}

// nextPreset returns the preset after the one matching color1 and color2,
// or the first preset when none matches.
func nextPreset(color1, color2 string) colorPreset {
	for i, p := range colorPresets {
		if strings.EqualFold(p.color1, color1) && strings.EqualFold(p.color2, color2) {
			return colorPresets[(i+1)%len(colorPresets)]
		}
	}
	return colorPresets[0]
}
