// Package trail decides how the frame buffer is cleared between frames.
// A partial clear blends a translucent background over the previous frame
// so moving particles leave fading trails.
package trail

import "image/color"

// Mode selects the clear behaviour for a frame.
type Mode uint8

const (
	Full    Mode = iota // opaque clear, no persistence
	Partial             // alpha-blended clear, previous frame shows through
)

const (
	// DefaultStrength is the default trail strength.
	DefaultStrength = 0.9
	// decay is how much of the clear a full-strength trail removes.
	decay = 0.9
	// MinAlpha is the weakest clear ever issued; anything lower would
	// leave a permanent ghost image.
	MinAlpha = 1 - decay
)

// ClearMode is the per-frame decision handed to the renderer.
type ClearMode struct {
	Mode  Mode
	Alpha float32
}

// Decide maps the trail settings onto a clear mode. Strength is clamped
// to [0,1], so a partial clear alpha always lies in [0.1, 1].
func Decide(useTrail bool, strength float32) ClearMode {
	if !useTrail {
		return ClearMode{Mode: Full, Alpha: 1}
	}
	alpha := 1 - ClampStrength(strength)*decay
	if alpha < MinAlpha {
		alpha = MinAlpha
	}
	return ClearMode{Mode: Partial, Alpha: alpha}
}

// ClampStrength maps strength into [0,1]; NaN becomes 0.
func ClampStrength(strength float32) float32 {
	switch {
	case strength != strength || strength < 0:
		return 0
	case strength > 1:
		return 1
	}
	return strength
}

// Overlay returns the premultiplied colour to paint over the whole frame
// for this clear: bg itself for a full clear, bg at Alpha otherwise.
func (c ClearMode) Overlay(bg color.RGBA) color.RGBA {
	if c.Mode == Full {
		bg.A = 255
		return bg
	}
	a := c.Alpha
	return color.RGBA{
		R: uint8(float32(bg.R)*a + 0.5),
		G: uint8(float32(bg.G)*a + 0.5),
		B: uint8(float32(bg.B)*a + 0.5),
		A: uint8(255*a + 0.5),
	}
}
