package render

import (
	"image/color"

	"github.com/1siamBot/particle-gesture/engine/trail"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Background is the scene clear colour.
var Background = color.RGBA{0x0c, 0x0c, 0x0c, 0xff}

// ApplyClear clears screen for a new frame. The screen must not be
// cleared automatically, so a partial clear leaves the previous frame
// showing through the translucent background.
func ApplyClear(screen *ebiten.Image, mode trail.ClearMode, bg color.RGBA) {
	overlay := mode.Overlay(bg)
	if mode.Mode == trail.Full {
		screen.Fill(overlay)
		return
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), overlay, false)
}
