package ui

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/particle-gesture/engine/gesture"
	"github.com/1siamBot/particle-gesture/engine/shape"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sidebar button layout
const (
	buttonH   = 24
	buttonGap = 4
	listTop   = 40
)

// Status is the state shown by the HUD for one frame
type Status struct {
	Shape         shape.Shape
	Particles     int
	Drawn         int
	TargetScale   float32
	Fill          bool
	Trail         bool
	TrailStrength float32
	Gradient      bool
	Size          float32
	ZoomSpeed     float32
	Speed         float32
	Color1        string
	Color2        string
	Gesture       gesture.Label
	GestureSource string
	Music         string
	Message       string
	TPS, FPS      float64
}

// HUD is the main heads-up display
type HUD struct {
	ScreenW, ScreenH int
	SidebarWidth     int
	TopBarHeight     int
	Visible          bool
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{
		ScreenW:      sw,
		ScreenH:      sh,
		SidebarWidth: 160,
		TopBarHeight: 30,
		Visible:      true,
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Lines renders the status panel text
func Lines(s Status) []string {
	trail := onOff(s.Trail)
	if s.Trail {
		trail = fmt.Sprintf("%.2f", s.TrailStrength)
	}
	lines := []string{
		fmt.Sprintf("%s | %d particles (%d drawn) | scale %.2f", s.Shape, s.Particles, s.Drawn, s.TargetScale),
		fmt.Sprintf("fill %s | trail %s | gradient %s", onOff(s.Fill), trail, onOff(s.Gradient)),
		fmt.Sprintf("gesture: %s (%s)", s.Gesture, s.GestureSource),
		fmt.Sprintf("size %.2f | zoom %.0f | speed %.0f | colors %s %s", s.Size, s.ZoomSpeed, s.Speed, s.Color1, s.Color2),
	}
	if s.Music != "" {
		lines = append(lines, s.Music)
	}
	if s.Message != "" {
		lines = append(lines, s.Message)
	}
	return lines
}

// Help lists the key bindings
var Help = []string{
	"1-9,0 shapes  C image  I fill  T trail  [ ] strength  R reshuffle",
	"G gradient  P colors  +/- count  , . size  Z X zoom  S D speed",
	"Q W N music  up/down volume  F fullscreen  H hud  space pause",
	"drag to rotate, wheel to zoom, drop an image to sample it",
}

// GestureColor is the indicator colour for a gesture
func GestureColor(l gesture.Label) color.RGBA {
	switch l {
	case gesture.Fist:
		return color.RGBA{255, 90, 90, 255}
	case gesture.Open:
		return color.RGBA{90, 255, 140, 255}
	}
	return color.RGBA{128, 128, 128, 255}
}

// Draw renders the entire HUD
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if !h.Visible {
		return
	}
	h.drawTopBar(screen, s)
	h.drawSidebar(screen, s.Shape)
	h.drawStatus(screen, s)
}

func (h *HUD) drawTopBar(screen *ebiten.Image, s Status) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), float32(h.TopBarHeight), color.RGBA{0, 0, 0, 180}, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", s.TPS, s.FPS), 10, 8)
}

// buttonRect returns the sidebar rectangle of shape button i
func (h *HUD) buttonRect(i int) (x, y, w, hgt int) {
	x = h.ScreenW - h.SidebarWidth + 10
	y = h.TopBarHeight + listTop + i*(buttonH+buttonGap)
	return x, y, h.SidebarWidth - 20, buttonH
}

func (h *HUD) drawSidebar(screen *ebiten.Image, active shape.Shape) {
	sx := float32(h.ScreenW - h.SidebarWidth)
	vector.DrawFilledRect(screen, sx, float32(h.TopBarHeight), float32(h.SidebarWidth), float32(h.ScreenH-h.TopBarHeight), color.RGBA{20, 20, 40, 200}, false)
	ebitenutil.DebugPrintAt(screen, "=== SHAPES ===", int(sx)+10, h.TopBarHeight+10)

	for i, s := range shape.All() {
		x, y, w, bh := h.buttonRect(i)
		btnColor := color.RGBA{60, 60, 100, 255}
		if s == active {
			btnColor = color.RGBA{110, 100, 220, 255}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(bh), btnColor, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(bh), 1, color.RGBA{100, 100, 160, 255}, false)
		ebitenutil.DebugPrintAt(screen, s.String(), x+5, y+5)
	}
}

func (h *HUD) drawStatus(screen *ebiten.Image, s Status) {
	lines := Lines(s)
	panelH := 16*(len(lines)+len(Help)) + 16
	py := h.ScreenH - panelH
	pw := h.ScreenW - h.SidebarWidth
	vector.DrawFilledRect(screen, 0, float32(py), float32(pw), float32(panelH), color.RGBA{0, 0, 0, 150}, false)

	y := py + 8
	for i, l := range lines {
		x := 10
		if i == 2 {
			// Gesture indicator
			vector.DrawFilledCircle(screen, 16, float32(y+7), 5, GestureColor(s.Gesture), true)
			x = 28
		}
		ebitenutil.DebugPrintAt(screen, l, x, y)
		y += 16
	}
	for _, l := range Help {
		ebitenutil.DebugPrintAt(screen, l, 10, y)
		y += 16
	}
}

// HandleClick maps a click to a sidebar shape button. It reports whether
// the click landed on the sidebar at all.
func (h *HUD) HandleClick(mx, my int) (picked shape.Shape, ok, consumed bool) {
	if !h.Visible || !h.IsInSidebar(mx, my) {
		return 0, false, false
	}
	for i, s := range shape.All() {
		x, y, w, bh := h.buttonRect(i)
		if mx >= x && mx < x+w && my >= y && my < y+bh {
			return s, true, true
		}
	}
	return 0, false, true
}

// IsInSidebar returns true if the mouse position is over the sidebar
func (h *HUD) IsInSidebar(mx, my int) bool {
	return h.Visible && mx >= h.ScreenW-h.SidebarWidth && my >= h.TopBarHeight
}

// Resize tracks the window size
func (h *HUD) Resize(w, hgt int) {
	h.ScreenW, h.ScreenH = w, hgt
}
