package ui

import (
	"github.com/1siamBot/particle-gesture/engine/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int
	LeftPressed      bool
	LeftJustPressed  bool
	LeftJustReleased bool
	ScrollY          float64

	// Rotating is true while the left button is held after a press
	Rotating bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	_, s.ScrollY = ebiten.Wheel()

	if s.LeftJustPressed {
		s.Rotating = true
		s.MouseDX, s.MouseDY = 0, 0
	}
	if !s.LeftPressed {
		s.Rotating = false
	}
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Drag returns the rotation for this frame's pointer movement, if any.
func (s *InputState) Drag() (input.RotateBy, bool) {
	if !s.Rotating || (s.MouseDX == 0 && s.MouseDY == 0) {
		return input.RotateBy{}, false
	}
	return input.FromDrag(s.MouseDX, s.MouseDY), true
}

// Wheel returns the scale adjustment for this frame's wheel movement, if any.
func (s *InputState) Wheel(zoomSpeed float32) (input.ScaleAdjust, bool) {
	return input.FromWheel(s.ScrollY, zoomSpeed)
}

// CancelDrag ends the current drag without rotating, e.g. when the press
// landed on the HUD.
func (s *InputState) CancelDrag() {
	s.Rotating = false
}
