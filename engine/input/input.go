package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Drag sensitivities for translating mouse gestures into camera deltas.
// Panning is inverted with half sensitivity; it reads better with the
// unflipped screen-Y convention.
const (
	RotateSensitivity = 0.01
	PanSensitivity    = 0.005
	ZoomSensitivity   = 0.5
)

// State tracks mouse state per frame.
type State struct {
	MouseX, MouseY   int
	MouseDX, MouseDY int
	prevMouseX       int
	prevMouseY       int

	LeftPressed       bool
	RightPressed      bool
	LeftJustPressed   bool
	RightJustPressed  bool
	LeftJustReleased  bool
	RightJustReleased bool
	ScrollY           float64
}

func NewState() *State {
	return &State{}
}

// Update should be called once at the top of every frame.
func (s *State) Update() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.RightPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.RightJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)

	_, scrollY := ebiten.Wheel()
	s.ScrollY = scrollY
}
