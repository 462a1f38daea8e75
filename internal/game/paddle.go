package game

// InputState collapses the up and down keys of one player into a single value
type InputState int

const (
	InputNone InputState = iota
	InputUp
	InputDown
	InputUpDown
)

var inputName = map[InputState]string{
	InputNone:   "none",
	InputUp:     "up",
	InputDown:   "down",
	InputUpDown: "up+down",
}

func (s InputState) String() string {
	return inputName[s]
}

func (s *InputState) PressUp() {
	if *s == InputDown || *s == InputUpDown {
		*s = InputUpDown
		return
	}
	*s = InputUp
}

func (s *InputState) ReleaseUp() {
	if *s == InputDown || *s == InputUpDown {
		*s = InputDown
		return
	}
	*s = InputNone
}

func (s *InputState) PressDown() {
	if *s == InputUp || *s == InputUpDown {
		*s = InputUpDown
		return
	}
	*s = InputDown
}

func (s *InputState) ReleaseDown() {
	if *s == InputUp || *s == InputUpDown {
		*s = InputUp
		return
	}
	*s = InputNone
}

// Velocity returns the vertical speed the input asks for. Up and down together cancel out.
func (s InputState) Velocity() float64 {
	switch s {
	case InputUp:
		return PaddleSpeed
	case InputDown:
		return -PaddleSpeed
	}
	return 0
}

type Paddle struct {
	X     float64 // Fixed per side
	Y     float64
	Input InputState
}

func NewPaddle(x, y float64) Paddle {
	return Paddle{X: x, Y: y, Input: InputNone}
}

// Update moves the paddle according to its input and keeps it fully inside bounds
func (p *Paddle) Update(dt float64, bounds Bounds) {
	p.Y = bounds.Shrink(PaddleHeight).Clamp(p.Y + p.Input.Velocity()*dt)
}

// Box returns the paddle's bounding box
func (p Paddle) Box() Box {
	return Box{X: p.X, Y: p.Y, W: PaddleWidth, H: PaddleHeight}
}

func (p Paddle) CollidesWith(b Ball) bool {
	return p.Box().Overlaps(b.Box())
}
