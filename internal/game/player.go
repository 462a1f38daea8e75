package game

// Side identifies which half of the field a player defends
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

type Player struct {
	Paddle Paddle
	Score  uint
	Side   Side
}

// NewPlayer creates a player with its paddle at the starting position for its side
func NewPlayer(side Side) Player {
	x := PaddleBorderGap
	if side == SideRight {
		x = WindowWidth - PaddleBorderGap - PaddleWidth
	}
	return Player{
		Paddle: NewPaddle(x, WindowHeight/2),
		Side:   side,
	}
}
