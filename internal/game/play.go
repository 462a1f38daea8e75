package game

import "strconv"

// Play is a round in progress
type Play struct {
	Left  Player
	Right Player
	Ball  Ball
}

// NewPlay creates both players at their starting positions and a fresh ball
func NewPlay(rng Rand) Play {
	return Play{
		Left:  NewPlayer(SideLeft),
		Right: NewPlayer(SideRight),
		Ball:  NewBall(rng),
	}
}

// Update runs one tick of the round. A point ends the round and returns a
// countdown into the next one, keeping both players.
func (p Play) Update(dt float64, rng Rand) (State, Events) {
	var ev Events
	field := Field()

	// Paddles move and collide one at a time, left first
	for _, player := range []*Player{&p.Left, &p.Right} {
		player.Paddle.Update(dt, field)
		if player.Paddle.CollidesWith(p.Ball) {
			p.Ball.BounceOffPaddle(rng)
			ev |= EventPaddleHit
		}
	}

	if p.Ball.Update(dt, field) {
		ev |= EventWallBounce
	}

	// Ball past left edge - right player scores
	if p.Ball.X <= -BallWidth {
		return p.scored(SideRight, rng), ev | EventScoreRight
	}
	// Ball past right edge - left player scores
	if p.Ball.X >= WindowWidth {
		return p.scored(SideLeft, rng), ev | EventScoreLeft
	}
	return NewPlayState(p), ev
}

func (p Play) scored(side Side, rng Rand) State {
	if side == SideLeft {
		p.Left.Score++
	} else {
		p.Right.Score++
	}
	p.Ball = NewBall(rng)
	return NewCountdownState(CountdownDuration, NewPlayState(p))
}

// Player returns the player defending side
func (p *Play) Player(side Side) *Player {
	if side == SideLeft {
		return &p.Left
	}
	return &p.Right
}

func (p *Play) Press(a Action) {
	switch a {
	case ActionLeftUp:
		p.Left.Paddle.Input.PressUp()
	case ActionLeftDown:
		p.Left.Paddle.Input.PressDown()
	case ActionRightUp:
		p.Right.Paddle.Input.PressUp()
	case ActionRightDown:
		p.Right.Paddle.Input.PressDown()
	}
}

func (p *Play) Release(a Action) {
	switch a {
	case ActionLeftUp:
		p.Left.Paddle.Input.ReleaseUp()
	case ActionLeftDown:
		p.Left.Paddle.Input.ReleaseDown()
	case ActionRightUp:
		p.Right.Paddle.Input.ReleaseUp()
	case ActionRightDown:
		p.Right.Paddle.Input.ReleaseDown()
	}
}

// Render draws paddles and ball with the origin at the bottom left, then the
// scores in screen coordinates
func (p Play) Render(r Renderer) {
	r.SetTransform(TransformFlipY)
	for _, b := range []Box{p.Left.Paddle.Box(), p.Right.Paddle.Box(), p.Ball.Box()} {
		r.DrawRect(b.X, b.Y, b.W, b.H, White)
	}
	r.SetTransform(TransformNone)

	r.DrawText(strconv.FormatUint(uint64(p.Left.Score), 10), WindowWidth/4, ScoreYGap, ScoreSize, White)
	r.DrawText(strconv.FormatUint(uint64(p.Right.Score), 10), WindowWidth/4*3, ScoreYGap, ScoreSize, White)
}
