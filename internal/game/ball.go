package game

import "math"

type Ball struct {
	X, Y   float64
	VX, VY float64
}

// NewBall places a ball at the centre of the field, launched to the right
// with a random vertical velocity
func NewBall(rng Rand) Ball {
	return Ball{
		X:  WindowWidth / 2,
		Y:  WindowHeight / 2,
		VX: StartBallVelocity,
		VY: launchVelocity(rng),
	}
}

// Update advances the ball by dt seconds and reflects it off the top and bottom
// of bounds. Returns true when a wall reflection happened.
func (b *Ball) Update(dt float64, bounds Bounds) bool {
	b.X += b.VX * dt
	b.Y += b.VY * dt

	bounds = bounds.Shrink(BallHeight)

	switch {
	case b.Y < bounds.Lower:
		b.VY = -b.VY
		b.Y = bounds.Lower - (b.Y - bounds.Lower)
		return true
	case b.Y > bounds.Upper:
		b.VY = -b.VY
		b.Y = bounds.Upper - (b.Y - bounds.Upper)
		return true
	}
	return false
}

// BounceOffPaddle reverses and speeds up horizontal motion and picks a new vertical velocity
func (b *Ball) BounceOffPaddle(rng Rand) {
	b.VX = -b.VX * BallMultiplier
	b.VY = launchVelocity(rng)
}

// Box returns the ball's bounding box
func (b Ball) Box() Box {
	return Box{X: b.X, Y: b.Y, W: BallWidth, H: BallHeight}
}

// Speed returns current speed
func (b Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}
