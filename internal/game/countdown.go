package game

import (
	"strconv"
	"time"
)

// Countdown pauses the game for a while and then hands over to Next
type Countdown struct {
	Remaining time.Duration
	Next      *State
}

// Update counts down by dt seconds without going below zero. Once nothing
// remains the held state is returned.
func (c Countdown) Update(dt float64) (State, Events) {
	step := time.Duration(dt * float64(time.Second))
	if step >= c.Remaining {
		c.Remaining = 0
	} else {
		c.Remaining -= step
	}

	if c.Remaining > 0 {
		return State{Kind: KindCountdown, Countdown: c}, 0
	}
	if c.Next == nil {
		panic("game: countdown finished without a next state")
	}
	return *c.Next, EventResume
}

// Seconds is the whole number of seconds left, rounded down
func (c Countdown) Seconds() int {
	return int(c.Remaining / time.Second)
}

func (c Countdown) Render(r Renderer) {
	r.SetTransform(TransformNone)
	r.DrawText(strconv.Itoa(c.Seconds()), WindowWidth/2, WindowHeight/2, CountdownSize, White)
}
