package engine

import "time"

// maxFrame caps how much real time one Advance may simulate, so a stalled
// frontend does not trigger a burst of catch-up ticks
const maxFrame = 250 * time.Millisecond

// Clock converts variable real elapsed time into fixed simulation steps
type Clock struct {
	step        time.Duration
	accumulator time.Duration
}

// NewClock creates a clock producing tickRate steps per second
func NewClock(tickRate int) *Clock {
	if tickRate < 1 {
		tickRate = 1
	}
	return &Clock{step: time.Second / time.Duration(tickRate)}
}

// Step is the length of one simulation tick
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance adds elapsed real time and returns how many whole steps are due
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrame {
		elapsed = maxFrame
	}

	c.accumulator += elapsed
	n := int(c.accumulator / c.step)
	c.accumulator -= time.Duration(n) * c.step
	return n
}

// Alpha is the fraction of a step left in the accumulator
func (c *Clock) Alpha() float64 {
	return float64(c.accumulator) / float64(c.step)
}
