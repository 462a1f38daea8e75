package engine

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/diegok/duopong/internal/game"
)

// DefaultTickRate is used when no tick rate is configured
const DefaultTickRate = 60

// Driver owns the live game state and dispatches ticks, input and rendering to it.
// It is not safe for concurrent use; frontends call it from their loop goroutine.
type Driver struct {
	state game.State
	rng   game.Rand
	clock *Clock
	log   logrus.FieldLogger
	ticks uint64
}

// Option configures a Driver
type Option func(*Driver)

// WithLogger sets the logger events are reported to
func WithLogger(log logrus.FieldLogger) Option {
	return func(d *Driver) {
		d.log = log
	}
}

// WithTickRate sets the number of fixed steps per second used by Advance
func WithTickRate(rate int) Option {
	return func(d *Driver) {
		d.clock = NewClock(rate)
	}
}

// WithState starts the driver from s instead of the initial countdown
func WithState(s game.State) Option {
	return func(d *Driver) {
		d.state = s
	}
}

// NewDriver creates a driver starting with a countdown into a fresh round
func NewDriver(rng game.Rand, opts ...Option) *Driver {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	d := &Driver{
		rng:   rng,
		clock: NewClock(DefaultTickRate),
		log:   silent,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.state.Kind == 0 {
		d.state = game.NewInitialState(rng)
	}
	return d
}

// Step runs one tick of dt seconds
func (d *Driver) Step(dt float64) game.Events {
	if dt < 0 {
		dt = 0
	}

	prev := d.state.Kind
	next, ev := d.state.Update(dt, d.rng)
	d.state = next
	d.ticks++

	if ev != 0 || next.Kind != prev {
		d.report(prev, ev)
	}
	return ev
}

// Advance feeds elapsed real time through the fixed-step clock and runs the
// ticks that fall due. Returns the number of ticks run.
func (d *Driver) Advance(elapsed time.Duration) int {
	n := d.clock.Advance(elapsed)
	dt := d.clock.Step().Seconds()
	for i := 0; i < n; i++ {
		d.Step(dt)
	}
	return n
}

func (d *Driver) Press(a game.Action) {
	if a == game.ActionNone {
		return
	}
	d.state.Press(a)
}

func (d *Driver) Release(a game.Action) {
	if a == game.ActionNone {
		return
	}
	d.state.Release(a)
}

func (d *Driver) Render(r game.Renderer) {
	d.state.Render(r)
}

// State returns a copy of the live state
func (d *Driver) State() game.State {
	return d.state
}

// Ticks is the number of steps run so far
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Scores returns the current points of the left and right players
func (d *Driver) Scores() (uint, uint) {
	play, ok := d.round()
	if !ok {
		return 0, 0
	}
	return play.Left.Score, play.Right.Score
}

// round finds the players, either live or held by the countdown
func (d *Driver) round() (game.Play, bool) {
	s := d.state
	for s.Kind == game.KindCountdown {
		if s.Countdown.Next == nil {
			return game.Play{}, false
		}
		s = *s.Countdown.Next
	}
	return s.Play, s.Kind == game.KindPlay
}

func (d *Driver) report(prev game.Kind, ev game.Events) {
	log := d.log.WithField("tick", d.ticks)

	if ev.Has(game.EventPaddleHit) {
		play, _ := d.round()
		log.WithField("speed", play.Ball.Speed()).Debug("paddle hit")
	}
	if ev.Has(game.EventWallBounce) {
		log.Debug("wall bounce")
	}
	if ev.Has(game.EventScoreLeft) || ev.Has(game.EventScoreRight) {
		scorer := game.SideLeft
		if ev.Has(game.EventScoreRight) {
			scorer = game.SideRight
		}
		left, right := d.Scores()
		log.WithFields(logrus.Fields{
			"scorer": scorer.String(),
			"left":   left,
			"right":  right,
		}).Info("point scored")
	}
	if ev.Has(game.EventResume) {
		log.WithField("from", prev.String()).Info("round resumed")
	}
}
